package netlist

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/counterreg/counter"
)

func edge(sim *Simulator, reset, enable bool) uint8 {
	err := sim.RisingEdge(map[string]bool{
		PortReset:  reset,
		PortEnable: enable,
		PortClock:  true,
	})
	Expect(err).NotTo(HaveOccurred())

	v, err := sim.Bus(PortCount, counter.Width)
	Expect(err).NotTo(HaveOccurred())

	return uint8(v)
}

var _ = Describe("Counter netlist", func() {
	var (
		m   *Module
		sim *Simulator
	)

	BeforeEach(func() {
		var err error

		m = BuildCounter()
		sim, err = NewSimulator(m)
		Expect(err).NotTo(HaveOccurred())
	})

	It("should contain only 1-bit primitives", func() {
		dffs := 0
		for _, g := range m.Gates() {
			Expect(g.Op.arity()).To(BeNumerically(">", 0), "gate %s", g)
			if g.Op == OpDFF {
				dffs++
			}
		}

		Expect(dffs).To(Equal(counter.Width))
	})

	It("should create one signal per bit of the count", func() {
		for i := 0; i < counter.Width; i++ {
			s, ok := m.Signal(BitName(PortCount, i))
			Expect(ok).To(BeTrue())
			Expect(s.Width).To(Equal(1))
			Expect(s.Output).To(BeTrue())
			Expect(s.Reg).To(BeTrue())
		}
	})

	It("should power on at zero", func() {
		v, err := sim.Bus(PortCount, counter.Width)

		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(BeZero())
	})

	It("should match the register for every state and input", func() {
		for start := uint8(0); start < counter.Modulus; start++ {
			for _, in := range [][2]bool{
				{false, false}, {false, true}, {true, false}, {true, true},
			} {
				Expect(sim.PresetBus(PortCount, counter.Width, uint64(start))).
					To(Succeed())

				want, _ := counter.Next(start, in[0], in[1])
				got := edge(sim, in[0], in[1])

				Expect(got).To(Equal(want),
					"count %d reset %t enable %t", start, in[0], in[1])
			}
		}
	})

	It("should wrap exactly once over 17 enabled edges", func() {
		trace := []uint8{}
		for i := 0; i < 17; i++ {
			trace = append(trace, edge(sim, false, true))
		}

		Expect(trace).To(Equal([]uint8{
			1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 0, 1,
		}))
	})

	It("should not change state on evaluation alone", func() {
		Expect(sim.PresetBus(PortCount, counter.Width, 6)).To(Succeed())

		Expect(sim.Evaluate(map[string]bool{PortEnable: true})).To(Succeed())

		v, err := sim.Bus(PortCount, counter.Width)
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(Equal(uint64(6)))

		next, err := sim.Bus("sum", counter.Width)
		Expect(err).NotTo(HaveOccurred())
		Expect(next).To(Equal(uint64(7)))
	})

	It("should reject unknown inputs", func() {
		Expect(sim.RisingEdge(map[string]bool{"count_0": true})).NotTo(Succeed())
		Expect(sim.RisingEdge(map[string]bool{"nope": true})).NotTo(Succeed())
	})

	It("should only preset DFF outputs", func() {
		Expect(sim.Preset(PortEnable, true)).NotTo(Succeed())
		Expect(sim.PresetBus("sum", counter.Width, 1)).NotTo(Succeed())
	})

	It("should reject reading unknown signals", func() {
		_, err := sim.Value("missing")
		Expect(err).To(HaveOccurred())

		_, err = sim.Bus(PortCount, counter.Width+1)
		Expect(err).To(HaveOccurred())
	})
})
