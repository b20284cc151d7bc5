package netlist

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Module", func() {
	var m *Module

	BeforeEach(func() {
		m = NewModule("t")
		m.AddSignal(Signal{Name: "a", Width: 1, Input: true})
		m.AddSignal(Signal{Name: "b", Width: 1, Input: true})
		m.AddSignal(Signal{Name: "x", Width: 1})
		m.AddSignal(Signal{Name: "y", Width: 1, Output: true})
	})

	It("should return the existing signal on duplicate add", func() {
		s := m.AddSignal(Signal{Name: "a", Width: 8})

		Expect(s.Width).To(Equal(1))
		Expect(m.Signals()).To(HaveLen(4))
	})

	It("should split a bus into bits", func() {
		bits := m.AddBus(Signal{Name: "d", Width: 3, Input: true})

		Expect(bits).To(Equal([]string{"d_0", "d_1", "d_2"}))
		bit, ok := m.Signal("d_2")
		Expect(ok).To(BeTrue())
		Expect(bit.Input).To(BeTrue())
	})

	It("should check gate arity and signals", func() {
		Expect(m.AddGate(OpAnd, "x", "a")).NotTo(Succeed())
		Expect(m.AddGate(OpAnd, "x", "a", "zz")).NotTo(Succeed())
		Expect(m.AddGate(Op("NAND"), "x", "a", "b")).NotTo(Succeed())
		Expect(m.AddGate(OpAnd, "x", "a", "b")).To(Succeed())
		Expect(m.Gates()).To(HaveLen(1))
	})

	It("should reject wide signals in gates", func() {
		m.AddSignal(Signal{Name: "w", Width: 2})

		Expect(m.AddGate(OpNot, "x", "w")).NotTo(Succeed())
	})

	It("should print signals and gates", func() {
		s, _ := m.Signal("a")

		Expect(s.String()).To(Equal("<a [1] IN NET>"))
		Expect(Gate{Op: OpXor, Inputs: []string{"a", "b"}, Output: "x"}.String()).
			To(Equal("[XOR] [a b] -> x"))
	})

	It("should simulate each primitive", func() {
		m.AddSignal(Signal{Name: "s", Width: 1, Input: true})
		m.AddSignal(Signal{Name: "o1", Width: 1})
		m.AddSignal(Signal{Name: "o2", Width: 1})
		m.AddSignal(Signal{Name: "o3", Width: 1})
		Expect(m.AddGate(OpOr, "o1", "a", "b")).To(Succeed())
		Expect(m.AddGate(OpNot, "o2", "o1")).To(Succeed())
		Expect(m.AddGate(OpBuf, "o3", "o2")).To(Succeed())
		Expect(m.AddGate(OpMux, "y", "s", "o3", "a")).To(Succeed())

		sim, err := NewSimulator(m)
		Expect(err).NotTo(HaveOccurred())

		Expect(sim.Evaluate(map[string]bool{"a": true, "s": false})).To(Succeed())
		y, _ := sim.Value("y")
		Expect(y).To(BeTrue())

		Expect(sim.Evaluate(map[string]bool{"s": true})).To(Succeed())
		y, _ = sim.Value("y")
		Expect(y).To(BeFalse())
	})

	It("should detect combinational loops", func() {
		Expect(m.AddGate(OpAnd, "x", "a", "y")).To(Succeed())
		Expect(m.AddGate(OpOr, "y", "x", "b")).To(Succeed())

		_, err := NewSimulator(m)

		Expect(err).To(MatchError(ErrCombinationalLoop))
	})

	It("should reject multiple drivers", func() {
		Expect(m.AddGate(OpAnd, "x", "a", "b")).To(Succeed())
		Expect(m.AddGate(OpOr, "x", "a", "b")).To(Succeed())

		_, err := NewSimulator(m)

		Expect(err).To(HaveOccurred())
	})

	It("should reject gates driving inputs", func() {
		Expect(m.AddGate(OpNot, "a", "b")).To(Succeed())

		_, err := NewSimulator(m)

		Expect(err).To(HaveOccurred())
	})

	It("should reject DFFs clocked by internal nets", func() {
		Expect(m.AddGate(OpDFF, "y", "a", "x")).To(Succeed())

		_, err := NewSimulator(m)

		Expect(err).To(HaveOccurred())
	})
})
