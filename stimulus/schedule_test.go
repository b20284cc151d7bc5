package stimulus

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Constant", func() {
	It("should return the same signals every cycle", func() {
		c := Constant{Enable: true}

		for _, cycle := range []uint64{0, 1, 1000} {
			s, err := c.Sample(cycle)
			Expect(err).NotTo(HaveOccurred())
			Expect(s).To(Equal(Signals{Enable: true}))
		}
	})
})

var _ = Describe("Schedule", func() {
	sample := func(s *Schedule, cycle uint64) Signals {
		signals, err := s.Sample(cycle)
		Expect(err).NotTo(HaveOccurred())

		return signals
	}

	It("should sample low when empty", func() {
		s, err := ParseSchedule("  ")

		Expect(err).NotTo(HaveOccurred())
		Expect(sample(s, 3)).To(Equal(Signals{}))
	})

	It("should parse single cycles and ranges", func() {
		s := MustParseSchedule("0:r, 1-16:e, 17:re")

		Expect(sample(s, 0)).To(Equal(Signals{Reset: true}))
		Expect(sample(s, 1)).To(Equal(Signals{Enable: true}))
		Expect(sample(s, 16)).To(Equal(Signals{Enable: true}))
		Expect(sample(s, 17)).To(Equal(Signals{Reset: true, Enable: true}))
		Expect(sample(s, 18)).To(Equal(Signals{}))
	})

	It("should support open ranges", func() {
		s := MustParseSchedule("5-:E")

		Expect(sample(s, 4)).To(Equal(Signals{}))
		Expect(sample(s, 1<<40)).To(Equal(Signals{Enable: true}))
	})

	It("should let later entries win", func() {
		s := MustParseSchedule("0-:e,3:-,4:r")

		Expect(sample(s, 2)).To(Equal(Signals{Enable: true}))
		Expect(sample(s, 3)).To(Equal(Signals{}))
		Expect(sample(s, 4)).To(Equal(Signals{Reset: true}))
		Expect(sample(s, 5)).To(Equal(Signals{Enable: true}))
	})

	It("should print back its text form", func() {
		s := MustParseSchedule("0:r,1-16:e,17:re,18-:-")

		Expect(s.String()).To(Equal("0:r,1-16:e,17:re,18-:-"))
	})

	DescribeTable("rejecting malformed text",
		func(text string) {
			_, err := ParseSchedule(text)

			Expect(err).To(MatchError(ErrBadSchedule))
		},
		Entry("missing colon", "3e"),
		Entry("bad cycle", "x:e"),
		Entry("bad range end", "1-y:e"),
		Entry("empty range", "5-2:e"),
		Entry("no signals", "1:"),
		Entry("unknown signal", "1:q"),
		Entry("negative start", "-3:e"),
	)

	It("should panic in MustParseSchedule on bad input", func() {
		Expect(func() { MustParseSchedule("nope") }).To(Panic())
	})
})
