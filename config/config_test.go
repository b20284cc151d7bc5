package config

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/counterreg/stimulus"
	"github.com/sarchlab/counterreg/timing"
)

var envNames = []string{
	"CYCLES", "FREQ_HZ", "STIMULUS", "SCRIPT", "INITIAL", "DB",
	"MONITOR_PORT", "VERBOSE",
}

var _ = Describe("Config", func() {
	BeforeEach(func() {
		for _, n := range envNames {
			name := Prefix + n
			old, had := os.LookupEnv(name)
			Expect(os.Unsetenv(name)).To(Succeed())

			DeferCleanup(func() {
				if had {
					os.Setenv(name, old)
				} else {
					os.Unsetenv(name)
				}
			})
		}
	})

	It("should use defaults", func() {
		cfg, err := Parse()

		Expect(err).NotTo(HaveOccurred())
		Expect(cfg).To(Equal(Config{
			Cycles:   18,
			FreqHz:   1e9,
			Stimulus: "0:r,1-17:e",
		}))
		Expect(cfg.Validate()).To(Succeed())
		Expect(cfg.Freq()).To(Equal(1 * timing.GHz))
	})

	It("should read prefixed variables", func() {
		GinkgoT().Setenv(Prefix+"CYCLES", "5")
		GinkgoT().Setenv(Prefix+"INITIAL", "9")
		GinkgoT().Setenv(Prefix+"VERBOSE", "true")

		cfg, err := Parse()

		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Cycles).To(Equal(uint64(5)))
		Expect(cfg.Initial).To(Equal(uint(9)))
		Expect(cfg.Verbose).To(BeTrue())
	})

	It("should report unparsable values", func() {
		GinkgoT().Setenv(Prefix+"CYCLES", "many")

		_, err := Parse()

		Expect(err).To(HaveOccurred())
	})

	It("should load .env files without overriding the environment", func() {
		dir := GinkgoT().TempDir()
		file := filepath.Join(dir, ".env")
		Expect(os.WriteFile(file, []byte(
			"COUNTERREG_CYCLES=3\nCOUNTERREG_DB=trace\n"), 0o644)).To(Succeed())
		GinkgoT().Setenv(Prefix+"CYCLES", "7")
		DeferCleanup(os.Unsetenv, Prefix+"DB")

		cfg, err := Load(file, filepath.Join(dir, "missing.env"))

		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Cycles).To(Equal(uint64(7)))
		Expect(cfg.DB).To(Equal("trace"))
	})

	DescribeTable("rejecting invalid settings",
		func(mutate func(*Config)) {
			cfg := Config{Cycles: 1, FreqHz: 1}
			mutate(&cfg)

			Expect(cfg.Validate()).To(MatchError(ErrInvalid))
		},
		Entry("zero cycles", func(c *Config) { c.Cycles = 0 }),
		Entry("zero frequency", func(c *Config) { c.FreqHz = 0 }),
		Entry("wide initial", func(c *Config) { c.Initial = 16 }),
		Entry("bad port", func(c *Config) { c.MonitorPort = 70000 }),
	)

	It("should build a schedule source", func() {
		cfg := Config{Stimulus: "0:r"}

		src, err := cfg.Source()

		Expect(err).NotTo(HaveOccurred())
		s, _ := src.Sample(0)
		Expect(s).To(Equal(stimulus.Signals{Reset: true}))
	})

	It("should prefer a script", func() {
		path := filepath.Join(GinkgoT().TempDir(), "s.star")
		Expect(os.WriteFile(path,
			[]byte("def signals(cycle):\n    return (False, True)\n"), 0o644)).
			To(Succeed())

		src, err := Config{Stimulus: "bad", Script: path}.Source()

		Expect(err).NotTo(HaveOccurred())
		s, _ := src.Sample(0)
		Expect(s).To(Equal(stimulus.Signals{Enable: true}))
	})

	It("should surface schedule errors", func() {
		_, err := Config{Stimulus: "bad"}.Source()

		Expect(err).To(MatchError(stimulus.ErrBadSchedule))
	})
})
