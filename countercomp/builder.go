package countercomp

import (
	"github.com/sarchlab/counterreg/counter"
	"github.com/sarchlab/counterreg/hooking"
	"github.com/sarchlab/counterreg/stimulus"
	"github.com/sarchlab/counterreg/timing"
)

// Builder can build counter components.
type Builder struct {
	freq    timing.Freq
	source  stimulus.Source
	initial uint8
}

// MakeBuilder creates a builder with default parameters. Without a source the
// component holds its value forever.
func MakeBuilder() Builder {
	return Builder{
		freq:   1 * timing.GHz,
		source: stimulus.Constant{},
	}
}

// WithFreq sets the frequency used to time-stamp edge samples.
func (b Builder) WithFreq(freq timing.Freq) Builder {
	b.freq = freq
	return b
}

// WithSource sets where the control signals come from.
func (b Builder) WithSource(source stimulus.Source) Builder {
	b.source = source
	return b
}

// WithInitialCount sets the power-on value of the register. Only the low four
// bits are kept.
func (b Builder) WithInitialCount(v uint8) Builder {
	b.initial = v
	return b
}

// Build creates a counter component.
func (b Builder) Build(name string) *Comp {
	c := &Comp{
		HookableBase: hooking.NewHookableBase(),
		name:         name,
		freq:         b.freq,
		register:     counter.NewRegisterAt(b.initial),
		source:       b.source,
	}
	c.observed.Store(uint32(c.register.Count()))

	return c
}
