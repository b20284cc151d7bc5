package clock

import (
	"math"

	"github.com/sarchlab/counterreg/idgen"
	"github.com/sarchlab/counterreg/timing"
)

const unlimited = math.MaxUint64

// Builder can build clocks.
type Builder struct {
	engine timing.EventScheduler
	freq   timing.Freq
	ids    idgen.Generator
	cycles uint64
}

// MakeBuilder creates a builder with a 1 GHz clock that runs until stopped.
func MakeBuilder() Builder {
	return Builder{
		freq:   1 * timing.GHz,
		cycles: unlimited,
	}
}

// WithEngine sets the engine the clock schedules its edges on.
func (b Builder) WithEngine(engine timing.EventScheduler) Builder {
	b.engine = engine
	return b
}

// WithFreq sets the frequency of the clock.
func (b Builder) WithFreq(freq timing.Freq) Builder {
	b.freq = freq
	return b
}

// WithIDGenerator sets the generator used for edge event IDs.
func (b Builder) WithIDGenerator(ids idgen.Generator) Builder {
	b.ids = ids
	return b
}

// WithCycles limits the clock to n edges.
func (b Builder) WithCycles(n uint64) Builder {
	b.cycles = n
	return b
}

// Build creates the clock.
func (b Builder) Build(name string) *Clock {
	if b.engine == nil {
		panic("clock: engine is not set")
	}

	if err := b.freq.Validate(); err != nil {
		panic(err)
	}

	ids := b.ids
	if ids == nil {
		ids = idgen.New()
	}

	return &Clock{
		name:   name,
		engine: b.engine,
		freq:   b.freq,
		ids:    ids,
		cycles: b.cycles,
	}
}
