package countercomp

import (
	"github.com/sarchlab/counterreg/clock"
	"github.com/sarchlab/counterreg/hooking"
	"github.com/sarchlab/counterreg/idgen"
	"github.com/sarchlab/counterreg/stimulus"
	"github.com/sarchlab/counterreg/timing"
)

// Simulation runs one counter on one clock.
type Simulation struct {
	engine *timing.SerialEngine
	clock  *clock.Clock
	comp   *Comp
	trace  *TraceCollector
}

// Engine returns the engine that drives the simulation.
func (s *Simulation) Engine() *timing.SerialEngine {
	return s.engine
}

// Clock returns the clock that produces the edges.
func (s *Simulation) Clock() *clock.Clock {
	return s.clock
}

// Counter returns the simulated counter.
func (s *Simulation) Counter() *Comp {
	return s.comp
}

// AcceptHook attaches an observer to the counter. Hooks must be attached
// before Run.
func (s *Simulation) AcceptHook(h hooking.Hook) {
	s.comp.AcceptHook(h)
}

// Run starts the clock and processes edges until the clock stops. It returns
// the first error raised while handling an edge.
func (s *Simulation) Run() error {
	if err := s.clock.Start(); err != nil {
		return err
	}

	return s.engine.Run()
}

// Trace returns the samples of every edge delivered so far.
func (s *Simulation) Trace() []EdgeSample {
	return s.trace.Samples()
}

// SimulationBuilder can build simulations.
type SimulationBuilder struct {
	freq    timing.Freq
	cycles  uint64
	source  stimulus.Source
	initial uint8
	ids     idgen.Generator
	name    string
}

// MakeSimulationBuilder creates a builder for a 1 GHz, 16-cycle simulation
// with the counter always enabled.
func MakeSimulationBuilder() SimulationBuilder {
	return SimulationBuilder{
		freq:   1 * timing.GHz,
		cycles: 16,
		source: stimulus.Constant{Enable: true},
		name:   "Counter",
	}
}

// WithFreq sets the clock frequency.
func (b SimulationBuilder) WithFreq(freq timing.Freq) SimulationBuilder {
	b.freq = freq
	return b
}

// WithCycles sets the number of edges to deliver.
func (b SimulationBuilder) WithCycles(n uint64) SimulationBuilder {
	b.cycles = n
	return b
}

// WithSource sets where the control signals come from.
func (b SimulationBuilder) WithSource(source stimulus.Source) SimulationBuilder {
	b.source = source
	return b
}

// WithInitialCount sets the power-on value of the register.
func (b SimulationBuilder) WithInitialCount(v uint8) SimulationBuilder {
	b.initial = v
	return b
}

// WithIDGenerator sets the generator for edge event IDs.
func (b SimulationBuilder) WithIDGenerator(ids idgen.Generator) SimulationBuilder {
	b.ids = ids
	return b
}

// WithName sets the name of the counter component.
func (b SimulationBuilder) WithName(name string) SimulationBuilder {
	b.name = name
	return b
}

// Build creates the simulation.
func (b SimulationBuilder) Build() *Simulation {
	engine := timing.NewSerialEngine()

	clkBuilder := clock.MakeBuilder().
		WithEngine(engine).
		WithFreq(b.freq).
		WithCycles(b.cycles)
	if b.ids != nil {
		clkBuilder = clkBuilder.WithIDGenerator(b.ids)
	}
	clk := clkBuilder.Build(b.name + ".Clock")

	comp := MakeBuilder().
		WithFreq(b.freq).
		WithSource(b.source).
		WithInitialCount(b.initial).
		Build(b.name)

	trace := NewTraceCollector()
	comp.AcceptHook(trace)
	clk.AddListener(comp)

	return &Simulation{
		engine: engine,
		clock:  clk,
		comp:   comp,
		trace:  trace,
	}
}
