// Package countercomp wraps the counter register as a simulated component
// driven by a clock.
package countercomp

import (
	"fmt"
	"sync/atomic"

	"github.com/sarchlab/counterreg/clock"
	"github.com/sarchlab/counterreg/counter"
	"github.com/sarchlab/counterreg/hooking"
	"github.com/sarchlab/counterreg/stimulus"
	"github.com/sarchlab/counterreg/timing"
)

// HookPosEdge marks the hook invoked after every rising edge. The hook item
// is an EdgeSample.
var HookPosEdge = &hooking.HookPos{Name: "CounterEdge"}

// EdgeSample records what happened at one rising edge.
type EdgeSample struct {
	Cycle  uint64
	Time   timing.VTimeInSec
	Reset  bool
	Enable bool
	Before uint8
	After  uint8
	Rule   counter.Rule
}

// Comp is a counter register that samples its control signals from a
// stimulus source at each rising edge.
type Comp struct {
	*hooking.HookableBase

	name     string
	freq     timing.Freq
	register *counter.Register
	source   stimulus.Source

	// observed mirrors the register so that observers on other goroutines
	// can read it while the engine runs.
	observed atomic.Uint32
}

// Name returns the name of the component.
func (c *Comp) Name() string {
	return c.name
}

// Count returns the value of the register after the most recent edge.
func (c *Comp) Count() uint8 {
	return uint8(c.observed.Load())
}

// OnRisingEdge samples the control signals and updates the register.
func (c *Comp) OnRisingEdge(edge clock.RisingEdge) error {
	signals, err := c.source.Sample(edge.Cycle)
	if err != nil {
		return fmt.Errorf("%s: sampling control signals: %w", c.name, err)
	}

	before := c.register.Count()
	c.register.OnRisingEdge(signals.Reset, signals.Enable)
	after := c.register.Count()
	c.observed.Store(uint32(after))

	sample := EdgeSample{
		Cycle:  edge.Cycle,
		Time:   c.freq.TimeOf(timing.VTimeInCycle(edge.Cycle)),
		Reset:  signals.Reset,
		Enable: signals.Enable,
		Before: before,
		After:  after,
		Rule:   c.register.LastRule(),
	}

	c.InvokeHook(hooking.HookCtx{
		Domain: c,
		Pos:    HookPosEdge,
		Item:   sample,
	})

	return nil
}

var _ clock.EdgeListener = (*Comp)(nil)
