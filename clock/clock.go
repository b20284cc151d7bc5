// Package clock generates rising edges on a timing engine and delivers them
// to listeners.
package clock

import (
	"errors"
	"fmt"

	"github.com/sarchlab/counterreg/idgen"
	"github.com/sarchlab/counterreg/timing"
)

// ErrAlreadyStarted is returned when Start is called on a running clock.
var ErrAlreadyStarted = errors.New("clock: already started")

// RisingEdge is the event the clock schedules for itself once per cycle.
type RisingEdge struct {
	// Cycle counts edges delivered by this clock, starting at 0.
	Cycle uint64
}

// An EdgeListener reacts to rising edges. Listeners are called in the order
// they were added. A listener error stops the clock.
type EdgeListener interface {
	OnRisingEdge(edge RisingEdge) error
}

// Clock is the only source of edges in a simulation.
type Clock struct {
	name      string
	engine    timing.EventScheduler
	freq      timing.Freq
	ids       idgen.Generator
	cycles    uint64
	listeners []EdgeListener

	started   bool
	stopped   bool
	delivered uint64
}

// Name returns the name of the clock.
func (c *Clock) Name() string {
	return c.name
}

// Freq returns the frequency of the clock.
func (c *Clock) Freq() timing.Freq {
	return c.freq
}

// AddListener registers a listener. Listeners must be added before Start.
func (c *Clock) AddListener(l EdgeListener) {
	if c.started {
		panic("clock: cannot add listener after start")
	}

	c.listeners = append(c.listeners, l)
}

// Start schedules the first edge at the current engine time.
func (c *Clock) Start() error {
	if c.started {
		return ErrAlreadyStarted
	}

	c.started = true
	if c.cycles == 0 && c.limited() {
		return nil
	}

	c.scheduleEdge(c.engine.CurrentTime(), 0)

	return nil
}

// Stop prevents the clock from delivering any further edge.
func (c *Clock) Stop() {
	c.stopped = true
}

// Delivered returns the number of edges delivered so far.
func (c *Clock) Delivered() uint64 {
	return c.delivered
}

// Handle delivers a rising edge to the listeners and schedules the next one.
func (c *Clock) Handle(event any) error {
	edge, ok := event.(*RisingEdge)
	if !ok {
		return fmt.Errorf("clock %s: unknown event type %T", c.name, event)
	}

	if c.stopped {
		return nil
	}

	for _, l := range c.listeners {
		if err := l.OnRisingEdge(*edge); err != nil {
			c.stopped = true
			return fmt.Errorf("clock %s: cycle %d: %w", c.name, edge.Cycle, err)
		}
	}

	c.delivered++

	if c.limited() && c.delivered >= c.cycles {
		return nil
	}

	if !c.stopped {
		c.scheduleEdge(c.engine.CurrentTime()+1, edge.Cycle+1)
	}

	return nil
}

func (c *Clock) limited() bool {
	return c.cycles != unlimited
}

func (c *Clock) scheduleEdge(at timing.VTimeInCycle, cycle uint64) {
	c.engine.Schedule(timing.ScheduledEvent{
		ID:      c.ids.Generate(),
		Event:   &RisingEdge{Cycle: cycle},
		Time:    at,
		Handler: c,
	})
}
