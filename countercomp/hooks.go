package countercomp

import (
	"log"
	"sync"

	"github.com/sarchlab/counterreg/hooking"
)

// EdgeLogger is a hook that prints every edge sample.
type EdgeLogger struct {
	logger *log.Logger
}

// NewEdgeLogger returns a new EdgeLogger which will write in to the logger.
func NewEdgeLogger(logger *log.Logger) *EdgeLogger {
	return &EdgeLogger{logger: logger}
}

// Func writes the edge sample into the logger.
func (h *EdgeLogger) Func(ctx hooking.HookCtx) {
	if ctx.Pos != HookPosEdge {
		return
	}

	sample, ok := ctx.Item.(EdgeSample)
	if !ok {
		return
	}

	name := ""
	if c, ok := ctx.Domain.(*Comp); ok {
		name = c.Name()
	}

	h.logger.Printf("%.10f, %s, cycle %d, reset %t, enable %t, %d -> %d (%s)",
		sample.Time, name, sample.Cycle, sample.Reset, sample.Enable,
		sample.Before, sample.After, sample.Rule)
}

// TraceCollector is a hook that keeps every edge sample in memory.
type TraceCollector struct {
	lock    sync.Mutex
	samples []EdgeSample
}

// NewTraceCollector creates an empty TraceCollector.
func NewTraceCollector() *TraceCollector {
	return &TraceCollector{}
}

// Func appends the edge sample to the trace.
func (t *TraceCollector) Func(ctx hooking.HookCtx) {
	if ctx.Pos != HookPosEdge {
		return
	}

	sample, ok := ctx.Item.(EdgeSample)
	if !ok {
		return
	}

	t.lock.Lock()
	t.samples = append(t.samples, sample)
	t.lock.Unlock()
}

// Samples returns a copy of the collected samples.
func (t *TraceCollector) Samples() []EdgeSample {
	t.lock.Lock()
	defer t.lock.Unlock()

	out := make([]EdgeSample, len(t.samples))
	copy(out, t.samples)

	return out
}

// Counts returns the register value after each collected edge.
func (t *TraceCollector) Counts() []uint8 {
	samples := t.Samples()

	counts := make([]uint8, len(samples))
	for i, s := range samples {
		counts[i] = s.After
	}

	return counts
}
