package datarecording

import (
	"context"
	"fmt"

	"github.com/sarchlab/counterreg/countercomp"
	"github.com/sarchlab/counterreg/hooking"
	"github.com/sarchlab/counterreg/idgen"
)

// EdgeTable is the table that holds edge samples.
const EdgeTable = "counter_edges"

// EdgeEntry is one row of the edge table.
type EdgeEntry struct {
	ID        string
	Component string
	Cycle     uint64
	Time      float64
	Reset     bool
	Enable    bool
	Before    uint8
	After     uint8
	Rule      string
}

// EdgeRecorder is a hook that writes every edge sample of a counter into a
// DataRecorder.
type EdgeRecorder struct {
	recorder DataRecorder
	ids      idgen.Generator
}

// NewEdgeRecorder creates the edge table and returns the hook.
func NewEdgeRecorder(recorder DataRecorder) *EdgeRecorder {
	recorder.CreateTable(EdgeTable, EdgeEntry{})

	return &EdgeRecorder{
		recorder: recorder,
		ids:      idgen.NewParallel(),
	}
}

// Func records the edge sample.
func (r *EdgeRecorder) Func(ctx hooking.HookCtx) {
	if ctx.Pos != countercomp.HookPosEdge {
		return
	}

	sample, ok := ctx.Item.(countercomp.EdgeSample)
	if !ok {
		return
	}

	name := ""
	if c, ok := ctx.Domain.(*countercomp.Comp); ok {
		name = c.Name()
	}

	r.recorder.InsertData(EdgeTable, EdgeEntry{
		ID:        r.ids.Generate(),
		Component: name,
		Cycle:     sample.Cycle,
		Time:      float64(sample.Time),
		Reset:     sample.Reset,
		Enable:    sample.Enable,
		Before:    sample.Before,
		After:     sample.After,
		Rule:      sample.Rule.String(),
	})
}

// ReadEdges returns the recorded edges of a component in cycle order.
func ReadEdges(
	ctx context.Context,
	reader DataReader,
	component string,
) ([]EdgeEntry, error) {
	reader.MapTable(EdgeTable, EdgeEntry{})

	rows, _, err := reader.Query(ctx, EdgeTable, QueryParams{
		Where:   "Component = ?",
		Args:    []any{component},
		OrderBy: "Cycle ASC",
	})
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", EdgeTable, err)
	}

	edges := make([]EdgeEntry, 0, len(rows))
	for _, row := range rows {
		edges = append(edges, *row.(*EdgeEntry))
	}

	return edges, nil
}
