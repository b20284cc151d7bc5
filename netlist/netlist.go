// Package netlist describes the counter at gate level: 1-bit primitives and
// D flip-flops, with a simulator and BLIF/JSON exporters.
package netlist

import (
	"fmt"
	"strconv"
)

// Op is the type of a gate.
type Op string

// Gate types. MUX inputs are [sel, whenTrue, whenFalse]. DFF inputs are
// [d, clk] and the DFF latches d on the rising edge of clk.
const (
	OpAnd Op = "AND"
	OpOr  Op = "OR"
	OpXor Op = "XOR"
	OpNot Op = "NOT"
	OpBuf Op = "BUF"
	OpMux Op = "MUX"
	OpDFF Op = "DFF"
)

func (op Op) arity() int {
	switch op {
	case OpNot, OpBuf:
		return 1
	case OpAnd, OpOr, OpXor, OpDFF:
		return 2
	case OpMux:
		return 3
	default:
		return -1
	}
}

// Names of the constant drivers.
const (
	Const0 = "CONST0"
	Const1 = "CONST1"
)

// Signal is a wire or a register.
type Signal struct {
	Name   string
	Width  int
	Input  bool
	Output bool
	Reg    bool
}

func (s Signal) String() string {
	direction := "WIRE"
	switch {
	case s.Input:
		direction = "IN"
	case s.Output:
		direction = "OUT"
	}

	kind := "NET"
	if s.Reg {
		kind = "REG"
	}

	return fmt.Sprintf("<%s [%d] %s %s>", s.Name, s.Width, direction, kind)
}

// Gate is a 1-bit logic operation driving one signal.
type Gate struct {
	Op     Op
	Inputs []string
	Output string
}

func (g Gate) String() string {
	return fmt.Sprintf("[%s] %v -> %s", g.Op, g.Inputs, g.Output)
}

// Module holds the signals and gates of one design. Signals keep the order in
// which they were added.
type Module struct {
	Name string

	signals []*Signal
	byName  map[string]*Signal
	gates   []Gate
}

// NewModule creates an empty module.
func NewModule(name string) *Module {
	return &Module{
		Name:   name,
		byName: make(map[string]*Signal),
	}
}

// AddSignal adds a signal. Adding a name twice returns the existing signal.
func (m *Module) AddSignal(s Signal) *Signal {
	if existing, ok := m.byName[s.Name]; ok {
		return existing
	}

	sig := &s
	m.signals = append(m.signals, sig)
	m.byName[s.Name] = sig

	return sig
}

// AddBus adds a multi-bit signal together with one 1-bit signal per bit,
// named <name>_<i> with bit 0 the least significant. It returns the bit
// names.
func (m *Module) AddBus(s Signal) []string {
	m.AddSignal(s)

	bits := make([]string, s.Width)
	for i := range bits {
		bit := s
		bit.Name = BitName(s.Name, i)
		bit.Width = 1
		m.AddSignal(bit)
		bits[i] = bit.Name
	}

	return bits
}

// Signal looks up a signal by name.
func (m *Module) Signal(name string) (*Signal, bool) {
	s, ok := m.byName[name]
	return s, ok
}

// Signals returns all signals in insertion order.
func (m *Module) Signals() []*Signal {
	return m.signals
}

// Gates returns all gates in insertion order.
func (m *Module) Gates() []Gate {
	return m.gates
}

// AddGate appends a gate. All the signals it names must exist.
func (m *Module) AddGate(op Op, output string, inputs ...string) error {
	if n := op.arity(); n < 0 {
		return fmt.Errorf("netlist: unsupported gate type %q", op)
	} else if n != len(inputs) {
		return fmt.Errorf("netlist: %s gate driving %s wants %d inputs, got %d",
			op, output, n, len(inputs))
	}

	for _, name := range append([]string{output}, inputs...) {
		s, ok := m.byName[name]
		if !ok {
			return fmt.Errorf("netlist: unknown signal %q", name)
		}

		if s.Width != 1 {
			return fmt.Errorf("netlist: signal %q is %d bits wide", name, s.Width)
		}
	}

	m.gates = append(m.gates, Gate{
		Op:     op,
		Inputs: append([]string(nil), inputs...),
		Output: output,
	})

	return nil
}

// BitName returns the name of bit i of a bus.
func BitName(base string, i int) string {
	return base + "_" + strconv.Itoa(i)
}
