package netlist

import (
	"errors"
	"fmt"
)

// ErrCombinationalLoop is returned when the combinational gates of a module
// form a cycle that does not pass through a DFF.
var ErrCombinationalLoop = errors.New("netlist: combinational loop")

// Simulator evaluates a module cycle by cycle. All DFFs share one clock and
// start at 0.
type Simulator struct {
	module *Module
	values map[string]bool

	inputs map[string]bool
	comb   []Gate
	dffs   []Gate
}

// NewSimulator checks the module and orders its combinational gates.
func NewSimulator(m *Module) (*Simulator, error) {
	s := &Simulator{
		module: m,
		values: make(map[string]bool),
		inputs: make(map[string]bool),
	}

	for _, sig := range m.Signals() {
		if sig.Width != 1 {
			continue
		}

		s.values[sig.Name] = false
		if sig.Input {
			s.inputs[sig.Name] = true
		}
	}
	s.values[Const1] = true

	if err := s.order(); err != nil {
		return nil, err
	}

	s.settle()

	return s, nil
}

func (s *Simulator) order() error {
	drivers := make(map[string]int)
	var comb []Gate

	for _, g := range s.module.Gates() {
		if s.inputs[g.Output] || g.Output == Const0 || g.Output == Const1 {
			return fmt.Errorf("netlist: gate %s drives a primary input", g)
		}

		drivers[g.Output]++
		if drivers[g.Output] > 1 {
			return fmt.Errorf("netlist: signal %q has more than one driver",
				g.Output)
		}

		if g.Op == OpDFF {
			if !s.inputs[g.Inputs[1]] {
				return fmt.Errorf("netlist: DFF %s is not clocked by an input",
					g.Output)
			}

			s.dffs = append(s.dffs, g)
			continue
		}

		comb = append(comb, g)
	}

	combByOutput := make(map[string]int, len(comb))
	for i, g := range comb {
		combByOutput[g.Output] = i
	}

	pending := make([]int, len(comb))
	users := make(map[string][]int)
	for i, g := range comb {
		for _, in := range g.Inputs {
			if _, isComb := combByOutput[in]; isComb {
				pending[i]++
				users[in] = append(users[in], i)
			}
		}
	}

	ready := make([]int, 0, len(comb))
	for i := range comb {
		if pending[i] == 0 {
			ready = append(ready, i)
		}
	}

	for len(ready) > 0 {
		i := ready[0]
		ready = ready[1:]
		s.comb = append(s.comb, comb[i])

		for _, u := range users[comb[i].Output] {
			pending[u]--
			if pending[u] == 0 {
				ready = append(ready, u)
			}
		}
	}

	if len(s.comb) != len(comb) {
		return ErrCombinationalLoop
	}

	return nil
}

func (s *Simulator) settle() {
	for _, g := range s.comb {
		s.values[g.Output] = s.eval(g)
	}
}

func (s *Simulator) eval(g Gate) bool {
	in := func(i int) bool { return s.values[g.Inputs[i]] }

	switch g.Op {
	case OpAnd:
		return in(0) && in(1)
	case OpOr:
		return in(0) || in(1)
	case OpXor:
		return in(0) != in(1)
	case OpNot:
		return !in(0)
	case OpBuf:
		return in(0)
	case OpMux:
		if in(0) {
			return in(1)
		}
		return in(2)
	default:
		panic(fmt.Sprintf("netlist: cannot evaluate %s", g.Op))
	}
}

func (s *Simulator) applyInputs(inputs map[string]bool) error {
	for name, v := range inputs {
		if !s.inputs[name] {
			return fmt.Errorf("netlist: %q is not a primary input", name)
		}

		s.values[name] = v
	}

	return nil
}

// Evaluate applies the inputs and settles the combinational logic without
// clocking any DFF.
func (s *Simulator) Evaluate(inputs map[string]bool) error {
	if err := s.applyInputs(inputs); err != nil {
		return err
	}

	s.settle()

	return nil
}

// RisingEdge applies the inputs, latches every DFF at once and settles the
// logic again so that outputs show the new state.
func (s *Simulator) RisingEdge(inputs map[string]bool) error {
	if err := s.Evaluate(inputs); err != nil {
		return err
	}

	next := make([]bool, len(s.dffs))
	for i, d := range s.dffs {
		next[i] = s.values[d.Inputs[0]]
	}

	for i, d := range s.dffs {
		s.values[d.Output] = next[i]
	}

	s.settle()

	return nil
}

// Preset forces the value of a DFF output, modelling its power-on state.
func (s *Simulator) Preset(name string, v bool) error {
	for _, d := range s.dffs {
		if d.Output == name {
			s.values[name] = v
			s.settle()

			return nil
		}
	}

	return fmt.Errorf("netlist: %q is not driven by a DFF", name)
}

// PresetBus presets the bits <base>_0 .. <base>_<width-1> from v.
func (s *Simulator) PresetBus(base string, width int, v uint64) error {
	for i := 0; i < width; i++ {
		if err := s.Preset(BitName(base, i), v&(1<<i) != 0); err != nil {
			return err
		}
	}

	return nil
}

// Value returns the current value of a 1-bit signal.
func (s *Simulator) Value(name string) (bool, error) {
	v, ok := s.values[name]
	if !ok {
		return false, fmt.Errorf("netlist: unknown 1-bit signal %q", name)
	}

	return v, nil
}

// Bus reads <base>_0 .. <base>_<width-1> as an unsigned number.
func (s *Simulator) Bus(base string, width int) (uint64, error) {
	var out uint64

	for i := 0; i < width; i++ {
		v, err := s.Value(BitName(base, i))
		if err != nil {
			return 0, err
		}

		if v {
			out |= 1 << i
		}
	}

	return out, nil
}
