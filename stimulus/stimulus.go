// Package stimulus provides the control signals sampled by the counter at
// each rising edge.
package stimulus

// Signals are the control inputs sampled at one rising edge.
type Signals struct {
	Reset  bool
	Enable bool
}

func (s Signals) String() string {
	switch {
	case s.Reset && s.Enable:
		return "re"
	case s.Reset:
		return "r"
	case s.Enable:
		return "e"
	default:
		return "-"
	}
}

// A Source supplies the control signals for a given cycle. Sources keep no
// state that depends on which cycles were sampled before.
type Source interface {
	Sample(cycle uint64) (Signals, error)
}

// Constant is a Source that returns the same signals every cycle.
type Constant Signals

// Sample returns the constant signals.
func (c Constant) Sample(uint64) (Signals, error) {
	return Signals(c), nil
}
