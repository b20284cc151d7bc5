// Package counter models a 4-bit synchronous counting register.
//
// The register changes value only when OnRisingEdge is called. Reset takes
// precedence over enable; an enabled edge increments the count modulo 16; an
// edge with neither input asserted holds the value. The register never
// schedules edges on its own.
package counter

// Width is the number of bits held by the register.
const Width = 4

// Modulus is the number of distinct values the register can hold.
const Modulus = 1 << Width

// Max is the largest value the register can hold.
const Max = Modulus - 1

// Rule identifies which transition an edge applied.
type Rule int

// Transitions, in priority order.
const (
	RuleNone Rule = iota
	RuleReset
	RuleIncrement
	RuleHold
)

func (r Rule) String() string {
	switch r {
	case RuleNone:
		return "none"
	case RuleReset:
		return "reset"
	case RuleIncrement:
		return "increment"
	case RuleHold:
		return "hold"
	default:
		return "unknown"
	}
}

// Next is the transition function of the register. The count is masked to
// Width bits before the transition is applied.
func Next(count uint8, reset, enable bool) (uint8, Rule) {
	count &= Max

	switch {
	case reset:
		return 0, RuleReset
	case enable:
		return (count + 1) & Max, RuleIncrement
	default:
		return count, RuleHold
	}
}

// Register holds the current count.
//
// Real hardware powers up with an undefined value. NewRegister picks 0
// instead; NewRegisterAt can reproduce any other power-on value.
type Register struct {
	count    uint8
	lastRule Rule
}

// NewRegister creates a register with a power-on value of 0.
func NewRegister() *Register {
	return &Register{}
}

// NewRegisterAt creates a register whose power-on value is v masked to Width
// bits.
func NewRegisterAt(v uint8) *Register {
	return &Register{count: v & Max}
}

// OnRisingEdge applies exactly one transition using the reset and enable
// values sampled at the edge.
func (r *Register) OnRisingEdge(reset, enable bool) {
	r.count, r.lastRule = Next(r.count, reset, enable)
}

// Count returns the current value. It never changes the register.
func (r *Register) Count() uint8 {
	return r.count
}

// LastRule returns the transition applied by the most recent edge, or
// RuleNone if no edge has been delivered yet.
func (r *Register) LastRule() Rule {
	return r.lastRule
}
