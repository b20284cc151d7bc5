package stimulus

import (
	"errors"
	"fmt"
	"os"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// ErrScript is returned when a stimulus script fails to load or returns a
// value that is not a pair of signals.
var ErrScript = errors.New("stimulus: script error")

// Script is a Source backed by a Starlark program. The program must define
//
//	def signals(cycle):
//	    return (reset, enable)
//
// Any truthy value counts as asserted. The program may also return a single
// string in the schedule signal form, such as "re" or "-".
type Script struct {
	name   string
	thread *starlark.Thread
	fn     starlark.Callable
}

// LoadScript reads and compiles a Starlark stimulus file.
func LoadScript(path string) (*Script, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("stimulus: reading %s: %w", path, err)
	}

	return NewScript(path, string(src))
}

// NewScript compiles a Starlark stimulus program held in memory.
func NewScript(name, src string) (*Script, error) {
	thread := &starlark.Thread{Name: name}
	opts := syntax.FileOptions{}

	globals, err := starlark.ExecFileOptions(&opts, thread, name, src, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrScript, name, err)
	}

	value, ok := globals["signals"]
	if !ok {
		return nil, fmt.Errorf("%w: %s does not define signals(cycle)",
			ErrScript, name)
	}

	fn, ok := value.(starlark.Callable)
	if !ok {
		return nil, fmt.Errorf("%w: %s: signals is a %s, not a function",
			ErrScript, name, value.Type())
	}

	return &Script{name: name, thread: thread, fn: fn}, nil
}

// Sample calls signals(cycle) in the script.
func (s *Script) Sample(cycle uint64) (Signals, error) {
	args := starlark.Tuple{starlark.MakeUint64(cycle)}

	rv, err := starlark.Call(s.thread, s.fn, args, nil)
	if err != nil {
		return Signals{}, fmt.Errorf("%w: %s at cycle %d: %v",
			ErrScript, s.name, cycle, err)
	}

	switch v := rv.(type) {
	case starlark.String:
		signals, err := parseSignals(string(v))
		if err != nil {
			return Signals{}, fmt.Errorf("%w: %s at cycle %d: %v",
				ErrScript, s.name, cycle, err)
		}

		return signals, nil
	case starlark.Indexable:
		if v.Len() != 2 {
			return Signals{}, fmt.Errorf(
				"%w: %s at cycle %d: want 2 values, got %d",
				ErrScript, s.name, cycle, v.Len())
		}

		return Signals{
			Reset:  bool(v.Index(0).Truth()),
			Enable: bool(v.Index(1).Truth()),
		}, nil
	default:
		return Signals{}, fmt.Errorf(
			"%w: %s at cycle %d: signals returned %s",
			ErrScript, s.name, cycle, rv.Type())
	}
}
