package stimulus

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrBadSchedule is returned when a schedule string cannot be parsed.
var ErrBadSchedule = errors.New("stimulus: bad schedule")

type scheduleEntry struct {
	first, last uint64
	signals     Signals
}

// Schedule is a Source described by a list of cycle ranges.
//
// The text form is a comma separated list of "<cycles>:<signals>" entries.
// Cycles are a single cycle "4", an inclusive range "1-16", or an open range
// "20-". Signals are any combination of "r" (reset) and "e" (enable), or "-"
// for both low. When entries overlap, the later one wins. Cycles that no
// entry covers sample both signals low.
//
//	0:r,1-16:e,17:re,18-:-
type Schedule struct {
	entries []scheduleEntry
}

// ParseSchedule parses the text form of a Schedule.
func ParseSchedule(text string) (*Schedule, error) {
	s := &Schedule{}

	text = strings.TrimSpace(text)
	if text == "" {
		return s, nil
	}

	for _, token := range strings.Split(text, ",") {
		entry, err := parseEntry(strings.TrimSpace(token))
		if err != nil {
			return nil, err
		}

		s.entries = append(s.entries, entry)
	}

	return s, nil
}

// MustParseSchedule is like ParseSchedule but panics on error.
func MustParseSchedule(text string) *Schedule {
	s, err := ParseSchedule(text)
	if err != nil {
		panic(err)
	}

	return s
}

func parseEntry(token string) (scheduleEntry, error) {
	cycles, flags, found := strings.Cut(token, ":")
	if !found {
		return scheduleEntry{}, fmt.Errorf("%w: %q has no ':'", ErrBadSchedule, token)
	}

	first, last, err := parseCycles(strings.TrimSpace(cycles))
	if err != nil {
		return scheduleEntry{}, fmt.Errorf("%w: %q: %v", ErrBadSchedule, token, err)
	}

	signals, err := parseSignals(strings.TrimSpace(flags))
	if err != nil {
		return scheduleEntry{}, fmt.Errorf("%w: %q: %v", ErrBadSchedule, token, err)
	}

	return scheduleEntry{first: first, last: last, signals: signals}, nil
}

func parseCycles(text string) (first, last uint64, err error) {
	lo, hi, isRange := strings.Cut(text, "-")

	first, err = strconv.ParseUint(lo, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad cycle %q", lo)
	}

	if !isRange {
		return first, first, nil
	}

	if hi == "" {
		return first, math.MaxUint64, nil
	}

	last, err = strconv.ParseUint(hi, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad cycle %q", hi)
	}

	if last < first {
		return 0, 0, fmt.Errorf("range %d-%d is empty", first, last)
	}

	return first, last, nil
}

func parseSignals(text string) (Signals, error) {
	if text == "-" {
		return Signals{}, nil
	}

	if text == "" {
		return Signals{}, errors.New("no signals")
	}

	s := Signals{}
	for _, c := range text {
		switch c {
		case 'r', 'R':
			s.Reset = true
		case 'e', 'E':
			s.Enable = true
		default:
			return Signals{}, fmt.Errorf("unknown signal %q", c)
		}
	}

	return s, nil
}

// Sample returns the signals of the last entry that covers the cycle.
func (s *Schedule) Sample(cycle uint64) (Signals, error) {
	for i := len(s.entries) - 1; i >= 0; i-- {
		e := s.entries[i]
		if cycle >= e.first && cycle <= e.last {
			return e.signals, nil
		}
	}

	return Signals{}, nil
}

// String returns the text form of the schedule.
func (s *Schedule) String() string {
	tokens := make([]string, 0, len(s.entries))

	for _, e := range s.entries {
		var cycles string

		switch {
		case e.first == e.last:
			cycles = strconv.FormatUint(e.first, 10)
		case e.last == math.MaxUint64:
			cycles = strconv.FormatUint(e.first, 10) + "-"
		default:
			cycles = fmt.Sprintf("%d-%d", e.first, e.last)
		}

		tokens = append(tokens, cycles+":"+e.signals.String())
	}

	return strings.Join(tokens, ",")
}
