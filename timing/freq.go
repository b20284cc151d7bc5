package timing

import (
	"errors"
	"log"
	"math"
)

// ErrZeroFrequency is returned when a clock domain is configured with a
// frequency that is zero, negative or not a number.
var ErrZeroFrequency = errors.New("timing: frequency must be positive")

// VTimeInSec defines the time in the simulated space in the unit of second.
type VTimeInSec float64

// VTimeInCycle is the simulated time counted in cycles of a clock domain.
type VTimeInCycle uint64

// Freq defines the type of frequency.
type Freq float64

// Defines the unit of frequency.
const (
	Hz  Freq = 1
	KHz Freq = 1e3
	MHz Freq = 1e6
	GHz Freq = 1e9
)

// Validate reports whether the frequency can drive a clock.
func (f Freq) Validate() error {
	if f <= 0 || math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
		return ErrZeroFrequency
	}

	return nil
}

// Period returns the time between two consecutive ticks.
func (f Freq) Period() VTimeInSec {
	if f == 0 {
		log.Panic("frequency cannot be 0")
	}

	return VTimeInSec(1.0 / f)
}

// Cycle converts a time to the number of cycles passed since time 0.
func (f Freq) Cycle(time VTimeInSec) VTimeInCycle {
	return VTimeInCycle(math.Round(float64(time) * float64(f)))
}

// TimeOf returns the time at which the given cycle starts.
//
//	cycle   0          1          2
//	        |----------|----------|----->
//	        0          period     2*period
func (f Freq) TimeOf(cycle VTimeInCycle) VTimeInSec {
	return VTimeInSec(float64(cycle) / float64(f))
}
