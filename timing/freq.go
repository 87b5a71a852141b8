// Package timing defines clock frequencies and the conversion between
// continuous time and clock cycles.
package timing

import (
	"log"
	"math"
)

// VTimeInSec is a duration or a point in time, in seconds.
type VTimeInSec float64

// Freq defines the type of frequency
type Freq float64

// Defines the unit of frequency
const (
	Hz  Freq = 1
	KHz Freq = 1e3
	MHz Freq = 1e6
	GHz Freq = 1e9
)

// Period returns the time between two consecutive ticks
func (f Freq) Period() VTimeInSec {
	if f == 0 {
		log.Panic("frequency cannot be 0")
	}

	return VTimeInSec(1.0 / f)
}

// Cycle converts a time to the number of cycles passed since time 0, rounded
// to the closest cycle.
func (f Freq) Cycle(time VTimeInSec) uint64 {
	return uint64(math.Round(float64(time) * float64(f)))
}

// CeilCycles returns the number of whole cycles needed to cover the given
// time. A time that lands exactly on a cycle boundary is not rounded up. NaN
// and infinite times propagate.
//
//	Input
//	(          ]
//	|----------|----------|----->
//	           |
//	           Output
func (f Freq) CeilCycles(time VTimeInSec) float64 {
	return math.Ceil(float64(time) * float64(f))
}

// NoEarlierThan returns the tick time that is at or right after the given time
func (f Freq) NoEarlierThan(t VTimeInSec) VTimeInSec {
	if math.IsNaN(float64(t)) {
		log.Panic("invalid time")
	}

	return VTimeInSec(f.CeilCycles(t)) * f.Period()
}
