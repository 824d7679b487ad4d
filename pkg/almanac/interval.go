package almanac

import (
	"fmt"
	"math"
)

// Interval is the closed integer range [Start, Stop]
type Interval struct {
	Start int
	Stop  int
}

func (i Interval) Len() int {
	return i.Stop - i.Start + 1
}

func (i Interval) Contains(v int) bool {
	return i.Start <= v && v <= i.Stop
}

func (i Interval) Shift(delta int) Interval {
	return Interval{i.Start + delta, i.Stop + delta}
}

func (i Interval) String() string {
	return fmt.Sprintf("[%d, %d]", i.Start, i.Stop)
}

// MinStart returns the lowest start across intervals, or false for an empty set
func MinStart(intervals []Interval) (int, bool) {
	if len(intervals) == 0 {
		return 0, false
	}
	lowest := math.MaxInt
	for _, in := range intervals {
		lowest = min(lowest, in.Start)
	}
	return lowest, true
}
