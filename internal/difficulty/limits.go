package difficulty

import (
	"errors"
	"fmt"
	"math"
)

// MaxMarks is the largest number of step multiples a range may hold before
// CheckRange refuses it.
const MaxMarks = 10000

var (
	// ErrNonFinite is returned for NaN or infinite bounds.
	ErrNonFinite = errors.New("difficulty bounds must be finite")
	// ErrTooManyMarks is returned when a range holds more than MaxMarks
	// multiples of its step.
	ErrTooManyMarks = errors.New("too many marks for range")
)

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// CheckRange reports whether SliderMarks and Options can enumerate the range
// at step without exceeding MaxMarks entries.
func CheckRange(minDiff, maxDiff float64, step int) error {
	if !IsFinite(minDiff) || !IsFinite(maxDiff) {
		return ErrNonFinite
	}
	if n := countMultiples(minDiff, maxDiff, step); n > MaxMarks {
		return fmt.Errorf("%w: %s to %s at step %d gives %.0f marks, limit %d",
			ErrTooManyMarks, FormatValue(minDiff), FormatValue(maxDiff), step, n, MaxMarks)
	}
	return nil
}

// FitStep widens step until the range holds at most limit multiples of it.
// A step of zero or less is returned unchanged.
func FitStep(minDiff, maxDiff float64, step, limit int) int {
	if step <= 0 || limit <= 0 || !IsFinite(minDiff) || !IsFinite(maxDiff) {
		return step
	}
	if countMultiples(minDiff, maxDiff, step) <= float64(limit) {
		return step
	}

	wide := math.Ceil((maxDiff - minDiff) / float64(limit))
	if wide >= math.MaxInt32 {
		return math.MaxInt32
	}
	step = max(step, int(wide))
	for countMultiples(minDiff, maxDiff, step) > float64(limit) && step < math.MaxInt32/2 {
		step *= 2
	}
	return step
}

// countMultiples counts the multiples of step strictly between lo and hi.
func countMultiples(lo, hi float64, step int) float64 {
	if step <= 0 || !(hi > lo) || !IsFinite(lo) || !IsFinite(hi) {
		return 0
	}
	s := float64(step)
	first := math.Floor(lo/s) + 1
	last := math.Ceil(hi/s) - 1
	if last < first {
		return 0
	}
	return last - first + 1
}
