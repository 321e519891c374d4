package difficulty

import "math"

// DefaultMarginRate is the minimum distance, as a fraction of the slider
// length, between the end marks and their nearest intermediate mark.
const DefaultMarginRate = 0.035

// SliderMarks returns marks from minDiff to maxDiff at every multiple of step.
//
// The first intermediate marks are skipped while they sit closer than
// marginRate to minDiff, and the last intermediate mark is dropped when it sits
// closer than marginRate to maxDiff, so labels never collide with the end
// marks. A marginRate outside (0, 1) falls back to DefaultMarginRate. A step
// of zero or less yields no marks.
func SliderMarks(minDiff, maxDiff float64, step int, marginRate float64) []Mark {
	if step <= 0 {
		return []Mark{}
	}
	if !(marginRate > 0 && marginRate < 1) {
		marginRate = DefaultMarginRate
	}

	marks := []Mark{NewMark(minDiff)}
	if maxDiff == minDiff {
		return marks
	}

	length := maxDiff - minDiff
	for _, v := range multiplesBetween(minDiff, maxDiff, step) {
		if len(marks) == 1 && (v-minDiff)/length < marginRate {
			continue
		}
		marks = append(marks, NewMark(v))
	}

	if len(marks) > 1 {
		last := marks[len(marks)-1]
		if 1-(last.Value-minDiff)/length < marginRate {
			marks = marks[:len(marks)-1]
		}
	}

	return append(marks, NewMark(maxDiff))
}

// multiplesBetween returns the multiples of step strictly between lo and hi,
// in ascending order. Non-finite bounds yield nothing.
func multiplesBetween(lo, hi float64, step int) []float64 {
	n := countMultiples(lo, hi, step)
	if n == 0 {
		return nil
	}
	s := float64(step)
	first := math.Floor(lo/s) + 1
	out := make([]float64, 0, int(n))
	for i := range int(n) {
		out = append(out, (first+float64(i))*s)
	}
	return out
}
