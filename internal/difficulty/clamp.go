package difficulty

// Clamp returns value constrained to [minDiff, maxDiff].
// Callers must ensure minDiff <= maxDiff.
func Clamp(value, minDiff, maxDiff float64) float64 {
	if value < minDiff {
		return minDiff
	}
	if value > maxDiff {
		return maxDiff
	}
	return value
}
