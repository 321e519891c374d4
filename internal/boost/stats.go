package boost

import (
	"errors"
	"math"
)

// ErrNoRankData is returned when statistics are requested for an empty
// leaderboard. Check HasRankData first.
var ErrNoRankData = errors.New("no rank data")

// Stats summarizes a leaderboard for slider configuration.
type Stats struct {
	// Min is the floor of the lowest-ranked difficulty.
	Min float64 `json:"min"`
	// Max is the rounded top difficulty.
	Max float64 `json:"max"`
	// IncMax is the top difficulty inflated by the increment rate: the
	// ceiling a new boost has to reach to take rank 1 with margin.
	IncMax float64 `json:"incMax"`
}

// Analyze reduces a descending leaderboard into its slider bounds.
// An incrementRate that is not positive counts as 1.
func Analyze(list RankedList, incrementRate float64) (Stats, error) {
	if len(list) == 0 {
		return Stats{}, ErrNoRankData
	}
	if !(incrementRate > 0) {
		incrementRate = 1
	}

	top := list[0].TotalDifficulty
	bottom := list[len(list)-1].TotalDifficulty
	return Stats{
		Min:    math.Floor(bottom),
		Max:    roundHalfUp(top),
		IncMax: roundHalfUp(top * incrementRate),
	}, nil
}

// roundHalfUp rounds to the nearest integer, with halves going toward +Inf.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
