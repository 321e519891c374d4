package boost

import (
	"slices"
	"strconv"

	"github.com/boostpow/boostpub/internal/difficulty"
)

// DefaultRankMarkers are the leaderboard positions annotated on the slider
// when the caller asks for rank markers without naming any.
var DefaultRankMarkers = []int{1, 5, 10, 25, 50, 100}

// RankMarkers returns a slider mark at the difficulty of each requested rank
// position, labelled "#N". Ranks past the end of the list are skipped.
// An empty ranks slice selects DefaultRankMarkers.
func RankMarkers(list RankedList, ranks []int) []difficulty.Mark {
	if len(ranks) == 0 {
		ranks = DefaultRankMarkers
	}

	markers := []difficulty.Mark{}
	for idx, s := range list {
		rank := idx + 1
		if slices.Contains(ranks, rank) {
			markers = append(markers, difficulty.Mark{
				Value: s.TotalDifficulty,
				Label: "#" + strconv.Itoa(rank),
			})
		}
	}
	return markers
}
