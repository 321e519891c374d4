package boost

import (
	"cmp"
	"slices"
)

// RankedList is a leaderboard ordered from the highest difficulty (rank 1)
// to the lowest. The provider is trusted to deliver it in that order.
type RankedList []Submission

// HasRankData reports whether the list holds at least one submission.
func HasRankData(list RankedList) bool {
	return len(list) > 0
}

// RankOf returns the 1-based rank a submission of the given difficulty would
// take in list. Entries are scanned from the lowest rank upward and the first
// one with a strictly greater difficulty places the candidate right below it,
// so ties go to the candidate. The result is within [1, len(list)+1].
func RankOf(list RankedList, difficulty float64) int {
	for i := len(list) - 1; i >= 0; i-- {
		if list[i].TotalDifficulty > difficulty {
			return i + 2
		}
	}
	return 1
}

// SortedDescending returns a copy of the list ordered by descending
// difficulty. Entries with equal difficulty keep their relative order.
func (l RankedList) SortedDescending() RankedList {
	out := slices.Clone(l)
	slices.SortStableFunc(out, func(a, b Submission) int {
		return cmp.Compare(b.TotalDifficulty, a.TotalDifficulty)
	})
	return out
}

// Difficulties returns the difficulty of every entry, in list order.
func (l RankedList) Difficulties() []float64 {
	out := make([]float64, len(l))
	for i, s := range l {
		out[i] = s.TotalDifficulty
	}
	return out
}
