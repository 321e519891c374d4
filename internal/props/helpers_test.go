package props

import "github.com/boostpow/boostpub/internal/boost"

func listOf(difficulties ...float64) boost.RankedList {
	list := make(boost.RankedList, len(difficulties))
	for i, d := range difficulties {
		list[i] = boost.Submission{TotalDifficulty: d}
	}
	return list
}
