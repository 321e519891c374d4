package boost

func listOf(difficulties ...float64) RankedList {
	list := make(RankedList, len(difficulties))
	for i, d := range difficulties {
		list[i] = Submission{TotalDifficulty: d}
	}
	return list
}
