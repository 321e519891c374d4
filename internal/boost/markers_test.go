package boost

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/boostpow/boostpub/internal/difficulty"
)

func TestRankMarkers_Defaults(t *testing.T) {
	list := make(RankedList, 12)
	for i := range list {
		list[i] = Submission{TotalDifficulty: float64(120 - i*10)}
	}

	got := RankMarkers(list, nil)
	want := []difficulty.Mark{
		{Value: 120, Label: "#1"},
		{Value: 80, Label: "#5"},
		{Value: 30, Label: "#10"},
	}
	assert.Equal(t, want, got)
}

func TestRankMarkers_CustomRanks(t *testing.T) {
	list := listOf(50, 40, 30, 20)
	got := RankMarkers(list, []int{4, 2, 9})
	want := []difficulty.Mark{
		{Value: 40, Label: "#2"},
		{Value: 20, Label: "#4"},
	}
	assert.Equal(t, want, got, "output follows list order, ranks past the end are skipped")
}

func TestRankMarkers_EmptyList(t *testing.T) {
	got := RankMarkers(nil, nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
