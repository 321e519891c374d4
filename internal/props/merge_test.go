package props

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boostpow/boostpub/internal/difficulty"
)

func TestApplyComputesBounds(t *testing.T) {
	base := Props{
		Diff:   DiffProps{Min: 1, Max: 10, Initial: 1, Step: 1},
		Slider: SliderProps{DiffMarkerStep: 50, RankMarkers: RankMarkerRequest{Enabled: true}},
	}

	out := Apply(base, listOf(500, 300, 100))

	assert.Equal(t, 100.0, out.Diff.Min)
	assert.Equal(t, 625.0, out.Diff.Max)
	assert.Equal(t, 500.0, out.Diff.Initial)
	assert.Equal(t, 1, out.Diff.Step)
	assert.Equal(t, 50, out.Slider.DiffMarkerStep)
	assert.Equal(t, []difficulty.Mark{{Value: 500, Label: "#1"}}, out.Slider.SliderRankMarkers)
	assert.Len(t, out.Signals, 3)
}

func TestApplyUsesIncrementRate(t *testing.T) {
	base := Props{Diff: DiffProps{MaxDiffInc: 2}}
	out := Apply(base, listOf(10.4, 3.7))
	assert.Equal(t, 3.0, out.Diff.Min)
	assert.Equal(t, 21.0, out.Diff.Max)
	assert.Equal(t, 10.0, out.Diff.Initial)
	assert.Equal(t, 2.0, out.Diff.MaxDiffInc)
}

func TestApplyRankMarkerForms(t *testing.T) {
	list := listOf(500, 300, 100)

	tests := []struct {
		name    string
		request RankMarkerRequest
		want    []difficulty.Mark
	}{
		{"flag", RankMarkerRequest{Enabled: true}, []difficulty.Mark{{Value: 500, Label: "#1"}}},
		{"list", RankMarkerRequest{Ranks: []int{2, 3}}, []difficulty.Mark{
			{Value: 300, Label: "#2"},
			{Value: 100, Label: "#3"},
		}},
		{"off", RankMarkerRequest{}, []difficulty.Mark{}},
		{"empty list", RankMarkerRequest{Ranks: []int{}}, []difficulty.Mark{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := Props{Slider: SliderProps{
				RankMarkers:       tt.request,
				SliderRankMarkers: []difficulty.Mark{{Value: 1, Label: "stale"}},
			}}
			out := Apply(base, list)
			assert.Equal(t, tt.want, out.Slider.SliderRankMarkers)
		})
	}
}

func TestApplyEmptyListOnlySetsSignals(t *testing.T) {
	base := Props{
		Diff:   DiffProps{Min: 1, Max: 10, Initial: 2},
		Slider: SliderProps{RankMarkers: RankMarkerRequest{Enabled: true}},
		Extra:  Extra{"theme": json.RawMessage(`"dark"`)},
	}

	out := Apply(base, nil)

	assert.NotNil(t, out.Signals)
	assert.Empty(t, out.Signals)
	assert.Equal(t, base.Diff, out.Diff)
	assert.Equal(t, base.Slider, out.Slider)
	assert.Equal(t, base.Extra, out.Extra)
	assert.False(t, out.HasRankSignals())
}

func TestApplyDoesNotModifyBase(t *testing.T) {
	base := Props{
		Diff:   DiffProps{Min: 1, Max: 10},
		Slider: SliderProps{RankMarkers: RankMarkerRequest{Ranks: []int{1}}},
	}
	before, err := json.Marshal(base)
	require.NoError(t, err)

	list := listOf(50, 20)
	out := Apply(base, list)
	out.Signals[0].TotalDifficulty = 1

	after, err := json.Marshal(base)
	require.NoError(t, err)
	assert.JSONEq(t, string(before), string(after))
	assert.Equal(t, 50.0, list[0].TotalDifficulty)
}

func TestApplyEncodesZeroBounds(t *testing.T) {
	base := Props{Diff: DiffProps{Min: 1, Max: 40, Initial: 1, MaxDiffInc: 2}}

	out := Apply(base, listOf(0.4, 0.2))

	b, err := json.Marshal(out)
	require.NoError(t, err)

	var got map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(b, &got))
	assert.JSONEq(t, `{"min":0,"max":1,"initial":0,"maxDiffInc":2}`, string(got["diff"]))
}

func TestDiffZeroBoundsRoundTrip(t *testing.T) {
	p, err := Parse([]byte(`{"diff":{"min":0,"max":10,"initial":0}}`))
	require.NoError(t, err)

	b, err := json.Marshal(p.Diff)
	require.NoError(t, err)
	assert.JSONEq(t, `{"min":0,"max":10,"initial":0}`, string(b))
}
