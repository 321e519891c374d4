package props

import (
	"github.com/boostpow/boostpub/internal/boost"
	"github.com/boostpow/boostpub/internal/difficulty"
)

// Apply derives the widget configuration from base and a leaderboard.
// Sections it computes are replaced wholesale; everything else is copied.
// base is never modified.
func Apply(base Props, list boost.RankedList) Props {
	out := base.Clone()
	out.Signals = make(boost.RankedList, len(list))
	copy(out.Signals, list)

	stats, err := boost.Analyze(list, base.Diff.IncrementRate())
	if err != nil {
		return out
	}

	out.Diff = replaceDiff(base.Diff, stats)
	out.Slider = replaceSlider(base.Slider, out.Signals)
	return out
}

// replaceDiff keeps the hints and overwrites the bounds. The slider starts
// at the current rank 1 difficulty.
func replaceDiff(d DiffProps, stats boost.Stats) DiffProps {
	d.Min = stats.Min
	d.Max = stats.IncMax
	d.Initial = stats.Max
	return d
}

// replaceSlider clears any previous rank markers and recomputes them when
// the configuration asks for them.
func replaceSlider(s SliderProps, list boost.RankedList) SliderProps {
	out := s.clone()
	out.SliderRankMarkers = []difficulty.Mark{}
	if s.RankMarkers.Requested() {
		out.SliderRankMarkers = boost.RankMarkers(list, s.RankMarkers.Positions())
	}
	return out
}
