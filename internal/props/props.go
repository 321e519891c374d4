// Package props builds the configuration object the payment widget renders
// its difficulty selector from.
package props

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/boostpow/boostpub/internal/boost"
	"github.com/boostpow/boostpub/internal/difficulty"
)

// DefaultMaxDiffInc inflates the current top difficulty to get the slider
// maximum: the default ceiling is 125% of rank 1.
const DefaultMaxDiffInc = 1.25

// Props is the widget configuration. Sections the engine computes are typed;
// every other top-level key is carried in Extra.
type Props struct {
	BoostRank BoostRankProps
	Diff      DiffProps
	Slider    SliderProps

	// Signals is the leaderboard the bounds were computed from. Nil until a
	// search ran; empty when the search found nothing.
	Signals boost.RankedList

	Extra Extra
}

// BoostRankProps selects the leaderboard window.
type BoostRankProps struct {
	Hours    float64 `json:"hours,omitempty"`
	Tag      string  `json:"tag,omitempty"`
	Category string  `json:"category,omitempty"`
	Content  string  `json:"content,omitempty"`
	Limit    int     `json:"limit,omitempty"`

	Extra Extra `json:"-"`
}

// DiffProps holds the difficulty bounds and the hints used to derive them.
// The bounds are always encoded: a computed bound of zero is a real value.
type DiffProps struct {
	Min        float64 `json:"min"`
	Max        float64 `json:"max"`
	Initial    float64 `json:"initial"`
	MaxDiffInc float64 `json:"maxDiffInc,omitempty"`
	Step       int     `json:"step,omitempty"`

	Extra Extra `json:"-"`
}

// SliderProps configures the difficulty slider.
type SliderProps struct {
	DiffMarkerStep    int               `json:"sliderDiffMarkerStep,omitempty"`
	MarkerMarginRate  float64           `json:"sliderMarkerMarginRate,omitempty"`
	RankMarkers       RankMarkerRequest `json:"rankMarkers,omitzero"`
	SliderRankMarkers []difficulty.Mark `json:"sliderRankMarkers,omitzero"`

	Extra Extra `json:"-"`
}

// RankMarkerRequest is the rankMarkers setting: either a flag or an explicit
// list of leaderboard positions.
type RankMarkerRequest struct {
	Enabled bool
	Ranks   []int
}

// Requested reports whether rank markers should be computed.
func (r RankMarkerRequest) Requested() bool {
	return r.Enabled || len(r.Ranks) > 0
}

// Positions returns the requested ranks, or the defaults for a bare flag.
func (r RankMarkerRequest) Positions() []int {
	if len(r.Ranks) > 0 {
		return r.Ranks
	}
	return boost.DefaultRankMarkers
}

func (r RankMarkerRequest) IsZero() bool {
	return !r.Enabled && r.Ranks == nil
}

func (r RankMarkerRequest) MarshalJSON() ([]byte, error) {
	if r.Ranks != nil {
		return json.Marshal(r.Ranks)
	}
	return json.Marshal(r.Enabled)
}

func (r *RankMarkerRequest) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*r = RankMarkerRequest{}
	case len(data) > 0 && data[0] == '[':
		var ranks []int
		if err := json.Unmarshal(data, &ranks); err != nil {
			return fmt.Errorf("rankMarkers: %w", err)
		}
		*r = RankMarkerRequest{Ranks: ranks}
	default:
		var enabled bool
		if err := json.Unmarshal(data, &enabled); err != nil {
			return fmt.Errorf("rankMarkers must be a boolean or a list of ranks: %w", err)
		}
		*r = RankMarkerRequest{Enabled: enabled}
	}
	return nil
}

// ParseRankMarkers reads a rankMarkers setting from text: "true", "false",
// or a comma separated list of ranks.
func ParseRankMarkers(v string) (RankMarkerRequest, error) {
	v = strings.TrimSpace(v)
	if b, err := strconv.ParseBool(v); err == nil {
		return RankMarkerRequest{Enabled: b}, nil
	}

	ranks := []int{}
	for _, part := range strings.Split(v, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 1 {
			return RankMarkerRequest{}, fmt.Errorf("rankMarkers: %q is not a rank", part)
		}
		ranks = append(ranks, n)
	}
	return RankMarkerRequest{Ranks: ranks}, nil
}

// HasRankSignals reports whether a search ran and returned any boosts.
func (p Props) HasRankSignals() bool {
	return boost.HasRankData(p.Signals)
}

// HoursOrDefault returns the configured lookback, or boost.DefaultHours when unset.
func (b BoostRankProps) HoursOrDefault() float64 {
	if b.Hours == 0 {
		return boost.DefaultHours
	}
	return b.Hours
}

// IncrementRate returns maxDiffInc, or DefaultMaxDiffInc when unset.
func (d DiffProps) IncrementRate() float64 {
	if d.MaxDiffInc == 0 {
		return DefaultMaxDiffInc
	}
	return d.MaxDiffInc
}

// Clone returns a copy that shares no mutable state with p.
func (p Props) Clone() Props {
	out := p
	out.Extra = maps.Clone(p.Extra)
	out.BoostRank.Extra = maps.Clone(p.BoostRank.Extra)
	out.Diff.Extra = maps.Clone(p.Diff.Extra)
	out.Slider = p.Slider.clone()
	if p.Signals != nil {
		out.Signals = slices.Clone(p.Signals)
	}
	return out
}

func (s SliderProps) clone() SliderProps {
	out := s
	out.Extra = maps.Clone(s.Extra)
	if s.RankMarkers.Ranks != nil {
		out.RankMarkers.Ranks = slices.Clone(s.RankMarkers.Ranks)
	}
	if s.SliderRankMarkers != nil {
		out.SliderRankMarkers = slices.Clone(s.SliderRankMarkers)
	}
	return out
}

// Default returns the configuration used when no props file is given.
func Default() Props {
	return Props{
		BoostRank: BoostRankProps{Hours: boost.DefaultHours},
		Diff: DiffProps{
			Min:        1,
			Max:        40,
			Initial:    1,
			MaxDiffInc: DefaultMaxDiffInc,
			Step:       1,
		},
		Slider: SliderProps{
			DiffMarkerStep:   5,
			MarkerMarginRate: difficulty.DefaultMarginRate,
			RankMarkers:      RankMarkerRequest{Enabled: true},
		},
	}
}
