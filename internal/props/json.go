package props

import (
	"encoding/json"
	"fmt"

	"github.com/boostpow/boostpub/internal/boost"
)

var topLevelKeys = []string{"boostRank", "diff", "slider", "signals"}

func (p Props) MarshalJSON() ([]byte, error) {
	fields := make(map[string]json.RawMessage, len(p.Extra)+4)
	for k, v := range p.Extra {
		fields[k] = v
	}

	var err error
	if fields["boostRank"], err = json.Marshal(p.BoostRank); err != nil {
		return nil, err
	}
	if fields["diff"], err = json.Marshal(p.Diff); err != nil {
		return nil, err
	}
	if fields["slider"], err = json.Marshal(p.Slider); err != nil {
		return nil, err
	}
	if p.Signals != nil {
		if fields["signals"], err = json.Marshal(p.Signals); err != nil {
			return nil, err
		}
	}
	return json.Marshal(fields)
}

func (p *Props) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	var out Props
	if raw, ok := fields["boostRank"]; ok && !isNull(raw) {
		if err := json.Unmarshal(raw, &out.BoostRank); err != nil {
			return fmt.Errorf("boostRank: %w", err)
		}
	}
	if raw, ok := fields["diff"]; ok && !isNull(raw) {
		if err := json.Unmarshal(raw, &out.Diff); err != nil {
			return fmt.Errorf("diff: %w", err)
		}
	}
	if raw, ok := fields["slider"]; ok && !isNull(raw) {
		if err := json.Unmarshal(raw, &out.Slider); err != nil {
			return fmt.Errorf("slider: %w", err)
		}
	}
	if raw, ok := fields["signals"]; ok && !isNull(raw) {
		var signals boost.RankedList
		if err := json.Unmarshal(raw, &signals); err != nil {
			return fmt.Errorf("signals: %w", err)
		}
		out.Signals = signals
	}

	for _, k := range topLevelKeys {
		delete(fields, k)
	}
	if len(fields) > 0 {
		out.Extra = fields
	}

	*p = out
	return nil
}

func isNull(raw json.RawMessage) bool {
	return string(raw) == "null"
}

type (
	boostRankJSON BoostRankProps
	diffJSON      DiffProps
	sliderJSON    SliderProps
)

func (b BoostRankProps) MarshalJSON() ([]byte, error) {
	return marshalWithExtra(boostRankJSON(b), b.Extra)
}

func (b *BoostRankProps) UnmarshalJSON(data []byte) error {
	var v boostRankJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	extra, err := splitExtra(data, "hours", "tag", "category", "content", "limit")
	if err != nil {
		return err
	}
	v.Extra = extra
	*b = BoostRankProps(v)
	return nil
}

func (d DiffProps) MarshalJSON() ([]byte, error) {
	return marshalWithExtra(diffJSON(d), d.Extra)
}

func (d *DiffProps) UnmarshalJSON(data []byte) error {
	var v diffJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	extra, err := splitExtra(data, "min", "max", "initial", "maxDiffInc", "step")
	if err != nil {
		return err
	}
	v.Extra = extra
	*d = DiffProps(v)
	return nil
}

func (s SliderProps) MarshalJSON() ([]byte, error) {
	return marshalWithExtra(sliderJSON(s), s.Extra)
}

func (s *SliderProps) UnmarshalJSON(data []byte) error {
	var v sliderJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	extra, err := splitExtra(data,
		"sliderDiffMarkerStep", "sliderMarkerMarginRate", "rankMarkers", "sliderRankMarkers")
	if err != nil {
		return err
	}
	v.Extra = extra
	*s = SliderProps(v)
	return nil
}
