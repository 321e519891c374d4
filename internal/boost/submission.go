// Package boost models the ranked Boost POW leaderboard and the statistics
// derived from it.
package boost

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Submission is one ranked boost record returned by the graph search.
type Submission struct {
	Content         string  `json:"content,omitempty"`
	Category        string  `json:"category,omitempty"`
	Tag             string  `json:"tag,omitempty"`
	Topic           string  `json:"topic,omitempty"`
	AdditionalData  string  `json:"additionalData,omitempty"`
	TotalDifficulty float64 `json:"totalDifficulty"`
}

type submissionWire struct {
	Content         string          `json:"content"`
	Category        string          `json:"category"`
	Tag             string          `json:"tag"`
	Topic           string          `json:"topic"`
	AdditionalData  string          `json:"additionalData"`
	TotalDifficulty json.RawMessage `json:"totalDifficulty"`
	LegacyTotal     json.RawMessage `json:"totalDifficulty_"`
}

// UnmarshalJSON accepts the difficulty as a number or a numeric string, and
// falls back to the legacy "totalDifficulty_" field when the canonical one is
// missing or zero.
func (s *Submission) UnmarshalJSON(data []byte) error {
	var w submissionWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	total, err := parseDifficulty(w.TotalDifficulty)
	if err != nil {
		return fmt.Errorf("totalDifficulty: %w", err)
	}
	if total == 0 {
		total, err = parseDifficulty(w.LegacyTotal)
		if err != nil {
			return fmt.Errorf("totalDifficulty_: %w", err)
		}
	}

	*s = Submission{
		Content:         w.Content,
		Category:        w.Category,
		Tag:             w.Tag,
		Topic:           w.Topic,
		AdditionalData:  w.AdditionalData,
		TotalDifficulty: total,
	}
	return nil
}

// parseDifficulty reads a JSON number or numeric string. Absent and null
// values read as zero.
func parseDifficulty(raw json.RawMessage) (float64, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, nil
	}

	text := string(raw)
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &text); err != nil {
			return 0, err
		}
		text = strings.TrimSpace(text)
		if text == "" {
			return 0, nil
		}
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid difficulty %s", raw)
	}
	return v, nil
}
