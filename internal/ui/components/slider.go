package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/boostpow/boostpub/internal/difficulty"
	"github.com/boostpow/boostpub/internal/ui/theme"
)

// Slider draws a horizontal difficulty slider with a row of value marks
// below the bar and a row of rank markers above it.
type Slider struct {
	Min, Max  float64
	Value     float64
	Marks     []difficulty.Mark
	RankMarks []difficulty.Mark
	Width     int
}

// Column maps v onto a bar column in [0, Width-1].
func (s Slider) Column(v float64) int {
	w := s.barWidth()
	if s.Max <= s.Min {
		return 0
	}
	frac := (v - s.Min) / (s.Max - s.Min)
	col := int(frac*float64(w-1) + 0.5)
	return max(0, min(w-1, col))
}

func (s Slider) barWidth() int {
	return max(s.Width, 4)
}

// View renders the rank row, the bar and the mark row.
func (s Slider) View() string {
	w := s.barWidth()
	filled := s.Column(s.Value) + 1

	bar := theme.SliderFilled.Render(strings.Repeat(" ", filled)) +
		theme.SliderEmpty.Render(strings.Repeat(" ", w-filled))

	rows := []string{}
	if len(s.RankMarks) > 0 {
		rows = append(rows, theme.RankTick.Render(s.labelRow(s.RankMarks)))
	}
	rows = append(rows, bar)
	if len(s.Marks) > 0 {
		rows = append(rows, theme.MarkTick.Render(s.labelRow(s.Marks)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// labelRow places each label at its mark's column, dropping labels that
// would overlap one already placed.
func (s Slider) labelRow(marks []difficulty.Mark) string {
	w := s.barWidth()
	row := []rune(strings.Repeat(" ", w))
	next := 0
	for _, m := range marks {
		label := []rune(m.Label)
		col := s.Column(m.Value)
		if col+len(label) > w {
			col = w - len(label)
		}
		if col < next || col < 0 {
			continue
		}
		copy(row[col:], label)
		next = col + len(label) + 1
	}
	return strings.TrimRight(string(row), " ")
}
