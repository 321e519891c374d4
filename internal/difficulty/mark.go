// Package difficulty holds the pure helpers behind the difficulty selector:
// clamping a chosen value, slider tick marks and select-box options.
package difficulty

import "strconv"

// Mark is a labelled tick on the difficulty slider.
type Mark struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// NewMark returns a mark labelled with its own value.
func NewMark(value float64) Mark {
	return Mark{Value: value, Label: FormatValue(value)}
}

// FormatValue renders a difficulty without trailing zeros.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
