package components

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// DifficultyInput wraps bubbles/textinput and only accepts characters that
// can appear in a decimal number.
type DifficultyInput struct {
	Model textinput.Model
}

// NewDifficultyInput creates a focused input.
func NewDifficultyInput(placeholder string) DifficultyInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 24
	ti.Focus()
	return DifficultyInput{Model: ti}
}

// Update handles messages.
func (d DifficultyInput) Update(msg tea.Msg) (DifficultyInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		key := kmsg.String()
		if len(key) == 1 && !isNumeric(key[0]) {
			return d, nil
		}
	}

	var cmd tea.Cmd
	d.Model, cmd = d.Model.Update(msg)
	return d, cmd
}

func isNumeric(c byte) bool {
	return (c >= '0' && c <= '9') || c == '.'
}

// View renders the input.
func (d DifficultyInput) View() string {
	return d.Model.View()
}

// Value returns the raw text.
func (d DifficultyInput) Value() string {
	return d.Model.Value()
}

// ErrNotFinite is returned by FloatValue for NaN and infinities.
var ErrNotFinite = errors.New("not a finite number")

// FloatValue parses the text as a difficulty.
func (d DifficultyInput) FloatValue() (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(d.Model.Value()), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrNotFinite
	}
	return v, nil
}
