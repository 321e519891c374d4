// Package picker is the interactive terminal difficulty selector.
package picker

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/boostpow/boostpub/internal/boost"
	"github.com/boostpow/boostpub/internal/difficulty"
	"github.com/boostpow/boostpub/internal/pricing"
	"github.com/boostpow/boostpub/internal/props"
	"github.com/boostpow/boostpub/internal/ui/components"
)

const (
	// pageSteps is how many steps PgUp/PgDn move.
	pageSteps = 10
	// maxSliderMarks bounds the tick labels on the terminal slider.
	maxSliderMarks = 100
)

// Model is the Bubble Tea model for the picker.
type Model struct {
	min, max float64
	step     float64
	value    float64

	signals   boost.RankedList
	marks     []difficulty.Mark
	rankMarks []difficulty.Mark
	pricing   pricing.Config

	input  components.DifficultyInput
	typing bool
	err    string

	chosen   bool
	quitting bool
	width    int
	height   int
}

// New builds a picker over assembled props. The starting value is
// diff.initial clamped into bounds.
func New(p props.Props, pc pricing.Config) Model {
	lo, hi := p.Diff.Min, p.Diff.Max
	if hi < lo {
		lo, hi = hi, lo
	}

	step := float64(p.Diff.Step)
	if step <= 0 {
		step = 1
	}

	markStep := p.Slider.DiffMarkerStep
	if markStep <= 0 {
		markStep = int(step)
	}
	markStep = difficulty.FitStep(lo, hi, markStep, maxSliderMarks)

	return Model{
		min:       lo,
		max:       hi,
		step:      step,
		value:     difficulty.Clamp(p.Diff.Initial, lo, hi),
		signals:   p.Signals,
		marks:     difficulty.SliderMarks(lo, hi, markStep, p.Slider.MarkerMarginRate),
		rankMarks: p.Slider.SliderRankMarkers,
		pricing:   pc,
	}
}

// Value returns the selected difficulty.
func (m Model) Value() float64 { return m.value }

// Chosen reports whether the user confirmed a difficulty.
func (m Model) Chosen() bool { return m.chosen }

// Rank is the position the current value would take on the leaderboard.
func (m Model) Rank() int { return boost.RankOf(m.signals, m.value) }

// Quote prices the current value.
func (m Model) Quote() (pricing.Quote, error) { return m.pricing.Quote(m.value) }

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		if m.typing {
			return m.handleTypingKey(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "h", "down", "j":
		m.set(m.value - m.step)
	case "right", "l", "up", "k":
		m.set(m.value + m.step)
	case "pgdown":
		m.set(m.value - pageSteps*m.step)
	case "pgup":
		m.set(m.value + pageSteps*m.step)
	case "home":
		m.set(m.min)
	case "end":
		m.set(m.max)
	case "e", "/":
		m.typing = true
		m.err = ""
		m.input = components.NewDifficultyInput(difficulty.FormatValue(m.value))
	case "enter":
		m.chosen = true
		return m, tea.Quit
	case "q", "esc":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleTypingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.typing = false
		m.err = ""
		return m, nil
	case "enter":
		v, err := m.input.FloatValue()
		if err != nil {
			m.err = fmt.Sprintf("%q is not a number", m.input.Value())
			return m, nil
		}
		m.set(v)
		m.typing = false
		m.err = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) set(v float64) {
	m.value = difficulty.Clamp(v, m.min, m.max)
}

// Run shows the picker and returns the confirmed difficulty. ok is false
// when the user quit without choosing.
func Run(p props.Props, pc pricing.Config) (value float64, ok bool, err error) {
	prog := tea.NewProgram(New(p, pc), tea.WithOutput(os.Stderr))
	final, err := prog.Run()
	if err != nil {
		return 0, false, fmt.Errorf("run picker: %w", err)
	}
	m := final.(Model)
	return m.Value(), m.Chosen(), nil
}
