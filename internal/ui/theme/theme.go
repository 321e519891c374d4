package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette, warm amber on slate
var (
	Primary   = lipgloss.Color("#F59E0B") // Amber
	Secondary = lipgloss.Color("#38BDF8") // Sky
	Accent    = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Value = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	Warning = lipgloss.NewStyle().
		Foreground(Error)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// Slider
var (
	SliderFilled = lipgloss.NewStyle().
			Background(Primary)

	SliderEmpty = lipgloss.NewStyle().
			Background(Border)

	MarkTick = lipgloss.NewStyle().
			Foreground(TextDim)

	RankTick = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)
)
