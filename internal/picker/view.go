package picker

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/boostpow/boostpub/internal/boost"
	"github.com/boostpow/boostpub/internal/difficulty"
	"github.com/boostpow/boostpub/internal/ui/components"
	"github.com/boostpow/boostpub/internal/ui/layout"
	"github.com/boostpow/boostpub/internal/ui/theme"
)

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.quitting || m.chosen || m.width == 0 || m.height == 0 {
		return v
	}
	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	header := layout.RenderHeader("boostpub", m.status(), m.width)
	footer := layout.RenderFooter(m.hints(), m.width)
	frame := layout.RenderFrame(header, m.body(), footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func (m Model) status() string {
	if !boost.HasRankData(m.signals) {
		return "no recent boosts"
	}
	return fmt.Sprintf("%d boosts ranked", len(m.signals))
}

func (m Model) body() string {
	var b strings.Builder

	b.WriteString(theme.Body.Render("Difficulty  "))
	b.WriteString(theme.Value.Render(difficulty.FormatValue(m.value)))
	b.WriteString("\n\n")

	slider := components.Slider{
		Min:       m.min,
		Max:       m.max,
		Value:     m.value,
		Marks:     m.marks,
		RankMarks: m.rankMarks,
		Width:     m.width - 8,
	}
	b.WriteString(slider.View())
	b.WriteString("\n\n")

	if boost.HasRankData(m.signals) {
		b.WriteString(theme.Body.Render(fmt.Sprintf("Rank  #%d of %d", m.Rank(), len(m.signals)+1)))
	} else {
		b.WriteString(theme.Hint.Render("No boosts in the window; any difficulty ranks first."))
	}
	b.WriteString("\n")
	if q, err := m.Quote(); err != nil {
		b.WriteString(theme.Warning.Render("Price unavailable: " + err.Error()))
	} else {
		b.WriteString(theme.Body.Render("Price " + q.String()))
	}

	if m.typing {
		b.WriteString("\n\n")
		b.WriteString(theme.Body.Render("Enter difficulty: "))
		b.WriteString(m.input.View())
	}
	if m.err != "" {
		b.WriteString("\n")
		b.WriteString(theme.Warning.Render(m.err))
	}

	return lipgloss.NewStyle().Padding(1, 3).Render(b.String())
}

func (m Model) hints() []layout.KeyHint {
	if m.typing {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Apply"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "←→", Description: "Step"},
		{Key: "PgUp/PgDn", Description: "Jump"},
		{Key: "e", Description: "Type"},
		{Key: "Enter", Description: "Choose"},
		{Key: "q", Description: "Quit"},
	}
}
