package theme

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Pass     lipgloss.Style
	Fail     lipgloss.Style
	Muted    lipgloss.Style
	Card     lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Pass:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Fail:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Muted:    lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
	}
}

// PlainTheme renders text unchanged. Used for non-terminal output.
func PlainTheme() Theme {
	s := lipgloss.NewStyle()
	return Theme{Title: s, Subtitle: s, Pass: s, Fail: s, Muted: s, Card: s}
}

// Status renders a fixed-width OK/FAIL badge.
func (t Theme) Status(failed bool) string {
	if failed {
		return t.Fail.Render("FAIL")
	}
	return t.Pass.Render("OK  ")
}

func (t Theme) Mark(passed bool) string {
	if passed {
		return t.Pass.Render("✓")
	}
	return t.Fail.Render("✗")
}
