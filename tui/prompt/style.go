package prompt

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/zism/tui/theme"
)

// Style controls how a prompt renders.
type Style struct {
	Prompt   lipgloss.Style
	Answer   lipgloss.Style
	Selected lipgloss.Style
	Normal   lipgloss.Style
	Help     lipgloss.Style
	Error    lipgloss.Style
}

// DefaultStyle renders prompts with the default theme.
func DefaultStyle() Style {
	t := theme.DefaultTheme
	return Style{
		Prompt: lipgloss.NewStyle().Bold(true),
		Answer: t.Info,
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("14")),
		Normal: t.Normal,
		Help:   t.Muted,
		Error:  t.Error,
	}
}

// ColoredStyle renders the prompt text in fg and highlights the selected
// option with a black label on highlight.
func ColoredStyle(fg, highlight lipgloss.TerminalColor) Style {
	s := DefaultStyle()
	s.Prompt = s.Prompt.Foreground(fg)
	s.Answer = lipgloss.NewStyle().Foreground(fg)
	s.Selected = lipgloss.NewStyle().
		Foreground(lipgloss.Color("0")).
		Background(highlight)
	return s
}
