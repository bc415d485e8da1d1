package launcher

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/zism/tui/prompt"
)

// Action is a top-level menu choice.
type Action int

const (
	Create Action = iota
	CreateWithDir
	Attach
	Delete
)

func (a Action) String() string {
	switch a {
	case Create:
		return "Create new session"
	case CreateWithDir:
		return "Create new session with directory"
	case Attach:
		return "Attach to session"
	case Delete:
		return "Delete session"
	default:
		return "Unknown action"
	}
}

// Color is the prompt color used once the action is chosen.
func (a Action) Color() lipgloss.TerminalColor {
	switch a {
	case Attach:
		return lipgloss.Color("14") // light cyan
	case Delete:
		return lipgloss.Color("9") // light red
	default:
		return lipgloss.Color("10") // light green
	}
}

// HighlightColor is the background of the selected option in the action's prompts.
func (a Action) HighlightColor() lipgloss.TerminalColor {
	switch a {
	case Attach:
		return lipgloss.Color("6") // dark cyan
	case Delete:
		return lipgloss.Color("1") // dark red
	default:
		return lipgloss.Color("2") // dark green
	}
}

// Style returns the prompt style for the action's follow-up questions.
func (a Action) Style() prompt.Style {
	return prompt.ColoredStyle(a.Color(), a.HighlightColor())
}

// AvailableActions lists the menu. Attaching and deleting need at least one
// session.
func AvailableActions(hasSessions bool) []Action {
	if hasSessions {
		return []Action{Create, CreateWithDir, Attach, Delete}
	}
	return []Action{Create, CreateWithDir}
}

// ParseAction maps a menu label back to its Action.
func ParseAction(label string) (Action, bool) {
	for _, a := range []Action{Create, CreateWithDir, Attach, Delete} {
		if a.String() == label {
			return a, true
		}
	}
	return 0, false
}
