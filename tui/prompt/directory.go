package prompt

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/grovetools/zism/tui/theme"
)

// Completer supplies directory suggestions for the text typed so far.
type Completer interface {
	Suggestions(input string) []string
	Completion(input, highlighted string) (string, bool)
}

// DirectoryModel reads a path relative to the completion root. Suggestions
// are recomputed after every edit; Tab completes and the arrows highlight a
// suggestion.
type DirectoryModel struct {
	title     string
	input     textinput.Model
	completer Completer
	validate  Validator
	errMsg    string

	suggestions []string
	highlight   int // -1 when nothing is highlighted
	offset      int
	pageSize    int

	keys  KeyMap
	style Style

	outcome Outcome
	value   string
}

// NewDirectory returns a directory prompt. validate may be nil.
func NewDirectory(title string, completer Completer, validate Validator, pageSize int, style Style) *DirectoryModel {
	if pageSize < 1 {
		pageSize = 1
	}
	ti := textinput.New()
	ti.Prompt = ""
	ti.Focus()

	m := &DirectoryModel{
		title:     title,
		input:     ti,
		completer: completer,
		validate:  validate,
		highlight: -1,
		pageSize:  pageSize,
		keys:      DefaultKeyMap,
		style:     style,
	}
	m.refresh()
	return m
}

// Outcome returns how the prompt ended.
func (m *DirectoryModel) Outcome() Outcome {
	return m.outcome
}

// Value returns the confirmed relative path.
func (m *DirectoryModel) Value() string {
	return m.value
}

// Suggestions returns the suggestions currently listed.
func (m *DirectoryModel) Suggestions() []string {
	return m.suggestions
}

// Input returns the text typed so far.
func (m *DirectoryModel) Input() string {
	return m.input.Value()
}

func (m *DirectoryModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *DirectoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Interrupt):
			m.outcome = Interrupted
			return m, tea.Quit

		case key.Matches(keyMsg, m.keys.Cancel):
			m.outcome = Cancelled
			return m, tea.Quit

		case key.Matches(keyMsg, m.keys.Complete):
			if completion, ok := m.completer.Completion(m.input.Value(), m.highlighted()); ok {
				m.setInput(completion)
			}
			return m, nil

		case key.Matches(keyMsg, m.keys.Up):
			m.moveHighlight(-1)
			return m, nil

		case key.Matches(keyMsg, m.keys.Down):
			m.moveHighlight(1)
			return m, nil

		case key.Matches(keyMsg, m.keys.Confirm):
			value := m.input.Value()
			if h := m.highlighted(); h != "" {
				value = h
			}
			if m.validate != nil {
				if err := m.validate(value); err != nil {
					m.errMsg = validationMessage(err)
					return m, nil
				}
			}
			m.value = value
			m.outcome = Answered
			return m, tea.Quit
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.errMsg = ""
		m.refresh()
	}
	return m, cmd
}

func (m *DirectoryModel) setInput(value string) {
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.errMsg = ""
	m.refresh()
}

// refresh re-reads suggestions for the current input and clears the highlight.
func (m *DirectoryModel) refresh() {
	m.suggestions = m.completer.Suggestions(m.input.Value())
	m.highlight = -1
	m.offset = 0
}

func (m *DirectoryModel) highlighted() string {
	if m.highlight < 0 || m.highlight >= len(m.suggestions) {
		return ""
	}
	return m.suggestions[m.highlight]
}

// moveHighlight walks the suggestion list. Moving up from the first
// suggestion returns focus to the typed text.
func (m *DirectoryModel) moveHighlight(delta int) {
	n := len(m.suggestions)
	if n == 0 {
		return
	}
	next := m.highlight + delta
	switch {
	case next < -1:
		next = n - 1
	case next >= n:
		next = -1
	}
	m.highlight = next

	if m.highlight >= 0 {
		if m.highlight < m.offset {
			m.offset = m.highlight
		}
		if m.highlight >= m.offset+m.pageSize {
			m.offset = m.highlight - m.pageSize + 1
		}
	} else {
		m.offset = 0
	}
}

func (m *DirectoryModel) View() string {
	var b strings.Builder

	switch m.outcome {
	case Answered:
		fmt.Fprintf(&b, "%s %s\n", m.style.Prompt.Render(m.title), m.style.Answer.Render(m.value))
		return b.String()
	case Cancelled, Interrupted:
		fmt.Fprintf(&b, "%s %s\n", m.style.Prompt.Render(m.title), m.style.Help.Render("<canceled>"))
		return b.String()
	}

	fmt.Fprintf(&b, "%s %s\n", m.style.Prompt.Render(m.title), m.input.View())
	if m.errMsg != "" {
		b.WriteString(m.style.Error.Render("# "+m.errMsg) + "\n")
	}

	end := m.offset + m.pageSize
	if end > len(m.suggestions) {
		end = len(m.suggestions)
	}
	for i := m.offset; i < end; i++ {
		if i == m.highlight {
			fmt.Fprintf(&b, "%s %s\n", theme.IconArrow, m.style.Selected.Render(m.suggestions[i]))
		} else {
			fmt.Fprintf(&b, "  %s\n", m.style.Normal.Render(m.suggestions[i]))
		}
	}
	if hidden := len(m.suggestions) - end; hidden > 0 {
		b.WriteString(m.style.Help.Render(fmt.Sprintf("  … %d more", hidden)) + "\n")
	}

	b.WriteString(m.style.Help.Render("[tab to complete, ↑↓ to highlight, enter to confirm]") + "\n")
	return b.String()
}
