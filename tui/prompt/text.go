package prompt

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Validator rejects an answer by returning an error whose message is shown
// under the input.
type Validator func(string) error

// TextModel reads one line of free text.
type TextModel struct {
	title    string
	input    textinput.Model
	validate Validator
	errMsg   string

	keys  KeyMap
	style Style

	outcome Outcome
	value   string
}

// NewText returns a text prompt. validate may be nil.
func NewText(title string, validate Validator, style Style) *TextModel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Focus()

	return &TextModel{
		title:    title,
		input:    ti,
		validate: validate,
		keys:     DefaultKeyMap,
		style:    style,
	}
}

// Outcome returns how the prompt ended.
func (m *TextModel) Outcome() Outcome {
	return m.outcome
}

// Value returns the confirmed text.
func (m *TextModel) Value() string {
	return m.value
}

func (m *TextModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *TextModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Interrupt):
			m.outcome = Interrupted
			return m, tea.Quit

		case key.Matches(keyMsg, m.keys.Cancel):
			m.outcome = Cancelled
			return m, tea.Quit

		case key.Matches(keyMsg, m.keys.Confirm):
			value := m.input.Value()
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

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if _, ok := msg.(tea.KeyMsg); ok {
		m.errMsg = ""
	}
	return m, cmd
}

func (m *TextModel) View() string {
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
	return b.String()
}
