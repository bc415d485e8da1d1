package prompt

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/grovetools/zism/tui/theme"
)

// Outcome reports how a prompt finished.
type Outcome int

const (
	// Pending means the prompt is still running.
	Pending Outcome = iota
	// Answered means the user confirmed a value.
	Answered
	// Skipped means the user pressed Esc on a skippable prompt.
	Skipped
	// Cancelled means the user pressed Esc on a required prompt.
	Cancelled
	// Interrupted means the user pressed Ctrl+C.
	Interrupted
)

// SelectModel picks one item from a list. Typing filters the list by
// case-insensitive substring.
type SelectModel struct {
	title     string
	items     []string
	filtered  []int
	filter    string
	cursor    int
	offset    int
	pageSize  int
	skippable bool

	keys  KeyMap
	style Style

	outcome Outcome
	chosen  string
}

// NewSelect returns a select prompt over items.
func NewSelect(title string, items []string, pageSize int, style Style) *SelectModel {
	if pageSize < 1 {
		pageSize = 1
	}
	m := &SelectModel{
		title:    title,
		items:    items,
		pageSize: pageSize,
		keys:     DefaultKeyMap,
		style:    style,
	}
	m.applyFilter()
	return m
}

// Skippable makes Esc end the prompt without an answer instead of cancelling.
func (m *SelectModel) Skippable() *SelectModel {
	m.skippable = true
	return m
}

// Outcome returns how the prompt ended.
func (m *SelectModel) Outcome() Outcome {
	return m.outcome
}

// Chosen returns the confirmed item.
func (m *SelectModel) Chosen() string {
	return m.chosen
}

func (m *SelectModel) Init() tea.Cmd {
	return nil
}

func (m *SelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Interrupt):
		m.outcome = Interrupted
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Cancel):
		if m.skippable {
			m.outcome = Skipped
		} else {
			m.outcome = Cancelled
		}
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Confirm):
		if len(m.filtered) == 0 {
			return m, nil
		}
		m.chosen = m.items[m.filtered[m.cursor]]
		m.outcome = Answered
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Up):
		m.move(-1)

	case key.Matches(keyMsg, m.keys.Down):
		m.move(1)

	case key.Matches(keyMsg, m.keys.PageUp):
		m.move(-m.pageSize)

	case key.Matches(keyMsg, m.keys.PageDown):
		m.move(m.pageSize)

	case keyMsg.Type == tea.KeyBackspace:
		if m.filter != "" {
			runes := []rune(m.filter)
			m.filter = string(runes[:len(runes)-1])
			m.applyFilter()
		}

	case keyMsg.Type == tea.KeyRunes || keyMsg.Type == tea.KeySpace:
		m.filter += string(keyMsg.Runes)
		if keyMsg.Type == tea.KeySpace && len(keyMsg.Runes) == 0 {
			m.filter += " "
		}
		m.applyFilter()
	}

	return m, nil
}

// move shifts the cursor by delta. Single steps wrap around the list; page
// jumps stop at either end.
func (m *SelectModel) move(delta int) {
	n := len(m.filtered)
	if n == 0 {
		return
	}
	next := m.cursor + delta
	switch {
	case delta == 1 || delta == -1:
		next = (next + n) % n
	case next < 0:
		next = 0
	case next >= n:
		next = n - 1
	}
	m.cursor = next

	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.pageSize {
		m.offset = m.cursor - m.pageSize + 1
	}
}

func (m *SelectModel) applyFilter() {
	m.filtered = m.filtered[:0]
	needle := strings.ToLower(m.filter)
	for i, item := range m.items {
		if needle == "" || strings.Contains(strings.ToLower(item), needle) {
			m.filtered = append(m.filtered, i)
		}
	}
	m.cursor = 0
	m.offset = 0
}

func (m *SelectModel) View() string {
	var b strings.Builder

	switch m.outcome {
	case Answered:
		fmt.Fprintf(&b, "%s %s\n", m.style.Prompt.Render(m.title), m.style.Answer.Render(m.chosen))
		return b.String()
	case Skipped, Cancelled, Interrupted:
		fmt.Fprintf(&b, "%s %s\n", m.style.Prompt.Render(m.title), m.style.Help.Render("<canceled>"))
		return b.String()
	}

	fmt.Fprintf(&b, "%s %s\n", m.style.Prompt.Render(m.title), m.filter)
	if len(m.filtered) == 0 {
		b.WriteString(m.style.Help.Render("  No matching options") + "\n")
	}

	end := m.offset + m.pageSize
	if end > len(m.filtered) {
		end = len(m.filtered)
	}
	for i := m.offset; i < end; i++ {
		item := m.items[m.filtered[i]]
		if i == m.cursor {
			fmt.Fprintf(&b, "%s %s\n", theme.IconArrow, m.style.Selected.Render(item))
		} else {
			fmt.Fprintf(&b, "  %s\n", m.style.Normal.Render(item))
		}
	}

	help := "[↑↓ to move, enter to select, type to filter"
	if m.skippable {
		help += ", esc to skip"
	}
	b.WriteString(m.style.Help.Render(help+"]") + "\n")
	return b.String()
}
