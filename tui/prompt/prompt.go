// Package prompt provides the inline interactive prompts zism asks its
// questions with: pick from a list, type a line, or type a directory with
// completion.
package prompt

import (
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/grovetools/zism/errors"
)

// Prompter runs prompts on a terminal.
type Prompter struct {
	in       io.Reader
	out      io.Writer
	pageSize int
	style    Style
}

// New returns a Prompter reading stdin and drawing on stderr, keeping stdout
// free for command output.
func New(pageSize int) *Prompter {
	return &Prompter{
		in:       os.Stdin,
		out:      os.Stderr,
		pageSize: pageSize,
		style:    DefaultStyle(),
	}
}

// WithIO returns a copy of p using in and out.
func (p *Prompter) WithIO(in io.Reader, out io.Writer) *Prompter {
	cp := *p
	cp.in = in
	cp.out = out
	return &cp
}

// WithStyle returns a copy of p rendering with style.
func (p *Prompter) WithStyle(style Style) *Prompter {
	cp := *p
	cp.style = style
	return &cp
}

// PageSize returns how many options are shown at once.
func (p *Prompter) PageSize() int {
	return p.pageSize
}

// Select asks the user to pick one of items.
func (p *Prompter) Select(title string, items []string) (string, error) {
	m := NewSelect(title, items, p.pageSize, p.style)
	if err := p.run(m); err != nil {
		return "", err
	}
	if err := outcomeError(title, m.Outcome()); err != nil {
		return "", err
	}
	return m.Chosen(), nil
}

// SelectOptional is Select where Esc skips the question. ok is false when
// the user skipped.
func (p *Prompter) SelectOptional(title string, items []string) (string, bool, error) {
	m := NewSelect(title, items, p.pageSize, p.style).Skippable()
	if err := p.run(m); err != nil {
		return "", false, err
	}
	if m.Outcome() == Skipped {
		return "", false, nil
	}
	if err := outcomeError(title, m.Outcome()); err != nil {
		return "", false, err
	}
	return m.Chosen(), true, nil
}

// Text asks for one line of text, re-asking until validate accepts it.
func (p *Prompter) Text(title string, validate Validator) (string, error) {
	m := NewText(title, validate, p.style)
	if err := p.run(m); err != nil {
		return "", err
	}
	if err := outcomeError(title, m.Outcome()); err != nil {
		return "", err
	}
	return m.Value(), nil
}

// Directory asks for a path relative to the completer's root.
func (p *Prompter) Directory(title string, completer Completer, validate Validator) (string, error) {
	m := NewDirectory(title, completer, validate, p.pageSize, p.style)
	if err := p.run(m); err != nil {
		return "", err
	}
	if err := outcomeError(title, m.Outcome()); err != nil {
		return "", err
	}
	return m.Value(), nil
}

func (p *Prompter) run(m tea.Model) error {
	program := tea.NewProgram(m, tea.WithInput(p.in), tea.WithOutput(p.out))
	if _, err := program.Run(); err != nil {
		return errors.Wrap(err, errors.ErrCodeInternal, "prompt failed")
	}
	return nil
}

func outcomeError(title string, outcome Outcome) error {
	switch outcome {
	case Answered:
		return nil
	case Interrupted:
		return errors.PromptCancelled(title).WithDetail("interrupted", true)
	default:
		return errors.PromptCancelled(title)
	}
}

// validationMessage is the text shown under an input rejected by a Validator.
func validationMessage(err error) string {
	if zErr, ok := errors.As(err); ok {
		return zErr.Message
	}
	return err.Error()
}
