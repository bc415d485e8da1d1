// Package launcher drives the interactive flow: pick an action, then create,
// attach to, or delete zellij sessions.
package launcher

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/grovetools/zism/errors"
	"github.com/grovetools/zism/logging"
	"github.com/grovetools/zism/pkg/guake"
	"github.com/grovetools/zism/pkg/zellij"
	"github.com/grovetools/zism/tui/prompt"
	"github.com/sirupsen/logrus"
)

// SessionController manages zellij sessions. Create and attach replace the
// running process and return only on failure.
type SessionController interface {
	ListSessions(ctx context.Context) ([]string, error)
	CreateSession(ctx context.Context, name string) error
	CreateSessionIn(ctx context.Context, name, dir string) error
	AttachSession(ctx context.Context, name string) error
	DeleteSession(ctx context.Context, name string) error
}

// Prompter asks the user questions.
type Prompter interface {
	Select(title string, items []string) (string, error)
	SelectOptional(title string, items []string) (string, bool, error)
	Text(title string, validate prompt.Validator) (string, error)
	Directory(title string, completer prompt.Completer, validate prompt.Validator) (string, error)
}

// TabRenamer renames the terminal tab zism runs in.
type TabRenamer interface {
	RenameTab(ctx context.Context, name string) error
}

// Options configures a Launcher.
type Options struct {
	// Home is the root directories are entered relative to.
	Home string
	// Guake renames the Guake tab to the session name before create or attach.
	Guake bool
	// Out receives user-facing messages such as delete confirmations.
	Out io.Writer
}

// Launcher runs one interactive session.
type Launcher struct {
	sessions    SessionController
	prompts     func(prompt.Style) Prompter
	completer   prompt.Completer
	tabs        TabRenamer
	opts        Options
	pretty      *logging.PrettyLogger
	logger      *logrus.Entry
	insideGuake func() bool
	currentSess func() (string, bool)
}

// New returns a Launcher. prompts builds a Prompter rendering with the given
// style; completer serves the directory prompt.
func New(sessions SessionController, prompts func(prompt.Style) Prompter, completer prompt.Completer, tabs TabRenamer, opts Options) *Launcher {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	return &Launcher{
		sessions:    sessions,
		prompts:     prompts,
		completer:   completer,
		tabs:        tabs,
		opts:        opts,
		pretty:      logging.NewPrettyLogger().WithWriter(opts.Out),
		logger:      logging.NewLogger("launcher"),
		insideGuake: guake.IsInsideGuake,
		currentSess: zellij.CurrentSession,
	}
}

// Run executes the flow. For create and attach it only returns on failure,
// since success hands the process over to zellij.
func (l *Launcher) Run(ctx context.Context) error {
	if name, inside := l.currentSess(); inside {
		return errors.InsideSession(name)
	}

	sessions, err := l.sessions.ListSessions(ctx)
	if err != nil {
		return err
	}

	action, err := l.selectAction(len(sessions) > 0)
	if err != nil {
		return err
	}
	l.logger.WithField("action", action.String()).Debug("Action selected")

	p := l.prompts(action.Style())
	switch action {
	case Create:
		name, err := InputSessionName(p)
		if err != nil {
			return err
		}
		if err := l.renameTab(ctx, name); err != nil {
			return err
		}
		return l.sessions.CreateSession(ctx, name)

	case CreateWithDir:
		dir, err := l.inputDirectory(p)
		if err != nil {
			return err
		}
		name := SessionNameForDir(dir)
		if err := l.renameTab(ctx, name); err != nil {
			return err
		}
		return l.sessions.CreateSessionIn(ctx, name, dir)

	case Attach:
		name, err := SelectSession(p, sessions)
		if err != nil {
			return err
		}
		if err := l.renameTab(ctx, name); err != nil {
			return err
		}
		return l.sessions.AttachSession(ctx, name)

	case Delete:
		return l.deleteLoop(ctx, p)
	}

	return errors.New(errors.ErrCodeInternal, "unhandled action").WithDetail("action", int(action))
}

func (l *Launcher) selectAction(hasSessions bool) (Action, error) {
	actions := AvailableActions(hasSessions)
	labels := make([]string, len(actions))
	for i, a := range actions {
		labels[i] = a.String()
	}

	label, err := l.prompts(prompt.DefaultStyle()).Select("Select an action:", labels)
	if err != nil {
		return 0, err
	}
	action, ok := ParseAction(label)
	if !ok {
		return 0, errors.InvalidInput("unknown action: " + label)
	}
	return action, nil
}

// deleteLoop deletes sessions one at a time until none remain or the user
// skips the selection.
func (l *Launcher) deleteLoop(ctx context.Context, p Prompter) error {
	for {
		sessions, err := l.sessions.ListSessions(ctx)
		if err != nil {
			return err
		}
		if len(sessions) == 0 {
			return nil
		}

		name, ok, err := SelectSessionOptional(p, sessions)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		if err := l.sessions.DeleteSession(ctx, name); err != nil {
			return err
		}
		l.pretty.Success("Deleted session '" + name + "'")
	}
}

func (l *Launcher) inputDirectory(p Prompter) (string, error) {
	validate := func(rel string) error {
		// Completion only walks below home, so entries outside it are refused too.
		if rel != "" && !filepath.IsLocal(rel) {
			return errors.InvalidInput("Directory must be inside " + l.opts.Home + ".")
		}
		info, err := os.Stat(filepath.Join(l.opts.Home, rel))
		if err != nil || !info.IsDir() {
			return errors.InvalidInput("Directory does not exist.")
		}
		return nil
	}

	rel, err := p.Directory("Enter directory:", l.completer, validate)
	if err != nil {
		return "", err
	}
	return filepath.Join(l.opts.Home, rel), nil
}

func (l *Launcher) renameTab(ctx context.Context, name string) error {
	if !l.opts.Guake || !l.insideGuake() {
		return nil
	}
	return l.tabs.RenameTab(ctx, name)
}

// InputSessionName asks for a new session name and returns it trimmed.
func InputSessionName(p Prompter) (string, error) {
	name, err := p.Text("Enter new session name:", ValidateSessionName)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(name), nil
}

// ValidateSessionName rejects names that are empty after trimming.
func ValidateSessionName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.InvalidInput("Session name cannot be empty.")
	}
	return nil
}

// SessionNameForDir names a session after the last element of dir.
func SessionNameForDir(dir string) string {
	return filepath.Base(filepath.Clean(dir))
}

// SelectSession asks the user to pick one of sessions. An empty list is an
// error.
func SelectSession(p Prompter, sessions []string) (string, error) {
	if len(sessions) == 0 {
		return "", errors.NoSessionsAvailable()
	}
	return p.Select("Select a session:", sessions)
}

// SelectSessionOptional is SelectSession where the user may skip. An empty
// list yields no selection and no error.
func SelectSessionOptional(p Prompter, sessions []string) (string, bool, error) {
	if len(sessions) == 0 {
		return "", false, nil
	}
	return p.SelectOptional("Select a session:", sessions)
}
