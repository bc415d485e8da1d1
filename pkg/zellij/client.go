package zellij

import (
	"bytes"
	"context"
	stderrors "errors"
	"os/exec"
	"strings"

	"github.com/grovetools/zism/command"
	"github.com/grovetools/zism/errors"
	"github.com/grovetools/zism/logging"
	"github.com/sirupsen/logrus"
)

// DefaultBinary is the executable looked up on PATH when none is configured.
const DefaultBinary = "zellij"

// Client runs the zellij binary. It holds no session state: every call
// queries the tool again.
type Client struct {
	builder *command.SafeBuilder
	binary  string
	logger  *logrus.Entry
}

// NewClient creates a client for the given binary name or path.
func NewClient(binary string) *Client {
	return NewClientWithBuilder(binary, command.NewSafeBuilder())
}

// NewClientWithBuilder creates a client that builds its commands with builder.
// Tests use it to inject a recording executor.
func NewClientWithBuilder(binary string, builder *command.SafeBuilder) *Client {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Client{
		builder: builder,
		binary:  binary,
		logger:  logging.NewLogger("zellij"),
	}
}

// Binary returns the executable this client invokes.
func (c *Client) Binary() string {
	return c.binary
}

// ListSessions returns session names in the order zellij prints them.
func (c *Client) ListSessions(ctx context.Context) ([]string, error) {
	args := BuildListArgs()
	cmd, err := c.builder.Build(ctx, c.binary, args...)
	if err != nil {
		return nil, errors.ToolUnavailable(c.binary, err)
	}
	defer cmd.Release()

	var stdout, stderr bytes.Buffer
	execCmd := cmd.Exec()
	execCmd.Stdout = &stdout
	execCmd.Stderr = &stderr

	c.logger.WithField("args", strings.Join(args, " ")).Debug("Listing sessions")
	if err := execCmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !stderrors.As(err, &exitErr) {
			return nil, errors.ToolUnavailable(c.binary, err)
		}
		if IsNoSessionsMessage(stderr.String()) {
			c.logger.Debug("No active sessions")
			return []string{}, nil
		}
		return nil, errors.ToolReportedError(c.binary, args[0], stderr.String()).
			WithDetail("exitCode", exitErr.ExitCode())
	}

	sessions := ParseSessions(stdout.String())
	c.logger.WithField("count", len(sessions)).Debug("Listed sessions")
	return sessions, nil
}

// CreateSession replaces the current process with a new zellij session.
// It returns only when the replacement could not happen; the error is never nil.
func (c *Client) CreateSession(ctx context.Context, name string) error {
	return c.replace(ctx, name, "", BuildCreateArgs(name))
}

// CreateSessionIn is CreateSession with dir as the session's working directory.
func (c *Client) CreateSessionIn(ctx context.Context, name, dir string) error {
	if err := c.builder.Validate("directory", dir); err != nil {
		return errors.Wrap(err, errors.ErrCodeInvalidInput, "invalid session directory").
			WithDetail("dir", dir)
	}
	return c.replace(ctx, name, dir, BuildCreateArgs(name))
}

// AttachSession replaces the current process with zellij attached to name.
// It returns only when the replacement could not happen; the error is never nil.
func (c *Client) AttachSession(ctx context.Context, name string) error {
	return c.replace(ctx, name, "", BuildAttachArgs(name))
}

// DeleteSession force-deletes a session and waits for zellij to finish.
func (c *Client) DeleteSession(ctx context.Context, name string) error {
	if err := c.builder.Validate("sessionName", name); err != nil {
		return errors.Wrap(err, errors.ErrCodeInvalidInput, "invalid session name")
	}

	cmd, err := c.builder.Build(ctx, c.binary, BuildDeleteArgs(name)...)
	if err != nil {
		return errors.ExecFailed(c.binary, err)
	}
	defer cmd.Release()

	var stderr bytes.Buffer
	execCmd := cmd.Exec()
	execCmd.Stderr = &stderr

	c.logger.WithField("session", name).Debug("Deleting session")
	if err := execCmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if stderrors.As(err, &exitErr) {
			zErr := errors.DeleteFailed(name, err)
			if msg := strings.TrimSpace(stderr.String()); msg != "" {
				zErr = zErr.WithDetail("stderr", msg)
			}
			return zErr
		}
		return errors.ExecFailed(c.binary, err)
	}
	return nil
}

func (c *Client) replace(ctx context.Context, name, dir string, args []string) error {
	if err := c.builder.Validate("sessionName", name); err != nil {
		return errors.Wrap(err, errors.ErrCodeInvalidInput, "invalid session name")
	}

	cmd, err := c.builder.Build(ctx, c.binary, args...)
	if err != nil {
		return errors.ExecFailed(c.binary, err)
	}
	defer cmd.Release()

	c.logger.WithFields(logrus.Fields{
		"session": name,
		"args":    strings.Join(args, " "),
		"dir":     dir,
	}).Debug("Replacing process with zellij")

	return errors.ExecFailed(c.binary, cmd.WithDir(dir).Replace()).
		WithDetail("session", name)
}
