package command

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

const (
	// DefaultTimeout is the default command execution timeout. Zero means the
	// command runs until it exits; the user's interrupt is the only cancellation.
	DefaultTimeout time.Duration = 0

	// MaxTimeout is the maximum allowed timeout
	MaxTimeout = 10 * time.Minute
)

// errReturnedFromExec is reported when an Executor returns from Exec without
// an error, which a real execve never does.
var errReturnedFromExec = fmt.Errorf("exec returned without replacing the process")

// SafeBuilder provides secure command execution with validation
type SafeBuilder struct {
	defaultTimeout time.Duration
	validators     map[string]func(string) error
	executor       Executor
}

// NewSafeBuilder creates a new SafeBuilder instance with a RealExecutor
func NewSafeBuilder() *SafeBuilder {
	return NewSafeBuilderWithExecutor(&RealExecutor{})
}

// NewSafeBuilderWithExecutor creates a new SafeBuilder with a custom Executor
func NewSafeBuilderWithExecutor(exec Executor) *SafeBuilder {
	return &SafeBuilder{
		defaultTimeout: DefaultTimeout,
		validators:     makeDefaultValidators(),
		executor:       exec,
	}
}

// Executor returns the executor commands are created with.
func (sb *SafeBuilder) Executor() Executor {
	return sb.executor
}

// makeDefaultValidators returns the default set of validators
func makeDefaultValidators() map[string]func(string) error {
	return map[string]func(string) error{
		"sessionName": validateSessionName,
		"directory":   validateDirectory,
		"tabName":     validateSessionName,
	}
}

// validateSessionName ensures a session name is a single non-empty line.
// Spaces and punctuation are allowed; the name is passed as one argv element.
func validateSessionName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("session name cannot be empty")
	}

	if strings.ContainsAny(name, "\n\r\x00") {
		return fmt.Errorf("invalid session name: %q (must be a single line)", name)
	}

	return nil
}

// validateDirectory ensures a working directory is usable as a path
func validateDirectory(path string) error {
	if path == "" {
		return fmt.Errorf("directory cannot be empty")
	}

	if strings.ContainsRune(path, '\x00') {
		return fmt.Errorf("directory contains invalid characters")
	}

	return nil
}

// Command represents a safe command configuration
type Command struct {
	parent   context.Context
	ctx      context.Context
	cancel   context.CancelFunc
	name     string
	args     []string
	dir      string
	timeout  time.Duration
	executor Executor
}

// Build creates a new command with validation
func (sb *SafeBuilder) Build(ctx context.Context, name string, args ...string) (*Command, error) {
	// Validate command name
	if name == "" {
		return nil, fmt.Errorf("command name cannot be empty")
	}

	cmd := &Command{
		parent:   ctx,
		ctx:      ctx,
		name:     name,
		args:     args,
		executor: sb.executor,
	}
	if sb.defaultTimeout > 0 {
		cmd.ctx, cmd.cancel = context.WithTimeout(ctx, sb.defaultTimeout)
		cmd.timeout = sb.defaultTimeout
	}

	return cmd, nil
}

// WithTimeout sets a custom timeout for the command
func (c *Command) WithTimeout(timeout time.Duration) *Command {
	if timeout > MaxTimeout {
		timeout = MaxTimeout
	}

	c.Release()
	c.ctx, c.cancel = context.WithTimeout(c.parent, timeout)
	c.timeout = timeout
	return c
}

// WithDir sets the working directory of the command.
func (c *Command) WithDir(dir string) *Command {
	c.dir = dir
	return c
}

// Release frees the timeout context, if any. Safe to call more than once.
func (c *Command) Release() {
	if c.cancel != nil {
		c.cancel()
	}
}

// Args returns the command arguments, excluding the command name.
func (c *Command) Args() []string {
	return c.args
}

// Validate validates specific arguments
func (sb *SafeBuilder) Validate(argType string, value string) error {
	validator, exists := sb.validators[argType]
	if !exists {
		return fmt.Errorf("no validator for argument type: %s", argType)
	}

	return validator(value)
}

// Exec creates and returns an exec.Cmd
func (c *Command) Exec() *exec.Cmd {
	cmd := c.executor.CommandContext(c.ctx, c.name, c.args...) //nolint:gosec // SafeBuilder provides validation
	if c.dir != "" {
		cmd.Dir = c.dir
	}
	return cmd
}

// Replace turns the current process into the command. It only returns when the
// replacement could not be performed, so the returned error is never nil.
func (c *Command) Replace() error {
	path, err := c.executor.LookPath(c.name)
	if err != nil {
		return err
	}

	argv := append([]string{c.name}, c.args...)
	if err := c.executor.Exec(path, argv, os.Environ(), c.dir); err != nil {
		return err
	}
	return errReturnedFromExec
}
