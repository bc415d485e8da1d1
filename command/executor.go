package command

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"golang.org/x/sys/unix"
)

// Executor creates exec.Cmd instances and performs process-image replacement.
// This abstraction allows for dependency injection, enabling tests to point
// commands at fake binaries and to record replacements instead of performing
// them.
type Executor interface {
	// Command creates a new exec.Cmd instance for the given command and arguments.
	Command(name string, args ...string) *exec.Cmd

	// CommandContext creates a new context-aware exec.Cmd instance.
	CommandContext(ctx context.Context, name string, args ...string) *exec.Cmd

	// LookPath resolves a command name to an executable path.
	LookPath(file string) (string, error)

	// Exec replaces the current process image with path. On success it never
	// returns. dir, when set, becomes the working directory of the new image.
	Exec(path string, argv []string, env []string, dir string) error
}

// RealExecutor is the production implementation of the Executor interface,
// which uses the standard os/exec package to create commands and execve(2)
// to replace the process.
type RealExecutor struct{}

// Command creates a standard exec.Cmd.
func (e *RealExecutor) Command(name string, args ...string) *exec.Cmd {
	return exec.Command(name, args...)
}

// CommandContext creates a standard context-aware exec.Cmd.
func (e *RealExecutor) CommandContext(ctx context.Context, name string, args ...string) *exec.Cmd {
	return exec.CommandContext(ctx, name, args...)
}

// LookPath searches PATH for file.
func (e *RealExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// Exec replaces the running process. The returned error is the only
// observable outcome.
func (e *RealExecutor) Exec(path string, argv []string, env []string, dir string) error {
	if dir == "" {
		return unix.Exec(path, argv, env)
	}

	prev, err := os.Getwd()
	if err != nil {
		return err
	}
	if err := os.Chdir(dir); err != nil {
		return err
	}
	execErr := unix.Exec(path, argv, env)
	// Only reached when the exec failed; leave the caller where it was.
	if err := os.Chdir(prev); err != nil {
		return fmt.Errorf("%w (restoring working directory: %v)", execErr, err)
	}
	return execErr
}
