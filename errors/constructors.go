package errors

import (
	"fmt"
	"os/exec"
	"strings"
)

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *ZismError {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(reason string) *ZismError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason))
}

// ToolUnavailable reports that the session tool could not be started at all.
func ToolUnavailable(tool string, err error) *ZismError {
	return Wrap(err, ErrCodeToolUnavailable, fmt.Sprintf("failed to run %s. Is it installed?", tool)).
		WithDetail("tool", tool)
}

// ToolReportedError carries the tool's stderr verbatim.
func ToolReportedError(tool, subcommand, stderr string) *ZismError {
	stderr = strings.TrimSpace(stderr)
	return New(ErrCodeToolReportedError, fmt.Sprintf("%s %s failed: %s", tool, subcommand, stderr)).
		WithDetail("tool", tool).
		WithDetail("stderr", stderr)
}

// ExecFailed reports that the current process could not be replaced by the tool,
// or that a child process could not be spawned.
func ExecFailed(tool string, err error) *ZismError {
	return Wrap(err, ErrCodeExecFailed, fmt.Sprintf("failed to exec %s", tool)).
		WithDetail("tool", tool)
}

// DeleteFailed reports a delete subcommand that exited non-zero.
func DeleteFailed(session string, err error) *ZismError {
	zErr := Wrap(err, ErrCodeDeleteFailed, fmt.Sprintf("failed to delete session '%s'", session)).
		WithDetail("session", session)

	// Extract exit code if available
	if exitErr, ok := err.(*exec.ExitError); ok {
		zErr = zErr.WithDetail("exitCode", exitErr.ExitCode())
	}

	return zErr
}

// NoSessionsAvailable is returned when a selection is requested from an empty list.
func NoSessionsAvailable() *ZismError {
	return New(ErrCodeNoSessionsAvailable, "no sessions available to select")
}

// InsideSession reports that zism was started from within a multiplexer session.
func InsideSession(session string) *ZismError {
	return New(ErrCodeInsideSession, "already inside a Zellij session").
		WithDetail("session", session)
}

// TabRenameFailed reports a failed terminal tab rename.
func TabRenameFailed(name string, err error) *ZismError {
	return Wrap(err, ErrCodeTabRenameFailed, "failed to run guake --rename-current-tab").
		WithDetail("name", name)
}

// PromptCancelled reports that the user aborted an interactive prompt.
func PromptCancelled(prompt string) *ZismError {
	return New(ErrCodePromptCancelled, "prompt cancelled").
		WithDetail("prompt", prompt)
}

// InvalidInput creates an invalid input error
func InvalidInput(reason string) *ZismError {
	return New(ErrCodeInvalidInput, reason)
}
