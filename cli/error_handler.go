package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/grovetools/zism/errors"
)

// ErrorHandler provides user-friendly error messages
type ErrorHandler struct {
	Verbose bool
	Out     io.Writer
}

// NewErrorHandler creates a new error handler writing to stderr
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
		Out:     os.Stderr,
	}
}

// Handle prints a message for err based on its code and returns err.
func (h *ErrorHandler) Handle(err error) error {
	if err == nil {
		return nil
	}
	zErr, _ := errors.As(err)

	switch errors.GetCode(err) {
	case errors.ErrCodeInsideSession:
		fmt.Fprintln(h.Out, "Already inside a Zellij session. Please run zism from outside Zellij.")
		return err

	case errors.ErrCodePromptCancelled:
		fmt.Fprintln(h.Out, "Operation was canceled by the user")
		return err

	case errors.ErrCodeToolUnavailable:
		fmt.Fprintf(h.Out, "❌ Failed to run %s. Is it installed?\n", detail(zErr, "tool", "zellij"))
		if c := cause(zErr); c != nil {
			fmt.Fprintf(h.Out, "   Caused by: %v\n", c)
		}

	case errors.ErrCodeToolReportedError:
		fmt.Fprintf(h.Out, "❌ %s\n", zErr.Message)

	case errors.ErrCodeExecFailed:
		fmt.Fprintf(h.Out, "❌ Failed to exec %s: %v\n", detail(zErr, "tool", "zellij"), cause(zErr))

	case errors.ErrCodeDeleteFailed:
		fmt.Fprintf(h.Out, "❌ Failed to delete session '%s'\n", detail(zErr, "session", ""))
		if stderr := detail(zErr, "stderr", ""); stderr != "" {
			fmt.Fprintf(h.Out, "   %s\n", stderr)
		}

	case errors.ErrCodeNoSessionsAvailable:
		fmt.Fprintln(h.Out, "❌ No sessions available to select.")

	case errors.ErrCodeTabRenameFailed:
		fmt.Fprintf(h.Out, "❌ Failed to run guake --rename-current-tab: %v\n", cause(zErr))

	case errors.ErrCodeConfigNotFound:
		fmt.Fprintf(h.Out, "❌ Configuration file not found: %s\n", detail(zErr, "path", ""))

	case errors.ErrCodeConfigInvalid:
		fmt.Fprintf(h.Out, "❌ Invalid configuration in %s\n", detail(zErr, "path", "config"))
		fmt.Fprintf(h.Out, "   %s\n", zErr.Message)
		if c := cause(zErr); c != nil {
			fmt.Fprintf(h.Out, "   %v\n", c)
		}

	default:
		fmt.Fprintf(h.Out, "❌ Error: %v\n", err)
	}

	// If verbose mode, show full error details
	if h.Verbose && zErr != nil {
		fmt.Fprintf(h.Out, "\nError details:\n%s\n", zErr.ToJSON())
	}
	return err
}

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errors.ErrCodePromptCancelled):
		if zErr, ok := errors.As(err); ok && zErr.Details["interrupted"] == true {
			return 130
		}
		return 1
	default:
		return 1
	}
}

func detail(zErr *errors.ZismError, key, fallback string) string {
	if zErr == nil {
		return fallback
	}
	if v, ok := zErr.Details[key]; ok {
		return fmt.Sprint(v)
	}
	return fallback
}

func cause(zErr *errors.ZismError) error {
	if zErr == nil {
		return nil
	}
	return zErr.Cause
}
