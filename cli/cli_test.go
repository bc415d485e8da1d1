package cli

import (
	"bytes"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/grovetools/zism/errors"
	"github.com/grovetools/zism/version"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorHandlerMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "inside session",
			err:  errors.InsideSession("work"),
			want: "Already inside a Zellij session. Please run zism from outside Zellij.",
		},
		{
			name: "tool unavailable",
			err:  errors.ToolUnavailable("zellij", &exec.Error{Name: "zellij", Err: exec.ErrNotFound}),
			want: "Failed to run zellij. Is it installed?\n   Caused by: exec: \"zellij\": executable file not found in $PATH",
		},
		{
			name: "tool reported",
			err:  errors.ToolReportedError("zellij", "list-sessions", "boom\n"),
			want: "zellij list-sessions failed: boom",
		},
		{
			name: "delete failed",
			err:  errors.DeleteFailed("old", os.ErrPermission),
			want: "Failed to delete session 'old'",
		},
		{
			name: "delete failed with tool message",
			err:  errors.DeleteFailed("old", os.ErrPermission).WithDetail("stderr", "Session not found"),
			want: "Failed to delete session 'old'\n   Session not found",
		},
		{
			name: "exec failed",
			err:  errors.ExecFailed("zellij", exec.ErrNotFound),
			want: "Failed to exec zellij: " + exec.ErrNotFound.Error(),
		},
		{
			name: "cancelled",
			err:  errors.PromptCancelled("Select an action:"),
			want: "Operation was canceled by the user",
		},
		{
			name: "no sessions",
			err:  errors.NoSessionsAvailable(),
			want: "No sessions available to select.",
		},
		{
			name: "config invalid",
			err:  errors.ConfigInvalid("page_size must be positive").WithDetail("path", "/tmp/zism.yml"),
			want: "Invalid configuration in /tmp/zism.yml",
		},
		{
			name: "plain error",
			err:  os.ErrClosed,
			want: "Error: " + os.ErrClosed.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &ErrorHandler{Out: &buf}

			assert.Equal(t, tt.err, h.Handle(tt.err))
			assert.Contains(t, buf.String(), tt.want)
			assert.NotContains(t, buf.String(), "Error details")
		})
	}
}

func TestErrorHandlerVerbose(t *testing.T) {
	var buf bytes.Buffer
	h := &ErrorHandler{Verbose: true, Out: &buf}

	_ = h.Handle(errors.DeleteFailed("old", os.ErrPermission))
	assert.Contains(t, buf.String(), "Error details")
	assert.Contains(t, buf.String(), `"code": "DELETE_FAILED"`)
}

func TestErrorHandlerNil(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, (&ErrorHandler{Out: &buf}).Handle(nil))
	assert.Empty(t, buf.String())
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 1, ExitCode(errors.NoSessionsAvailable()))
	assert.Equal(t, 1, ExitCode(errors.PromptCancelled("x")))
	assert.Equal(t, 130, ExitCode(errors.PromptCancelled("x").WithDetail("interrupted", true)))
}

func TestNewStandardCommand(t *testing.T) {
	cmd := NewStandardCommand("zism", "Zellij session manager")
	require.NoError(t, cmd.ParseFlags([]string{"--verbose", "--config", "/tmp/z.yml"}))

	opts := GetOptions(cmd)
	assert.True(t, opts.Verbose)
	assert.False(t, opts.JSONOutput)
	assert.Equal(t, "/tmp/z.yml", opts.ConfigFile)
}

func TestWrapText(t *testing.T) {
	wrapped := wrapText("one two three four five", 9)
	for _, line := range strings.Split(wrapped, "\n") {
		assert.LessOrEqual(t, len(line), 9)
	}
	assert.Equal(t, "keep\nbreaks", wrapText("keep\nbreaks", 40))
}

func TestRenderHelp(t *testing.T) {
	root := NewStandardCommand("zism", "Zellij session manager")
	root.Flags().Int("page-size", 24, "Number of candidates to display at once")
	root.Run = func(*cobra.Command, []string) {}
	root.AddCommand(&cobra.Command{Use: "list", Short: "List sessions", Run: func(*cobra.Command, []string) {}})

	var buf bytes.Buffer
	renderHelp(&buf, root, 60)

	out := buf.String()
	assert.Contains(t, out, "ZISM")
	assert.Contains(t, out, "list")
	assert.Contains(t, out, "--page-size")
	assert.Contains(t, out, "(default: 24)")
}

func TestSetVersionTemplate(t *testing.T) {
	cmd := &cobra.Command{Use: "zism", Run: func(*cobra.Command, []string) {}}
	SetVersionTemplate(cmd, version.Info{Version: "v0.1.0", Commit: "abc123", BuildDate: "today", Platform: "linux/amd64"})

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--version"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "zism v0.1.0")
	assert.Contains(t, buf.String(), "abc123")
}
