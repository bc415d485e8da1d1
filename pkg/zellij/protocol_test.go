package zellij

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSessions(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"session names", "my-project\ndev-server\ndotfiles\n", []string{"my-project", "dev-server", "dotfiles"}},
		{"trims whitespace", "  my-project  \n  dev-server  \n", []string{"my-project", "dev-server"}},
		{"skips empty lines", "my-project\n\n\ndev-server\n", []string{"my-project", "dev-server"}},
		{"whitespace-only lines", "  a  \n\n b \n", []string{"a", "b"}},
		{"crlf line endings", "a\r\nb\r\n", []string{"a", "b"}},
		{"duplicates preserved", "a\nb\na\n", []string{"a", "b", "a"}},
		{"empty input", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseSessions(tt.input))
		})
	}
}

func TestBuildArgs(t *testing.T) {
	assert.Equal(t, []string{"--session", "x"}, BuildCreateArgs("x"))
	assert.Equal(t, []string{"attach", "x"}, BuildAttachArgs("x"))
	assert.Equal(t, []string{"delete-session", "-f", "x"}, BuildDeleteArgs("x"))
	assert.Equal(t, []string{"list-sessions", "--short", "--no-formatting"}, BuildListArgs())
}

func TestIsNoSessionsMessage(t *testing.T) {
	assert.True(t, IsNoSessionsMessage("No active zellij sessions found.\n"))
	assert.False(t, IsNoSessionsMessage("error: permission denied"))
	assert.False(t, IsNoSessionsMessage(""))
}
