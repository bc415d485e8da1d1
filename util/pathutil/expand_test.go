package pathutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("ZISM_TEST_DIR", "projects")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"tilde alone", "~", home},
		{"tilde prefix", "~/src", filepath.Join(home, "src")},
		{"env var", "/data/$ZISM_TEST_DIR", "/data/projects"},
		{"absolute", "/opt/work", "/opt/work"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Expand(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
