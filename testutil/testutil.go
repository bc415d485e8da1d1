package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"

	"github.com/grovetools/zism/command"
	"github.com/stretchr/testify/require"
)

// RequireShell skips the test if /bin/sh is not available
func RequireShell(t *testing.T) {
	t.Helper()

	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

// WriteFakeTool writes an executable shell script named name into dir and
// returns its absolute path. body is the script without the shebang line.
func WriteFakeTool(t *testing.T, dir, name, body string) string {
	t.Helper()
	RequireShell(t)

	path := filepath.Join(dir, name)
	script := "#!/bin/sh\n" + body + "\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

// MakeDirs creates each relative directory under root.
func MakeDirs(t *testing.T, root string, dirs ...string) {
	t.Helper()

	for _, dir := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(root, dir), 0o755))
	}
}

// MakeFiles creates empty regular files at each relative path under root.
func MakeFiles(t *testing.T, root string, files ...string) {
	t.Helper()

	for _, file := range files {
		path := filepath.Join(root, file)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, nil, 0o644))
	}
}

// ExecCall is one recorded process replacement.
type ExecCall struct {
	Path string
	Argv []string
	Dir  string
}

// RecordingExecutor runs child commands for real but records process
// replacements instead of performing them, returning Err from each.
type RecordingExecutor struct {
	command.RealExecutor

	Err error

	mu    sync.Mutex
	calls []ExecCall
}

// LookPath resolves names to a fixed fake location so tests don't depend on PATH.
func (r *RecordingExecutor) LookPath(file string) (string, error) {
	if filepath.IsAbs(file) {
		return file, nil
	}
	return filepath.Join("/fake/bin", file), nil
}

// Exec records the call.
func (r *RecordingExecutor) Exec(path string, argv []string, env []string, dir string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls = append(r.calls, ExecCall{Path: path, Argv: argv, Dir: dir})
	return r.Err
}

// Calls returns the recorded replacements.
func (r *RecordingExecutor) Calls() []ExecCall {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]ExecCall(nil), r.calls...)
}
