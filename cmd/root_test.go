package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/grovetools/zism/config"
	"github.com/grovetools/zism/errors"
	"github.com/grovetools/zism/internal/banner"
	"github.com/grovetools/zism/testutil"
	"github.com/grovetools/zism/version"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every zism path at a temp dir and disables color.
func isolate(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ZISM_HOME", root)
	t.Setenv("NO_COLOR", "1")
	return root
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "zism.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestResolveSettings(t *testing.T) {
	isolate(t)
	home := t.TempDir()

	tests := []struct {
		name   string
		cfg    string
		args   []string
		expect settings
	}{
		{
			name:   "defaults",
			args:   nil,
			expect: settings{pageSize: 24, showBanner: true, home: home},
		},
		{
			name:   "config values",
			cfg:    "page_size: 10\nguake: true\nbanner: false\n",
			expect: settings{pageSize: 10, guake: true, showBanner: false, home: home},
		},
		{
			name:   "flags override config",
			cfg:    "page_size: 10\nguake: true\n",
			args:   []string{"--page-size", "5", "--guake=false", "--no-banner"},
			expect: settings{pageSize: 5, guake: false, showBanner: false, home: home},
		},
		{
			name:   "banner only",
			cfg:    "banner: false\n",
			args:   []string{"--banner"},
			expect: settings{pageSize: 24, showBanner: true, bannerOnly: true, home: home},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := config.LoadFromBytes([]byte("home: " + home + "\n" + tt.cfg))
			require.NoError(t, err)

			cmd := NewRootCmd()
			require.NoError(t, cmd.ParseFlags(tt.args))

			s, err := resolveSettings(cmd, cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.expect, s)
		})
	}
}

func TestResolveSettingsRejectsPageSize(t *testing.T) {
	isolate(t)
	cmd := NewRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--page-size", "0"}))

	_, err := resolveSettings(cmd, config.Default())
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
}

func TestBannerFlag(t *testing.T) {
	dir := isolate(t)
	cfgPath := writeConfig(t, dir, "home: "+dir+"\n")

	out, err := execute(t, "--config", cfgPath, "--banner")
	require.NoError(t, err)
	assert.Equal(t, banner.Render(version.GetInfo().Version, termenv.Ascii), out)
}

func TestBannerFlagsAreExclusive(t *testing.T) {
	isolate(t)
	_, err := execute(t, "--banner", "--no-banner")
	assert.Error(t, err)
}

func TestRootRejectsArgs(t *testing.T) {
	isolate(t)
	_, err := execute(t, "extra")
	assert.Error(t, err)
}

func TestCompleteCommand(t *testing.T) {
	dir := isolate(t)
	home := t.TempDir()
	testutil.MakeDirs(t, home, "dev/app", "docs", ".hidden")
	cfgPath := writeConfig(t, dir, "home: "+home+"\n")

	t.Run("text", func(t *testing.T) {
		out, err := execute(t, "--config", cfgPath, "complete")
		require.NoError(t, err)
		assert.Equal(t, "dev\ndocs\n=> d\n", out)
	})

	t.Run("single candidate", func(t *testing.T) {
		out, err := execute(t, "--config", cfgPath, "complete", "dev/a")
		require.NoError(t, err)
		assert.Equal(t, "dev/app\n=> dev/app/\n", out)
	})

	t.Run("json without completion", func(t *testing.T) {
		out, err := execute(t, "--config", cfgPath, "--json", "complete", "d")
		require.NoError(t, err)

		var result CompleteOutput
		require.NoError(t, json.Unmarshal([]byte(out), &result))
		assert.Equal(t, "d", result.Input)
		assert.Equal(t, []string{"dev", "docs"}, result.Suggestions)
		assert.Nil(t, result.Completion)
	})

	t.Run("highlighted", func(t *testing.T) {
		out, err := execute(t, "--config", cfgPath, "complete", "d", "--highlighted", "docs")
		require.NoError(t, err)
		assert.Equal(t, "dev\ndocs\n=> docs/\n", out)
	})

	t.Run("no match", func(t *testing.T) {
		out, err := execute(t, "--config", cfgPath, "--json", "complete", "zzz")
		require.NoError(t, err)

		var result CompleteOutput
		require.NoError(t, json.Unmarshal([]byte(out), &result))
		assert.Empty(t, result.Suggestions)
		assert.NotNil(t, result.Suggestions)
	})
}

func TestCompleteCommandExclude(t *testing.T) {
	dir := isolate(t)
	home := t.TempDir()
	testutil.MakeDirs(t, home, "dev", "docs")
	cfgPath := writeConfig(t, dir, "home: "+home+"\ncompletion:\n  exclude:\n    - docs\n")

	out, err := execute(t, "--config", cfgPath, "complete")
	require.NoError(t, err)
	assert.Equal(t, "dev\n=> dev/\n", out)
}

func TestListCommand(t *testing.T) {
	dir := isolate(t)
	tool := testutil.WriteFakeTool(t, dir, "zellij", `printf '  alpha \n\nbeta\n'`)
	cfgPath := writeConfig(t, dir, "binary: "+tool+"\n")

	out, err := execute(t, "--config", cfgPath, "list")
	require.NoError(t, err)
	assert.Equal(t, "alpha\nbeta\n", out)

	out, err = execute(t, "--config", cfgPath, "--json", "list")
	require.NoError(t, err)
	var sessions []string
	require.NoError(t, json.Unmarshal([]byte(out), &sessions))
	assert.Equal(t, []string{"alpha", "beta"}, sessions)
}

func TestListCommandNoSessions(t *testing.T) {
	dir := isolate(t)
	tool := testutil.WriteFakeTool(t, dir, "zellij", `echo "No active zellij sessions found." >&2; exit 1`)
	cfgPath := writeConfig(t, dir, "binary: "+tool+"\n")

	out, err := execute(t, "--config", cfgPath, "list")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestListCommandMissingTool(t *testing.T) {
	dir := isolate(t)
	cfgPath := writeConfig(t, dir, "binary: "+filepath.Join(dir, "missing-zellij")+"\n")

	_, err := execute(t, "--config", cfgPath, "list")
	assert.True(t, errors.Is(err, errors.ErrCodeToolUnavailable))
}

func TestVersionCommand(t *testing.T) {
	isolate(t)

	out, err := execute(t, "--json", "version")
	require.NoError(t, err)

	var info version.Info
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, version.GetInfo(), info)
}

func TestConfigCommands(t *testing.T) {
	dir := isolate(t)
	cfgPath := writeConfig(t, dir, "page_size: 7\n")

	t.Run("show json", func(t *testing.T) {
		out, err := execute(t, "--config", cfgPath, "--json", "config", "show")
		require.NoError(t, err)

		var cfg config.Config
		require.NoError(t, json.Unmarshal([]byte(out), &cfg))
		assert.Equal(t, 7, cfg.PageSize)
		assert.Equal(t, config.DefaultBinary, cfg.Binary)
	})

	t.Run("show yaml", func(t *testing.T) {
		out, err := execute(t, "--config", cfgPath, "config", "show")
		require.NoError(t, err)
		assert.Contains(t, out, "page_size: 7")
	})

	t.Run("schema", func(t *testing.T) {
		out, err := execute(t, "config", "schema")
		require.NoError(t, err)

		var schema map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(out), &schema))
		assert.NotEmpty(t, schema)
	})

	t.Run("path", func(t *testing.T) {
		out, err := execute(t, "--config", cfgPath, "config", "path")
		require.NoError(t, err)
		assert.Equal(t, cfgPath+"\n", out)
	})
}
