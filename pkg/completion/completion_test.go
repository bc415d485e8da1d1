package completion

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dirs(names ...string) fstest.MapFS {
	fsys := fstest.MapFS{}
	for _, name := range names {
		fsys[name+"/.keep"] = &fstest.MapFile{}
	}
	return fsys
}

func TestSuggestions(t *testing.T) {
	fsys := dirs("dev", "docs", "music", ".config", "a/bar", "a/baz", "a/qux", "a/.hidden")
	fsys["notes.txt"] = &fstest.MapFile{Data: []byte("x")}
	fsys["a/bfile"] = &fstest.MapFile{Data: []byte("x")}
	c := NewFS(fsys)

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty input lists root", "", []string{"a", "dev", "docs", "music"}},
		{"prefix at root", "d", []string{"dev", "docs"}},
		{"exact name", "dev", []string{"dev"}},
		{"trailing slash lists children", "a/", []string{"a/bar", "a/baz", "a/qux"}},
		{"nested prefix", "a/b", []string{"a/bar", "a/baz"}},
		{"nested single", "a/q", []string{"a/qux"}},
		{"hidden only by explicit dot", ".", nil},
		{"no match", "z", nil},
		{"missing parent", "nope/x", nil},
		{"file is not a directory", "notes", nil},
		{"leading slash uses root", "/d", []string{"/dev", "/docs"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Suggestions(tt.input))
		})
	}
}

func TestCompletion(t *testing.T) {
	tests := []struct {
		name        string
		fsys        fstest.MapFS
		input       string
		highlighted string
		want        string
		wantOK      bool
	}{
		{
			name:   "single nested match descends",
			fsys:   dirs("a/bar"),
			input:  "a/b",
			want:   "a/bar/",
			wantOK: true,
		},
		{
			name:   "common prefix longer than input",
			fsys:   dirs("dev", "docs"),
			input:  "",
			want:   "d",
			wantOK: true,
		},
		{
			name:  "common prefix equal to input",
			fsys:  dirs("dev", "docs"),
			input: "d",
		},
		{
			name:  "disjoint siblings",
			fsys:  dirs("alpha", "beta"),
			input: "",
		},
		{
			name:  "no suggestions",
			fsys:  dirs("alpha"),
			input: "z",
		},
		{
			name:   "partial expansion",
			fsys:   dirs("develop/foo", "develop/bar", "develop/baz"),
			input:  "develop/b",
			want:   "develop/ba",
			wantOK: true,
		},
		{
			name:        "highlighted wins",
			fsys:        dirs("dev", "docs"),
			input:       "d",
			highlighted: "docs",
			want:        "docs/",
			wantOK:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NewFS(tt.fsys).Completion(tt.input, tt.highlighted)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLongestCommonPrefix(t *testing.T) {
	tests := []struct {
		items []string
		want  string
	}{
		{nil, ""},
		{[]string{"only"}, "only"},
		{[]string{"alpha", "beta"}, ""},
		{[]string{"develop/foo", "develop/bar", "develop/baz"}, "develop/"},
		{[]string{"abc", "ab", "abd"}, "ab"},
		{[]string{"same", "same"}, "same"},
		{[]string{"", "x"}, ""},
		{[]string{"café", "cafè"}, "caf"},
		{[]string{"日本語", "日本人"}, "日本"},
		{[]string{"héllo", "hé"}, "hé"},
		{[]string{"ab\u0301", "ab"}, "ab"},
		{[]string{"e\u0301x", "e\u0300y"}, "e"},
		{[]string{"a\xffb", "a\xffc"}, "a\xff"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.items, ","), func(t *testing.T) {
			got := LongestCommonPrefix(tt.items)
			assert.Equal(t, tt.want, got)
			for _, item := range tt.items {
				assert.True(t, strings.HasPrefix(item, got))
			}
		})
	}
}

func TestUTF8Completion(t *testing.T) {
	c := NewFS(dirs("résumé", "répertoire"))

	got, ok := c.Completion("", "")
	require.True(t, ok)
	assert.Equal(t, "ré", got)

	assert.Equal(t, []string{"répertoire", "résumé"}, c.Suggestions("ré"))
}

func TestCombiningMarkCompletion(t *testing.T) {
	c := NewFS(dirs("cafe\u0301", "cafe"))

	got, ok := c.Completion("caf", "")
	require.True(t, ok)
	assert.Equal(t, "cafe", got)
}

func TestSuggestionsIdempotent(t *testing.T) {
	c := NewFS(dirs("dev", "docs", "downloads", "a/bar"))

	for _, input := range []string{"", "d", "do", "a/", "a/b"} {
		assert.Equal(t, c.Suggestions(input), c.Suggestions(input), input)
	}
}

func TestSuggestionsNarrowMonotonically(t *testing.T) {
	c := NewFS(dirs("dev", "develop", "devops", "docs", "downloads"))

	inputs := []string{"", "d", "de", "dev", "devo", "devops"}
	for i := 1; i < len(inputs); i++ {
		wider := c.Suggestions(inputs[i-1])
		narrower := c.Suggestions(inputs[i])
		assert.Subset(t, wider, narrower, "%q should narrow %q", inputs[i], inputs[i-1])
	}
}

func TestExclude(t *testing.T) {
	c := NewFS(dirs("dev", "node_modules", "src/vendor", "src/app"),
		WithExclude([]string{"node_modules", "**/vendor"}))

	assert.Equal(t, []string{"dev", "src"}, c.Suggestions(""))
	assert.Equal(t, []string{"src/app"}, c.Suggestions("src/"))
}

func TestInvalidExcludeIgnored(t *testing.T) {
	c := NewFS(dirs("dev"), WithExclude([]string{"[unterminated"}))

	assert.Equal(t, []string{"dev"}, c.Suggestions(""))
}

func TestOnDisk(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(home, "projects", "zism"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".cache"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(home, "file"), nil, 0o644))
	require.NoError(t, os.Symlink(filepath.Join(home, "projects"), filepath.Join(home, "p")))

	c := New(home)
	assert.Equal(t, []string{"p", "projects"}, c.Suggestions(""))
	assert.Equal(t, []string{"projects/zism"}, c.Suggestions("projects/"))

	got, ok := c.Completion("projects/z", "")
	require.True(t, ok)
	assert.Equal(t, "projects/zism/", got)
}

func TestUnreadableDirectory(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root can read any directory")
	}
	home := t.TempDir()
	locked := filepath.Join(home, "locked")
	require.NoError(t, os.MkdirAll(filepath.Join(locked, "inner"), 0o755))
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	c := New(home)
	assert.Empty(t, c.Suggestions("locked/"))
	_, ok := c.Completion("locked/", "")
	assert.False(t, ok)
}
