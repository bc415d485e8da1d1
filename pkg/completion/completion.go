// Package completion suggests and completes subdirectory paths relative to a
// fixed root as the user types. Every request reads the filesystem afresh;
// nothing is cached between keystrokes.
package completion

import (
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/moby/patternmatcher"
	"github.com/sirupsen/logrus"
)

// Completer resolves suggestions against a directory tree.
type Completer struct {
	fsys    fs.FS
	exclude *patternmatcher.PatternMatcher
	logger  *logrus.Entry
}

// Option configures a Completer.
type Option func(*Completer)

// WithExclude hides directories matching any of the gitignore-style patterns.
// Patterns are relative to the completion root. Invalid patterns are
// ignored with a debug log; config validation reports them earlier.
func WithExclude(patterns []string) Option {
	return func(c *Completer) {
		if len(patterns) == 0 {
			return
		}
		pm, err := patternmatcher.New(patterns)
		if err != nil {
			c.logger.WithError(err).Debug("Ignoring invalid exclude patterns")
			return
		}
		c.exclude = pm
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *logrus.Entry) Option {
	return func(c *Completer) {
		c.logger = logger
	}
}

// New returns a Completer rooted at home.
func New(home string, opts ...Option) *Completer {
	return NewFS(os.DirFS(home), opts...)
}

// NewFS returns a Completer over an arbitrary filesystem.
func NewFS(fsys fs.FS, opts ...Option) *Completer {
	c := &Completer{
		fsys:   fsys,
		logger: logrus.NewEntry(logrus.StandardLogger()),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// request is the state derived from one input string.
type request struct {
	dir    string // directory to list, relative to the root
	prefix string // name prefix candidates must start with
	base   string // prepended to each candidate name
}

func parseInput(input string) request {
	if input == "" || strings.HasSuffix(input, "/") {
		return request{dir: input, base: input}
	}
	idx := strings.LastIndex(input, "/")
	if idx < 0 {
		return request{prefix: input}
	}
	parent := input[:idx]
	return request{
		dir:    parent,
		prefix: input[idx+1:],
		base:   parent + "/",
	}
}

// Suggestions returns the full relative paths of every visible subdirectory
// matching input, sorted by name.
func (c *Completer) Suggestions(input string) []string {
	req := parseInput(input)

	var suggestions []string
	for _, name := range c.candidates(req.dir) {
		if strings.HasPrefix(name, req.prefix) {
			suggestions = append(suggestions, req.base+name)
		}
	}
	return suggestions
}

// Completion returns the text the input should become when the user asks to
// complete it. A highlighted suggestion always wins and is descended into.
// Otherwise a single match is descended into and several matches expand to
// their longest common prefix when that adds something to input.
func (c *Completer) Completion(input, highlighted string) (string, bool) {
	if highlighted != "" {
		return highlighted + "/", true
	}

	suggestions := c.Suggestions(input)
	switch len(suggestions) {
	case 0:
		return "", false
	case 1:
		return suggestions[0] + "/", true
	}

	lcp := LongestCommonPrefix(suggestions)
	if len(lcp) > len(input) {
		return lcp, true
	}
	return "", false
}

// candidates lists the visible subdirectory names of dir, sorted ascending.
// Read errors yield an empty list.
func (c *Completer) candidates(dir string) []string {
	fsDir := path.Clean(dir)
	if dir == "" {
		fsDir = "."
	}

	entries, err := fs.ReadDir(c.fsys, fsDir)
	if err != nil {
		c.logger.WithError(err).WithField("dir", fsDir).Debug("Directory not readable, no suggestions")
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") || !c.isDir(fsDir, entry) {
			continue
		}
		if c.excluded(path.Join(fsDir, name)) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// isDir follows symlinks so a link to a directory is offered like one.
func (c *Completer) isDir(dir string, entry fs.DirEntry) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := fs.Stat(c.fsys, path.Join(dir, entry.Name()))
	return err == nil && info.IsDir()
}

func (c *Completer) excluded(rel string) bool {
	if c.exclude == nil {
		return false
	}
	matched, err := c.exclude.MatchesOrParentMatches(rel)
	return err == nil && matched
}

// LongestCommonPrefix returns the longest prefix shared by every item. It
// compares character by character, so the result never ends inside a
// multi-byte character. A combining mark is a character of its own.
func LongestCommonPrefix(items []string) string {
	if len(items) == 0 {
		return ""
	}

	prefix := items[0]
	for _, item := range items[1:] {
		prefix = commonPrefix(prefix, item)
		if prefix == "" {
			break
		}
	}
	return prefix
}

func commonPrefix(a, b string) string {
	end := 0
	for end < len(a) && end < len(b) {
		ra, size := utf8.DecodeRuneInString(a[end:])
		rb, sizeB := utf8.DecodeRuneInString(b[end:])
		if ra != rb || size != sizeB {
			break
		}
		end += size
	}
	return a[:end]
}
