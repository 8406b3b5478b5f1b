package ignore

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"
)

// Matcher answers exclusion queries against a compiled set of
// gitignore-syntax rules. Queries take install-root-relative paths; rules use
// last-match-wins semantics with negation, so later pattern files override
// earlier ones.
//
// A nil Matcher excludes nothing.
type Matcher struct {
	rules *gitignore.GitIgnore
}

// CompileDir compiles every pattern file found in dir into one rule set.
// Files are read in lexical name order. A missing directory yields an empty
// matcher; any other read failure is returned to the caller.
func CompileDir(dir string) (*Matcher, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return CompileLines(), nil
		}
		return nil, fmt.Errorf("read ignore directory %s: %w", dir, err)
	}

	var lines []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := filepath.Join(dir, entry.Name())
		content, err := os.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read ignore file %s: %w", name, err)
		}
		lines = append(lines, strings.Split(string(content), "\n")...)
	}

	return CompileLines(lines...), nil
}

// CompileLines builds a matcher from raw pattern lines.
func CompileLines(lines ...string) *Matcher {
	return &Matcher{rules: gitignore.CompileIgnoreLines(lines...)}
}

// Match reports whether rel is excluded by a direct rule match. Directory
// queries also test the trailing-slash form so directory-only patterns
// ("cache/") apply.
func (m *Matcher) Match(rel string, isDir bool) bool {
	if m == nil || m.rules == nil {
		return false
	}

	rel = normalize(rel)
	if rel == "" {
		return false
	}
	if m.rules.MatchesPath(rel) {
		return true
	}
	return isDir && m.rules.MatchesPath(rel+"/")
}

// MatchAnyParent reports whether rel or any of its ancestor directories is
// excluded.
func (m *Matcher) MatchAnyParent(rel string, isDir bool) bool {
	if m == nil {
		return false
	}
	if m.Match(rel, isDir) {
		return true
	}

	for parent := path.Dir(normalize(rel)); parent != "." && parent != "/"; parent = path.Dir(parent) {
		if m.Match(parent, true) {
			return true
		}
	}
	return false
}

func normalize(rel string) string {
	return strings.Trim(strings.TrimSpace(filepath.ToSlash(rel)), "/")
}
