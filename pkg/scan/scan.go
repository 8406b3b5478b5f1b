package scan

import (
	"io/fs"
	"iter"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/Morganamilo/archdiff/pkg/ignore"
)

// Options controls one tree scan.
type Options struct {
	// Ignore, when set, prunes matched directories (no descent) and omits
	// matched files from the sequence.
	Ignore *ignore.Matcher
	// Log receives diagnostics for entries that could not be read.
	Log *zap.Logger
}

// Files walks the tree rooted at root depth-first and yields root-relative
// paths. Only files are yielded, symlinks included; directories never are.
// Entries that cannot be read are logged and skipped, and traversal
// continues with their siblings.
//
// The sequence is lazy and restartable: each range re-walks from scratch, and
// it is finite for a finite tree.
func Files(root string, opts Options) iter.Seq[string] {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	prefix := root
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}

	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				log.Warn("skipping unreadable entry",
					zap.String("path", path),
					zap.Error(err))
				return nil
			}
			if path == root {
				return nil
			}

			rel := strings.TrimPrefix(path, prefix)
			if d.IsDir() {
				if opts.Ignore.Match(rel, true) {
					return fs.SkipDir
				}
				return nil
			}

			if opts.Ignore.Match(rel, false) {
				return nil
			}
			if !yield(rel) {
				return fs.SkipAll
			}
			return nil
		})
	}
}
