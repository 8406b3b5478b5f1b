package reconcile

import (
	"maps"
	"os"
	"runtime"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Morganamilo/archdiff/pkg/alpmdb"
	"github.com/Morganamilo/archdiff/pkg/digest"
	"github.com/Morganamilo/archdiff/pkg/ignore"
	"github.com/Morganamilo/archdiff/pkg/scan"
)

// Engine reconciles the package database's record of the filesystem with the
// live tree and the repository mirror.
//
// Root and Repo must end with the path separator so root-relative paths can
// be joined by concatenation.
type Engine struct {
	Root   string
	Repo   string
	Ignore *ignore.Matcher
	Log    *zap.Logger
	Jobs   int // parallel workers for the per-path checks; 0 means one per CPU
}

// Run classifies every drifted path into one Entry. The four phases run in a
// fixed order: the live scan and the mirror scan mutate working copies of the
// manifest sets sequentially, then the deleted and backup checks consume what
// remains in parallel. Entry order is unspecified; Report sorts.
//
// Per-file I/O failures are logged and skip only the affected path; Run
// itself never fails.
func (e *Engine) Run(m alpmdb.Manifest) []Entry {
	tracked := maps.Clone(m.Files)
	backups := maps.Clone(m.Backups)

	var entries []Entry

	// Phase 1: every file on disk is either confirmed against the tracked
	// set or reported untracked. Must finish before the deleted check, which
	// inspects what remains unconfirmed in tracked.
	for rel := range scan.Files(e.Root, scan.Options{Ignore: e.Ignore, Log: e.Log}) {
		if _, ok := tracked[rel]; ok {
			delete(tracked, rel)
			continue
		}
		entries = append(entries, Entry{Kind: Untracked, Path: rel})
	}

	// Phase 2: mirror membership supersedes the package backup record, so
	// every mirror path is removed from the backup map before the content
	// comparison. The mirror is curated and scanned unfiltered.
	for rel := range scan.Files(e.Repo, scan.Options{Log: e.Log}) {
		delete(backups, rel)

		repoHash, err := digest.File(e.Repo + rel)
		if err != nil {
			e.log().Warn("skipping mirror file", zap.Error(err))
			continue
		}
		liveHash, err := digest.File(e.Root + rel)
		if err != nil {
			e.log().Warn("skipping mirrored live file", zap.Error(err))
			continue
		}
		if repoHash != liveHash {
			entries = append(entries, Entry{Kind: RepoChanged, Path: rel})
		}
	}

	entries = append(entries, e.deleted(tracked)...)
	entries = append(entries, e.changedBackups(backups)...)

	return entries
}

// deleted checks every tracked path the live scan never confirmed. A path
// excluded by a direct ignore match is not considered missing, and a path
// that exists was merely hidden from phase 1 by directory pruning.
func (e *Engine) deleted(tracked map[string]struct{}) []Entry {
	var (
		mu  sync.Mutex
		out []Entry
	)

	var grp errgroup.Group
	grp.SetLimit(e.jobs())
	for rel := range tracked {
		grp.Go(func() error {
			if e.Ignore.Match(rel, false) {
				return nil
			}
			if _, err := os.Stat(e.Root + rel); err == nil {
				return nil
			}

			mu.Lock()
			out = append(out, Entry{Kind: Deleted, Path: rel})
			mu.Unlock()
			return nil
		})
	}
	_ = grp.Wait()

	return out
}

// changedBackups hashes every backup path the mirror did not supersede and
// compares against the fingerprint the package recorded. Paths under an
// excluded directory are dropped, and hash failures skip the path.
func (e *Engine) changedBackups(backups map[string]string) []Entry {
	var (
		mu  sync.Mutex
		out []Entry
	)

	var grp errgroup.Group
	grp.SetLimit(e.jobs())
	for rel, expected := range backups {
		grp.Go(func() error {
			if e.Ignore.MatchAnyParent(rel, false) {
				return nil
			}

			actual, err := digest.File(e.Root + rel)
			if err != nil {
				e.log().Warn("skipping backup file", zap.Error(err))
				return nil
			}
			if actual == expected {
				return nil
			}

			mu.Lock()
			out = append(out, Entry{Kind: BackupChanged, Path: rel})
			mu.Unlock()
			return nil
		})
	}
	_ = grp.Wait()

	return out
}

func (e *Engine) jobs() int {
	if e.Jobs > 0 {
		return e.Jobs
	}
	return runtime.GOMAXPROCS(0)
}

func (e *Engine) log() *zap.Logger {
	if e.Log != nil {
		return e.Log
	}
	return zap.NewNop()
}
