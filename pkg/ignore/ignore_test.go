package ignore

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCompileDirReadsAllPatternFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "00-base"), []byte("etc/mtab\n"), 0o644); err != nil {
		t.Fatalf("write pattern file: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "10-extra"), []byte("var/log/\n"), 0o644); err != nil {
		t.Fatalf("write pattern file: %v", err)
	}

	m, err := CompileDir(dir)
	if err != nil {
		t.Fatalf("CompileDir returned error: %v", err)
	}

	if !m.Match("etc/mtab", false) {
		t.Fatal("expected etc/mtab to be excluded")
	}
	if !m.Match("var/log", true) {
		t.Fatal("expected var/log directory to be excluded")
	}
	if m.Match("etc/fstab", false) {
		t.Fatal("etc/fstab should not be excluded")
	}
}

func TestCompileDirMissingDirectory(t *testing.T) {
	t.Parallel()

	m, err := CompileDir(filepath.Join(t.TempDir(), "absent"))
	if err != nil {
		t.Fatalf("CompileDir returned error for missing dir: %v", err)
	}
	if m.Match("etc/passwd", false) {
		t.Fatal("empty matcher should exclude nothing")
	}
}

func TestMatchDirectoryOnlyPattern(t *testing.T) {
	t.Parallel()

	m := CompileLines("cache/")

	if !m.Match("etc/cache", true) {
		t.Fatal("directory query should match a directory-only pattern")
	}
	if m.Match("etc/cache", false) {
		t.Fatal("file query should not match a directory-only pattern")
	}
}

func TestMatchNegationLastMatchWins(t *testing.T) {
	t.Parallel()

	m := CompileLines("*.log", "!keep.log")

	if !m.Match("var/run.log", false) {
		t.Fatal("expected *.log to exclude var/run.log")
	}
	if m.Match("keep.log", false) {
		t.Fatal("negated pattern should re-include keep.log")
	}
}

func TestMatchAnyParent(t *testing.T) {
	t.Parallel()

	m := CompileLines("etc/cache/")

	if !m.MatchAnyParent("etc/cache/sub/file.conf", false) {
		t.Fatal("expected ancestor directory exclusion to apply")
	}
	if m.MatchAnyParent("etc/other/file.conf", false) {
		t.Fatal("unrelated path should not match")
	}
}

func TestNilMatcherExcludesNothing(t *testing.T) {
	t.Parallel()

	var m *Matcher
	if m.Match("etc/passwd", false) || m.MatchAnyParent("etc/passwd", false) {
		t.Fatal("nil matcher should exclude nothing")
	}
}
