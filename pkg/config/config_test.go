package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingDefaultFile(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "config.toml"), false)
	if err != nil {
		t.Fatalf("Load returned error for missing optional file: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("Load = %#v, want defaults", cfg)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	t.Parallel()

	if _, err := Load(filepath.Join(t.TempDir(), "config.toml"), true); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")
	content := `root = "/mnt/target"
repo = "/srv/archdiff"
jobs = 4
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path, true)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Root != "/mnt/target" || cfg.Repo != "/srv/archdiff" || cfg.Jobs != 4 {
		t.Fatalf("unexpected overlay result: %#v", cfg)
	}
	if cfg.DBPath != Default().DBPath {
		t.Fatalf("unset key should keep default, got %q", cfg.DBPath)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("root = [broken"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(path, false); err == nil {
		t.Fatal("expected error for malformed config file")
	}
}

func TestNormalizeAppendsSeparators(t *testing.T) {
	t.Parallel()

	cfg := Config{
		Root:      "/mnt/target",
		Repo:      "/srv/archdiff//",
		DBPath:    "/var/lib/pacman/",
		IgnoreDir: "/etc/archdiff/ignore",
	}
	cfg.Normalize()

	if cfg.Root != "/mnt/target/" {
		t.Fatalf("Root = %q, want trailing separator", cfg.Root)
	}
	if cfg.Repo != "/srv/archdiff/" {
		t.Fatalf("Repo = %q, want trailing separator", cfg.Repo)
	}
	if cfg.DBPath != "/var/lib/pacman" {
		t.Fatalf("DBPath = %q, want cleaned", cfg.DBPath)
	}
}
