package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/Morganamilo/archdiff/pkg/utils/fileutils"
)

// DefaultPath is consulted when no --config flag is given.
const DefaultPath = "/etc/archdiff/config.toml"

// Config holds the paths one audit run operates on.
type Config struct {
	Root      string `toml:"root"`   // installation root to audit
	DBPath    string `toml:"dbpath"` // package database location
	Repo      string `toml:"repo"`   // repository mirror directory
	IgnoreDir string `toml:"ignore"` // directory of gitignore-syntax pattern files
	Jobs      int    `toml:"jobs"`   // parallel workers for per-path checks; 0 means one per CPU
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Root:      "/",
		DBPath:    "/var/lib/pacman",
		Repo:      "/usr/share/archdiff",
		IgnoreDir: "/etc/archdiff/ignore",
	}
}

// Load overlays the TOML file at path onto the defaults. When explicit is
// false the file is optional and a missing one yields the defaults; an
// explicitly named file must exist.
func Load(path string, explicit bool) (Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("decode config %s: %w", path, err)
	}

	return cfg, nil
}

// Normalize cleans the configured paths. Root and Repo always end with the
// path separator afterwards, so root-relative paths can be appended directly.
func (c *Config) Normalize() {
	c.Root = fileutils.EnsureTrailingSep(fileutils.ExpandHome(c.Root))
	c.Repo = fileutils.EnsureTrailingSep(fileutils.ExpandHome(c.Repo))
	c.DBPath = filepath.Clean(fileutils.ExpandHome(c.DBPath))
	c.IgnoreDir = filepath.Clean(fileutils.ExpandHome(c.IgnoreDir))
}
