package alpmdb

import (
	"fmt"
	"os"
	"path/filepath"
)

// Manifest aggregates the file records of every installed package.
type Manifest struct {
	Files   map[string]struct{} // root-relative paths owned by packages
	Backups map[string]string   // root-relative path -> recorded md5 fingerprint
}

// DB reads package file manifests from a pacman local database directory.
type DB struct {
	local string
}

// Open verifies dbpath holds a local package database and returns a reader
// for it.
func Open(dbpath string) (*DB, error) {
	local := filepath.Join(dbpath, "local")

	info, err := os.Stat(local)
	if err != nil {
		return nil, fmt.Errorf("open package database %s: %w", dbpath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("open package database %s: local is not a directory", dbpath)
	}

	return &DB{local: local}, nil
}

// Manifest reads the file and backup records of every installed package into
// one aggregate. It is queried once, in full, before reconciliation starts.
func (db *DB) Manifest() (Manifest, error) {
	entries, err := os.ReadDir(db.local)
	if err != nil {
		return Manifest{}, fmt.Errorf("read package database %s: %w", db.local, err)
	}

	m := Manifest{
		Files:   make(map[string]struct{}, 1024),
		Backups: make(map[string]string, 64),
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue // ALPM_DB_VERSION and friends
		}

		name := filepath.Join(db.local, entry.Name(), "files")
		f, err := os.Open(name)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return Manifest{}, fmt.Errorf("read package entry %s: %w", name, err)
		}

		err = parseFiles(f, &m)
		f.Close()
		if err != nil {
			return Manifest{}, fmt.Errorf("parse package entry %s: %w", name, err)
		}
	}

	return m, nil
}
