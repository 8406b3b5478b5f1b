package fileutils

import (
	"os"
	"path/filepath"
	"strings"
)

func ExpandHome(path string) string {
	if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			return home
		}
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[2:])
		}
	}

	return path
}

// EnsureTrailingSep cleans path and appends the path separator, so
// root-relative paths can be joined by plain concatenation.
func EnsureTrailingSep(path string) string {
	sep := string(filepath.Separator)
	cleaned := filepath.Clean(path)
	if cleaned == sep {
		return sep
	}
	return cleaned + sep
}
