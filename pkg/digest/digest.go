package digest

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// File computes the content fingerprint of the file at path, returned as a
// lowercase hex string. The file is streamed so arbitrarily large files hash
// in constant memory.
//
// md5 matches the fingerprints the package database records for backup files;
// it is an integrity fingerprint, not a security primitive.
func File(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open file %s: %w", path, err)
	}
	defer f.Close()

	h := md5.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hash file %s: %w", path, err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
