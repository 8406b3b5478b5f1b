package alpmdb

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const (
	sectionFiles  = "%FILES%"
	sectionBackup = "%BACKUP%"
)

// parseFiles reads one package's files list into m. The format is line
// oriented: %SECTION% headers followed by one record per line. %FILES%
// records are root-relative paths with directories carrying a trailing
// slash; %BACKUP% records are "path<TAB>md5". Unknown sections are skipped.
func parseFiles(r io.Reader, m *Manifest) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	section := ""
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "%") && strings.HasSuffix(line, "%") {
			section = line
			continue
		}

		switch section {
		case sectionFiles:
			// Directory records can never drift: the scans only yield files
			// and an existence check on a recorded directory always passes.
			if strings.HasSuffix(line, "/") {
				continue
			}
			m.Files[line] = struct{}{}
		case sectionBackup:
			path, hash, ok := strings.Cut(line, "\t")
			if !ok {
				return fmt.Errorf("malformed backup record %q", line)
			}
			m.Backups[path] = strings.TrimSpace(hash)
		}
	}

	return scanner.Err()
}
