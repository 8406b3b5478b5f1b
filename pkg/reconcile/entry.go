package reconcile

// Kind classifies one drift entry.
type Kind int

const (
	// Untracked marks a file present on disk that no package owns.
	Untracked Kind = iota
	// RepoChanged marks a mirrored file whose live content differs from the
	// mirror copy.
	RepoChanged
	// Deleted marks a package-owned file missing from disk.
	Deleted
	// BackupChanged marks a backup file whose live content differs from the
	// fingerprint the package recorded for it.
	BackupChanged
)

// Marker returns the single-character marker used in reports.
func (k Kind) Marker() byte {
	switch k {
	case Untracked:
		return '?'
	case RepoChanged:
		return 'R'
	case Deleted:
		return 'D'
	case BackupChanged:
		return 'B'
	}
	return ' '
}

// Entry is one classified discrepancy between recorded and actual filesystem
// state. Path is relative to the installation root.
type Entry struct {
	Kind Kind
	Path string
}
