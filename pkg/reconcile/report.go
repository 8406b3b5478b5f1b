package reconcile

import (
	"bufio"
	"io"
	"sort"
)

// Report writes one line per entry to w in the form "<marker> <root><path>",
// sorted ascending by relative path. No header, no trailing summary, no
// deduplication: at most one classification per path is a structural property
// of the phase order.
func Report(w io.Writer, root string, entries []Entry) error {
	sorted := append([]Entry(nil), entries...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Path < sorted[j].Path
	})

	out := bufio.NewWriter(w)
	for _, entry := range sorted {
		out.WriteByte(entry.Kind.Marker())
		out.WriteByte(' ')
		out.WriteString(root)
		out.WriteString(entry.Path)
		out.WriteByte('\n')
	}

	return out.Flush()
}
