package cmd

import (
	"context"
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/urfave/cli/v3"

	"github.com/Morganamilo/archdiff/pkg/alpmdb"
	"github.com/Morganamilo/archdiff/pkg/reconcile"
	"github.com/Morganamilo/archdiff/pkg/scan"
)

var (
	lsHeaderStyle = lipgloss.NewStyle().Bold(true)
	lsCountStyle  = lipgloss.NewStyle().Faint(true)
)

func lsCommand() *cli.Command {
	return &cli.Command{
		Name:      "ls",
		Usage:     "list named file sets",
		ArgsUsage: "set...",
		Description: "Raw sets: all, package, package-backups, repo.\n" +
			"Sets derived from one audit: unpackaged, deleted, different-in-repo, modified-backups.",
		Action: lsAction,
	}
}

func lsAction(_ context.Context, cmd *cli.Command) error {
	names := cmd.Args().Slice()
	if len(names) == 0 {
		return fmt.Errorf("ls requires at least one set name")
	}

	deps, err := setup(cmd)
	if err != nil {
		return err
	}
	defer flushLogger(deps.log)

	m, err := deps.db.Manifest()
	if err != nil {
		return err
	}

	var entries []reconcile.Entry
	if anyDerived(names) {
		entries = deps.engine().Run(m)
	}

	for _, name := range names {
		paths, err := listNamed(deps, m, entries, name)
		if err != nil {
			return err
		}
		sort.Strings(paths)

		fmt.Printf("%s %s\n",
			lsHeaderStyle.Render(name),
			lsCountStyle.Render(fmt.Sprintf("(%d)", len(paths))))
		for _, path := range paths {
			fmt.Printf("  %s\n", path)
		}
	}

	return nil
}

func anyDerived(names []string) bool {
	for _, name := range names {
		switch name {
		case "unpackaged", "deleted", "different-in-repo", "modified-backups":
			return true
		}
	}
	return false
}

func listNamed(deps runtimeDeps, m alpmdb.Manifest, entries []reconcile.Entry, name string) ([]string, error) {
	switch name {
	case "package":
		paths := make([]string, 0, len(m.Files))
		for path := range m.Files {
			paths = append(paths, path)
		}
		return paths, nil
	case "package-backups":
		paths := make([]string, 0, len(m.Backups))
		for path := range m.Backups {
			paths = append(paths, path)
		}
		return paths, nil
	case "all":
		var paths []string
		for path := range scan.Files(deps.cfg.Root, scan.Options{Ignore: deps.matcher, Log: deps.log}) {
			paths = append(paths, path)
		}
		return paths, nil
	case "repo":
		var paths []string
		for path := range scan.Files(deps.cfg.Repo, scan.Options{Log: deps.log}) {
			paths = append(paths, path)
		}
		return paths, nil
	case "unpackaged":
		return entryPaths(entries, reconcile.Untracked), nil
	case "deleted":
		return entryPaths(entries, reconcile.Deleted), nil
	case "different-in-repo":
		return entryPaths(entries, reconcile.RepoChanged), nil
	case "modified-backups":
		return entryPaths(entries, reconcile.BackupChanged), nil
	}
	return nil, fmt.Errorf("unknown set name: %s", name)
}

func entryPaths(entries []reconcile.Entry, kind reconcile.Kind) []string {
	var paths []string
	for _, entry := range entries {
		if entry.Kind == kind {
			paths = append(paths, entry.Path)
		}
	}
	return paths
}
