package cmd

import (
	"context"

	"github.com/Morganamilo/archdiff/pkg/version"
	"github.com/urfave/cli/v3"
)

// Commands:
// status
//   audits the filesystem against the package database and the repo mirror
//   and prints one line per drifted path
//
// ls [set...]
//   lists named file sets (raw provider sets and sets derived from one audit)
//
// version
//   prints the version

func Execute(ctx context.Context, args []string) error {
	app := &cli.Command{
		Name:    "archdiff",
		Usage:   "audit a filesystem against the package database and a config repo",
		Version: version.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "root",
				Usage: "set an alternate installation root",
			},
			&cli.StringFlag{
				Name:    "dbpath",
				Aliases: []string{"b"},
				Usage:   "set an alternate database location",
			},
			&cli.StringFlag{
				Name:  "repo",
				Usage: "set the repository mirror directory",
			},
			&cli.StringFlag{
				Name:  "ignore",
				Usage: "set the ignore-rules directory",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "set an alternate config file",
			},
			&cli.IntFlag{
				Name:    "jobs",
				Aliases: []string{"j"},
				Usage:   "parallel workers for per-path checks",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log skipped paths and per-file errors in detail",
			},
		},
		Commands: []*cli.Command{
			statusCommand(),
			lsCommand(),
			versionCommand(),
		},
		// Bare "archdiff" behaves like "archdiff status".
		Action: statusAction,
	}

	return app.Run(ctx, args)
}
