package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/Morganamilo/archdiff/pkg/reconcile"
)

func statusCommand() *cli.Command {
	return &cli.Command{
		Name:   "status",
		Usage:  "report drifted paths, one line each",
		Action: statusAction,
	}
}

func statusAction(_ context.Context, cmd *cli.Command) error {
	args := cmd.Args().Slice()
	if len(args) > 0 {
		return fmt.Errorf("status does not accept arguments")
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

	entries := deps.engine().Run(m)
	return reconcile.Report(os.Stdout, deps.cfg.Root, entries)
}
