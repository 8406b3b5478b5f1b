package cmd

import (
	"github.com/urfave/cli/v3"
)

func isVerbose(cmd *cli.Command) bool {
	if cmd == nil {
		return false
	}
	if cmd.Bool("verbose") {
		return true
	}
	root := cmd.Root()
	return root != nil && root.Bool("verbose")
}

// stringFlag reads a flag from the command or, for subcommands, from the
// root command where the global flags live.
func stringFlag(cmd *cli.Command, name string) string {
	if cmd == nil {
		return ""
	}
	if value := cmd.String(name); value != "" {
		return value
	}
	if root := cmd.Root(); root != nil && root != cmd {
		return root.String(name)
	}
	return ""
}

func intFlag(cmd *cli.Command, name string) int {
	if cmd == nil {
		return 0
	}
	if value := int(cmd.Int(name)); value != 0 {
		return value
	}
	if root := cmd.Root(); root != nil && root != cmd {
		return int(root.Int(name))
	}
	return 0
}
