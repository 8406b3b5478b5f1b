package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Morganamilo/archdiff/cmd"
)

func main() {
	if err := cmd.Execute(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
