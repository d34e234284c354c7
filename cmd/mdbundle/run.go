package main

import (
	"context"
	"fmt"
)

// run dispatches to a subcommand. Anything that is not a known command is
// treated as arguments to assemble, so `mdbundle docs` and
// `mdbundle assemble docs` are equivalent.
func run(ctx context.Context, args []string, deps *Dependencies) error {
	cmd := ""
	if len(args) > 0 {
		cmd = args[0]
	}

	switch cmd {
	case "assemble":
		return runAssemble(ctx, args[1:], deps)
	case "version":
		fmt.Fprintf(deps.Stdout, "mdbundle %s\n", Version)
		return nil
	case "help":
		runHelp(args[1:], deps)
		return nil
	default:
		return runAssemble(ctx, args, deps)
	}
}
