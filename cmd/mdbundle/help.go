package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdbundle <command> [flags] [dir]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  assemble   Assemble chapters into one consolidated document (default)")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'mdbundle help <command>' for details on a specific command.")
}

// printAssembleUsage prints usage for the assemble command.
func printAssembleUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdbundle assemble [dir] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Assemble ordered markdown chapters into one consolidated document")
	fmt.Fprintln(w, "with a generated header and table of contents.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  dir    Chapter directory (optional if config has chapters.dir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file path")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "      --doc-title <s>       Document title for the header block")
	fmt.Fprintln(w, "      --doc-version <s>     Version label for the header block")
	fmt.Fprintln(w, "      --date <s>            Timestamp: \"auto\", \"auto:FORMAT\", or literal")
	fmt.Fprintln(w, "                            Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D, HH, hh, mm, ss")
	fmt.Fprintln(w, "                            Presets (case-insensitive): japanese, iso, date")
	fmt.Fprintln(w, "                            Use [text] to escape literals: [Generated] YYYY")
	fmt.Fprintln(w, "      --toc-title <s>       Table of contents heading")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show warnings and errors")
	fmt.Fprintln(w, "  -v, --verbose             Show chapter titles while assembling")
}

// runHelp prints help for a specific command.
func runHelp(args []string, deps *Dependencies) {
	if len(args) == 0 {
		printUsage(deps.Stdout)
		return
	}

	switch args[0] {
	case "assemble":
		printAssembleUsage(deps.Stdout)
	case "version":
		fmt.Fprintln(deps.Stdout, "Usage: mdbundle version")
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(deps.Stdout, "Usage: mdbundle help [command]")
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(deps.Stderr, "Unknown command: %s\n", args[0])
		printUsage(deps.Stderr)
	}
}
