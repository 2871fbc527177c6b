package cmd

import (
	"fmt"
	"os"
)

func Execute(args []string) {
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	switch args[0] {
	case "convert":
		runConvert(args[1:])
	case "check":
		runCheck(args[1:])
	case "-h", "--help", "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown subcommand: %s\n", args[0])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "GPKit - GenBank Peptide to FASTA tools")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  gpkit <command> [options]")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  convert    Convert a .gp file to FASTA with a custom header")
	fmt.Fprintln(os.Stderr, "  check      Report record and residue counts of a protein FASTA")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Without header options every record is named seq_<i>, i being the")
	fmt.Fprintln(os.Stderr, "0-based entry index.")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Run 'gpkit <command> -h' for command-specific options.")
}
