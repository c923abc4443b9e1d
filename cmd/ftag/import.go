package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// ImportResult is the response for the import command.
type ImportResult struct {
	Imported int `json:"imported"`
}

func init() {
	rootCmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Replay a JSONL dump into the store",
	Long: `Read JSON lines produced by 'ftag export' from a file or stdin, tagging
each file with each listed tag. Importing merges: associations already in
the store are kept.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	in := os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			exitWithError(ExitError, "opening %s: %v", args[0], err)
		}
		defer f.Close()
		in = f
	}

	s := mustOpenStore(cmd)
	defer s.Close()

	count, err := s.ImportJSONL(in)
	if err != nil {
		exitWithError(errorExitCode(err), "importing: %v", err)
	}

	if jsonOutput {
		outputJSON(ImportResult{Imported: count})
	} else {
		fmt.Printf("imported %d file(s)\n", count)
	}
	return nil
}
