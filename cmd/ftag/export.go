package main

import (
	"os"

	"github.com/spf13/cobra"
)

var exportOutput string

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to file instead of stdout")
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Dump the store as JSON lines",
	Long: `Write every file and its tags as one JSON object per line, ordered by
path. Hidden entries are included; the dump is a complete copy of the
store's associations and can be replayed with 'ftag import'.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	s := mustOpenStore(cmd)
	defer s.Close()

	out := os.Stdout
	if exportOutput != "" {
		f, err := os.Create(exportOutput)
		if err != nil {
			exitWithError(ExitError, "creating %s: %v", exportOutput, err)
		}
		defer f.Close()
		out = f
	}

	count, err := s.ExportJSONL(out)
	if err != nil {
		exitWithError(errorExitCode(err), "exporting store: %v", err)
	}
	verbosef("exported %d file(s)", count)
	return nil
}
