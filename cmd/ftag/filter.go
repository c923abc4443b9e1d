package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(filterCmd)
}

var filterCmd = &cobra.Command{
	Use:   "filter [tag]...",
	Short: "List files matching any of the tags",
	Long: `List files carrying at least one of the given tags, one per line in
path order. With no tags, every file in the store is listed.

Unknown tags match nothing. Dot-prefixed files are suppressed unless
--hidden is set.

Example:
  ftag filter work urgent`,
	RunE: runFilter,
}

func runFilter(cmd *cobra.Command, args []string) error {
	s := mustOpenStore(cmd)
	defer s.Close()

	stream, err := s.Filter(args)
	if err != nil {
		exitWithError(errorExitCode(err), "filtering files: %v", err)
	}

	if jsonOutput {
		outputJSON(FilesResult{Files: collectAll(stream)})
	} else {
		printLines(stream)
	}
	return nil
}
