package main

import (
	"github.com/jacwah/ftag/internal/store"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list [path]",
	Short: "List tags of a file, or every tag",
	Long: `List the tags attached to a file, one per line in name order. With no
path, every tag in the store is listed.

Example:
  ftag list report.pdf`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	s := mustOpenStore(cmd)
	defer s.Close()

	var stream *store.Stream
	var err error
	if len(args) == 0 {
		stream, err = s.AllTags()
	} else {
		stream, err = s.TagsOf(args[0])
	}
	if err != nil {
		exitWithError(errorExitCode(err), "listing tags: %v", err)
	}

	if jsonOutput {
		outputJSON(TagsResult{Tags: collectAll(stream)})
	} else {
		printLines(stream)
	}
	return nil
}
