package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// PruneResult is the response for the prune command.
type PruneResult struct {
	PrunedFiles int `json:"pruned_files"`
	PrunedTags  int `json:"pruned_tags"`
}

func init() {
	rootCmd.AddCommand(pruneCmd)
}

var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Remove files and tags with no associations",
	Long: `Garbage-collect file and tag records that no longer have any
associations. Untagging leaves such records behind; pruning is the only
operation that removes them.`,
	Args: cobra.NoArgs,
	RunE: runPrune,
}

func runPrune(cmd *cobra.Command, args []string) error {
	s := mustOpenStore(cmd)
	defer s.Close()

	result, err := s.Prune()
	if err != nil {
		exitWithError(errorExitCode(err), "pruning store: %v", err)
	}

	if jsonOutput {
		outputJSON(PruneResult{PrunedFiles: result.Files, PrunedTags: result.Tags})
	} else {
		fmt.Printf("pruned %d file(s), %d tag(s)\n", result.Files, result.Tags)
	}
	return nil
}
