package main

import (
	"github.com/spf13/cobra"
)

// UntagResult is the response for the untag command.
type UntagResult struct {
	Path    string   `json:"path"`
	Removed []string `json:"removed"`
}

func init() {
	rootCmd.AddCommand(untagCmd)
}

var untagCmd = &cobra.Command{
	Use:   "untag <path> <tag>...",
	Short: "Remove tags from a file",
	Long: `Remove one or more tags from a file.

Only the associations go away; the file and tag records stay behind until
'ftag prune'. Tags the file doesn't carry are ignored.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runUntag,
}

func runUntag(cmd *cobra.Command, args []string) error {
	path := args[0]

	s := mustOpenStore(cmd)
	defer s.Close()

	removed := []string{}
	for _, tag := range args[1:] {
		ok, err := s.Untag(path, tag)
		if err != nil {
			exitWithError(errorExitCode(err), "untagging %s: %v", path, err)
		}
		if ok {
			removed = append(removed, tag)
		}
	}
	verbosef("removed %d association(s) from %s", len(removed), path)

	if jsonOutput {
		outputJSON(UntagResult{Path: path, Removed: removed})
	}
	return nil
}
