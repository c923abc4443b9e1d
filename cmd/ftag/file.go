package main

import (
	"github.com/spf13/cobra"
)

// FileResult is the response for the file command.
type FileResult struct {
	Path string   `json:"path"`
	Tags []string `json:"tags"`
}

func init() {
	rootCmd.AddCommand(fileCmd)
}

var fileCmd = &cobra.Command{
	Use:     "file <path> <tag>...",
	Aliases: []string{"tag"},
	Short:   "Apply tags to a file",
	Long: `Apply one or more tags to a file.

Files and tags are created on first use. Tagging a file with a tag it
already carries is a no-op, so the command is safe to repeat.

Example:
  ftag file report.pdf work urgent`,
	Args: cobra.MinimumNArgs(2),
	RunE: runFile,
}

func runFile(cmd *cobra.Command, args []string) error {
	path := args[0]
	tags := args[1:]

	s := mustOpenStore(cmd)
	defer s.Close()

	for _, tag := range tags {
		if err := s.Tag(path, tag); err != nil {
			exitWithError(errorExitCode(err), "tagging %s: %v", path, err)
		}
	}
	verbosef("tagged %s with %d tag(s)", path, len(tags))

	if jsonOutput {
		outputJSON(FileResult{Path: path, Tags: tags})
	}
	return nil
}
