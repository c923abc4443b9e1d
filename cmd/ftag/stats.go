package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// StatsResult is the response for the stats command.
type StatsResult struct {
	Path         string `json:"path"`
	Files        int    `json:"files"`
	Tags         int    `json:"tags"`
	Associations int    `json:"associations"`
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show store location and row counts",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	s := mustOpenStore(cmd)
	defer s.Close()

	stats, err := s.Stats()
	if err != nil {
		exitWithError(errorExitCode(err), "reading stats: %v", err)
	}

	if jsonOutput {
		outputJSON(StatsResult{
			Path:         stats.Path,
			Files:        stats.Files,
			Tags:         stats.Tags,
			Associations: stats.Associations,
		})
	} else {
		fmt.Printf("store: %s\n", stats.Path)
		fmt.Printf("files: %d\n", stats.Files)
		fmt.Printf("tags: %d\n", stats.Tags)
		fmt.Printf("associations: %d\n", stats.Associations)
	}
	return nil
}
