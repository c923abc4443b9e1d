package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jacwah/ftag/internal/store"
	"github.com/spf13/cobra"
)

// InitResult is the response for the init command.
type InitResult struct {
	Path    string `json:"path"`
	Created bool   `json:"created"`
}

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a store in the current directory",
	Long: `Create a store file in the current directory without searching upward,
marking this directory as a tree root for later commands. Running init
where a store already exists is a no-op.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	opts := storeOptions(cmd)
	if opts.Dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			exitWithError(ExitError, "getting current directory: %v", err)
		}
		opts.Dir = cwd
	}

	_, statErr := os.Stat(filepath.Join(opts.Dir, opts.Filename))
	created := os.IsNotExist(statErr)

	s, err := store.Open(opts)
	if err != nil {
		exitWithError(errorExitCode(err), "initializing store: %v", err)
	}
	path := s.Path()
	if err := s.Close(); err != nil {
		exitWithError(ExitError, "closing store: %v", err)
	}

	if jsonOutput {
		outputJSON(InitResult{Path: path, Created: created})
	} else if created {
		fmt.Printf("created %s\n", path)
	} else {
		fmt.Printf("store already exists at %s\n", path)
	}
	return nil
}
