// Package main provides the ftag CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/jacwah/ftag/internal/config"
	"github.com/jacwah/ftag/internal/store"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// Persistent flags shared by every command.
var (
	databaseFlag string
	dirFlag      string
	showHidden   bool
	jsonOutput   bool
	verbose      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Print the error since we have SilenceErrors: true
		// This ensures Cobra errors (like bad arguments) are visible
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ftag",
	Short: "Tag files and find them again",
	Long: `ftag tags files with free-form labels and finds them again by tag.

Associations live in a SQLite store file (.ftagdb by default) discovered by
walking up from the current directory, so one store covers a whole tree.
Tagging is idempotent, filters match any of the given tags, and dot-prefixed
files and tags stay out of results unless asked for.

Output is newline-separated and pipe-friendly; use --json for structured
output.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Load .env file if present (for FTAG_* overrides)
	_ = godotenv.Load()

	rootCmd.PersistentFlags().StringVarP(&databaseFlag, "database", "d", "", "Store filename (default: .ftagdb)")
	rootCmd.PersistentFlags().StringVar(&dirFlag, "dir", "", "Store directory, skipping the upward search")
	rootCmd.PersistentFlags().BoolVarP(&showHidden, "hidden", "H", false, "Include dot-prefixed files and tags")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Use JSON output instead of plain lines")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Report progress on stderr")
	rootCmd.Version = Version
}

// storeOptions assembles store options from flags, environment, and global
// config, in that order of precedence.
func storeOptions(cmd *cobra.Command) store.Options {
	opts := store.Options{
		Filename:   databaseFlag,
		Dir:        config.ExpandPath(dirFlag),
		ShowHidden: showHidden,
	}
	if opts.Filename == "" {
		opts.Filename = config.GetDatabase()
	}
	if opts.Dir == "" {
		opts.Dir = config.GetStoreDir()
	}
	if !cmd.Flags().Changed("hidden") {
		opts.ShowHidden = config.GetShowHidden()
	}
	return opts
}

// mustOpenStore opens the tag store, exits on error.
// The caller is responsible for calling Close() on the returned store.
func mustOpenStore(cmd *cobra.Command) *store.Store {
	s, err := store.Open(storeOptions(cmd))
	if err != nil {
		exitWithError(errorExitCode(err), "opening store: %v", err)
	}
	verbosef("using store %s", s.Path())
	return s
}

// verbosef reports progress on stderr when --verbose is set.
func verbosef(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}
