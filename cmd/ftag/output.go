package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jacwah/ftag/internal/store"
)

// ErrorResponse is the JSON error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}

// FilesResult is the JSON payload for commands that list file paths.
type FilesResult struct {
	Files []string `json:"files"`
}

// TagsResult is the JSON payload for commands that list tag names.
type TagsResult struct {
	Tags []string `json:"tags"`
}

// outputJSON writes a value as indented JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// exitWithError reports an error in the selected output format and exits.
func exitWithError(code int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if jsonOutput {
		outputJSON(ErrorResponse{Error: msg})
	} else {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	}
	os.Exit(code)
}

// printLines streams values to stdout one per line, exiting on a stream
// error. Results already printed stay printed; the error goes to stderr.
func printLines(stream *store.Stream) {
	defer stream.Close()
	for {
		value, ok := stream.Next()
		if !ok {
			break
		}
		fmt.Println(value)
	}
	if err := stream.Err(); err != nil {
		exitWithError(ExitError, "reading results: %v", err)
	}
}

// collectAll drains a stream into a non-nil slice for JSON output.
func collectAll(stream *store.Stream) []string {
	values, err := stream.Collect()
	if err != nil {
		exitWithError(ExitError, "reading results: %v", err)
	}
	if values == nil {
		values = []string{}
	}
	return values
}
