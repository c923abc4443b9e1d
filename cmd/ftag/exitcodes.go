package main

import (
	"errors"

	"github.com/jacwah/ftag/internal/store"
)

// Exit codes
const (
	ExitSuccess    = 0 // Success
	ExitError      = 1 // General error (write or query failure)
	ExitStoreError = 2 // Store unavailable or already open
	ExitUsageError = 3 // Invalid arguments (empty path or tag name)
)

// errorExitCode maps a store error to the exit code it should produce.
func errorExitCode(err error) int {
	switch {
	case errors.Is(err, store.ErrStoreUnavailable), errors.Is(err, store.ErrAlreadyOpen):
		return ExitStoreError
	case errors.Is(err, store.ErrEmptyPath), errors.Is(err, store.ErrEmptyTag), errors.Is(err, store.ErrEmptyFilename):
		return ExitUsageError
	default:
		return ExitError
	}
}
