package cli

import (
	"errors"
	"fmt"

	"github.com/roach88/config-store/internal/store"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Semantic failure (missing entry)
	ExitCommandError = 2 // Command error (bad config, database not openable, etc.)
)

// ExitError represents an error with a specific exit code.
// Use this to return errors with meaningful exit codes from CLI commands.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message (optional when wrapping)
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Message == "" && e.Err != nil {
		return e.Err.Error()
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// wrapStoreError maps a store error to an ExitError.
//
// Missing entries are a recoverable business condition and exit with 1,
// rendered as the store's own "no entry named X" message; anything else is
// a storage failure and exits with 2, carrying the sqlite diagnostic.
// Termination itself is decided only in main.
func wrapStoreError(message string, err error) error {
	if store.IsNoEntry(err) {
		return &ExitError{Code: ExitFailure, Err: err}
	}
	return WrapExitError(ExitCommandError, message, err)
}
