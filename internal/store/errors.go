package store

import (
	"errors"
	"fmt"
)

// NoEntryError indicates that an operation's target entry is absent.
//
// Only returned by operations that semantically require the entry to exist:
// Get, Toggle, and Set with changeOnly. Existence checks, deletes, listing
// and drop never return it.
//
// This condition is recoverable by the caller (check with Exists first, or
// fall back); it is deliberately distinct from storage failures, which are
// wrapped sqlite errors and treated as fatal for the invocation.
type NoEntryError struct {
	// Name is the entry name that was looked up.
	Name string
}

// Error implements the error interface.
func (e *NoEntryError) Error() string {
	return fmt.Sprintf("no entry named %q", e.Name)
}

// IsNoEntry returns true if the error is a missing-entry error.
// Uses errors.As to handle wrapped errors.
func IsNoEntry(err error) bool {
	var ne *NoEntryError
	return errors.As(err, &ne)
}
