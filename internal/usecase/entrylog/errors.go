// Package entrylog provides use cases for the consumption log: logging,
// editing, deleting, and listing entries. Entries carry a denormalized copy
// of their source so the log stays historically accurate even when sources
// are later deleted.
package entrylog

import "errors"

// Sentinel errors for entry log use case operations.
var (
	// ErrEntryNotFound indicates that the requested entry was not found.
	ErrEntryNotFound = errors.New("entry not found")
)
