// Package catalog provides use cases for the combined source catalog:
// listing built-in plus custom sources, resolving ids, and managing the
// user-added custom sources.
package catalog

import "errors"

// Sentinel errors for catalog use case operations.
var (
	// ErrSourceNotFound indicates that no source with the requested id exists
	// in the combined catalog.
	ErrSourceNotFound = errors.New("source not found")

	// ErrDuplicateSource indicates that a source with the same id already
	// exists, either built-in or custom.
	ErrDuplicateSource = errors.New("source with this id already exists")
)
