package pathutil

import (
	"errors"
	"strings"
)

// ErrInvalidID is returned when the ID in the URL path is invalid.
var ErrInvalidID = errors.New("invalid id")

const maxIDLength = 128

// ExtractID extracts a string ID from a URL path by stripping the given
// prefix. IDs here are opaque slugs or UUIDs, so the only validation is
// that something non-empty and path-safe remains.
//
//	id, err := ExtractID("/entries/0f2c…", "/entries/")
func ExtractID(path, prefix string) (string, error) {
	id := strings.TrimPrefix(path, prefix)
	if id == "" || len(id) > maxIDLength {
		return "", ErrInvalidID
	}
	if strings.ContainsAny(id, "/?#") {
		return "", ErrInvalidID
	}
	return id, nil
}
