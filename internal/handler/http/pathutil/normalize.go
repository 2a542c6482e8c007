package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern represents a regex pattern and its corresponding normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

// pathPatterns defines the list of patterns for dynamic routes, evaluated in
// order. IDs are opaque slugs or UUIDs, so anything between the slashes counts.
// Pre-compiled at initialization.
var pathPatterns = []*PathPattern{
	{Pattern: regexp.MustCompile(`^/entries/[^/]+$`), Template: "/entries/:id"},
	{Pattern: regexp.MustCompile(`^/sources/[^/]+$`), Template: "/sources/:id"},
}

// NormalizePath normalizes dynamic URL paths to prevent metrics label cardinality explosion.
// It converts paths with IDs (e.g., /entries/0f2c…) to template format (e.g., /entries/:id).
// Static paths remain unchanged.
//
// Examples:
//
//	NormalizePath("/entries/0f2c1d9e")  // "/entries/:id"
//	NormalizePath("/sources/hard-fork") // "/sources/:id"
//	NormalizePath("/recommendations")   // "/recommendations" (unchanged)
//	NormalizePath("/entries/abc?x=1")   // "/entries/:id"
func NormalizePath(path string) string {
	// Strip query parameters if present
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	// Strip trailing slash if present (except for root path)
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}

	// Static paths like /healthz and /metrics pass through unchanged.
	return path
}
