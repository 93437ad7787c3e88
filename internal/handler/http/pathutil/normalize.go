// Package pathutil normalizes request paths for use as metric labels.
package pathutil

import (
	"strings"
)

// knownPaths is the set of routes the service exposes. Paths outside this
// set share a single label so scanners and typo'd URLs cannot inflate
// metric cardinality.
var knownPaths = map[string]struct{}{
	"/text-summary":   {},
	"/summary":        {},
	"/text-sentiment": {},
	"/sentiment":      {},
	"/text-entities":  {},
	"/entities":       {},
	"/feed-summary":   {},
	"/nlp-readme":     {},
	"/health":         {},
	"/ready":          {},
	"/live":           {},
	"/metrics":        {},
}

// NormalizePath maps a request path to a bounded metric label.
// Known routes pass through unchanged; the swagger UI collapses to
// "/swagger" and anything else becomes "/other".
//
// Examples:
//
//	NormalizePath("/summary?url=https://x")  // "/summary"
//	NormalizePath("/text-summary/")          // "/text-summary"
//	NormalizePath("/swagger/index.html")     // "/swagger"
//	NormalizePath("/wp-admin/login.php")     // "/other"
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}

	if _, ok := knownPaths[path]; ok {
		return path
	}
	if strings.HasPrefix(path, "/swagger") {
		return "/swagger"
	}
	return "/other"
}
