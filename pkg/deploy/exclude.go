package deploy

import (
	"path"
	"strings"
)

// DefaultExcludes covers the usual local clutter that must never reach a
// web host.
var DefaultExcludes = []string{
	".git",
	".DS_Store",
	"node_modules",
	"__pycache__",
	"*.pyc",
	"*.tmp",
}

// Excluded reports whether a slash-separated relative path matches any of
// the patterns. Patterns containing a slash match against the whole
// relative path; patterns without one match against every path segment, so
// "node_modules" excludes the directory at any depth.
func Excluded(rel string, patterns []string) bool {
	rel = strings.Trim(rel, "/")
	if rel == "" {
		return false
	}

	segments := strings.Split(rel, "/")
	for _, pat := range patterns {
		if strings.Contains(pat, "/") {
			if ok, err := path.Match(pat, rel); err == nil && ok {
				return true
			}
			continue
		}
		for _, seg := range segments {
			if ok, err := path.Match(pat, seg); err == nil && ok {
				return true
			}
		}
	}
	return false
}
