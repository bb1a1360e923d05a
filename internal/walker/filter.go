package walker

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// HiddenPrefix marks entries that are never materialized.
const HiddenPrefix = "."

// Filter decides which directory entries survive a listing.
type Filter struct {
	Extension       string   // Only regular files ending in this extension are kept.
	ExcludeDirs     []string // Directory names skipped at any depth.
	ExcludePatterns []string // Doublestar globs matched against the slash path.
}

// IsHidden reports whether name starts with the hidden-entry marker.
func IsHidden(name string) bool {
	return strings.HasPrefix(name, HiddenPrefix)
}

// excludesDir reports whether a directory name is on the exclusion list.
func (f Filter) excludesDir(name string) bool {
	for _, excl := range f.ExcludeDirs {
		if name == excl {
			return true
		}
	}
	return false
}

// MatchesExtension reports whether a file name carries the configured extension.
func (f Filter) MatchesExtension(name string) bool {
	if f.Extension == "" {
		return true
	}
	return len(name) > len(f.Extension) && strings.HasSuffix(name, f.Extension)
}

// MatchesExclude returns true if the given relative path matches any of the
// exclude patterns. If patterns is empty, nothing is excluded.
func MatchesExclude(relPath string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}
	return matchesAny(relPath, patterns)
}

// matchesAny checks if relPath matches any of the given glob patterns.
// It uses doublestar for ** support and also tries the bare file name.
func matchesAny(relPath string, patterns []string) bool {
	normalized := filepath.ToSlash(relPath)
	base := filepath.Base(normalized)

	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)

		if matched, err := doublestar.Match(pattern, normalized); err == nil && matched {
			return true
		}
		if matched, err := doublestar.Match(pattern, base); err == nil && matched {
			return true
		}
	}
	return false
}
