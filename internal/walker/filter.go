package walker

import (
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultExcludes are directory/file names skipped by default.
var DefaultExcludes = []string{
	".git",
	".DS_Store",
	"Thumbs.db",
	"desktop.ini",
	"__MACOSX",
	".thumbnails",
}

// shouldExcludeDir checks whether a directory name matches any default
// exclusion pattern. This is used during traversal to skip entire subtrees.
func shouldExcludeDir(name string) bool {
	for _, excl := range DefaultExcludes {
		if strings.EqualFold(name, excl) {
			return true
		}
	}
	return false
}

// shouldExcludeFile skips OS metadata files and hidden dotfiles.
func shouldExcludeFile(name string) bool {
	if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "._") {
		return true
	}
	return shouldExcludeDir(name)
}

// MatchesInclude returns true if the given relative path matches any of the
// include patterns. If patterns is empty, everything is included.
func MatchesInclude(relPath string, patterns []string) bool {
	if len(patterns) == 0 {
		return true
	}
	return matchesAny(relPath, patterns)
}

// MatchesExclude returns true if the given relative path matches any of the
// exclude patterns. If patterns is empty, nothing is excluded.
func MatchesExclude(relPath string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}
	return matchesAny(relPath, patterns)
}

// ExtensionPattern builds a single brace glob ("*.{jpg,png}") from a list
// of extensions with or without the leading dot.
func ExtensionPattern(exts []string) string {
	trimmed := make([]string, 0, len(exts))
	for _, e := range exts {
		e = strings.TrimPrefix(strings.TrimSpace(e), ".")
		if e != "" {
			trimmed = append(trimmed, e)
		}
	}
	if len(trimmed) == 1 {
		return "*." + trimmed[0]
	}
	return "*.{" + strings.Join(trimmed, ",") + "}"
}

// matchesAny checks if relPath matches any of the given glob patterns.
// Matching is case-insensitive; "IMG_01.JPG" matches "*.jpg".
func matchesAny(relPath string, patterns []string) bool {
	normalized := strings.ToLower(relPath)
	base := path.Base(normalized)

	for _, pattern := range patterns {
		pattern = strings.ToLower(pattern)

		// Try doublestar matching (supports **).
		if matched, err := doublestar.Match(pattern, normalized); err == nil && matched {
			return true
		}

		// Also try matching against just the filename.
		if matched, err := doublestar.Match(pattern, base); err == nil && matched {
			return true
		}
	}
	return false
}
