// Package assets discovers the portfolio's image files, orders them
// deterministically, and slices the ordered sequence into named subsets.
package assets

import (
	"path"
	"strings"
	"unicode"
)

// DefaultExtensions is the fixed set of image extensions that are indexed.
var DefaultExtensions = []string{".jpg", ".jpeg", ".png", ".webp"}

// Asset is an opaque reference to one discovered image file.
type Asset struct {
	URL  string `json:"url"`
	Name string `json:"name"`
	Key  string `json:"key"`
}

// IsZero reports whether a is the "missing" asset.
func (a Asset) IsZero() bool { return a.URL == "" }

func (a Asset) String() string { return a.URL }

// KeyOf derives the stable content key of a file name: the name without its
// extension, lowercased, with a leading numeric ordering prefix removed.
// "01-Profile.jpg" and "profile.png" both yield "profile".
func KeyOf(name string) string {
	stem := strings.ToLower(strings.TrimSuffix(name, path.Ext(name)))

	rest := strings.TrimLeftFunc(stem, unicode.IsDigit)
	if rest == stem || rest == "" {
		return stem
	}
	switch rest[0] {
	case '-', '_', ' ', '.':
		if trimmed := strings.TrimLeft(rest, "-_ ."); trimmed != "" {
			return trimmed
		}
	}
	return stem
}

// hasExtension reports whether name carries one of exts, case-insensitively.
func hasExtension(name string, exts []string) bool {
	ext := strings.ToLower(path.Ext(name))
	for _, e := range exts {
		e = strings.ToLower(e)
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		if ext == e {
			return true
		}
	}
	return false
}
