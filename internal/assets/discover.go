package assets

import (
	"fmt"
	"io/fs"
	"net/url"
	"strings"

	"github.com/ziadkadry99/folio/internal/walker"
)

// Discover loads the top-level image files of dir inside fsys and returns
// the path → asset mapping that BuildSequence orders. Only files with one
// of exts (DefaultExtensions when empty) are kept. Each asset's URL is
// urlPrefix joined with the escaped file name.
func Discover(fsys fs.FS, dir string, exts []string, urlPrefix string) (map[string]Asset, error) {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}

	files, err := walker.Walk(walker.WalkerConfig{
		FS:      fsys,
		Root:    dir,
		Include: []string{walker.ExtensionPattern(exts)},
	})
	if err != nil {
		return nil, fmt.Errorf("discovering images in %s: %w", dir, err)
	}

	entries := make(map[string]Asset, len(files))
	for _, f := range files {
		if !hasExtension(f.Name, exts) {
			continue
		}
		entries[f.Path] = Asset{
			URL:  assetURL(urlPrefix, f.RelPath),
			Name: f.RelPath,
			Key:  KeyOf(f.Name),
		}
	}
	return entries, nil
}

func assetURL(prefix, name string) string {
	escaped := url.PathEscape(name)
	prefix = strings.TrimRight(prefix, "/")
	if prefix == "" {
		return escaped
	}
	return prefix + "/" + escaped
}
