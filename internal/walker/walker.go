package walker

import (
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// DefaultMaxFileSize is the maximum file size to index (32 MB).
const DefaultMaxFileSize int64 = 32 << 20

// FileInfo holds metadata about a single file discovered during traversal.
type FileInfo struct {
	Path    string // Path inside the walked filesystem, slash separated.
	RelPath string // Path relative to the walk root.
	Name    string // Base name.
	Size    int64  // File size in bytes.
}

// WalkerConfig controls the behaviour of the Walk function.
type WalkerConfig struct {
	FS          fs.FS    // Filesystem to walk.
	Root        string   // Root directory inside FS ("." for the top).
	Include     []string // Glob patterns; only matching files are included.
	Exclude     []string // Glob patterns; matching files are excluded.
	Recursive   bool     // Descend into subdirectories.
	MaxFileSize int64    // Files larger than this are skipped (0 = use default).
}

// Walk traverses config.Root inside config.FS and returns metadata for every
// regular file that passes filtering. Unreadable entries are skipped.
// A missing root yields no files and no error.
func Walk(config WalkerConfig) ([]FileInfo, error) {
	if config.FS == nil {
		return nil, fmt.Errorf("walker: nil filesystem")
	}
	root := config.Root
	if root == "" {
		root = "."
	}
	root = path.Clean(root)

	maxSize := config.MaxFileSize
	if maxSize <= 0 {
		maxSize = DefaultMaxFileSize
	}

	var files []FileInfo

	err := fs.WalkDir(config.FS, root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			// Skip entries we cannot read instead of aborting.
			return nil
		}

		name := d.Name()

		if d.IsDir() {
			if p == root {
				return nil
			}
			if !config.Recursive || shouldExcludeDir(name) {
				return fs.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() || shouldExcludeFile(name) {
			return nil
		}

		relPath := strings.TrimPrefix(p, root+"/")
		if root == "." {
			relPath = p
		}

		if !MatchesInclude(relPath, config.Include) {
			return nil
		}
		if MatchesExclude(relPath, config.Exclude) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}
		if info.Size() > maxSize {
			return nil
		}

		files = append(files, FileInfo{
			Path:    p,
			RelPath: relPath,
			Name:    name,
			Size:    info.Size(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walker: traversal: %w", err)
	}

	return files, nil
}
