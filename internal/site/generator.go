package site

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/ziadkadry99/folio/internal/assets"
	"github.com/ziadkadry99/folio/internal/progress"
)

// Generator exports the portfolio as a static site: index.html, style.css,
// script.js and a copy of every indexed image under the asset URL prefix.
type Generator struct {
	Renderer  *Renderer
	Library   *assets.Library
	OutputDir string
	Reporter  progress.Reporter
	Logger    *zap.Logger
}

// NewGenerator creates a Generator writing to outputDir.
func NewGenerator(r *Renderer, lib *assets.Library, outputDir string, reporter progress.Reporter, logger *zap.Logger) *Generator {
	if reporter == nil {
		reporter = progress.Discard{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{
		Renderer:  r,
		Library:   lib,
		OutputDir: outputDir,
		Reporter:  reporter,
		Logger:    logger,
	}
}

// Generate reindexes the asset directory and writes the site. It returns
// the number of images copied.
func (g *Generator) Generate() (int, error) {
	ix, err := g.Library.Reload()
	if err != nil {
		return 0, fmt.Errorf("indexing assets: %w", err)
	}

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return 0, err
	}

	// The exported page has no server behind it, so it never goes live.
	var page bytes.Buffer
	if err := g.Renderer.Render(&page, ix, false); err != nil {
		return 0, err
	}

	files := map[string][]byte{
		"index.html": page.Bytes(),
		"style.css":  []byte(cssContent),
		"script.js":  []byte(jsContent),
	}
	for name, data := range files {
		if err := os.WriteFile(filepath.Join(g.OutputDir, name), data, 0o644); err != nil {
			return 0, fmt.Errorf("writing %s: %w", name, err)
		}
	}

	imgDir := filepath.Join(g.OutputDir, filepath.FromSlash(strings.Trim(g.Library.Options().URLPrefix, "/")))
	if err := os.MkdirAll(imgDir, 0o755); err != nil {
		return 0, err
	}

	g.Reporter.Start(ix.Len())
	defer g.Reporter.Finish()

	for i, a := range ix.Sequence {
		dst := filepath.Join(imgDir, filepath.FromSlash(a.Name))
		if err := copyFile(g.Library.FS(), a.Name, dst); err != nil {
			return i, fmt.Errorf("copying %s: %w", a.Name, err)
		}
		g.Reporter.Update(i+1, a.Name)
	}

	g.Logger.Info("site exported",
		zap.String("dir", g.OutputDir),
		zap.Int("images", ix.Len()))
	return ix.Len(), nil
}

// copyFile copies name out of fsys to dst.
func copyFile(fsys fs.FS, name, dst string) error {
	in, err := fsys.Open(name)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
