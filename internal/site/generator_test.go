package site

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/ziadkadry99/folio/internal/content"
	"github.com/ziadkadry99/folio/internal/progress"
)

func TestGenerator_Generate(t *testing.T) {
	lib := newTestLibrary(t, imageFS(3, "profile.png"))
	out := t.TempDir()

	g := NewGenerator(newTestRenderer(t, content.Default()), lib, out, progress.Discard{}, zaptest.NewLogger(t))
	n, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if n != 4 {
		t.Errorf("copied %d images, want 4", n)
	}

	for _, name := range []string{"index.html", "style.css", "script.js", "assets/images/img1.jpg", "assets/images/profile.png"} {
		if _, err := os.Stat(filepath.Join(out, filepath.FromSlash(name))); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}

	data, err := os.ReadFile(filepath.Join(out, "assets", "images", "profile.png"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "profile.png" {
		t.Errorf("copied content = %q", data)
	}

	page, err := os.ReadFile(filepath.Join(out, "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(page), `data-live="false"`) {
		t.Error("exported page must use the local scroll fallback")
	}
	if !strings.Contains(string(page), "Alex Morgan") {
		t.Error("exported page missing content")
	}
}

func TestGenerator_NoImages(t *testing.T) {
	lib := newTestLibrary(t, imageFS(0))
	out := t.TempDir()

	g := NewGenerator(newTestRenderer(t, content.Default()), lib, out, nil, nil)
	n, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if n != 0 {
		t.Errorf("copied %d images, want 0", n)
	}
	if _, err := os.Stat(filepath.Join(out, "index.html")); err != nil {
		t.Errorf("index.html not written: %v", err)
	}
}
