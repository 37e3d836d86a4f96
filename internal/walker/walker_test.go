package walker

import (
	"sort"
	"testing"
	"testing/fstest"
)

func sampleFS() fstest.MapFS {
	return fstest.MapFS{
		"images/img1.jpg":          {Data: []byte("a")},
		"images/img10.PNG":         {Data: []byte("bb")},
		"images/img2.webp":         {Data: []byte("ccc")},
		"images/notes.txt":         {Data: []byte("not an image")},
		"images/.DS_Store":         {Data: []byte("x")},
		"images/thumbs/small.jpg":  {Data: []byte("t")},
		"images/.git/config":       {Data: []byte("[core]")},
		"other/outside.jpg":        {Data: []byte("o")},
	}
}

func relPaths(files []FileInfo) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.RelPath
	}
	sort.Strings(out)
	return out
}

func TestWalk_TopLevelOnly(t *testing.T) {
	files, err := Walk(WalkerConfig{FS: sampleFS(), Root: "images"})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}

	got := relPaths(files)
	want := []string{"img1.jpg", "img10.PNG", "img2.webp", "notes.txt"}
	if len(got) != len(want) {
		t.Fatalf("Walk() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("file[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestWalk_Recursive(t *testing.T) {
	files, err := Walk(WalkerConfig{FS: sampleFS(), Root: "images", Recursive: true})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}

	found := false
	for _, f := range files {
		if f.RelPath == "thumbs/small.jpg" {
			found = true
		}
		if f.RelPath == ".git/config" {
			t.Error(".git should be skipped")
		}
	}
	if !found {
		t.Error("expected nested file thumbs/small.jpg in recursive walk")
	}
}

func TestWalk_FileInfoFields(t *testing.T) {
	files, err := Walk(WalkerConfig{FS: sampleFS(), Root: "images", Include: []string{"img2.webp"}})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("expected 1 file, got %d", len(files))
	}
	f := files[0]
	if f.Path != "images/img2.webp" {
		t.Errorf("Path = %q", f.Path)
	}
	if f.Name != "img2.webp" {
		t.Errorf("Name = %q", f.Name)
	}
	if f.Size != 3 {
		t.Errorf("Size = %d, want 3", f.Size)
	}
}

func TestWalk_IncludeIsCaseInsensitive(t *testing.T) {
	files, err := Walk(WalkerConfig{
		FS:      sampleFS(),
		Root:    "images",
		Include: []string{ExtensionPattern([]string{".jpg", ".jpeg", ".png", ".webp"})},
	})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}

	got := relPaths(files)
	want := []string{"img1.jpg", "img10.PNG", "img2.webp"}
	if len(got) != len(want) {
		t.Fatalf("Walk() = %v, want %v", got, want)
	}
}

func TestWalk_ExcludeFilter(t *testing.T) {
	files, err := Walk(WalkerConfig{
		FS:      sampleFS(),
		Root:    "images",
		Exclude: []string{"*.txt"},
	})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}
	for _, f := range files {
		if f.RelPath == "notes.txt" {
			t.Error("exclude filter *.txt did not exclude notes.txt")
		}
	}
}

func TestWalk_SkipsLargeFiles(t *testing.T) {
	files, err := Walk(WalkerConfig{FS: sampleFS(), Root: "images", MaxFileSize: 2})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}
	for _, f := range files {
		if f.Size > 2 {
			t.Errorf("file %s of size %d should have been skipped", f.RelPath, f.Size)
		}
	}
}

func TestWalk_MissingRoot(t *testing.T) {
	files, err := Walk(WalkerConfig{FS: sampleFS(), Root: "nope"})
	if err != nil {
		t.Fatalf("Walk() on missing root should not fail: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("expected no files, got %d", len(files))
	}
}

func TestExtensionPattern(t *testing.T) {
	tests := []struct {
		exts []string
		want string
	}{
		{[]string{".jpg"}, "*.jpg"},
		{[]string{".jpg", "png", " .webp "}, "*.{jpg,png,webp}"},
	}
	for _, tt := range tests {
		if got := ExtensionPattern(tt.exts); got != tt.want {
			t.Errorf("ExtensionPattern(%v) = %q, want %q", tt.exts, got, tt.want)
		}
	}
}
