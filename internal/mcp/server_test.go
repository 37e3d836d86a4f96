package mcp

import (
	"context"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/folio/internal/assets"
	"github.com/ziadkadry99/folio/internal/content"
)

func newTestServer(t *testing.T, files ...string) *Server {
	t.Helper()
	fsys := fstest.MapFS{}
	for _, f := range files {
		fsys[f] = &fstest.MapFile{Data: []byte(f)}
	}
	lib := assets.NewLibraryFS(fsys, assets.Options{URLPrefix: "assets/images"}, nil)
	if _, err := lib.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	return NewServer(lib, content.Default())
}

func call(t *testing.T, handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]any) (string, bool) {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	result, err := handler(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var sb strings.Builder
	for _, c := range result.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			sb.WriteString(tc.Text)
		}
	}
	return sb.String(), result.IsError
}

func TestToolDefinitions(t *testing.T) {
	tests := []struct {
		name     string
		tool     mcp.Tool
		wantName string
	}{
		{"list_images", listImagesTool, "list_images"},
		{"get_subset", getSubsetTool, "get_subset"},
		{"resolve_slot", resolveSlotTool, "resolve_slot"},
		{"get_section", getSectionTool, "get_section"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.tool.Name != tt.wantName {
				t.Errorf("tool name = %q, want %q", tt.tool.Name, tt.wantName)
			}
			if tt.tool.Description == "" {
				t.Error("tool description should not be empty")
			}
		})
	}
}

func TestNewServer(t *testing.T) {
	srv := newTestServer(t)
	if srv.mcp == nil {
		t.Fatal("MCP server not initialized")
	}
	if srv.content == nil || srv.library == nil {
		t.Error("dependencies not set")
	}
}

func TestHandleListImages(t *testing.T) {
	srv := newTestServer(t, "img10.jpg", "img2.jpg", "img1.jpg")
	text, isErr := call(t, srv.handleListImages, nil)
	if isErr {
		t.Fatalf("unexpected tool error: %s", text)
	}
	i1 := strings.Index(text, "img1.jpg")
	i2 := strings.Index(text, "img2.jpg")
	i10 := strings.Index(text, "img10.jpg")
	if i1 < 0 || i2 < 0 || i10 < 0 || !(i1 < i2 && i2 < i10) {
		t.Errorf("images not in numeric order:\n%s", text)
	}

	empty := newTestServer(t)
	text, isErr = call(t, empty.handleListImages, nil)
	if isErr || !strings.Contains(text, "No images found") {
		t.Errorf("empty library: %q (error=%v)", text, isErr)
	}
}

func TestHandleGetSubset(t *testing.T) {
	srv := newTestServer(t, "img1.jpg", "img2.jpg", "img3.jpg")

	t.Run("about", func(t *testing.T) {
		text, isErr := call(t, srv.handleGetSubset, map[string]any{"name": "about"})
		if isErr {
			t.Fatalf("unexpected tool error: %s", text)
		}
		if !strings.Contains(text, "img2.jpg") || !strings.Contains(text, "img3.jpg") || strings.Contains(text, "img1.jpg") {
			t.Errorf("about subset = %q", text)
		}
	})

	t.Run("empty gallery", func(t *testing.T) {
		text, isErr := call(t, srv.handleGetSubset, map[string]any{"name": "gallery"})
		if isErr || !strings.Contains(text, "empty") {
			t.Errorf("gallery = %q (error=%v)", text, isErr)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		if _, isErr := call(t, srv.handleGetSubset, map[string]any{"name": "footer"}); !isErr {
			t.Error("expected error for unknown subset")
		}
	})

	t.Run("missing name", func(t *testing.T) {
		if _, isErr := call(t, srv.handleGetSubset, map[string]any{}); !isErr {
			t.Error("expected error for missing name")
		}
	})
}

func TestHandleResolveSlot(t *testing.T) {
	srv := newTestServer(t, "img1.jpg", "02-Profile.png")

	text, isErr := call(t, srv.handleResolveSlot, map[string]any{"slot": "heroPortrait"})
	if isErr || !strings.Contains(text, "02-Profile.png") {
		t.Errorf("heroPortrait = %q (error=%v)", text, isErr)
	}

	text, isErr = call(t, srv.handleResolveSlot, map[string]any{"slot": "img1"})
	if isErr || !strings.Contains(text, "img1.jpg") {
		t.Errorf("key lookup = %q (error=%v)", text, isErr)
	}

	text, isErr = call(t, srv.handleResolveSlot, map[string]any{"slot": "banner"})
	if isErr || !strings.Contains(text, "does not resolve") {
		t.Errorf("unresolved slot = %q (error=%v)", text, isErr)
	}
}

func TestHandleGetSection(t *testing.T) {
	srv := newTestServer(t)

	text, isErr := call(t, srv.handleGetSection, map[string]any{"section": "contact"})
	if isErr || !strings.Contains(text, "Email: alex.morgan@example.com") {
		t.Errorf("contact = %q (error=%v)", text, isErr)
	}

	text, isErr = call(t, srv.handleGetSection, map[string]any{"section": "home"})
	if isErr || !strings.Contains(text, "Alex Morgan") {
		t.Errorf("home = %q (error=%v)", text, isErr)
	}

	if _, isErr := call(t, srv.handleGetSection, map[string]any{"section": "footer"}); !isErr {
		t.Error("expected error for unknown section")
	}
}
