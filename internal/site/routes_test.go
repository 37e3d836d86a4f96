package site

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/folio/internal/content"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	r := chi.NewRouter()
	lib := newTestLibrary(t, imageFS(9, "profile.jpg"))
	RegisterRoutes(r, newTestRenderer(t, content.Default()), lib, true, nil)
	return r
}

func TestRoutes(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		path        string
		wantStatus  int
		wantType    string
		wantContain string
	}{
		{"/", http.StatusOK, "text/html", `data-live="true"`},
		{"/style.css", http.StatusOK, "text/css", ".progress-bar"},
		{"/script.js", http.StatusOK, "application/javascript", "/live"},
		{"/assets/images/img1.jpg", http.StatusOK, "image/jpeg", ""},
		{"/assets/images/unknown.jpg", http.StatusNotFound, "", ""},
		{"/assets/images/notes.txt", http.StatusNotFound, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantType != "" && !strings.HasPrefix(rec.Header().Get("Content-Type"), tt.wantType) {
				t.Errorf("Content-Type = %q, want %q", rec.Header().Get("Content-Type"), tt.wantType)
			}
			if tt.wantContain != "" && !strings.Contains(rec.Body.String(), tt.wantContain) {
				t.Errorf("body missing %q", tt.wantContain)
			}
		})
	}
}

func TestRoutes_AssetsAPI(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/assets", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp assetsResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if resp.Generation != 1 {
		t.Errorf("generation = %d, want 1", resp.Generation)
	}
	if len(resp.Sequence) != 10 {
		t.Errorf("sequence length = %d, want 10", len(resp.Sequence))
	}
	if len(resp.Subsets["hero"]) != 1 || len(resp.Subsets["about"]) != 3 ||
		len(resp.Subsets["projects"]) != 4 || len(resp.Subsets["gallery"]) != 2 {
		t.Errorf("subsets = %v", resp.Subsets)
	}
	if a, ok := resp.Slots["heroportrait"]; !ok || a.Name != "profile.jpg" {
		t.Errorf("heroportrait slot = %+v, %v", a, ok)
	}
}
