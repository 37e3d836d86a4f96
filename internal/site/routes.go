package site

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ziadkadry99/folio/internal/assets"
)

// RegisterRoutes mounts the page, its static files, the images and the
// asset API on r. live tells the page to open a /live session.
func RegisterRoutes(r chi.Router, renderer *Renderer, lib *assets.Library, live bool, logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}

	r.Get("/", handlePage(renderer, lib, live, logger))
	r.Get("/style.css", handleStatic("text/css; charset=utf-8", cssContent))
	r.Get("/script.js", handleStatic("application/javascript; charset=utf-8", jsContent))
	r.Get("/api/assets", handleAssets(lib))

	prefix := "/" + strings.Trim(lib.Options().URLPrefix, "/")
	if prefix == "/" {
		prefix = ""
	}
	r.Get(prefix+"/{name}", handleImage(lib))
}

func handlePage(renderer *Renderer, lib *assets.Library, live bool, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := renderer.Page(lib.Current(), live)
		if err != nil {
			logger.Error("rendering page", zap.Error(err))
			http.Error(w, "failed to render page", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(page)
	}
}

func handleStatic(contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Write([]byte(body))
	}
}

// handleImage serves indexed images only; anything else under the prefix
// is a 404.
func handleImage(lib *assets.Library) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		if r.URL.RawPath != "" {
			if u, err := url.PathUnescape(name); err == nil {
				name = u
			}
		}
		if _, ok := lib.Current().Lookup(name); !ok {
			http.NotFound(w, r)
			return
		}
		http.ServeFileFS(w, r, lib.FS(), name)
	}
}

// assetsResponse is the /api/assets payload.
type assetsResponse struct {
	Generation uint64                    `json:"generation"`
	Sequence   assets.Sequence           `json:"sequence"`
	Subsets    map[string][]assets.Asset `json:"subsets"`
	Slots      map[string]assets.Asset   `json:"slots"`
}

func handleAssets(lib *assets.Library) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, newAssetsResponse(lib.Current()))
	}
}

func newAssetsResponse(ix *assets.Index) assetsResponse {
	resp := assetsResponse{
		Generation: ix.Generation,
		Sequence:   ix.Sequence,
		Subsets:    make(map[string][]assets.Asset, len(assets.SubsetNames)),
		Slots:      make(map[string]assets.Asset),
	}
	if resp.Sequence == nil {
		resp.Sequence = assets.Sequence{}
	}
	for _, name := range assets.SubsetNames {
		sub, _ := ix.Subsets.Get(name)
		resp.Subsets[name] = append([]assets.Asset{}, sub...)
	}
	for _, slot := range ix.SlotNames() {
		if a, ok := ix.Resolve(slot); ok {
			resp.Slots[slot] = a
		}
	}
	return resp
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
