package rest

import (
	"net/http"

	"github.com/MauritiusChief/toki-ante/internal/transport/middleware"
)

// Handlers groups every endpoint served by the router.
type Handlers struct {
	Health     *HealthHandler
	Dictionary *DictionaryHandler
	Convert    *ConvertHandler
	Presets    *PresetFilesHandler
}

// NewRouter registers all routes. public wraps probes and static preset
// files; client wraps everything that acts on a client's dictionary.
func NewRouter(h Handlers, public, client middleware.Middleware) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("GET /live", public(http.HandlerFunc(h.Health.Live)))
	mux.Handle("GET /ready", public(http.HandlerFunc(h.Health.Ready)))
	mux.Handle("GET /health", public(http.HandlerFunc(h.Health.Health)))
	mux.Handle("GET /presets/{file}", public(http.HandlerFunc(h.Presets.File)))

	mux.Handle("GET /api/presets", client(http.HandlerFunc(h.Dictionary.Presets)))
	mux.Handle("GET /api/dictionary", client(http.HandlerFunc(h.Dictionary.Status)))
	mux.Handle("POST /api/dictionary/preset/{id}", client(http.HandlerFunc(h.Dictionary.LoadPreset)))
	mux.Handle("POST /api/dictionary/saved", client(http.HandlerFunc(h.Dictionary.LoadSaved)))
	mux.Handle("POST /api/dictionary/upload", client(http.HandlerFunc(h.Dictionary.Upload)))
	mux.Handle("GET /api/dictionary/export", client(http.HandlerFunc(h.Dictionary.Export)))
	mux.Handle("GET /api/dictionary/search", client(http.HandlerFunc(h.Dictionary.Search)))
	mux.Handle("POST /api/convert", client(http.HandlerFunc(h.Convert.Convert)))
	mux.Handle("GET /ws/convert", client(http.HandlerFunc(h.Convert.Stream)))

	// Preflight requests carry no credentials and must reach CORS only.
	mux.Handle("OPTIONS /", public(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})))

	return mux
}
