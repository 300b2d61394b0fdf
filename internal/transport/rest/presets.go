package rest

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/MauritiusChief/toki-ante/internal/session"
)

type presetFiles interface {
	File(name string) (string, bool)
}

// PresetFilesHandler serves the bundled dictionary files so a remote
// preset base URL can point at another instance.
type PresetFilesHandler struct {
	files presetFiles
}

// NewPresetFilesHandler creates a PresetFilesHandler.
func NewPresetFilesHandler(files presetFiles) *PresetFilesHandler {
	return &PresetFilesHandler{files: files}
}

// File handles GET /presets/{file}.
func (h *PresetFilesHandler) File(w http.ResponseWriter, r *http.Request) {
	text, ok := h.files.File(r.PathValue("file"))
	if !ok {
		writeError(w, http.StatusNotFound, "preset file not found")
		return
	}

	etag := strconv.Quote(session.Digest(text))
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "no-cache")
	if etagMatches(r.Header.Get("If-None-Match"), etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(text)))
	w.WriteHeader(http.StatusOK)
	if r.Method != http.MethodHead {
		io.Copy(w, strings.NewReader(text)) //nolint:errcheck
	}
}
