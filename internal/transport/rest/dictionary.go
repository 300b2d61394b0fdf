package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/MauritiusChief/toki-ante/internal/adapter/provider/source"
	"github.com/MauritiusChief/toki-ante/internal/domain"
	"github.com/MauritiusChief/toki-ante/internal/service/dictionary"
)

// multipartOverhead is the room left for multipart headers and boundaries
// on top of the upload limit.
const multipartOverhead = 64 << 10

// dictionaryService defines the operations DictionaryHandler needs.
type dictionaryService interface {
	ListPresets(mode domain.Mode) dictionary.PresetList
	LoadPreset(ctx context.Context, id string) (*dictionary.Status, error)
	LoadSaved(ctx context.Context) (*dictionary.Status, error)
	Upload(ctx context.Context, input dictionary.UploadInput) (*dictionary.Status, error)
	Active(ctx context.Context) (*dictionary.Status, error)
	Export(ctx context.Context) (*dictionary.Export, error)
	Search(ctx context.Context, query string) ([]dictionary.Row, error)
}

// DictionaryHandler serves dictionary selection, inspection and export.
type DictionaryHandler struct {
	svc            dictionaryService
	maxUploadBytes int64
	log            *slog.Logger
}

// NewDictionaryHandler creates a DictionaryHandler.
func NewDictionaryHandler(svc dictionaryService, maxUploadBytes int64, logger *slog.Logger) *DictionaryHandler {
	return &DictionaryHandler{
		svc:            svc,
		maxUploadBytes: maxUploadBytes,
		log:            logger.With("handler", "dictionary"),
	}
}

type presetResponse struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	File  string `json:"file"`
}

type presetListResponse struct {
	Mode    string           `json:"mode"`
	Default string           `json:"default"`
	Presets []presetResponse `json:"presets"`
}

type statusResponse struct {
	Name     string    `json:"name"`
	PresetID string    `json:"presetId,omitempty"`
	Source   string    `json:"source"`
	Entries  int       `json:"entries"`
	Digest   string    `json:"digest"`
	Message  string    `json:"message"`
	LoadedAt time.Time `json:"loadedAt"`
	HasSaved bool      `json:"hasSaved"`
}

type rowResponse struct {
	Key         string `json:"key"`
	Display     string `json:"display"`
	Gloss       string `json:"gloss"`
	KeyHTML     string `json:"keyHtml"`
	DisplayHTML string `json:"displayHtml"`
	GlossHTML   string `json:"glossHtml"`
}

type searchResponse struct {
	Query string        `json:"query"`
	Rows  []rowResponse `json:"rows"`
}

// Presets handles GET /api/presets?mode=.
func (h *DictionaryHandler) Presets(w http.ResponseWriter, r *http.Request) {
	mode, err := domain.ParseMode(r.URL.Query().Get("mode"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	list := h.svc.ListPresets(mode)
	resp := presetListResponse{
		Mode:    string(list.Mode),
		Default: list.Default,
		Presets: make([]presetResponse, 0, len(list.Presets)),
	}
	for _, p := range list.Presets {
		resp.Presets = append(resp.Presets, presetResponse{ID: p.ID, Label: p.Label, File: p.File})
	}

	writeJSON(w, http.StatusOK, resp)
}

// LoadPreset handles POST /api/dictionary/preset/{id}.
func (h *DictionaryHandler) LoadPreset(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.LoadPreset(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toStatusResponse(st))
}

// LoadSaved handles POST /api/dictionary/saved.
func (h *DictionaryHandler) LoadSaved(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.LoadSaved(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toStatusResponse(st))
}

// Upload handles POST /api/dictionary/upload with a multipart "file" field.
func (h *DictionaryHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes+multipartOverhead)

	file, header, err := r.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			handleError(w, r, h.log, domain.NewValidationError("file", "too large (max "+strconv.FormatInt(h.maxUploadBytes, 10)+" bytes)"))
			return
		}
		handleError(w, r, h.log, domain.NewValidationError("file", "required"))
		return
	}
	defer file.Close()

	data, err := source.ReadLimited(file, h.maxUploadBytes)
	if err != nil {
		if errors.Is(err, source.ErrTooLarge) {
			handleError(w, r, h.log, domain.NewValidationError("file", "too large (max "+strconv.FormatInt(h.maxUploadBytes, 10)+" bytes)"))
			return
		}
		handleError(w, r, h.log, domain.NewResourceError(header.Filename, err))
		return
	}
	text, err := source.DecodeText(data)
	if err != nil {
		handleError(w, r, h.log, domain.NewResourceError(header.Filename, err))
		return
	}

	st, err := h.svc.Upload(r.Context(), dictionary.UploadInput{
		Filename: header.Filename,
		Text:     text,
		Size:     int64(len(data)),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toStatusResponse(st))
}

// Status handles GET /api/dictionary.
func (h *DictionaryHandler) Status(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.Active(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toStatusResponse(st))
}

// Export handles GET /api/dictionary/export. The ETag is the digest of the
// active dictionary text.
func (h *DictionaryHandler) Export(w http.ResponseWriter, r *http.Request) {
	exp, err := h.svc.Export(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	etag := strconv.Quote(exp.Digest)
	w.Header().Set("ETag", etag)
	if match := r.Header.Get("If-None-Match"); match != "" && etagMatches(match, etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="dictionary.csv"`)
	w.WriteHeader(http.StatusOK)
	w.Write(exp.CSV) //nolint:errcheck
}

// Search handles GET /api/dictionary/search?q=.
func (h *DictionaryHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")

	rows, err := h.svc.Search(r.Context(), q)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := searchResponse{Query: strings.TrimSpace(q), Rows: make([]rowResponse, 0, len(rows))}
	for _, row := range rows {
		resp.Rows = append(resp.Rows, rowResponse(row))
	}
	writeJSON(w, http.StatusOK, resp)
}

func toStatusResponse(st *dictionary.Status) statusResponse {
	return statusResponse{
		Name:     st.Name,
		PresetID: st.PresetID,
		Source:   string(st.Source),
		Entries:  st.Entries,
		Digest:   st.Digest,
		Message:  st.Message,
		LoadedAt: st.LoadedAt,
		HasSaved: st.HasSaved,
	}
}

func etagMatches(header, etag string) bool {
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == etag {
			return true
		}
	}
	return false
}
