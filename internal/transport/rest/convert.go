package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/MauritiusChief/toki-ante/internal/domain"
	"github.com/MauritiusChief/toki-ante/internal/service/dictionary"
)

const (
	wsWriteWait  = 10 * time.Second
	wsPongWait   = 60 * time.Second
	wsPingPeriod = (wsPongWait * 9) / 10
)

type converterService interface {
	Convert(ctx context.Context, input dictionary.ConvertInput) (*dictionary.Result, error)
}

// ConvertHandler serves one-shot and streaming conversion.
type ConvertHandler struct {
	svc          converterService
	maxTextBytes int64
	upgrader     websocket.Upgrader
	log          *slog.Logger
}

// NewConvertHandler creates a ConvertHandler. allowedOrigins is the
// comma-separated CORS origin list; "*" accepts any origin on the socket.
func NewConvertHandler(svc converterService, maxTextBytes int64, allowedOrigins string, logger *slog.Logger) *ConvertHandler {
	return &ConvertHandler{
		svc:          svc,
		maxTextBytes: maxTextBytes,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     checkOrigin(allowedOrigins),
		},
		log: logger.With("handler", "convert"),
	}
}

type convertRequest struct {
	Mode string `json:"mode"`
	Text string `json:"text"`
}

type convertResponse struct {
	Mode       string `json:"mode"`
	HTML       string `json:"html"`
	Plain      string `json:"plain"`
	Dictionary string `json:"dictionary"`
}

type frameResponse struct {
	HTML  string `json:"html"`
	Plain string `json:"plain"`
	Error string `json:"error,omitempty"`
}

// Convert handles POST /api/convert.
func (h *ConvertHandler) Convert(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxTextBytes+multipartOverhead)

	var req convertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.svc.Convert(r.Context(), dictionary.ConvertInput{
		Mode: domain.Mode(strings.ToLower(strings.TrimSpace(req.Mode))),
		Text: req.Text,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, convertResponse{
		Mode:       string(res.Mode),
		HTML:       res.HTML,
		Plain:      res.Plain,
		Dictionary: res.Dictionary,
	})
}

// Stream handles GET /ws/convert?mode=. Every text frame received is
// converted with the client's active dictionary and answered with one JSON
// frame.
func (h *ConvertHandler) Stream(w http.ResponseWriter, r *http.Request) {
	mode, err := domain.ParseMode(r.URL.Query().Get("mode"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the error response.
		h.log.DebugContext(r.Context(), "websocket upgrade failed", slog.String("error", err.Error()))
		return
	}
	defer conn.Close()

	// The request context is not cancelled when a hijacked connection
	// closes, so the stream owns its own.
	ctx, cancel := context.WithCancel(context.WithoutCancel(r.Context()))
	defer cancel()

	conn.SetReadLimit(h.maxTextBytes + 1)
	conn.SetReadDeadline(time.Now().Add(wsPongWait)) //nolint:errcheck
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsPongWait))
	})

	done := make(chan struct{})
	defer close(done)
	go h.ping(conn, done)

	h.log.DebugContext(ctx, "websocket opened", slog.String("mode", string(mode)))

	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseNoStatusReceived) {
				h.log.WarnContext(ctx, "websocket closed unexpectedly", slog.String("error", err.Error()))
			}
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}

		frame := frameResponse{}
		res, err := h.svc.Convert(ctx, dictionary.ConvertInput{Mode: mode, Text: string(data)})
		switch {
		case err == nil:
			frame.HTML, frame.Plain = res.HTML, res.Plain
		case errors.Is(err, dictionary.ErrNoSaved), errors.Is(err, domain.ErrValidation),
			errors.Is(err, domain.ErrFormat), errors.Is(err, domain.ErrResource),
			errors.Is(err, domain.ErrConflict):
			frame.Error = err.Error()
		default:
			h.log.ErrorContext(ctx, "websocket convert failed", slog.String("error", err.Error()))
			frame.Error = "internal server error"
		}

		if err := h.write(conn, frame); err != nil {
			h.log.DebugContext(ctx, "websocket write failed", slog.String("error", err.Error()))
			return
		}
	}
}

func (h *ConvertHandler) write(conn *websocket.Conn, frame frameResponse) error {
	if err := conn.SetWriteDeadline(time.Now().Add(wsWriteWait)); err != nil {
		return err
	}
	return conn.WriteJSON(frame)
}

func (h *ConvertHandler) ping(conn *websocket.Conn, done <-chan struct{}) {
	ticker := time.NewTicker(wsPingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(wsWriteWait)); err != nil {
				return
			}
		}
	}
}

func checkOrigin(allowedOrigins string) func(r *http.Request) bool {
	allowed := make(map[string]struct{})
	wildcard := false
	for _, o := range strings.Split(allowedOrigins, ",") {
		o = strings.TrimSpace(o)
		if o == "*" {
			wildcard = true
		}
		if o != "" {
			allowed[o] = struct{}{}
		}
	}

	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" || wildcard {
			return true
		}
		_, ok := allowed[origin]
		return ok
	}
}
