package dictionary

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/MauritiusChief/toki-ante/internal/convert"
	"github.com/MauritiusChief/toki-ante/internal/csvdict"
	"github.com/MauritiusChief/toki-ante/internal/domain"
)

// ---------------------------------------------------------------------------
// Convert
// ---------------------------------------------------------------------------

// Convert renders text with the caller's active dictionary.
func (s *Service) Convert(ctx context.Context, input ConvertInput) (*Result, error) {
	if err := input.Validate(s.cfg.MaxTextBytes); err != nil {
		return nil, err
	}

	_, st, err := s.active(ctx)
	if err != nil {
		return nil, err
	}

	spans := convert.NewConverter(input.Mode).Convert(input.Text, st.Dictionary)
	return &Result{
		Mode:       input.Mode,
		HTML:       convert.RenderHTML(spans),
		Plain:      convert.RenderPlain(spans),
		Spans:      spans,
		Dictionary: st.Name,
	}, nil
}

// ---------------------------------------------------------------------------
// Search
// ---------------------------------------------------------------------------

// Search filters the active dictionary. An entry matches when its key,
// display form or gloss contains the trimmed query (case-sensitive). Hits
// are highlighted case-insensitively. An empty query returns every entry.
func (s *Service) Search(ctx context.Context, query string) ([]Row, error) {
	_, st, err := s.active(ctx)
	if err != nil {
		return nil, err
	}
	return SearchDictionary(st.Dictionary, query), nil
}

// SearchDictionary is the table search over d, in insertion order.
func SearchDictionary(d *domain.Dictionary, query string) []Row {
	q := strings.TrimSpace(query)

	var hit *regexp.Regexp
	if q != "" {
		hit = regexp.MustCompile("(?i)" + regexp.QuoteMeta(q))
	}

	rows := []Row{}
	d.Each(func(e domain.Entry) bool {
		if q != "" && !strings.Contains(e.Word, q) && !strings.Contains(e.Display, q) && !strings.Contains(e.Gloss, q) {
			return true
		}
		rows = append(rows, Row{
			Key:         e.Word,
			Display:     e.Display,
			Gloss:       e.Gloss,
			KeyHTML:     highlight(e.Word, hit),
			DisplayHTML: highlight(e.Display, hit),
			GlossHTML:   highlight(e.Gloss, hit),
		})
		return true
	})
	return rows
}

// highlight escapes text and wraps every hit in <b>. Matching runs over the
// escaped text.
func highlight(text string, hit *regexp.Regexp) string {
	escaped := convert.EscapeHTML(text)
	if hit == nil {
		return escaped
	}
	return hit.ReplaceAllStringFunc(escaped, func(m string) string {
		return "<b>" + m + "</b>"
	})
}

// ---------------------------------------------------------------------------
// Export
// ---------------------------------------------------------------------------

// Export serializes the caller's active dictionary as CSV.
func (s *Service) Export(ctx context.Context) (*Export, error) {
	_, st, err := s.active(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := csvdict.Write(&buf, st.Dictionary); err != nil {
		return nil, fmt.Errorf("write csv: %w", err)
	}

	return &Export{Name: st.Name, Digest: st.Digest, CSV: buf.Bytes()}, nil
}

// ---------------------------------------------------------------------------
// SweepIdle
// ---------------------------------------------------------------------------

// SweepIdle drops in-memory sessions idle longer than the session TTL and
// stored preferences untouched for longer than the retention period.
func (s *Service) SweepIdle(ctx context.Context) (*SweepResult, error) {
	now := s.now()

	res := &SweepResult{
		Sessions: s.sessions.removeIdle(now.Add(-s.cfg.SessionIdleTTL)),
	}
	res.Remaining = s.sessions.len()

	n, err := s.prefs.DeleteIdle(ctx, now.Add(-s.cfg.PrefsRetention))
	if err != nil {
		return res, fmt.Errorf("delete idle prefs: %w", err)
	}
	res.Prefs = n

	if res.Sessions > 0 || res.Prefs > 0 {
		s.log.InfoContext(ctx, "idle sweep",
			slog.Int("sessions", res.Sessions),
			slog.Int("remaining", res.Remaining),
			slog.Int64("prefs", res.Prefs),
		)
	}
	return res, nil
}
