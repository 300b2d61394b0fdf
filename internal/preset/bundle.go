package preset

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"

	"golang.org/x/sync/singleflight"

	"github.com/MauritiusChief/toki-ante/internal/domain"
)

// BaseFile is the file name of the base dictionary.
const BaseFile = "dictionary.csv"

//go:embed data/dictionary.csv
var baseCSV string

// BaseCSV returns the embedded base dictionary text.
func BaseCSV() string { return baseCSV }

// Fetcher retrieves dictionary text by file name from a remote location.
type Fetcher interface {
	FetchText(ctx context.Context, file string) (string, error)
}

// Bundle serves preset dictionary text, either from a remote location or
// from the embedded base and its derived variants.
type Bundle struct {
	files   map[string]string
	fetcher Fetcher
	group   singleflight.Group
	log     *slog.Logger
}

// NewBundle builds the embedded files. When fetcher is non-nil, presets
// are fetched through it and the embedded files only back File.
func NewBundle(logger *slog.Logger, fetcher Fetcher) (*Bundle, error) {
	files, err := BuildFiles(baseCSV)
	if err != nil {
		return nil, err
	}
	return &Bundle{
		files:   files,
		fetcher: fetcher,
		log:     logger.With("service", "preset"),
	}, nil
}

// BuildFiles returns the base text and every derived variant keyed by file
// name.
func BuildFiles(base string) (map[string]string, error) {
	files := map[string]string{BaseFile: base}
	for _, v := range Variants {
		text, err := DeriveCSV(base, v)
		if err != nil {
			return nil, err
		}
		files[v.File] = text
	}
	return files, nil
}

// Text returns the CSV text of the preset with id. Concurrent requests for
// the same preset share one fetch. The shared fetch outlives a cancelled
// caller and is bounded by the fetcher's own timeout; each caller stops
// waiting when its ctx is done.
func (b *Bundle) Text(ctx context.Context, id string) (string, error) {
	p, ok := Lookup(id)
	if !ok {
		return "", fmt.Errorf("preset %q: %w", id, domain.ErrNotFound)
	}

	if b.fetcher == nil {
		return b.files[p.File], nil
	}

	fetchCtx := context.WithoutCancel(ctx)
	ch := b.group.DoChan(p.File, func() (any, error) {
		return b.fetcher.FetchText(fetchCtx, p.File)
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			b.log.WarnContext(ctx, "preset fetch failed", slog.String("file", p.File), slog.String("error", res.Err.Error()))
			return "", res.Err
		}
		if res.Shared {
			b.log.DebugContext(ctx, "preset fetch shared", slog.String("file", p.File))
		}
		return res.Val.(string), nil
	}
}

// File returns the embedded text served under name.
func (b *Bundle) File(name string) (string, bool) {
	text, ok := b.files[name]
	return text, ok
}
