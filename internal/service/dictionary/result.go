package dictionary

import (
	"time"

	"github.com/MauritiusChief/toki-ante/internal/domain"
	"github.com/MauritiusChief/toki-ante/internal/preset"
	"github.com/MauritiusChief/toki-ante/internal/session"
)

// PresetList is the set of presets offered for one mode.
type PresetList struct {
	Mode    domain.Mode
	Default string
	Presets []preset.Preset
}

// Status describes the active dictionary of a client.
type Status struct {
	Name     string
	PresetID string
	Source   session.Source
	Entries  int
	Digest   string
	Message  string
	LoadedAt time.Time
	HasSaved bool
}

// Result is one conversion.
type Result struct {
	Mode       domain.Mode
	HTML       string
	Plain      string
	Spans      []domain.Span
	Dictionary string
}

// Row is one dictionary entry matched by a search. The HTML fields are
// escaped with query hits wrapped in <b>.
type Row struct {
	Key         string
	Display     string
	Gloss       string
	KeyHTML     string
	DisplayHTML string
	GlossHTML   string
}

// Export is the active dictionary serialized as CSV.
type Export struct {
	Name   string
	Digest string
	CSV    []byte
}

// SweepResult reports what a sweep removed.
type SweepResult struct {
	Sessions  int
	Remaining int
	Prefs     int64
}
