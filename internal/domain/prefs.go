package domain

import (
	"time"

	"github.com/google/uuid"
)

// Prefs is the persisted dictionary choice of one client: the last preset
// or custom selection, a cached custom dictionary, and the name shown for
// the active dictionary.
type Prefs struct {
	ClientID     uuid.UUID
	PresetID     string
	CustomCSV    string
	CustomDigest string
	LastName     string
	UpdatedAt    time.Time
}

// HasCustom reports whether a custom dictionary is cached.
func (p *Prefs) HasCustom() bool {
	return p != nil && p.CustomCSV != ""
}

// SelectPreset records a preset load. A preset load drops the cached custom
// dictionary.
func (p *Prefs) SelectPreset(presetID, name string) {
	p.PresetID = presetID
	p.LastName = name
	p.CustomCSV = ""
	p.CustomDigest = ""
}

// StoreCustom caches an uploaded dictionary and selects it under
// customPresetID.
func (p *Prefs) StoreCustom(customPresetID, csv, digest, name string) {
	p.PresetID = customPresetID
	p.CustomCSV = csv
	p.CustomDigest = digest
	p.LastName = name
}

// Rename records the selection and display name, keeping any cached custom
// dictionary.
func (p *Prefs) Rename(presetID, name string) {
	p.PresetID = presetID
	p.LastName = name
}
