// Package preset provides the bundled dictionaries: a catalog of presets,
// the base dictionary embedded in the binary, and the variants derived
// from it.
package preset

import (
	"github.com/MauritiusChief/toki-ante/internal/domain"
)

// CustomSavedID is the preset id recorded when the active dictionary is the
// client's saved custom upload.
const CustomSavedID = "__custom_saved__"

// Names shown for non-preset dictionaries.
const (
	CustomSavedName   = "自定义 (已保存)"
	customUploadLabel = "自定义文件: "
)

// UploadName returns the display name for an uploaded file.
func UploadName(filename string) string {
	return customUploadLabel + filename
}

// Preset is one bundled dictionary.
type Preset struct {
	ID      string   `json:"id"`
	Label   string   `json:"label"`
	File    string   `json:"file"`
	Variant *Variant `json:"-"`
}

var (
	Default      = Preset{ID: "default", Label: "默认 (dictionary.csv)", File: BaseFile}
	Conservative = Preset{ID: "conservative", Label: "无虚词 (dictionary_c.csv)", File: "dictionary_c.csv", Variant: &VariantConservative}
	Onomatopoeia = Preset{ID: "onomatopoeia", Label: "拟声词 (dictionary_d.csv)", File: "dictionary_d.csv", Variant: &VariantOnomatopoeia}
	Friendly     = Preset{ID: "friendly", Label: "友好 (dictionary_f.csv)", File: "dictionary_f.csv", Variant: &VariantFriendly}
)

// All lists every preset once.
var All = []Preset{Default, Conservative, Onomatopoeia, Friendly}

// catalog lists the presets offered per conversion mode, first is the
// default for that mode.
var catalog = map[domain.Mode][]Preset{
	domain.ModeForward: {Default, Conservative, Onomatopoeia},
	domain.ModeReverse: {Friendly, Default},
}

// List returns the presets offered for mode.
func List(mode domain.Mode) []Preset {
	ps := catalog[mode]
	out := make([]Preset, len(ps))
	copy(out, ps)
	return out
}

// Find returns the preset with id among those offered for mode. An unknown
// id falls back to the first preset of the mode.
func Find(mode domain.Mode, id string) Preset {
	ps := catalog[mode]
	if len(ps) == 0 {
		return Default
	}
	for _, p := range ps {
		if p.ID == id {
			return p
		}
	}
	return ps[0]
}

// Lookup returns the preset with id regardless of mode.
func Lookup(id string) (Preset, bool) {
	for _, p := range All {
		if p.ID == id {
			return p, true
		}
	}
	return Preset{}, false
}

// ByFile returns the preset served under file name.
func ByFile(file string) (Preset, bool) {
	for _, p := range All {
		if p.File == file {
			return p, true
		}
	}
	return Preset{}, false
}
