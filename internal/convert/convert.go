// Package convert turns text into annotated spans using a dictionary.
//
// Forward conversion looks up whole lowercase Latin words and shows their
// display form. Reverse conversion maps Latin words and single ideographs
// back to dictionary keys. Both directions share one resolve loop and only
// differ in tokenizer, lookup rule and punctuation table.
package convert

import (
	"strings"

	"github.com/MauritiusChief/toki-ante/internal/domain"
	"github.com/MauritiusChief/toki-ante/internal/translit"
)

// Direction selects the lookup rule applied to each token.
type Direction uint8

const (
	Forward Direction = iota
	Reverse
)

func (d Direction) String() string {
	if d == Reverse {
		return "reverse"
	}
	return "forward"
}

// Converter bundles a tokenizer with a direction.
type Converter struct {
	tokenizer Tokenizer
	dir       Direction
}

// NewConverter returns the converter for mode. Unknown modes convert forward.
func NewConverter(mode domain.Mode) *Converter {
	if mode == domain.ModeReverse {
		return &Converter{tokenizer: MixedScriptTokenizer{}, dir: Reverse}
	}
	return &Converter{tokenizer: LatinWordTokenizer{}, dir: Forward}
}

// Direction reports which way c converts.
func (c *Converter) Direction() Direction { return c.dir }

// Convert tokenizes text and resolves every token against dict. A nil
// dictionary behaves as an empty one. Misses are not errors: they come back
// as plain spans.
func (c *Converter) Convert(text string, dict *domain.Dictionary) []domain.Span {
	tokens := c.tokenizer.Tokenize(text)
	spans := make([]domain.Span, 0, len(tokens))
	for _, tok := range tokens {
		spans = append(spans, c.resolve(tok, dict))
	}
	return spans
}

func (c *Converter) resolve(tok domain.Token, dict *domain.Dictionary) domain.Span {
	if c.dir == Reverse {
		return resolveReverse(tok, dict)
	}
	return resolveForward(tok, dict)
}

var (
	forwardConverter = NewConverter(domain.ModeForward)
	reverseConverter = NewConverter(domain.ModeReverse)
)

// ConvertForward converts Latin-script text to display forms.
func ConvertForward(text string, dict *domain.Dictionary) []domain.Span {
	return forwardConverter.Convert(text, dict)
}

// ConvertReverse converts display-form text back to Latin-script keys.
func ConvertReverse(text string, dict *domain.Dictionary) []domain.Span {
	return reverseConverter.Convert(text, dict)
}

func resolveForward(tok domain.Token, dict *domain.Dictionary) domain.Span {
	if isLowerLatin(tok.Text) {
		if e, ok := dict.Lookup(tok.Text); ok {
			return domain.WordSpan(e.Display, tok.Text+" : "+e.Gloss, domain.RolesOf(tok.Text))
		}
	}
	return domain.PlainSpan(translit.Transliterate(tok.Text, translit.Forward))
}

func resolveReverse(tok domain.Token, dict *domain.Dictionary) domain.Span {
	switch tok.Category {
	case domain.TokenLatinWord:
		key := strings.ToLower(tok.Text)
		if e, ok := dict.Lookup(key); ok && e.Display != "" {
			return domain.WordSpan(key, tooltipOrKey(e), domain.RolesOf(key))
		}
	case domain.TokenSingleIdeograph:
		if e, ok := findByIdeograph(dict, tok.Text); ok {
			sp := domain.WordSpan(e.Word, tooltipOrKey(e), domain.RolesOf(e.Word))
			sp.TrailingSpace = true
			return sp
		}
	}
	return domain.PlainSpan(translit.Transliterate(tok.Text, translit.Reverse))
}

// findByIdeograph returns the first entry, in insertion order, whose
// non-empty display form contains ch.
func findByIdeograph(dict *domain.Dictionary, ch string) (domain.Entry, bool) {
	var (
		found domain.Entry
		ok    bool
	)
	dict.Each(func(e domain.Entry) bool {
		if e.Display != "" && strings.Contains(e.Display, ch) {
			found, ok = e, true
			return false
		}
		return true
	})
	return found, ok
}

func tooltipOrKey(e domain.Entry) string {
	if e.Gloss != "" {
		return e.Gloss
	}
	return e.Word
}
