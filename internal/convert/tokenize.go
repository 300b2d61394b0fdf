package convert

import (
	"regexp"
	"unicode/utf8"

	"github.com/MauritiusChief/toki-ante/internal/domain"
)

// Tokenizer splits converter input into an order-preserving token sequence.
// Concatenating the token texts yields the input unchanged.
type Tokenizer interface {
	Tokenize(text string) []domain.Token
}

// nonWord matches runs of characters outside the ASCII word class.
var nonWord = regexp.MustCompile(`\W+`)

// LatinWordTokenizer splits text on runs of non-word characters and keeps
// the runs as tokens of their own.
type LatinWordTokenizer struct{}

func (LatinWordTokenizer) Tokenize(text string) []domain.Token {
	var tokens []domain.Token
	last := 0
	for _, loc := range nonWord.FindAllStringIndex(text, -1) {
		if loc[0] > last {
			tokens = append(tokens, domain.Token{Text: text[last:loc[0]], Category: domain.TokenLatinWord})
		}
		tokens = append(tokens, domain.Token{Text: text[loc[0]:loc[1]], Category: domain.TokenOther})
		last = loc[1]
	}
	if last < len(text) {
		tokens = append(tokens, domain.Token{Text: text[last:], Category: domain.TokenLatinWord})
	}
	return tokens
}

// MixedScriptTokenizer scans left to right and emits maximal runs of ASCII
// letters, single CJK unified ideographs, and every other code point alone.
type MixedScriptTokenizer struct{}

func (MixedScriptTokenizer) Tokenize(text string) []domain.Token {
	var tokens []domain.Token
	for i := 0; i < len(text); {
		if isASCIILetter(text[i]) {
			j := i + 1
			for j < len(text) && isASCIILetter(text[j]) {
				j++
			}
			tokens = append(tokens, domain.Token{Text: text[i:j], Category: domain.TokenLatinWord})
			i = j
			continue
		}

		r, size := utf8.DecodeRuneInString(text[i:])
		cat := domain.TokenOther
		if IsIdeograph(r) {
			cat = domain.TokenSingleIdeograph
		}
		tokens = append(tokens, domain.Token{Text: text[i : i+size], Category: cat})
		i += size
	}
	return tokens
}

// IsIdeograph reports whether r lies in the CJK Unified Ideographs block
// U+4E00..U+9FFF.
func IsIdeograph(r rune) bool {
	return r >= 0x4E00 && r <= 0x9FFF
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isLowerLatin(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
