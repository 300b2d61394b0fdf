// Package translit maps ASCII punctuation to full-width CJK punctuation and
// back, one code point at a time.
package translit

import "strings"

// Map is a code point substitution table.
type Map map[rune]rune

// Forward maps ASCII punctuation to its target-script counterpart.
var Forward = Map{
	',': '，',
	'.': '。',
	'!': '！',
	'?': '？',
	':': '：',
	';': '；',
	'(': '（',
	')': '）',
	'[': '【',
	']': '】',
	'<': '《',
	'>': '》',
}

// Reverse is the inverse of Forward.
var Reverse = Forward.Invert()

// Invert returns a map with keys and values swapped.
func (m Map) Invert() Map {
	out := make(Map, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

// Transliterate replaces every code point of s found in m and keeps the rest.
func Transliterate(s string, m Map) string {
	if len(m) == 0 {
		return s
	}
	return strings.Map(func(r rune) rune {
		if v, ok := m[r]; ok {
			return v
		}
		return r
	}, s)
}
