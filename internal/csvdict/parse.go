// Package csvdict reads and writes the three-column dictionary CSV.
// Pure functions: text in, domain.Dictionary out. No I/O beyond the writer
// handed to Write.
package csvdict

import (
	"fmt"
	"strings"

	"github.com/MauritiusChief/toki-ante/internal/domain"
)

// Header is the exact first line every dictionary file must carry.
const Header = "道本语,正字,释义toki_hanzi专用标识"

const bom = "\uFEFF"

// FormatError reports a dictionary whose header line is not Header.
type FormatError struct {
	Got string
}

func (e *FormatError) Error() string {
	if e.Got == "" {
		return "csv header missing: check the header row"
	}
	return fmt.Sprintf("csv header mismatch: got %q, check the header row", e.Got)
}

func (e *FormatError) Unwrap() error { return domain.ErrFormat }

// Parse builds a Dictionary from CSV text.
//
// The first line must be Header (surrounding whitespace ignored). Every
// later non-blank line with at least two fields and a non-empty first field
// becomes an entry; other lines are skipped silently. A word seen twice
// takes the values of its last row.
func Parse(text string) (*domain.Dictionary, error) {
	text = strings.TrimPrefix(text, bom)
	lines := splitLines(text)

	if header := strings.TrimSpace(lines[0]); header != Header {
		return nil, &FormatError{Got: header}
	}

	dict := domain.NewDictionary()
	for _, raw := range lines[1:] {
		if strings.TrimSpace(raw) == "" {
			continue
		}

		cols := splitLine(raw)
		if len(cols) < 2 {
			continue
		}
		word := strings.TrimSpace(cols[0])
		if word == "" {
			continue
		}

		display := strings.TrimSpace(cols[1])
		gloss := ""
		if len(cols) > 2 {
			gloss = strings.TrimSpace(cols[2])
		}
		dict.Set(word, display, gloss)
	}

	return dict, nil
}

// splitLines splits on "\n" and "\r\n". It always returns at least one
// element, so an empty text yields a single empty header line.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// splitLine splits one CSV line into fields.
//
// A double quote toggles quoting anywhere in a field; inside quotes a comma
// is literal and "" is an escaped quote. A quote left open runs to the end
// of the line. Unquoted text is taken verbatim.
func splitLine(line string) []string {
	var (
		out      []string
		cur      strings.Builder
		inQuotes bool
	)

	for i := 0; i < len(line); i++ {
		ch := line[i]
		if inQuotes {
			if ch == '"' {
				if i+1 < len(line) && line[i+1] == '"' {
					cur.WriteByte('"')
					i++
				} else {
					inQuotes = false
				}
			} else {
				cur.WriteByte(ch)
			}
			continue
		}

		switch ch {
		case ',':
			out = append(out, cur.String())
			cur.Reset()
		case '"':
			inQuotes = true
		default:
			cur.WriteByte(ch)
		}
	}

	return append(out, cur.String())
}
