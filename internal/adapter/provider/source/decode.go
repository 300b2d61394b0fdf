// Package source turns raw dictionary bytes into text.
package source

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrTooLarge is returned by ReadLimited when the input exceeds the limit.
var ErrTooLarge = errors.New("dictionary file too large")

// DecodeText decodes dictionary bytes. A UTF-8 or UTF-16 byte order mark
// selects the encoding and is stripped; without one the bytes are read as
// UTF-8. Invalid sequences become U+FFFD.
func DecodeText(data []byte) (string, error) {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(dec, data)
	if err != nil {
		return "", fmt.Errorf("decode text: %w", err)
	}
	return string(out), nil
}

// ReadLimited reads r to the end, failing with ErrTooLarge once more than
// limit bytes arrive. A limit of zero or less disables the check.
func ReadLimited(r io.Reader, limit int64) ([]byte, error) {
	if limit <= 0 {
		return io.ReadAll(r)
	}
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: limit %d bytes", ErrTooLarge, limit)
	}
	return data, nil
}

// ReadText reads and decodes a dictionary from r.
func ReadText(r io.Reader, limit int64) (string, error) {
	data, err := ReadLimited(r, limit)
	if err != nil {
		return "", err
	}
	return DecodeText(data)
}
