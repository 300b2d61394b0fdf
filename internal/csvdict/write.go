package csvdict

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/MauritiusChief/toki-ante/internal/domain"
)

// Write serializes d as a BOM-prefixed dictionary CSV that Parse reads back
// into an equal dictionary.
func Write(w io.Writer, d *domain.Dictionary) error {
	if _, err := io.WriteString(w, bom); err != nil {
		return fmt.Errorf("write bom: %w", err)
	}
	if _, err := io.WriteString(w, Header+"\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	cw := csv.NewWriter(w)
	var werr error
	d.Each(func(e domain.Entry) bool {
		werr = cw.Write([]string{e.Word, e.Display, e.Gloss})
		return werr == nil
	})
	if werr != nil {
		return fmt.Errorf("write row: %w", werr)
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}
