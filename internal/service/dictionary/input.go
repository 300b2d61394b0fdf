package dictionary

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/MauritiusChief/toki-ante/internal/domain"
)

// UploadInput holds a dictionary file chosen by the client. Size is the
// byte count of the file before decoding; zero means len(Text).
type UploadInput struct {
	Filename string
	Text     string
	Size     int64
}

// Validate checks all fields and collects all errors.
func (i *UploadInput) Validate(maxBytes int64) error {
	var errs []domain.FieldError

	i.Filename = filepath.Base(strings.TrimSpace(i.Filename))
	if i.Filename == "" || i.Filename == "." || i.Filename == string(filepath.Separator) {
		errs = append(errs, domain.FieldError{Field: "filename", Message: "required"})
	} else if len(i.Filename) > 255 {
		errs = append(errs, domain.FieldError{Field: "filename", Message: "too long (max 255)"})
	}
	size := i.Size
	if size <= 0 {
		size = int64(len(i.Text))
	}
	if size > maxBytes {
		errs = append(errs, domain.FieldError{Field: "file", Message: fmt.Sprintf("too large (max %d bytes)", maxBytes)})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ConvertInput holds text to convert and the direction.
type ConvertInput struct {
	Mode domain.Mode
	Text string
}

// Validate checks all fields and collects all errors. An empty mode means
// forward.
func (i *ConvertInput) Validate(maxBytes int64) error {
	var errs []domain.FieldError

	if i.Mode == "" {
		i.Mode = domain.ModeForward
	}
	if !i.Mode.IsValid() {
		errs = append(errs, domain.FieldError{Field: "mode", Message: "must be forward or reverse"})
	}
	if int64(len(i.Text)) > maxBytes {
		errs = append(errs, domain.FieldError{Field: "text", Message: fmt.Sprintf("too long (max %d bytes)", maxBytes)})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
