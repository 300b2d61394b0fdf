package domain

import "strings"

// Mode selects the conversion direction.
type Mode string

const (
	// ModeForward converts Latin-script Toki Pona into the target script.
	ModeForward Mode = "forward"
	// ModeReverse resolves target-script text back into Toki Pona words.
	ModeReverse Mode = "reverse"
)

func (m Mode) String() string { return string(m) }

func (m Mode) IsValid() bool {
	switch m {
	case ModeForward, ModeReverse:
		return true
	}
	return false
}

// ParseMode parses a mode name case-insensitively. An empty string means
// ModeForward.
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ModeForward, nil
	}
	m := Mode(s)
	if !m.IsValid() {
		return "", NewValidationError("mode", "must be forward or reverse")
	}
	return m, nil
}
