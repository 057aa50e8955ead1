package domain

import (
	"fmt"
	"strings"
)

// Mode controls how markup is treated before characters are extracted.
type Mode string

const (
	// ModeHTML strips angle-bracket tags before extraction.
	ModeHTML Mode = "html"

	// ModeText passes content through unchanged.
	ModeText Mode = "text"
)

// AllModes returns every supported mode.
func AllModes() []Mode {
	return []Mode{ModeHTML, ModeText}
}

// ParseMode converts a user-supplied string to a Mode.
// Matching is exact; "HTML" is not accepted.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeHTML, ModeText:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("%w: %q (expected one of %s)", ErrInvalidMode, s, joinModes())
	}
}

// String returns the mode name.
func (m Mode) String() string {
	return string(m)
}

func joinModes() string {
	modes := AllModes()
	names := make([]string, len(modes))
	for i, m := range modes {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}
