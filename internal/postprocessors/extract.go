package postprocessors

import (
	"github.com/custodia-labs/quotient/internal/core/domain"
)

// Extract splits text into its ASCII letters and ASCII digits,
// each in original order. Every other byte is dropped, so multi-byte
// UTF-8 characters never contribute.
func Extract(text string) (letters, digits domain.Sequence) {
	letters = domain.Sequence{}
	digits = domain.Sequence{}

	for i := 0; i < len(text); i++ {
		switch c := text[i]; {
		case isASCIILetter(c):
			letters = append(letters, text[i:i+1])
		case '0' <= c && c <= '9':
			digits = append(digits, text[i:i+1])
		}
	}

	return letters, digits
}

func isASCIILetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
