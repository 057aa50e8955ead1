package postprocessors

import (
	"slices"
	"strings"

	"github.com/custodia-labs/quotient/internal/core/domain"
)

// SortLetters returns letters ordered by lowercase value.
// Equal letters of different case keep uppercase first ("A" < "a").
// The input is not modified.
func SortLetters(letters domain.Sequence) domain.Sequence {
	sorted := slices.Clone(letters)
	slices.SortFunc(sorted, compareLetters)
	return nonNil(sorted)
}

// SortDigits returns digits in ascending order.
// The input is not modified.
func SortDigits(digits domain.Sequence) domain.Sequence {
	sorted := slices.Clone(digits)
	slices.Sort(sorted)
	return nonNil(sorted)
}

func compareLetters(a, b string) int {
	if c := strings.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

func nonNil(s domain.Sequence) domain.Sequence {
	if s == nil {
		return domain.Sequence{}
	}
	return s
}
