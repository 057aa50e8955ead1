package postprocessors

import (
	"github.com/custodia-labs/quotient/internal/core/domain"
)

// Merge interleaves letters and digits one element at a time, letter
// first, until both are exhausted. Once one side runs out the rest of
// the other side follows in order.
func Merge(letters, digits domain.Sequence) domain.Sequence {
	merged := make(domain.Sequence, 0, len(letters)+len(digits))

	for i := 0; i < len(letters) || i < len(digits); i++ {
		if i < len(letters) {
			merged = append(merged, letters[i])
		}
		if i < len(digits) {
			merged = append(merged, digits[i])
		}
	}

	return merged
}
