package domain

import "fmt"

// Sequence is an ordered run of single-character strings.
// Producers never modify a Sequence after returning it.
type Sequence []string

// String joins the sequence back into a string.
func (s Sequence) String() string {
	b := make([]byte, 0, len(s))
	for _, c := range s {
		b = append(b, c...)
	}
	return string(b)
}

// ChunkResult is a merged sequence partitioned into fixed-size chunks.
type ChunkResult struct {
	// Quotient holds every full-size chunk in order.
	Quotient []Sequence `json:"quotient"`

	// Remainder holds the trailing elements that did not fill a chunk.
	// It is empty when the merged length is a multiple of the chunk size.
	Remainder Sequence `json:"remainder"`
}

// Len returns the total number of elements across quotient and remainder.
func (r ChunkResult) Len() int {
	n := len(r.Remainder)
	for _, q := range r.Quotient {
		n += len(q)
	}
	return n
}

// Analysis carries every intermediate sequence of a pipeline run.
type Analysis struct {
	Letters Sequence    `json:"letters"`
	Digits  Sequence    `json:"digits"`
	Merged  Sequence    `json:"merged"`
	Result  ChunkResult `json:"result"`
}

// ValidateChunkSize checks that n can be used to partition a sequence.
func ValidateChunkSize(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: %d (must be a positive integer)", ErrInvalidChunkSize, n)
	}
	return nil
}
