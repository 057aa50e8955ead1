// Package chunker provides a fixed-size sequence chunking processor.
package chunker

import (
	"github.com/custodia-labs/quotient/internal/core/domain"
)

// Processor partitions a merged sequence into fixed-size chunks.
// A trailing chunk shorter than the chunk size becomes the remainder.
type Processor struct {
	chunkSize int
}

// New creates a chunker for the given chunk size.
// Returns an error wrapping domain.ErrInvalidChunkSize if size < 1.
func New(size int) (*Processor, error) {
	if err := domain.ValidateChunkSize(size); err != nil {
		return nil, err
	}
	return &Processor{chunkSize: size}, nil
}

// Name returns the processor name.
func (p *Processor) Name() string {
	return "chunker"
}

// ChunkSize returns the configured segment length.
func (p *Processor) ChunkSize() int {
	return p.chunkSize
}

// Process splits seq into consecutive segments of ChunkSize elements.
// Segments share no backing storage with each other, so appending to
// one never overwrites its neighbour.
func (p *Processor) Process(seq domain.Sequence) domain.ChunkResult {
	result := domain.ChunkResult{
		Quotient:  make([]domain.Sequence, 0, len(seq)/p.chunkSize),
		Remainder: domain.Sequence{},
	}

	for start := 0; start < len(seq); start += p.chunkSize {
		end := start + p.chunkSize
		if end > len(seq) {
			result.Remainder = append(result.Remainder, seq[start:]...)
			break
		}
		result.Quotient = append(result.Quotient, seq[start:end:end])
	}

	return result
}
