// Package postprocessors implements the content pipeline that runs after
// markup has been stripped: extraction, sorting, merging and chunking.
package postprocessors

import (
	"github.com/custodia-labs/quotient/internal/core/domain"
	"github.com/custodia-labs/quotient/internal/logger"
	"github.com/custodia-labs/quotient/internal/postprocessors/chunker"
)

// Pipeline runs the extraction, sort, merge and chunk stages in order.
// It holds no mutable state and may be reused across inputs.
type Pipeline struct {
	chunker *chunker.Processor
	log     logger.Logger
}

// Option configures the pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger used for stage milestones.
func WithLogger(l logger.Logger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.log = l
		}
	}
}

// NewPipeline creates a pipeline that chunks into segments of chunkSize.
// Returns an error wrapping domain.ErrInvalidChunkSize if chunkSize < 1.
func NewPipeline(chunkSize int, opts ...Option) (*Pipeline, error) {
	c, err := chunker.New(chunkSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		chunker: c,
		log:     logger.Discard(),
	}
	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// ChunkSize returns the segment length used by the chunk stage.
func (p *Pipeline) ChunkSize() int {
	return p.chunker.ChunkSize()
}

// Process runs every stage over text and returns all intermediate results.
func (p *Pipeline) Process(text string) domain.Analysis {
	p.log.Info("Extracting characters", "bytes", len(text))
	letters, digits := Extract(text)

	p.log.Info("Sorting letters", "count", len(letters))
	letters = SortLetters(letters)

	p.log.Info("Sorting digits", "count", len(digits))
	digits = SortDigits(digits)

	p.log.Info("Merging sequences")
	merged := Merge(letters, digits)

	p.log.Info("Chunking", "size", p.chunker.ChunkSize(), "elements", len(merged))
	result := p.chunker.Process(merged)
	p.log.Debug("Chunked",
		"processor", p.chunker.Name(),
		"quotient", len(result.Quotient),
		"remainder", len(result.Remainder),
		"total", result.Len(),
	)

	return domain.Analysis{
		Letters: letters,
		Digits:  digits,
		Merged:  merged,
		Result:  result,
	}
}
