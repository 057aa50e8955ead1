package driven

import (
	"context"

	"github.com/custodia-labs/quotient/internal/core/domain"
)

// Normaliser turns fetched content into plain text for extraction.
// Each normaliser handles exactly one parse mode.
type Normaliser interface {
	// Mode returns the parse mode this normaliser handles.
	Mode() domain.Mode

	// Normalise strips markup from the raw content.
	Normalise(ctx context.Context, raw *domain.RawContent) (*NormaliseResult, error)
}

// NormaliseResult contains the output of normalisation.
type NormaliseResult struct {
	// Text is the content handed to the extraction pipeline.
	Text string

	// Title is a display title, if the normaliser could find one.
	Title string
}

// NormaliserRegistry selects the normaliser for a parse mode.
type NormaliserRegistry interface {
	// Get returns the normaliser for mode, or an error wrapping
	// domain.ErrInvalidMode.
	Get(mode domain.Mode) (Normaliser, error)
}
