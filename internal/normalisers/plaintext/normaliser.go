// Package plaintext provides the Normaliser for the "text" parse mode.
// Content passes through unchanged, markup included.
package plaintext

import (
	"context"

	"github.com/custodia-labs/quotient/internal/core/domain"
	"github.com/custodia-labs/quotient/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles content that should be read as-is.
type Normaliser struct{}

// New creates a new plain text normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Mode returns the parse mode this normaliser handles.
func (n *Normaliser) Mode() domain.Mode {
	return domain.ModeText
}

// Normalise returns the raw content as text.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawContent) (*driven.NormaliseResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	return &driven.NormaliseResult{
		Text: raw.Text(),
	}, nil
}
