package driven

import (
	"context"

	"github.com/custodia-labs/quotient/internal/core/domain"
)

// Fetcher retrieves the raw bytes behind a URL.
// Implementations own their retry policy; a returned error means every
// attempt failed and should wrap domain.ErrFetchFailed.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*domain.RawContent, error)
}
