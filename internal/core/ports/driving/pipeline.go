package driving

import (
	"context"

	"github.com/custodia-labs/quotient/internal/core/domain"
)

// PipelineService runs the fetch, strip, extract, sort, merge and chunk
// pipeline on behalf of the CLI.
type PipelineService interface {
	// Run validates the request, fetches the URL and processes the content.
	// An invalid mode or chunk size is reported before any fetch happens.
	Run(ctx context.Context, req domain.Request) (*domain.Report, error)

	// Process runs the pipeline on content that has already been fetched.
	Process(ctx context.Context, raw *domain.RawContent, mode domain.Mode, chunkSize int) (*domain.Report, error)
}
