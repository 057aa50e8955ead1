package cli

import (
	"context"
	"testing"

	"github.com/custodia-labs/quotient/internal/adapters/driven/config/file"
	"github.com/custodia-labs/quotient/internal/core/domain"
	"github.com/custodia-labs/quotient/internal/core/services"
	"github.com/custodia-labs/quotient/internal/normalisers"
)

// stubFetcher implements driven.Fetcher with canned content.
type stubFetcher struct {
	content string
	err     error
	calls   int
}

func (s *stubFetcher) Fetch(_ context.Context, url string) (*domain.RawContent, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &domain.RawContent{URL: url, Content: []byte(s.content), Attempts: 1}, nil
}

// setupTestServices wires a real pipeline service around fetcher and a
// config store in a temp dir. The returned func restores globals.
func setupTestServices(t *testing.T, fetcher *stubFetcher) func() {
	t.Helper()

	store, err := file.NewConfigStore(t.TempDir())
	if err != nil {
		t.Fatalf("config store: %v", err)
	}

	oldService, oldStore := pipelineService, configStore
	if fetcher != nil {
		pipelineService = services.NewPipelineService(fetcher, normalisers.NewDefaultRegistry(), nil)
	} else {
		pipelineService = nil
	}
	configStore = store

	return func() {
		pipelineService, configStore = oldService, oldStore
		outputAsJSON = false
		verbose = false
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	}
}
