package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/custodia-labs/quotient/internal/core/domain"
	"github.com/custodia-labs/quotient/internal/core/ports/driven"
	"github.com/custodia-labs/quotient/internal/core/ports/driving"
	"github.com/custodia-labs/quotient/internal/logger"
	"github.com/custodia-labs/quotient/internal/postprocessors"
)

// Ensure PipelineService implements the interface.
var _ driving.PipelineService = (*PipelineService)(nil)

// PipelineService fetches a resource and runs the content pipeline on it.
type PipelineService struct {
	fetcher     driven.Fetcher
	normalisers driven.NormaliserRegistry
	log         logger.Logger
}

// NewPipelineService creates a new pipeline service.
// A nil logger is replaced with one that discards output.
func NewPipelineService(
	fetcher driven.Fetcher,
	normalisers driven.NormaliserRegistry,
	log logger.Logger,
) *PipelineService {
	if log == nil {
		log = logger.Discard()
	}
	return &PipelineService{
		fetcher:     fetcher,
		normalisers: normalisers,
		log:         log,
	}
}

// Run validates req, fetches req.URL and processes the content.
// Mode and chunk size are checked before the fetcher is called, and a
// failed fetch means no later stage runs.
func (s *PipelineService) Run(ctx context.Context, req domain.Request) (*domain.Report, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if s.fetcher == nil {
		return nil, fmt.Errorf("%w: no fetcher configured", domain.ErrFetchFailed)
	}

	runID := uuid.New().String()
	log := s.log.With("run", runID)

	normaliser, pipeline, err := s.prepare(req.Mode, req.ChunkSize, log)
	if err != nil {
		return nil, err
	}

	log.Section("Fetch")
	log.Info("Requesting URL", "url", req.URL)
	raw, err := s.fetcher.Fetch(ctx, req.URL)
	if err != nil {
		log.Error("URL could not be fetched", "url", req.URL, "err", err)
		return nil, err
	}

	return s.process(ctx, runID, log, raw, normaliser, pipeline)
}

// Process runs the pipeline on already fetched content.
func (s *PipelineService) Process(
	ctx context.Context,
	raw *domain.RawContent,
	mode domain.Mode,
	chunkSize int,
) (*domain.Report, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}
	if _, err := domain.ParseMode(string(mode)); err != nil {
		return nil, err
	}

	runID := uuid.New().String()
	log := s.log.With("run", runID)

	normaliser, pipeline, err := s.prepare(mode, chunkSize, log)
	if err != nil {
		return nil, err
	}

	return s.process(ctx, runID, log, raw, normaliser, pipeline)
}

// prepare resolves everything that depends only on configuration.
func (s *PipelineService) prepare(
	mode domain.Mode,
	chunkSize int,
	log logger.Logger,
) (driven.Normaliser, *postprocessors.Pipeline, error) {
	if s.normalisers == nil {
		return nil, nil, fmt.Errorf("%w: no normalisers registered", domain.ErrInvalidMode)
	}

	normaliser, err := s.normalisers.Get(mode)
	if err != nil {
		return nil, nil, err
	}

	pipeline, err := postprocessors.NewPipeline(chunkSize, postprocessors.WithLogger(log))
	if err != nil {
		return nil, nil, err
	}

	return normaliser, pipeline, nil
}

func (s *PipelineService) process(
	ctx context.Context,
	runID string,
	log logger.Logger,
	raw *domain.RawContent,
	normaliser driven.Normaliser,
	pipeline *postprocessors.Pipeline,
) (*domain.Report, error) {
	log.Section("Parse")
	log.Info("Parsing content", "mode", normaliser.Mode(), "bytes", len(raw.Content))
	normalised, err := normaliser.Normalise(ctx, raw)
	if err != nil {
		return nil, fmt.Errorf("normalising %s content: %w", normaliser.Mode(), err)
	}

	analysis := pipeline.Process(normalised.Text)

	return &domain.Report{
		RunID:     runID,
		URL:       raw.URL,
		Mode:      normaliser.Mode(),
		ChunkSize: pipeline.ChunkSize(),
		MIMEType:  raw.MIMEType,
		Title:     normalised.Title,
		Attempts:  raw.Attempts,
		FetchedAt: raw.FetchedAt,
		Analysis:  analysis,
	}, nil
}
