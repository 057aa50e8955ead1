// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// PipelineService is the only service: it validates a request, fetches
// the resource through a driven.Fetcher, strips markup with the
// normaliser for the requested mode and hands the text to the content
// pipeline in internal/postprocessors.
package services
