package domain

import "time"

// Request describes a single pipeline run.
type Request struct {
	// URL is the resource to fetch.
	URL string

	// Mode selects how markup is handled.
	Mode Mode

	// ChunkSize is the quotient segment length. Must be positive.
	ChunkSize int
}

// Validate checks the request before any network activity happens.
func (r Request) Validate() error {
	if r.URL == "" {
		return ErrInvalidInput
	}
	if _, err := ParseMode(string(r.Mode)); err != nil {
		return err
	}
	return ValidateChunkSize(r.ChunkSize)
}

// Report is the outcome of a pipeline run, suitable for display.
type Report struct {
	RunID     string    `json:"run_id"`
	URL       string    `json:"url"`
	Mode      Mode      `json:"mode"`
	ChunkSize int       `json:"chunk_size"`
	MIMEType  string    `json:"mime_type,omitempty"`
	Title     string    `json:"title,omitempty"`
	Attempts  int       `json:"attempts"`
	FetchedAt time.Time `json:"fetched_at"`
	Analysis  Analysis  `json:"analysis"`
}
