package domain

import "time"

// RawContent represents opaque bytes fetched from a URL.
// It is the fetcher's output before markup is stripped.
type RawContent struct {
	// URL is the location the content was fetched from.
	URL string

	// MIMEType is the content type (e.g., "text/html").
	MIMEType string

	// Content is the raw bytes.
	Content []byte

	// Attempts is the number of requests made, including the successful one.
	Attempts int

	// FetchedAt is when the content was received.
	FetchedAt time.Time
}

// Text returns the content as a string.
func (r *RawContent) Text() string {
	if r == nil {
		return ""
	}
	return string(r.Content)
}
