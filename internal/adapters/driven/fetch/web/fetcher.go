package web

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-resty/resty/v2"
	"github.com/sethvargo/go-retry"

	"github.com/custodia-labs/quotient/internal/core/domain"
	"github.com/custodia-labs/quotient/internal/core/ports/driven"
	"github.com/custodia-labs/quotient/internal/logger"
)

// Ensure Fetcher implements the interface.
var _ driven.Fetcher = (*Fetcher)(nil)

// StatusError reports an HTTP response with status >= 400.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %s", e.Status)
}

// Fetcher retrieves web resources over HTTP with bounded retries.
type Fetcher struct {
	client   *resty.Client
	cfg      Config
	throttle *throttle
	log      logger.Logger
}

// Option configures the fetcher.
type Option func(*Fetcher)

// WithLogger sets the logger used for attempt and retry messages.
func WithLogger(l logger.Logger) Option {
	return func(f *Fetcher) {
		if l != nil {
			f.log = l
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(f *Fetcher) {
		if hc != nil {
			f.client = resty.NewWithClient(hc)
		}
	}
}

// New creates a fetcher with the given settings.
func New(cfg Config, opts ...Option) *Fetcher {
	cfg = cfg.normalised()

	f := &Fetcher{
		client:   resty.New(),
		cfg:      cfg,
		throttle: newThrottle(cfg.RatePerSecond),
		log:      logger.Discard(),
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client.
		SetTimeout(cfg.Timeout).
		SetHeader("User-Agent", cfg.UserAgent).
		SetRetryCount(0)

	return f
}

// Config returns the effective fetch settings.
func (f *Fetcher) Config() Config {
	return f.cfg
}

// Fetch retrieves rawURL, making at most 1+MaxRetries attempts.
// The returned error wraps domain.ErrFetchFailed once attempts are exhausted,
// or domain.ErrInvalidInput if rawURL is not an absolute http(s) URL.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*domain.RawContent, error) {
	if err := validateURL(rawURL); err != nil {
		return nil, err
	}

	backoff := retry.WithMaxRetries(uint64(f.cfg.MaxRetries), retry.NewConstant(f.cfg.RetryWait))

	var (
		attempts int
		raw      *domain.RawContent
	)

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempts++

		if err := f.throttle.Wait(ctx); err != nil {
			return err
		}

		f.log.Debug("Fetching", "url", rawURL, "attempt", attempts)
		resp, err := f.client.R().SetContext(ctx).Get(rawURL)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			f.log.Warn("Fetch attempt failed", "url", rawURL, "attempt", attempts, "err", err)
			return retry.RetryableError(err)
		}

		f.throttle.Update(resp.StatusCode(), resp.Header())

		if resp.IsError() {
			statusErr := &StatusError{StatusCode: resp.StatusCode(), Status: resp.Status()}
			f.log.Warn("Fetch attempt failed", "url", rawURL, "attempt", attempts, "status", resp.StatusCode())
			return retry.RetryableError(statusErr)
		}

		body := resp.Body()
		raw = &domain.RawContent{
			URL:       rawURL,
			MIMEType:  detectMIME(resp.Header().Get("Content-Type"), body),
			Content:   body,
			Attempts:  attempts,
			FetchedAt: time.Now(),
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: GET %s: %w", domain.ErrFetchFailed, rawURL, err)
		}
		return nil, fmt.Errorf("%w: GET %s after %d attempt(s): %w", domain.ErrFetchFailed, rawURL, attempts, err)
	}

	f.log.Info("Fetched", "url", rawURL, "bytes", len(raw.Content), "mime", raw.MIMEType, "attempts", attempts)
	return raw, nil
}

func validateURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%w: invalid URL %q: %w", domain.ErrInvalidInput, rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: URL scheme must be http or https, got %q", domain.ErrInvalidInput, rawURL)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: URL must have a host, got %q", domain.ErrInvalidInput, rawURL)
	}
	return nil
}

// detectMIME prefers the server's Content-Type and sniffs the body
// when the header is missing or unparsable.
func detectMIME(contentType string, body []byte) string {
	if contentType != "" {
		if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
			return mediaType
		}
	}
	if len(body) == 0 {
		return "application/octet-stream"
	}
	mt := mimetype.Detect(body).String()
	if mediaType, _, err := mime.ParseMediaType(mt); err == nil {
		return mediaType
	}
	return mt
}
