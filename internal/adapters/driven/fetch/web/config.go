package web

import (
	"time"

	"github.com/custodia-labs/quotient/internal/core/ports/driven"
	"github.com/custodia-labs/quotient/internal/version"
)

// Defaults used when the config store has no value.
const (
	// DefaultMaxRetries gives three attempts in total.
	DefaultMaxRetries = 2

	DefaultRetryWait     = 500 * time.Millisecond
	DefaultTimeout       = 30 * time.Second
	DefaultRatePerSecond = 2.0
)

// Config key names in the TOML config store.
const (
	KeyMaxRetries    = "fetch.max_retries"
	KeyRetryWaitMS   = "fetch.retry_wait_ms"
	KeyTimeoutSecs   = "fetch.timeout_seconds"
	KeyRatePerSecond = "fetch.rate_per_second"
	KeyUserAgent     = "fetch.user_agent"
)

// Config controls the fetcher's timeouts and retry policy.
type Config struct {
	// MaxRetries is the number of attempts after the first one.
	MaxRetries int

	// RetryWait is the constant pause between attempts.
	RetryWait time.Duration

	// Timeout bounds a single request.
	Timeout time.Duration

	// RatePerSecond caps request starts. Zero or less disables the cap.
	RatePerSecond float64

	// UserAgent is sent with every request. Defaults to quotient/<version>.
	UserAgent string
}

// DefaultConfig returns the built-in fetch settings.
func DefaultConfig() Config {
	return Config{
		MaxRetries:    DefaultMaxRetries,
		RetryWait:     DefaultRetryWait,
		Timeout:       DefaultTimeout,
		RatePerSecond: DefaultRatePerSecond,
		UserAgent:     version.UserAgent(),
	}
}

// ConfigFromStore overlays values from the config store onto DefaultConfig.
// Missing keys keep their defaults.
func ConfigFromStore(store driven.ConfigStore) Config {
	cfg := DefaultConfig()
	if store == nil {
		return cfg
	}

	if _, ok := store.Get(KeyMaxRetries); ok {
		cfg.MaxRetries = store.GetInt(KeyMaxRetries)
	}
	if ms := store.GetInt(KeyRetryWaitMS); ms > 0 {
		cfg.RetryWait = time.Duration(ms) * time.Millisecond
	}
	if secs := store.GetInt(KeyTimeoutSecs); secs > 0 {
		cfg.Timeout = time.Duration(secs) * time.Second
	}
	if _, ok := store.Get(KeyRatePerSecond); ok {
		cfg.RatePerSecond = store.GetFloat(KeyRatePerSecond)
	}
	if ua := store.GetString(KeyUserAgent); ua != "" {
		cfg.UserAgent = ua
	}

	return cfg
}

func (c Config) normalised() Config {
	if c.MaxRetries < 0 {
		c.MaxRetries = 0
	}
	if c.RetryWait <= 0 {
		c.RetryWait = DefaultRetryWait
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.UserAgent == "" {
		c.UserAgent = version.UserAgent()
	}
	return c
}
