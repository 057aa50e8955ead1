package web

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRetryAfter(t *testing.T) {
	assert.Equal(t, time.Duration(0), parseRetryAfter(""))
	assert.Equal(t, time.Duration(0), parseRetryAfter("soon"))
	assert.Equal(t, 2*time.Second, parseRetryAfter("2"))
	assert.Equal(t, MaxRetryAfter, parseRetryAfter("86400"))

	future := time.Now().Add(10 * time.Second).UTC().Format(http.TimeFormat)
	wait := parseRetryAfter(future)
	assert.Greater(t, wait, 8*time.Second)
	assert.LessOrEqual(t, wait, 10*time.Second)
}

func TestThrottle_IgnoresNonThrottledStatus(t *testing.T) {
	th := newThrottle(0)
	h := http.Header{}
	h.Set(HeaderRetryAfter, "30")

	th.Update(http.StatusInternalServerError, h)

	assert.True(t, th.notBefore.IsZero())
}

func TestThrottle_HonoursRetryAfter(t *testing.T) {
	th := newThrottle(0)
	h := http.Header{}
	h.Set(HeaderRetryAfter, "30")

	th.Update(http.StatusTooManyRequests, h)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := th.Wait(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestThrottle_UnlimitedDoesNotBlock(t *testing.T) {
	th := newThrottle(0)

	start := time.Now()
	for i := 0; i < 5; i++ {
		require.NoError(t, th.Wait(context.Background()))
	}
	assert.Less(t, time.Since(start), time.Second)
}
