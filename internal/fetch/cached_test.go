package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countingServer(t *testing.T, hits *atomic.Int64) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body><div class="job-description">Backend role, 5+ years</div></body></html>`))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestCachedFetcher_SecondFetchComesFromCache(t *testing.T) {
	var hits atomic.Int64
	server := countingServer(t, &hits)
	fetcher := NewCachedFetcher(nil)

	first, err := fetcher.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.False(t, first.FromCache)
	assert.Contains(t, first.Text, "Backend role")

	second, err := fetcher.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.True(t, second.FromCache)
	assert.Equal(t, first.Text, second.Text)

	assert.Equal(t, int64(1), hits.Load(), "cached fetch must not hit the server again")
}

func TestCachedFetcher_ExpiredEntryIsRefetched(t *testing.T) {
	var hits atomic.Int64
	server := countingServer(t, &hits)
	fetcher := NewCachedFetcher(&CachedFetcherConfig{CacheTTL: time.Nanosecond})

	_, err := fetcher.Fetch(context.Background(), server.URL)
	require.NoError(t, err)

	time.Sleep(time.Millisecond)

	result, err := fetcher.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.False(t, result.FromCache)
	assert.Equal(t, int64(2), hits.Load())
}

func TestCachedFetcher_InvalidateForcesRefetch(t *testing.T) {
	var hits atomic.Int64
	server := countingServer(t, &hits)
	fetcher := NewCachedFetcher(nil)

	_, err := fetcher.Fetch(context.Background(), server.URL)
	require.NoError(t, err)

	fetcher.Invalidate(server.URL)

	result, err := fetcher.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.False(t, result.FromCache)
	assert.Equal(t, int64(2), hits.Load())
}

func TestCachedFetcher_ErrorsAreNotCached(t *testing.T) {
	fetcher := NewCachedFetcher(nil)

	_, err := fetcher.Fetch(context.Background(), "not-a-valid-url")
	require.Error(t, err)

	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
}
