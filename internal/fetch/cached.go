// Package fetch - cached.go provides in-memory caching for fetched job pages.
package fetch

import (
	"context"
	"sync"
	"time"
)

// DefaultCacheTTL is how long a fetched page stays fresh.
const DefaultCacheTTL = 7 * 24 * time.Hour

// CachedFetcher wraps URL fetching with an in-memory cache. Job postings
// rarely change while a search is open, so repeated match runs against the
// same URL should not hammer the job board.
type CachedFetcher struct {
	mu       sync.Mutex
	pages    map[string]cachedPage
	options  *Options
	cacheTTL time.Duration
}

type cachedPage struct {
	result    Result
	fetchedAt time.Time
}

// CachedFetcherConfig holds configuration for the cached fetcher.
type CachedFetcherConfig struct {
	CacheTTL time.Duration
	Options  *Options
}

// NewCachedFetcher creates a new cached fetcher.
func NewCachedFetcher(config *CachedFetcherConfig) *CachedFetcher {
	if config == nil {
		config = &CachedFetcherConfig{}
	}
	if config.Options == nil {
		config.Options = DefaultOptions()
	}
	if config.CacheTTL == 0 {
		config.CacheTTL = DefaultCacheTTL
	}
	return &CachedFetcher{
		pages:    make(map[string]cachedPage),
		options:  config.Options,
		cacheTTL: config.CacheTTL,
	}
}

// CachedResult extends Result with cache metadata.
type CachedResult struct {
	*Result
	FromCache bool
}

// Fetch retrieves a URL, returning the cached copy if it is still fresh.
// Fresh fetches also get their main text extracted before caching.
func (f *CachedFetcher) Fetch(ctx context.Context, urlStr string) (*CachedResult, error) {
	f.mu.Lock()
	if page, ok := f.pages[urlStr]; ok && time.Since(page.fetchedAt) < f.cacheTTL {
		f.mu.Unlock()
		result := page.result
		return &CachedResult{Result: &result, FromCache: true}, nil
	}
	f.mu.Unlock()

	result, err := URL(ctx, urlStr, f.options)
	if err != nil {
		return nil, err
	}

	text, _ := ExtractMainText(result.HTML, JobPostingSelectors())
	result.Text = text

	f.mu.Lock()
	f.pages[urlStr] = cachedPage{result: *result, fetchedAt: time.Now()}
	f.mu.Unlock()

	return &CachedResult{Result: result, FromCache: false}, nil
}

// Invalidate drops a URL from the cache, forcing a re-fetch on next request.
func (f *CachedFetcher) Invalidate(urlStr string) {
	f.mu.Lock()
	delete(f.pages, urlStr)
	f.mu.Unlock()
}
