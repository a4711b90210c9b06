// Package fetch — cache-backed fetcher.
package fetch

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gaurav-prasanna/careerladder/core"
)

// Fetch modes, used to keep pages fetched one way apart from the other.
const (
	KindHTTP    = "http"
	KindBrowser = "browser"
)

// PageCache stores fetched HTML by key.
type PageCache interface {
	GetPage(ctx context.Context, key string) (html string, ok bool, err error)
	SetPage(ctx context.Context, key string, html string, ttl time.Duration) error
	Invalidate(ctx context.Context, keys ...string) error
}

// CachedFetcher serves pages from a PageCache and falls back to the wrapped
// Fetcher. Entries are keyed by fetch mode and URL. Cache failures are
// logged and never fail a fetch.
type CachedFetcher struct {
	next   core.Fetcher
	cache  PageCache
	kind   string
	ttl    time.Duration
	logger *slog.Logger
}

// NewCached wraps next with cache. kind names the fetch mode of next
// (KindHTTP, KindBrowser).
func NewCached(next core.Fetcher, cache PageCache, kind string, ttl time.Duration, logger *slog.Logger) *CachedFetcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &CachedFetcher{next: next, cache: cache, kind: kind, ttl: ttl, logger: logger}
}

func (c *CachedFetcher) key(url string) string {
	return c.kind + ":" + url
}

// Fetch implements core.Fetcher.
func (c *CachedFetcher) Fetch(ctx context.Context, url string) (*core.FetchResult, error) {
	html, ok, err := c.cache.GetPage(ctx, c.key(url))
	switch {
	case err != nil:
		c.logger.Warn("page cache read failed", "url", url, "error", err)
	case ok:
		c.logger.Debug("page cache hit", "url", url, "kind", c.kind)
		return &core.FetchResult{URL: url, StatusCode: http.StatusOK, HTML: html}, nil
	}

	result, err := c.next.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	if err := c.cache.SetPage(ctx, c.key(url), result.HTML, c.ttl); err != nil {
		c.logger.Warn("page cache write failed", "url", url, "error", err)
	}
	return result, nil
}

// Forget drops the cached page for url, so the next Fetch goes to the
// wrapped Fetcher. Used when a cached page turns out to hold no profile
// (a consent wall or an unrendered shell).
func (c *CachedFetcher) Forget(ctx context.Context, url string) error {
	return c.cache.Invalidate(ctx, c.key(url))
}
