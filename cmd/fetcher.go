package cmd

import (
	"fmt"
	"log/slog"

	"github.com/gaurav-prasanna/careerladder/config"
	"github.com/gaurav-prasanna/careerladder/core"
	"github.com/gaurav-prasanna/careerladder/core/cache"
	"github.com/gaurav-prasanna/careerladder/core/fetch"
)

// newFetcher builds the page fetcher described by the configuration: plain
// HTTP or headless Chrome, optionally behind the Redis page cache. The
// returned cleanup func releases the browser and the Redis connection.
func newFetcher(c *config.Config, log *slog.Logger) (core.Fetcher, func(), error) {
	var (
		fetcher core.Fetcher
		kind    = fetch.KindHTTP
		closers []func()
	)

	if c.Fetch.Browser {
		browser := fetch.NewBrowser(c.RequestTimeout(), c.Fetch.UserAgent)
		closers = append(closers, browser.Close)
		fetcher, kind = browser, fetch.KindBrowser
	} else {
		fetcher = fetch.New(c.RequestTimeout(), c.Fetch.UserAgent)
	}

	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	if c.Cache.RedisURL != "" {
		rc, err := cache.NewRedisCache(c.Cache.RedisURL)
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("connecting page cache: %w", err)
		}
		closers = append(closers, func() {
			if err := rc.Close(); err != nil {
				log.Warn("closing page cache", "error", err)
			}
		})
		fetcher = fetch.NewCached(fetcher, rc, kind, c.CacheTTL(), log)
	}

	return fetcher, cleanup, nil
}
