// Package pipeline orchestrates a scrape: fetch → extract → normalize →
// derive for one player, and paced batches over many players.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/gaurav-prasanna/careerladder/core"
	"github.com/gaurav-prasanna/careerladder/core/normalize"
	"github.com/gaurav-prasanna/careerladder/core/player"
)

// DefaultInterval is the pause between two profile requests in a batch.
const DefaultInterval = 2 * time.Second

// Pipeline wires the stages together.
type Pipeline struct {
	fetcher   core.Fetcher
	extractor core.Extractor
	builder   *player.Builder
	limiter   *rate.Limiter
	logger    *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithInterval sets the minimum delay between requests in ScrapeAll.
// A non-positive interval disables pacing.
func WithInterval(d time.Duration) Option {
	return func(p *Pipeline) {
		if d <= 0 {
			p.limiter = rate.NewLimiter(rate.Inf, 1)
			return
		}
		p.limiter = rate.NewLimiter(rate.Every(d), 1)
	}
}

// WithBuilder replaces the default normalizer/deriver pair.
func WithBuilder(b *player.Builder) Option {
	return func(p *Pipeline) { p.builder = b }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) { p.logger = logger }
}

// New creates a Pipeline.
func New(fetcher core.Fetcher, extractor core.Extractor, opts ...Option) *Pipeline {
	p := &Pipeline{
		fetcher:   fetcher,
		extractor: extractor,
		limiter:   rate.NewLimiter(rate.Every(DefaultInterval), 1),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	if p.builder == nil {
		p.builder = player.NewBuilder(normalize.New(p.logger), nil)
	}
	return p
}

// Scrape runs a single profile URL through the pipeline.
func (p *Pipeline) Scrape(ctx context.Context, url string) (core.PlayerRecord, error) {
	// 1. Fetch
	result, err := p.fetcher.Fetch(ctx, url)
	if err != nil {
		return core.PlayerRecord{}, fmt.Errorf("fetch: %w", err)
	}

	// 2. Extract name and history rows
	profile, err := p.extractor.Extract(result.HTML)
	if err != nil {
		return core.PlayerRecord{}, fmt.Errorf("extract: %w", err)
	}
	p.logger.Debug("extracted profile", "url", url, "name", profile.Name, "rows", len(profile.Rows))

	// 3. Normalize, gate and derive
	rec, err := p.builder.Build(profile, url)
	if errors.Is(err, player.ErrEmptyExtraction) {
		p.forget(ctx, url)
	}
	return rec, err
}

// pageForgetter is implemented by fetchers that keep pages between runs.
type pageForgetter interface {
	Forget(ctx context.Context, url string) error
}

// forget evicts a page that held no profile, so the next run fetches it again
// instead of replaying the same consent wall or empty shell.
func (p *Pipeline) forget(ctx context.Context, url string) {
	f, ok := p.fetcher.(pageForgetter)
	if !ok {
		return
	}
	if err := f.Forget(ctx, url); err != nil {
		p.logger.Warn("evicting cached page failed", "url", url, "error", err)
		return
	}
	p.logger.Debug("evicted cached page without profile", "url", url)
}

// ScrapeAll scrapes urls in order, pacing requests with the limiter.
// A player that fails for any reason is dropped and the batch continues;
// only context cancellation stops it early.
func (p *Pipeline) ScrapeAll(ctx context.Context, urls []string, reporter Reporter) (Result, error) {
	if reporter == nil {
		reporter = nopReporter{}
	}

	var res Result
	res.Total = len(urls)

	for i, url := range urls {
		if err := p.limiter.Wait(ctx); err != nil {
			return res, fmt.Errorf("rate limit wait: %w", err)
		}
		reporter.OnPlayerStart(url, i, len(urls))

		rec, err := p.Scrape(ctx, url)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
				return res, ctxErr
			}
			drop := Drop{URL: url, Reason: reasonOf(err), Err: err}
			res.Dropped = append(res.Dropped, drop)
			p.logger.Info("player dropped", "url", url, "reason", drop.Reason, "error", err)
			reporter.OnPlayerDropped(drop)
			continue
		}

		res.Records = append(res.Records, rec)
		reporter.OnPlayerScraped(rec)
	}

	reporter.OnBatchComplete(res)
	return res, nil
}
