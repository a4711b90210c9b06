// Package fetch — headless browser fetcher.
package fetch

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/gaurav-prasanna/careerladder/core"
)

// renderDelay gives client-side scripts time to fill in the page.
const renderDelay = 1 * time.Second

// BrowserFetcher renders pages with headless Chrome. Use it when the plain
// HTTP response is a consent wall or script shell.
type BrowserFetcher struct {
	allocCtx context.Context
	cancel   context.CancelFunc
	timeout  time.Duration
}

// NewBrowser starts a Chrome allocator. Call Close to release it.
func NewBrowser(timeout time.Duration, userAgent string) *BrowserFetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.UserAgent(userAgent),
	)
	allocCtx, cancel := chromedp.NewExecAllocator(context.Background(), opts...)

	return &BrowserFetcher{allocCtx: allocCtx, cancel: cancel, timeout: timeout}
}

// Close shuts down the browser allocator.
func (b *BrowserFetcher) Close() {
	if b.cancel != nil {
		b.cancel()
	}
}

// Fetch navigates to url and returns the rendered document.
func (b *BrowserFetcher) Fetch(ctx context.Context, url string) (*core.FetchResult, error) {
	browserCtx, cancel := chromedp.NewContext(b.allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, b.timeout)
	defer cancel()

	// Propagate caller cancellation into the browser context.
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitVisible(`body`, chromedp.ByQuery),
		chromedp.Sleep(renderDelay),
		chromedp.OuterHTML(`html`, &html, chromedp.ByQuery),
	)
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", url, err)
	}
	if html == "" {
		return nil, fmt.Errorf("empty document returned for %s", url)
	}

	return &core.FetchResult{
		URL:        url,
		StatusCode: http.StatusOK,
		HTML:       html,
	}, nil
}
