// Package crawl provides player URL discovery and list handling for batch
// runs. It keeps link harvesting separate from the scrape pipeline.
package crawl

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/gaurav-prasanna/careerladder/core"
)

// DiscoverPlayers fetches a squad or list page and returns the canonical
// profile URL of every player linked from it, in page order, without repeats.
// Links to other hosts are ignored.
func DiscoverPlayers(ctx context.Context, pageURL string, fetcher core.Fetcher) ([]string, error) {
	base, err := url.Parse(pageURL)
	if err != nil || base.Host == "" {
		return nil, fmt.Errorf("invalid page URL: %s", pageURL)
	}

	result, err := fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", pageURL, err)
	}

	links, err := extractLinks(result.HTML, base)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", pageURL, err)
	}

	queue := NewQueue()
	for _, link := range links {
		if IsSameDomain(link, base.Host) && IsProfileURL(link) {
			queue.Add(ProfileURL(link))
		}
	}
	return queue.All(), nil
}

// extractLinks extracts all href values from <a> tags, resolving relative URLs.
func extractLinks(html string, base *url.URL) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	var links []string
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, exists := s.Attr("href")
		if !exists || href == "" {
			return
		}

		resolved := resolveURL(href, base)
		if resolved != "" {
			links = append(links, resolved)
		}
	})

	return links, nil
}

// resolveURL resolves a potentially relative URL against a base.
func resolveURL(href string, base *url.URL) string {
	// Skip mailto, javascript, etc.
	if strings.HasPrefix(href, "mailto:") || strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "tel:") || strings.HasPrefix(href, "#") {
		return ""
	}

	parsed, err := url.Parse(href)
	if err != nil {
		return ""
	}

	resolved := base.ResolveReference(parsed)
	// Strip fragments.
	resolved.Fragment = ""
	return resolved.String()
}
