// Package crawl — URL rules for player profile pages.
// Transfermarkt serves the same player under several tabs
// (/profil/, /transfers/, /leistungsdaten/ …); all are folded onto the
// profile tab, which carries both the name and the transfer history.
package crawl

import (
	"net/url"
	"regexp"
	"strings"
)

// profilePath matches "/<slug>/<tab>/spieler/<id>" with optional trailing segments.
var profilePath = regexp.MustCompile(`^/([^/]+)/([^/]+)/spieler/(\d+)`)

// IsSameDomain checks if the given URL belongs to the specified domain.
func IsSameDomain(rawURL string, domain string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return parsed.Host == domain
}

// IsProfileURL reports whether rawURL points at any player tab.
func IsProfileURL(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return false
	}
	return profilePath.MatchString(parsed.Path)
}

// ProfileURL rewrites any player tab URL to its canonical profile URL,
// dropping query, fragment and trailing segments. Other URLs are returned
// normalized but otherwise unchanged.
func ProfileURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	m := profilePath.FindStringSubmatch(parsed.Path)
	if m == nil {
		return NormalizeURL(rawURL)
	}
	parsed.Path = "/" + m[1] + "/profil/spieler/" + m[3]
	parsed.RawQuery = ""
	parsed.Fragment = ""
	return parsed.String()
}

// NormalizeURL strips fragments and trailing slashes for deduplication.
func NormalizeURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	// Remove fragment.
	parsed.Fragment = ""

	// Remove trailing slash (but keep root "/").
	if parsed.Path != "/" {
		parsed.Path = strings.TrimSuffix(parsed.Path, "/")
	}

	return parsed.String()
}
