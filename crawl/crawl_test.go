package crawl

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/careerladder/core"
)

func TestQueue(t *testing.T) {
	q := NewQueue()
	assert.True(t, q.Add("a"))
	assert.True(t, q.Add("b"))
	assert.False(t, q.Add("a"))
	assert.Equal(t, []string{"a", "b"}, q.All())
}

func TestProfileURL(t *testing.T) {
	cases := map[string]string{
		"https://www.transfermarkt.com/lionel-messi/profil/spieler/28003":                    "https://www.transfermarkt.com/lionel-messi/profil/spieler/28003",
		"https://www.transfermarkt.com/lionel-messi/transfers/spieler/28003":                 "https://www.transfermarkt.com/lionel-messi/profil/spieler/28003",
		"https://www.transfermarkt.com/lionel-messi/leistungsdaten/spieler/28003/saison/2023": "https://www.transfermarkt.com/lionel-messi/profil/spieler/28003",
		"https://www.transfermarkt.com/lionel-messi/profil/spieler/28003?x=1#top":            "https://www.transfermarkt.com/lionel-messi/profil/spieler/28003",
		"https://example.com/about/":                                                         "https://example.com/about",
	}
	for in, want := range cases {
		assert.Equal(t, want, ProfileURL(in), in)
	}
}

func TestRules(t *testing.T) {
	assert.True(t, IsProfileURL("https://www.transfermarkt.com/ronaldo/profil/spieler/3140"))
	assert.False(t, IsProfileURL("https://www.transfermarkt.com/fc-barcelona/kader/verein/131"))
	assert.False(t, IsProfileURL("/ronaldo/profil/spieler/3140"))

	assert.True(t, IsSameDomain("https://www.transfermarkt.com/x", "www.transfermarkt.com"))
	assert.False(t, IsSameDomain("https://transfermarkt.de/x", "www.transfermarkt.com"))

	assert.Equal(t, "https://example.com/", NormalizeURL("https://example.com/#frag"))
}

func TestReadList(t *testing.T) {
	input := `# Legends
https://www.transfermarkt.com/lionel-messi/profil/spieler/28003

  https://www.transfermarkt.com/ronaldinho/profil/spieler/3373
# duplicate via another tab
https://www.transfermarkt.com/lionel-messi/transfers/spieler/28003
`

	t.Run("Should skip comments and blanks and drop duplicates", func(t *testing.T) {
		urls, err := ReadList(strings.NewReader(input))
		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://www.transfermarkt.com/lionel-messi/profil/spieler/28003",
			"https://www.transfermarkt.com/ronaldinho/profil/spieler/3373",
		}, urls)
	})

	t.Run("Should read from a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "players.txt")
		require.NoError(t, os.WriteFile(path, []byte(input), 0644))
		urls, err := ReadListFile(path)
		require.NoError(t, err)
		assert.Len(t, urls, 2)
	})

	t.Run("Should fail on a missing file", func(t *testing.T) {
		_, err := ReadListFile(filepath.Join(t.TempDir(), "nope.txt"))
		assert.Error(t, err)
	})
}

type staticFetcher struct {
	html string
	err  error
}

func (f staticFetcher) Fetch(_ context.Context, url string) (*core.FetchResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &core.FetchResult{URL: url, StatusCode: http.StatusOK, HTML: f.html}, nil
}

func TestDiscoverPlayers(t *testing.T) {
	squad := `<table class="items">
<tr><td><a href="/lionel-messi/profil/spieler/28003">Messi</a></td></tr>
<tr><td><a href="/lionel-messi/leistungsdaten/spieler/28003">stats</a></td></tr>
<tr><td><a href="https://www.transfermarkt.com/andres-iniesta/profil/spieler/7600#x">Iniesta</a></td></tr>
<tr><td><a href="https://www.transfermarkt.de/xavi/profil/spieler/7607">Xavi (other host)</a></td></tr>
<tr><td><a href="/fc-barcelona/startseite/verein/131">Club</a></td></tr>
<tr><td><a href="mailto:someone@example.com">mail</a></td></tr>
</table>`
	page := "https://www.transfermarkt.com/fc-barcelona/kader/verein/131/saison_id/2010"

	t.Run("Should return unique profile links on the same host", func(t *testing.T) {
		urls, err := DiscoverPlayers(context.Background(), page, staticFetcher{html: squad})
		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://www.transfermarkt.com/lionel-messi/profil/spieler/28003",
			"https://www.transfermarkt.com/andres-iniesta/profil/spieler/7600",
		}, urls)
	})

	t.Run("Should wrap fetch errors", func(t *testing.T) {
		_, err := DiscoverPlayers(context.Background(), page, staticFetcher{err: errors.New("boom")})
		assert.ErrorContains(t, err, "boom")
	})

	t.Run("Should reject a relative page URL", func(t *testing.T) {
		_, err := DiscoverPlayers(context.Background(), "/kader", staticFetcher{})
		assert.Error(t, err)
	})
}
