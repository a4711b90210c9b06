package pipeline

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/careerladder/core"
	"github.com/gaurav-prasanna/careerladder/core/cache"
	"github.com/gaurav-prasanna/careerladder/core/extract"
	"github.com/gaurav-prasanna/careerladder/core/fetch"
	"github.com/gaurav-prasanna/careerladder/core/player"
)

type mapFetcher map[string]string

func (m mapFetcher) Fetch(ctx context.Context, url string) (*core.FetchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	html, ok := m[url]
	if !ok {
		return nil, fmt.Errorf("unexpected status 404 for %s", url)
	}
	return &core.FetchResult{URL: url, StatusCode: http.StatusOK, HTML: html}, nil
}

// profilePage renders a minimal grid-layout profile; clubs alternate with
// their dates.
func profilePage(name string, clubsAndDates ...string) string {
	var b strings.Builder
	b.WriteString(`<h1 class="data-header__headline-wrapper">` + name + `</h1><div class="box transferhistorie">`)
	for i := 0; i+1 < len(clubsAndDates); i += 2 {
		fmt.Fprintf(&b, `<div class="grid tm-player-transfer-history-grid">
<div class="tm-player-transfer-history-grid__date">%s</div>
<div class="tm-player-transfer-history-grid__new-club"><img class="tiny_wappen" alt="%s"></div>
</div>`, clubsAndDates[i+1], clubsAndDates[i])
	}
	b.WriteString(`</div>`)
	return b.String()
}

// flakyFetcher serves a consent wall on the first call and the real page after.
type flakyFetcher struct {
	page  string
	calls int
}

func (f *flakyFetcher) Fetch(_ context.Context, url string) (*core.FetchResult, error) {
	f.calls++
	html := f.page
	if f.calls == 1 {
		html = `<html><body>consent wall</body></html>`
	}
	return &core.FetchResult{URL: url, StatusCode: http.StatusOK, HTML: html}, nil
}

type recordingReporter struct {
	started  []string
	scraped  []string
	dropped  []DropReason
	complete bool
}

func (r *recordingReporter) OnPlayerStart(url string, _ int, _ int) { r.started = append(r.started, url) }
func (r *recordingReporter) OnPlayerScraped(rec core.PlayerRecord)  { r.scraped = append(r.scraped, rec.ID) }
func (r *recordingReporter) OnPlayerDropped(d Drop)                 { r.dropped = append(r.dropped, d.Reason) }
func (r *recordingReporter) OnBatchComplete(Result)                 { r.complete = true }

var pages = mapFetcher{
	"https://tm.test/example/profil/spieler/1": profilePage("Example Player",
		"ClubA", "Jan 2000", "ClubB", "Jun 2003", "ClubC", "2006", "ClubD", "Aug 2010", "ClubE", "2015"),
	"https://tm.test/short/profil/spieler/2": profilePage("Short Career",
		"ClubA", "2000", "ClubB", "2004"),
	"https://tm.test/empty/profil/spieler/3": `<html><body>Not found</body></html>`,
}

func TestScrape(t *testing.T) {
	p := New(pages, extract.New(), WithInterval(0))

	t.Run("Should produce the documented end-to-end record", func(t *testing.T) {
		rec, err := p.Scrape(context.Background(), "https://tm.test/example/profil/spieler/1")
		require.NoError(t, err)

		assert.Equal(t, "exampleplayer", rec.ID)
		assert.Equal(t, []string{"ClubA", "ClubB", "ClubC", "ClubD", "ClubE"}, rec.Timeline.Clubs())
		assert.Equal(t, []string{"2000-2003", "2003-2006", "2006-2010", "2010-2015", "2015-Present"}, rec.Timeline.Spans())
		assert.Equal(t, core.PuzzleConfig{
			InitialClubs: [2]string{"ClubB", "ClubD"},
			ThirdClub:    "ClubC",
			Difficulty:   3,
		}, rec.Puzzle)
	})

	t.Run("Should wrap fetch failures", func(t *testing.T) {
		_, err := p.Scrape(context.Background(), "https://tm.test/missing")
		require.Error(t, err)
		assert.True(t, strings.HasPrefix(err.Error(), "fetch:"))
	})
}

func TestScrapeEvictsPagesWithoutProfile(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	url := "https://tm.test/example/profil/spieler/1"
	inner := &flakyFetcher{page: pages[url]}
	cached := fetch.NewCached(inner, cache.NewFromClient(client), fetch.KindHTTP, time.Hour, nil)
	p := New(cached, extract.New(), WithInterval(0))

	_, err := p.Scrape(ctx, url)
	require.ErrorIs(t, err, player.ErrEmptyExtraction)
	assert.False(t, mr.Exists("careerladder:page:http:"+url))

	rec, err := p.Scrape(ctx, url)
	require.NoError(t, err)
	assert.Equal(t, "exampleplayer", rec.ID)
	assert.Equal(t, 2, inner.calls)

	// A good page stays cached.
	_, err = p.Scrape(ctx, url)
	require.NoError(t, err)
	assert.Equal(t, 2, inner.calls)
}

func TestScrapeAll(t *testing.T) {
	urls := []string{
		"https://tm.test/example/profil/spieler/1",
		"https://tm.test/short/profil/spieler/2",
		"https://tm.test/empty/profil/spieler/3",
		"https://tm.test/missing",
	}

	t.Run("Should keep good players and account for dropped ones", func(t *testing.T) {
		rep := &recordingReporter{}
		res, err := New(pages, extract.New(), WithInterval(0)).ScrapeAll(context.Background(), urls, rep)
		require.NoError(t, err)

		assert.Len(t, res.Records, 1)
		assert.Equal(t, 4, res.Total)
		require.Len(t, res.Dropped, 3)
		assert.Equal(t, []DropReason{ReasonInsufficient, ReasonEmpty, ReasonFailed}, rep.dropped)
		assert.Equal(t, urls, rep.started)
		assert.Equal(t, []string{"exampleplayer"}, rep.scraped)
		assert.True(t, rep.complete)
		assert.Equal(t, "scraped 1/4 players (3 dropped)", res.Summary())
	})

	t.Run("Should work without a reporter", func(t *testing.T) {
		res, err := New(pages, extract.New(), WithInterval(0)).ScrapeAll(context.Background(), urls[:1], nil)
		require.NoError(t, err)
		assert.Len(t, res.Records, 1)
	})

	t.Run("Should stop on context cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := New(pages, extract.New(), WithInterval(0)).ScrapeAll(ctx, urls, nil)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("Should pace requests", func(t *testing.T) {
		p := New(pages, extract.New(), WithInterval(20*time.Millisecond))
		start := time.Now()
		_, err := p.ScrapeAll(context.Background(), urls[:3], nil)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)
	})
}
