package cmd

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/careerladder/config"
	"github.com/gaurav-prasanna/careerladder/core"
	"github.com/gaurav-prasanna/careerladder/core/fetch"
	"github.com/gaurav-prasanna/careerladder/core/pipeline"
)

func sampleRecord() core.PlayerRecord {
	return core.PlayerRecord{
		ID:        "ronaldinho",
		Canonical: "Ronaldinho",
		Timeline: core.Timeline{
			{Club: "Grêmio", StartYear: 1998, EndYear: 2001},
			{Club: "Paris SG", StartYear: 2001, EndYear: 2003},
			{Club: "FC Barcelona", StartYear: 2003, EndYear: 2008},
			{Club: "AC Milan", StartYear: 2008, EndYear: core.Present},
		},
		Puzzle: core.PuzzleConfig{
			InitialClubs: [2]string{"Grêmio", "Paris SG"},
			ThirdClub:    "FC Barcelona",
			Difficulty:   2,
		},
	}
}

func TestRenderTable(t *testing.T) {
	t.Run("Should render headers and pad short rows", func(t *testing.T) {
		out := renderTable([]string{"A", "B"}, [][]string{{"1"}, {"2", "x"}}, []columnAlignment{alignRight})
		assert.Contains(t, out, "A")
		assert.Contains(t, out, "x")
	})

	t.Run("Should render nothing without headers", func(t *testing.T) {
		assert.Empty(t, renderTable(nil, [][]string{{"1"}}, nil))
	})
}

func TestCareerTableAndPuzzle(t *testing.T) {
	rec := sampleRecord()

	table := careerTable(rec.Timeline)
	assert.Contains(t, table, "FC Barcelona")
	assert.Contains(t, table, "2003-2008")
	assert.Contains(t, table, "2008-Present")

	puzzle := puzzleText(rec.Puzzle)
	assert.Contains(t, puzzle, "Grêmio → Paris SG")
	assert.Contains(t, puzzle, "Third club: FC Barcelona")
	assert.Contains(t, puzzle, "Difficulty: 2/10")
	assert.NotContains(t, puzzle, "Ronaldinho")
}

func TestConsoleReporter(t *testing.T) {
	var out, errOut bytes.Buffer
	r := &consoleReporter{out: &out, errOut: &errOut}

	drop := pipeline.Drop{URL: "https://x/p/profil/spieler/1", Reason: pipeline.ReasonInsufficient, Err: errors.New("not enough clubs")}
	r.OnPlayerStart("https://x/a", 0, 2)
	r.OnPlayerScraped(sampleRecord())
	r.OnPlayerDropped(drop)
	r.OnBatchComplete(pipeline.Result{Total: 2, Records: []core.PlayerRecord{sampleRecord()}, Dropped: []pipeline.Drop{drop}})

	assert.Contains(t, out.String(), "[1/2] Scraping https://x/a")
	assert.Contains(t, out.String(), "Ronaldinho: 4 clubs, difficulty 2")
	assert.Contains(t, out.String(), "scraped 1/2 players (1 dropped)")
	assert.Contains(t, errOut.String(), "insufficient_history")
	assert.Contains(t, errOut.String(), "https://x/p/profil/spieler/1")
}

func TestParseDay(t *testing.T) {
	now := time.Date(2026, 3, 4, 22, 0, 0, 0, time.FixedZone("X", -5*3600))

	t.Run("Should fall back to now in UTC", func(t *testing.T) {
		day, err := parseDay("", now)
		require.NoError(t, err)
		assert.Equal(t, now.UTC(), day)
	})

	t.Run("Should parse a date", func(t *testing.T) {
		day, err := parseDay("2026-01-02", now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC), day)
	})

	t.Run("Should reject other layouts", func(t *testing.T) {
		_, err := parseDay("02/01/2026", now)
		assert.Error(t, err)
	})
}

func TestPlayerOfDay(t *testing.T) {
	a, b := sampleRecord(), sampleRecord()
	b.ID = "other"
	players := []core.PlayerRecord{a, b}

	// 1970-01-02 is day 1 since the epoch.
	rec, ok := playerOfDay(players, time.Date(1970, 1, 2, 0, 0, 0, 0, time.UTC))
	require.True(t, ok)
	assert.Equal(t, "other", rec.ID)

	_, ok = playerOfDay(nil, time.Now())
	assert.False(t, ok)
}

func TestValidateURL(t *testing.T) {
	_, err := validateURL("https://www.transfermarkt.com/ronaldo/profil/spieler/3140")
	assert.NoError(t, err)

	for _, bad := range []string{"www.transfermarkt.com/x", "ftp://host/x", "/relative"} {
		_, err := validateURL(bad)
		assert.Error(t, err, bad)
	}
}

func TestResolveConfigPath(t *testing.T) {
	t.Chdir(t.TempDir())

	path, err := resolveConfigPath("")
	require.NoError(t, err)
	assert.Empty(t, path)

	path, err = resolveConfigPath("custom.toml")
	require.NoError(t, err)
	assert.Equal(t, "custom.toml", path)
}

func TestNewFetcher(t *testing.T) {
	log := slog.New(slog.DiscardHandler)

	t.Run("Should build a plain HTTP fetcher", func(t *testing.T) {
		c := config.Default()
		f, cleanup, err := newFetcher(&c, log)
		require.NoError(t, err)
		defer cleanup()
		assert.IsType(t, &fetch.HTTPFetcher{}, f)
	})

	t.Run("Should wrap the fetcher with the Redis cache", func(t *testing.T) {
		mr := miniredis.RunT(t)
		c := config.Default()
		c.Cache.RedisURL = "redis://" + mr.Addr()

		f, cleanup, err := newFetcher(&c, log)
		require.NoError(t, err)
		defer cleanup()
		assert.IsType(t, &fetch.CachedFetcher{}, f)
	})

	t.Run("Should fail when Redis is unreachable", func(t *testing.T) {
		c := config.Default()
		c.Cache.RedisURL = "redis://127.0.0.1:1"

		_, _, err := newFetcher(&c, log)
		assert.ErrorContains(t, err, "connecting page cache")
	})
}

func TestConfigSampleIgnoresBrokenConfig(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile(defaultConfigFile, []byte("[fetch\ntimeout_seconds = \n"), 0o644))

	_, err := config.Load(defaultConfigFile, "")
	require.Error(t, err)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"config", "sample"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "[fetch]")
	assert.Contains(t, out.String(), "timeout_seconds = 30")
}
