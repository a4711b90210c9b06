// Package cmd — scrape command.
// Runs one profile URL through the pipeline: fetch → extract → normalize →
// gate → derive, then prints the career and its puzzle.
package cmd

import (
	"fmt"
	"net/url"
	"os"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/careerladder/core"
	"github.com/gaurav-prasanna/careerladder/core/extract"
	"github.com/gaurav-prasanna/careerladder/core/pipeline"
	"github.com/gaurav-prasanna/careerladder/core/render"
	"github.com/gaurav-prasanna/careerladder/crawl"
)

var flagScrapeJSON bool

var scrapeCmd = &cobra.Command{
	Use:   "scrape <profile-url>",
	Short: "Scrape one player and print their career and puzzle",
	Long: `Scrape fetches a Transfermarkt player page, builds the club-by-club career
timeline and prints it together with the derived puzzle.

Any player tab (transfers, stats, ...) is accepted and rewritten to the
profile page.

Examples:
  careerladder scrape https://www.transfermarkt.com/lionel-messi/profil/spieler/28003
  careerladder scrape https://www.transfermarkt.com/ronaldo/transfers/spieler/3140 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runScrape,
}

func init() {
	rootCmd.AddCommand(scrapeCmd)
	scrapeCmd.Flags().BoolVar(&flagScrapeJSON, "json", false, "Print the player record as JSON")
}

func runScrape(cmd *cobra.Command, args []string) error {
	rawURL, err := validateURL(args[0])
	if err != nil {
		return err
	}
	profileURL := crawl.ProfileURL(rawURL)

	fetcher, cleanup, err := newFetcher(cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	p := pipeline.New(fetcher, extract.New(), pipeline.WithLogger(logger))
	rec, err := p.Scrape(cmd.Context(), profileURL)
	if err != nil {
		return fmt.Errorf("scraping %s: %w", profileURL, err)
	}

	if flagScrapeJSON {
		data, err := render.NewJSONRenderer().Render([]core.PlayerRecord{rec})
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
		fmt.Fprintln(os.Stdout, string(data))
		return nil
	}

	fmt.Fprintf(os.Stdout, "%s (%s)\n", rec.Canonical, rec.ID)
	fmt.Fprintln(os.Stdout, careerTable(rec.Timeline))
	fmt.Fprint(os.Stdout, puzzleText(rec.Puzzle))
	return nil
}

// validateURL rejects anything that is not an absolute http(s) URL.
func validateURL(rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return "", fmt.Errorf("invalid URL: %s (must include scheme, e.g. https://www.transfermarkt.com/...)", rawURL)
	}
	return rawURL, nil
}
