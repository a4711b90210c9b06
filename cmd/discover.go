package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/careerladder/crawl"
)

var discoverCmd = &cobra.Command{
	Use:   "discover <squad-url>",
	Short: "List the player profile URLs linked from a squad page",
	Long: `Discover fetches a squad or list page and prints every player profile URL
linked from it, one per line. The output is a valid list file for batch.

Examples:
  careerladder discover https://www.transfermarkt.com/fc-barcelona/kader/verein/131/saison_id/2010 > barca.txt
  careerladder batch barca.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runDiscover,
}

func init() {
	rootCmd.AddCommand(discoverCmd)
}

func runDiscover(cmd *cobra.Command, args []string) error {
	pageURL, err := validateURL(args[0])
	if err != nil {
		return err
	}

	fetcher, cleanup, err := newFetcher(cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	fmt.Fprintf(os.Stderr, "Discovering players from %s...\n", pageURL)
	urls, err := crawl.DiscoverPlayers(cmd.Context(), pageURL, fetcher)
	if err != nil {
		return fmt.Errorf("discovering players: %w", err)
	}

	fmt.Fprintf(os.Stdout, "# %d players from %s\n", len(urls), pageURL)
	for _, u := range urls {
		fmt.Fprintln(os.Stdout, u)
	}
	return nil
}
