// Package cmd — batch command.
// Scrapes a player list with pacing between requests and exports every
// accepted player to a single collection file.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/careerladder/core"
	"github.com/gaurav-prasanna/careerladder/core/extract"
	"github.com/gaurav-prasanna/careerladder/core/output"
	"github.com/gaurav-prasanna/careerladder/core/pipeline"
	"github.com/gaurav-prasanna/careerladder/core/render"
	"github.com/gaurav-prasanna/careerladder/crawl"
)

// Flag variables.
var (
	flagFormat    string
	flagOutputDir string
	flagName      string
)

var batchCmd = &cobra.Command{
	Use:   "batch [list-file]",
	Short: "Scrape a list of players and export the collection",
	Long: `Batch reads player profile URLs (one per line, '#' starts a comment) and
scrapes them one after another. Players without a name or with fewer than
three clubs are dropped; the rest are exported in the chosen format.

Without a list file the configured players are used (by default a built-in
list of legends).

Examples:
  careerladder batch players.txt --format ts --output_dir ./src/data
  careerladder batch --format pdf --name legends`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVar(&flagFormat, "format", "", "Output format: json, ts, md or pdf (default from config: json)")
	batchCmd.Flags().StringVar(&flagOutputDir, "output_dir", "", "Output directory (default from config: current directory)")
	batchCmd.Flags().StringVar(&flagName, "name", "", "Output file name without extension (default from config: players)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Output.Format = flagFormat
	}
	if flags.Changed("output_dir") {
		cfg.Output.Dir = flagOutputDir
	}
	if flags.Changed("name") {
		cfg.Output.Name = flagName
	}

	renderer, err := render.ForFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	urls := cfg.Players
	if len(args) == 1 {
		fmt.Fprintf(os.Stdout, "Reading player URLs from %s...\n", args[0])
		urls, err = crawl.ReadListFile(args[0])
		if err != nil {
			return err
		}
	}
	if len(urls) == 0 {
		return fmt.Errorf("no player URLs to scrape")
	}

	writer, err := output.New(cfg.Output.Dir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	fetcher, cleanup, err := newFetcher(cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	p := pipeline.New(fetcher, extract.New(),
		pipeline.WithInterval(cfg.RequestInterval()),
		pipeline.WithLogger(logger),
	)

	fmt.Fprintf(os.Stdout, "Found %d players to scrape\n", len(urls))
	res, err := p.ScrapeAll(cmd.Context(), urls, &consoleReporter{out: os.Stdout, errOut: os.Stderr})
	if err != nil {
		return fmt.Errorf("batch interrupted after %d players: %w", len(res.Records)+len(res.Dropped), err)
	}

	data, err := renderer.Render(res.Records)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	path, err := writer.Write(cfg.Output.Name, data, renderer.Extension())
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "✓ Written: %s\n", path)
	return nil
}

// consoleReporter prints batch progress the way a person watching the run
// wants to see it.
type consoleReporter struct {
	out    io.Writer
	errOut io.Writer
}

func (r *consoleReporter) OnPlayerStart(url string, index int, total int) {
	fmt.Fprintf(r.out, "[%d/%d] Scraping %s\n", index+1, total, url)
}

func (r *consoleReporter) OnPlayerScraped(rec core.PlayerRecord) {
	fmt.Fprintf(r.out, "  ✓ %s: %d clubs, difficulty %d\n", rec.Canonical, len(rec.Timeline), rec.Puzzle.Difficulty)
}

func (r *consoleReporter) OnPlayerDropped(d pipeline.Drop) {
	fmt.Fprintf(r.errOut, "  ✗ Dropped (%s): %v\n", d.Reason, d.Err)
}

func (r *consoleReporter) OnBatchComplete(res pipeline.Result) {
	fmt.Fprintf(r.out, "\n%s\n", res.Summary())
	if len(res.Dropped) > 0 {
		fmt.Fprintln(r.errOut, dropTable(res.Dropped))
	}
}
