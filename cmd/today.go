// Package cmd — today command.
// Picks the daily player from an exported JSON collection using the same
// day-based rotation the game uses.
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/careerladder/core"
	"github.com/gaurav-prasanna/careerladder/core/render"
	"github.com/gaurav-prasanna/careerladder/core/rotation"
	"github.com/gaurav-prasanna/careerladder/core/score"
)

const dateLayout = "2006-01-02"

// Flag variables.
var (
	flagDate   string
	flagLaunch string
	flagReveal bool

	flagShare    bool
	flagGuesses  int
	flagRevealed int
	flagSeconds  int
	flagTimer    bool
)

var todayCmd = &cobra.Command{
	Use:   "today <players.json>",
	Short: "Show the puzzle of the day from an exported collection",
	Long: `Today loads a collection written by "batch --format json" and prints the
puzzle for the given day (default: today, UTC).

Examples:
  careerladder today players.json
  careerladder today players.json --date 2026-01-01 --reveal
  careerladder today players.json --launch 2025-11-01
  careerladder today players.json --launch 2025-11-01 --share --guesses 2 --revealed 3 --seconds 75`,
	Args: cobra.ExactArgs(1),
	RunE: runToday,
}

func init() {
	rootCmd.AddCommand(todayCmd)

	todayCmd.Flags().StringVar(&flagDate, "date", "", "Day to show, YYYY-MM-DD (default: today, UTC)")
	todayCmd.Flags().StringVar(&flagLaunch, "launch", "", "Launch day, YYYY-MM-DD; prints the puzzle number when set")
	todayCmd.Flags().BoolVar(&flagReveal, "reveal", false, "Also print the answer and the full career")

	todayCmd.Flags().BoolVar(&flagShare, "share", false, "Print share text for a solve of this puzzle (requires --launch)")
	todayCmd.Flags().IntVar(&flagGuesses, "guesses", 0, "Guesses made (with --share)")
	todayCmd.Flags().IntVar(&flagRevealed, "revealed", 0, "Clubs revealed while solving (with --share)")
	todayCmd.Flags().IntVar(&flagSeconds, "seconds", 0, "Seconds taken (with --share)")
	todayCmd.Flags().BoolVar(&flagTimer, "timer", false, "The timer was used (with --share)")
}

func runToday(_ *cobra.Command, args []string) error {
	day, err := parseDay(flagDate, time.Now())
	if err != nil {
		return err
	}
	if flagShare && flagLaunch == "" {
		return fmt.Errorf("--share needs --launch to number the puzzle")
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading collection: %w", err)
	}
	players, err := render.DecodeJSON(data)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", args[0], err)
	}

	rec, ok := playerOfDay(players, day)
	if !ok {
		return fmt.Errorf("%s holds no players", args[0])
	}

	header := fmt.Sprintf("Puzzle for %s", day.Format(dateLayout))
	number := 0
	if flagLaunch != "" {
		launch, err := parseDay(flagLaunch, day)
		if err != nil {
			return err
		}
		number = rotation.PuzzleNumber(launch, day)
		header = fmt.Sprintf("Puzzle #%d (%s)", number, day.Format(dateLayout))
	}

	fmt.Fprintln(os.Stdout, header)
	fmt.Fprint(os.Stdout, puzzleText(rec.Puzzle))
	if flagReveal {
		fmt.Fprintf(os.Stdout, "\nAnswer: %s\n", rec.Canonical)
		fmt.Fprintln(os.Stdout, careerTable(rec.Timeline))
	}
	if flagShare {
		solve := score.Solve{
			PuzzleNumber:  number,
			Guesses:       flagGuesses,
			ClubsRevealed: flagRevealed,
			Seconds:       flagSeconds,
			TimerUsed:     flagTimer,
		}
		fmt.Fprintf(os.Stdout, "\n%s\n", solve.ShareText())
	}
	return nil
}

// playerOfDay returns the collection entry selected for day.
func playerOfDay(players []core.PlayerRecord, day time.Time) (core.PlayerRecord, bool) {
	i := rotation.Index(len(players), day)
	if i < 0 {
		return core.PlayerRecord{}, false
	}
	return players[i], true
}

// parseDay parses a YYYY-MM-DD day in UTC; an empty value means fallback.
func parseDay(value string, fallback time.Time) (time.Time, error) {
	if value == "" {
		return fallback.UTC(), nil
	}
	day, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", value)
	}
	return day, nil
}
