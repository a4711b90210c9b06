package pipeline

import (
	"errors"
	"fmt"

	"github.com/gaurav-prasanna/careerladder/core"
	"github.com/gaurav-prasanna/careerladder/core/player"
)

// DropReason classifies why a player was left out of a batch.
type DropReason string

const (
	ReasonEmpty        DropReason = "empty_extraction"
	ReasonInsufficient DropReason = "insufficient_history"
	ReasonFailed       DropReason = "collaborator_failure"
)

// Drop records a player that did not make it into the batch.
type Drop struct {
	URL    string
	Reason DropReason
	Err    error
}

// Result is the outcome of a batch.
type Result struct {
	Total   int
	Records []core.PlayerRecord
	Dropped []Drop
}

// Summary returns a one-line description, e.g. "scraped 8/10 players (2 dropped)".
func (r Result) Summary() string {
	return fmt.Sprintf("scraped %d/%d players (%d dropped)", len(r.Records), r.Total, len(r.Dropped))
}

// Reporter receives lifecycle callbacks from ScrapeAll.
type Reporter interface {
	OnPlayerStart(url string, index int, total int)
	OnPlayerScraped(rec core.PlayerRecord)
	OnPlayerDropped(drop Drop)
	OnBatchComplete(res Result)
}

type nopReporter struct{}

func (nopReporter) OnPlayerStart(string, int, int)    {}
func (nopReporter) OnPlayerScraped(core.PlayerRecord) {}
func (nopReporter) OnPlayerDropped(Drop)              {}
func (nopReporter) OnBatchComplete(Result)            {}

func reasonOf(err error) DropReason {
	switch {
	case errors.Is(err, player.ErrEmptyExtraction):
		return ReasonEmpty
	case errors.Is(err, player.ErrInsufficientHistory):
		return ReasonInsufficient
	default:
		return ReasonFailed
	}
}
