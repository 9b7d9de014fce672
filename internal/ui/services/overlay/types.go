package overlay

import (
	"context"

	"moviezone/internal/domain"
)

// MaxVideos caps how many trailers the overlay lists
const MaxVideos = 2

// DetailFunc performs the detail call for one item
type DetailFunc func(ctx context.Context) (domain.Detail, error)

// DetailMsg carries a settled detail fetch back into the update loop
type DetailMsg struct {
	Seq    uint64
	ID     int
	Detail domain.Detail
	Err    error
}

// Outcome describes what Settle did with a detail response
type Outcome int

const (
	// OutcomeOpened means the overlay now shows the detail
	OutcomeOpened Outcome = iota
	// OutcomeStale means the user moved on and the response was dropped
	OutcomeStale
	// OutcomeFailed means the fetch failed and the overlay stays closed
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOpened:
		return "opened"
	case OutcomeStale:
		return "stale"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}
