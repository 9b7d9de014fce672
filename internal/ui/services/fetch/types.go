package fetch

import (
	"context"

	"moviezone/internal/domain"
)

// SkeletonTiles is how many placeholder tiles the grid shows while loading
const SkeletonTiles = 12

// FetchFunc performs one listing or search call against the catalog
type FetchFunc func(ctx context.Context) ([]domain.ResultItem, error)

// ResultMsg carries a settled fetch back into the update loop
type ResultMsg struct {
	ID    uint64
	Items []domain.ResultItem
	Err   error
}

// Outcome describes what Settle did with a result
type Outcome int

const (
	// OutcomeApplied means the result list was replaced
	OutcomeApplied Outcome = iota
	// OutcomeStale means a newer request exists and the result was dropped
	OutcomeStale
	// OutcomeFailed means the latest request failed and the list was kept
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeApplied:
		return "applied"
	case OutcomeStale:
		return "stale"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}
