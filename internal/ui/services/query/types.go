package query

import "moviezone/internal/domain"

// Kind identifies which catalog endpoint a request targets
type Kind int

const (
	// KindListing uses the category-listing endpoint
	KindListing Kind = iota
	// KindSearch uses the free-text search endpoint
	KindSearch
)

func (k Kind) String() string {
	switch k {
	case KindListing:
		return "listing"
	case KindSearch:
		return "search"
	default:
		return "unknown"
	}
}

// Request describes the fetch the coordinator decided on
type Request struct {
	Kind     Kind
	Term     string          // search term, KindSearch only
	Category domain.Category // listing category, KindListing only
}

// State is the coordinator's view of the query
type State struct {
	Text           string
	ActiveCategory domain.Category // category used by listing fetches
}
