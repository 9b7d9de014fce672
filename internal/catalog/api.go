package catalog

import (
	"context"

	"moviezone/internal/domain"
)

// Catalog is the read-only movie catalog consumed by the UI and the CLI
type Catalog interface {
	// List returns the listing for a category key ("trending" or a genre key)
	List(ctx context.Context, categoryKey string) ([]domain.ResultItem, error)

	// Search returns items matching a free-text query
	Search(ctx context.Context, query string) ([]domain.ResultItem, error)

	// Detail returns the extended record for one movie
	Detail(ctx context.Context, id int) (domain.Detail, error)
}

var _ Catalog = (*Client)(nil)
