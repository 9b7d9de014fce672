package query

import (
	"fmt"

	"moviezone/internal/domain"
)

// Service decides which fetch drives the visible result list.
//
// Category clicks are sent through the search endpoint with the category
// label as the term. Only the initial load and empty submissions use the
// listing endpoint.
type Service struct {
	state State
}

// NewService creates a coordinator whose listing fetches use the given category
func NewService(listing domain.Category) *Service {
	return &Service{
		state: State{ActiveCategory: listing},
	}
}

// State returns a copy of the current query state
func (s *Service) State() State {
	return s.state
}

// Text returns the current search text
func (s *Service) Text() string {
	return s.state.Text
}

// SetText stores the search text without issuing a fetch
func (s *Service) SetText(text string) {
	s.state.Text = text
}

// Submit decides the request for an explicit search submission.
// Empty text falls back to the current listing.
func (s *Service) Submit() Request {
	if s.state.Text == "" {
		return s.InitialLoad()
	}
	return Request{Kind: KindSearch, Term: s.state.Text}
}

// Browse selects a category by its display label. The label becomes the
// search text, which keeps the category highlight in sync, and is used as
// the search term.
func (s *Service) Browse(label string) (Request, error) {
	cat, err := domain.CategoryByLabel(label)
	if err != nil {
		return Request{}, fmt.Errorf("browse %q: %w", label, err)
	}
	s.state.Text = cat.Label
	return Request{Kind: KindSearch, Term: cat.Label}, nil
}

// InitialLoad returns the listing request for the active category
func (s *Service) InitialLoad() Request {
	return Request{Kind: KindListing, Category: s.state.ActiveCategory}
}

// IsActive reports whether a category button should be highlighted
func (s *Service) IsActive(cat domain.Category) bool {
	return s.state.Text == cat.Label
}
