package fetch

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"moviezone/internal/domain"
)

// Service sequences result-list fetches so that only the most recently
// issued request may replace the visible list.
type Service struct {
	latest      uint64
	outstanding int
	timeout     time.Duration

	results []domain.ResultItem
	lastErr error

	logger zerolog.Logger
}

// NewService creates a sequencer. A zero timeout disables the per-request deadline.
func NewService(timeout time.Duration, logger zerolog.Logger) *Service {
	return &Service{
		timeout: timeout,
		results: []domain.ResultItem{},
		logger:  logger,
	}
}

// Next issues a new request id. Every id issued before it becomes stale.
func (s *Service) Next() uint64 {
	s.latest++
	return s.latest
}

// Latest returns the most recently issued request id
func (s *Service) Latest() uint64 {
	return s.latest
}

// Run marks the request outstanding and returns a command that performs it.
// The command always yields a ResultMsg, including on timeout.
func (s *Service) Run(id uint64, fn FetchFunc) tea.Cmd {
	s.outstanding++
	timeout := s.timeout

	return func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		items, err := fn(ctx)
		return ResultMsg{ID: id, Items: items, Err: err}
	}
}

// Issue is Next followed by Run
func (s *Service) Issue(fn FetchFunc) (uint64, tea.Cmd) {
	id := s.Next()
	return id, s.Run(id, fn)
}

// Settle applies a finished request. It must be called exactly once per Run.
func (s *Service) Settle(msg ResultMsg) Outcome {
	if s.outstanding > 0 {
		s.outstanding--
	}

	if msg.ID != s.latest {
		s.logger.Debug().
			Uint64("request", msg.ID).
			Uint64("latest", s.latest).
			Msg("Discarding stale result")
		return OutcomeStale
	}

	if msg.Err != nil {
		s.lastErr = msg.Err
		s.logger.Error().Err(msg.Err).Uint64("request", msg.ID).Msg("Fetch failed")
		return OutcomeFailed
	}

	s.lastErr = nil
	s.results = make([]domain.ResultItem, len(msg.Items))
	copy(s.results, msg.Items)
	s.logger.Debug().Uint64("request", msg.ID).Int("count", len(s.results)).Msg("Results applied")
	return OutcomeApplied
}

// Loading reports whether any fetch is still outstanding
func (s *Service) Loading() bool {
	return s.outstanding > 0
}

// Results returns the visible result list
func (s *Service) Results() []domain.ResultItem {
	return s.results
}

// Err returns the failure of the latest request, if it failed
func (s *Service) Err() error {
	return s.lastErr
}
