package overlay

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"moviezone/internal/domain"
)

// Service owns the single open detail and the scroll lock that goes with it
type Service struct {
	lock    *ScrollLock
	release func()

	selected *domain.Detail

	seq        uint64
	pendingID  int
	hasPending bool

	timeout time.Duration
	logger  zerolog.Logger
}

// NewService creates an overlay manager that holds lock while a detail is open
func NewService(lock *ScrollLock, timeout time.Duration, logger zerolog.Logger) *Service {
	return &Service{
		lock:    lock,
		timeout: timeout,
		logger:  logger,
	}
}

// Open closes whatever is open and starts fetching the detail for id.
// The overlay appears when the returned command's DetailMsg is settled.
func (s *Service) Open(id int, fn DetailFunc) tea.Cmd {
	s.Close()

	s.seq++
	s.pendingID = id
	s.hasPending = true

	seq := s.seq
	timeout := s.timeout
	return func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		detail, err := fn(ctx)
		return DetailMsg{Seq: seq, ID: id, Detail: detail, Err: err}
	}
}

// Settle applies a finished detail fetch
func (s *Service) Settle(msg DetailMsg) Outcome {
	if !s.hasPending || msg.Seq != s.seq {
		s.logger.Debug().Int("movie", msg.ID).Uint64("seq", msg.Seq).Msg("Discarding stale detail")
		return OutcomeStale
	}
	s.hasPending = false

	if msg.Err != nil {
		s.logger.Error().Err(msg.Err).Int("movie", msg.ID).Msg("Detail fetch failed")
		return OutcomeFailed
	}

	detail := msg.Detail
	s.selected = &detail
	s.release = s.lock.acquire()
	s.logger.Debug().Int("movie", msg.ID).Msg("Overlay opened")
	return OutcomeOpened
}

// Close drops the open detail, abandons any pending fetch and releases the
// scroll lock. Closing when nothing is open does nothing.
func (s *Service) Close() {
	if s.hasPending {
		s.hasPending = false
		s.seq++
	}
	if s.selected == nil {
		return
	}
	s.selected = nil
	if s.release != nil {
		s.release()
		s.release = nil
	}
	s.logger.Debug().Msg("Overlay closed")
}

// IsOpen reports whether a detail is shown
func (s *Service) IsOpen() bool {
	return s.selected != nil
}

// Selected returns the open detail
func (s *Service) Selected() (domain.Detail, bool) {
	if s.selected == nil {
		return domain.Detail{}, false
	}
	return *s.selected, true
}

// Pending returns the id whose detail is being fetched
func (s *Service) Pending() (int, bool) {
	return s.pendingID, s.hasPending
}

// Videos returns the playable videos of the open detail
func (s *Service) Videos() []domain.Video {
	if s.selected == nil {
		return nil
	}
	return PlayableVideos(s.selected.Videos)
}

// PlayableVideos keeps YouTube videos in their original order, at most MaxVideos of them
func PlayableVideos(videos []domain.Video) []domain.Video {
	out := make([]domain.Video, 0, MaxVideos)
	for _, v := range videos {
		if v.Site != domain.YouTubeSite {
			continue
		}
		out = append(out, v)
		if len(out) == MaxVideos {
			break
		}
	}
	return out
}
