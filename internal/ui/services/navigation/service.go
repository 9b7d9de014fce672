package navigation

// Service moves the cursor over the result grid. While the lock is held
// the grid does not move at all.
type Service struct {
	state *State
	lock  Locker
}

// NewService creates a new navigation service
func NewService(lock Locker) *Service {
	return &Service{
		state: &State{
			Columns:      1,
			ViewportRows: 1, // updated on first resize
		},
		lock: lock,
	}
}

// State returns a copy of the navigation state
func (s *Service) State() State {
	return *s.state
}

// Cursor returns current cursor position
func (s *Service) Cursor() int {
	return s.state.Cursor
}

// ViewportOffset returns the first visible row
func (s *Service) ViewportOffset() int {
	return s.state.ViewportOffset
}

// SetLayout updates the grid shape after a resize
func (s *Service) SetLayout(columns, rows int) {
	if columns < 1 {
		columns = 1
	}
	if rows < 1 {
		rows = 1
	}
	s.state.Columns = columns
	s.state.ViewportRows = rows
	s.ensureVisible()
}

// SetCount updates the number of tiles, keeping the cursor in range
func (s *Service) SetCount(count int) {
	if count < 0 {
		count = 0
	}
	s.state.Count = count
	s.state.Cursor = s.clampIndex(s.state.Cursor)
	s.ensureVisible()
}

// Reset moves back to the first tile, used when a new result list arrives
func (s *Service) Reset(count int) {
	s.state.Cursor = 0
	s.state.ViewportOffset = 0
	s.SetCount(count)
}

// Navigate handles navigation in a direction. It reports whether the cursor moved.
func (s *Service) Navigate(direction Direction) bool {
	if s.lock != nil && s.lock.Locked() {
		return false
	}
	if s.state.Count == 0 {
		return false
	}

	oldCursor := s.state.Cursor
	cols := s.state.Columns

	switch direction {
	case DirectionUp:
		if s.state.Cursor-cols >= 0 {
			s.state.Cursor -= cols
		}
	case DirectionDown:
		if s.state.Cursor+cols < s.state.Count {
			s.state.Cursor += cols
		}
	case DirectionLeft:
		if s.state.Cursor > 0 {
			s.state.Cursor--
		}
	case DirectionRight:
		if s.state.Cursor < s.state.Count-1 {
			s.state.Cursor++
		}
	case DirectionPageUp:
		s.state.Cursor = s.clampIndex(s.state.Cursor - cols*s.state.ViewportRows)
	case DirectionPageDown:
		s.state.Cursor = s.clampIndex(s.state.Cursor + cols*s.state.ViewportRows)
	case DirectionHome:
		s.state.Cursor = 0
	case DirectionEnd:
		s.state.Cursor = s.state.Count - 1
	}

	s.ensureVisible()
	return oldCursor != s.state.Cursor
}

// Helper methods
func (s *Service) clampIndex(index int) int {
	if index < 0 || s.state.Count == 0 {
		return 0
	}
	if index > s.state.Count-1 {
		return s.state.Count - 1
	}
	return index
}

func (s *Service) ensureVisible() {
	row := s.state.Cursor / s.state.Columns
	if row < s.state.ViewportOffset {
		s.state.ViewportOffset = row
	} else if row >= s.state.ViewportOffset+s.state.ViewportRows {
		s.state.ViewportOffset = row - s.state.ViewportRows + 1
	}
}
