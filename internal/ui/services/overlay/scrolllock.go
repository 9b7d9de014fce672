package overlay

// ScrollLock stops the result grid from moving while the overlay is up.
// Only the overlay Service acquires it; everyone else just reads Locked.
type ScrollLock struct {
	holders int
}

// Locked reports whether any holder still has the lock
func (l *ScrollLock) Locked() bool {
	return l.holders > 0
}

// acquire takes the lock and returns its release. Calling the release more
// than once only releases once.
func (l *ScrollLock) acquire() func() {
	l.holders++
	released := false
	return func() {
		if released {
			return
		}
		released = true
		l.holders--
	}
}
