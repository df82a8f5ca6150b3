package overlay

import "time"

// DefaultGuardWindow matches the close-animation duration of the dialogs:
// once a close fires, further close attempts are ignored until the overlay
// has had time to actually unmount.
const DefaultGuardWindow = 200 * time.Millisecond

// Guard suppresses double-invocation of a close callback when a click and
// a keypress (or a rapid double-click) land in the same window. The first
// Allow reports true and arms the guard; later calls report false until
// the window elapses.
type Guard struct {
	window time.Duration
	until  time.Time
	now    func() time.Time
}

// NewGuard creates a guard with the given window. A zero or negative
// window falls back to DefaultGuardWindow.
func NewGuard(window time.Duration) *Guard {
	if window <= 0 {
		window = DefaultGuardWindow
	}
	return &Guard{window: window, now: time.Now}
}

// Allow reports whether a close may proceed, arming the guard if so.
func (g *Guard) Allow() bool {
	t := g.now()
	if t.Before(g.until) {
		return false
	}
	g.until = t.Add(g.window)
	return true
}
