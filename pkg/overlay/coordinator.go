// Package overlay coordinates stacked modal surfaces: which one owns
// keyboard focus, which one responds to Escape and backdrop clicks, and
// whether the underlying panels are allowed to scroll while anything is
// open. The coordinator holds no UI types of its own; dialogs hand it
// callbacks and capability handles and it arbitrates between them.
package overlay

// FocusTrap keeps input focus confined to one overlay while it is open.
// The overlay owns the trap; the coordinator only toggles it.
type FocusTrap interface {
	Activate()
	Deactivate()
}

// ScrollLocker suppresses scrolling of the underlying page/panels.
// Lock is called on the 0->1 transition of open overlays and should
// capture the current scroll position; Unlock is called on 1->0 and
// should restore it.
type ScrollLocker interface {
	Lock()
	Unlock()
}

// Entry represents one open overlay on the stack.
type Entry struct {
	ID              string
	OnClose         func()
	CloseOnEscape   bool
	CloseOnBackdrop bool
	Trap            FocusTrap
}

// Logger receives diagnostic messages from the coordinator. Kept as a
// single-method interface so callers can plug in whatever they log with.
type Logger interface {
	Debugf(format string, args ...any)
}

const (
	defaultBaseOrder = 100
	defaultOrderStep = 10
)

// Coordinator is the single source of truth for the overlay stack and the
// page scroll lock. All methods must be called from the UI event loop;
// there is no internal locking because there is no concurrent mutation to
// guard against.
type Coordinator struct {
	entries   []Entry
	lockCount int
	locker    ScrollLocker
	announcer Announcer
	log       Logger

	baseOrder int
	orderStep int
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithAnnouncer wires an assistive-technology announcer. Dialog opens are
// announced politely; nil disables announcements.
func WithAnnouncer(a Announcer) Option {
	return func(c *Coordinator) { c.announcer = a }
}

// WithLogger wires a diagnostic logger.
func WithLogger(l Logger) Option {
	return func(c *Coordinator) { c.log = l }
}

// WithStackingOrder overrides the base order and per-level increment used
// when assigning stacking orders to pushed entries.
func WithStackingOrder(base, step int) Option {
	return func(c *Coordinator) {
		c.baseOrder = base
		c.orderStep = step
	}
}

// New creates a coordinator. locker may be nil if the caller has no page
// to lock (tests, headless use).
func New(locker ScrollLocker, opts ...Option) *Coordinator {
	c := &Coordinator{
		locker:    locker,
		baseOrder: defaultBaseOrder,
		orderStep: defaultOrderStep,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Push appends entry to the stack and makes it topmost: the previous
// topmost entry's focus trap is deactivated first, so at most one trap is
// ever active. Returns the stacking order assigned to the entry
// (base + depth*step at the time of the push), strictly above every
// previously open overlay.
//
// Duplicate ids are caller error; they are logged but not rejected.
func (c *Coordinator) Push(entry Entry) int {
	if c.log != nil {
		for _, e := range c.entries {
			if e.ID == entry.ID {
				c.log.Debugf("overlay: duplicate id %q pushed", entry.ID)
				break
			}
		}
	}

	if top, ok := c.Topmost(); ok && top.Trap != nil {
		top.Trap.Deactivate()
	}

	order := c.baseOrder + len(c.entries)*c.orderStep
	c.entries = append(c.entries, entry)

	if entry.Trap != nil {
		entry.Trap.Activate()
	}
	c.lockScroll()

	if c.announcer != nil {
		c.announcer.Announce("Dialog opened", UrgencyPolite)
	}

	return order
}

// Pop removes the entry with the given id, wherever it sits in the stack
// (a buried dialog may close itself programmatically). Popping an unknown
// id is a no-op and reports false. If the removed entry was topmost, its
// trap is deactivated and the trap of the entry newly exposed underneath
// is re-activated. The scroll lock is released when the stack empties.
func (c *Coordinator) Pop(id string) (Entry, bool) {
	idx := -1
	for i, e := range c.entries {
		if e.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		if c.log != nil {
			c.log.Debugf("overlay: pop of unknown id %q", id)
		}
		return Entry{}, false
	}

	removed := c.entries[idx]
	wasTopmost := idx == len(c.entries)-1
	c.entries = append(c.entries[:idx], c.entries[idx+1:]...)

	if wasTopmost {
		if removed.Trap != nil {
			removed.Trap.Deactivate()
		}
		if top, ok := c.Topmost(); ok && top.Trap != nil {
			top.Trap.Activate()
		}
	}
	c.unlockScroll()

	return removed, true
}

// IsTopmost reports whether id is the frontmost open overlay. Backdrop
// click handling is gated on this so buried overlays ignore clicks that
// land on their own backdrop region.
func (c *Coordinator) IsTopmost(id string) bool {
	top, ok := c.Topmost()
	return ok && top.ID == id
}

// Topmost returns the frontmost entry, if any.
func (c *Coordinator) Topmost() (Entry, bool) {
	if len(c.entries) == 0 {
		return Entry{}, false
	}
	return c.entries[len(c.entries)-1], true
}

// Depth returns the number of open overlays.
func (c *Coordinator) Depth() int {
	return len(c.entries)
}

// Stack returns the ids of all open overlays in open order, bottom first.
// Callers use this to render overlays back-to-front.
func (c *Coordinator) Stack() []string {
	ids := make([]string, len(c.entries))
	for i, e := range c.entries {
		ids[i] = e.ID
	}
	return ids
}

// HandleEscape routes a global Escape press to the topmost entry. The
// close callback fires only if the topmost entry opted in; buried entries
// are never consulted. Returns true if the event was consumed, so the
// caller can stop it from reaching page-level handlers in the same tick.
func (c *Coordinator) HandleEscape() bool {
	top, ok := c.Topmost()
	if !ok || !top.CloseOnEscape {
		return false
	}
	if top.OnClose != nil {
		top.OnClose()
	}
	return true
}

// HandleBackdrop routes a click on the backdrop of the overlay with the
// given id. Non-topmost overlays ignore it. Returns true if the topmost
// entry's close callback fired.
func (c *Coordinator) HandleBackdrop(id string) bool {
	if !c.IsTopmost(id) {
		return false
	}
	top, _ := c.Topmost()
	if !top.CloseOnBackdrop {
		return false
	}
	if top.OnClose != nil {
		top.OnClose()
	}
	return true
}

// Reset clears the stack and the scroll-lock counter, releasing the lock
// and deactivating the active trap if any. Intended for test isolation
// only; production code closes overlays through Pop.
func (c *Coordinator) Reset() {
	if top, ok := c.Topmost(); ok && top.Trap != nil {
		top.Trap.Deactivate()
	}
	c.entries = nil
	if c.lockCount > 0 && c.locker != nil {
		c.locker.Unlock()
	}
	c.lockCount = 0
}

// lockScroll increments the lock refcount, engaging the page lock on the
// 0->1 transition.
func (c *Coordinator) lockScroll() {
	c.lockCount++
	if c.lockCount == 1 && c.locker != nil {
		c.locker.Lock()
	}
}

// unlockScroll decrements the refcount, releasing the lock on 1->0.
// Underflow is clamped so a stray extra unlock cannot corrupt later locks.
func (c *Coordinator) unlockScroll() {
	if c.lockCount == 0 {
		return
	}
	c.lockCount--
	if c.lockCount == 0 && c.locker != nil {
		c.locker.Unlock()
	}
}
