package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTrap records activation state transitions
type fakeTrap struct {
	active      bool
	activations int
}

func (t *fakeTrap) Activate() {
	t.active = true
	t.activations++
}

func (t *fakeTrap) Deactivate() {
	t.active = false
}

// fakeLocker counts lock/unlock transitions
type fakeLocker struct {
	locked  bool
	locks   int
	unlocks int
}

func (l *fakeLocker) Lock() {
	l.locked = true
	l.locks++
}

func (l *fakeLocker) Unlock() {
	l.locked = false
	l.unlocks++
}

func entry(id string) Entry {
	return Entry{ID: id, Trap: &fakeTrap{}}
}

func TestDepthTracksPushesAndPops(t *testing.T) {
	c := New(nil)

	c.Push(entry("a"))
	c.Push(entry("b"))
	c.Push(entry("c"))
	assert.Equal(t, 3, c.Depth())

	_, ok := c.Pop("b")
	assert.True(t, ok)
	assert.Equal(t, 2, c.Depth())

	// Popping a nonexistent id leaves depth unchanged
	_, ok = c.Pop("nope")
	assert.False(t, ok)
	assert.Equal(t, 2, c.Depth())

	// Popping the same id twice is idempotent
	_, ok = c.Pop("a")
	assert.True(t, ok)
	_, ok = c.Pop("a")
	assert.False(t, ok)
	assert.Equal(t, 1, c.Depth())
}

func TestTopmostCorrectness(t *testing.T) {
	c := New(nil)

	c.Push(entry("a"))
	c.Push(entry("b"))
	c.Push(entry("c"))

	assert.True(t, c.IsTopmost("c"))
	assert.False(t, c.IsTopmost("a"))
	assert.False(t, c.IsTopmost("b"))

	c.Pop("c")
	assert.True(t, c.IsTopmost("b"))
}

func TestSingleActiveTrap(t *testing.T) {
	c := New(nil)

	traps := map[string]*fakeTrap{
		"a": {}, "b": {}, "c": {},
	}
	push := func(id string) {
		c.Push(Entry{ID: id, Trap: traps[id]})
	}

	activeCount := func() int {
		n := 0
		for _, tr := range traps {
			if tr.active {
				n++
			}
		}
		return n
	}

	push("a")
	assert.Equal(t, 1, activeCount())
	assert.True(t, traps["a"].active)

	push("b")
	assert.Equal(t, 1, activeCount())
	assert.True(t, traps["b"].active)

	push("c")
	assert.Equal(t, 1, activeCount())
	assert.True(t, traps["c"].active)

	// Removing a buried entry must not disturb the active trap
	c.Pop("b")
	assert.Equal(t, 1, activeCount())
	assert.True(t, traps["c"].active)

	// Removing the topmost hands the trap back to the entry underneath
	c.Pop("c")
	assert.Equal(t, 1, activeCount())
	assert.True(t, traps["a"].active)
	assert.Equal(t, 2, traps["a"].activations)

	c.Pop("a")
	assert.Equal(t, 0, activeCount())
}

func TestScrollLockRefcounting(t *testing.T) {
	locker := &fakeLocker{}
	c := New(locker)

	c.Push(entry("a"))
	c.Push(entry("b"))
	assert.True(t, locker.locked)
	assert.Equal(t, 1, locker.locks, "lock engages only on the 0->1 transition")

	c.Pop("a")
	assert.True(t, locker.locked, "one overlay still open")

	c.Pop("b")
	assert.False(t, locker.locked)
	assert.Equal(t, 1, locker.unlocks)

	// Push/pop the same entry twice in a row: lock count never goes
	// negative and the page is not left locked.
	c.Push(entry("x"))
	c.Pop("x")
	c.Pop("x")
	c.Push(entry("x"))
	c.Pop("x")
	assert.False(t, locker.locked)
	assert.Equal(t, 0, c.lockCount)
}

func TestEscapeChecksTopmostOnly(t *testing.T) {
	c := New(nil)

	bottomClosed := false
	c.Push(Entry{ID: "bottom", CloseOnEscape: true, OnClose: func() { bottomClosed = true }})
	c.Push(Entry{ID: "top", CloseOnEscape: false})

	// Only the topmost entry is consulted; the bottom one opted in but
	// must not fire.
	assert.False(t, c.HandleEscape())
	assert.False(t, bottomClosed)
	assert.Equal(t, 2, c.Depth())

	// Same outcome with the insertion order reversed
	c.Reset()
	c.Push(Entry{ID: "top", CloseOnEscape: false})
	c.Push(Entry{ID: "bottom2", CloseOnEscape: true, OnClose: func() { bottomClosed = true }})
	c.Pop("bottom2")
	assert.False(t, c.HandleEscape())
}

func TestEscapeNotConsumedOnEmptyStack(t *testing.T) {
	c := New(nil)
	assert.False(t, c.HandleEscape())
}

func TestBackdropGatedByTopmost(t *testing.T) {
	c := New(nil)

	aClosed := false
	c.Push(Entry{ID: "a", CloseOnBackdrop: true, OnClose: func() { aClosed = true }})
	c.Push(Entry{ID: "b", CloseOnBackdrop: false})

	assert.False(t, c.HandleBackdrop("a"), "buried overlay ignores backdrop clicks")
	assert.False(t, aClosed)
	assert.False(t, c.HandleBackdrop("b"), "topmost opted out")

	c.Pop("b")
	assert.True(t, c.HandleBackdrop("a"))
	assert.True(t, aClosed)
}

func TestStackingOrderIncreases(t *testing.T) {
	c := New(nil)

	o1 := c.Push(entry("a"))
	o2 := c.Push(entry("b"))
	o3 := c.Push(entry("c"))
	assert.Greater(t, o2, o1)
	assert.Greater(t, o3, o2)

	c2 := New(nil, WithStackingOrder(1000, 5))
	assert.Equal(t, 1000, c2.Push(entry("a")))
	assert.Equal(t, 1005, c2.Push(entry("b")))
}

// End-to-end: two stacked dialogs, Escape closes only the top one, then
// the bottom one, and the scroll lock fully releases.
func TestTwoDialogScenario(t *testing.T) {
	locker := &fakeLocker{}
	c := New(locker)

	var closed []string
	open := func(id string, escape, backdrop bool) {
		c.Push(Entry{
			ID:              id,
			CloseOnEscape:   escape,
			CloseOnBackdrop: backdrop,
			Trap:            &fakeTrap{},
			OnClose: func() {
				closed = append(closed, id)
				c.Pop(id)
			},
		})
	}

	open("a", true, true)
	open("b", true, false)

	require.True(t, c.HandleEscape())
	assert.Equal(t, []string{"b"}, closed)
	assert.Equal(t, 1, c.Depth(), "dialog a still open")
	assert.True(t, locker.locked, "scroll still locked")

	require.True(t, c.HandleEscape())
	assert.Equal(t, []string{"b", "a"}, closed)
	assert.Equal(t, 0, c.Depth())
	assert.False(t, locker.locked)
}

func TestResetClearsEverything(t *testing.T) {
	locker := &fakeLocker{}
	c := New(locker)

	tr := &fakeTrap{}
	c.Push(Entry{ID: "a", Trap: tr})
	c.Push(entry("b"))
	c.Reset()

	assert.Equal(t, 0, c.Depth())
	assert.False(t, locker.locked)
	assert.Equal(t, 0, c.lockCount)

	// Reset while empty is harmless
	c.Reset()
	assert.Equal(t, 1, locker.unlocks)
}

func TestAnnouncedOnPush(t *testing.T) {
	q := NewQueue()
	c := New(nil, WithAnnouncer(q))

	c.Push(entry("a"))
	msgs := q.Drain()
	require.Len(t, msgs, 1)
	assert.Equal(t, UrgencyPolite, msgs[0].Urgency)
}
