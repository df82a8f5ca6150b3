package app

import (
	"testing"
	"time"

	"github.com/jesseduffield/gocui"
	"github.com/jesseduffield/lazycore/pkg/boxlayout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quartzlabs/lazysend/pkg/overlay"
)

// stubModal stands in for a dialog without needing a live terminal.
type stubModal struct {
	id     string
	closed bool
}

func (s *stubModal) ID() string                                  { return s.id }
func (s *stubModal) Draw(dim boxlayout.Dimensions) error         { return nil }
func (s *stubModal) HandleKey(key any, mod gocui.Modifier) error { return nil }
func (s *stubModal) OnClose()                                    { s.closed = true }

// newStackedApp wires stub dialogs onto the stack the way OpenModal
// does, minus the view focus trap.
func newStackedApp(modals ...*stubModal) *App {
	a := &App{
		modals:     make(map[string]Modal),
		closeGuard: overlay.NewGuard(0),
	}
	a.overlays = overlay.New(nil)

	for _, m := range modals {
		id := m.ID()
		a.modals[id] = m
		a.overlays.Push(overlay.Entry{
			ID:              id,
			OnClose:         func() { a.closeModalGuarded(id) },
			CloseOnEscape:   true,
			CloseOnBackdrop: true,
		})
	}
	return a
}

func TestRapidEscapeClosesOnlyTopDialog(t *testing.T) {
	bottom := &stubModal{id: "bottom"}
	top := &stubModal{id: "top"}
	a := newStackedApp(bottom, top)

	require.True(t, a.overlays.HandleEscape())
	assert.True(t, top.closed)
	assert.False(t, bottom.closed)

	// A second Escape in the same beat lands inside the guard window
	// and must not close the dialog newly exposed underneath
	a.overlays.HandleEscape()
	assert.False(t, bottom.closed)
	assert.Equal(t, 1, a.overlays.Depth())
}

func TestEscapeThenBackdropClosesOneDialog(t *testing.T) {
	bottom := &stubModal{id: "bottom"}
	top := &stubModal{id: "top"}
	a := newStackedApp(bottom, top)

	require.True(t, a.overlays.HandleEscape())
	a.overlays.HandleBackdrop("bottom")

	assert.True(t, top.closed)
	assert.False(t, bottom.closed)
	assert.Equal(t, 1, a.overlays.Depth())
}

func TestProgrammaticClosesAreNotGuarded(t *testing.T) {
	bottom := &stubModal{id: "bottom"}
	top := &stubModal{id: "top"}
	a := newStackedApp(bottom, top)

	// Back-to-back closes, as the passphrase accept path does
	a.CloseModal("top")
	a.CloseModal("bottom")

	assert.True(t, top.closed)
	assert.True(t, bottom.closed)
	assert.Equal(t, 0, a.overlays.Depth())
}

func TestStopToastTimerCancelsPendingDismiss(t *testing.T) {
	a := &App{}
	a.stopToastTimer() // no timer armed

	a.toastTimer = time.AfterFunc(time.Hour, func() {})
	a.stopToastTimer()
	assert.False(t, a.toastTimer.Stop())
}
