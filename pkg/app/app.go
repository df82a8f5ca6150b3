package app

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/jesseduffield/gocui"
	"github.com/rs/zerolog"

	"github.com/quartzlabs/lazysend/pkg/config"
	"github.com/quartzlabs/lazysend/pkg/history"
	"github.com/quartzlabs/lazysend/pkg/logging"
	"github.com/quartzlabs/lazysend/pkg/overlay"
	"github.com/quartzlabs/lazysend/pkg/transfer"
)

const (
	spinnerTickInterval = 50 * time.Millisecond
)

var spinnerFrames = []rune{'|', '/', '-', '\\'}

type App struct {
	g            *gocui.Gui
	config       AppConfig
	cfg          *config.Config
	panels       map[string]Panel
	focusOrder   []string
	currentFocus int
	savedFocus   int

	// Overlay stack management
	overlays      *overlay.Coordinator
	modals        map[string]Modal
	closeGuard    *overlay.Guard
	announcements *overlay.Queue

	// Domain state
	transfers   *transfer.Manager
	store       *history.Store
	codes       *transfer.CodeGenerator
	roomCode    string
	sessionPass string
	log         zerolog.Logger

	// Task execution tracking
	taskRunning     atomic.Bool   // Thread-safe flag for task execution
	runningTaskName atomic.Value  // Name of currently running task (string)
	spinnerFrame    atomic.Uint32 // Current spinner frame index (0-3)
	stopSpinnerCh   chan struct{} // Channel to stop spinner goroutine

	// Toast state
	toast      string
	toastTimer *time.Timer
}

type AppConfig struct {
	DebugMode bool
	AppName   string
	Version   string
}

func NewApp(appCfg AppConfig, cfg *config.Config, store *history.Store, log zerolog.Logger) (*App, error) {
	g, err := gocui.NewGui(gocui.NewGuiOpts{OutputMode: gocui.OutputTrue})
	if err != nil {
		return nil, err
	}

	app := &App{
		g:             g,
		config:        appCfg,
		cfg:           cfg,
		panels:        make(map[string]Panel),
		focusOrder:    []string{ViewDevices, ViewTransfers, ViewPreview, ViewActivity},
		currentFocus:  0,
		modals:        make(map[string]Modal),
		closeGuard:    overlay.NewGuard(0),
		announcements: overlay.NewQueue(),
		store:         store,
		codes:         transfer.NewCodeGenerator(cfg.Relay.CodeWords),
		log:           log,
		stopSpinnerCh: make(chan struct{}),
	}

	app.overlays = overlay.New(
		panelScrollLock{app: app},
		overlay.WithAnnouncer(app.announcements),
		overlay.WithLogger(logging.OverlayLogger{L: log}),
	)

	app.transfers = transfer.NewManager(app.onTransferEvent)

	// A room is offered from the moment the app starts; pressing g
	// replaces it
	if code, err := app.codes.Generate(); err == nil {
		app.roomCode = code
	}
	if pass, err := app.codes.Generate(); err == nil {
		app.sessionPass = pass
	}

	g.SetManagerFunc(gocui.ManagerFunc(app.layoutManager))
	g.Mouse = true
	g.ShowListFooter = true

	app.startSpinnerUpdater()

	return app, nil
}

func (a *App) Run() error {
	defer a.g.Close()
	defer close(a.stopSpinnerCh) // Stop spinner goroutine
	defer a.stopToastTimer()     // A pending dismissal must not fire against the closed gui

	// Initial focus
	if len(a.focusOrder) > 0 {
		if panel, ok := a.panels[a.focusOrder[0]]; ok {
			panel.OnFocus()
		}
	}

	if err := a.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		return err
	}
	return nil
}

func (a *App) RegisterPanel(panel Panel) {
	a.panels[panel.ID()] = panel
}

func (a *App) GetGui() *gocui.Gui {
	return a.g
}

// Transfers exposes the session transfer manager to the panels.
func (a *App) Transfers() *transfer.Manager {
	return a.transfers
}

// RoomCode returns the code of the room this device is offering.
func (a *App) RoomCode() string {
	return a.roomCode
}

// panelScrollLock suppresses the panels while any overlay is open: the
// focused panel is blurred and remembered when the first overlay opens,
// and restored when the last one closes. The coordinator refcounts, so
// stacked dialogs engage this exactly once.
type panelScrollLock struct {
	app *App
}

func (p panelScrollLock) Lock() {
	a := p.app
	a.savedFocus = a.currentFocus
	for _, id := range a.focusOrder {
		if panel, ok := a.panels[id]; ok {
			panel.OnBlur()
		}
	}
}

func (p panelScrollLock) Unlock() {
	a := p.app
	if a.savedFocus >= 0 && a.savedFocus < len(a.focusOrder) {
		a.currentFocus = a.savedFocus
		if panel, ok := a.panels[a.focusOrder[a.savedFocus]]; ok {
			panel.OnFocus()
		}
	}
}

// viewFocusTrap confines keyboard focus to one modal's view. The
// coordinator keeps at most one trap active, so focus always follows
// the topmost dialog.
type viewFocusTrap struct {
	g  *gocui.Gui
	id string
}

func (t viewFocusTrap) Activate() {
	_, err := t.g.SetCurrentView(t.id)
	if err != nil && err.Error() != "unknown view" {
		// View is created on the next layout pass, which focuses it then
	}
}

func (t viewFocusTrap) Deactivate() {}

type modalOptions struct {
	closeOnEscape   bool
	closeOnBackdrop bool
}

type ModalOption func(*modalOptions)

// WithoutEscapeClose keeps the modal open on Escape.
func WithoutEscapeClose() ModalOption {
	return func(o *modalOptions) { o.closeOnEscape = false }
}

// WithoutBackdropClose keeps the modal open on clicks outside it.
func WithoutBackdropClose() ModalOption {
	return func(o *modalOptions) { o.closeOnBackdrop = false }
}

// OpenModal pushes a modal onto the overlay stack. Dialogs stack: opening
// a second modal layers it above the first, and closing it restores the
// one underneath.
func (a *App) OpenModal(modal Modal, opts ...ModalOption) {
	mo := modalOptions{closeOnEscape: true, closeOnBackdrop: true}
	for _, opt := range opts {
		opt(&mo)
	}

	id := modal.ID()
	a.modals[id] = modal

	a.overlays.Push(overlay.Entry{
		ID:              id,
		OnClose:         func() { a.closeModalGuarded(id) },
		CloseOnEscape:   mo.closeOnEscape,
		CloseOnBackdrop: mo.closeOnBackdrop,
		Trap:            viewFocusTrap{g: a.g, id: id},
	})
}

// closeModalGuarded is the close path for user events (Escape, backdrop
// clicks, the q key). The guard stays armed for its window after a
// close, so a click and a keypress landing in the same beat close one
// dialog, not also the one newly exposed underneath. Programmatic
// closes go through CloseModal directly and are never suppressed.
func (a *App) closeModalGuarded(id string) {
	if !a.closeGuard.Allow() {
		return
	}
	a.CloseModal(id)
}

// CloseModal pops the modal with the given id, wherever it sits in the
// stack. Closing an id that is not open is a no-op.
func (a *App) CloseModal(id string) {
	if _, ok := a.overlays.Pop(id); !ok {
		return
	}

	if modal, ok := a.modals[id]; ok {
		modal.OnClose()
		delete(a.modals, id)
	}
}

// CloseTopmostModal closes the frontmost dialog in response to a key
// press, if any is open.
func (a *App) CloseTopmostModal() {
	if top, ok := a.overlays.Topmost(); ok {
		a.closeModalGuarded(top.ID)
	}
}

// HasOverlay reports whether any modal is open. Panel keys, focus
// cycling and scrolling are all gated on this.
func (a *App) HasOverlay() bool {
	return a.overlays.Depth() > 0
}

// TopModal returns the frontmost modal, if any.
func (a *App) TopModal() (Modal, bool) {
	top, ok := a.overlays.Topmost()
	if !ok {
		return nil, false
	}
	m, ok := a.modals[top.ID]
	return m, ok
}

// GetCurrentPanel returns the currently focused panel
func (a *App) GetCurrentPanel() Panel {
	if a.currentFocus >= 0 && a.currentFocus < len(a.focusOrder) {
		return a.panels[a.focusOrder[a.currentFocus]]
	}
	return nil
}

// ShowToast displays a short status message that auto-dismisses.
func (a *App) ShowToast(message string) {
	a.toast = message
	if a.toastTimer != nil {
		a.toastTimer.Stop()
	}
	a.toastTimer = time.AfterFunc(a.cfg.ToastDuration(), func() {
		a.g.Update(func(g *gocui.Gui) error {
			a.toast = ""
			return nil
		})
	})
}

func (a *App) stopToastTimer() {
	if a.toastTimer != nil {
		a.toastTimer.Stop()
	}
}

// tryStartTask attempts to start a background task
// Returns true if the task can start, false if another is already running
func (a *App) tryStartTask(taskName string) bool {
	if a.taskRunning.CompareAndSwap(false, true) {
		a.runningTaskName.Store(taskName)
		return true
	}
	return false
}

// finishTask marks task execution as complete
func (a *App) finishTask() {
	a.runningTaskName.Store("")
	a.taskRunning.Store(false)
	a.spinnerFrame.Store(0) // Reset spinner to first frame
}

// logTaskBlocked logs a message when task execution is blocked
func (a *App) logTaskBlocked(taskName string) {
	a.g.Update(func(g *gocui.Gui) error {
		if activity, ok := a.panels[ViewActivity].(*ActivityPanel); ok {
			runningTask := ""
			if val := a.runningTaskName.Load(); val != nil {
				runningTask = val.(string)
			}

			message := fmt.Sprintf("Cannot start '%s'", taskName)
			if runningTask != "" {
				message += fmt.Sprintf(" ('%s' is currently running)", runningTask)
			}

			activity.LogActionRed("Task Blocked", message)
		}
		return nil
	})
}

// startSpinnerUpdater starts a background goroutine that updates the spinner frame
func (a *App) startSpinnerUpdater() {
	go func() {
		ticker := time.NewTicker(spinnerTickInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				// Only update while a task is running
				if a.taskRunning.Load() {
					currentFrame := a.spinnerFrame.Load()
					nextFrame := (currentFrame + 1) % uint32(len(spinnerFrames))
					a.spinnerFrame.Store(nextFrame)

					a.g.Update(func(g *gocui.Gui) error {
						// StatusBar will be redrawn by layout manager
						return nil
					})
				}
			case <-a.stopSpinnerCh:
				return
			}
		}
	}()
}

// handlePanelClick handles mouse click on a panel. While the stack is
// open a click on any panel lands on the backdrop and routes to the
// topmost dialog; otherwise it switches focus.
func (a *App) handlePanelClick(viewID string) error {
	if a.HasOverlay() {
		return a.handleBackdropClick()
	}

	targetIndex := -1
	for i, id := range a.focusOrder {
		if id == viewID {
			targetIndex = i
			break
		}
	}

	if targetIndex == -1 || targetIndex == a.currentFocus {
		return nil
	}

	if panel, ok := a.panels[a.focusOrder[a.currentFocus]]; ok {
		panel.OnBlur()
	}

	a.currentFocus = targetIndex

	if panel, ok := a.panels[a.focusOrder[a.currentFocus]]; ok {
		panel.OnFocus()
	}

	return nil
}

// handleBackdropClick routes a click outside the topmost dialog. Only
// the topmost entry is consulted; buried dialogs never see it.
func (a *App) handleBackdropClick() error {
	top, ok := a.overlays.Topmost()
	if !ok {
		return nil
	}
	a.overlays.HandleBackdrop(top.ID)
	return nil
}

// registerMouseClickForFocus registers a mouse click handler to switch focus
func (a *App) registerMouseClickForFocus(viewID string) {
	a.g.SetViewClickBinding(&gocui.ViewMouseBinding{
		ViewName: viewID,
		Key:      gocui.MouseLeft,
		Modifier: gocui.ModNone,
		Handler: func(opts gocui.ViewMouseBindingOpts) error {
			return a.handlePanelClick(viewID)
		},
	})
}

// RegisterMouseBindings registers mouse click handlers for all panels
func (a *App) RegisterMouseBindings() {
	for _, viewID := range a.focusOrder {
		if viewID != ViewTransfers {
			a.registerMouseClickForFocus(viewID)
		}
	}

	// Transfers panel needs list item and tab clicks
	if transfersPanel, ok := a.panels[ViewTransfers].(*TransfersPanel); ok {
		a.g.SetTabClickBinding(ViewTransfers, func(tabIndex int) error {
			if a.HasOverlay() {
				return nil
			}
			return transfersPanel.handleTabClick(tabIndex)
		})

		a.g.SetViewClickBinding(&gocui.ViewMouseBinding{
			ViewName: ViewTransfers,
			Key:      gocui.MouseLeft,
			Modifier: gocui.ModNone,
			Handler: func(opts gocui.ViewMouseBindingOpts) error {
				if a.HasOverlay() {
					return a.handleBackdropClick()
				}
				return transfersPanel.handleListClick(opts.Y)
			},
		})
	}

	a.registerMouseWheelBindings()
}

type wheelScroller interface {
	ScrollUpByWheel()
	ScrollDownByWheel()
}

// registerMouseWheelBindings registers mouse wheel handlers for all panels.
// Wheel events are swallowed while the overlay stack is open, which is
// what keeps the page from scrolling under a dialog.
func (a *App) registerMouseWheelBindings() {
	for _, viewID := range a.focusOrder {
		scroller, ok := a.panels[viewID].(wheelScroller)
		if !ok {
			continue
		}

		a.g.SetViewClickBinding(&gocui.ViewMouseBinding{
			ViewName: viewID,
			Key:      gocui.MouseWheelUp,
			Modifier: gocui.ModNone,
			Handler: func(opts gocui.ViewMouseBindingOpts) error {
				if a.HasOverlay() {
					return nil
				}
				scroller.ScrollUpByWheel()
				return nil
			},
		})
		a.g.SetViewClickBinding(&gocui.ViewMouseBinding{
			ViewName: viewID,
			Key:      gocui.MouseWheelDown,
			Modifier: gocui.ModNone,
			Handler: func(opts gocui.ViewMouseBindingOpts) error {
				if a.HasOverlay() {
					return nil
				}
				scroller.ScrollDownByWheel()
				return nil
			},
		})
	}
}
