package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/jesseduffield/gocui"
	"github.com/jesseduffield/lazycore/pkg/boxlayout"
)

// PasswordModal prompts for a transfer passphrase. Failed submissions
// feed the lockout state machine; while locked the input is read-only
// and the footer shows a ticking countdown.
type PasswordModal struct {
	g        *gocui.Gui
	title    string
	width    int
	height   int
	style    ModalStyle
	verify   func(string) bool
	onAccept func()
	onCancel func()
	lockout  *lockout
	subtitle string

	ticker *time.Ticker
	stopCh chan struct{}
}

// NewPasswordModal creates a passphrase prompt. verify is called with
// each submission and reports whether the passphrase was correct.
func NewPasswordModal(g *gocui.Gui, title string, threshold int, base time.Duration, verify func(string) bool, onAccept func(), onCancel func()) *PasswordModal {
	m := &PasswordModal{
		g:        g,
		title:    title,
		verify:   verify,
		onAccept: onAccept,
		onCancel: onCancel,
		lockout:  newLockout(threshold, base),
		stopCh:   make(chan struct{}),
	}
	m.startCountdownTicker()
	return m
}

// WithStyle sets the modal style
func (m *PasswordModal) WithStyle(style ModalStyle) *PasswordModal {
	m.style = style
	return m
}

// ID returns the modal's view ID
func (m *PasswordModal) ID() string {
	return "password_modal"
}

// Draw renders the passphrase modal
func (m *PasswordModal) Draw(dim boxlayout.Dimensions) error {
	screenWidth, screenHeight := m.g.Size()
	m.width = modalWidth(screenWidth, 4, 7, 80)
	m.height = 2

	x0 := (screenWidth - m.width) / 2
	y0 := (screenHeight - m.height) / 2
	x1 := x0 + m.width
	y1 := y0 + m.height

	v, err := m.g.SetView(m.ID(), x0, y0, x1, y1, 0)
	isNewView := err != nil
	if err != nil && err.Error() != "unknown view" {
		return err
	}

	if isNewView {
		v.Clear()
		v.RenderTextArea()
	}

	v.Frame = true
	v.FrameRunes = defaultFrameRunes
	v.Title = " " + m.title + " "
	if m.subtitle != "" {
		v.Subtitle = " " + m.subtitle + " "
	}
	v.Footer = m.footerText()
	m.style.apply(v)

	v.Mask = '*'
	v.Editable = !m.lockout.Locked()
	v.Editor = gocui.EditorFunc(func(v *gocui.View, key gocui.Key, ch rune, mod gocui.Modifier) bool {
		if key == gocui.KeyEnter {
			return false
		}
		return gocui.DefaultEditor.Edit(v, key, ch, mod)
	})
	v.Wrap = false
	v.Autoscroll = false

	m.g.Cursor = !m.lockout.Locked()

	return nil
}

func (m *PasswordModal) footerText() string {
	if m.lockout.Locked() {
		return fmt.Sprintf(" Locked, retry in %ds ", m.lockout.RemainingSeconds())
	}
	return " [Enter] Submit [ESC] Cancel "
}

// HandleKey handles keyboard input
func (m *PasswordModal) HandleKey(key any, mod gocui.Modifier) error {
	if key == gocui.KeyEnter {
		if m.lockout.Locked() {
			return nil
		}

		v, err := m.g.View(m.ID())
		if err != nil {
			return err
		}
		input := strings.TrimSpace(v.TextArea.GetContent())
		if input == "" {
			return nil
		}

		if m.verify != nil && m.verify(input) {
			m.lockout.Success()
			if m.onAccept != nil {
				m.onAccept()
			}
			return nil
		}

		m.lockout.Fail()
		v.ClearTextArea()
		if m.lockout.Locked() {
			m.subtitle = "Too many attempts"
		} else {
			m.subtitle = "Wrong passphrase"
		}
		return nil
	}

	if key == gocui.KeyEsc {
		if m.onCancel != nil {
			m.onCancel()
		}
		return nil
	}

	return nil
}

// startCountdownTicker updates the lockout countdown once a second.
// The display redraws through g.Update so all state stays on the UI loop.
func (m *PasswordModal) startCountdownTicker() {
	m.ticker = time.NewTicker(time.Second)
	go func() {
		for {
			select {
			case <-m.ticker.C:
				m.g.Update(func(g *gocui.Gui) error {
					if m.lockout.Tick() {
						m.subtitle = ""
					}
					return nil
				})
			case <-m.stopCh:
				return
			}
		}
	}()
}

// OnClose is called when the modal is closed. The countdown ticker must
// not outlive the dialog.
func (m *PasswordModal) OnClose() {
	m.ticker.Stop()
	close(m.stopCh)
	m.g.Cursor = false
	m.g.DeleteView(m.ID())
}
