package app

import (
	"fmt"

	"github.com/jesseduffield/gocui"
	"github.com/jesseduffield/lazycore/pkg/boxlayout"
)

// ConfirmModal displays a confirmation dialog with Yes/No options
type ConfirmModal struct {
	g       *gocui.Gui
	title   string
	message string
	onYes   func()
	onNo    func()
	width   int
	height  int
	style   ModalStyle
}

// NewConfirmModal creates a new confirmation modal
func NewConfirmModal(g *gocui.Gui, title string, message string, onYes func(), onNo func()) *ConfirmModal {
	return &ConfirmModal{
		g:       g,
		title:   title,
		message: message,
		onYes:   onYes,
		onNo:    onNo,
	}
}

// WithStyle sets the modal style
func (m *ConfirmModal) WithStyle(style ModalStyle) *ConfirmModal {
	m.style = style
	return m
}

// ID returns the modal's view ID
func (m *ConfirmModal) ID() string {
	return "confirm_modal"
}

// Draw renders the modal
func (m *ConfirmModal) Draw(dim boxlayout.Dimensions) error {
	screenWidth, screenHeight := m.g.Size()
	m.width = modalWidth(screenWidth, 4, 7, 80)

	availableWidth := m.width - 4
	lines := wrapLines(m.message, availableWidth)

	m.height = len(lines) + 2 // +2 for borders

	maxHeight := screenHeight - 4
	if m.height > maxHeight {
		m.height = maxHeight
	}

	// Center the modal
	x0 := (screenWidth - m.width) / 2
	y0 := (screenHeight - m.height) / 2
	x1 := x0 + m.width
	y1 := y0 + m.height

	v, err := m.g.SetView(m.ID(), x0, y0, x1, y1, 0)
	if err != nil && err.Error() != "unknown view" {
		return err
	}

	v.Clear()
	v.Frame = true
	v.FrameRunes = defaultFrameRunes
	v.Title = " " + m.title + " "
	v.Footer = " [Y] Yes [N] No [ESC] Cancel "
	m.style.apply(v)
	v.Wrap = false

	for _, line := range lines {
		fmt.Fprintln(v, line)
	}

	return nil
}

// HandleKey handles keyboard input
func (m *ConfirmModal) HandleKey(key any, mod gocui.Modifier) error {
	switch key {
	case 'y', 'Y':
		if m.onYes != nil {
			m.onYes()
		}
		return nil
	case 'n', 'N', gocui.KeyEsc:
		if m.onNo != nil {
			m.onNo()
		}
		return nil
	}

	return nil
}

// OnClose is called when the modal is closed
func (m *ConfirmModal) OnClose() {
	m.g.DeleteView(m.ID())
}
