package app

import (
	"fmt"
	"strings"

	"github.com/jesseduffield/gocui"
	"github.com/jesseduffield/lazycore/pkg/boxlayout"
)

// MessageModal displays a message with title and content
type MessageModal struct {
	g            *gocui.Gui
	title        string
	contentLines []string // Original content lines
	lines        []string // Wrapped content lines
	width        int
	height       int
	style        ModalStyle
}

// NewMessageModal creates a new message modal
func NewMessageModal(g *gocui.Gui, title string, lines ...string) *MessageModal {
	return &MessageModal{
		g:            g,
		title:        title,
		contentLines: lines,
	}
}

// WithStyle sets the modal style
func (m *MessageModal) WithStyle(style ModalStyle) *MessageModal {
	m.style = style
	return m
}

// ID returns the modal's view ID
func (m *MessageModal) ID() string {
	return "message_modal"
}

// Draw renders the modal
func (m *MessageModal) Draw(dim boxlayout.Dimensions) error {
	screenWidth, screenHeight := m.g.Size()
	m.width = modalWidth(screenWidth, 4, 7, 80)

	// Wrap content and size the modal to it
	availableWidth := m.width - 4
	m.lines = wrapLines(strings.Join(m.contentLines, "\n"), availableWidth)
	m.height = len(m.lines) + 1

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
	v.Footer = " [Enter/q/ESC] Close "
	m.style.apply(v)
	v.Wrap = false

	for _, line := range m.lines {
		fmt.Fprintln(v, line)
	}

	return nil
}

// HandleKey handles keyboard input
func (m *MessageModal) HandleKey(key any, mod gocui.Modifier) error {
	// Close keys are handled by the app-level keybindings
	return nil
}

// OnClose is called when the modal is closed
func (m *MessageModal) OnClose() {
	m.g.DeleteView(m.ID())
}
