package app

import (
	"strings"

	"github.com/jesseduffield/gocui"
	"github.com/jesseduffield/lazycore/pkg/boxlayout"
)

// InputModal displays an input field for user text entry
type InputModal struct {
	g                *gocui.Gui
	id               string
	title            string // Used as placeholder
	subtitle         string // Optional subtitle
	footer           string // Key bindings description
	width            int
	height           int
	style            ModalStyle
	onSubmit         func(string)
	onCancel         func()
	required         bool
	onValidationFail func(string)
}

// NewInputModal creates a new input modal
func NewInputModal(g *gocui.Gui, title string, onSubmit func(string), onCancel func()) *InputModal {
	return &InputModal{
		g:        g,
		id:       "input_modal",
		title:    title,
		footer:   " [Enter] Submit [ESC] Cancel ",
		onSubmit: onSubmit,
		onCancel: onCancel,
	}
}

// WithStyle sets the modal style
func (m *InputModal) WithStyle(style ModalStyle) *InputModal {
	m.style = style
	return m
}

// WithSubtitle sets the modal subtitle
func (m *InputModal) WithSubtitle(subtitle string) *InputModal {
	m.subtitle = subtitle
	return m
}

// WithRequired sets whether the input is required (non-empty)
func (m *InputModal) WithRequired(required bool) *InputModal {
	m.required = required
	return m
}

// WithID overrides the view id so two input dialogs can stack
func (m *InputModal) WithID(id string) *InputModal {
	m.id = id
	return m
}

// OnValidationFail sets the callback for validation failures
func (m *InputModal) OnValidationFail(callback func(string)) *InputModal {
	m.onValidationFail = callback
	return m
}

// ID returns the modal's view ID
func (m *InputModal) ID() string {
	return m.id
}

// Draw renders the input modal
func (m *InputModal) Draw(dim boxlayout.Dimensions) error {
	screenWidth, screenHeight := m.g.Size()
	m.width = modalWidth(screenWidth, 4, 7, 80)

	// Height for input modal: minimal single line
	m.height = 2

	// Center the modal
	x0 := (screenWidth - m.width) / 2
	y0 := (screenHeight - m.height) / 2
	x1 := x0 + m.width
	y1 := y0 + m.height

	v, err := m.g.SetView(m.ID(), x0, y0, x1, y1, 0)
	isNewView := err != nil
	if err != nil && err.Error() != "unknown view" {
		return err
	}

	// Only clear on first creation (TextArea manages content)
	if isNewView {
		v.Clear()
		// Initial render to make footer visible
		v.RenderTextArea()
	}

	v.Frame = true
	v.FrameRunes = defaultFrameRunes
	v.Title = " " + m.title + " "
	if m.subtitle != "" {
		v.Subtitle = " " + m.subtitle + " "
	}
	v.Footer = m.footer
	m.style.apply(v)

	v.Editable = true
	v.Editor = gocui.EditorFunc(func(v *gocui.View, key gocui.Key, ch rune, mod gocui.Modifier) bool {
		// Single-line input: block Enter key (pass to HandleKey instead)
		if key == gocui.KeyEnter {
			return false
		}
		// DefaultEditor already calls v.RenderTextArea() internally
		return gocui.DefaultEditor.Edit(v, key, ch, mod)
	})
	v.Wrap = false
	v.Autoscroll = false

	m.g.Cursor = true

	return nil
}

// HandleKey handles keyboard input
func (m *InputModal) HandleKey(key any, mod gocui.Modifier) error {
	if key == gocui.KeyEnter {
		v, err := m.g.View(m.ID())
		if err != nil {
			return err
		}

		input := strings.TrimSpace(v.TextArea.GetContent())

		if m.required && input == "" {
			if m.onValidationFail != nil {
				m.onValidationFail("Input is required")
			}
			return nil
		}

		if m.onSubmit != nil {
			m.onSubmit(input)
		}
		return nil
	}

	// Cancel on ESC only (not 'q', which is used for input)
	if key == gocui.KeyEsc {
		if m.onCancel != nil {
			m.onCancel()
		}
		return nil
	}

	// Let other keys pass through to editor for input
	return nil
}

// OnClose is called when the modal is closed
func (m *InputModal) OnClose() {
	m.g.Cursor = false
	m.g.DeleteView(m.ID())
}
