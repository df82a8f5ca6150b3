package app

import (
	"fmt"

	"github.com/jesseduffield/gocui"
	"github.com/jesseduffield/lazycore/pkg/boxlayout"
)

// ListModalItem represents a selectable item in the list modal
type ListModalItem struct {
	Label       string       // Display text in the list
	Description string       // Description shown in the bottom view
	OnSelect    func() error // Callback when item is selected with Enter
}

// ListModal displays a list of items with descriptions
type ListModal struct {
	g           *gocui.Gui
	title       string
	items       []ListModalItem
	selectedIdx int
	originY     int // Scroll position for list view
	width       int
	height      int
	style       ModalStyle
	onCancel    func()
}

// NewListModal creates a new list modal
func NewListModal(g *gocui.Gui, title string, items []ListModalItem, onCancel func()) *ListModal {
	return &ListModal{
		g:        g,
		title:    title,
		items:    items,
		onCancel: onCancel,
	}
}

// WithStyle sets the modal style
func (m *ListModal) WithStyle(style ModalStyle) *ListModal {
	m.style = style
	return m
}

// ID returns the modal's view ID. The list view carries keyboard focus;
// the description view below it is display-only.
func (m *ListModal) ID() string {
	return "list_modal_list"
}

func (m *ListModal) listViewID() string {
	return m.ID()
}

func (m *ListModal) descViewID() string {
	return "list_modal_desc"
}

// Draw renders the list modal with two views (list on top, description on bottom)
func (m *ListModal) Draw(dim boxlayout.Dimensions) error {
	screenWidth, screenHeight := m.g.Size()
	m.width = modalWidth(screenWidth, 5, 7, 80)

	// Description height follows the selected item's wrapped description
	availableWidth := m.width - 4
	var descContentLines int
	if m.selectedIdx >= 0 && m.selectedIdx < len(m.items) {
		desc := m.items[m.selectedIdx].Description
		descContentLines = len(wrapLines(desc, availableWidth))
	}

	listHeight := len(m.items) + 2
	descHeight := descContentLines + 2

	m.height = listHeight + descHeight + 1 // +1 for gap

	maxHeight := screenHeight - 4
	if m.height > maxHeight {
		m.height = maxHeight
		// If total exceeds screen, shrink desc first (list height keeps items visible)
		descHeight = m.height - listHeight
		if descHeight < 4 {
			descHeight = 4
			listHeight = m.height - descHeight
		}
	}

	// Center the modal
	x0 := (screenWidth - m.width) / 2
	y0 := (screenHeight - m.height) / 2

	if err := m.drawListView(x0, y0, x0+m.width, y0+listHeight); err != nil {
		return err
	}

	// One line gap between the two views
	return m.drawDescView(x0, y0+listHeight+1, x0+m.width, y0+m.height)
}

func (m *ListModal) drawListView(x0, y0, x1, y1 int) error {
	v, err := m.g.SetView(m.listViewID(), x0, y0, x1, y1, 0)
	if err != nil && err.Error() != "unknown view" {
		return err
	}

	v.Clear()
	v.Frame = true
	v.FrameRunes = defaultFrameRunes
	v.Title = " " + m.title + " "
	v.Footer = ""
	m.style.apply(v)
	v.Wrap = false

	v.Highlight = true
	v.SelBgColor = SelectionBgColor

	for _, item := range m.items {
		fmt.Fprintln(v, item.Label)
	}

	AdjustOrigin(v, &m.originY)

	v.SetCursor(0, m.selectedIdx-m.originY)
	v.SetOrigin(0, m.originY)

	return nil
}

func (m *ListModal) drawDescView(x0, y0, x1, y1 int) error {
	v, err := m.g.SetView(m.descViewID(), x0, y0, x1, y1, 0)
	if err != nil && err.Error() != "unknown view" {
		return err
	}

	v.Clear()
	v.Frame = true
	v.FrameRunes = defaultFrameRunes
	v.Title = ""
	v.Footer = " [↑/↓] Navigate [Enter] Select [ESC] Cancel "

	if m.style.BorderColor != ColorDefault {
		v.FrameColor = gocui.Attribute(colorToAnsiCode(m.style.BorderColor))
	}
	v.Wrap = true

	if m.selectedIdx >= 0 && m.selectedIdx < len(m.items) {
		desc := m.items[m.selectedIdx].Description
		for _, line := range wrapLines(desc, (x1-x0)-4) {
			fmt.Fprintln(v, line)
		}
	}

	return nil
}

// HandleKey handles keyboard input
func (m *ListModal) HandleKey(key any, mod gocui.Modifier) error {
	switch key {
	case gocui.KeyArrowUp:
		m.selectPrev()
	case gocui.KeyArrowDown:
		m.selectNext()
	case gocui.KeyEnter:
		return m.onEnter()
	case gocui.KeyEsc, 'q':
		if m.onCancel != nil {
			m.onCancel()
		}
		return nil
	}

	return nil
}

// selectNext selects the next item (circular)
func (m *ListModal) selectNext() {
	if len(m.items) == 0 {
		return
	}
	m.selectedIdx++
	if m.selectedIdx >= len(m.items) {
		m.selectedIdx = 0
		m.originY = 0 // Reset scroll position when wrapping
	} else {
		// Auto-scroll if needed
		v, err := m.g.View(m.listViewID())
		if err == nil {
			_, h := v.Size()
			innerHeight := h - 2 // Subtract frame borders
			if m.selectedIdx-m.originY >= innerHeight {
				m.originY++
			}
		}
	}
	m.g.Update(func(g *gocui.Gui) error {
		return nil
	})
}

// selectPrev selects the previous item (circular)
func (m *ListModal) selectPrev() {
	if len(m.items) == 0 {
		return
	}
	m.selectedIdx--
	if m.selectedIdx < 0 {
		m.selectedIdx = len(m.items) - 1
		// Scroll to bottom when wrapping
		v, err := m.g.View(m.listViewID())
		if err == nil {
			_, h := v.Size()
			innerHeight := h - 2
			m.originY = len(m.items) - innerHeight
			if m.originY < 0 {
				m.originY = 0
			}
		}
	} else {
		if m.selectedIdx < m.originY {
			m.originY--
		}
	}
	m.g.Update(func(g *gocui.Gui) error {
		return nil
	})
}

func (m *ListModal) onEnter() error {
	if m.selectedIdx >= 0 && m.selectedIdx < len(m.items) {
		if m.items[m.selectedIdx].OnSelect != nil {
			return m.items[m.selectedIdx].OnSelect()
		}
	}
	return nil
}

// OnClose is called when the modal is closed
func (m *ListModal) OnClose() {
	m.g.DeleteView(m.listViewID())
	m.g.DeleteView(m.descViewID())
}
