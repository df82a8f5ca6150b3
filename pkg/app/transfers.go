package app

import (
	"fmt"
	"strings"

	"github.com/jesseduffield/gocui"
	"github.com/jesseduffield/lazycore/pkg/boxlayout"

	"github.com/quartzlabs/lazysend/pkg/history"
	"github.com/quartzlabs/lazysend/pkg/transfer"
)

const progressBarWidth = 12

// TransfersPanel lists the session's transfers and the stored history,
// one tab each.
type TransfersPanel struct {
	BasePanel
	manager *transfer.Manager
	store   *history.Store

	tabs     []string
	tabIndex int
	active   []transfer.Transfer
	records  []history.Record
	items    []string
	selected int
	originY  int

	// Tab state preservation
	tabSelected map[string]int
	tabOriginY  map[string]int
}

func NewTransfersPanel(g *gocui.Gui, manager *transfer.Manager, store *history.Store) *TransfersPanel {
	panel := &TransfersPanel{
		BasePanel:   NewBasePanel(ViewTransfers, g),
		manager:     manager,
		store:       store,
		tabs:        []string{"Active", "History"},
		tabSelected: make(map[string]int),
		tabOriginY:  make(map[string]int),
	}
	panel.Refresh()
	panel.ReloadHistory()
	return panel
}

// Refresh reloads the active transfer list from the manager.
func (t *TransfersPanel) Refresh() {
	t.active = t.manager.List()
	t.loadItemsForCurrentTab()
}

// ReloadHistory reloads the stored history tab.
func (t *TransfersPanel) ReloadHistory() {
	if t.store == nil {
		return
	}
	records, err := t.store.Recent(50)
	if err == nil {
		t.records = records
	}
	t.loadItemsForCurrentTab()
}

func (t *TransfersPanel) loadItemsForCurrentTab() {
	tabName := t.tabs[t.tabIndex]

	switch tabName {
	case "Active":
		if len(t.active) == 0 {
			t.items = []string{"No transfers yet"}
			break
		}
		t.items = make([]string, len(t.active))
		for i, tr := range t.active {
			t.items[i] = formatTransferRow(tr)
		}
	case "History":
		if len(t.records) == 0 {
			t.items = []string{"No history"}
			break
		}
		t.items = make([]string, len(t.records))
		for i, r := range t.records {
			t.items[i] = formatHistoryRow(r)
		}
	}

	// Restore previous selection and scroll position for this tab
	if prevSelected, exists := t.tabSelected[tabName]; exists {
		t.selected = prevSelected
		if t.selected >= len(t.items) {
			t.selected = len(t.items) - 1
		}
		if t.selected < 0 {
			t.selected = 0
		}
	} else {
		t.selected = 0
	}

	if prevOriginY, exists := t.tabOriginY[tabName]; exists {
		t.originY = prevOriginY
	} else {
		t.originY = 0
	}
}

func formatTransferRow(tr transfer.Transfer) string {
	arrow := "↑"
	if tr.Direction == transfer.DirectionReceive {
		arrow = "↓"
	}

	bar := progressBar(tr.Progress())
	name := tr.FileName

	switch tr.Status {
	case transfer.StatusComplete:
		return fmt.Sprintf(" %s %s %s %s", arrow, bar, Green("done   "), name)
	case transfer.StatusFailed:
		return fmt.Sprintf(" %s %s %s %s", arrow, bar, Red("failed "), Red(name))
	case transfer.StatusCancelled:
		return fmt.Sprintf(" %s %s %s %s", arrow, bar, Gray("stopped"), Gray(name))
	case transfer.StatusActive:
		return fmt.Sprintf(" %s %s %s %s", arrow, bar, Cyan(fmt.Sprintf("%5.1f%% ", tr.Progress()*100)), name)
	default:
		return fmt.Sprintf(" %s %s %s %s", arrow, bar, Yellow("pending"), name)
	}
}

func formatHistoryRow(r history.Record) string {
	arrow := "↑"
	if r.Direction == "receive" {
		arrow = "↓"
	}
	when := r.EndedAt.Format("01-02 15:04")
	if r.Status != "complete" {
		return fmt.Sprintf(" %s %s %s %s", arrow, Gray(when), Red(r.Status), r.FileName)
	}
	return fmt.Sprintf(" %s %s %s", arrow, Gray(when), r.FileName)
}

func progressBar(p float64) string {
	filled := int(p * progressBarWidth)
	if filled > progressBarWidth {
		filled = progressBarWidth
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", progressBarWidth-filled)
}

func (t *TransfersPanel) Draw(dim boxlayout.Dimensions) error {
	v, err := t.g.SetView(t.id, dim.X0, dim.Y0, dim.X1, dim.Y1, 0)
	if err != nil && err.Error() != "unknown view" {
		return err
	}

	// Setup view WITHOUT title (tabs replace title)
	t.v = v
	v.Clear()
	v.Frame = true
	v.FrameRunes = t.frameRunes

	v.Tabs = t.tabs
	v.TabIndex = t.tabIndex
	v.Footer = t.buildFooter()
	v.Subtitle = ""

	if t.focused {
		v.FrameColor = FocusedFrameColor
		v.TitleColor = FocusedTitleColor
		v.SelFgColor = FocusedActiveTabColor
	} else {
		v.FrameColor = PrimaryFrameColor
		v.TitleColor = PrimaryTitleColor
		v.SelFgColor = PrimaryActiveTabColor
	}

	v.Highlight = true
	v.SelBgColor = SelectionBgColor

	for _, item := range t.items {
		fmt.Fprintln(v, item)
	}

	AdjustOrigin(v, &t.originY)

	v.SetCursor(0, t.selected-t.originY)
	v.SetOrigin(0, t.originY)

	return nil
}

// buildFooter builds the footer text (selection info in "n of n" format)
func (t *TransfersPanel) buildFooter() string {
	if len(t.items) == 0 || t.items[0] == "No transfers yet" || t.items[0] == "No history" {
		return ""
	}
	return fmt.Sprintf("%d of %d", t.selected+1, len(t.items))
}

// Selected returns the selected transfer when the Active tab is showing.
func (t *TransfersPanel) Selected() (transfer.Transfer, bool) {
	if t.tabs[t.tabIndex] != "Active" {
		return transfer.Transfer{}, false
	}
	if t.selected < 0 || t.selected >= len(t.active) {
		return transfer.Transfer{}, false
	}
	return t.active[t.selected], true
}

func (t *TransfersPanel) NextTab() {
	t.saveTabState()
	t.tabIndex = (t.tabIndex + 1) % len(t.tabs)
	t.loadItemsForCurrentTab()
}

func (t *TransfersPanel) PrevTab() {
	t.saveTabState()
	t.tabIndex = (t.tabIndex - 1 + len(t.tabs)) % len(t.tabs)
	t.loadItemsForCurrentTab()
}

func (t *TransfersPanel) saveTabState() {
	tabName := t.tabs[t.tabIndex]
	t.tabSelected[tabName] = t.selected
	t.tabOriginY[tabName] = t.originY
}

func (t *TransfersPanel) handleTabClick(tabIndex int) error {
	if tabIndex < 0 || tabIndex >= len(t.tabs) || tabIndex == t.tabIndex {
		return nil
	}
	t.saveTabState()
	t.tabIndex = tabIndex
	t.loadItemsForCurrentTab()
	return nil
}

func (t *TransfersPanel) handleListClick(y int) error {
	idx := t.originY + y
	if idx < 0 || idx >= len(t.items) {
		return nil
	}
	t.selected = idx
	return nil
}

func (t *TransfersPanel) SelectNext() {
	if len(t.items) == 0 {
		return
	}

	if t.selected < len(t.items)-1 {
		t.selected++

		// Auto-scroll if needed
		if t.v != nil {
			_, h := t.v.Size()
			innerHeight := h - 2 // Subtract frame borders
			if t.selected-t.originY >= innerHeight {
				t.originY++
			}
		}
	}
}

func (t *TransfersPanel) SelectPrev() {
	if len(t.items) == 0 {
		return
	}

	if t.selected > 0 {
		t.selected--

		if t.selected < t.originY {
			t.originY--
		}
	}
}

func (t *TransfersPanel) ScrollToTop() {
	t.selected = 0
	t.originY = 0
}

func (t *TransfersPanel) ScrollToBottom() {
	if len(t.items) == 0 {
		return
	}
	t.selected = len(t.items) - 1
	if t.v != nil {
		_, h := t.v.Size()
		innerHeight := h - 2
		t.originY = len(t.items) - innerHeight
		if t.originY < 0 {
			t.originY = 0
		}
	}
}

// ScrollUpByWheel scrolls the transfer list up by 2 lines (mouse wheel)
func (t *TransfersPanel) ScrollUpByWheel() {
	if t.originY > 0 {
		t.originY -= 2
		if t.originY < 0 {
			t.originY = 0
		}
	}
}

// ScrollDownByWheel scrolls the transfer list down by 2 lines (mouse wheel)
func (t *TransfersPanel) ScrollDownByWheel() {
	if t.v == nil || len(t.items) == 0 {
		return
	}

	contentLines := len(t.items)
	_, viewHeight := t.v.Size()
	innerHeight := viewHeight - 2 // Exclude frame (top + bottom)

	maxOrigin := contentLines - innerHeight
	if maxOrigin < 0 {
		maxOrigin = 0
	}

	if t.originY < maxOrigin {
		t.originY += 2
		if t.originY > maxOrigin {
			t.originY = maxOrigin
		}
	}
}
