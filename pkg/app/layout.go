package app

import (
	"github.com/jesseduffield/gocui"
	"github.com/jesseduffield/lazycore/pkg/boxlayout"
)

func (a *App) layoutManager(g *gocui.Gui) error {
	width, height := g.Size()

	root := &boxlayout.Box{
		Direction: boxlayout.ROW,
		Children: []*boxlayout.Box{
			{
				Direction: boxlayout.COLUMN,
				Weight:    1,
				Children: []*boxlayout.Box{
					{
						Direction: boxlayout.ROW,
						Weight:    1,
						Children: []*boxlayout.Box{
							{
								Window: ViewDevices,
								Size:   8,
							},
							{
								Window: ViewTransfers,
								Weight: 1,
							},
						},
					},
					{
						Direction: boxlayout.ROW,
						Weight:    2,
						Children: []*boxlayout.Box{
							{
								Window: ViewPreview,
								Weight: 3,
							},
							{
								Window: ViewActivity,
								Weight: 1,
							},
						},
					},
				},
			},
			{
				Window: ViewStatusbar,
				Size:   1,
			},
		},
	}

	dimensionMap := boxlayout.ArrangeWindows(root, 0, 0, width, height)

	for id, dim := range dimensionMap {
		if panel, ok := a.panels[id]; ok {
			if err := panel.Draw(dim); err != nil {
				return err
			}
		}
	}

	// Flush pending announcements into the activity log
	if activity, ok := a.panels[ViewActivity].(*ActivityPanel); ok {
		for _, ann := range a.announcements.Drain() {
			activity.LogAnnouncement(ann)
		}
	}

	// Render the overlay stack back-to-front, each dialog above the
	// previous one; SetView ordering gives later views a higher z-order.
	fullScreen := boxlayout.Dimensions{X0: 0, Y0: 0, X1: width, Y1: height}
	for _, id := range a.overlays.Stack() {
		if modal, ok := a.modals[id]; ok {
			if err := modal.Draw(fullScreen); err != nil {
				return err
			}
		}
	}

	// Keyboard input goes to the topmost dialog, or the focused panel
	// when the stack is empty
	if top, ok := a.overlays.Topmost(); ok {
		_, err := g.SetCurrentView(top.ID)
		if err != nil && err.Error() != "unknown view" {
			// Ignore "unknown view" error
		}
	} else {
		if len(a.focusOrder) > 0 && a.currentFocus < len(a.focusOrder) {
			currentViewID := a.focusOrder[a.currentFocus]
			_, err := g.SetCurrentView(currentViewID)
			if err != nil && err.Error() != "unknown view" {
				// Ignore "unknown view" error (happens during initialization)
			}
		}
	}

	return nil
}
