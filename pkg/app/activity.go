package app

import (
	"fmt"
	"time"

	"github.com/jesseduffield/gocui"
	"github.com/jesseduffield/lazycore/pkg/boxlayout"

	"github.com/quartzlabs/lazysend/pkg/overlay"
)

// ActivityPanel is the append-only session log: transfer events, room
// changes and screen-reader announcements all land here.
type ActivityPanel struct {
	BasePanel
	content            string
	originY            int  // Scroll position
	autoScrollToBottom bool // Auto-scroll to bottom on next draw
}

func NewActivityPanel(g *gocui.Gui) *ActivityPanel {
	return &ActivityPanel{
		BasePanel: NewBasePanel(ViewActivity, g),
		content:   "",
	}
}

func (o *ActivityPanel) Draw(dim boxlayout.Dimensions) error {
	v, err := o.g.SetView(o.id, dim.X0, dim.Y0, dim.X1, dim.Y1, 0)
	if err != nil && err.Error() != "unknown view" {
		return err
	}

	o.SetupView(v, "Activity")
	o.v = v
	v.Wrap = true
	fmt.Fprint(v, o.content)

	// Auto-scroll to bottom if flagged
	if o.autoScrollToBottom {
		contentLines := len(v.ViewBufferLines())
		_, viewHeight := v.Size()
		innerHeight := viewHeight - 2 // Exclude frame
		maxOrigin := contentLines - innerHeight
		if maxOrigin < 0 {
			maxOrigin = 0
		}
		o.originY = maxOrigin
		o.autoScrollToBottom = false
	}

	AdjustOrigin(v, &o.originY)
	v.SetOrigin(0, o.originY)

	return nil
}

// LogAction logs an action with timestamp and optional details
func (o *ActivityPanel) LogAction(action string, details ...string) {
	timestamp := time.Now().Format("15:04:05")

	if o.content != "" {
		o.content += "\n"
	}

	header := fmt.Sprintf("%s %s", Gray(timestamp), Stylize(action, Style{FgColor: ColorCyan, Bold: true}))
	o.content += header + "\n"

	for _, detail := range details {
		o.content += "  " + detail + "\n"
	}

	o.autoScrollToBottom = true
}

// LogActionRed logs an action in red (for errors/warnings)
func (o *ActivityPanel) LogActionRed(action string, details ...string) {
	timestamp := time.Now().Format("15:04:05")

	if o.content != "" {
		o.content += "\n"
	}

	header := fmt.Sprintf("%s %s", Gray(timestamp),
		Stylize(action, Style{FgColor: ColorRed, Bold: true}))
	o.content += header + "\n"

	for _, detail := range details {
		o.content += "  " + Red(detail) + "\n"
	}

	o.autoScrollToBottom = true
}

// LogAnnouncement appends a queued screen-reader announcement.
func (o *ActivityPanel) LogAnnouncement(ann overlay.Announcement) {
	tag := Gray(ann.Urgency.String())
	o.content += fmt.Sprintf("  %s %s\n", tag, Gray(ann.Message))
	o.autoScrollToBottom = true
}

// ScrollUp scrolls the activity panel up
func (o *ActivityPanel) ScrollUp() {
	if o.originY > 0 {
		o.originY--
	}
}

// ScrollDown scrolls the activity panel down
func (o *ActivityPanel) ScrollDown() {
	o.originY++
	// AdjustOrigin will be called in Draw() to ensure bounds
}

// ScrollUpByWheel scrolls the activity panel up by 2 lines (mouse wheel)
func (o *ActivityPanel) ScrollUpByWheel() {
	if o.originY > 0 {
		o.originY -= 2
		if o.originY < 0 {
			o.originY = 0
		}
	}
}

// ScrollDownByWheel scrolls the activity panel down by 2 lines (mouse wheel)
func (o *ActivityPanel) ScrollDownByWheel() {
	if o.v == nil {
		return
	}

	contentLines := len(o.v.ViewBufferLines())
	_, viewHeight := o.v.Size()
	innerHeight := viewHeight - 2 // Exclude frame (top + bottom)

	maxOrigin := contentLines - innerHeight
	if maxOrigin < 0 {
		maxOrigin = 0
	}

	if o.originY < maxOrigin {
		o.originY += 2
		if o.originY > maxOrigin {
			o.originY = maxOrigin
		}
	}
}

// ScrollToTop scrolls to the top of the activity panel
func (o *ActivityPanel) ScrollToTop() {
	o.originY = 0
}

// ScrollToBottom scrolls to the bottom of the activity panel
func (o *ActivityPanel) ScrollToBottom() {
	if o.v == nil {
		return
	}

	contentLines := len(o.v.ViewBufferLines())
	_, viewHeight := o.v.Size()
	innerHeight := viewHeight - 2

	maxOrigin := contentLines - innerHeight
	if maxOrigin < 0 {
		maxOrigin = 0
	}

	o.originY = maxOrigin
}
