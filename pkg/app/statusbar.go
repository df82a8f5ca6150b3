package app

import (
	"fmt"
	"strings"

	"github.com/jesseduffield/gocui"
	"github.com/jesseduffield/lazycore/pkg/boxlayout"
)

type StatusBar struct {
	BasePanel
	app *App // Reference to App for task state and toasts
}

func NewStatusBar(g *gocui.Gui, app *App) *StatusBar {
	return &StatusBar{
		BasePanel: NewBasePanel(ViewStatusbar, g),
		app:       app,
	}
}

func (s *StatusBar) Draw(dim boxlayout.Dimensions) error {
	// StatusBar has no frame, so adjust dimensions
	frameOffset := 1
	x0 := dim.X0 - frameOffset
	y0 := dim.Y0 - frameOffset
	x1 := dim.X1 + frameOffset
	y1 := dim.Y1 + frameOffset

	v, err := s.g.SetView(s.id, x0, y0, x1, y1, 0)
	if err != nil && err.Error() != "unknown view" {
		return err
	}

	s.v = v
	v.Clear()
	v.Frame = false

	var leftContent string
	var visibleLen int

	// Show spinner if a task is running
	if s.app.taskRunning.Load() {
		frameIndex := s.app.spinnerFrame.Load()
		spinner := string(spinnerFrames[frameIndex])

		taskName := ""
		if val := s.app.runningTaskName.Load(); val != nil {
			taskName = val.(string)
		}

		leftContent = fmt.Sprintf(" %s %s ", Cyan(spinner), Gray(taskName))
		visibleLen += 1 + 1 + 1 + len(taskName) + 1 // " " + spinner + " " + taskName + " "
	} else {
		leftContent = " " // Single space when not running
		visibleLen += 1
	}

	// Toast takes over the key hints until it expires
	if s.app.toast != "" {
		msg := s.app.toast
		leftContent += Stylize(msg, Style{FgColor: ColorYellow, Bold: true}) + " "
		visibleLen += len(msg) + 1
	} else {
		// Helper to format key binding: [k]ey
		appendKey := func(key, desc string) {
			styled := fmt.Sprintf("[%s]%s", Cyan(key), Gray(desc))
			vLen := 1 + len(key) + 1 + len(desc)

			leftContent += styled + " "
			visibleLen += vLen + 1
		}

		appendKey("s", "end")
		appendKey("r", "eceive")
		appendKey("g", "en code")
		appendKey("x", "cancel")
		appendKey("h", "elp")
		appendKey("q", "uit")
	}

	// Right content (metadata)
	styledRight := fmt.Sprintf("%s %s", Blue(s.app.config.AppName), Gray(s.app.config.Version))
	rightLen := len(s.app.config.AppName) + 1 + len(s.app.config.Version)

	viewWidth, _ := v.Size()
	paddingLen := viewWidth - visibleLen - rightLen - 2 // -2 for extra safety buffer
	if paddingLen < 1 {
		paddingLen = 1
	}

	fmt.Fprint(v, leftContent+strings.Repeat(" ", paddingLen)+styledRight)

	return nil
}

// The status bar never takes focus
func (s *StatusBar) OnFocus() {}
func (s *StatusBar) OnBlur()  {}
