package app

import (
	"strings"

	"github.com/jesseduffield/gocui"
	"github.com/jesseduffield/lazycore/pkg/boxlayout"
)

// Modal represents a modal dialog
type Modal interface {
	ID() string
	Draw(dim boxlayout.Dimensions) error
	HandleKey(key any, mod gocui.Modifier) error
	OnClose()
}

// ModalStyle holds styling options shared by the modal widgets
type ModalStyle struct {
	TitleColor  Color // Color for title (default: ColorDefault)
	BorderColor Color // Color for border (default: ColorDefault)
}

func (s ModalStyle) apply(v *gocui.View) {
	if s.BorderColor != ColorDefault {
		v.FrameColor = gocui.Attribute(colorToAnsiCode(s.BorderColor))
	}
	if s.TitleColor != ColorDefault {
		v.TitleColor = gocui.Attribute(colorToAnsiCode(s.TitleColor))
	}
}

// modalWidth computes a centered modal width: fraction of the screen
// (num/den), at least min, never wider than the screen minus margin.
func modalWidth(screenWidth, num, den, min int) int {
	w := num * screenWidth / den
	if w < min {
		if screenWidth-2 < min {
			w = screenWidth - 2
		} else {
			w = min
		}
	}
	return w
}

// wrapLines word-wraps text to the given width, indenting each output
// line with two spaces. Paragraph breaks are preserved.
func wrapLines(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}

	var lines []string
	for _, para := range strings.Split(text, "\n") {
		if len(para) == 0 {
			lines = append(lines, "")
			continue
		}
		if len(para) <= width {
			lines = append(lines, "  "+para)
			continue
		}

		words := strings.Fields(para)
		currentLine := "  "
		for _, word := range words {
			if len(currentLine)+len(word)+1 <= width+2 { // +2 for initial "  "
				if currentLine == "  " {
					currentLine += word
				} else {
					currentLine += " " + word
				}
			} else {
				lines = append(lines, currentLine)
				currentLine = "  " + word
			}
		}
		if currentLine != "  " {
			lines = append(lines, currentLine)
		}
	}

	if len(lines) == 0 {
		lines = append(lines, "")
	}
	return lines
}

// colorToAnsiCode converts Color to gocui color attribute
func colorToAnsiCode(c Color) int {
	switch c {
	case ColorBlack:
		return int(gocui.ColorBlack)
	case ColorRed:
		return int(gocui.ColorRed)
	case ColorGreen:
		return int(gocui.ColorGreen)
	case ColorYellow:
		return int(gocui.ColorYellow)
	case ColorBlue:
		return int(gocui.ColorBlue)
	case ColorMagenta:
		return int(gocui.ColorMagenta)
	case ColorCyan:
		return int(gocui.ColorCyan)
	case ColorWhite:
		return int(gocui.ColorWhite)
	default:
		return int(gocui.ColorDefault)
	}
}
