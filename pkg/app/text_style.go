package app

import "fmt"

// Color represents terminal colors
type Color int

const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
)

// colorToFgCode converts Color to ANSI foreground code
func colorToFgCode(c Color) string {
	codes := map[Color]string{
		ColorDefault: "",
		ColorBlack:   "30",
		ColorRed:     "31",
		ColorGreen:   "32",
		ColorYellow:  "33",
		ColorBlue:    "34",
		ColorMagenta: "35",
		ColorCyan:    "36",
		ColorWhite:   "37",
	}
	return codes[c]
}

// Style represents text styling options
type Style struct {
	FgColor   Color
	Bold      bool
	Dim       bool
	Underline bool
}

// Stylize applies the given style to text using ANSI escape codes
func Stylize(text string, style Style) string {
	if text == "" {
		return text
	}

	codes := make([]string, 0, 3)

	if fgCode := colorToFgCode(style.FgColor); fgCode != "" {
		codes = append(codes, fgCode)
	}
	if style.Bold {
		codes = append(codes, "1")
	}
	if style.Dim {
		codes = append(codes, "2")
	}
	if style.Underline {
		codes = append(codes, "4")
	}

	if len(codes) == 0 {
		return text
	}

	var escape string
	for i, code := range codes {
		if i == 0 {
			escape = code
		} else {
			escape += ";" + code
		}
	}

	return fmt.Sprintf("\x1b[%sm%s\x1b[0m", escape, text)
}

// Colorize applies a foreground color to text
func Colorize(text string, color Color) string {
	return Stylize(text, Style{FgColor: color})
}

// Red colors text red
func Red(text string) string {
	return Colorize(text, ColorRed)
}

// Green colors text green
func Green(text string) string {
	return Colorize(text, ColorGreen)
}

// Yellow colors text yellow
func Yellow(text string) string {
	return Colorize(text, ColorYellow)
}

// Blue colors text blue
func Blue(text string) string {
	return Colorize(text, ColorBlue)
}

// Cyan colors text cyan
func Cyan(text string) string {
	return Colorize(text, ColorCyan)
}

// Gray colors text gray (using 256-color ANSI code)
func Gray(text string) string {
	if text == "" {
		return text
	}
	return fmt.Sprintf("\x1b[38;5;240m%s\x1b[0m", text)
}

// Bold makes text bold
func Bold(text string) string {
	return Stylize(text, Style{Bold: true})
}
