package app

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/jesseduffield/gocui"
	"github.com/jesseduffield/lazycore/pkg/boxlayout"
)

// previewByteLimit caps how much of a file the preview reads.
const previewByteLimit = 128 * 1024

// PreviewPanel shows a syntax-highlighted preview of the file queued
// for sending.
type PreviewPanel struct {
	BasePanel
	fileName string
	content  string
	originY  int
}

func NewPreviewPanel(g *gocui.Gui) *PreviewPanel {
	return &PreviewPanel{
		BasePanel: NewBasePanel(ViewPreview, g),
		content:   Gray("  Press s to queue a file for sending"),
	}
}

func (p *PreviewPanel) Draw(dim boxlayout.Dimensions) error {
	v, err := p.g.SetView(p.id, dim.X0, dim.Y0, dim.X1, dim.Y1, 0)
	if err != nil && err.Error() != "unknown view" {
		return err
	}

	p.SetupView(v, "Preview")
	if p.fileName != "" {
		v.Subtitle = " " + p.fileName + " "
	}
	v.Wrap = false

	fmt.Fprint(v, p.content)

	AdjustOrigin(v, &p.originY)
	v.SetOrigin(0, p.originY)

	return nil
}

// ShowFile loads and highlights the given file.
func (p *PreviewPanel) ShowFile(path string) {
	p.fileName = filepath.Base(path)
	p.originY = 0

	f, err := os.Open(path)
	if err != nil {
		p.content = Red("  Cannot open " + path)
		return
	}
	defer f.Close()

	buf := make([]byte, previewByteLimit)
	n, _ := f.Read(buf)
	raw := buf[:n]

	if bytes.ContainsRune(raw, 0) {
		p.content = Gray(fmt.Sprintf("  Binary file, %d bytes read", n))
		return
	}

	p.content = highlightSource(p.fileName, string(raw))
}

// highlightSource applies syntax highlighting with line numbers. The
// lexer is picked from the file name; unknown types fall back to plain.
func highlightSource(fileName, code string) string {
	lexer := lexers.Match(fileName)
	if lexer == nil {
		lexer = lexers.Fallback
	}

	style := styles.Get("dracula")
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	var buf bytes.Buffer
	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code // Return original if highlighting fails
	}

	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}

	lines := strings.Split(buf.String(), "\n")
	var result strings.Builder
	for i, line := range lines {
		if i > 0 {
			result.WriteString("\n")
		}
		result.WriteString(fmt.Sprintf("\x1b[38;5;240m%4d │\x1b[0m %s", i+1, line))
	}

	return result.String()
}

func (p *PreviewPanel) ScrollUp() {
	if p.originY > 0 {
		p.originY--
	}
}

func (p *PreviewPanel) ScrollDown() {
	p.originY++
	// AdjustOrigin clamps on the next draw
}

func (p *PreviewPanel) ScrollToTop() {
	p.originY = 0
}

func (p *PreviewPanel) ScrollToBottom() {
	if p.v == nil {
		return
	}

	contentLines := len(p.v.ViewBufferLines())
	_, viewHeight := p.v.Size()
	innerHeight := viewHeight - 2 // Exclude frame (top + bottom)

	maxOrigin := contentLines - innerHeight
	if maxOrigin < 0 {
		maxOrigin = 0
	}

	p.originY = maxOrigin
}

func (p *PreviewPanel) ScrollUpByWheel() {
	if p.originY > 0 {
		p.originY -= 2
		if p.originY < 0 {
			p.originY = 0
		}
	}
}

func (p *PreviewPanel) ScrollDownByWheel() {
	if p.v == nil {
		return
	}

	contentLines := len(p.v.ViewBufferLines())
	_, viewHeight := p.v.Size()
	innerHeight := viewHeight - 2

	maxOrigin := contentLines - innerHeight
	if maxOrigin < 0 {
		maxOrigin = 0
	}

	if p.originY < maxOrigin {
		p.originY += 2
		if p.originY > maxOrigin {
			p.originY = maxOrigin
		}
	}
}
