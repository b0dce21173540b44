package render

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/peek/internal/config"
	"github.com/kk-code-lab/peek/internal/document"
	statepkg "github.com/kk-code-lab/peek/internal/state"
	textutil "github.com/kk-code-lab/peek/internal/textutil"
)

// Renderer draws a document viewport onto a tcell screen.
type Renderer struct {
	screen           tcell.Screen
	theme            ColorTheme
	tabWidth         int
	runeWidthCache   [128]int // ASCII cache (0-127)
	runeWidthCacheMu sync.RWMutex
	runeWidthWide    sync.Map // For non-ASCII runes
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen:   screen,
		theme:    GetColorTheme(),
		tabWidth: config.DefaultTabWidth,
	}
}

// SetTheme replaces the color theme.
func (r *Renderer) SetTheme(theme ColorTheme) {
	r.theme = theme
}

// SetTabWidth sets the tab stop distance used inside code lines.
func (r *Renderer) SetTabWidth(width int) {
	if width > 0 {
		r.tabWidth = width
	}
}

// Render draws the visible slice of doc and the status bar, then shows the
// screen. name labels the status bar.
func (r *Renderer) Render(doc *document.Document, vp *statepkg.ViewportState, name string) {
	r.screen.Clear()

	w, h := r.screen.Size()
	if w <= 0 || h <= 0 {
		r.screen.Show()
		return
	}

	rows := min(max(vp.VisibleRows, 1), max(h-1, 1))
	r.drawContent(doc, vp, w, rows)
	if h > 1 {
		r.drawStatusLine(doc, vp, name, w, h)
	}

	r.screen.Show()
}

func (r *Renderer) drawContent(doc *document.Document, vp *statepkg.ViewportState, w, rows int) {
	baseStyle := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.Foreground)
	cursorStyle := baseStyle.Background(r.theme.CursorBg)
	tildeStyle := baseStyle.Foreground(r.theme.TildeFg).Dim(true)

	for y := 0; y < rows; y++ {
		idx := vp.TopLine + y
		if idx >= doc.Len() {
			r.screen.SetContent(0, y, '~', nil, tildeStyle)
			for x := 1; x < w; x++ {
				r.screen.SetContent(x, y, ' ', nil, baseStyle)
			}
			continue
		}

		fill := baseStyle
		if idx == vp.CursorLine {
			fill = cursorStyle
		}
		r.drawDocumentLine(y, w, vp.LeftCol, doc.Lines[idx], fill)
	}
}

// drawStatusLine renders " name" on the left and "cur/total " on the right
// of the last row.
func (r *Renderer) drawStatusLine(doc *document.Document, vp *statepkg.ViewportState, name string, w, h int) {
	style := tcell.StyleDefault.Background(r.theme.StatusBg).Foreground(r.theme.StatusFg)
	if r.theme.StatusBg == tcell.ColorDefault && r.theme.StatusFg == tcell.ColorDefault {
		style = style.Reverse(true)
	}

	y := h - 1
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}

	position := formatPosition(vp, doc.Len())
	posWidth := r.measureTextWidth(position)
	posX := max(w-posWidth, 0)

	// Keep at least one blank column between the name and the position.
	nameWidth := posX - 2
	if nameWidth > 0 {
		label := r.truncateTextToWidth(textutil.SanitizeTerminalText(name), nameWidth)
		r.drawTextLine(1, y, nameWidth, label, style)
	}
	r.drawTextLine(posX, y, w-posX, position, style)
}

func formatPosition(vp *statepkg.ViewportState, total int) string {
	if total == 0 {
		return "0/0 "
	}
	return fmt.Sprintf("%d/%d ", vp.CursorLine+1, total)
}

// styleFor maps a document style onto terminal attributes over base.
func (r *Renderer) styleFor(s document.Style, base tcell.Style) tcell.Style {
	style := base
	switch s.Foreground() {
	case document.Heading:
		style = style.Foreground(r.theme.HeadingFg)
	case document.Quote:
		style = style.Foreground(r.theme.QuoteFg)
	case document.Code:
		style = style.Foreground(r.theme.CodeFg)
	}
	if s.Contains(document.Bold) {
		style = style.Bold(true)
	}
	if s.Contains(document.Italic) {
		style = style.Underline(true)
	}
	if s.Contains(document.Dim) {
		style = style.Dim(true)
	}
	return style
}
