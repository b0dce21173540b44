package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/peek/internal/document"
	textutil "github.com/kk-code-lab/peek/internal/textutil"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

func (r *Renderer) cachedRuneWidth(ru rune) int {
	if ru < 128 {
		r.runeWidthCacheMu.RLock()
		width := r.runeWidthCache[ru]
		r.runeWidthCacheMu.RUnlock()

		if width == 0 && ru != 0 {
			actualWidth := runewidth.RuneWidth(ru)
			if actualWidth < 0 {
				actualWidth = 0
			}
			r.runeWidthCacheMu.Lock()
			r.runeWidthCache[ru] = actualWidth + 1
			r.runeWidthCacheMu.Unlock()
			return actualWidth
		}
		return width - 1
	}

	if cached, ok := r.runeWidthWide.Load(ru); ok {
		return cached.(int)
	}

	width := runewidth.RuneWidth(ru)
	if width < 0 {
		width = 0
	}
	r.runeWidthWide.Store(ru, width)
	return width
}

func (r *Renderer) measureTextWidth(text string) int {
	width := 0
	for _, ru := range text {
		width += r.cachedRuneWidth(ru)
	}
	return width
}

// truncateTextToWidth shortens text to maxWidth columns, ending it with an
// ellipsis when something was cut.
func (r *Renderer) truncateTextToWidth(text string, maxWidth int) string {
	if maxWidth <= 0 || text == "" {
		return ""
	}

	if r.measureTextWidth(text) <= maxWidth {
		return text
	}

	const ellipsis = "…"
	ellipsisWidth := r.cachedRuneWidth([]rune(ellipsis)[0])
	if ellipsisWidth <= 0 {
		ellipsisWidth = 1
	}
	if maxWidth <= ellipsisWidth {
		return ellipsis
	}

	available := maxWidth - ellipsisWidth
	var builder strings.Builder
	currentWidth := 0

	for _, ru := range text {
		runeWidth := r.cachedRuneWidth(ru)
		if currentWidth+runeWidth > available {
			break
		}
		builder.WriteRune(ru)
		currentWidth += runeWidth
	}

	builder.WriteString(ellipsis)
	return builder.String()
}

// drawTextLine draws text from startX and returns the column after it.
func (r *Renderer) drawTextLine(startX, y, maxWidth int, text string, style tcell.Style) int {
	x := startX
	for _, ru := range text {
		w := r.cachedRuneWidth(ru)
		if x-startX+w > maxWidth {
			break
		}
		r.screen.SetContent(x, y, ru, nil, style)
		x += w
	}
	return x
}

// lineCursor walks the columns of one document line. Columns left of
// leftCol are consumed without drawing; a wide cluster cut by the left edge
// leaves blank cells.
type lineCursor struct {
	r       *Renderer
	y       int
	width   int
	leftCol int
	col     int
}

func (c *lineCursor) x() int {
	return c.col - c.leftCol
}

func (c *lineCursor) full() bool {
	return c.x() >= c.width
}

// blank advances n columns of spaces.
func (c *lineCursor) blank(n int, style tcell.Style) {
	for i := 0; i < n && !c.full(); i++ {
		if c.col >= c.leftCol {
			c.r.screen.SetContent(c.x(), c.y, ' ', nil, style)
		}
		c.col++
	}
}

// cluster draws one grapheme cluster of display width w.
func (c *lineCursor) cluster(text string, w int, style tcell.Style) {
	if w <= 0 || c.full() {
		return
	}
	if c.col < c.leftCol {
		if c.col+w > c.leftCol {
			skipped := c.leftCol - c.col
			c.col = c.leftCol
			c.blank(w-skipped, style)
			return
		}
		c.col += w
		return
	}
	if c.x()+w > c.width {
		c.blank(c.width-c.x(), style)
		return
	}
	runes := []rune(text)
	c.r.screen.SetContent(c.x(), c.y, runes[0], runes[1:], style)
	c.col += w
}

// drawDocumentLine draws line at row y clipped to width columns, starting
// leftCol columns into the line. Remaining cells are filled with fill.
func (r *Renderer) drawDocumentLine(y, width, leftCol int, line document.Line, fill tcell.Style) {
	c := &lineCursor{r: r, y: y, width: width, leftCol: leftCol}
	c.blank(line.Indent, fill)

	for _, frag := range line.Fragments {
		style := r.styleFor(frag.Style, fill)
		text := textutil.SanitizeTerminalText(frag.Text)
		g := uniseg.NewGraphemes(text)
		for g.Next() && !c.full() {
			cluster := g.Str()
			if cluster == "\t" {
				c.blank(r.tabWidth-(c.col%r.tabWidth), style)
				continue
			}
			c.cluster(cluster, textutil.ClusterWidth(cluster, g.Width()), style)
		}
	}

	if c.col < c.leftCol {
		c.col = c.leftCol
	}
	c.blank(width-c.x(), fill)
}
