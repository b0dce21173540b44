package document

import (
	"strings"

	textutil "github.com/kk-code-lab/peek/internal/textutil"
)

// Fragment is a run of text sharing one style.
type Fragment struct {
	Text  string
	Style Style
}

// Line is one visual row: styled fragments drawn after Indent spaces.
type Line struct {
	Fragments []Fragment
	Indent    int
}

// Text joins the fragment text without the indent.
func (l Line) Text() string {
	if len(l.Fragments) == 0 {
		return ""
	}
	total := 0
	for _, frag := range l.Fragments {
		total += len(frag.Text)
	}
	var b strings.Builder
	b.Grow(total)
	for _, frag := range l.Fragments {
		b.WriteString(frag.Text)
	}
	return b.String()
}

// Width reports the display width of the line including its indent.
func (l Line) Width() int {
	return l.Indent + textutil.DisplayWidth(l.Text())
}

// IsBlank reports whether the line has no fragments.
func (l Line) IsBlank() bool {
	return len(l.Fragments) == 0
}

// Document is an ordered list of render lines. It is built once and then
// only read.
type Document struct {
	Lines []Line
}

// Append adds a finished line.
func (d *Document) Append(line Line) {
	d.Lines = append(d.Lines, line)
}

// Len is the number of navigable lines.
func (d *Document) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Lines)
}
