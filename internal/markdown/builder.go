package markdown

import (
	"strconv"
	"strings"

	"github.com/kk-code-lab/peek/internal/document"
)

const (
	listIndent  = 4
	quoteIndent = 2

	codeFenceMarker = "───"
	bulletMarker    = "• "
	quotePrefix     = "│ "

	defaultRuleWidth = 32
)

// Options tunes the generated document.
type Options struct {
	// RuleWidth is the number of columns used for thematic breaks.
	// Zero selects the default.
	RuleWidth int
}

func (o Options) ruleText() string {
	width := o.RuleWidth
	if width <= 0 {
		width = defaultRuleWidth
	}
	return strings.Repeat("─", width)
}

type listContext struct {
	ordered bool
	index   int
}

// Builder consumes markup events and builds a document in a single forward
// pass. A Builder is used for exactly one document.
type Builder struct {
	opts Options

	doc     *document.Document
	line    document.Line
	style   document.Style
	indent  int
	inCode  bool
	lists   []listContext
	table   tableAccumulator
	inTable bool
	inCell  bool
}

// NewBuilder returns a Builder with an empty document.
func NewBuilder(opts Options) *Builder {
	return &Builder{
		opts: opts,
		doc:  &document.Document{},
	}
}

// Build runs events through a fresh Builder and returns the document.
func Build(events []Event, opts Options) *document.Document {
	b := NewBuilder(opts)
	for _, ev := range events {
		b.Handle(ev)
	}
	return b.Finish()
}

// Finish flushes pending content and returns the document.
func (b *Builder) Finish() *document.Document {
	if b.hasPending() {
		b.flush()
	}
	return b.doc
}

// Handle applies one event.
func (b *Builder) Handle(ev Event) {
	switch ev.Kind {
	case EventStart:
		b.start(ev)
	case EventEnd:
		b.end(ev.Tag)
	case EventText:
		b.text(ev.Text)
	case EventCode:
		if b.inCell {
			b.table.cell.WriteString(ev.Text)
			return
		}
		b.push(ev.Text, document.Union(b.style, document.Code))
	case EventSoftBreak:
		if !b.inCell {
			b.push(" ", b.style)
		}
	case EventHardBreak:
		if !b.inCell {
			b.flush()
		}
	case EventRule:
		b.flush()
		b.push(b.opts.ruleText(), document.Dim)
		b.flush()
	}
}

func (b *Builder) start(ev Event) {
	switch ev.Tag {
	case TagHeading:
		b.style.Insert(document.Bold | document.Heading)
	case TagCodeBlock:
		b.inCode = true
		b.style.Insert(document.Code)
		b.flush()
		b.push(codeFenceMarker, document.Dim)
		b.flush()
	case TagList:
		ctx := listContext{ordered: ev.Ordered}
		if ev.Ordered && ev.Start > 0 {
			ctx.index = ev.Start - 1
		}
		b.lists = append(b.lists, ctx)
		b.indent += listIndent
	case TagItem:
		if len(b.lists) == 0 {
			return
		}
		ctx := &b.lists[len(b.lists)-1]
		if ctx.ordered {
			ctx.index++
			b.push(strconv.Itoa(ctx.index)+". ", b.style)
		} else {
			b.push(bulletMarker, b.style)
		}
	case TagBlockQuote:
		b.indent += quoteIndent
		b.style.Insert(document.Quote)
		b.push(quotePrefix, document.Quote|document.Dim)
	case TagTable:
		b.inTable = true
		b.table.reset()
	case TagTableRow:
		b.table.row = nil
	case TagTableCell:
		b.inCell = true
		b.table.cell.Reset()
	case TagStrong:
		b.style.Insert(document.Bold)
	case TagEmphasis:
		b.style.Insert(document.Italic)
	}
}

func (b *Builder) end(tag Tag) {
	switch tag {
	case TagHeading:
		b.style.Remove(document.Bold | document.Heading)
		b.flush()
		b.blank()
	case TagParagraph:
		if !b.inTable {
			b.flush()
			b.blank()
		}
	case TagCodeBlock:
		if b.hasPending() {
			b.flush()
		}
		b.push(codeFenceMarker, document.Dim)
		b.flush()
		b.inCode = false
		b.style.Remove(document.Code)
	case TagList:
		if len(b.lists) > 0 {
			b.lists = b.lists[:len(b.lists)-1]
		}
		b.indent = max(b.indent-listIndent, 0)
		if b.indent == 0 {
			b.blank()
		}
	case TagItem:
		b.flush()
	case TagBlockQuote:
		b.indent = max(b.indent-quoteIndent, 0)
		b.style.Remove(document.Quote)
		b.flush()
		b.blank()
	case TagTable:
		b.inTable = false
		b.renderTable()
	case TagTableRow:
		b.table.rows = append(b.table.rows, b.table.row)
		b.table.row = nil
	case TagTableCell:
		b.inCell = false
		b.table.row = append(b.table.row, b.table.cell.String())
		b.table.cell.Reset()
	case TagStrong:
		b.style.Remove(document.Bold)
	case TagEmphasis:
		b.style.Remove(document.Italic)
	}
}

func (b *Builder) text(text string) {
	switch {
	case b.inCell:
		b.table.cell.WriteString(text)
	case b.inCode:
		// Code block text arrives as one event; rebuild its line breaks.
		for i, piece := range strings.Split(text, "\n") {
			if i > 0 {
				b.flush()
			}
			b.push(piece, b.style)
		}
	default:
		b.push(text, b.style)
	}
}

func (b *Builder) push(text string, style document.Style) {
	if text == "" {
		return
	}
	b.line.Fragments = append(b.line.Fragments, document.Fragment{Text: text, Style: style})
}

func (b *Builder) hasPending() bool {
	return len(b.line.Fragments) > 0
}

func (b *Builder) flush() {
	b.line.Indent = b.indent
	b.doc.Append(b.line)
	b.line = document.Line{}
}

func (b *Builder) blank() {
	b.doc.Append(document.Line{})
}
