package markdown

import (
	"bytes"

	"github.com/kk-code-lab/peek/internal/document"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

var parser = goldmark.New(
	goldmark.WithExtensions(extension.Table, extension.Strikethrough),
)

// Render parses markdown source and builds its document.
func Render(src []byte, opts Options) *document.Document {
	return Build(Events(src), opts)
}

// Events parses markdown source and returns its well-nested event stream.
func Events(src []byte) []Event {
	root := parser.Parser().Parse(text.NewReader(src))
	w := eventWriter{src: src}
	_ = ast.Walk(root, w.visit)
	return w.events
}

type eventWriter struct {
	src    []byte
	events []Event
}

func (w *eventWriter) emit(ev Event) {
	w.events = append(w.events, ev)
}

func (w *eventWriter) container(entering bool, ev Event) {
	if entering {
		ev.Kind = EventStart
	} else {
		ev.Kind = EventEnd
	}
	w.emit(ev)
}

func (w *eventWriter) visit(n ast.Node, entering bool) (ast.WalkStatus, error) {
	switch node := n.(type) {
	case *ast.Heading:
		w.container(entering, Event{Tag: TagHeading, Level: node.Level})
	case *ast.Paragraph:
		w.container(entering, Event{Tag: TagParagraph})
	case *ast.List:
		ev := Event{Tag: TagList, Ordered: node.IsOrdered()}
		if node.IsOrdered() {
			ev.Start = node.Start
		}
		w.container(entering, ev)
	case *ast.ListItem:
		w.container(entering, Event{Tag: TagItem})
	case *ast.Blockquote:
		w.container(entering, Event{Tag: TagBlockQuote})
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		if entering {
			w.emit(Start(TagCodeBlock))
			w.emit(Text(w.blockLines(n)))
			w.emit(End(TagCodeBlock))
		}
		return ast.WalkSkipChildren, nil
	case *ast.ThematicBreak:
		if entering {
			w.emit(Event{Kind: EventRule})
		}
	case *ast.HTMLBlock:
		if entering {
			w.emit(Event{Kind: EventHTML, Text: w.blockLines(n)})
		}
		return ast.WalkSkipChildren, nil
	case *ast.Emphasis:
		tag := TagEmphasis
		if node.Level >= 2 {
			tag = TagStrong
		}
		w.container(entering, Event{Tag: tag})
	case *ast.Link:
		w.container(entering, Event{Tag: TagLink, Text: string(node.Destination)})
	case *ast.Image:
		w.container(entering, Event{Tag: TagImage, Text: string(node.Destination)})
	case *ast.AutoLink:
		if entering {
			w.emit(Text(string(node.Label(w.src))))
		}
		return ast.WalkSkipChildren, nil
	case *ast.CodeSpan:
		if entering {
			w.emit(Code(w.inlineText(n)))
		}
		return ast.WalkSkipChildren, nil
	case *ast.RawHTML:
		if entering {
			var buf bytes.Buffer
			for i := 0; i < node.Segments.Len(); i++ {
				seg := node.Segments.At(i)
				buf.Write(seg.Value(w.src))
			}
			w.emit(Event{Kind: EventHTML, Text: buf.String()})
		}
		return ast.WalkSkipChildren, nil
	case *ast.Text:
		if entering {
			w.emit(Text(string(node.Segment.Value(w.src))))
			switch {
			case node.HardLineBreak():
				w.emit(Event{Kind: EventHardBreak})
			case node.SoftLineBreak():
				w.emit(Event{Kind: EventSoftBreak})
			}
		}
	case *ast.String:
		if entering {
			w.emit(Text(string(node.Value)))
		}
	case *east.Strikethrough:
		w.container(entering, Event{Tag: TagStrikethrough})
	case *east.Table:
		w.container(entering, Event{Tag: TagTable})
	case *east.TableHeader:
		// Header cells sit directly under the header node; wrap them in a
		// row so they become the first accumulated row.
		if entering {
			w.emit(Start(TagTableHead))
			w.emit(Start(TagTableRow))
		} else {
			w.emit(End(TagTableRow))
			w.emit(End(TagTableHead))
		}
	case *east.TableRow:
		w.container(entering, Event{Tag: TagTableRow})
	case *east.TableCell:
		w.container(entering, Event{Tag: TagTableCell})
	}
	return ast.WalkContinue, nil
}

// blockLines joins the raw source lines of a block node.
func (w *eventWriter) blockLines(n ast.Node) string {
	lines := n.Lines()
	var buf bytes.Buffer
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(w.src))
	}
	return buf.String()
}

// inlineText concatenates the text of an inline node's children.
func (w *eventWriter) inlineText(n ast.Node) string {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch child := c.(type) {
		case *ast.Text:
			buf.Write(child.Segment.Value(w.src))
		case *ast.String:
			buf.Write(child.Value)
		}
	}
	return buf.String()
}
