package format

import (
	"context"
	"fmt"
	"strings"

	"github.com/kk-code-lab/peek/internal/document"
	"github.com/kk-code-lab/peek/internal/logging"
	"github.com/ledongthuc/pdf"
)

// PDF extracts the plain text of every page.
type PDF struct{}

// NewPDF returns the PDF formatter.
func NewPDF() *PDF {
	return &PDF{}
}

func (p *PDF) Name() string { return "pdf" }

func (p *PDF) Extensions() []string { return []string{"pdf"} }

func (p *PDF) Parse(ctx context.Context, path string) (doc *document.Document, err error) {
	// The extractor panics on some malformed files.
	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = &ParseError{Format: p.Name(), Message: fmt.Sprint(r)}
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, &ParseError{Format: p.Name(), Message: "open failed", Err: err}
	}
	defer func() {
		_ = f.Close()
	}()

	pages := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, &ParseError{Format: p.Name(), Message: fmt.Sprintf("page %d", i), Err: err}
		}
		pages = append(pages, text)
	}

	logging.FromContext(ctx).Debug("extracted pdf text", logging.FieldPath, path, logging.FieldPages, len(pages))
	return PagesToDocument(pages), nil
}

// PagesToDocument lays out extracted page text, one unstyled line per text
// line, with a dim page marker between pages.
func PagesToDocument(pages []string) *document.Document {
	doc := &document.Document{}
	for i, text := range pages {
		if i > 0 {
			doc.Append(document.Line{})
			doc.Append(document.Line{Fragments: []document.Fragment{{
				Text:  fmt.Sprintf("── page %d ──", i+1),
				Style: document.Dim,
			}}})
			doc.Append(document.Line{})
		}
		for _, line := range splitLines(text) {
			if line == "" {
				doc.Append(document.Line{})
				continue
			}
			doc.Append(document.Line{Fragments: []document.Fragment{{Text: line}}})
		}
	}
	return doc
}

// splitLines splits on \n and \r\n; a trailing newline does not add a line.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	return strings.Split(text, "\n")
}
