package format

import (
	"context"
	"unicode/utf8"

	"github.com/kk-code-lab/peek/internal/document"
	fsutil "github.com/kk-code-lab/peek/internal/fs"
	"github.com/kk-code-lab/peek/internal/markdown"
)

// Markdown renders CommonMark with GFM tables and strikethrough.
type Markdown struct {
	opts markdown.Options
}

// NewMarkdown returns the markdown formatter.
func NewMarkdown(opts Options) *Markdown {
	return &Markdown{opts: markdown.Options{RuleWidth: opts.RuleWidth}}
}

func (m *Markdown) Name() string { return "markdown" }

func (m *Markdown) Extensions() []string {
	return []string{"md", "markdown", "mdown", "mkd", "mkdown", "mdwn"}
}

func (m *Markdown) Parse(ctx context.Context, path string) (*document.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	text, err := fsutil.ReadText(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	if !utf8.ValidString(text) {
		return nil, &ParseError{Format: m.Name(), Message: "content is not valid UTF-8"}
	}
	return markdown.Render([]byte(text), m.opts), nil
}
