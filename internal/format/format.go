// Package format classifies input files and converts document formats into
// styled documents.
package format

import (
	"context"
	"slices"

	"github.com/kk-code-lab/peek/internal/document"
	fsutil "github.com/kk-code-lab/peek/internal/fs"
	"github.com/kk-code-lab/peek/internal/logging"
)

// Kind is the top-level classification of an input file.
type Kind int

const (
	KindUnknown Kind = iota
	KindImage
	KindText
	KindDocument
)

func (k Kind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindText:
		return "text"
	case KindDocument:
		return "document"
	default:
		return "unknown"
	}
}

// Formatter converts one document format.
type Formatter interface {
	Name() string
	Extensions() []string
	Parse(ctx context.Context, path string) (*document.Document, error)
}

// Options tunes the built-in formatters.
type Options struct {
	RuleWidth int
}

var imageExtensions = []string{"png", "jpg", "jpeg", "gif", "bmp", "webp", "tiff", "tif", "ico"}

// Detection is the result of classifying a file.
type Detection struct {
	Kind      Kind
	Image     ImageFormat
	Formatter Formatter
	// Encoding is set for KindText.
	Encoding fsutil.Encoding
}

// Registry holds the document formatters in lookup order.
type Registry struct {
	formatters []Formatter
	pdf        Formatter
}

// NewRegistry returns the markdown and PDF formatters.
func NewRegistry(opts Options) *Registry {
	pdf := NewPDF()
	return &Registry{
		formatters: []Formatter{NewMarkdown(opts), pdf},
		pdf:        pdf,
	}
}

// Formatters lists the registered formatters.
func (r *Registry) Formatters() []Formatter {
	return slices.Clone(r.formatters)
}

// ByExtension returns the formatter registered for ext (lower case, no dot).
func (r *Registry) ByExtension(ext string) (Formatter, bool) {
	for _, f := range r.formatters {
		if slices.Contains(f.Extensions(), ext) {
			return f, true
		}
	}
	return nil, false
}

// Detect classifies path from one read of its head: signature, then
// extension, then a text sniff. Files nothing recognises are KindUnknown.
func (r *Registry) Detect(ctx context.Context, path string) (Detection, error) {
	logger := logging.FromContext(ctx)

	sample, err := fsutil.Sniff(path)
	if err != nil {
		return Detection{}, &IOError{Path: path, Err: err}
	}
	if sig, ok := DetectMagic(sample.Head); ok {
		if sig.PDF {
			logger.Debug("classified by signature", logging.FieldPath, path, logging.FieldFormat, r.pdf.Name())
			return Detection{Kind: KindDocument, Formatter: r.pdf}, nil
		}
		logger.Debug("classified by signature", logging.FieldPath, path, logging.FieldFormat, sig.Image)
		return Detection{Kind: KindImage, Image: sig.Image}, nil
	}

	ext := fsutil.Extension(path)
	if slices.Contains(imageExtensions, ext) {
		logger.Debug("classified by extension", logging.FieldPath, path, logging.FieldKind, KindImage)
		return Detection{Kind: KindImage}, nil
	}
	if f, ok := r.ByExtension(ext); ok {
		logger.Debug("classified by extension", logging.FieldPath, path, logging.FieldFormat, f.Name())
		return Detection{Kind: KindDocument, Formatter: f}, nil
	}

	if sample.LooksLikeText() {
		logger.Debug("classified by content", logging.FieldPath, path,
			logging.FieldKind, KindText, logging.FieldEncoding, sample.Encoding)
		return Detection{Kind: KindText, Encoding: sample.Encoding}, nil
	}
	return Detection{Kind: KindUnknown}, nil
}
