// Package direct writes content straight to an output stream without the
// interactive pager.
package direct

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/kk-code-lab/peek/internal/document"
	fsutil "github.com/kk-code-lab/peek/internal/fs"
	textutil "github.com/kk-code-lab/peek/internal/textutil"
)

// Text prints a text file with tabs expanded and control characters made
// harmless.
func Text(w io.Writer, path string, tabWidth int) error {
	content, err := fsutil.ReadText(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return writeText(w, content, tabWidth)
}

func writeText(w io.Writer, content string, tabWidth int) error {
	bw := bufio.NewWriter(w)
	content = strings.TrimSuffix(content, "\n")
	if content != "" {
		for _, line := range strings.Split(content, "\n") {
			line = strings.TrimSuffix(line, "\r")
			line = textutil.ExpandTabs(textutil.SanitizeTerminalText(line), tabWidth)
			_, _ = bw.WriteString(line)
			_ = bw.WriteByte('\n')
		}
	}
	return bw.Flush()
}

// Document prints doc as plain text, one line per row, indent included.
func Document(w io.Writer, doc *document.Document) error {
	bw := bufio.NewWriter(w)
	if doc != nil {
		for _, line := range doc.Lines {
			if line.Indent > 0 {
				_, _ = bw.WriteString(strings.Repeat(" ", line.Indent))
			}
			_, _ = bw.WriteString(textutil.SanitizeTerminalText(line.Text()))
			_ = bw.WriteByte('\n')
		}
	}
	return bw.Flush()
}
