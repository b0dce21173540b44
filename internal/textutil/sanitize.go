package textutil

import (
	"fmt"
	"strings"
	"unicode"
)

// SanitizeTerminalText makes text safe to write to a terminal. Control
// characters become '?' and line breaks become spaces. Invisible marks that
// reorder or hide text are spelled out as <U+XXXX>. Tabs and the zero width
// joiner inside emoji sequences pass through.
func SanitizeTerminalText(text string) string {
	if strings.IndexFunc(text, needsEscape) < 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) + 8)
	for _, r := range text {
		switch {
		case !needsEscape(r):
			b.WriteRune(r)
		case r == '\n', r == '\r':
			b.WriteByte(' ')
		case isInvisibleMark(r):
			fmt.Fprintf(&b, "<U+%04X>", r)
		default:
			b.WriteByte('?')
		}
	}
	return b.String()
}

func needsEscape(r rune) bool {
	if r == '\t' {
		return false
	}
	return unicode.IsControl(r) || isInvisibleMark(r)
}

// isInvisibleMark covers bidi controls, zero width space, the byte order
// mark and the Unicode line and paragraph separators.
func isInvisibleMark(r rune) bool {
	switch r {
	case 0x200B, 0xFEFF, 0x2028, 0x2029:
		return true
	}
	return unicode.Is(unicode.Bidi_Control, r)
}
