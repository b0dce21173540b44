package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// DisplayWidth reports the number of terminal columns text occupies.
// Width is measured per grapheme cluster so emoji sequences and East Asian
// wide characters count as two columns.
func DisplayWidth(text string) int {
	if isASCII(text) {
		return len(text)
	}
	width := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		width += ClusterWidth(g.Str(), g.Width())
	}
	return width
}

// ClusterWidth normalizes the width reported for a grapheme cluster. Clusters
// that uniseg measures as zero columns (lone combining marks) fall back to the
// rune width of their first rune so they still advance the cursor.
func ClusterWidth(cluster string, measured int) int {
	if measured > 0 {
		return measured
	}
	for _, ru := range cluster {
		if w := runewidth.RuneWidth(ru); w > 0 {
			return w
		}
		break
	}
	return 0
}

// PadToWidth right-pads text with spaces until it is target columns wide.
// Text that is already wide enough is returned unchanged.
func PadToWidth(text string, target int) string {
	current := DisplayWidth(text)
	if current >= target {
		return text
	}
	return text + strings.Repeat(" ", target-current)
}

func isASCII(text string) bool {
	for i := 0; i < len(text); i++ {
		if text[i] >= 0x80 {
			return false
		}
	}
	return true
}
