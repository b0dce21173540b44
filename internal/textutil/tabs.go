package textutil

import (
	"strings"

	"github.com/rivo/uniseg"
)

// ExpandTabs replaces each tab with spaces up to the next multiple of
// tabWidth columns. Columns are counted per grapheme cluster, as the pager
// counts them when it draws a row.
func ExpandTabs(text string, tabWidth int) string {
	if tabWidth <= 0 || !strings.ContainsRune(text, '\t') {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) + tabWidth)
	col := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		cluster := g.Str()
		if cluster == "\t" {
			n := tabWidth - col%tabWidth
			b.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		b.WriteString(cluster)
		col += ClusterWidth(cluster, g.Width())
	}
	return b.String()
}
