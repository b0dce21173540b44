package markdown

import "fmt"

// EventKind distinguishes container boundaries from leaf events.
type EventKind int

const (
	EventStart EventKind = iota
	EventEnd
	EventText
	EventCode
	EventSoftBreak
	EventHardBreak
	EventRule
	EventHTML
)

// Tag names the container a Start or End event belongs to.
type Tag int

const (
	TagNone Tag = iota
	TagHeading
	TagParagraph
	TagCodeBlock
	TagList
	TagItem
	TagBlockQuote
	TagTable
	TagTableHead
	TagTableRow
	TagTableCell
	TagStrong
	TagEmphasis
	TagStrikethrough
	TagLink
	TagImage
)

var tagNames = map[Tag]string{
	TagNone:          "none",
	TagHeading:       "heading",
	TagParagraph:     "paragraph",
	TagCodeBlock:     "code-block",
	TagList:          "list",
	TagItem:          "item",
	TagBlockQuote:    "blockquote",
	TagTable:         "table",
	TagTableHead:     "table-head",
	TagTableRow:      "table-row",
	TagTableCell:     "table-cell",
	TagStrong:        "strong",
	TagEmphasis:      "emphasis",
	TagStrikethrough: "strikethrough",
	TagLink:          "link",
	TagImage:         "image",
}

func (t Tag) String() string {
	if name, ok := tagNames[t]; ok {
		return name
	}
	return fmt.Sprintf("tag(%d)", int(t))
}

// Event is one signal of a parsed markup document. Start and End carry a Tag;
// Text, Code and HTML carry Text. Level is set for headings. Ordered and Start
// describe lists; Start is zero when the list declares no starting number.
type Event struct {
	Kind    EventKind
	Tag     Tag
	Text    string
	Level   int
	Ordered bool
	Start   int
}

func (e Event) String() string {
	switch e.Kind {
	case EventStart:
		return "start(" + e.Tag.String() + ")"
	case EventEnd:
		return "end(" + e.Tag.String() + ")"
	case EventText:
		return fmt.Sprintf("text(%q)", e.Text)
	case EventCode:
		return fmt.Sprintf("code(%q)", e.Text)
	case EventSoftBreak:
		return "softbreak"
	case EventHardBreak:
		return "hardbreak"
	case EventRule:
		return "rule"
	case EventHTML:
		return fmt.Sprintf("html(%q)", e.Text)
	default:
		return fmt.Sprintf("event(%d)", int(e.Kind))
	}
}

// Start returns a start event for tag.
func Start(tag Tag) Event { return Event{Kind: EventStart, Tag: tag} }

// End returns an end event for tag.
func End(tag Tag) Event { return Event{Kind: EventEnd, Tag: tag} }

// Text returns a plain text leaf.
func Text(text string) Event { return Event{Kind: EventText, Text: text} }

// Code returns an inline code leaf.
func Code(text string) Event { return Event{Kind: EventCode, Text: text} }

// StartHeading opens a heading of the given level.
func StartHeading(level int) Event {
	return Event{Kind: EventStart, Tag: TagHeading, Level: level}
}

// StartList opens a list. start is the declared first number of an ordered
// list, or zero when none was given.
func StartList(ordered bool, start int) Event {
	return Event{Kind: EventStart, Tag: TagList, Ordered: ordered, Start: start}
}
