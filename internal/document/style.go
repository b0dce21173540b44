package document

// Style is a set of presentation attributes attached to a text fragment.
type Style uint8

const (
	Bold Style = 1 << iota
	Italic
	Dim
	Heading
	Quote
	Code
)

// Plain is the empty style.
const Plain Style = 0

// Contains reports whether every attribute in q is set in s.
func (s Style) Contains(q Style) bool {
	return s&q == q
}

// Insert adds the attributes of o to s.
func (s *Style) Insert(o Style) {
	*s |= o
}

// Remove clears the attributes of o from s.
func (s *Style) Remove(o Style) {
	*s &^= o
}

// Union returns the combination of a and b.
func Union(a, b Style) Style {
	return a | b
}

// Foreground returns the attribute that decides the foreground color.
// Heading wins over Quote, Quote wins over Code.
func (s Style) Foreground() Style {
	switch {
	case s.Contains(Heading):
		return Heading
	case s.Contains(Quote):
		return Quote
	case s.Contains(Code):
		return Code
	default:
		return Plain
	}
}

func (s Style) String() string {
	if s == Plain {
		return "plain"
	}
	names := []struct {
		attr Style
		name string
	}{
		{Bold, "bold"},
		{Italic, "italic"},
		{Dim, "dim"},
		{Heading, "heading"},
		{Quote, "quote"},
		{Code, "code"},
	}
	out := ""
	for _, n := range names {
		if !s.Contains(n.attr) {
			continue
		}
		if out != "" {
			out += "|"
		}
		out += n.name
	}
	return out
}
