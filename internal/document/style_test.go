package document

import "testing"

var allStyles = []Style{Bold, Italic, Dim, Heading, Quote, Code}

func TestInsertRemoveRoundTrip(t *testing.T) {
	bases := []Style{Plain, Bold, Italic | Dim, Heading | Quote | Code}
	for _, base := range bases {
		for _, attr := range allStyles {
			if base.Contains(attr) {
				continue
			}
			s := base
			s.Insert(attr)
			s.Remove(attr)
			if s != base {
				t.Fatalf("insert/remove of %v changed %v into %v", attr, base, s)
			}
		}
	}
}

func TestDisjointAttributes(t *testing.T) {
	for _, a := range allStyles {
		for _, b := range allStyles {
			if a == b {
				continue
			}
			var s Style
			s.Insert(a)
			s.Insert(b)
			if !s.Contains(a) || !s.Contains(b) {
				t.Fatalf("expected %v to contain %v and %v", s, a, b)
			}
			s.Remove(a)
			if s.Contains(a) {
				t.Fatalf("expected %v removed from %v", a, s)
			}
			if !s.Contains(b) {
				t.Fatalf("removing %v dropped %v", a, b)
			}
		}
	}
}

func TestContainsRequiresAllBits(t *testing.T) {
	s := Bold | Heading
	if !s.Contains(Bold | Heading) {
		t.Fatalf("expected %v to contain bold|heading", s)
	}
	if s.Contains(Bold | Italic) {
		t.Fatalf("expected %v not to contain bold|italic", s)
	}
	if !s.Contains(Plain) {
		t.Fatalf("every style contains the empty set")
	}
}

func TestUnionIsPure(t *testing.T) {
	a := Bold
	b := Code
	u := Union(a, b)
	if u != Bold|Code {
		t.Fatalf("Union = %v", u)
	}
	if a != Bold || b != Code {
		t.Fatalf("Union mutated its arguments")
	}
}

func TestForegroundPriority(t *testing.T) {
	tests := []struct {
		style Style
		want  Style
	}{
		{Plain, Plain},
		{Bold | Italic | Dim, Plain},
		{Code | Bold, Code},
		{Quote | Code, Quote},
		{Heading | Quote | Code, Heading},
		{Heading | Code | Dim, Heading},
	}
	for _, tt := range tests {
		if got := tt.style.Foreground(); got != tt.want {
			t.Fatalf("Foreground(%v) = %v, want %v", tt.style, got, tt.want)
		}
	}
}

func TestLineTextAndWidth(t *testing.T) {
	line := Line{
		Indent: 2,
		Fragments: []Fragment{
			{Text: "你好", Style: Bold},
			{Text: " x", Style: Plain},
		},
	}
	if got := line.Text(); got != "你好 x" {
		t.Fatalf("Text() = %q", got)
	}
	if got := line.Width(); got != 8 {
		t.Fatalf("Width() = %d, want 8", got)
	}
	if line.IsBlank() {
		t.Fatalf("line with fragments is not blank")
	}
	var doc *Document
	if doc.Len() != 0 {
		t.Fatalf("nil document should have zero length")
	}
}
