package textutil

import (
	"strings"
	"testing"
)

func TestSanitizeTerminalTextLeavesSafeInput(t *testing.T) {
	input := "plain heading\twith tab"
	if got := SanitizeTerminalText(input); got != input {
		t.Fatalf("expected %q to remain untouched, got %q", input, got)
	}
}

func TestSanitizeTerminalTextReplacesControlSequences(t *testing.T) {
	input := "bad\x1b[31m\ntext"
	got := SanitizeTerminalText(input)
	if got != "bad?[31m text" {
		t.Fatalf("expected sanitized string \"bad?[31m text\", got %q", got)
	}
	for _, r := range got {
		if r < 0x20 || r == 0x7f {
			t.Fatalf("sanitized text should not contain control characters: %q", got)
		}
	}
}

func TestSanitizeTerminalTextSpellsOutInvisibleMarks(t *testing.T) {
	input := "a" + string(rune(0x202E)) + "b" + string(rune(0x200B)) + "c"
	got := SanitizeTerminalText(input)
	if strings.ContainsRune(got, 0x202E) || strings.ContainsRune(got, 0x200B) {
		t.Fatalf("sanitize left formatting runes in output: %q", got)
	}
	if got != "a<U+202E>b<U+200B>c" {
		t.Fatalf("expected formatting runes to be spelled out, got %q", got)
	}
}

func TestSanitizeTerminalTextKeepsZeroWidthJoiner(t *testing.T) {
	family := "👨‍👩‍👧"
	if got := SanitizeTerminalText(family); got != family {
		t.Fatalf("expected emoji sequence to survive, got %q", got)
	}
}

func TestSanitizeTerminalTextReplacesC1Controls(t *testing.T) {
	input := "x" + string(rune(0x9B)) + "31m" + string(rune(0x7F))
	if got := SanitizeTerminalText(input); got != "x?31m?" {
		t.Fatalf("expected C1 CSI and DEL replaced, got %q", got)
	}
}
