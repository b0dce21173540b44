package fs

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// SniffSize is how much of a file Sniff reads.
const SniffSize = 4096

// Share of suspicious runes, in percent, above which a sample is binary.
const maxSuspiciousPercent = 10

// Encoding is the encoding announced by a byte order mark.
type Encoding int

const (
	// EncodingNone means no byte order mark; content is read as UTF-8.
	EncodingNone Encoding = iota
	EncodingUTF8BOM
	EncodingUTF16LE
	EncodingUTF16BE
)

func (e Encoding) String() string {
	switch e {
	case EncodingUTF8BOM:
		return "utf-8-bom"
	case EncodingUTF16LE:
		return "utf-16le"
	case EncodingUTF16BE:
		return "utf-16be"
	default:
		return "utf-8"
	}
}

var byteOrderMarks = []struct {
	mark     []byte
	encoding Encoding
}{
	{[]byte{0xEF, 0xBB, 0xBF}, EncodingUTF8BOM},
	{[]byte{0xFF, 0xFE}, EncodingUTF16LE},
	{[]byte{0xFE, 0xFF}, EncodingUTF16BE},
}

// BOMEncoding reports the encoding announced at the start of data.
func BOMEncoding(data []byte) Encoding {
	for _, bom := range byteOrderMarks {
		if bytes.HasPrefix(data, bom.mark) {
			return bom.encoding
		}
	}
	return EncodingNone
}

// Sample is the head of a file, read once for classification.
type Sample struct {
	Head     []byte
	Encoding Encoding
}

// Sniff reads up to SniffSize leading bytes of path.
func Sniff(path string) (Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return Sample{}, err
	}
	defer func() {
		_ = f.Close()
	}()

	head, err := io.ReadAll(io.LimitReader(f, SniffSize))
	if err != nil {
		return Sample{}, err
	}
	return Sample{Head: head, Encoding: BOMEncoding(head)}, nil
}

// LooksLikeText reports whether the sample reads as text. A byte order mark
// settles it; otherwise a NUL byte, or too many control characters and
// invalid UTF-8 sequences, mark binary data. Empty files are text.
func (s Sample) LooksLikeText() bool {
	if s.Encoding != EncodingNone || len(s.Head) == 0 {
		return true
	}
	if bytes.IndexByte(s.Head, 0x00) != -1 {
		return false
	}

	head := s.Head
	if len(head) == SniffSize {
		head = trimPartialRune(head)
	}
	runes, suspicious := 0, 0
	for len(head) > 0 {
		r, size := utf8.DecodeRune(head)
		head = head[size:]
		runes++
		if isSuspicious(r, size) {
			suspicious++
		}
	}
	return suspicious*100 <= runes*maxSuspiciousPercent
}

// trimPartialRune drops a multi-byte sequence cut off by the sample limit.
func trimPartialRune(b []byte) []byte {
	for i := 1; i <= utf8.UTFMax && i <= len(b); i++ {
		if utf8.RuneStart(b[len(b)-i]) {
			if !utf8.FullRune(b[len(b)-i:]) {
				return b[:len(b)-i]
			}
			break
		}
	}
	return b
}

func isSuspicious(r rune, size int) bool {
	switch {
	case r == utf8.RuneError && size == 1:
		return true
	case r == '\t', r == '\n', r == '\r', r == '\f', r == 0x1b:
		return false
	default:
		return r < 0x20 || r == 0x7f
	}
}

// Decode converts BOM-marked UTF-8 and UTF-16 content to UTF-8 without the
// mark. Anything else is returned byte for byte.
func Decode(content []byte) (string, error) {
	if BOMEncoding(content) == EncodingNone {
		return string(content), nil
	}
	decoder := unicode.BOMOverride(encoding.Nop.NewDecoder())
	out, _, err := transform.Bytes(decoder, content)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", BOMEncoding(content), err)
	}
	return string(out), nil
}

// ReadText reads a whole file as UTF-8 text.
func ReadText(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return Decode(content)
}

// Extension returns the lower-case extension of path without the dot.
func Extension(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}
