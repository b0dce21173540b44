package cli_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/peek/internal/cli"
	"github.com/kk-code-lab/peek/internal/config"
)

type harness struct {
	stdout   bytes.Buffer
	stderr   bytes.Buffer
	terminal bool
	screens  int
	keys     []rune
}

func (h *harness) env(t *testing.T) cli.Environment {
	t.Helper()
	return cli.Environment{
		Stdout:     &h.stdout,
		Stderr:     &h.stderr,
		IsTerminal: func() bool { return h.terminal },
		TermWidth:  func() int { return 40 },
		NewScreen: func() (tcell.Screen, error) {
			h.screens++
			screen := tcell.NewSimulationScreen("")
			if err := screen.Init(); err != nil {
				return nil, err
			}
			screen.SetSize(40, 10)
			for _, r := range h.keys {
				screen.InjectKey(tcell.KeyRune, r, tcell.ModNone)
			}
			return screen, nil
		},
	}
}

func (h *harness) run(t *testing.T, args ...string) int {
	t.Helper()
	return cli.Execute(context.Background(), cli.BuildInfo{Version: "test"}, h.env(t), args)
}

// isolate keeps the user's config and environment out of the run.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("HOME", dir)
	t.Setenv(config.EnvLogLevel, "")
	return dir
}

func writeFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestNewRootCommand(t *testing.T) {
	cmd := cli.NewRootCommand(cli.BuildInfo{Version: "1.0.0", Commit: "abc", Date: "today"})

	if !strings.HasPrefix(cmd.Use, "peek") {
		t.Fatalf("expected Use to start with peek, got %q", cmd.Use)
	}
	if cmd.Short == "" || cmd.Long == "" {
		t.Fatal("expected descriptions to be set")
	}
	for _, want := range []string{"markdown", ".md", ".mkdown", "pdf", ".pdf"} {
		if !strings.Contains(cmd.Long, want) {
			t.Fatalf("expected %q in the format list of the help text", want)
		}
	}
	if !strings.Contains(cmd.Version, "1.0.0") || !strings.Contains(cmd.Version, "abc") {
		t.Fatalf("expected version and commit in %q", cmd.Version)
	}
	for _, name := range []string{"config", "debug", "log-level", "plain"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Fatalf("expected flag --%s", name)
		}
	}
}

func TestMarkdownPrintedWhenNotATerminal(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "doc.md", []byte("# Title\n\nBody text\n\n- item\n"))

	h := &harness{}
	if code := h.run(t, path); code != 0 {
		t.Fatalf("expected exit 0, got %d (stderr %q)", code, h.stderr.String())
	}
	out := h.stdout.String()
	for _, want := range []string{"Title\n", "Body text\n", "• item\n"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output %q", want, out)
		}
	}
	if h.screens != 0 {
		t.Fatalf("expected no screen to be opened, got %d", h.screens)
	}
}

func TestPlainFlagSkipsPager(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "doc.md", []byte("hello\n"))

	h := &harness{terminal: true}
	if code := h.run(t, "--plain", path); code != 0 {
		t.Fatalf("expected exit 0, got %d (stderr %q)", code, h.stderr.String())
	}
	if h.screens != 0 {
		t.Fatalf("expected --plain to skip the pager")
	}
	if !strings.Contains(h.stdout.String(), "hello") {
		t.Fatalf("expected plain output, got %q", h.stdout.String())
	}
}

func TestDocumentOpensPagerOnTerminal(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "doc.md", []byte("# Title\n\nBody\n"))

	h := &harness{terminal: true, keys: []rune{'j', 'q'}}
	if code := h.run(t, path); code != 0 {
		t.Fatalf("expected exit 0, got %d (stderr %q)", code, h.stderr.String())
	}
	if h.screens != 1 {
		t.Fatalf("expected one screen, got %d", h.screens)
	}
	if h.stdout.Len() != 0 {
		t.Fatalf("expected nothing on stdout while paging, got %q", h.stdout.String())
	}
}

func TestTextFilePrintedDirectly(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "notes.txt", []byte("one\ttwo\nthree\n"))

	h := &harness{terminal: true}
	if code := h.run(t, path); code != 0 {
		t.Fatalf("expected exit 0, got %d (stderr %q)", code, h.stderr.String())
	}
	if got, want := h.stdout.String(), "one two\nthree\n"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if h.screens != 0 {
		t.Fatal("expected text to bypass the pager")
	}
}

func TestImagePrintedAsHalfBlocks(t *testing.T) {
	dir := isolate(t)
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	path := writeFile(t, dir, "red.png", buf.Bytes())

	h := &harness{}
	if code := h.run(t, path); code != 0 {
		t.Fatalf("expected exit 0, got %d (stderr %q)", code, h.stderr.String())
	}
	if got := strings.Count(h.stdout.String(), "▀"); got != 8 {
		t.Fatalf("expected 8 half blocks for a 4x4 image, got %d", got)
	}
}

func TestFailuresReportMessageAndPath(t *testing.T) {
	dir := isolate(t)
	empty := writeFile(t, dir, "empty.md", nil)
	binary := writeFile(t, dir, "blob.dat", []byte{0x00, 0x01, 0x02, 0x00, 0xff, 0xfe, 0x00, 0x03})
	missing := filepath.Join(dir, "missing.md")

	tests := []struct {
		name string
		path string
		want string
	}{
		{"missing", missing, "error: file does not exist - " + missing + "\n"},
		{"directory", dir, "error: not a regular file - " + dir + "\n"},
		{"unsupported", binary, "error: unsupported file format - " + binary + "\n"},
		{"empty document", empty, "error: file is empty or could not be parsed - " + empty + "\n"},
	}

	for _, tt := range tests {
		h := &harness{}
		if code := h.run(t, tt.path); code != 1 {
			t.Fatalf("%s: expected exit 1, got %d", tt.name, code)
		}
		if got := h.stderr.String(); got != tt.want {
			t.Fatalf("%s: expected stderr %q, got %q", tt.name, tt.want, got)
		}
		if h.stdout.Len() != 0 {
			t.Fatalf("%s: expected no output, got %q", tt.name, h.stdout.String())
		}
	}
}

func TestRequiresExactlyOneArgument(t *testing.T) {
	isolate(t)

	for _, args := range [][]string{nil, {"a.md", "b.md"}} {
		h := &harness{}
		if code := h.run(t, args...); code != 1 {
			t.Fatalf("args %v: expected exit 1, got %d", args, code)
		}
		if !strings.HasPrefix(h.stderr.String(), "error: ") {
			t.Fatalf("args %v: expected an error line, got %q", args, h.stderr.String())
		}
	}
}

func TestInvalidLogLevelFlag(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "doc.md", []byte("x\n"))

	h := &harness{}
	if code := h.run(t, "--log-level", "loud", path); code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(h.stderr.String(), `invalid log level "loud"`) {
		t.Fatalf("unexpected stderr %q", h.stderr.String())
	}
}

func TestDebugFlagLogsToStderr(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "doc.md", []byte("# Title\n"))

	h := &harness{}
	if code := h.run(t, "--debug", path); code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.Contains(h.stderr.String(), "parsed document") {
		t.Fatalf("expected debug output, got %q", h.stderr.String())
	}

	quiet := &harness{}
	if code := quiet.run(t, path); code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if quiet.stderr.Len() != 0 {
		t.Fatalf("expected no log output at the default level, got %q", quiet.stderr.String())
	}
}

func TestConfigFileApplies(t *testing.T) {
	dir := isolate(t)
	cfgPath := writeFile(t, dir, "peek.yaml", []byte("tab_width: 2\n"))
	path := writeFile(t, dir, "notes.txt", []byte("a\tb\n"))

	h := &harness{}
	if code := h.run(t, "--config", cfgPath, path); code != 0 {
		t.Fatalf("expected exit 0, got %d (stderr %q)", code, h.stderr.String())
	}
	if got := h.stdout.String(); got != "a b\n" {
		t.Fatalf("expected tab width 2, got %q", got)
	}

	bad := writeFile(t, dir, "bad.yaml", []byte("tab_width: 0\n"))
	h = &harness{}
	if code := h.run(t, "--config", bad, path); code != 1 {
		t.Fatalf("expected invalid config to fail, got %d", code)
	}
}

func TestFileErrorUnwraps(t *testing.T) {
	err := &cli.FileError{Path: "x.md", Err: cli.ErrNothingToShow}
	if !errors.Is(err, cli.ErrNothingToShow) {
		t.Fatal("expected FileError to unwrap to its cause")
	}
	if got := err.Error(); got != "file is empty or could not be parsed - x.md" {
		t.Fatalf("unexpected message %q", got)
	}
}
