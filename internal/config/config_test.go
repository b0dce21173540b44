package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "xdg"))
	t.Setenv("HOME", home)
	t.Setenv(EnvLogLevel, "")
	return home
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Path != "" {
		t.Fatalf("expected no config path, got %q", cfg.Path)
	}
	if cfg.TabWidth != DefaultTabWidth || cfg.Markdown.RuleWidth != DefaultRuleWidth || cfg.LogLevel != "warn" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadExplicitFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, t.TempDir(), `
log_level: debug
tab_width: 8
markdown:
  rule_width: 10
image:
  max_width: 60
theme:
  heading: yellow
  cursor_bg: "#202020"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Path != path {
		t.Fatalf("expected path %q, got %q", path, cfg.Path)
	}
	if cfg.LogLevel != "debug" || cfg.TabWidth != 8 || cfg.Markdown.RuleWidth != 10 || cfg.Image.MaxWidth != 60 {
		t.Fatalf("unexpected values: %+v", cfg)
	}
	if cfg.Theme.Heading != "yellow" || cfg.Theme.CursorBg != "#202020" {
		t.Fatalf("unexpected theme: %+v", cfg.Theme)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	isolate(t)
	path := writeConfig(t, t.TempDir(), "image:\n  max_width: 40\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TabWidth != DefaultTabWidth || cfg.Markdown.RuleWidth != DefaultRuleWidth {
		t.Fatalf("expected defaults to survive, got %+v", cfg)
	}
}

func TestLoadDiscoversXDGConfig(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, "xdg", "peek")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	path := writeConfig(t, dir, "tab_width: 2\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Path != path || cfg.TabWidth != 2 {
		t.Fatalf("expected discovered config, got path %q tab %d", cfg.Path, cfg.TabWidth)
	}
}

func TestLoadFallsBackToHomeConfig(t *testing.T) {
	home := isolate(t)
	t.Setenv("XDG_CONFIG_HOME", "")
	dir := filepath.Join(home, ".config", "peek")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	path := writeConfig(t, dir, "tab_width: 3\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Path != path || cfg.TabWidth != 3 {
		t.Fatalf("expected home config, got path %q tab %d", cfg.Path, cfg.TabWidth)
	}
}

func TestLoadMissingExplicitFileFails(t *testing.T) {
	isolate(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	isolate(t)
	path := writeConfig(t, t.TempDir(), "tab_width: [\n")
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestEnvOverridesLogLevel(t *testing.T) {
	isolate(t)
	path := writeConfig(t, t.TempDir(), "log_level: info\n")
	t.Setenv(EnvLogLevel, "error")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogLevel != "error" {
		t.Fatalf("expected env override, got %q", cfg.LogLevel)
	}
}

func TestValidateReportsEveryField(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "loud"
	cfg.TabWidth = 0
	cfg.Markdown.RuleWidth = -1
	cfg.Image.MaxWidth = -5
	cfg.Theme.Quote = "not-a-color"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, field := range []string{"log_level", "tab_width", "markdown.rule_width", "image.max_width", "theme.quote"} {
		if !strings.Contains(err.Error(), field) {
			t.Fatalf("expected %s in %q", field, err.Error())
		}
	}

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError in chain")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		want    tcell.Color
		wantErr bool
	}{
		{name: "", want: tcell.ColorDefault},
		{name: "default", want: tcell.ColorDefault},
		{name: "red", want: tcell.ColorRed},
		{name: " Yellow ", want: tcell.ColorYellow},
		{name: "#ff0000", want: tcell.NewHexColor(0xff0000)},
		{name: "nope", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.name)
		if (err != nil) != tt.wantErr {
			t.Fatalf("%q: unexpected error %v", tt.name, err)
		}
		if !tt.wantErr && got != tt.want {
			t.Fatalf("%q: expected %v, got %v", tt.name, tt.want, got)
		}
	}
}
