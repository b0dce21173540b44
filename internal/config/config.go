// Package config loads the optional peek configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gdamore/tcell/v2"
	"gopkg.in/yaml.v3"
)

const (
	appDirName     = "peek"
	configFileName = "config.yaml"

	// EnvLogLevel overrides log_level from the file.
	EnvLogLevel = "PEEK_LOG_LEVEL"

	DefaultTabWidth  = 4
	DefaultRuleWidth = 32
)

// Config is the file-level configuration.
type Config struct {
	LogLevel string         `yaml:"log_level"`
	TabWidth int            `yaml:"tab_width"`
	Markdown MarkdownConfig `yaml:"markdown"`
	Image    ImageConfig    `yaml:"image"`
	Theme    ThemeConfig    `yaml:"theme"`

	// Path is the file the values were read from, empty for defaults.
	Path string `yaml:"-"`
}

// MarkdownConfig tunes markdown documents.
type MarkdownConfig struct {
	RuleWidth int `yaml:"rule_width"`
}

// ImageConfig tunes direct image output. MaxWidth 0 means the terminal
// width.
type ImageConfig struct {
	MaxWidth int `yaml:"max_width"`
}

// ThemeConfig holds pager colors as tcell color names or #rrggbb values.
// Empty entries keep the built-in color.
type ThemeConfig struct {
	Heading  string `yaml:"heading"`
	Quote    string `yaml:"quote"`
	Code     string `yaml:"code"`
	CursorBg string `yaml:"cursor_bg"`
	StatusFg string `yaml:"status_fg"`
	StatusBg string `yaml:"status_bg"`
	Tilde    string `yaml:"tilde"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogLevel: "warn",
		TabWidth: DefaultTabWidth,
		Markdown: MarkdownConfig{RuleWidth: DefaultRuleWidth},
	}
}

// Load reads configuration. An explicit path must exist; otherwise the user
// config directory is searched and a missing file yields defaults. The
// PEEK_LOG_LEVEL environment variable is applied last.
func Load(explicit string) (*Config, error) {
	cfg := Default()

	path := explicit
	if path == "" {
		path = discover()
	}
	if path != "" {
		if err := cfg.readFile(path); err != nil {
			if explicit == "" && errors.Is(err, os.ErrNotExist) {
				path = ""
			} else {
				return nil, err
			}
		}
	}
	cfg.Path = path

	if level := strings.TrimSpace(os.Getenv(EnvLogLevel)); level != "" {
		cfg.LogLevel = level
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) readFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// discover returns the user config path, or empty if none exists.
func discover() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}

	path := filepath.Join(configHome, appDirName, configFileName)
	if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
		return path
	}
	return ""
}

// ParseColor resolves a tcell color name or #rrggbb value. Empty and
// "default" select the terminal default color.
func ParseColor(name string) (tcell.Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == "default" {
		return tcell.ColorDefault, nil
	}
	color := tcell.GetColor(name)
	if color == tcell.ColorDefault {
		return tcell.ColorDefault, fmt.Errorf("unknown color %q", name)
	}
	return color, nil
}
