package config

import (
	"errors"
	"fmt"
	"strings"
)

var validLogLevels = []string{"debug", "info", "warn", "warning", "error"}

// ValidationError names the offending field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Validate checks every field and joins all problems into one error.
func (c *Config) Validate() error {
	var errs []error

	if !isValidLogLevel(c.LogLevel) {
		errs = append(errs, &ValidationError{
			Field:   "log_level",
			Message: fmt.Sprintf("unknown level %q (expected one of %s)", c.LogLevel, strings.Join(validLogLevels, ", ")),
		})
	}
	if c.TabWidth <= 0 {
		errs = append(errs, &ValidationError{Field: "tab_width", Message: "must be positive"})
	}
	if c.Markdown.RuleWidth < 0 {
		errs = append(errs, &ValidationError{Field: "markdown.rule_width", Message: "must not be negative"})
	}
	if c.Image.MaxWidth < 0 {
		errs = append(errs, &ValidationError{Field: "image.max_width", Message: "must not be negative"})
	}

	for _, entry := range c.Theme.entries() {
		if _, err := ParseColor(entry.value); err != nil {
			errs = append(errs, &ValidationError{Field: "theme." + entry.field, Message: err.Error()})
		}
	}

	if c.Path != "" && len(errs) > 0 {
		return fmt.Errorf("config %s: %w", c.Path, errors.Join(errs...))
	}
	return errors.Join(errs...)
}

func isValidLogLevel(level string) bool {
	level = strings.ToLower(strings.TrimSpace(level))
	for _, valid := range validLogLevels {
		if level == valid {
			return true
		}
	}
	return false
}

type themeEntry struct {
	field string
	value string
}

func (t ThemeConfig) entries() []themeEntry {
	return []themeEntry{
		{"heading", t.Heading},
		{"quote", t.Quote},
		{"code", t.Code},
		{"cursor_bg", t.CursorBg},
		{"status_fg", t.StatusFg},
		{"status_bg", t.StatusBg},
		{"tilde", t.Tilde},
	}
}
