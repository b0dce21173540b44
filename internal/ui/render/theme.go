package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/peek/internal/config"
)

// ColorTheme defines pager colors.
type ColorTheme struct {
	Background tcell.Color
	Foreground tcell.Color
	HeadingFg  tcell.Color
	QuoteFg    tcell.Color
	CodeFg     tcell.Color
	CursorBg   tcell.Color
	StatusFg   tcell.Color
	StatusBg   tcell.Color
	TildeFg    tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		Background: tcell.ColorDefault,
		Foreground: tcell.ColorDefault,
		HeadingFg:  tcell.Color33,
		QuoteFg:    tcell.ColorLightSlateGray,
		CodeFg:     tcell.Color44, // brighter cyan text for code
		CursorBg:   tcell.Color236,
		StatusFg:   tcell.ColorDefault,
		StatusBg:   tcell.ColorDefault,
		TildeFg:    tcell.ColorDefault,
	}
}

// NewColorTheme applies configured colors over the default scheme.
func NewColorTheme(cfg config.ThemeConfig) (ColorTheme, error) {
	theme := GetColorTheme()
	overrides := []struct {
		value  string
		target *tcell.Color
	}{
		{cfg.Heading, &theme.HeadingFg},
		{cfg.Quote, &theme.QuoteFg},
		{cfg.Code, &theme.CodeFg},
		{cfg.CursorBg, &theme.CursorBg},
		{cfg.StatusFg, &theme.StatusFg},
		{cfg.StatusBg, &theme.StatusBg},
		{cfg.Tilde, &theme.TildeFg},
	}
	for _, o := range overrides {
		if o.value == "" {
			continue
		}
		color, err := config.ParseColor(o.value)
		if err != nil {
			return theme, err
		}
		*o.target = color
	}
	return theme, nil
}
