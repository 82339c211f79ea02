package config

import (
	"fmt"
	"strings"
)

// Theme is the cosmetic color scheme; only rendering reads it
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// ParseTheme accepts "dark" or "light", case-insensitively
func ParseTheme(s string) (Theme, error) {
	switch t := Theme(strings.ToLower(strings.TrimSpace(s))); t {
	case ThemeDark, ThemeLight:
		return t, nil
	default:
		return ThemeDark, fmt.Errorf("%w: unknown theme %q", ErrInvalidConfig, s)
	}
}

// Next toggles dark ↔ light
func (t Theme) Next() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}
