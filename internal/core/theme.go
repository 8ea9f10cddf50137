package core

import "strings"

// Theme selects the light or dark variant of widget colors.
// Widgets receive it through RuntimeConfig and may be switched at runtime.
type Theme uint8

const (
	ThemeDark Theme = iota
	ThemeLight
)

// ParseTheme converts "dark" or "light" to a Theme.
func ParseTheme(s string) (Theme, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dark":
		return ThemeDark, true
	case "light":
		return ThemeLight, true
	}
	return ThemeDark, false
}

// String returns the theme name.
func (t Theme) String() string {
	if t == ThemeLight {
		return "light"
	}
	return "dark"
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// Background is the surface color faded cells blend toward.
func (t Theme) Background() RGB {
	if t == ThemeLight {
		return RGB{0xff, 0xff, 0xff}
	}
	return RGB{0x11, 0x11, 0x14}
}

// Foreground is the color used for ColorDefault.
func (t Theme) Foreground() RGB {
	if t == ThemeLight {
		return RGB{0x1f, 0x1f, 0x23}
	}
	return RGB{0xe5, 0xe5, 0xe5}
}
