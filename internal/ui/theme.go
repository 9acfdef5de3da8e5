// Package ui provides the TileCanvas application UI components.
//
// This file defines a compact Fyne theme that gives the canvas most of the window.

package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// CanvasTheme wraps the default Fyne theme with compact sizing overrides
// and a fixed light/dark variant taken from the config.
type CanvasTheme struct {
	base    fyne.Theme
	variant fyne.ThemeVariant
	system  bool
}

// NewCanvasTheme creates a theme for a config theme name: "light", "dark"
// or anything else for the system default.
func NewCanvasTheme(name string) *CanvasTheme {
	t := &CanvasTheme{base: theme.DefaultTheme()}
	t.SetName(name)
	return t
}

// SetName updates the theme variant from a config theme name.
func (t *CanvasTheme) SetName(name string) {
	switch name {
	case "light":
		t.variant, t.system = theme.VariantLight, false
	case "dark":
		t.variant, t.system = theme.VariantDark, false
	default:
		t.system = true
	}
}

// Color delegates to the base theme, forcing the configured variant.
func (t *CanvasTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if t.system {
		return t.base.Color(name, variant)
	}
	return t.base.Color(name, t.variant)
}

// Font delegates to the base theme.
func (t *CanvasTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

// Icon delegates to the base theme.
func (t *CanvasTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

// Size returns compact sizing overrides.
func (t *CanvasTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 12
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameInlineIcon:
		return 16
	default:
		return t.base.Size(name)
	}
}
