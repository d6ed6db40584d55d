package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Palette (hex)
const (
	colorBgDarkHex      = "#0f172a"
	colorBgLightHex     = "#f8fafc"
	colorFgDarkHex      = "#e5e7eb"
	colorFgLightHex     = "#0f172a"
	colorPrimaryHex     = "#22c55e"
	colorTileHex        = "#334155"
	colorTileBlankHex   = "#1f2937"
	colorPlaceholderHex = "#9ca3af"
)

type sleekTheme struct{}

func (sleekTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		if variant == theme.VariantLight {
			return mustHex(colorBgLightHex)
		}
		return mustHex(colorBgDarkHex)
	case theme.ColorNameForeground:
		if variant == theme.VariantLight {
			return mustHex(colorFgLightHex)
		}
		return mustHex(colorFgDarkHex)
	case theme.ColorNamePrimary:
		return mustHex(colorPrimaryHex)
	case theme.ColorNameButton:
		return mustHex(colorTileHex)
	case theme.ColorNameInputBackground:
		if variant == theme.VariantLight {
			return color.White
		}
		return mustHex(colorTileBlankHex)
	case theme.ColorNamePlaceHolder:
		return mustHex(colorPlaceholderHex)
	default:
		return theme.DefaultTheme().Color(name, variant)
	}
}

func (sleekTheme) Font(style fyne.TextStyle) fyne.Resource { return theme.DefaultTheme().Font(style) }
func (sleekTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}
func (sleekTheme) Size(name fyne.ThemeSizeName) float32 { return theme.DefaultTheme().Size(name) }

// Color helpers

func mustHex(s string) color.Color {
	c, err := parseHexColor(s)
	if err != nil {
		return color.White
	}
	return c
}

func parseHexColor(s string) (color.NRGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.NRGBA{}, fmt.Errorf("invalid hex: %s", s)
	}
	var rr, gg, bb uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &rr, &gg, &bb); err != nil {
		return color.NRGBA{}, err
	}
	return color.NRGBA{R: rr, G: gg, B: bb, A: 255}, nil
}
