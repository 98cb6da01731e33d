package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// SolarTheme is a compact dark-leaning theme with solar accent colours,
// sized so the layer table fits above the viewport.
type SolarTheme struct{}

// NewSolarTheme creates the application theme
func NewSolarTheme() fyne.Theme {
	return &SolarTheme{}
}

// Color returns theme colors
func (t *SolarTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return color.RGBA{R: 245, G: 166, B: 35, A: 255} // Solar orange
	case theme.ColorNameHyperlink:
		return color.RGBA{R: 255, G: 193, B: 7, A: 255} // Amber for the Layers toggle
	case theme.ColorNameWarning:
		return color.RGBA{R: 255, G: 112, B: 67, A: 255}
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255}
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 12, G: 12, B: 20, A: 255} // Near-black sky
		}
		return color.RGBA{R: 248, G: 246, B: 240, A: 255}
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 235, G: 235, B: 235, A: 255}
		}
		return color.RGBA{R: 33, G: 33, B: 33, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *SolarTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *SolarTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes; table rows use tighter padding than the default
func (t *SolarTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameScrollBar:
		return 10
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 16
	case theme.SizeNameSubHeadingText:
		return 14
	case theme.SizeNameCaptionText:
		return 10
	case theme.SizeNameInputRadius:
		return 3
	}

	return theme.DefaultTheme().Size(name)
}
