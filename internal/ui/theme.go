package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// VideoTheme tightens spacing so more of the grid fits on small screens and
// keeps selection and hover colors close to the cell highlight.
type VideoTheme struct{}

// NewVideoTheme creates the application theme
func NewVideoTheme() fyne.Theme {
	return &VideoTheme{}
}

// Color returns theme colors
func (t *VideoTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return color.NRGBA{R: 25, G: 118, B: 210, A: 255}
	case theme.ColorNameSelection:
		return HighlightColor
	case theme.ColorNameHover:
		if variant == theme.VariantDark {
			return color.NRGBA{R: 255, G: 255, B: 255, A: 20}
		}
		return color.NRGBA{R: 0, G: 0, B: 0, A: 15}
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.NRGBA{R: 18, G: 18, B: 18, A: 255}
		}
		return color.NRGBA{R: 250, G: 250, B: 250, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *VideoTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *VideoTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes; cells carry their own padding, so the grid gap
// stays small.
func (t *VideoTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameScrollBar:
		return 12
	case theme.SizeNameText:
		return 13
	case theme.SizeNameCaptionText:
		return 11
	case theme.SizeNameInputRadius:
		return 6
	}

	return theme.DefaultTheme().Size(name)
}
