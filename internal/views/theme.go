package views

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// trackerTheme pins the default theme to its dark variant with the
// tracker's blue accent.
type trackerTheme struct{}

var _ fyne.Theme = (*trackerTheme)(nil)

// NewTheme returns the application theme
func NewTheme() fyne.Theme {
	return &trackerTheme{}
}

var (
	accentColor     = color.NRGBA{R: 0x61, G: 0xaf, B: 0xef, A: 0xff}
	backgroundColor = color.NRGBA{R: 0x28, G: 0x2c, B: 0x34, A: 0xff}
	inputColor      = color.NRGBA{R: 0x3e, G: 0x44, B: 0x51, A: 0xff}
)

func (t *trackerTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return accentColor
	case theme.ColorNameBackground:
		return backgroundColor
	case theme.ColorNameInputBackground, theme.ColorNameHeaderBackground:
		return inputColor
	}
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

func (t *trackerTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *trackerTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size shrinks text and padding slightly for the compact window.
func (t *trackerTheme) Size(name fyne.ThemeSizeName) float32 {
	size := theme.DefaultTheme().Size(name)
	switch name {
	case theme.SizeNameText, theme.SizeNamePadding, theme.SizeNameInnerPadding:
		return size * 0.9
	}
	return size
}
