package components

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatVolume renders a kilogram total with thousands separators.
func FormatVolume(kg float64) string {
	return printer.Sprintf("%.2f kg", kg)
}

// FormatCount renders an integer with thousands separators.
func FormatCount(n int) string {
	return printer.Sprintf("%d", n)
}
