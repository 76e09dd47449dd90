// Package formatter renders report data for the terminal.
package formatter

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorDim    = lipgloss.Color("#928374")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleMoney  = lipgloss.NewStyle().Foreground(ColorGreen).Bold(true)
	StyleHours  = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleWarn   = lipgloss.NewStyle().Foreground(ColorYellow)
)

var colorEnabled = true

// SetColorEnabled toggles all styling; plain text is emitted when disabled.
func SetColorEnabled(enabled bool) {
	colorEnabled = enabled
}

func render(style lipgloss.Style, s string) string {
	if !colorEnabled {
		return s
	}
	return style.Render(s)
}

// Hours formats fractional hours as "8h 30m", dropping a zero minute part.
func Hours(totalHours float64) string {
	hours := int(totalHours)
	minutes := int(math.Round((totalHours - float64(hours)) * 60))
	if minutes == 60 {
		hours++
		minutes = 0
	}
	if minutes == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, minutes)
}

// Money formats an amount with two decimals.
func Money(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// HoursCell and MoneyCell render styled report values.
func HoursCell(totalHours float64) string { return render(StyleHours, Hours(totalHours)) }
func MoneyCell(amount float64) string     { return render(StyleMoney, Money(amount)) }

// Header renders a styled section heading.
func Header(s string) string { return render(StyleHeader, s) }

// Dim renders secondary text.
func Dim(s string) string { return render(StyleDim, s) }

// Warn renders a cautionary line.
func Warn(s string) string { return render(StyleWarn, s) }
