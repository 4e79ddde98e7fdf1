// Package color names the terminal colors used by the playground output.
package color

import "github.com/charmbracelet/lipgloss"

// New wraps an ANSI index or hex value as a lipgloss color.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
	Cyan   = New("6")
	White  = New("7")
)

var (
	Orange = New("#ffb703")
	Gray   = New("#808080")
)
