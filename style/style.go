// Package style provides a functional API for composing lipgloss styles in CLI output.
package style

import (
	"github.com/KRTirtho/NewPipeCLI/color"
	"github.com/charmbracelet/lipgloss"
)

// New returns an empty lipgloss.Style.
func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Fg returns a rendering function that applies the foreground color to a string.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return New().Foreground(c).Render(s) }
}

var (
	Faint  = func(s string) string { return New().Faint(true).Render(s) }
	Bold   = func(s string) string { return New().Bold(true).Render(s) }
	Italic = func(s string) string { return New().Italic(true).Render(s) }
)

// Header renders section headings of list-style subcommands.
var Header = func(s string) string {
	return New().Bold(true).Foreground(color.HiBlue).Render(s)
}
