// Package style provides a functional API for composing and applying lipgloss-based TUI styles.
package style

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/tintkit/tint/color"
	"github.com/tintkit/tint/palette"
)

// New returns an empty lipgloss.Style used as a foundation for visual composition.
func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Colored initializes a new style with the specified foreground and background colors.
func Colored(fg, bg color.Color) lipgloss.Style {
	return New().Foreground(fg.Lipgloss()).Background(bg.Lipgloss())
}

// Fg returns a stateless rendering function that applies the specified foreground color to a string.
func Fg(c color.Color) func(string) string {
	return func(s string) string { return New().Foreground(c.Lipgloss()).Render(s) }
}

// Bg returns a stateless rendering function that applies the specified background color to a string.
func Bg(c color.Color) func(string) string {
	return func(s string) string { return New().Background(c.Lipgloss()).Render(s) }
}

// Truncate returns a rendering function that cuts the string to a printable width, ending with an ellipsis.
func Truncate(max int) func(string) string {
	return func(s string) string { return truncate.StringWithTail(s, uint(max), "…") }
}

// Standard Text Transformation Helpers - these functions apply common typographic styles like bold or italics.
var (
	Faint         = func(s string) string { return New().Faint(true).Render(s) }
	Bold          = func(s string) string { return New().Bold(true).Render(s) }
	Italic        = func(s string) string { return New().Italic(true).Render(s) }
	Underline     = func(s string) string { return New().Underline(true).Render(s) }
	Strikethrough = func(s string) string { return New().Strikethrough(true).Render(s) }
)

// Title renders a banner in the accent color.
var Title = func(s string) string {
	return Colored(palette.Base, palette.Accent).Bold(true).Padding(0, 1).Render(s)
}

// ErrorTitle renders a visually highlighted banner using dominant error status colors.
var ErrorTitle = func(s string) string {
	return Colored(palette.Base, palette.Error).Bold(true).Padding(0, 1).Render(s)
}

// Tag returns a rendering function that encapsulates a string in a colored, padded tag block.
func Tag(fg, bg color.Color) func(string) string {
	return func(s string) string { return Colored(fg, bg).Padding(0, 1).Render(s) }
}

// OnColor picks black or white text, whichever reads better on bg.
func OnColor(bg color.Color) color.Color {
	if bg.IsLight() {
		return palette.Black
	}
	return palette.White
}

// Swatch renders a block of width cells filled with c.
func Swatch(c color.Color, width int) string {
	if width < 1 {
		return ""
	}
	return Bg(c)(strings.Repeat(" ", width))
}
