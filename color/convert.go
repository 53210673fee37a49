package color

import (
	"fmt"
	imgcolor "image/color"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// RGBA implements image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return imgcolor.NRGBA{R: c.red, G: c.green, B: c.blue, A: c.alpha}.RGBA()
}

// FromImage converts any image/color.Color, un-premultiplying alpha.
func FromImage(c imgcolor.Color) Color {
	n := imgcolor.NRGBAModel.Convert(c).(imgcolor.NRGBA)
	return New(n.A, n.R, n.G, n.B)
}

// Lipgloss returns the color as a lipgloss "#rrggbb" color. Alpha is dropped.
func (c Color) Lipgloss() lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.red, c.green, c.blue))
}

// Colorful returns the RGB part of the color for go-colorful.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.red) / 255,
		G: float64(c.green) / 255,
		B: float64(c.blue) / 255,
	}
}

// FromColorful converts a go-colorful color into an opaque Color, clamping out-of-gamut values.
func FromColorful(c colorful.Color) Color {
	r, g, b := c.Clamped().RGB255()
	return RGB(r, g, b)
}
