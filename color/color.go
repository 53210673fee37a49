// Package color implements an immutable ARGB color value and the arithmetic transforms used across tint.
package color

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an immutable 8-bit-per-channel ARGB color.
// The zero value is fully transparent black.
type Color struct {
	alpha, red, green, blue uint8
}

// New constructs a Color from its four channels.
func New(alpha, red, green, blue uint8) Color {
	return Color{alpha: alpha, red: red, green: green, blue: blue}
}

// RGB constructs an opaque Color.
func RGB(red, green, blue uint8) Color {
	return New(0xff, red, green, blue)
}

// FromARGB unpacks a 32-bit ARGB value, alpha in the most significant byte.
func FromARGB(v uint32) Color {
	return New(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v))
}

// ARGB packs the color into a 32-bit integer, alpha in the most significant byte.
func (c Color) ARGB() uint32 {
	return uint32(c.alpha)<<24 | uint32(c.red)<<16 | uint32(c.green)<<8 | uint32(c.blue)
}

func (c Color) Alpha() uint8 { return c.alpha }
func (c Color) Red() uint8   { return c.red }
func (c Color) Green() uint8 { return c.green }
func (c Color) Blue() uint8  { return c.blue }

// Brightness is the arithmetic mean of red, green and blue in [0, 255].
func (c Color) Brightness() float64 {
	return float64(int(c.red)+int(c.green)+int(c.blue)) / 3
}

// IsLight reports whether the color sits in the upper half of the brightness range.
func (c Color) IsLight() bool {
	return c.Brightness() > 127.5
}

// Hex returns the color as "#aarrggbb" in lowercase.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.alpha, c.red, c.green, c.blue)
}

func (c Color) String() string {
	return c.Hex()
}

// FromHex parses "rrggbb" or "aarrggbb", each optionally prefixed with '#'.
// Six digits are treated as opaque.
func FromHex(s string) (Color, error) {
	digits := strings.TrimPrefix(s, "#")

	switch len(digits) {
	case 6:
		digits = "ff" + digits
	case 8:
	default:
		return Color{}, fmt.Errorf("%w: %q must have 6 or 8 hex digits", ErrFormat, s)
	}

	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q is not hexadecimal", ErrFormat, s)
	}

	return FromARGB(uint32(v)), nil
}

// MustFromHex is like FromHex but panics on malformed input.
// Intended for package-level color literals.
func MustFromHex(s string) Color {
	c, err := FromHex(s)
	if err != nil {
		panic(err)
	}
	return c
}
