package color

import (
	"fmt"
	"math"
)

// DefaultPercent is the step used by Darker and Lighter.
const DefaultPercent = 10

func checkRange(name string, v, lo, hi float64) error {
	if v < lo || v > hi || math.IsNaN(v) {
		return fmt.Errorf("%w: %s must be within [%v, %v], got %v", ErrPrecondition, name, lo, hi, v)
	}
	return nil
}

// Darken scales red, green and blue towards black by percent in [0, 100].
// Alpha is preserved.
func (c Color) Darken(percent float64) (Color, error) {
	if err := checkRange("percent", percent, 0, 100); err != nil {
		return Color{}, err
	}

	f := 1 - percent/100
	scale := func(ch uint8) uint8 {
		return uint8(math.Round(float64(ch) * f))
	}

	return New(c.alpha, scale(c.red), scale(c.green), scale(c.blue)), nil
}

// Lighten moves red, green and blue towards white by percent in [0, 100].
// Alpha is preserved.
func (c Color) Lighten(percent float64) (Color, error) {
	if err := checkRange("percent", percent, 0, 100); err != nil {
		return Color{}, err
	}

	p := percent / 100
	scale := func(ch uint8) uint8 {
		return uint8(math.Round(float64(ch) + float64(255-ch)*p))
	}

	return New(c.alpha, scale(c.red), scale(c.green), scale(c.blue)), nil
}

// Darker is Darken by DefaultPercent.
func (c Color) Darker() Color {
	d, _ := c.Darken(DefaultPercent)
	return d
}

// Lighter is Lighten by DefaultPercent.
func (c Color) Lighter() Color {
	l, _ := c.Lighten(DefaultPercent)
	return l
}

func channel(name string, v int) (uint8, error) {
	if v < 0 || v > 255 {
		return 0, fmt.Errorf("%w: %s must be within [0, 255], got %d", ErrPrecondition, name, v)
	}
	return uint8(v), nil
}

func (c Color) WithAlpha(v int) (Color, error) {
	ch, err := channel("alpha", v)
	if err != nil {
		return Color{}, err
	}
	c.alpha = ch
	return c, nil
}

func (c Color) WithRed(v int) (Color, error) {
	ch, err := channel("red", v)
	if err != nil {
		return Color{}, err
	}
	c.red = ch
	return c, nil
}

func (c Color) WithGreen(v int) (Color, error) {
	ch, err := channel("green", v)
	if err != nil {
		return Color{}, err
	}
	c.green = ch
	return c, nil
}

func (c Color) WithBlue(v int) (Color, error) {
	ch, err := channel("blue", v)
	if err != nil {
		return Color{}, err
	}
	c.blue = ch
	return c, nil
}

// WithBrightness returns a neutral gray of the given normalized brightness in [0, 1].
// Note the scale differs from Brightness, which reports [0, 255].
// Channels are truncated, not rounded.
func (c Color) WithBrightness(v float64) (Color, error) {
	if err := checkRange("brightness", v, 0, 1); err != nil {
		return Color{}, err
	}

	gray := uint8(math.Floor(v * 255))
	return New(c.alpha, gray, gray, gray), nil
}

// Blend interpolates every channel from c (t = 0) to other (t = 1) in RGB space.
func (c Color) Blend(other Color, t float64) (Color, error) {
	if err := checkRange("t", t, 0, 1); err != nil {
		return Color{}, err
	}

	r, g, b := c.Colorful().BlendRgb(other.Colorful(), t).Clamped().RGB255()
	a := math.Round(float64(c.alpha) + (float64(other.alpha)-float64(c.alpha))*t)

	return New(uint8(a), r, g, b), nil
}
