// Package shimmer renders text with a highlight band sweeping across it.
package shimmer

import (
	"errors"
	"strings"

	"github.com/samber/lo"
	"github.com/tintkit/tint/color"
	"github.com/tintkit/tint/style"
)

// ErrWidth is returned when the highlight band is narrower than one rune.
var ErrWidth = errors.New("shimmer width must be at least 1")

// Shimmer describes a highlight of Width runes blending from Base into Highlight.
type Shimmer struct {
	Base      color.Color
	Highlight color.Color
	Width     int
}

func New(base, highlight color.Color, width int) (Shimmer, error) {
	if width < 1 {
		return Shimmer{}, ErrWidth
	}
	return Shimmer{Base: base, Highlight: highlight, Width: width}, nil
}

// Period is the number of frames for the band to cross n runes, entering and leaving fully.
func (s Shimmer) Period(n int) int {
	return n + 2*s.Width
}

// center is the rune index under the middle of the band at frame.
func (s Shimmer) center(n, frame int) int {
	p := s.Period(n)
	return ((frame%p)+p)%p - s.Width
}

// Intensity is how strongly rune i of an n-rune text is highlighted at frame, in [0, 1].
func (s Shimmer) Intensity(i, n, frame int) float64 {
	d := i - s.center(n, frame)
	if d < 0 {
		d = -d
	}
	if d >= s.Width {
		return 0
	}
	return 1 - float64(d)/float64(s.Width)
}

// Colors returns the color of every rune of text at frame.
func (s Shimmer) Colors(text string, frame int) []color.Color {
	n := len([]rune(text))
	colors := make([]color.Color, n)
	for i := range colors {
		colors[i] = lo.Must(s.Base.Blend(s.Highlight, s.Intensity(i, n, frame)))
	}
	return colors
}

// Render styles every rune of text with its color at frame.
func (s Shimmer) Render(text string, frame int) string {
	colors := s.Colors(text, frame)

	var b strings.Builder
	for i, r := range []rune(text) {
		b.WriteString(style.Fg(colors[i])(string(r)))
	}
	return b.String()
}
