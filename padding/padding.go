// Package padding provides inset values and ANSI-aware width padding for terminal strings.
package padding

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/ansi"
	reflowpad "github.com/muesli/reflow/padding"
)

// ErrNegative is returned when an inset is below zero.
var ErrNegative = errors.New("negative inset")

// Insets is the amount of blank space around a block of text, in cells.
type Insets struct {
	Top, Right, Bottom, Left int
}

// Zero has no padding on any side.
var Zero = Insets{}

// All pads every side by n.
func All(n int) Insets {
	return Insets{Top: n, Right: n, Bottom: n, Left: n}
}

// Symmetric pads top and bottom by vertical, left and right by horizontal.
func Symmetric(vertical, horizontal int) Insets {
	return Insets{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

// Option sets a single side for Only.
type Option func(*Insets)

func Top(n int) Option    { return func(i *Insets) { i.Top = n } }
func Right(n int) Option  { return func(i *Insets) { i.Right = n } }
func Bottom(n int) Option { return func(i *Insets) { i.Bottom = n } }
func Left(n int) Option   { return func(i *Insets) { i.Left = n } }

// Only pads the given sides and leaves the rest at zero.
func Only(opts ...Option) Insets {
	var i Insets
	for _, opt := range opts {
		opt(&i)
	}
	return i
}

// Horizontal is the combined left and right inset.
func (i Insets) Horizontal() int { return i.Left + i.Right }

// Vertical is the combined top and bottom inset.
func (i Insets) Vertical() int { return i.Top + i.Bottom }

// Add sums two insets side by side.
func (i Insets) Add(other Insets) Insets {
	return Insets{
		Top:    i.Top + other.Top,
		Right:  i.Right + other.Right,
		Bottom: i.Bottom + other.Bottom,
		Left:   i.Left + other.Left,
	}
}

// Validate reports ErrNegative when any side is below zero.
func (i Insets) Validate() error {
	if i.Top < 0 || i.Right < 0 || i.Bottom < 0 || i.Left < 0 {
		return fmt.Errorf("%w: %+v", ErrNegative, i)
	}
	return nil
}

// Style applies the insets as lipgloss padding on top of s.
func (i Insets) Style(s lipgloss.Style) lipgloss.Style {
	return s.Padding(i.Top, i.Right, i.Bottom, i.Left)
}

// Apply renders text surrounded by the insets.
func (i Insets) Apply(text string) (string, error) {
	if err := i.Validate(); err != nil {
		return "", err
	}
	return i.Style(lipgloss.NewStyle()).Render(text), nil
}

// Width is the printable width of s, ignoring ANSI escape sequences.
func Width(s string) int {
	return ansi.PrintableRuneWidth(s)
}

// PadRight appends spaces until s is width cells wide.
func PadRight(s string, width int) string {
	if width <= Width(s) {
		return s
	}
	return reflowpad.String(s, uint(width))
}

// PadLeft prepends spaces until s is width cells wide.
func PadLeft(s string, width int) string {
	gap := width - Width(s)
	if gap <= 0 {
		return s
	}
	return strings.Repeat(" ", gap) + s
}

// Center pads both sides until s is width cells wide; an odd remainder goes to the right.
func Center(s string, width int) string {
	gap := width - Width(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}
