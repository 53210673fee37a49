// Package palette provides the named colors tint knows about and lookups over them.
package palette

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/tintkit/tint/color"
)

// Catppuccin Mocha.
var (
	Base    = color.MustFromHex("#1e1e2e")
	Mantle  = color.MustFromHex("#181825")
	Crust   = color.MustFromHex("#11111b")
	Text    = color.MustFromHex("#cdd6f4")
	Subtext = color.MustFromHex("#a6adc8")
	Overlay = color.MustFromHex("#6c7086")
	Surface = color.MustFromHex("#313244")

	Rosewater = color.MustFromHex("#f5e0dc")
	Flamingo  = color.MustFromHex("#f2cdcd")
	Pink      = color.MustFromHex("#f5c2e7")
	Mauve     = color.MustFromHex("#cba6f7")
	Red       = color.MustFromHex("#f38ba8")
	Maroon    = color.MustFromHex("#eba0ac")
	Peach     = color.MustFromHex("#fab387")
	Yellow    = color.MustFromHex("#f9e2af")
	Green     = color.MustFromHex("#a6e3a1")
	Teal      = color.MustFromHex("#94e2d5")
	Sky       = color.MustFromHex("#89dceb")
	Sapphire  = color.MustFromHex("#74c7ec")
	Blue      = color.MustFromHex("#89b4fa")
	Lavender  = color.MustFromHex("#b4befe")
)

// Plain colors.
var (
	Black  = color.RGB(0, 0, 0)
	White  = color.RGB(255, 255, 255)
	Gray   = color.MustFromHex("#808080")
	Orange = color.MustFromHex("#ffb703")
)

// Semantic mappings.
var (
	Accent    = Mauve
	Secondary = Lavender
	Success   = Green
	Warning   = Yellow
	Error     = Red
	Faint     = Overlay
	Border    = Surface
)

var named = map[string]color.Color{
	"base":      Base,
	"mantle":    Mantle,
	"crust":     Crust,
	"text":      Text,
	"subtext":   Subtext,
	"overlay":   Overlay,
	"surface":   Surface,
	"rosewater": Rosewater,
	"flamingo":  Flamingo,
	"pink":      Pink,
	"mauve":     Mauve,
	"red":       Red,
	"maroon":    Maroon,
	"peach":     Peach,
	"yellow":    Yellow,
	"green":     Green,
	"teal":      Teal,
	"sky":       Sky,
	"sapphire":  Sapphire,
	"blue":      Blue,
	"lavender":  Lavender,
	"black":     Black,
	"white":     White,
	"gray":      Gray,
	"orange":    Orange,
}

// Names returns every palette name in alphabetical order.
func Names() []string {
	names := lo.Keys(named)
	sort.Strings(names)
	return names
}

// Lookup returns the color registered under name, ignoring case and surrounding space.
func Lookup(name string) mo.Option[color.Color] {
	c, ok := named[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return mo.None[color.Color]()
	}
	return mo.Some(c)
}

// Find returns palette names fuzzily matching query, best match first.
func Find(query string) []string {
	ranks := fuzzy.RankFindNormalizedFold(strings.TrimSpace(query), Names())
	sort.Stable(ranks)

	return lo.Map(ranks, func(r fuzzy.Rank, _ int) string {
		return r.Target
	})
}

// Parse resolves s as a palette name first and as a hex color otherwise.
func Parse(s string) (color.Color, error) {
	if c, ok := Lookup(s).Get(); ok {
		return c, nil
	}
	return color.FromHex(strings.TrimSpace(s))
}
