package cmd

import (
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/tintkit/tint/color"
	"github.com/tintkit/tint/icon"
	"github.com/tintkit/tint/padding"
	"github.com/tintkit/tint/palette"
	"github.com/tintkit/tint/recent"
	"github.com/tintkit/tint/style"
)

func init() {
	rootCmd.AddCommand(paletteCmd)
}

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Browse the named colors tint understands",
}

// printNamed lists palette entries with their swatch and hex value.
func printNamed(cmd *cobra.Command, names []string) {
	width := lo.Max(lo.Map(names, func(n string, _ int) int { return len(n) }))
	for _, name := range names {
		c := palette.Lookup(name).MustGet()
		cmd.Printf("%s %s %s\n", style.Swatch(c, 2), padding.PadRight(name, width), style.Faint(c.Hex()))
	}
}

func init() {
	paletteCmd.AddCommand(paletteListCmd)
}

var paletteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every palette color",
	Run: func(cmd *cobra.Command, args []string) {
		printNamed(cmd, palette.Names())
	},
}

func init() {
	paletteCmd.AddCommand(paletteFindCmd)
}

var paletteFindCmd = &cobra.Command{
	Use:   "find <query>",
	Short: "Fuzzy search palette names",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		names := palette.Find(args[0])
		if len(names) == 0 {
			handleErr(errors.New("no palette color matches " + args[0]))
		}
		printNamed(cmd, names)
	},
}

func init() {
	paletteCmd.AddCommand(palettePickCmd)
}

var palettePickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Choose a palette color interactively and print its hex value",
	Run: func(cmd *cobra.Command, args []string) {
		var name string
		prompt := &survey.Select{
			Message: "Pick a color",
			Options: palette.Names(),
			Description: func(value string, _ int) string {
				return palette.Lookup(value).OrEmpty().Hex()
			},
		}
		handleErr(survey.AskOne(prompt, &name))

		c := palette.Lookup(name).OrElse(color.Color{})
		handleErr(recent.Remember(c))
		cmd.Printf("%s %s\n", icon.Get(icon.Swatch), swatchLine(c))
	},
}
