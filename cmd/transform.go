package cmd

import (
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tintkit/tint/color"
	"github.com/tintkit/tint/key"
	"github.com/tintkit/tint/log"
	"github.com/tintkit/tint/palette"
	"github.com/tintkit/tint/style"
)

// percentFlag returns --percent when given and the configured default otherwise.
func percentFlag(cmd *cobra.Command) float64 {
	if cmd.Flags().Changed("percent") {
		return lo.Must(cmd.Flags().GetFloat64("percent"))
	}
	return viper.GetFloat64(key.TransformDefaultPercent)
}

// printTransform shows the source and result side by side.
func printTransform(cmd *cobra.Command, from, to color.Color) {
	cmd.Printf("%s %s %s\n", swatchLine(from), style.Fg(palette.Faint)("→"), swatchLine(to))
}

func newStepCmd(use, short string, step func(color.Color, float64) (color.Color, error)) *cobra.Command {
	c := &cobra.Command{
		Use:               use + " <color>",
		Short:             short,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: colorCompletion,
		Run: func(cmd *cobra.Command, args []string) {
			from, err := resolveColor(args[0])
			handleErr(err)

			percent := percentFlag(cmd)
			to, err := step(from, percent)
			handleErr(err)

			log.Infof("%s %s by %v%%", use, from.Hex(), percent)
			printTransform(cmd, from, to)
		},
	}
	c.Flags().Float64P("percent", "p", color.DefaultPercent, "Percentage from 0 to 100")
	return c
}

var (
	darkenCmd  = newStepCmd("darken", "Scale a color towards black", color.Color.Darken)
	lightenCmd = newStepCmd("lighten", "Move a color towards white", color.Color.Lighten)
)

func init() {
	rootCmd.AddCommand(darkenCmd, lightenCmd)
}

func init() {
	rootCmd.AddCommand(setCmd)
	setCmd.Flags().Float64P("brightness", "b", 0, "Replace the color with a gray of this brightness, from 0 to 1")
	setCmd.Flags().IntP("alpha", "a", 0, "Replace the alpha channel (0-255)")
	setCmd.Flags().IntP("red", "r", 0, "Replace the red channel (0-255)")
	setCmd.Flags().IntP("green", "g", 0, "Replace the green channel (0-255)")
	setCmd.Flags().IntP("blue", "B", 0, "Replace the blue channel (0-255)")
}

// channelSetters are applied in order after --brightness.
var channelSetters = []lo.Tuple2[string, func(color.Color, int) (color.Color, error)]{
	{A: "alpha", B: color.Color.WithAlpha},
	{A: "red", B: color.Color.WithRed},
	{A: "green", B: color.Color.WithGreen},
	{A: "blue", B: color.Color.WithBlue},
}

var setCmd = &cobra.Command{
	Use:               "set <color>",
	Short:             "Replace individual channels or the brightness of a color",
	Example:           "  tint set '#336699' --alpha 128\n  tint set teal --brightness 0.5",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: colorCompletion,
	Run: func(cmd *cobra.Command, args []string) {
		from, err := resolveColor(args[0])
		handleErr(err)

		to := from
		if cmd.Flags().Changed("brightness") {
			to, err = to.WithBrightness(lo.Must(cmd.Flags().GetFloat64("brightness")))
			handleErr(err)
		}

		for _, setter := range channelSetters {
			if !cmd.Flags().Changed(setter.A) {
				continue
			}
			to, err = setter.B(to, lo.Must(cmd.Flags().GetInt(setter.A)))
			handleErr(err)
		}

		printTransform(cmd, from, to)
	},
}
