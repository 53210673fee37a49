package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tintkit/tint/constant"
	"github.com/tintkit/tint/key"
	"github.com/tintkit/tint/log"
	"github.com/tintkit/tint/palette"
	"github.com/tintkit/tint/shimmer"
	"github.com/tintkit/tint/style"
	"github.com/tintkit/tint/util"
)

func init() {
	rootCmd.AddCommand(shimmerCmd)
	shimmerCmd.Flags().String("base", "", "Base text color (palette name or hex)")
	shimmerCmd.Flags().String("highlight", "", "Highlight color (palette name or hex)")
	shimmerCmd.Flags().Int("width", 0, "Width of the highlight band")
	shimmerCmd.Flags().Int("fps", 0, "Frames per second")

	for flag, k := range map[string]string{
		"base":      key.ShimmerBase,
		"highlight": key.ShimmerHighlight,
		"width":     key.ShimmerWidth,
		"fps":       key.ShimmerFPS,
	} {
		_ = viper.BindPFlag(k, shimmerCmd.Flags().Lookup(flag))
	}
}

// newShimmer builds the effect from configuration.
func newShimmer() (shimmer.Shimmer, error) {
	base, err := palette.Parse(viper.GetString(key.ShimmerBase))
	if err != nil {
		return shimmer.Shimmer{}, err
	}

	highlight, err := palette.Parse(viper.GetString(key.ShimmerHighlight))
	if err != nil {
		return shimmer.Shimmer{}, err
	}

	return shimmer.New(base, highlight, viper.GetInt(key.ShimmerWidth))
}

var shimmerCmd = &cobra.Command{
	Use:     "shimmer [text]",
	Short:   "Animate text with a sweeping highlight",
	Example: "  tint shimmer 'Loading…' --highlight peach --width 6",
	Run: func(cmd *cobra.Command, args []string) {
		text := constant.Tint
		if len(args) > 0 {
			text = strings.Join(args, " ")
		}

		if width, _, err := util.TerminalSize(); err == nil && width > 0 {
			text = style.Truncate(width)(text)
		}

		s, err := newShimmer()
		handleErr(err)

		fps := util.Clamp(viper.GetInt(key.ShimmerFPS), 1, 120)
		log.Debugf("shimmer %q width=%d fps=%d", text, s.Width, fps)
		handleErr(shimmer.Run(s, text, fps))
	},
}
