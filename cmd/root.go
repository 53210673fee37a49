// Package cmd implements the command-line interface for tint.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tintkit/tint/color"
	"github.com/tintkit/tint/constant"
	"github.com/tintkit/tint/icon"
	"github.com/tintkit/tint/key"
	"github.com/tintkit/tint/log"
	"github.com/tintkit/tint/palette"
	"github.com/tintkit/tint/recent"
	"github.com/tintkit/tint/style"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().Bool("no-remember", false, "Do not add colors to the recent history")

	rootCmd.SetOut(os.Stdout)
}

// rootCmd defines the entry point for the tint application.
var rootCmd = &cobra.Command{
	Use:   constant.Tint,
	Short: "Color, text style and shimmer helpers for the terminal",
	Long: style.Title(constant.Tint) + "\n" +
		style.New().Italic(true).Foreground(palette.Accent.Lipgloss()).Render("  Inspect, darken, lighten and animate colors from the command line"),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("no-remember")) {
			viper.Set(key.RecentRemember, false)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		handleErr(cmd.Help())
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}

// resolveColor parses a palette name or hex string and records it in the recent history.
func resolveColor(arg string) (color.Color, error) {
	c, err := palette.Parse(arg)
	if err != nil {
		return color.Color{}, err
	}

	if err := recent.Remember(c); err != nil {
		log.Warnf("remember %s: %v", c.Hex(), err)
	}
	log.WithColor(c.Hex()).Debug("resolved color")
	return c, nil
}

// colorCompletion offers palette names and recently used hex values.
func colorCompletion(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return append(palette.Find(toComplete), recent.Suggest(toComplete)...), cobra.ShellCompDirectiveNoFileComp
}
