package cmd

import (
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/tintkit/tint/date"
	"github.com/tintkit/tint/icon"
	"github.com/tintkit/tint/recent"
	"github.com/tintkit/tint/style"
	"github.com/tintkit/tint/util"
)

func init() {
	rootCmd.AddCommand(recentCmd)
	recentCmd.Flags().BoolP("clear", "c", false, "Forget every remembered color")
}

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List recently used colors",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("clear")) {
			handleErr(recent.Clear())
			cmd.Printf("%s recent colors cleared\n", icon.Get(icon.Success))
			return
		}

		records := recent.List()
		if len(records) == 0 {
			cmd.Println(style.Faint("no recent colors"))
			return
		}

		for _, r := range records {
			c, err := r.Color()
			if err != nil {
				continue
			}
			cmd.Printf("%s  %s  %s\n",
				swatchLine(c),
				style.Faint(util.Quantify(r.Uses, "use", "uses")),
				style.Italic(date.Relative(r.LastUsed)),
			)
		}
	},
}
