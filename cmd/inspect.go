package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/tintkit/tint/color"
	"github.com/tintkit/tint/padding"
	"github.com/tintkit/tint/palette"
	"github.com/tintkit/tint/style"
)

// Inspection is the structured form of a color printed by "tint inspect --json".
type Inspection struct {
	Hex        string  `json:"hex" jsonschema:"pattern=^#[0-9a-f]{8}$"`
	Alpha      uint8   `json:"alpha"`
	Red        uint8   `json:"red"`
	Green      uint8   `json:"green"`
	Blue       uint8   `json:"blue"`
	Brightness float64 `json:"brightness" jsonschema:"minimum=0,maximum=255"`
	Light      bool    `json:"light"`
}

func inspect(c color.Color) Inspection {
	return Inspection{
		Hex:        c.Hex(),
		Alpha:      c.Alpha(),
		Red:        c.Red(),
		Green:      c.Green(),
		Blue:       c.Blue(),
		Brightness: c.Brightness(),
		Light:      c.IsLight(),
	}
}

// swatchLine renders a colored block followed by the hex value.
func swatchLine(c color.Color) string {
	return style.Swatch(c, 4) + " " + style.Bold(c.Hex())
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON object")
}

var inspectCmd = &cobra.Command{
	Use:               "inspect <color>",
	Short:             "Show the channels and brightness of a color",
	Example:           "  tint inspect '#ff0080ff'\n  tint inspect mauve --json",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: colorCompletion,
	Run: func(cmd *cobra.Command, args []string) {
		c, err := resolveColor(args[0])
		handleErr(err)

		info := inspect(c)
		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(info))
			return
		}

		label := style.Fg(palette.Faint)
		cmd.Println(swatchLine(c))
		cmd.Println()
		for _, row := range []lo.Tuple2[string, any]{
			{A: "Alpha", B: info.Alpha},
			{A: "Red", B: info.Red},
			{A: "Green", B: info.Green},
			{A: "Blue", B: info.Blue},
			{A: "Brightness", B: fmt.Sprintf("%.2f", info.Brightness)},
			{A: "Light", B: info.Light},
		} {
			cmd.Printf("  %s %v\n", label(padding.PadRight(row.A, 12)), row.B)
		}
	},
}
