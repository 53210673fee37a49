package cmd

import (
	"runtime"
	"strings"
	"text/template"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/tintkit/tint/constant"
	"github.com/tintkit/tint/date"
	"github.com/tintkit/tint/palette"
	"github.com/tintkit/tint/shimmer"
	"github.com/tintkit/tint/style"
)

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolP("short", "s", false, "Display only the version string without metadata")
}

// builtAt renders the link-time build date, falling back to the raw value when it is not RFC 3339.
func builtAt() string {
	raw := strings.TrimSpace(constant.BuiltAt)
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return raw
	}
	return date.Format(t, "datetime") + " (" + date.Ago(t) + ")"
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display version and build metadata",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("short")) {
			cmd.Println(constant.Version)
			return
		}

		// A single still frame of the shimmer with the band in the middle of the name.
		banner, err := shimmer.New(palette.Mauve, palette.Pink, 2)
		handleErr(err)

		info := struct {
			Banner   string
			Version  string
			OS       string
			Arch     string
			BuiltAt  string
			BuiltBy  string
			Revision string
		}{
			Banner:   banner.Render(constant.Tint, banner.Width+len(constant.Tint)/2),
			Version:  constant.Version,
			OS:       runtime.GOOS,
			Arch:     runtime.GOARCH,
			BuiltAt:  builtAt(),
			BuiltBy:  constant.BuiltBy,
			Revision: constant.Revision,
		}

		t, err := template.New("version").Funcs(map[string]any{
			"faint": style.Faint,
			"bold":  style.Bold,
			"swatch": func() string {
				return style.Swatch(palette.Mauve, 3)
			},
		}).Parse(`{{ swatch }} {{ .Banner }}

  {{ faint "Version" }}      {{ bold .Version }}
  {{ faint "Git Commit" }}   {{ bold .Revision }}
  {{ faint "Build Date" }}   {{ bold .BuiltAt }}
  {{ faint "Built By" }}     {{ bold .BuiltBy }}
  {{ faint "Platform" }}     {{ bold .OS }}/{{ bold .Arch }}
`)
		handleErr(err)
		handleErr(t.Execute(cmd.OutOrStdout(), info))
	},
}
