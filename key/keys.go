// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Color Transforms - these keys tune the defaults of the darken and lighten commands.
const (
	TransformDefaultPercent = "transform.default_percent"
)

// Shimmer Effect - these keys describe the sweeping highlight animation.
const (
	ShimmerWidth     = "shimmer.width"
	ShimmerFPS       = "shimmer.fps"
	ShimmerBase      = "shimmer.base"
	ShimmerHighlight = "shimmer.highlight"
)

// Recent Colors - these keys manage the history of colors passed to the CLI.
const (
	RecentRemember = "recent.remember"
	RecentLimit    = "recent.limit"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the command-line behavior.
const (
	CliColored = "cli.colored"
)
