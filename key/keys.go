// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Theme Decoding - these keys govern how theme documents are read and resolved.
const (
	ThemeStrict     = "theme.strict"
	ThemePaletteKey = "theme.palette_key"
	ThemePath       = "theme.path"
	ThemeEditor     = "theme.editor"
)

// Code Generation - these keys configure the themegen code generator.
const (
	GenSuffix = "gen.suffix"
	GenForce  = "gen.force"
)

// Preview - these keys configure the interactive theme browser.
const (
	PreviewSample = "preview.sample"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern the non-TUI application behavior.
const (
	CliColored = "cli.colored"
)
