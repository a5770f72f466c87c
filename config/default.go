package config

import (
	"github.com/tuitheme/tuitheme/constant"
	"github.com/tuitheme/tuitheme/key"
)

// Default holds every setting by key.
var Default = make(map[string]Field)

// EnvExposed lists the keys bound to environment variables.
var EnvExposed []string

func register(k string, v any, description string) {
	if _, exists := Default[k]; exists {
		panic("duplicate config key: " + k)
	}
	Default[k] = Field{Key: k, Value: v, Description: description}
	EnvExposed = append(EnvExposed, k)
}

func init() {
	// theme
	register(key.ThemeStrict, false, "Fail on colors that do not resolve instead of dropping them")
	register(key.ThemePaletteKey, constant.PaletteKey, "Top-level table of a theme document that holds the palette")
	register(key.ThemePath, "", "Theme document previewed when no file is given.\nBare names are looked up in the themes directory, see \"tuitheme where\"")
	register(key.ThemeEditor, "", "Editor used by \"tuitheme edit\".\nFalls back to $VISUAL, $EDITOR and then the system default")

	// gen
	register(key.GenSuffix, constant.GeneratedSuffix, "Suffix of the generated file, appended to the package name")
	register(key.GenForce, false, "Overwrite files that were not generated, or were generated by a newer version")

	// preview
	register(key.PreviewSample, "The quick brown fox jumps over the lazy dog", "Text rendered in each style by the previewer")

	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, kaomoji, plain, squares, nerd (nerd-font required)")

	// logs
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")

	register(key.CliColored, true, "Enable colored CLI output")
}
