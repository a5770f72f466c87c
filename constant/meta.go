// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// App is the canonical application identifier used for filesystem paths and CLI branding.
	App = "tuitheme"

	// Version is the current application semantic version string.
	Version = "0.3.0"
)

// Theme document conventions.
const (
	// PaletteKey is the default top-level table holding named colors.
	PaletteKey = "colors"

	// GeneratedSuffix is appended to the package name to form the generated file name.
	GeneratedSuffix = "_theme_gen.go"

	// DirectivePrefix marks struct doc comments consumed by the generator.
	DirectivePrefix = "//themegen:"
)
