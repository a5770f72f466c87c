package style

import "github.com/tuitheme/tuitheme/color"

// The helpers below render CLI output. They return plain functions so they
// can be dropped into text/template FuncMaps.

// Colored initializes a style with the specified foreground and background colors.
func Colored(fg, bg color.Color) Style {
	return New().Fg(fg).Bg(bg)
}

// Fg returns a rendering function that applies the foreground color c.
func Fg(c color.Color) func(string) string {
	return Colored(c, color.Color{}).Render
}

// Bg returns a rendering function that applies the background color c.
func Bg(c color.Color) func(string) string {
	return Colored(color.Color{}, c).Render
}

// Tag returns a rendering function that renders a padded colored block.
func Tag(fg, bg color.Color) func(string) string {
	return func(s string) string {
		return Colored(fg, bg).Lipgloss().Padding(0, 1).Render(s)
	}
}

// Standard text transformations.
var (
	Faint     = New().Dim().Render
	Strong    = New().Bold().Render
	Emphasis  = New().Italic().Render
	Underline = New().Underlined().Render
)

// Title renders a highlighted banner.
var Title = Tag(color.Indexed(230), color.Indexed(62))

// ErrorTitle renders a banner using error colors.
var ErrorTitle = Tag(color.Indexed(230), color.Red)
