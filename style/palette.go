package style

import (
	"github.com/samber/lo"
	"github.com/tuitheme/tuitheme/color"
)

// Mocha is the palette written into starter theme documents.
var Mocha = color.Palette{
	"base":    "#1e1e2e",
	"text":    "#cdd6f4",
	"subtext": "#a6adc8",
	"overlay": "#6c7086",
	"surface": "#313244",

	"rosewater": "#f5e0dc",
	"flamingo":  "#f2cdcd",
	"pink":      "#f5c2e7",
	"mauve":     "#cba6f7",
	"red":       "#f38ba8",
	"maroon":    "#eba0ac",
	"peach":     "#fab387",
	"yellow":    "#f9e2af",
	"green":     "#a6e3a1",
	"teal":      "#94e2d5",
	"sky":       "#89dceb",
	"sapphire":  "#74c7ec",
	"blue":      "#89b4fa",
	"lavender":  "#b4befe",
}

// MochaStyles are the starter sections that accompany Mocha, keyed by
// dotted section name.
var MochaStyles = map[string]Proxy{
	"base":         {Fg: lo.ToPtr("text"), Bg: lo.ToPtr("base")},
	"title":        {Fg: lo.ToPtr("mauve"), Modifiers: []string{"bold"}},
	"muted":        {Fg: lo.ToPtr("overlay")},
	"border":       {Fg: lo.ToPtr("surface")},
	"dialog.info":  {Fg: lo.ToPtr("blue")},
	"dialog.warn":  {Fg: lo.ToPtr("yellow"), Modifiers: []string{"bold"}},
	"dialog.error": {Fg: lo.ToPtr("red"), Modifiers: []string{"bold", "underlined"}},
}
