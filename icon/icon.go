// Package icon renders the status symbols printed by the CLI and previewer.
//
// Icons can be displayed as emoji, nerd-font glyphs, plain ASCII, kaomoji,
// or Unicode squares depending on the icons.variant setting.
package icon

import (
	"github.com/tuitheme/tuitheme/key"
	"github.com/spf13/viper"
)

// Visual Variant Constants - these define the supported aesthetic styles for icon rendering.
const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants returns the accepted values of icons.variant.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

// iconDef holds one symbol in every variant.
type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

// Get returns the symbol for the configured variant.
func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case kaomoji:
		return d.kaomoji
	case squares:
		return d.squares
	default:
		return ""
	}
}

// Get returns the symbol of i for the configured variant.
func Get(i Icon) string {
	return icons[i].Get()
}

// Icon identifies a symbol.
type Icon int

const (
	Fail Icon = iota + 1
	Success
	Warn
	Info
	Mark
	Palette
	Style
	File
)

var icons = map[Icon]*iconDef{
	Fail: {
		emoji:   "💥",
		nerd:    "\uf00d",
		plain:   "x",
		kaomoji: "(×_×)",
		squares: "🟥",
	},
	Success: {
		emoji:   "🎉",
		nerd:    "\uf00c",
		plain:   "ok",
		kaomoji: "(ᵔ◡ᵔ)",
		squares: "🟩",
	},
	Warn: {
		emoji:   "⚠️",
		nerd:    "\uf071",
		plain:   "!",
		kaomoji: "(・_・;)",
		squares: "🟨",
	},
	Info: {
		emoji:   "💡",
		nerd:    "\uf05a",
		plain:   "i",
		kaomoji: "(・・)",
		squares: "🟦",
	},
	Mark: {
		emoji:   "✅",
		nerd:    "\uf14a",
		plain:   "*",
		kaomoji: "(^_^)",
		squares: "🟪",
	},
	Palette: {
		emoji:   "🎨",
		nerd:    "\uf1fc",
		plain:   "#",
		kaomoji: "(*^▽^*)",
		squares: "🟧",
	},
	Style: {
		emoji:   "🖌️",
		nerd:    "\uf040",
		plain:   "~",
		kaomoji: "(￣▽￣)",
		squares: "🟫",
	},
	File: {
		emoji:   "📄",
		nerd:    "\uf15b",
		plain:   "-",
		kaomoji: "(ー_ー)",
		squares: "⬜",
	},
}
