// Package color models terminal colors and the human-friendly string syntax
// used for them in theme documents.
package color

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// Kind discriminates the representation held by a Color.
type Kind uint8

const (
	// KindNone is the zero value: no color was specified.
	KindNone Kind = iota
	// KindReset restores the terminal default.
	KindReset
	// KindANSI is one of the 16 named terminal colors.
	KindANSI
	// KindIndexed is an entry of the 256-color palette.
	KindIndexed
	// KindRGB is a 24-bit color.
	KindRGB
)

// Color is a comparable terminal color value. The zero Color is unset.
type Color struct {
	kind    Kind
	index   uint8
	r, g, b uint8
}

// Reset restores the terminal's default color.
var Reset = Color{kind: KindReset}

// The 16 named colors, in ANSI order.
var (
	Black        = ansi(0)
	Red          = ansi(1)
	Green        = ansi(2)
	Yellow       = ansi(3)
	Blue         = ansi(4)
	Magenta      = ansi(5)
	Cyan         = ansi(6)
	Gray         = ansi(7)
	DarkGray     = ansi(8)
	LightRed     = ansi(9)
	LightGreen   = ansi(10)
	LightYellow  = ansi(11)
	LightBlue    = ansi(12)
	LightMagenta = ansi(13)
	LightCyan    = ansi(14)
	White        = ansi(15)
)

func ansi(i uint8) Color {
	return Color{kind: KindANSI, index: i}
}

// Indexed returns the 256-palette color n.
func Indexed(n uint8) Color {
	return Color{kind: KindIndexed, index: n}
}

// RGB returns a 24-bit color.
func RGB(r, g, b uint8) Color {
	return Color{kind: KindRGB, r: r, g: g, b: b}
}

// Kind reports the representation of c.
func (c Color) Kind() Kind {
	return c.kind
}

// IsSet reports whether c holds any color, including Reset.
func (c Color) IsSet() bool {
	return c.kind != KindNone
}

// Index returns the ANSI or palette index. It is only meaningful for
// KindANSI and KindIndexed.
func (c Color) Index() uint8 {
	return c.index
}

// Components returns the red, green and blue channels of an RGB color.
func (c Color) Components() (r, g, b uint8) {
	return c.r, c.g, c.b
}

// String renders c in the syntax accepted by Parse.
func (c Color) String() string {
	switch c.kind {
	case KindReset:
		return "reset"
	case KindANSI:
		return names[c.index]
	case KindIndexed:
		return strconv.Itoa(int(c.index))
	case KindRGB:
		return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
	default:
		return ""
	}
}

// Terminal converts c into the lipgloss color vocabulary.
func (c Color) Terminal() lipgloss.TerminalColor {
	switch c.kind {
	case KindANSI, KindIndexed:
		return lipgloss.Color(strconv.Itoa(int(c.index)))
	case KindRGB:
		return lipgloss.Color(c.String())
	default:
		return lipgloss.NoColor{}
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, so colors can be
// decoded straight from TOML strings.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
