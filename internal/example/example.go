// Package example is a small widget theme whose typed methods are produced by
// tuitheme generate. Its tests hold the generated code to the behaviour of
// the reflection based theme and builder packages.
package example

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tuitheme/tuitheme/color"
	"github.com/tuitheme/tuitheme/style"
)

//go:generate go run ../.. generate --force

// Theme is read from a theme document.
//
//themegen:decoder
//themegen:accessors
type Theme struct {
	Base   style.Style    `theme:"style"`
	Title  lipgloss.Style `theme:"style"`
	Cursor *style.Style   `theme:"style"`
	Link   style.Proxy    `theme:"style" toml:"raw_link"`
	Dialog *Dialog        `theme:"styles"`
	Status Status         `theme:"styles(left,right)"`
	Footer Footer
	Colors color.Palette `theme:"colors"`
}

type Dialog struct {
	Info   style.Style
	Warn   style.Proxy
	Button Button `theme:"styles"`
}

type Button struct {
	Focused   *style.Style
	Unfocused lipgloss.Style
}

type Status struct {
	Left   style.Style
	Right  style.Proxy
	Hidden style.Style
}

type Footer struct {
	Label string `toml:"label"`
	Width int    `toml:"width"`
}

// Colors is the context widgets are built from.
type Colors struct {
	Primary color.Color
	Muted   lipgloss.Color `toml:"muted_color"`
	Width   int
}

// Widgets are styled from Colors instead of a document.
//
//themegen:builder context=Colors
type Widgets struct {
	Frame  style.Style    `style:"fg=primary,bg=muted_color,bold"`
	Label  lipgloss.Style `style:"fg(primary),italic"`
	Accent color.Color    `builder:"value=primary"`
	Width  int            `builder:"value=width"`
	Menu   Menu           `builder:"child"`
	Popup  *Popup
	Tree   Node
	Note   string
}

//themegen:builder context=Colors
type Menu struct {
	Item     *style.Style `style:"fg=muted_color,underlined"`
	Selected style.Style  `style:"reversed"`
}

//themegen:builder context=Colors
type Popup struct {
	Border style.Style `style:"bg=primary"`
}

// Node links to the next node of a tree. Building a Node leaves Next nil.
//
//themegen:builder context=Colors
type Node struct {
	Style style.Style `style:"fg=primary"`
	Next  *Node
}
