package gen

import (
	"fmt"
	"go/token"

	"github.com/tuitheme/tuitheme/internal/tag"
)

// StyleType classifies the Go type of a style field.
type StyleType int

const (
	// NotStyle fields hold something else.
	NotStyle StyleType = iota
	// StyleValue is style.Style.
	StyleValue
	// StylePointer is *style.Style.
	StylePointer
	// StyleProxy is style.Proxy, the raw document form.
	StyleProxy
	// LipglossStyle is lipgloss.Style.
	LipglossStyle
)

// ColorsType classifies the Go type of a `theme:"colors"` field.
type ColorsType int

const (
	NotColors ColorsType = iota
	// PaletteMap is color.Palette.
	PaletteMap
	// StringMap is map[string]string.
	StringMap
	// ColorMap is map[string]color.Color.
	ColorMap
)

// Package is a scanned package and the themes it declares.
type Package struct {
	Name   string
	Dir    string
	Themes []*Theme

	structs map[string]*Struct
	imports map[string]string
}

// Theme lookup by name.
func (p *Package) Theme(name string) (*Theme, bool) {
	for _, t := range p.Themes {
		if t.Name == name {
			return t, true
		}
	}
	return nil, false
}

// Directives are the //themegen: comments attached to a struct.
type Directives struct {
	Decoder   bool
	Accessors bool
	Builder   bool
	// Context is the builder context type, e.g. Colors or config.Colors.
	Context string
}

// Any reports whether at least one directive is set.
func (d Directives) Any() bool {
	return d.Decoder || d.Accessors || d.Builder
}

// Struct is a struct type declared in the package.
type Struct struct {
	Name   string
	Pos    token.Position
	Fields []*Field
}

// Theme is an annotated struct.
type Theme struct {
	*Struct
	Directives
}

// Palette returns the `theme:"colors"` field, if any.
func (t *Theme) Palette() *Field {
	for _, f := range t.Fields {
		if f.Theme.Kind == tag.Colors {
			return f
		}
	}
	return nil
}

// Field is a named struct field and its parsed metadata.
type Field struct {
	Name string
	Key  string
	// Type is the source expression of the field type.
	Type string
	Pos  token.Position

	Theme   tag.Theme
	Style   *tag.StyleSpec
	Builder tag.Builder

	StyleType  StyleType
	ColorsType ColorsType
	// IsColor is set for color.Color fields.
	IsColor bool
	// Local names the package struct behind Type, if any.
	Local string
	// Pointer is set when Type is a pointer to Local.
	Pointer bool
	// Group holds the sub-fields read by a `theme:"styles"` field.
	Group []*Field

	quals []string
}

// Error is a problem located in the scanned sources.
type Error struct {
	Pos token.Position
	Msg string
}

func (e *Error) Error() string {
	if !e.Pos.IsValid() {
		return "themegen: " + e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

func errorAt(pos token.Position, format string, args ...any) error {
	return &Error{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}
