package theme

import (
	"reflect"

	"github.com/charmbracelet/lipgloss"
	"github.com/tuitheme/tuitheme/color"
	"github.com/tuitheme/tuitheme/style"
)

var (
	styleType    = reflect.TypeOf(style.Style{})
	styleTypePtr = reflect.TypeOf(&style.Style{})
	proxyType    = reflect.TypeOf(style.Proxy{})
	lipglossType = reflect.TypeOf(lipgloss.Style{})
	paletteType  = reflect.TypeOf(color.Palette{})
	stringsType  = reflect.TypeOf(map[string]string{})
	colorsType   = reflect.TypeOf(map[string]color.Color{})
)

// isStyleType reports whether values of t can hold a decoded style.
func isStyleType(t reflect.Type) bool {
	switch t {
	case styleType, styleTypePtr, proxyType, lipglossType:
		return true
	}
	return false
}

// setStyle stores a style section into field. Proxy fields keep the raw
// document form; every other style type receives the resolved style.
func setStyle(field reflect.Value, proxy style.Proxy, resolved style.Style) bool {
	switch field.Type() {
	case styleType:
		field.Set(reflect.ValueOf(resolved))
	case styleTypePtr:
		field.Set(reflect.ValueOf(&resolved))
	case proxyType:
		field.Set(reflect.ValueOf(proxy))
	case lipglossType:
		field.Set(reflect.ValueOf(resolved.Lipgloss()))
	default:
		return false
	}
	return true
}
