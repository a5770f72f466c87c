package color

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ErrInvalid is returned for strings that do not describe a color.
var ErrInvalid = errors.New("invalid color")

var names = [16]string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "gray",
	"darkgray", "lightred", "lightgreen", "lightyellow", "lightblue", "lightmagenta", "lightcyan", "white",
}

var byName = func() map[string]Color {
	m := map[string]Color{"reset": Reset}
	for i, n := range names {
		m[n] = ansi(uint8(i))
	}
	return m
}()

var normalizer = strings.NewReplacer(" ", "", "-", "", "_", "")

// aliases are applied in order after separators are removed.
var aliases = []struct{ from, to string }{
	{"bright", "light"},
	{"grey", "gray"},
	{"silver", "gray"},
	{"lightblack", "darkgray"},
	{"lightwhite", "white"},
	{"lightgray", "white"},
}

func normalize(s string) string {
	s = normalizer.Replace(strings.ToLower(s))
	for _, a := range aliases {
		s = strings.ReplaceAll(s, a.from, a.to)
	}
	return s
}

// Parse reads a color name ("red", "Light Blue", "bright-black"), a palette
// index ("42") or a hex triplet ("#1976d2").
func Parse(s string) (Color, error) {
	if c, ok := byName[normalize(s)]; ok {
		return c, nil
	}
	if n, err := strconv.ParseUint(s, 10, 8); err == nil {
		return Indexed(uint8(n)), nil
	}
	if c, ok := parseHex(s); ok {
		return c, nil
	}
	return Color{}, fmt.Errorf("%w: %q", ErrInvalid, s)
}

// MustParse is like Parse but panics on error. Meant for literals.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parseHex(s string) (Color, bool) {
	if len(s) != 7 || s[0] != '#' {
		return Color{}, false
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return Color{}, false
	}
	return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), true
}

// Names lists the accepted color names in ANSI order, followed by "reset".
func Names() []string {
	out := make([]string, 0, len(names)+1)
	out = append(out, names[:]...)
	return append(out, "reset")
}

// Value enumerates the static types accepted by Of. Any string type,
// lipgloss.Color included, is parsed.
type Value interface {
	Color | *Color | ~string
}

// Of converts v into a Color. Unparseable strings yield the unset Color.
// Generated builders call it on context fields.
func Of[T Value](v T) Color {
	if c, ok := FromAny(v); ok {
		return c
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.String {
		c, _ := Parse(rv.String())
		return c
	}
	return Color{}
}

// FromAny converts a dynamically typed value into a Color. It understands
// Color, *Color, lipgloss colors, lipgloss.NoColor and strings.
func FromAny(v any) (Color, bool) {
	switch x := v.(type) {
	case Color:
		return x, true
	case *Color:
		if x == nil {
			return Color{}, false
		}
		return *x, true
	case lipgloss.Color:
		return fromLipgloss(string(x))
	case lipgloss.NoColor:
		return Reset, true
	case string:
		c, err := Parse(x)
		return c, err == nil
	case fmt.Stringer:
		c, err := Parse(x.String())
		return c, err == nil
	}
	return Color{}, false
}

// fromLipgloss maps lipgloss numeric colors below 16 back onto the named set.
func fromLipgloss(s string) (Color, bool) {
	if n, err := strconv.ParseUint(s, 10, 8); err == nil {
		if n < 16 {
			return ansi(uint8(n)), true
		}
		return Indexed(uint8(n)), true
	}
	c, err := Parse(s)
	return c, err == nil
}

// sortedKeys is shared by palette diagnostics.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
