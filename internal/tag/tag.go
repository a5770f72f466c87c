// Package tag parses the struct field metadata understood by the theme
// decoder, the builder and the code generator.
//
//	Base   style.Style `theme:"style"`
//	Dialog Dialog      `theme:"styles(info,warn)"`
//	Title  style.Style `style:"fg=colors.primary,bg=primary,bold"`
//	Footer Footer      `builder:"value=footer"`
//	Sub    SubTheme    `builder:"child"`
package tag

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/samber/lo"
)

// Tag names.
const (
	ThemeName   = "theme"
	StyleName   = "style"
	BuilderName = "builder"
	TOMLName    = "toml"
)

// Error describes malformed metadata.
type Error struct {
	Tag   string
	Value string
	Msg   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid `%s` tag %q: %s", e.Tag, e.Value, e.Msg)
}

func errorf(tag, value, format string, args ...any) error {
	return &Error{Tag: tag, Value: value, Msg: fmt.Sprintf(format, args...)}
}

// Path is a dotted reference into a context value, e.g. colors.primary.
type Path []string

// ParsePath validates and splits a dotted identifier path.
func ParsePath(s string) (Path, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty path")
	}
	parts := strings.Split(s, ".")
	for _, p := range parts {
		if !isIdent(p) {
			return nil, fmt.Errorf("expected an identifier or a dot, got %q", s)
		}
	}
	return parts, nil
}

func (p Path) String() string {
	return strings.Join(p, ".")
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}

// splitItems splits a comma separated list, keeping parenthesized groups
// together.
func splitItems(s string) []string {
	var (
		items []string
		depth int
		start int
	)
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				items = append(items, s[start:i])
				start = i + 1
			}
		}
	}
	items = append(items, s[start:])

	return lo.FilterMap(items, func(item string, _ int) (string, bool) {
		item = strings.TrimSpace(item)
		return item, item != ""
	})
}

// Key returns the theme document key of a struct field: the name of its
// toml tag, or the snake_case form of the Go name.
func Key(f reflect.StructField) string {
	return KeyOf(f.Name, f.Tag.Get(TOMLName))
}

// KeyOf is Key for callers that only have the field name and raw toml tag.
func KeyOf(goName, tomlTag string) string {
	if name, _, _ := strings.Cut(tomlTag, ","); name != "" && name != "-" {
		return name
	}
	return lo.SnakeCase(goName)
}

// Matches reports whether a context path segment refers to a field with
// the given Go name and document key.
func Matches(segment, goName, key string) bool {
	if segment == goName || segment == key {
		return true
	}
	fold := func(s string) string { return strings.ToLower(strings.ReplaceAll(s, "_", "")) }
	return fold(segment) == fold(goName)
}
