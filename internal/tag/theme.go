package tag

import (
	"fmt"
	"strings"
)

// Kind classifies a `theme` tag.
type Kind int

const (
	// Plain fields carry no theme metadata.
	Plain Kind = iota
	// Style fields decode from a style table.
	Style
	// Styles fields group several styles under one table.
	Styles
	// Colors fields receive the palette.
	Colors
	// Skip fields are never touched.
	Skip
)

func (k Kind) String() string {
	switch k {
	case Style:
		return "style"
	case Styles:
		return "styles"
	case Colors:
		return "colors"
	case Skip:
		return "-"
	default:
		return "plain"
	}
}

// Theme is a parsed `theme` tag.
type Theme struct {
	Kind Kind
	// Only restricts a Styles group to the listed sub-fields, by key.
	Only []string
}

// Includes reports whether the group reads the sub-field with the given
// Go name or key.
func (t Theme) Includes(goName, key string) bool {
	if len(t.Only) == 0 {
		return true
	}
	for _, o := range t.Only {
		if Matches(o, goName, key) {
			return true
		}
	}
	return false
}

// ParseTheme parses the value of a `theme` tag. The empty string yields a
// Plain field.
func ParseTheme(value string) (Theme, error) {
	v := strings.TrimSpace(value)
	switch v {
	case "":
		return Theme{Kind: Plain}, nil
	case "style":
		return Theme{Kind: Style}, nil
	case "colors":
		return Theme{Kind: Colors}, nil
	case "-":
		return Theme{Kind: Skip}, nil
	case "styles":
		return Theme{Kind: Styles}, nil
	}

	if rest, ok := strings.CutPrefix(v, "styles"); ok {
		inner, err := parenthesized(strings.TrimSpace(rest))
		if err != nil {
			return Theme{}, errorf(ThemeName, value, "%v", err)
		}
		only := splitItems(inner)
		for _, o := range only {
			if !isIdent(o) {
				return Theme{}, errorf(ThemeName, value, "expected identifiers in styles(..), got %q", o)
			}
		}
		return Theme{Kind: Styles, Only: only}, nil
	}

	return Theme{}, errorf(ThemeName, value, "unexpected metadata: %s, supported: style, colors or styles(..)", v)
}

func parenthesized(s string) (string, error) {
	if !strings.HasPrefix(s, "(") || !strings.HasSuffix(s, ")") {
		return "", fmt.Errorf("expected a parenthesized list")
	}
	return s[1 : len(s)-1], nil
}
