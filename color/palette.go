package color

import (
	"fmt"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
)

// Palette maps user-chosen names to color strings, as found in the
// `[colors]` table of a theme document.
type Palette map[string]string

// UnresolvedError reports a color reference that is neither a palette entry
// nor a valid color literal.
type UnresolvedError struct {
	Name string
	// Entry holds the palette value when Name exists but its value is invalid.
	Entry string
	// Suggestion is the closest known name, if any is close enough.
	Suggestion string
}

func (e *UnresolvedError) Error() string {
	msg := fmt.Sprintf("unknown color %q", e.Name)
	if e.Entry != "" {
		msg = fmt.Sprintf("palette entry %q has invalid value %q", e.Name, e.Entry)
	}
	if e.Suggestion != "" {
		msg += fmt.Sprintf(", did you mean %q?", e.Suggestion)
	}
	return msg
}

func (e *UnresolvedError) Unwrap() error {
	return ErrInvalid
}

// Resolve looks s up in the palette and parses the entry verbatim. An
// entry that does not parse is an error even when s is itself a color name.
// Only names missing from the palette are parsed as literal colors.
func (p Palette) Resolve(s string) (Color, error) {
	if entry, ok := p[s]; ok {
		c, err := Parse(entry)
		if err != nil {
			return Color{}, &UnresolvedError{Name: s, Entry: entry}
		}
		return c, nil
	}
	if c, err := Parse(s); err == nil {
		return c, nil
	}
	return Color{}, &UnresolvedError{Name: s, Suggestion: p.Suggest(s)}
}

// Suggest returns the palette key or color name closest to s, or "" when
// nothing is within a plausible edit distance.
func (p Palette) Suggest(s string) string {
	candidates := append(sortedKeys(p), Names()...)
	if len(candidates) == 0 {
		return ""
	}

	closest := lo.MinBy(candidates, func(a, b string) bool {
		return levenshtein.Distance(s, a) < levenshtein.Distance(s, b)
	})
	if levenshtein.Distance(s, closest) > len(s)/2+1 {
		return ""
	}
	return closest
}

// Colors resolves every entry. The first invalid entry, in key order, is
// reported.
func (p Palette) Colors() (map[string]Color, error) {
	out := make(map[string]Color, len(p))
	for _, name := range sortedKeys(p) {
		c, err := Parse(p[name])
		if err != nil {
			return nil, &UnresolvedError{Name: name, Entry: p[name]}
		}
		out[name] = c
	}
	return out, nil
}

// Merge returns a new palette with the entries of other layered over p.
func (p Palette) Merge(other Palette) Palette {
	return Palette(lo.Assign(map[string]string(p), map[string]string(other)))
}

// PaletteOf converts resolved colors back into a Palette of literals.
func PaletteOf(colors map[string]Color) Palette {
	p := make(Palette, len(colors))
	for name, c := range colors {
		p[name] = c.String()
	}
	return p
}
