package style

import (
	"errors"
	"fmt"

	"github.com/tuitheme/tuitheme/color"
)

// Proxy is the shape a style takes in a theme document:
//
//	[base]
//	foreground = "red"
//	bg = "#000000"
//	bold = true
//	modifiers = ["underlined"]
//
// Colors are kept as strings until they are resolved against a palette. A
// key that is present wins over its alias even when empty.
type Proxy struct {
	Fg         *string `toml:"fg,omitempty" json:"fg,omitempty" jsonschema:"description=Foreground color or palette name"`
	Foreground *string `toml:"foreground,omitempty" json:"foreground,omitempty" jsonschema:"description=Alias of fg"`
	Bg         *string `toml:"bg,omitempty" json:"bg,omitempty" jsonschema:"description=Background color or palette name"`
	Background *string `toml:"background,omitempty" json:"background,omitempty" jsonschema:"description=Alias of bg"`

	Modifiers []string `toml:"modifiers,omitempty" json:"modifiers,omitempty" jsonschema:"description=Modifiers to add"`

	Bold       *bool `toml:"bold,omitempty" json:"bold,omitempty"`
	Dim        *bool `toml:"dim,omitempty" json:"dim,omitempty"`
	Italic     *bool `toml:"italic,omitempty" json:"italic,omitempty"`
	Underlined *bool `toml:"underlined,omitempty" json:"underlined,omitempty"`
	SlowBlink  *bool `toml:"slow_blink,omitempty" json:"slow_blink,omitempty"`
	RapidBlink *bool `toml:"rapid_blink,omitempty" json:"rapid_blink,omitempty"`
	Reversed   *bool `toml:"reversed,omitempty" json:"reversed,omitempty"`
	Hidden     *bool `toml:"hidden,omitempty" json:"hidden,omitempty"`
	CrossedOut *bool `toml:"crossed_out,omitempty" json:"crossed_out,omitempty"`
}

// FgName returns the foreground reference; "fg" wins over "foreground".
func (p Proxy) FgName() string {
	return ref(p.Fg, p.Foreground)
}

// BgName returns the background reference; "bg" wins over "background".
func (p Proxy) BgName() string {
	return ref(p.Bg, p.Background)
}

func ref(short, long *string) string {
	switch {
	case short != nil:
		return *short
	case long != nil:
		return *long
	default:
		return ""
	}
}

func (p Proxy) flags() []*bool {
	return []*bool{p.Bold, p.Dim, p.Italic, p.Underlined, p.SlowBlink, p.RapidBlink, p.Reversed, p.Hidden, p.CrossedOut}
}

// ModifierSet returns the modifiers added and removed by p.
func (p Proxy) ModifierSet() (add, sub Modifier, err error) {
	for _, name := range p.Modifiers {
		m, perr := ParseModifier(name)
		if perr != nil {
			err = errors.Join(err, perr)
			continue
		}
		add |= m
	}
	for i, flag := range p.flags() {
		if flag == nil {
			continue
		}
		if *flag {
			add |= 1 << i
		} else {
			sub |= 1 << i
		}
	}
	return add, sub &^ add, err
}

// ColorError is one reference of a Proxy that failed to resolve.
type ColorError struct {
	// Attr is "fg" or "bg".
	Attr string
	Err  error
}

func (e *ColorError) Error() string {
	return fmt.Sprintf("%s: %v", e.Attr, e.Err)
}

func (e *ColorError) Unwrap() error {
	return e.Err
}

// Resolve converts p into a Style. Parts that resolve are always applied;
// the returned error joins every part that did not, so callers can choose
// between dropping those parts and failing.
func (p Proxy) Resolve(palette color.Palette) (Style, error) {
	var (
		s    = New()
		errs []error
	)

	if name := p.FgName(); name != "" {
		c, err := palette.Resolve(name)
		if err != nil {
			errs = append(errs, &ColorError{Attr: "fg", Err: err})
		}
		s = s.Fg(c)
	}
	if name := p.BgName(); name != "" {
		c, err := palette.Resolve(name)
		if err != nil {
			errs = append(errs, &ColorError{Attr: "bg", Err: err})
		}
		s = s.Bg(c)
	}

	add, sub, err := p.ModifierSet()
	if err != nil {
		errs = append(errs, err)
	}
	s = s.RemoveModifier(sub).AddModifier(add)

	return s, errors.Join(errs...)
}

// ProxyOf renders s back into document form, using color literals.
func ProxyOf(s Style) Proxy {
	p := Proxy{Modifiers: s.Add.Names()}
	if fg := s.Foreground.String(); fg != "" {
		p.Fg = &fg
	}
	if bg := s.Background.String(); bg != "" {
		p.Bg = &bg
	}
	flags := []**bool{&p.Bold, &p.Dim, &p.Italic, &p.Underlined, &p.SlowBlink, &p.RapidBlink, &p.Reversed, &p.Hidden, &p.CrossedOut}
	for i, f := range flags {
		if s.Sub&(1<<i) != 0 {
			off := false
			*f = &off
		}
	}
	return p
}
