// Package style provides a comparable terminal style value, its lipgloss
// rendering, and the proxy shape styles take in theme documents.
package style

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tuitheme/tuitheme/color"
)

// Style is an optional foreground, an optional background and a set of
// added and removed modifiers. The zero Style changes nothing.
type Style struct {
	Foreground color.Color
	Background color.Color
	Add        Modifier
	Sub        Modifier
}

// New returns the empty Style.
func New() Style {
	return Style{}
}

// Fg sets the foreground color. An unset color leaves the style unchanged.
func (s Style) Fg(c color.Color) Style {
	if c.IsSet() {
		s.Foreground = c
	}
	return s
}

// Bg sets the background color. An unset color leaves the style unchanged.
func (s Style) Bg(c color.Color) Style {
	if c.IsSet() {
		s.Background = c
	}
	return s
}

// AddModifier enables m, cancelling an earlier removal.
func (s Style) AddModifier(m Modifier) Style {
	s.Sub &^= m
	s.Add |= m
	return s
}

// RemoveModifier disables m, cancelling an earlier addition.
func (s Style) RemoveModifier(m Modifier) Style {
	s.Add &^= m
	s.Sub |= m
	return s
}

// Patch layers other on top of s: set colors in other win, and its
// modifier changes are applied after those of s.
func (s Style) Patch(other Style) Style {
	s = s.Fg(other.Foreground).Bg(other.Background)
	s.Add = (s.Add &^ other.Sub) | other.Add
	s.Sub = (s.Sub &^ other.Add) | other.Sub
	return s
}

func (s Style) Bold() Style       { return s.AddModifier(Bold) }
func (s Style) Dim() Style        { return s.AddModifier(Dim) }
func (s Style) Italic() Style     { return s.AddModifier(Italic) }
func (s Style) Underlined() Style { return s.AddModifier(Underlined) }
func (s Style) SlowBlink() Style  { return s.AddModifier(SlowBlink) }
func (s Style) RapidBlink() Style { return s.AddModifier(RapidBlink) }
func (s Style) Reversed() Style   { return s.AddModifier(Reversed) }
func (s Style) Hidden() Style     { return s.AddModifier(Hidden) }
func (s Style) CrossedOut() Style { return s.AddModifier(CrossedOut) }

// IsZero reports whether s changes nothing.
func (s Style) IsZero() bool {
	return s == Style{}
}

// Lipgloss converts s into a lipgloss.Style. Both blink speeds map onto
// lipgloss' single blink attribute; Hidden has no lipgloss counterpart and
// is honoured by Render instead.
func (s Style) Lipgloss() lipgloss.Style {
	ls := lipgloss.NewStyle()
	if s.Foreground.IsSet() {
		ls = ls.Foreground(s.Foreground.Terminal())
	}
	if s.Background.IsSet() {
		ls = ls.Background(s.Background.Terminal())
	}

	toggle := func(m Modifier, set func(bool) lipgloss.Style) {
		switch {
		case s.Add&m != 0:
			ls = set(true)
		case s.Sub&m != 0:
			ls = set(false)
		}
	}
	toggle(Bold, func(v bool) lipgloss.Style { return ls.Bold(v) })
	toggle(Dim, func(v bool) lipgloss.Style { return ls.Faint(v) })
	toggle(Italic, func(v bool) lipgloss.Style { return ls.Italic(v) })
	toggle(Underlined, func(v bool) lipgloss.Style { return ls.Underline(v) })
	toggle(SlowBlink|RapidBlink, func(v bool) lipgloss.Style { return ls.Blink(v) })
	toggle(Reversed, func(v bool) lipgloss.Style { return ls.Reverse(v) })
	toggle(CrossedOut, func(v bool) lipgloss.Style { return ls.Strikethrough(v) })

	return ls
}

// Render applies s to text.
func (s Style) Render(text string) string {
	if s.Add.Has(Hidden) {
		lines := strings.Split(text, "\n")
		for i, l := range lines {
			lines[i] = strings.Repeat(" ", lipgloss.Width(l))
		}
		text = strings.Join(lines, "\n")
	}
	return s.Lipgloss().Render(text)
}

// String describes s in theme document terms, e.g. "fg=red bg=#000000 bold".
func (s Style) String() string {
	var parts []string
	if s.Foreground.IsSet() {
		parts = append(parts, "fg="+s.Foreground.String())
	}
	if s.Background.IsSet() {
		parts = append(parts, "bg="+s.Background.String())
	}
	parts = append(parts, s.Add.Names()...)
	for _, n := range s.Sub.Names() {
		parts = append(parts, "-"+n)
	}
	if len(parts) == 0 {
		return "default"
	}
	return strings.Join(parts, " ")
}
