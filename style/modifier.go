package style

import (
	"fmt"
	"strings"
)

// Modifier is a set of text attributes.
type Modifier uint16

// Modifiers in their canonical order. Builders apply them in this order.
const (
	Bold Modifier = 1 << iota
	Dim
	Italic
	Underlined
	SlowBlink
	RapidBlink
	Reversed
	Hidden
	CrossedOut
)

// modifierNames is indexed by bit position.
var modifierNames = [...]string{
	"bold", "dim", "italic", "underlined", "slow_blink", "rapid_blink", "reversed", "hidden", "crossed_out",
}

// Modifiers lists every single-bit modifier in canonical order.
func Modifiers() []Modifier {
	out := make([]Modifier, len(modifierNames))
	for i := range modifierNames {
		out[i] = 1 << i
	}
	return out
}

// ModifierNames lists the names accepted by ParseModifier.
func ModifierNames() []string {
	return append([]string(nil), modifierNames[:]...)
}

// ParseModifier maps a name such as "bold" or "crossed_out" to its
// Modifier. Dashes are accepted in place of underscores.
func ParseModifier(name string) (Modifier, error) {
	n := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for i, m := range modifierNames {
		if m == n {
			return 1 << i, nil
		}
	}
	return 0, fmt.Errorf("unknown modifier %q, supported: %s", name, strings.Join(modifierNames[:], ", "))
}

// Has reports whether every bit of other is set in m.
func (m Modifier) Has(other Modifier) bool {
	return other != 0 && m&other == other
}

// Names returns the names of the set bits in canonical order.
func (m Modifier) Names() []string {
	var out []string
	for i, n := range modifierNames {
		if m&(1<<i) != 0 {
			out = append(out, n)
		}
	}
	return out
}

func (m Modifier) String() string {
	if m == 0 {
		return "none"
	}
	return strings.Join(m.Names(), "|")
}
