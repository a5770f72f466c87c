package tag

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tuitheme/tuitheme/style"
)

// StyleSpec is a parsed `style` tag.
type StyleSpec struct {
	Fg        Path
	Bg        Path
	Modifiers style.Modifier
}

// ParseStyle parses the value of a `style` tag. Colors are given either as
// fg=path or fg(path) / fg("path"); foreground and background are accepted
// as long forms. Remaining items name modifiers.
func ParseStyle(value string) (StyleSpec, error) {
	var spec StyleSpec

	for _, item := range splitItems(value) {
		name, arg, hasArg, err := splitArg(item)
		if err != nil {
			return StyleSpec{}, errorf(StyleName, value, "%v", err)
		}

		switch name {
		case "fg", "foreground", "bg", "background":
			if !hasArg {
				return StyleSpec{}, errorf(StyleName, value, "%s requires a color path", name)
			}
			p, err := ParsePath(arg)
			if err != nil {
				return StyleSpec{}, errorf(StyleName, value, "%v", err)
			}
			if name[0] == 'f' {
				spec.Fg = p
			} else {
				spec.Bg = p
			}
		default:
			if hasArg {
				return StyleSpec{}, errorf(StyleName, value, "modifier %s takes no value", name)
			}
			m, err := style.ParseModifier(name)
			if err != nil {
				return StyleSpec{}, errorf(StyleName, value, "%v", err)
			}
			spec.Modifiers |= m
		}
	}

	return spec, nil
}

// splitArg splits `name=arg`, `name(arg)` and `name("arg")`.
func splitArg(item string) (name, arg string, hasArg bool, err error) {
	if n, a, ok := strings.Cut(item, "="); ok {
		return strings.TrimSpace(n), strings.TrimSpace(a), true, nil
	}
	if open := strings.IndexByte(item, '('); open >= 0 {
		if !strings.HasSuffix(item, ")") {
			return "", "", false, fmt.Errorf("unbalanced parenthesis in %q", item)
		}
		name = strings.TrimSpace(item[:open])
		arg = strings.TrimSpace(item[open+1 : len(item)-1])
		if strings.HasPrefix(arg, `"`) {
			unq, uerr := strconv.Unquote(arg)
			if uerr != nil {
				return "", "", false, fmt.Errorf("expected string or identifier, got %s", arg)
			}
			arg = unq
		}
		return name, arg, true, nil
	}
	return item, "", false, nil
}
