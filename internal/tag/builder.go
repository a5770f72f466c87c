package tag

import (
	"errors"
	"strings"
)

// BuilderKind classifies a `builder` tag.
type BuilderKind int

const (
	// Untagged fields get their zero value, or are built as children when
	// they carry builder metadata themselves.
	Untagged BuilderKind = iota
	// Value fields are copied from the context.
	Value
	// Default fields keep their zero value.
	Default
	// Child fields are built from the same context.
	Child
)

// Builder is a parsed `builder` tag.
type Builder struct {
	Kind BuilderKind
	Path Path
}

// ParseBuilder parses the value of a field `builder` tag.
func ParseBuilder(value string) (Builder, error) {
	v := strings.TrimSpace(value)
	switch {
	case v == "":
		return Builder{Kind: Untagged}, nil
	case v == "child":
		return Builder{Kind: Child}, nil
	case v == "value", v == "value=":
		return Builder{}, errorf(BuilderName, value, "missing value in `builder`")
	}

	name, arg, hasArg, err := splitArg(v)
	if err != nil {
		return Builder{}, errorf(BuilderName, value, "%v", err)
	}
	if name != "value" || !hasArg {
		return Builder{}, errorf(BuilderName, value, "unsupported attribute %q, expected value=path or child", name)
	}
	if arg == "default" {
		return Builder{Kind: Default}, nil
	}

	p, err := ParsePath(arg)
	if err != nil {
		return Builder{}, errorf(BuilderName, value, "%v", err)
	}
	return Builder{Kind: Value, Path: p}, nil
}

// ErrNoContext is returned when a builder directive names no context type.
var ErrNoContext = errors.New("no context found in builder directive")

// ParseContext extracts the type from a struct-level `context=Type`
// directive.
func ParseContext(value string) (string, error) {
	for _, item := range splitItems(value) {
		name, arg, hasArg, err := splitArg(item)
		if err != nil {
			return "", errorf(BuilderName, value, "%v", err)
		}
		if name != "context" {
			return "", errorf(BuilderName, value, "unsupported attribute %q", name)
		}
		if !hasArg || arg == "" {
			return "", ErrNoContext
		}
		if !isTypeName(arg) {
			return "", errorf(BuilderName, value, "expected a type name, got %q", arg)
		}
		return arg, nil
	}
	return "", ErrNoContext
}

// isTypeName accepts Name and pkg.Name.
func isTypeName(s string) bool {
	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return false
	}
	for _, p := range parts {
		if !isIdent(p) {
			return false
		}
	}
	return true
}
