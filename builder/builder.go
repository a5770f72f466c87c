// Package builder fills theme structs from a context value holding colors
// and other settings.
//
//	type Colors struct {
//		Primary color.Color
//	}
//
//	type Theme struct {
//		Base   style.Style `style:"fg=primary,bg=primary,bold"`
//		Hidden bool        `builder:"value=hide"`
//		Sub    SubTheme    `builder:"child"`
//	}
//
//	theme, err := builder.Build[Theme](colors)
package builder

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/charmbracelet/lipgloss"
	"github.com/tuitheme/tuitheme/color"
	"github.com/tuitheme/tuitheme/internal/tag"
	"github.com/tuitheme/tuitheme/log"
	"github.com/tuitheme/tuitheme/style"
)

var (
	// ErrNotStruct is returned when the build target is not a pointer to a struct.
	ErrNotStruct = errors.New("builder: target must be a non-nil pointer to a struct")
	// ErrMissing is returned when a context path leads nowhere.
	ErrMissing = errors.New("no such context value")
	// ErrNotColor is returned when a style references a context value that is not a color.
	ErrNotColor = errors.New("context value is not a color")
)

// PathError reports a context path that could not serve a field.
type PathError struct {
	// Field is the dotted Go path of the field being built.
	Field string
	// Path is the context path named by the field metadata.
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("builder: %s: context %s: %v", e.Field, e.Path, e.Err)
}

func (e *PathError) Unwrap() error {
	return e.Err
}

var (
	styleType    = reflect.TypeOf(style.Style{})
	styleTypePtr = reflect.TypeOf(&style.Style{})
	lipglossType = reflect.TypeOf(lipgloss.Style{})
	colorType    = reflect.TypeOf(color.Color{})
)

// Build constructs a T from ctx.
func Build[T any](ctx any) (T, error) {
	var t T
	err := Into(ctx, &t)
	return t, err
}

// Into fills the struct pointed to by target from ctx. Every field is
// written: styles from `style` tags, copies from `builder:"value=path"`,
// children from `builder:"child"` or from untagged struct fields that carry
// metadata of their own, and zero values for the rest.
//
// An untagged pointer child whose type can lead back to the struct holding
// it is left nil. A `builder:"child"` that leads back without passing such a
// pointer is an error.
func Into(ctx any, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return ErrNotStruct
	}

	log.Tracef("building %s", rv.Elem().Type())
	return build(reflect.ValueOf(ctx), rv.Elem(), "")
}

func build(ctx, v reflect.Value, prefix string) error {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		name := f.Name
		if prefix != "" {
			name = prefix + "." + f.Name
		}
		field := v.Field(i)

		if raw, ok := f.Tag.Lookup(tag.StyleName); ok {
			spec, err := tag.ParseStyle(raw)
			if err != nil {
				return fmt.Errorf("builder: %s: %w", name, err)
			}
			if err := buildStyle(ctx, field, spec, name); err != nil {
				return err
			}
			continue
		}

		meta, err := tag.ParseBuilder(f.Tag.Get(tag.BuilderName))
		if err != nil {
			return fmt.Errorf("builder: %s: %w", name, err)
		}

		switch meta.Kind {
		case tag.Value:
			if err := copyValue(ctx, field, meta.Path, name); err != nil {
				return err
			}
		case tag.Child:
			if !isStructLike(f.Type) {
				return fmt.Errorf("builder: %s: child field must be a struct, got %s", name, f.Type)
			}
			if leadsTo(elem(f.Type), t, true, map[reflect.Type]bool{}) {
				return fmt.Errorf("builder: %s: child %s leads back to %s", name, f.Type, t)
			}
			if err := buildChild(ctx, field, name); err != nil {
				return err
			}
		case tag.Untagged:
			if isStructLike(f.Type) && HasMetadata(f.Type) {
				// a pointer that can lead back here stays nil
				if f.Type.Kind() == reflect.Pointer && leadsTo(f.Type.Elem(), t, false, map[reflect.Type]bool{}) {
					field.SetZero()
					continue
				}
				if err := buildChild(ctx, field, name); err != nil {
					return err
				}
				continue
			}
			field.SetZero()
		default:
			field.SetZero()
		}
	}
	return nil
}

func buildStyle(ctx, field reflect.Value, spec tag.StyleSpec, name string) error {
	s := style.New()

	if spec.Fg != nil {
		c, err := colorAt(ctx, spec.Fg, name)
		if err != nil {
			return err
		}
		s = s.Fg(c)
	}
	if spec.Bg != nil {
		c, err := colorAt(ctx, spec.Bg, name)
		if err != nil {
			return err
		}
		s = s.Bg(c)
	}
	for _, m := range style.Modifiers() {
		if spec.Modifiers.Has(m) {
			s = s.AddModifier(m)
		}
	}

	switch field.Type() {
	case styleType:
		field.Set(reflect.ValueOf(s))
	case styleTypePtr:
		field.Set(reflect.ValueOf(&s))
	case lipglossType:
		field.Set(reflect.ValueOf(s.Lipgloss()))
	default:
		return fmt.Errorf("builder: %s: unsupported style field type %s", name, field.Type())
	}
	return nil
}

func colorAt(ctx reflect.Value, path tag.Path, name string) (color.Color, error) {
	v, err := Resolve(ctx, path)
	if err != nil {
		return color.Color{}, &PathError{Field: name, Path: path.String(), Err: err}
	}
	c, ok := colorOf(v)
	if !ok {
		return color.Color{}, &PathError{Field: name, Path: path.String(), Err: ErrNotColor}
	}
	return c, nil
}

func colorOf(v reflect.Value) (color.Color, bool) {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return color.Color{}, false
		}
		v = v.Elem()
	}
	if v.CanInterface() {
		if c, ok := color.FromAny(v.Interface()); ok {
			return c, true
		}
	}
	if v.Kind() == reflect.String {
		c, err := color.Parse(v.String())
		return c, err == nil
	}
	return color.Color{}, false
}

func copyValue(ctx, field reflect.Value, path tag.Path, name string) error {
	v, err := Resolve(ctx, path)
	if err != nil {
		return &PathError{Field: name, Path: path.String(), Err: err}
	}

	switch {
	case v.Type().AssignableTo(field.Type()):
		field.Set(v)
	case field.Type() == colorType:
		c, ok := colorOf(v)
		if !ok {
			return &PathError{Field: name, Path: path.String(), Err: ErrNotColor}
		}
		field.Set(reflect.ValueOf(c))
	case v.Type().ConvertibleTo(field.Type()) && v.Kind() == field.Kind():
		field.Set(v.Convert(field.Type()))
	default:
		return &PathError{
			Field: name,
			Path:  path.String(),
			Err:   fmt.Errorf("cannot use %s as %s", v.Type(), field.Type()),
		}
	}
	return nil
}

func buildChild(ctx, field reflect.Value, name string) error {
	if field.Kind() == reflect.Pointer {
		child := reflect.New(field.Type().Elem())
		if err := build(ctx, child.Elem(), name); err != nil {
			return err
		}
		field.Set(child)
		return nil
	}
	return build(ctx, field, name)
}

// childEdge is a struct field the builder descends into. Only untagged
// pointer fields are cut to break cycles.
type childEdge struct {
	to  reflect.Type
	cut bool
}

func children(t reflect.Type) []childEdge {
	var edges []childEdge
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() || !isStructLike(f.Type) {
			continue
		}
		if _, ok := f.Tag.Lookup(tag.StyleName); ok {
			continue
		}
		meta, err := tag.ParseBuilder(f.Tag.Get(tag.BuilderName))
		if err != nil {
			continue
		}
		switch {
		case meta.Kind == tag.Child:
			edges = append(edges, childEdge{to: elem(f.Type)})
		case meta.Kind == tag.Untagged && HasMetadata(f.Type):
			edges = append(edges, childEdge{to: elem(f.Type), cut: f.Type.Kind() == reflect.Pointer})
		}
	}
	return edges
}

// leadsTo reports whether building from reaches to. With kept set, cut
// edges are not followed.
func leadsTo(from, to reflect.Type, kept bool, seen map[reflect.Type]bool) bool {
	if from == to {
		return true
	}
	if seen[from] {
		return false
	}
	seen[from] = true

	for _, e := range children(from) {
		if kept && e.cut {
			continue
		}
		if leadsTo(e.to, to, kept, seen) {
			return true
		}
	}
	return false
}

func elem(t reflect.Type) reflect.Type {
	if t.Kind() == reflect.Pointer {
		return t.Elem()
	}
	return t
}

func isStructLike(t reflect.Type) bool {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct && t != styleType && t != lipglossType && t != colorType
}

// HasMetadata reports whether t, or any struct it embeds by value, carries
// `style` or `builder` tags.
func HasMetadata(t reflect.Type) bool {
	return hasMetadata(t, map[reflect.Type]bool{})
}

func hasMetadata(t reflect.Type, seen map[reflect.Type]bool) bool {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct || seen[t] {
		return false
	}
	seen[t] = true

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if _, ok := f.Tag.Lookup(tag.StyleName); ok {
			return true
		}
		if _, ok := f.Tag.Lookup(tag.BuilderName); ok {
			return true
		}
		if isStructLike(f.Type) && hasMetadata(f.Type, seen) {
			return true
		}
	}
	return false
}
