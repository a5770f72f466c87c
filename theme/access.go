package theme

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/tuitheme/tuitheme/color"
	"github.com/tuitheme/tuitheme/internal/tag"
	"github.com/tuitheme/tuitheme/style"
)

// StyleOf returns the style stored at a dotted path of a decoded theme,
// e.g. "base" or "dialog.info". Raw style.Proxy fields are resolved against
// the palette held by the theme's `theme:"colors"` field, and any color that
// does not resolve is an error.
func StyleOf(v any, path string) (style.Style, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return style.Style{}, ErrNotPointer
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return style.Style{}, ErrNotStruct
	}

	palette, err := paletteField(rv)
	if err != nil {
		return style.Style{}, err
	}

	field, err := lookup(rv, strings.Split(path, "."))
	if err != nil {
		return style.Style{}, fieldErr(path, err)
	}

	switch field.Type() {
	case proxyType:
		s, err := field.Interface().(style.Proxy).Resolve(palette)
		if err != nil {
			return style.Style{}, fieldErr(path, err)
		}
		return s, nil
	case styleType:
		return field.Interface().(style.Style), nil
	case styleTypePtr:
		if field.IsNil() {
			return style.New(), nil
		}
		return *field.Interface().(*style.Style), nil
	}
	return style.Style{}, fieldErr(path, fmt.Errorf("%w: field of type %s", ErrNoStyle, field.Type()))
}

func lookup(v reflect.Value, segments []string) (reflect.Value, error) {
	for i, seg := range segments {
		for v.Kind() == reflect.Pointer && v.Type() != styleTypePtr {
			if v.IsNil() {
				return reflect.Value{}, fmt.Errorf("%w: %s is nil", ErrNoStyle, strings.Join(segments[:i], "."))
			}
			v = v.Elem()
		}
		if v.Kind() != reflect.Struct || isStyleType(v.Type()) {
			return reflect.Value{}, ErrNoStyle
		}

		next, ok := fieldByKey(v, seg)
		if !ok {
			return reflect.Value{}, ErrNoStyle
		}
		v = next
	}
	return v, nil
}

func fieldByKey(v reflect.Value, segment string) (reflect.Value, bool) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() || f.Tag.Get(tag.ThemeName) == "-" {
			continue
		}
		if tag.Matches(segment, f.Name, tag.Key(f)) {
			return v.Field(i), true
		}
	}
	return reflect.Value{}, false
}

func paletteField(v reflect.Value) (color.Palette, error) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		meta, err := tag.ParseTheme(f.Tag.Get(tag.ThemeName))
		if err != nil {
			return nil, fieldErr(tag.Key(f), err)
		}
		if meta.Kind != tag.Colors || !f.IsExported() {
			continue
		}

		switch field := v.Field(i); field.Type() {
		case paletteType:
			return field.Interface().(color.Palette), nil
		case stringsType:
			return color.Palette(field.Interface().(map[string]string)), nil
		case colorsType:
			return color.PaletteOf(field.Interface().(map[string]color.Color)), nil
		}
	}
	return color.Palette{}, nil
}
