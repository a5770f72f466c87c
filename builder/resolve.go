package builder

import (
	"fmt"
	"reflect"

	"github.com/tuitheme/tuitheme/internal/tag"
)

// Resolve walks path through ctx. Pointers and interfaces are followed,
// struct fields match by Go name, by toml key or case-insensitively, and
// maps with string keys are indexed.
func Resolve(ctx reflect.Value, path tag.Path) (reflect.Value, error) {
	v := ctx
	for i, seg := range path {
		var err error
		if v, err = indirect(v); err != nil {
			return reflect.Value{}, fmt.Errorf("%w: %s", err, tag.Path(path[:i]))
		}

		switch v.Kind() {
		case reflect.Struct:
			next, ok := field(v, seg)
			if !ok {
				return reflect.Value{}, fmt.Errorf("%w: %s has no field %s", ErrMissing, v.Type(), seg)
			}
			v = next
		case reflect.Map:
			if v.Type().Key().Kind() != reflect.String {
				return reflect.Value{}, fmt.Errorf("cannot index %s with %q", v.Type(), seg)
			}
			next := v.MapIndex(reflect.ValueOf(seg).Convert(v.Type().Key()))
			if !next.IsValid() {
				return reflect.Value{}, fmt.Errorf("%w: key %q", ErrMissing, seg)
			}
			v = next
		default:
			return reflect.Value{}, fmt.Errorf("cannot look up %q in %s", seg, v.Type())
		}
	}

	if v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}, ErrMissing
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		return reflect.Value{}, ErrMissing
	}
	return v, nil
}

func indirect(v reflect.Value) (reflect.Value, error) {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}, fmt.Errorf("%w: nil value", ErrMissing)
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		return reflect.Value{}, fmt.Errorf("%w: no context", ErrMissing)
	}
	return v, nil
}

func field(v reflect.Value, seg string) (reflect.Value, bool) {
	t := v.Type()
	if f, ok := t.FieldByName(seg); ok && f.IsExported() && len(f.Index) == 1 {
		return v.Field(f.Index[0]), true
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.IsExported() && tag.Matches(seg, f.Name, tag.Key(f)) {
			return v.Field(i), true
		}
	}
	return reflect.Value{}, false
}
