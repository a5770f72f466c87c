// Package theme decodes theme documents into tagged Go structs.
//
// A theme struct marks its style sections with `theme` tags:
//
//	type Theme struct {
//		Base   style.Style `theme:"style"`
//		Dialog Dialog      `theme:"styles(info,warn)"`
//	}
//
//	type Dialog struct {
//		Info style.Style
//		Warn style.Style
//	}
//
// and is filled from a document such as
//
//	[colors]
//	red = "#d32f2f"
//	blue = "#1976d2"
//
//	[base]
//	foreground = "red"
//	background = "green"
//
//	[dialog]
//	info.foreground = "blue"
//
// Color references are looked up in the [colors] palette first and parsed as
// literal colors otherwise.
package theme

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/tuitheme/tuitheme/color"
	"github.com/tuitheme/tuitheme/constant"
	"github.com/tuitheme/tuitheme/internal/tag"
	"github.com/tuitheme/tuitheme/log"
	"github.com/tuitheme/tuitheme/style"
)

// Option configures a Decoder.
type Option func(*Decoder)

// WithStrict makes unresolvable color references and unknown modifiers
// decoding errors. By default they are dropped.
func WithStrict(strict bool) Option {
	return func(d *Decoder) { d.strict = strict }
}

// WithPaletteKey changes the top-level table read as the palette.
func WithPaletteKey(key string) Option {
	return func(d *Decoder) {
		if key != "" {
			d.paletteKey = key
		}
	}
}

// WithPalette layers the document palette over base.
func WithPalette(base color.Palette) Option {
	return func(d *Decoder) { d.base = base }
}

// Decoder reads a theme document from an input stream.
type Decoder struct {
	r          io.Reader
	strict     bool
	paletteKey string
	base       color.Palette

	palette  color.Palette
	warnings []error
}

// NewDecoder returns a decoder reading from r.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	d := &Decoder{r: r, paletteKey: constant.PaletteKey}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Unmarshal decodes a theme document into the struct pointed to by v.
func Unmarshal(data []byte, v any, opts ...Option) error {
	return NewDecoder(bytes.NewReader(data), opts...).Decode(v)
}

// Warnings lists the references dropped by the last lenient Decode.
func (d *Decoder) Warnings() []error {
	return d.warnings
}

// Palette returns the palette used by the last Decode.
func (d *Decoder) Palette() color.Palette {
	return d.palette
}

// Decode reads the whole document and stores it in v.
func (d *Decoder) Decode(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return ErrNotPointer
	}
	if rv.Elem().Kind() != reflect.Struct {
		return ErrNotStruct
	}

	raw, err := readDocument(d.r)
	if err != nil {
		return err
	}

	palette, err := paletteOf(raw, d.paletteKey)
	if err != nil {
		return err
	}
	d.palette = d.base.Merge(palette)
	d.warnings = nil

	return d.decodeStruct(rv.Elem(), raw, "")
}

func readDocument(r io.Reader) (map[string]any, error) {
	var raw map[string]any
	if err := toml.NewDecoder(r).Decode(&raw); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("theme: parse document at line %d column %d: %w", row, col, err)
		}
		return nil, fmt.Errorf("theme: parse document: %w", err)
	}
	return raw, nil
}

func paletteOf(raw map[string]any, key string) (color.Palette, error) {
	node, ok := raw[key]
	if !ok {
		return color.Palette{}, nil
	}
	table, ok := node.(map[string]any)
	if !ok {
		return nil, &FieldError{Path: key, Err: fmt.Errorf("expected a table of colors, got %T", node)}
	}

	palette := make(color.Palette, len(table))
	for name, value := range table {
		s, ok := value.(string)
		if !ok {
			return nil, &FieldError{Path: join(key, name), Err: fmt.Errorf("expected a color string, got %T", value)}
		}
		palette[name] = s
	}
	return palette, nil
}

func (d *Decoder) decodeStruct(v reflect.Value, table map[string]any, path string) error {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		key := tag.Key(f)
		fpath := join(path, key)

		meta, err := tag.ParseTheme(f.Tag.Get(tag.ThemeName))
		if err != nil {
			return fieldErr(fpath, err)
		}

		field := v.Field(i)
		node, present := table[key]

		switch meta.Kind {
		case tag.Skip:
		case tag.Colors:
			if err := d.setPalette(field, fpath); err != nil {
				return err
			}
		case tag.Style:
			if !present {
				continue
			}
			if err := d.decodeStyle(field, node, fpath); err != nil {
				return err
			}
		case tag.Styles:
			if !present {
				continue
			}
			if err := d.decodeGroup(field, node, meta, fpath); err != nil {
				return err
			}
		default:
			if !present {
				continue
			}
			if err := decodePlain(field, node); err != nil {
				return fieldErr(fpath, err)
			}
		}
	}
	return nil
}

func (d *Decoder) decodeStyle(field reflect.Value, node any, path string) error {
	if !isStyleType(field.Type()) {
		return fieldErr(path, fmt.Errorf("unsupported style field type %s", field.Type()))
	}

	table, ok := node.(map[string]any)
	if !ok {
		return fieldErr(path, fmt.Errorf("expected a style table, got %T", node))
	}

	var proxy style.Proxy
	if err := decodePlain(reflect.ValueOf(&proxy).Elem(), table); err != nil {
		return fieldErr(path, err)
	}

	resolved, err := proxy.Resolve(d.palette)
	if err != nil && field.Type() != proxyType {
		if d.strict {
			return fieldErr(path, err)
		}
		d.warn(path, err)
	}

	setStyle(field, proxy, resolved)
	return nil
}

func (d *Decoder) decodeGroup(field reflect.Value, node any, meta tag.Theme, path string) error {
	table, ok := node.(map[string]any)
	if !ok {
		return fieldErr(path, fmt.Errorf("expected a table of styles, got %T", node))
	}

	if field.Kind() == reflect.Pointer {
		if field.IsNil() {
			field.Set(reflect.New(field.Type().Elem()))
		}
		field = field.Elem()
	}
	if field.Kind() != reflect.Struct {
		return fieldErr(path, fmt.Errorf("styles field must be a struct, got %s", field.Type()))
	}

	t := field.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		key := tag.Key(f)
		fpath := join(path, key)
		sub, present := table[key]
		if !present || !meta.Includes(f.Name, key) {
			continue
		}

		inner, err := tag.ParseTheme(f.Tag.Get(tag.ThemeName))
		if err != nil {
			return fieldErr(fpath, err)
		}

		switch {
		case inner.Kind == tag.Skip:
		case inner.Kind == tag.Styles:
			if err := d.decodeGroup(field.Field(i), sub, inner, fpath); err != nil {
				return err
			}
		case isStyleType(f.Type):
			if err := d.decodeStyle(field.Field(i), sub, fpath); err != nil {
				return err
			}
		default:
			if err := decodePlain(field.Field(i), sub); err != nil {
				return fieldErr(fpath, err)
			}
		}
	}
	return nil
}

func (d *Decoder) setPalette(field reflect.Value, path string) error {
	switch field.Type() {
	case paletteType:
		field.Set(reflect.ValueOf(d.palette))
	case stringsType:
		field.Set(reflect.ValueOf(map[string]string(d.palette)))
	case colorsType:
		colors := make(map[string]color.Color, len(d.palette))
		for name, value := range d.palette {
			c, err := color.Parse(value)
			if err != nil {
				if d.strict {
					return fieldErr(join(path, name), err)
				}
				d.warn(join(path, name), err)
				continue
			}
			colors[name] = c
		}
		field.Set(reflect.ValueOf(colors))
	default:
		return fieldErr(path, fmt.Errorf("unsupported colors field type %s", field.Type()))
	}
	return nil
}

func (d *Decoder) warn(path string, err error) {
	log.With(log.Fields{"path": path}).Debugf("dropped unresolved reference: %v", err)
	d.warnings = append(d.warnings, &FieldError{Path: path, Err: err})
}

// decodePlain decodes a document node into an ordinary Go value, honouring
// toml tags and encoding.TextUnmarshaler implementations.
func decodePlain(field reflect.Value, node any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:    tag.TOMLName,
		Result:     field.Addr().Interface(),
		DecodeHook: mapstructure.TextUnmarshallerHookFunc(),
	})
	if err != nil {
		return err
	}
	return dec.Decode(node)
}
