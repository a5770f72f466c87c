package theme

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/tuitheme/tuitheme/color"
	"github.com/tuitheme/tuitheme/constant"
	"github.com/tuitheme/tuitheme/internal/tag"
	"github.com/tuitheme/tuitheme/style"
)

// proxyKeys are the keys a style table may hold.
var proxyKeys = func() []string {
	keys := make([]string, 0, proxyType.NumField())
	for i := 0; i < proxyType.NumField(); i++ {
		keys = append(keys, tag.Key(proxyType.Field(i)))
	}
	return keys
}()

// Document is a schema-free view of a theme document: its palette and every
// style table, keyed by dotted name.
type Document struct {
	Palette color.Palette
	Styles  map[string]style.Proxy

	// unknown keys found inside style tables, by style name
	unknown    map[string][]string
	paletteKey string
}

// NewDocument returns a document holding palette and styles, as written
// by Encode.
func NewDocument(palette color.Palette, styles map[string]style.Proxy) *Document {
	return &Document{
		Palette:    palette,
		Styles:     styles,
		unknown:    make(map[string][]string),
		paletteKey: constant.PaletteKey,
	}
}

// ParseDocument reads a theme document without a target struct.
func ParseDocument(data []byte, opts ...Option) (*Document, error) {
	return NewDecoder(bytes.NewReader(data), opts...).DecodeDocument()
}

// DecodeDocument is the schema-free counterpart of Decode. A strict
// decoder fails with every problem Check would report.
func (d *Decoder) DecodeDocument() (*Document, error) {
	raw, err := readDocument(d.r)
	if err != nil {
		return nil, err
	}

	palette, err := paletteOf(raw, d.paletteKey)
	if err != nil {
		return nil, err
	}
	d.palette = d.base.Merge(palette)

	doc := NewDocument(d.palette, make(map[string]style.Proxy))
	doc.paletteKey = d.paletteKey
	delete(raw, d.paletteKey)

	if err := doc.collect(raw, ""); err != nil {
		return nil, err
	}
	if d.strict {
		if errs := doc.Check(); len(errs) > 0 {
			return nil, errors.Join(errs...)
		}
	}
	return doc, nil
}

func (doc *Document) collect(table map[string]any, prefix string) error {
	if prefix != "" {
		switch {
		case isStyleTable(table):
			var proxy style.Proxy
			if err := decodePlain(reflect.ValueOf(&proxy).Elem(), table); err != nil {
				return fieldErr(prefix, err)
			}
			doc.Styles[prefix] = proxy
			doc.unknown[prefix] = unknownKeys(table)
		case isMisspeltStyle(table):
			// every key is a typo, so there is no style to resolve
			doc.unknown[prefix] = unknownKeys(table)
		}
	}

	for _, key := range lo.Keys(table) {
		if sub, ok := table[key].(map[string]any); ok {
			if err := doc.collect(sub, join(prefix, key)); err != nil {
				return err
			}
		}
	}
	return nil
}

// leafKeys returns the keys of table that do not hold tables.
func leafKeys(table map[string]any) []string {
	return lo.Filter(lo.Keys(table), func(key string, _ int) bool {
		_, nested := table[key].(map[string]any)
		return !nested
	})
}

func unknownKeys(table map[string]any) []string {
	keys := lo.Reject(leafKeys(table), func(key string, _ int) bool {
		return lo.Contains(proxyKeys, key)
	})
	slices.Sort(keys)
	return keys
}

// isStyleTable reports whether a table carries at least one style attribute.
func isStyleTable(table map[string]any) bool {
	return lo.SomeBy(leafKeys(table), func(key string) bool {
		return lo.Contains(proxyKeys, key)
	})
}

// isMisspeltStyle reports whether a table without style attributes has a
// key close enough to one to be a typo of it. Other tables hold plain data.
func isMisspeltStyle(table map[string]any) bool {
	return lo.SomeBy(leafKeys(table), func(key string) bool {
		_, near := closestKey(key)
		return near
	})
}

// Names returns the style names in lexical order.
func (doc *Document) Names() []string {
	names := lo.Keys(doc.Styles)
	slices.Sort(names)
	return names
}

// Style resolves the named style. Colors that do not resolve are errors.
func (doc *Document) Style(name string) (style.Style, error) {
	proxy, ok := doc.Styles[name]
	if !ok {
		return style.Style{}, fieldErr(name, ErrNoStyle)
	}
	s, err := proxy.Resolve(doc.Palette)
	if err != nil {
		return s, fieldErr(name, err)
	}
	return s, nil
}

// Check reports every problem of the document: palette entries that are
// not colors, style references that do not resolve and unknown keys in
// style tables.
func (doc *Document) Check() []error {
	var errs []error

	names := lo.Keys(doc.Palette)
	slices.Sort(names)
	for _, name := range names {
		if _, err := color.Parse(doc.Palette[name]); err != nil {
			errs = append(errs, &FieldError{
				Path: "colors." + name,
				Err:  &color.UnresolvedError{Name: name, Entry: doc.Palette[name]},
			})
		}
	}

	names = lo.Union(doc.Names(), lo.Keys(doc.unknown))
	slices.Sort(names)
	for _, name := range names {
		if _, ok := doc.Styles[name]; ok {
			if _, err := doc.Style(name); err != nil {
				errs = append(errs, err)
			}
		}
		for _, key := range doc.unknown[name] {
			errs = append(errs, &FieldError{Path: join(name, key), Err: unknownKey(key)})
		}
	}
	return errs
}

func unknownKey(key string) error {
	if closest, near := closestKey(key); near {
		return fmt.Errorf("unknown style key %q, did you mean %q?", key, closest)
	}
	return fmt.Errorf("unknown style key %q, supported: %s", key, strings.Join(proxyKeys, ", "))
}

// closestKey returns the style key nearest to key and whether it is near
// enough to suggest.
func closestKey(key string) (string, bool) {
	closest := lo.MinBy(proxyKeys, func(a, b string) bool {
		return levenshtein.Distance(key, a) < levenshtein.Distance(key, b)
	})
	return closest, levenshtein.Distance(key, closest) <= len(key)/2
}
