package theme

import (
	"reflect"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/tuitheme/tuitheme/internal/tag"
	"github.com/tuitheme/tuitheme/style"
)

// Encode writes doc back as a theme document. Dotted style names become
// nested tables.
func (doc *Document) Encode() ([]byte, error) {
	root := make(map[string]any)
	if len(doc.Palette) > 0 {
		root[doc.paletteKey] = map[string]string(doc.Palette)
	}

	for _, name := range doc.Names() {
		table := root
		for _, segment := range strings.Split(name, ".") {
			sub, ok := table[segment].(map[string]any)
			if !ok {
				sub = make(map[string]any)
				table[segment] = sub
			}
			table = sub
		}
		for key, value := range proxyTable(doc.Styles[name]) {
			table[key] = value
		}
	}

	return toml.Marshal(root)
}

// proxyTable returns the attributes set in p, keyed as in a document.
func proxyTable(p style.Proxy) map[string]any {
	table := make(map[string]any)
	v := reflect.ValueOf(p)
	for i := 0; i < proxyType.NumField(); i++ {
		field := v.Field(i)
		if field.IsZero() {
			continue
		}
		if field.Kind() == reflect.Pointer {
			field = field.Elem()
		}
		table[tag.Key(proxyType.Field(i))] = field.Interface()
	}
	return table
}
