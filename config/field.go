package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/tuitheme/tuitheme/color"
	"github.com/tuitheme/tuitheme/constant"
	"github.com/tuitheme/tuitheme/style"
)

// Field describes one setting. Value is its default and fixes its type.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Section is the table of the config file the field lives in.
func (f *Field) Section() string {
	section, _, _ := strings.Cut(f.Key, ".")
	return section
}

// Env is the environment variable overriding the field.
func (f *Field) Env() string {
	return strings.ToUpper(constant.App + "_" + EnvKeyReplacer.Replace(f.Key))
}

func (f *Field) typeName() string {
	if f.Value == nil {
		return "unknown"
	}
	return reflect.TypeOf(f.Value).String()
}

// Pretty renders the field for "tuitheme config info".
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Section     string `json:"section"`
		Env         string `json:"env"`
		Type        string `json:"type"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
	}{
		Key:         f.Key,
		Section:     f.Section(),
		Env:         f.Env(),
		Type:        f.typeName(),
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
	})
}

func highlight(v any) string {
	switch value := v.(type) {
	case bool:
		return style.Fg(lo.Ternary(value, color.Green, color.Red))(strconv.FormatBool(value))
	case string:
		if value == "" {
			return style.Faint(`""`)
		}
		return style.Fg(color.Yellow)(value)
	default:
		return fmt.Sprint(value)
	}
}

var prettyTemplate = lo.Must(template.New("field").Funcs(template.FuncMap{
	"faint":  style.Faint,
	"strong": style.Strong,
	"key":    style.Fg(color.Purple),
	"label":  style.Fg(color.Blue),
	"hl":     highlight,
	"value":  viper.Get,
	"typeof": func(f *Field) string { return f.typeName() },
}).Parse(`{{ strong .Key }} {{ faint (printf "[%s] %s" .Section (typeof .)) }}
{{ faint .Description }}
{{ label "env" }}     {{ .Env }}
{{ label "value" }}   {{ hl (value .Key) }}
{{ label "default" }} {{ hl .Value }}`))
