package theme

import (
	"github.com/invopop/jsonschema"
	"github.com/tuitheme/tuitheme/color"
	"github.com/tuitheme/tuitheme/constant"
	"github.com/tuitheme/tuitheme/style"
)

const sectionDef = "section"

// Schema describes theme documents as JSON Schema, for editors that
// validate TOML against one. Every top-level table other than the palette
// is a style section, and sections may nest.
func Schema(paletteKey string) *jsonschema.Schema {
	if paletteKey == "" {
		paletteKey = constant.PaletteKey
	}

	reflector := &jsonschema.Reflector{DoNotReference: true}

	section := reflector.Reflect(&style.Proxy{})
	section.Version = ""
	section.ID = ""
	section.Description = "Style section. Nested tables are sections too."
	section.AdditionalProperties = &jsonschema.Schema{Ref: "#/$defs/" + sectionDef}

	palette := reflector.Reflect(color.Palette{})
	palette.Version = ""
	palette.ID = ""
	palette.Description = "Named colors referenced by style sections"

	root := &jsonschema.Schema{
		Version:              jsonschema.Version,
		Title:                constant.App + " theme",
		Type:                 "object",
		Properties:           jsonschema.NewProperties(),
		AdditionalProperties: &jsonschema.Schema{Ref: "#/$defs/" + sectionDef},
		Definitions:          jsonschema.Definitions{sectionDef: section},
	}
	root.Properties.Set(paletteKey, palette)
	return root
}
