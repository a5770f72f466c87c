package theme

import (
	"encoding/json"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/tuitheme/tuitheme/style"
)

func TestEncode(t *testing.T) {
	Convey("Given the starter document", t, func() {
		doc := NewDocument(style.Mocha, style.MochaStyles)

		data, err := doc.Encode()
		So(err, ShouldBeNil)

		Convey("Dotted names become nested tables", func() {
			So(string(data), ShouldContainSubstring, "[dialog.info]")
			So(string(data), ShouldContainSubstring, "[colors]")
		})

		Convey("It parses back to the same styles", func() {
			parsed, err := ParseDocument(data)
			So(err, ShouldBeNil)
			So(parsed.Names(), ShouldResemble, doc.Names())
			So(parsed.Styles, ShouldResemble, doc.Styles)
			So(parsed.Palette, ShouldResemble, doc.Palette)
			So(parsed.Check(), ShouldBeEmpty)
		})
	})

	Convey("Removed modifiers are written as false", t, func() {
		off := false
		doc := NewDocument(nil, map[string]style.Proxy{"muted": {Fg: lo.ToPtr("gray"), Bold: &off}})

		data, err := doc.Encode()
		So(err, ShouldBeNil)
		So(string(data), ShouldContainSubstring, "bold = false")
	})
}

func TestSchema(t *testing.T) {
	Convey("The document schema", t, func() {
		data, err := json.Marshal(Schema(""))
		So(err, ShouldBeNil)

		body := string(data)
		So(body, ShouldContainSubstring, `"colors"`)
		So(body, ShouldContainSubstring, `"$defs"`)
		So(body, ShouldContainSubstring, `"slow_blink"`)
		So(body, ShouldContainSubstring, `"#/$defs/section"`)

		Convey("Honors a custom palette key", func() {
			data, err := json.Marshal(Schema("palette"))
			So(err, ShouldBeNil)
			So(string(data), ShouldContainSubstring, `"palette"`)
		})
	})
}
