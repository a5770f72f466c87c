package tag

import (
	"errors"
	"reflect"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/tuitheme/tuitheme/style"
)

func TestParseTheme(t *testing.T) {
	Convey("ParseTheme", t, func() {
		cases := map[string]Kind{
			"":       Plain,
			"style":  Style,
			"colors": Colors,
			"styles": Styles,
			"-":      Skip,
		}
		for in, want := range cases {
			got, err := ParseTheme(in)
			So(err, ShouldBeNil)
			So(got.Kind, ShouldEqual, want)
		}

		Convey("styles(..) lists sub-fields", func() {
			got, err := ParseTheme("styles(info, warn)")
			So(err, ShouldBeNil)
			So(got.Kind, ShouldEqual, Styles)
			So(got.Only, ShouldResemble, []string{"info", "warn"})
			So(got.Includes("Info", "info"), ShouldBeTrue)
			So(got.Includes("Error", "error"), ShouldBeFalse)
		})

		Convey("Unknown metadata is rejected", func() {
			_, err := ParseTheme("palette")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "supported: style, colors or styles(..)")

			var terr *Error
			So(errors.As(err, &terr), ShouldBeTrue)
			So(terr.Tag, ShouldEqual, ThemeName)
		})

		Convey("Malformed groups are rejected", func() {
			_, err := ParseTheme("styles(info")
			So(err, ShouldNotBeNil)
			_, err = ParseTheme("styles(in-fo)")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestParseStyle(t *testing.T) {
	Convey("ParseStyle", t, func() {
		Convey("Accepts assignments and modifiers", func() {
			spec, err := ParseStyle("fg=colors.primary, bg=primary, bold, underlined")
			So(err, ShouldBeNil)
			So(spec.Fg, ShouldResemble, Path{"colors", "primary"})
			So(spec.Bg, ShouldResemble, Path{"primary"})
			So(spec.Modifiers, ShouldEqual, style.Bold|style.Underlined)
		})

		Convey("Accepts long names and call forms", func() {
			spec, err := ParseStyle(`foreground(primary),background("accent"),crossed_out`)
			So(err, ShouldBeNil)
			So(spec.Fg.String(), ShouldEqual, "primary")
			So(spec.Bg.String(), ShouldEqual, "accent")
			So(spec.Modifiers, ShouldEqual, style.CrossedOut)
		})

		Convey("Accepts every modifier", func() {
			spec, err := ParseStyle("bold,dim,italic,underlined,slow_blink,rapid_blink,reversed,hidden,crossed_out")
			So(err, ShouldBeNil)
			So(spec.Modifiers.Names(), ShouldResemble, style.ModifierNames())
		})

		Convey("Rejects malformed items", func() {
			for _, in := range []string{"fg", "fg=", "fg=a..b", "bold=true", "sparkle", `fg("x`, "fg(x"} {
				_, err := ParseStyle(in)
				So(err, ShouldNotBeNil)
			}
		})
	})
}

func TestParseBuilder(t *testing.T) {
	Convey("ParseBuilder", t, func() {
		b, err := ParseBuilder("value=footer.hide")
		So(err, ShouldBeNil)
		So(b.Kind, ShouldEqual, Value)
		So(b.Path, ShouldResemble, Path{"footer", "hide"})

		b, err = ParseBuilder("value=default")
		So(err, ShouldBeNil)
		So(b.Kind, ShouldEqual, Default)

		b, err = ParseBuilder("child")
		So(err, ShouldBeNil)
		So(b.Kind, ShouldEqual, Child)

		b, err = ParseBuilder("")
		So(err, ShouldBeNil)
		So(b.Kind, ShouldEqual, Untagged)

		_, err = ParseBuilder("value")
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "missing value")

		_, err = ParseBuilder("context=Colors")
		So(err, ShouldNotBeNil)
	})

	Convey("ParseContext", t, func() {
		name, err := ParseContext("context=Config")
		So(err, ShouldBeNil)
		So(name, ShouldEqual, "Config")

		name, err = ParseContext("context=config.Config")
		So(err, ShouldBeNil)
		So(name, ShouldEqual, "config.Config")

		_, err = ParseContext("")
		So(errors.Is(err, ErrNoContext), ShouldBeTrue)

		_, err = ParseContext("context=")
		So(errors.Is(err, ErrNoContext), ShouldBeTrue)

		_, err = ParseContext("colors=Colors")
		So(err, ShouldNotBeNil)
	})
}

func TestKey(t *testing.T) {
	Convey("Key", t, func() {
		type sample struct {
			SubTheme string
			Tagged   string `toml:"renamed,omitempty"`
			Dashed   string `toml:"-"`
		}
		typ := reflect.TypeOf(sample{})

		So(Key(typ.Field(0)), ShouldEqual, "sub_theme")
		So(Key(typ.Field(1)), ShouldEqual, "renamed")
		So(Key(typ.Field(2)), ShouldEqual, "dashed")
	})

	Convey("Matches", t, func() {
		So(Matches("sub_theme", "SubTheme", "sub_theme"), ShouldBeTrue)
		So(Matches("SubTheme", "SubTheme", "x"), ShouldBeTrue)
		So(Matches("subtheme", "SubTheme", "x"), ShouldBeTrue)
		So(Matches("other", "SubTheme", "sub_theme"), ShouldBeFalse)
	})

	Convey("ParsePath", t, func() {
		p, err := ParsePath("a.b_c.D1")
		So(err, ShouldBeNil)
		So(p, ShouldResemble, Path{"a", "b_c", "D1"})

		for _, in := range []string{"", ".", "a.", "1a", "a-b"} {
			_, err := ParsePath(in)
			So(err, ShouldNotBeNil)
		}
	})
}
