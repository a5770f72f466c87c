package style

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/tuitheme/tuitheme/color"
)

func TestStyle(t *testing.T) {
	Convey("Given the empty style", t, func() {
		s := New()
		So(s.IsZero(), ShouldBeTrue)
		So(s.String(), ShouldEqual, "default")

		Convey("Fg and Bg set colors", func() {
			s = s.Fg(color.Black).Bg(color.RGB(1, 2, 3))
			So(s.Foreground, ShouldResemble, color.Black)
			So(s.Background, ShouldResemble, color.RGB(1, 2, 3))
		})

		Convey("Unset colors leave the style untouched", func() {
			s = s.Fg(color.Red).Fg(color.Color{})
			So(s.Foreground, ShouldResemble, color.Red)
		})

		Convey("Modifier shortcuts accumulate", func() {
			s = s.Bold().Underlined()
			So(s.Add, ShouldEqual, Bold|Underlined)
			So(s.Sub, ShouldEqual, Modifier(0))
			So(s.String(), ShouldEqual, "bold underlined")
		})

		Convey("RemoveModifier cancels additions", func() {
			s = s.Bold().Italic().RemoveModifier(Bold)
			So(s.Add, ShouldEqual, Italic)
			So(s.Sub, ShouldEqual, Bold)
			So(s.String(), ShouldEqual, "italic -bold")
		})
	})

	Convey("Patch layers styles", t, func() {
		base := New().Fg(color.Red).Bg(color.Black).Bold()
		over := New().Fg(color.Blue).RemoveModifier(Bold).Italic()

		got := base.Patch(over)
		So(got.Foreground, ShouldResemble, color.Blue)
		So(got.Background, ShouldResemble, color.Black)
		So(got.Add, ShouldEqual, Italic)
		So(got.Sub, ShouldEqual, Bold)
	})

	Convey("Lipgloss conversion", t, func() {
		ls := New().Fg(color.Red).Bg(color.RGB(0, 0, 0)).Bold().Dim().Italic().Underlined().SlowBlink().Reversed().CrossedOut().Lipgloss()

		So(ls.GetForeground(), ShouldEqual, lipgloss.Color("1"))
		So(ls.GetBackground(), ShouldEqual, lipgloss.Color("#000000"))
		So(ls.GetBold(), ShouldBeTrue)
		So(ls.GetFaint(), ShouldBeTrue)
		So(ls.GetItalic(), ShouldBeTrue)
		So(ls.GetUnderline(), ShouldBeTrue)
		So(ls.GetBlink(), ShouldBeTrue)
		So(ls.GetReverse(), ShouldBeTrue)
		So(ls.GetStrikethrough(), ShouldBeTrue)

		plain := New().Lipgloss()
		So(plain.GetBold(), ShouldBeFalse)
		So(plain.GetForeground(), ShouldResemble, lipgloss.NoColor{})
	})

	Convey("Render blanks hidden text", t, func() {
		out := New().Hidden().Render("abc")
		So(out, ShouldEqual, "   ")
	})
}

func TestModifier(t *testing.T) {
	Convey("ParseModifier", t, func() {
		for i, name := range ModifierNames() {
			m, err := ParseModifier(name)
			So(err, ShouldBeNil)
			So(m, ShouldEqual, Modifiers()[i])
		}

		m, err := ParseModifier("Crossed-Out")
		So(err, ShouldBeNil)
		So(m, ShouldEqual, CrossedOut)

		_, err = ParseModifier("blinking")
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "supported: bold")
	})

	Convey("Has and String", t, func() {
		m := Bold | Hidden
		So(m.Has(Bold), ShouldBeTrue)
		So(m.Has(Bold|Dim), ShouldBeFalse)
		So(m.Has(0), ShouldBeFalse)
		So(m.String(), ShouldEqual, "bold|hidden")
		So(Modifier(0).String(), ShouldEqual, "none")
	})
}
