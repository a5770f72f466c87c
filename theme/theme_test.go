package theme

import (
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/tuitheme/tuitheme/color"
	"github.com/tuitheme/tuitheme/style"
)

const document = `
[colors]
red = "#d32f2f"
blue = "#1976d2"
primary = "blue"

[base]
foreground = "red"
background = "green"
bold = true

[title]
fg = "primary"
foreground = "red"
modifiers = ["italic", "underlined"]

[dialog]
info.foreground = "blue"
warn.fg = "yellow"
error.fg = "lightred"
error.italic = false

[footer]
label = "press q to quit"
`

type dialog struct {
	Info  style.Style
	Warn  style.Style
	Error style.Style
}

type footer struct {
	Label string
}

type testTheme struct {
	Base    style.Style    `theme:"style"`
	Title   lipgloss.Style `theme:"style"`
	Dialog  dialog         `theme:"styles"`
	Footer  footer
	Palette color.Palette `theme:"colors"`
	Ignored string        `theme:"-" toml:"footer"`
}

func TestUnmarshal(t *testing.T) {
	Convey("Given a theme document", t, func() {
		var th testTheme
		err := Unmarshal([]byte(document), &th)
		So(err, ShouldBeNil)

		Convey("Style sections should resolve palette names", func() {
			So(th.Base, ShouldResemble, style.New().Fg(color.RGB(0xd3, 0x2f, 0x2f)).Bg(color.Green).Bold())
		})

		Convey("fg should win over foreground", func() {
			So(th.Title.GetForeground(), ShouldResemble, lipgloss.TerminalColor(lipgloss.Color("4")))
			So(th.Title.GetItalic(), ShouldBeTrue)
			So(th.Title.GetUnderline(), ShouldBeTrue)
		})

		Convey("Groups should decode their nested tables", func() {
			So(th.Dialog.Info, ShouldResemble, style.New().Fg(color.RGB(0x19, 0x76, 0xd2)))
			So(th.Dialog.Warn, ShouldResemble, style.New().Fg(color.Yellow))
			So(th.Dialog.Error, ShouldResemble, style.New().Fg(color.LightRed).RemoveModifier(style.Italic))
		})

		Convey("Plain fields decode normally", func() {
			So(th.Footer.Label, ShouldEqual, "press q to quit")
			So(th.Ignored, ShouldBeEmpty)
		})

		Convey("The palette should be exposed", func() {
			So(th.Palette, ShouldResemble, color.Palette{"red": "#d32f2f", "blue": "#1976d2", "primary": "blue"})
		})
	})

	Convey("Given a restricted group", t, func() {
		var th struct {
			Dialog dialog `theme:"styles(info)"`
		}
		So(Unmarshal([]byte(document), &th), ShouldBeNil)
		So(th.Dialog.Info.Foreground, ShouldResemble, color.RGB(0x19, 0x76, 0xd2))
		So(th.Dialog.Warn.IsZero(), ShouldBeTrue)
	})

	Convey("Given missing sections", t, func() {
		var th testTheme
		So(Unmarshal([]byte(`[colors]`), &th), ShouldBeNil)
		So(th.Base.IsZero(), ShouldBeTrue)
		So(th.Palette, ShouldBeEmpty)
	})

	Convey("Given unresolvable colors", t, func() {
		data := []byte("[base]\nfg = \"nope\"\nbg = \"blue\"\n")

		Convey("Lenient decoding should drop them", func() {
			var th testTheme
			dec := NewDecoder(strings.NewReader(string(data)))
			So(dec.Decode(&th), ShouldBeNil)
			So(th.Base, ShouldResemble, style.New().Bg(color.Blue))
			So(dec.Warnings(), ShouldHaveLength, 1)
		})

		Convey("Strict decoding should fail with the field path", func() {
			var th testTheme
			err := Unmarshal(data, &th, WithStrict(true))
			var ferr *FieldError
			So(errors.As(err, &ferr), ShouldBeTrue)
			So(ferr.Path, ShouldEqual, "base")
			So(errors.Is(err, color.ErrInvalid), ShouldBeTrue)
		})
	})

	Convey("Given malformed input", t, func() {
		var th testTheme

		So(Unmarshal([]byte(document), th), ShouldEqual, ErrNotPointer)

		var n int
		So(Unmarshal([]byte(document), &n), ShouldEqual, ErrNotStruct)

		err := Unmarshal([]byte("base = \"red\""), &th)
		var ferr *FieldError
		So(errors.As(err, &ferr), ShouldBeTrue)
		So(ferr.Path, ShouldEqual, "base")

		err = Unmarshal([]byte("[colors]\nred = 1\n"), &th)
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "colors.red")

		err = Unmarshal([]byte("[base\n"), &th)
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "line 1")
	})

	Convey("Given a bad tag", t, func() {
		var th struct {
			Base style.Style `theme:"stlye"`
		}
		err := Unmarshal([]byte(document), &th)
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "supported: style, colors or styles(..)")
	})

	Convey("Given options", t, func() {
		var th testTheme
		data := []byte("[palette]\naccent = \"cyan\"\n[base]\nfg = \"accent\"\nbg = \"shade\"\n")
		err := Unmarshal(data, &th,
			WithPaletteKey("palette"),
			WithPalette(color.Palette{"shade": "#101010"}),
		)
		So(err, ShouldBeNil)
		So(th.Base, ShouldResemble, style.New().Fg(color.Cyan).Bg(color.RGB(16, 16, 16)))
	})
}

func TestStyleOf(t *testing.T) {
	type rawDialog struct {
		Info style.Proxy
		Warn style.Proxy
	}
	type raw struct {
		Base   style.Proxy       `theme:"style"`
		Dialog rawDialog         `theme:"styles"`
		Colors map[string]string `theme:"colors"`
	}

	Convey("Given a theme keeping raw proxies", t, func() {
		var th raw
		So(Unmarshal([]byte(document), &th), ShouldBeNil)
		So(*th.Base.Foreground, ShouldEqual, "red")

		Convey("StyleOf should resolve top level styles", func() {
			s, err := StyleOf(&th, "base")
			So(err, ShouldBeNil)
			So(s, ShouldResemble, style.New().Fg(color.RGB(0xd3, 0x2f, 0x2f)).Bg(color.Green).Bold())
		})

		Convey("StyleOf should resolve nested styles", func() {
			s, err := StyleOf(th, "dialog.info")
			So(err, ShouldBeNil)
			So(s.Foreground, ShouldResemble, color.RGB(0x19, 0x76, 0xd2))
		})

		Convey("StyleOf should fail on invalid colors", func() {
			th.Base.Foreground = lo.ToPtr("nope")
			_, err := StyleOf(&th, "base")
			So(errors.Is(err, color.ErrInvalid), ShouldBeTrue)
		})

		Convey("StyleOf should not replace an invalid palette entry with a color name", func() {
			th.Colors["red"] = "#12"
			_, err := StyleOf(&th, "base")
			var uerr *color.UnresolvedError
			So(errors.As(err, &uerr), ShouldBeTrue)
			So(uerr.Entry, ShouldEqual, "#12")
		})

		Convey("StyleOf should fail on unknown paths", func() {
			_, err := StyleOf(&th, "dialog.missing")
			So(errors.Is(err, ErrNoStyle), ShouldBeTrue)
			_, err = StyleOf(&th, "colors")
			So(errors.Is(err, ErrNoStyle), ShouldBeTrue)
		})
	})
}

func TestDocument(t *testing.T) {
	Convey("Given a parsed document", t, func() {
		doc, err := ParseDocument([]byte(document))
		So(err, ShouldBeNil)

		Convey("It should list style tables by dotted name", func() {
			So(doc.Names(), ShouldResemble, []string{"base", "dialog.error", "dialog.info", "dialog.warn", "title"})
		})

		Convey("It should resolve styles", func() {
			s, err := doc.Style("dialog.warn")
			So(err, ShouldBeNil)
			So(s, ShouldResemble, style.New().Fg(color.Yellow))

			_, err = doc.Style("footer")
			So(errors.Is(err, ErrNoStyle), ShouldBeTrue)
		})

		Convey("A valid document should check clean", func() {
			So(doc.Check(), ShouldBeEmpty)
		})
	})

	Convey("Given a document with mistakes", t, func() {
		doc, err := ParseDocument([]byte(`
[colors]
bad = "#12"
accent = "cyan"

[base]
forground = "accent"
fg = "acent"
`))
		So(err, ShouldBeNil)

		errs := doc.Check()
		So(errs, ShouldHaveLength, 3)
		So(errs[0].Error(), ShouldContainSubstring, "colors.bad")
		So(errs[1].Error(), ShouldContainSubstring, `did you mean "accent"?`)
		So(errs[2].Error(), ShouldContainSubstring, `did you mean "foreground"?`)

		Convey("Tables holding only misspelt keys are checked too", func() {
			doc, err := ParseDocument([]byte("[title]\nforegound = \"red\"\n\n[base]\nfg = \"red\"\nbackgroud = \"blue\"\n\n[footer]\nlabel = \"quit\"\n"))
			So(err, ShouldBeNil)
			So(doc.Names(), ShouldResemble, []string{"base"})

			errs := doc.Check()
			So(errs, ShouldHaveLength, 2)
			So(errs[0].Error(), ShouldContainSubstring, "base.backgroud")
			So(errs[0].Error(), ShouldContainSubstring, `did you mean "background"?`)
			So(errs[1].Error(), ShouldContainSubstring, "title.foregound")
			So(errs[1].Error(), ShouldContainSubstring, `did you mean "foreground"?`)
		})

		Convey("A strict decoder fails with the same problems", func() {
			_, err := ParseDocument([]byte("[base]\nfg = \"acent\"\n"), WithStrict(true))
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "acent")
		})
	})
}
