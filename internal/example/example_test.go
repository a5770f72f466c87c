package example

import (
	"errors"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/tuitheme/tuitheme/builder"
	"github.com/tuitheme/tuitheme/color"
	"github.com/tuitheme/tuitheme/style"
	"github.com/tuitheme/tuitheme/theme"
)

const document = `
[colors]
accent = "#1976d2"
danger = "#d32f2f"
broken = "#12"

[base]
fg = "accent"
bold = true

[title]
foreground = "danger"
modifiers = ["italic"]

[cursor]
bg = "accent"
reversed = true

[raw_link]
fg = "accent"
underlined = true

[dialog]
info.fg = "cyan"
warn.fg = "danger"
button.focused.bg = "accent"
button.unfocused.fg = "yellow"

[status]
left.fg = "accent"
right.bg = "danger"
hidden.fg = "accent"

[footer]
label = "press q to quit"
width = 80
`

var (
	accent = color.RGB(0x19, 0x76, 0xd2)
	danger = color.RGB(0xd3, 0x2f, 0x2f)
)

// decodeBoth reads doc with the generated decoder and with theme.Unmarshal.
func decodeBoth(doc string) (generated, reflected Theme) {
	So(generated.UnmarshalTheme([]byte(doc)), ShouldBeNil)
	So(theme.Unmarshal([]byte(doc), &reflected), ShouldBeNil)
	return generated, reflected
}

func TestUnmarshalTheme(t *testing.T) {
	Convey("Given a complete document", t, func() {
		generated, reflected := decodeBoth(document)

		Convey("The generated decoder should agree with theme.Unmarshal", func() {
			So(generated, ShouldResemble, reflected)
		})

		Convey("Styles should be resolved against the palette", func() {
			So(generated.Base, ShouldResemble, style.New().Fg(accent).Bold())
			So(generated.Title, ShouldResemble, style.New().Fg(danger).Italic().Lipgloss())
			So(*generated.Cursor, ShouldResemble, style.New().Bg(accent).Reversed())
			So(generated.Dialog.Info, ShouldResemble, style.New().Fg(color.Cyan))
			So(*generated.Dialog.Button.Focused, ShouldResemble, style.New().Bg(accent))
			So(generated.Dialog.Button.Unfocused, ShouldResemble, style.New().Fg(color.Yellow).Lipgloss())
			So(generated.Status.Left, ShouldResemble, style.New().Fg(accent))
		})

		Convey("Proxies should keep the document form", func() {
			So(*generated.Link.Fg, ShouldEqual, "accent")
			So(*generated.Dialog.Warn.Fg, ShouldEqual, "danger")
			So(*generated.Status.Right.Bg, ShouldEqual, "danger")
		})

		Convey("Only listed styles of a group should be read", func() {
			So(generated.Status.Hidden, ShouldBeZeroValue)
		})

		Convey("Plain sections and the palette should be copied", func() {
			So(generated.Footer, ShouldResemble, Footer{Label: "press q to quit", Width: 80})
			So(generated.Colors, ShouldResemble, color.Palette{"accent": "#1976d2", "danger": "#d32f2f", "broken": "#12"})
		})
	})

	Convey("Given a document without optional sections", t, func() {
		generated, reflected := decodeBoth("[base]\nfg = \"red\"\n")

		So(generated, ShouldResemble, reflected)
		So(generated.Dialog, ShouldBeNil)
		So(generated.Cursor, ShouldBeNil)
		So(generated.Colors, ShouldBeEmpty)
	})

	Convey("Given unresolvable references", t, func() {
		generated, reflected := decodeBoth("[colors]\nbroken = \"#12\"\n\n[base]\nfg = \"broken\"\nbold = true\n\n[title]\nbg = \"nope\"\n")

		Convey("Both decoders should drop them and keep the rest", func() {
			So(generated, ShouldResemble, reflected)
			So(generated.Base, ShouldResemble, style.New().Bold())
		})
	})

	Convey("Given a document that is not TOML", t, func() {
		var th Theme
		So(th.UnmarshalTheme([]byte("[base")), ShouldNotBeNil)
	})
}

func TestAccessors(t *testing.T) {
	Convey("Given a decoded theme", t, func() {
		th, _ := decodeBoth(document)

		Convey("Accessors should match theme.StyleOf", func() {
			for path, got := range map[string]lipgloss.Style{
				"base":                  th.BaseStyle(),
				"cursor":                th.CursorStyle(),
				"raw_link":              th.LinkStyle(),
				"dialog.info":           th.DialogInfoStyle(),
				"dialog.warn":           th.DialogWarnStyle(),
				"dialog.button.focused": th.DialogButtonFocusedStyle(),
				"status.left":           th.StatusLeftStyle(),
				"status.right":          th.StatusRightStyle(),
			} {
				want, err := theme.StyleOf(&th, path)
				So(err, ShouldBeNil)
				So(got, ShouldResemble, want.Lipgloss())
			}
		})

		Convey("lipgloss fields should be returned as they are", func() {
			So(th.TitleStyle(), ShouldResemble, th.Title)
			So(th.DialogButtonUnfocusedStyle(), ShouldResemble, th.Dialog.Button.Unfocused)
		})

		Convey("A valid theme should validate", func() {
			So(th.ValidateTheme(), ShouldBeNil)
		})

		Convey("A proxy naming an invalid palette entry should fail both ways", func() {
			th.Link.Fg = lo.ToPtr("broken")

			_, err := theme.StyleOf(&th, "raw_link")
			So(errors.Is(err, color.ErrInvalid), ShouldBeTrue)
			So(func() { th.LinkStyle() }, ShouldPanic)

			err = th.ValidateTheme()
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, `raw_link: fg: palette entry "broken" has invalid value "#12"`)
			So(errors.Is(err, color.ErrInvalid), ShouldBeTrue)
		})
	})

	Convey("Given a theme without its pointer sections", t, func() {
		var th Theme

		So(th.CursorStyle(), ShouldResemble, lipgloss.NewStyle())
		So(th.DialogInfoStyle(), ShouldResemble, lipgloss.NewStyle())
		So(th.DialogWarnStyle(), ShouldResemble, lipgloss.NewStyle())
		So(th.DialogButtonFocusedStyle(), ShouldResemble, lipgloss.NewStyle())
		So(th.ValidateTheme(), ShouldBeNil)
	})
}

func TestBuild(t *testing.T) {
	Convey("Given a context", t, func() {
		ctx := &Colors{Primary: color.Black, Muted: lipgloss.Color("#808080"), Width: 42}

		var generated Widgets
		generated.Build(ctx)
		reflected, err := builder.Build[Widgets](ctx)
		So(err, ShouldBeNil)

		Convey("The generated builder should agree with builder.Build", func() {
			So(generated, ShouldResemble, reflected)
		})

		Convey("Fields should be built from the context", func() {
			muted := color.Of(ctx.Muted)
			So(generated.Frame, ShouldResemble, style.New().Fg(color.Black).Bg(muted).Bold())
			So(generated.Label, ShouldResemble, style.New().Fg(color.Black).Italic().Lipgloss())
			So(generated.Accent, ShouldResemble, color.Black)
			So(generated.Width, ShouldEqual, 42)
			So(*generated.Menu.Item, ShouldResemble, style.New().Fg(muted).Underlined())
			So(generated.Menu.Selected, ShouldResemble, style.New().Reversed())
			So(generated.Popup, ShouldNotBeNil)
			So(generated.Popup.Border, ShouldResemble, style.New().Bg(color.Black))
			So(generated.Note, ShouldBeEmpty)
		})

		Convey("A self-referencing pointer should stay nil", func() {
			So(generated.Tree.Style, ShouldResemble, style.New().Fg(color.Black))
			So(generated.Tree.Next, ShouldBeNil)
		})

		Convey("Every field should be overwritten", func() {
			stale := Widgets{Note: "stale", Tree: Node{Next: &Node{}}}
			stale.Build(ctx)
			So(stale, ShouldResemble, reflected)
		})
	})
}
