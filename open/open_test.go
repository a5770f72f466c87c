package open

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestEditor(t *testing.T) {
	Convey("Given editor variables", t, func() {
		t.Setenv("VISUAL", "")
		t.Setenv("EDITOR", "vim")

		Convey("EDITOR is used when VISUAL is empty", func() {
			So(Editor(), ShouldEqual, "vim")
		})

		Convey("VISUAL wins", func() {
			t.Setenv("VISUAL", " code --wait ")
			So(Editor(), ShouldEqual, "code --wait")
		})
	})
}

func TestCommandWith(t *testing.T) {
	Convey("Editor arguments are kept before the file", t, func() {
		cmd, ok := commandWith("theme.toml", "code --wait")
		if !ok {
			return
		}
		So(cmd.Args, ShouldResemble, []string{"code", "--wait", "theme.toml"})
	})
}

func TestCommand(t *testing.T) {
	Convey("The system opener gets the file as its only argument", t, func() {
		cmd, ok := command("theme.toml")
		if !ok {
			return
		}
		So(cmd.Args[len(cmd.Args)-1], ShouldEqual, "theme.toml")
	})
}
