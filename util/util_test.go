package util

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/tuitheme/tuitheme/filesystem"
)

func TestThemeFilename(t *testing.T) {
	Convey("Given theme names", t, func() {
		Convey("Unsafe runs become one underscore", func() {
			So(ThemeFilename("My Theme: Dark?"), ShouldEqual, "my_theme_dark")
		})
		Convey("A .toml extension is dropped", func() {
			So(ThemeFilename("mocha.toml"), ShouldEqual, "mocha")
		})
		Convey("Edge separators are trimmed", func() {
			So(ThemeFilename("-night-owl-"), ShouldEqual, "night-owl")
		})
		Convey("Nothing usable gives an empty name", func() {
			So(ThemeFilename("???"), ShouldBeEmpty)
		})
	})
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "file", "files"), ShouldEqual, "1 file")
		So(Quantify(2, "file", "files"), ShouldEqual, "2 files")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("hello"), ShouldEqual, "Hello")
		So(Capitalize(""), ShouldEqual, "")
		So(Capitalize("ébauche"), ShouldEqual, "Ébauche")
	})
}

func TestFileStem(t *testing.T) {
	Convey("FileStem", t, func() {
		So(FileStem("path/to/file.txt"), ShouldEqual, "file")
		So(FileStem("file"), ShouldEqual, "file")
	})
}

func TestClamp(t *testing.T) {
	Convey("Clamp", t, func() {
		So(Clamp(5, 20, 100), ShouldEqual, 20)
		So(Clamp(50, 20, 100), ShouldEqual, 50)
		So(Clamp(500, 20, 100), ShouldEqual, 100)
		So(Clamp(500, 20, 10), ShouldEqual, 500)
	})
}

func TestStack(t *testing.T) {
	Convey("Stack", t, func() {
		var s Stack[int]
		s.Push(1)
		s.Push(2)
		So(s.Len(), ShouldEqual, 2)
		So(s.Peek(), ShouldEqual, 2)
		item := s.Pop()
		So(item, ShouldEqual, 2)
		item = s.Pop()
		So(item, ShouldEqual, 1)
		item = s.Pop()
		So(item, ShouldEqual, 0)
	})
}

func TestDelete(t *testing.T) {
	Convey("Delete", t, func() {
		filesystem.SetMemMapFs()
		fs := filesystem.API()
		So(fs.MkdirAll("themes/old", 0o755), ShouldBeNil)
		So(fs.WriteFile("themes/old/a.toml", []byte("[base]"), 0o644), ShouldBeNil)
		So(fs.WriteFile("single.toml", nil, 0o644), ShouldBeNil)

		So(Delete("themes"), ShouldBeNil)
		So(Delete("single.toml"), ShouldBeNil)

		exists, _ := fs.Exists("themes/old/a.toml")
		So(exists, ShouldBeFalse)
		exists, _ = fs.Exists("single.toml")
		So(exists, ShouldBeFalse)

		So(Delete("missing"), ShouldNotBeNil)
	})
}
