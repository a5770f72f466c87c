package cmd

import (
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/tuitheme/tuitheme/filesystem"
	"github.com/tuitheme/tuitheme/history"
	"github.com/tuitheme/tuitheme/key"
)

func TestThemePath(t *testing.T) {
	Convey("Given a themes directory", t, func() {
		filesystem.SetMemMapFs()
		t.Setenv("TUITHEME_CONFIG_PATH", "/cfg")
		dark := filepath.Join("/cfg", "themes", "dark.toml")
		So(filesystem.WriteFile(dark, []byte("[base]\nfg = \"red\"\n")), ShouldBeNil)
		So(filesystem.WriteFile("local.toml", nil), ShouldBeNil)

		Convey("Bare names are looked up in it", func() {
			path, err := lookupTheme("dark")
			So(err, ShouldBeNil)
			So(path, ShouldEqual, dark)
		})

		Convey("Existing files win", func() {
			path, err := lookupTheme("local.toml")
			So(err, ShouldBeNil)
			So(path, ShouldEqual, "local.toml")
		})

		Convey("Paths are not searched", func() {
			path, err := lookupTheme(filepath.Join("sub", "dark"))
			So(err, ShouldBeNil)
			So(path, ShouldEqual, filepath.Join("sub", "dark"))
		})

		Convey("theme.path is used without arguments", func() {
			viper.Set(key.ThemePath, "dark")
			defer viper.Set(key.ThemePath, "")

			path, err := themePath(nil)
			So(err, ShouldBeNil)
			So(path, ShouldEqual, dark)
		})

		Convey("Otherwise the last opened document is used", func() {
			viper.Set(key.ThemePath, "")
			So(history.Clear(), ShouldBeNil)

			_, err := themePath(nil)
			So(err, ShouldEqual, errNoTheme)

			So(history.Save(dark, 1, 0), ShouldBeNil)
			path, err := themePath(nil)
			So(err, ShouldBeNil)
			So(path, ShouldEqual, dark)
		})
	})
}
