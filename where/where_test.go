package where

import (
	"path/filepath"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/tuitheme/tuitheme/filesystem"
)

func init() {
	// Use in-memory filesystem for tests to avoid creating real directories
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config()", func() {
			path := Config()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Config() honours the override variable", func() {
			t.Setenv(EnvConfigPath, "/tmp/tuitheme-test")
			So(Config(), ShouldEqual, "/tmp/tuitheme-test")
		})

		Convey("Logs() and Themes() live under Config()", func() {
			So(filepath.Dir(Logs()), ShouldEqual, Config())
			So(filepath.Dir(Themes()), ShouldEqual, Config())
			So(lo.Must(filesystem.API().IsDir(Themes())), ShouldBeTrue)
		})

		Convey("Recent() is a file in Cache()", func() {
			So(filepath.Dir(Recent()), ShouldEqual, Cache())
		})
	})
}
