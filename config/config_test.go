package config

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/tuitheme/tuitheme/filesystem"
	"github.com/tuitheme/tuitheme/key"
	"github.com/tuitheme/tuitheme/where"
)

func TestSetup(t *testing.T) {
	Convey("Given an in-memory filesystem", t, func() {
		filesystem.SetMemMapFs()
		t.Setenv(where.EnvConfigPath, "/config")

		Convey("Setup succeeds without a config file", func() {
			So(Setup(), ShouldBeNil)

			Convey("And every default is registered", func() {
				for name := range Default {
					So(viper.IsSet(name), ShouldBeTrue)
				}
				So(viper.GetString(key.ThemePaletteKey), ShouldEqual, "colors")
				So(viper.GetString(key.GenSuffix), ShouldEqual, "_theme_gen.go")
			})
		})

		Convey("Setup reads tuitheme.toml from the config directory", func() {
			So(filesystem.API().WriteFile("/config/tuitheme.toml", []byte("[theme]\nstrict = true\n"), 0o644), ShouldBeNil)
			So(Setup(), ShouldBeNil)
			So(viper.GetBool(key.ThemeStrict), ShouldBeTrue)
			viper.Set(key.ThemeStrict, false)
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given a registered field", t, func() {
		field := Default[key.ThemeStrict]

		Convey("Its env name carries the application prefix", func() {
			So(field.Env(), ShouldEqual, "TUITHEME_THEME_STRICT")
		})

		Convey("Its section is the first key segment", func() {
			So(field.Section(), ShouldEqual, "theme")
		})

		Convey("Its type is reported", func() {
			So(field.typeName(), ShouldEqual, "bool")
		})

		Convey("It renders a description", func() {
			So(field.Pretty(), ShouldContainSubstring, "theme.strict")
		})
	})

	Convey("EnvKeyReplacer converts dots to underscores", t, func() {
		So(EnvKeyReplacer.Replace("theme.palette_key"), ShouldEqual, "theme_palette_key")
	})
}
