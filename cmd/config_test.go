package cmd

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/tuitheme/tuitheme/key"
)

func TestParseValue(t *testing.T) {
	Convey("Given raw setting values", t, func() {
		Convey("Booleans are parsed", func() {
			v, err := parseValue(key.ThemeStrict, []string{"true"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, true)
		})

		Convey("Strings are kept", func() {
			v, err := parseValue(key.GenSuffix, []string{"_styles.go"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "_styles.go")
		})

		Convey("A bad boolean names the key", func() {
			_, err := parseValue(key.ThemeStrict, []string{"maybe"})
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, key.ThemeStrict)
		})

		Convey("Unknown icon variants are rejected", func() {
			_, err := parseValue(key.IconsVariant, []string{"ascii-art"})
			So(err, ShouldNotBeNil)

			v, err := parseValue(key.IconsVariant, []string{"nerd"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "nerd")
		})

		Convey("Log levels are checked", func() {
			_, err := parseValue(key.LogsLevel, []string{"loud"})
			So(err, ShouldNotBeNil)
		})

		Convey("A value is required", func() {
			_, err := parseValue(key.GenSuffix, nil)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestClosestKey(t *testing.T) {
	Convey("Typos suggest the nearest setting", t, func() {
		So(closestKey("theme.strikt"), ShouldEqual, key.ThemeStrict)
		So(closestKey("gen.sufix"), ShouldEqual, key.GenSuffix)
	})
}
