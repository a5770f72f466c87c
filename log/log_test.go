package log

import (
	"bytes"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/tuitheme/tuitheme/filesystem"
	"github.com/tuitheme/tuitheme/key"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Given logging is disabled", t, func() {
		viper.Set(key.LogsWrite, false)
		So(Setup(), ShouldBeNil)

		Convey("Emissions are discarded", func() {
			So(func() { Info("nothing") }, ShouldNotPanic)
		})
	})

	Convey("Given a writer", t, func() {
		var buf bytes.Buffer
		viper.Set(key.LogsLevel, "debug")
		viper.Set(key.LogsJson, false)
		SetupWriter(&buf)

		Convey("Debug messages are written", func() {
			Debugf("dropped color %q", "nope")
			So(buf.String(), ShouldContainSubstring, `dropped color`)
		})

		Convey("Structured fields are rendered", func() {
			With(Fields{"path": "base.fg"}).Warn("unresolved")
			So(buf.String(), ShouldContainSubstring, "path=base.fg")
		})
	})

	Convey("Given logging is enabled", t, func() {
		viper.Set(key.LogsWrite, true)
		defer viper.Set(key.LogsWrite, false)

		So(Setup(), ShouldBeNil)
	})
}
