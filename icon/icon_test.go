package icon

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/tuitheme/tuitheme/key"
)

func TestGet(t *testing.T) {
	Convey("Given every registered icon", t, func() {
		all := []Icon{Fail, Success, Warn, Info, Mark, Palette, Style, File}

		Convey("It renders for each variant", func() {
			for _, variant := range AvailableVariants() {
				viper.Set(key.IconsVariant, variant)
				for _, i := range all {
					So(Get(i), ShouldNotBeEmpty)
				}
			}
		})

		Convey("Plain icons are ASCII", func() {
			viper.Set(key.IconsVariant, "plain")
			So(Get(Fail), ShouldEqual, "x")
			So(Get(Success), ShouldEqual, "ok")
		})

		Convey("It returns empty for an unknown variant", func() {
			viper.Set(key.IconsVariant, "")
			So(Get(Fail), ShouldBeEmpty)
		})
	})
}
