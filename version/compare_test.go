package version

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCompare(t *testing.T) {
	Convey("Given two versions", t, func() {
		cases := []struct {
			a, b string
			want int
		}{
			{"0.3.0", "0.3.0", 0},
			{"v1.0.0", "0.9.9", 1},
			{"0.2.10", "0.3.0", -1},
			{"0.3.1", "v0.3.0", 1},
		}

		for _, c := range cases {
			Convey(c.a+" against "+c.b, func() {
				got, err := Compare(c.a, c.b)
				So(err, ShouldBeNil)
				So(got, ShouldEqual, c.want)
			})
		}

		Convey("Malformed versions are errors", func() {
			_, err := Compare("dev", "0.3.0")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, `"dev"`)
		})
	})
}
