package tui

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/tuitheme/tuitheme/color"
	"github.com/tuitheme/tuitheme/style"
)

func TestListItem(t *testing.T) {
	Convey("Given a style entry", t, func() {
		s := style.New().Fg(color.Red).Bold()
		item := &listItem{internal: &styleEntry{name: "dialog.error", style: s}}

		Convey("It is filtered by name", func() {
			So(item.FilterValue(), ShouldEqual, "dialog.error")
		})

		Convey("It is described by its attributes", func() {
			So(item.Title(), ShouldContainSubstring, "dialog.error")
			So(item.Description(), ShouldContainSubstring, "bold")
		})

		Convey("The sample is shown when set", func() {
			item.sample = "lorem"
			So(item.Description(), ShouldContainSubstring, "lorem")
		})

		Convey("Errors replace the description", func() {
			item.internal.(*styleEntry).err = errors.New("fg: unknown color")
			So(item.Description(), ShouldContainSubstring, "unknown color")
		})
	})

	Convey("Given a palette entry", t, func() {
		item := &listItem{internal: &colorEntry{name: "accent", value: "cyan", color: color.Cyan}}

		Convey("It is filtered by name and value", func() {
			So(item.FilterValue(), ShouldEqual, "accent cyan")
		})

		Convey("Its title carries the name", func() {
			So(item.Title(), ShouldContainSubstring, "accent")
		})
	})
}

func TestKeymap(t *testing.T) {
	Convey("Help follows the state", t, func() {
		k := newStatefulKeymap()

		k.setState(loadingState)
		So(k.ShortHelp(), ShouldHaveLength, 1)

		k.setState(stylesState)
		So(len(k.FullHelp()[0]), ShouldBeGreaterThan, len(k.ShortHelp()))

		k.setState(detailState)
		So(k.ShortHelp(), ShouldResemble, k.FullHelp()[0])
	})
}
