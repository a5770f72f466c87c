package tui

import (
	"fmt"

	"github.com/tuitheme/tuitheme/color"
	"github.com/tuitheme/tuitheme/icon"
	"github.com/tuitheme/tuitheme/style"
)

// styleEntry is one style table of the document.
type styleEntry struct {
	name  string
	proxy style.Proxy
	style style.Style
	err   error
}

// colorEntry is one palette entry.
type colorEntry struct {
	name  string
	value string
	color color.Color
	err   error
}

// listItem implements list.Item for styles and palette entries.
type listItem struct {
	internal any
	sample   string
}

// Title renders the entry in its own style.
func (t *listItem) Title() string {
	switch e := t.internal.(type) {
	case *styleEntry:
		title := e.style.Render(e.name)
		if e.err != nil {
			title = fmt.Sprintf("%s %s", title, style.Fg(color.Red)(icon.Get(icon.Fail)))
		}
		return title
	case *colorEntry:
		if e.err != nil {
			return fmt.Sprintf("%s %s", e.name, style.Fg(color.Red)(icon.Get(icon.Fail)))
		}
		return fmt.Sprintf("%s %s", style.Bg(e.color)("    "), e.name)
	default:
		return t.FilterValue()
	}
}

// Description summarises the entry.
func (t *listItem) Description() string {
	switch e := t.internal.(type) {
	case *styleEntry:
		if e.err != nil {
			return style.Fg(color.Red)(e.err.Error())
		}
		if t.sample != "" {
			return e.style.Render(t.sample) + " " + style.Faint(e.style.String())
		}
		return style.Faint(e.style.String())
	case *colorEntry:
		if e.err != nil {
			return style.Fg(color.Red)(e.err.Error())
		}
		if e.value == e.color.String() {
			return style.Faint(e.value)
		}
		return style.Faint(fmt.Sprintf("%s → %s", e.value, e.color))
	default:
		return ""
	}
}

// FilterValue returns the string used for list filtering.
func (t *listItem) FilterValue() string {
	switch e := t.internal.(type) {
	case *styleEntry:
		return e.name
	case *colorEntry:
		return e.name + " " + e.value
	default:
		return ""
	}
}
