package tui

import (
	"slices"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
	"github.com/tuitheme/tuitheme/color"
	"github.com/tuitheme/tuitheme/filesystem"
	"github.com/tuitheme/tuitheme/history"
	"github.com/tuitheme/tuitheme/log"
	"github.com/tuitheme/tuitheme/theme"
)

type documentLoadedMsg struct {
	document *theme.Document
}

func (b *statefulBubble) loadDocument() tea.Cmd {
	path, opts := b.options.Path, b.options.Decode
	return func() tea.Msg {
		data, err := filesystem.API().ReadFile(path)
		if err != nil {
			return err
		}

		doc, err := theme.ParseDocument(data, opts...)
		if err != nil {
			return err
		}

		if err := history.Save(path, len(doc.Styles), len(doc.Palette)); err != nil {
			log.Warnf("could not record %s: %v", path, err)
		}
		return documentLoadedMsg{document: doc}
	}
}

func (b *statefulBubble) startLoading() tea.Cmd {
	return b.spinnerC.Tick
}

// setDocument refreshes both lists from doc.
func (b *statefulBubble) setDocument(doc *theme.Document) tea.Cmd {
	b.document = doc
	b.problems = len(doc.Check())

	styles := lo.Map(doc.Names(), func(name string, _ int) list.Item {
		s, err := doc.Style(name)
		return &listItem{
			internal: &styleEntry{name: name, proxy: doc.Styles[name], style: s, err: err},
			sample:   b.options.Sample,
		}
	})

	names := lo.Keys(doc.Palette)
	slices.Sort(names)
	colors := lo.Map(names, func(name string, _ int) list.Item {
		value := doc.Palette[name]
		c, err := color.Parse(value)
		return &listItem{internal: &colorEntry{name: name, value: value, color: c, err: err}}
	})

	return tea.Batch(b.stylesC.SetItems(styles), b.paletteC.SetItems(colors))
}
