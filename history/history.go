// Package history remembers the theme documents recently checked or previewed.
package history

import (
	"path/filepath"
	"slices"
	"time"

	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/tuitheme/tuitheme/filesystem"
	"github.com/tuitheme/tuitheme/util"
	"github.com/tuitheme/tuitheme/where"
)

// Limit is the number of documents kept.
const Limit = 20

// Entry is one recently opened theme document.
type Entry struct {
	Path     string    `json:"path"`
	Styles   int       `json:"styles"`
	Colors   int       `json:"colors"`
	OpenedAt time.Time `json:"opened_at"`
}

// Name is the file name of the document without its extension.
func (e *Entry) Name() string {
	return util.FileStem(e.Path)
}

var cacher = gache.New[map[string]*Entry](
	&gache.Options{
		Path:       where.Recent(),
		FileSystem: &filesystem.CacheFs{},
	},
)

// Get returns the recorded documents, most recent first.
func Get() ([]*Entry, error) {
	saved, err := load()
	if err != nil {
		return nil, err
	}

	entries := lo.Values(saved)
	slices.SortFunc(entries, func(a, b *Entry) int {
		return b.OpenedAt.Compare(a.OpenedAt)
	})
	return entries, nil
}

// Last returns the most recently opened document, if any.
func Last() (mo.Option[*Entry], error) {
	entries, err := Get()
	if err != nil {
		return mo.None[*Entry](), err
	}
	if len(entries) == 0 {
		return mo.None[*Entry](), nil
	}
	return mo.Some(entries[0]), nil
}

// Save records path as just opened. Only the Limit most recent documents
// are kept.
func Save(path string, styles, colors int) error {
	saved, err := load()
	if err != nil {
		return err
	}

	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	saved[path] = &Entry{Path: path, Styles: styles, Colors: colors, OpenedAt: time.Now()}

	if len(saved) > Limit {
		entries := lo.Values(saved)
		slices.SortFunc(entries, func(a, b *Entry) int {
			return b.OpenedAt.Compare(a.OpenedAt)
		})
		for _, stale := range entries[Limit:] {
			delete(saved, stale.Path)
		}
	}

	return cacher.Set(saved)
}

// Remove forgets the document at path.
func Remove(path string) error {
	saved, err := load()
	if err != nil {
		return err
	}

	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	delete(saved, path)
	return cacher.Set(saved)
}

// Clear forgets every document.
func Clear() error {
	return cacher.Set(map[string]*Entry{})
}

func load() (map[string]*Entry, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*Entry), nil
	}
	return cached, nil
}
