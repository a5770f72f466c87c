// Package util holds small helpers shared by the CLI and the previewer.
package util

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tuitheme/tuitheme/filesystem"
	"golang.org/x/exp/constraints"
	"golang.org/x/term"
)

var (
	unsafeRunes = regexp.MustCompile(`[\\/<>:;"'|?!*{}#%&^+,~\s]+`)
	edgeRunes   = regexp.MustCompile(`^[_\-.]+|[_\-.]+$`)
)

// ThemeFilename turns a theme name into a lowercase file stem. Runs of
// characters unsafe in file names become one underscore. The result is
// empty when nothing usable is left.
func ThemeFilename(name string) string {
	name = strings.ToLower(strings.TrimSuffix(name, ".toml"))
	name = unsafeRunes.ReplaceAllString(name, "_")
	return edgeRunes.ReplaceAllString(name, "")
}

// Quantify formats count with the matching noun.
func Quantify(count int, singular, plural string) string {
	noun := plural
	if count == 1 {
		noun = singular
	}
	return fmt.Sprintf("%d %s", count, noun)
}

func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// TerminalSize of stdout.
func TerminalSize() (width, height int, err error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// FileStem is the base name of path without its extension.
func FileStem(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

// Clamp limits v to [lower, upper]. An upper bound below lower is ignored.
func Clamp[T constraints.Ordered](v, lower, upper T) T {
	if upper >= lower && v > upper {
		return upper
	}
	if v < lower {
		return lower
	}
	return v
}

// Delete removes path, recursively if it is a directory.
func Delete(path string) error {
	fs := filesystem.API()
	info, err := fs.Stat(path)
	if err != nil {
		return err
	}

	if info.IsDir() {
		return fs.RemoveAll(path)
	}
	return fs.Remove(path)
}
