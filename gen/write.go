package gen

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/mo"
	"github.com/spf13/afero"
	"github.com/tuitheme/tuitheme/filesystem"
	"github.com/tuitheme/tuitheme/log"
	"github.com/tuitheme/tuitheme/version"
)

const stampPrefix = "themegen version "

// ErrNewerGenerator is returned by Run when the existing file was written
// by a newer generator and Options.Force is not set.
var ErrNewerGenerator = errors.New("themegen: file was generated by a newer version")

// header returns the first two non-empty lines of the file at path.
func header(path string) (first, second string, err error) {
	data, err := afero.ReadFile(filesystem.API(), path)
	if err != nil {
		return "", "", err
	}

	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() && len(lines) < 2 {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	lines = append(lines, "", "")
	return lines[0], lines[1], scanner.Err()
}

// IsGenerated reports whether the file at path starts with a generated
// code header. Missing files are not generated.
func IsGenerated(path string) (bool, error) {
	first, _, err := header(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return strings.HasPrefix(first, "// Code generated ") && strings.HasSuffix(first, " DO NOT EDIT."), nil
}

// Stamp returns the generator version recorded in the file at path.
func Stamp(path string) (mo.Option[string], error) {
	generated, err := IsGenerated(path)
	if err != nil || !generated {
		return mo.None[string](), err
	}

	_, second, err := header(path)
	if err != nil {
		return mo.None[string](), err
	}

	v, ok := strings.CutPrefix(second, "// "+stampPrefix)
	if !ok {
		return mo.None[string](), nil
	}
	return mo.Some(v), nil
}

// Run scans dir and writes the generated file next to its sources. It
// returns the path written.
func Run(dir string, opts Options) (string, error) {
	opts = opts.withDefaults()

	pkg, err := Scan(dir, opts.Suffix)
	if err != nil {
		return "", err
	}

	file, err := Generate(pkg, opts)
	if err != nil {
		return "", err
	}

	if !opts.Force {
		if err := checkStamp(file.Path, opts.Version); err != nil {
			return "", err
		}
	}

	src, err := Render(file)
	if err != nil {
		return "", err
	}

	if err := filesystem.WriteFile(file.Path, src); err != nil {
		return "", err
	}

	log.With(log.Fields{"path": file.Path, "themes": len(pkg.Themes)}).Info("wrote generated theme code")
	return file.Path, nil
}

func checkStamp(path, current string) error {
	stamp, err := Stamp(path)
	if err != nil {
		return err
	}

	previous, ok := stamp.Get()
	if !ok {
		return nil
	}

	cmp, err := version.Compare(previous, current)
	if err != nil {
		log.Debugf("ignoring stamp %q of %s: %v", previous, path, err)
		return nil
	}
	if cmp > 0 {
		return fmt.Errorf("%w: %s has %s, this is %s", ErrNewerGenerator, path, previous, current)
	}
	return nil
}

// Target returns the path Run would write for the package in dir.
func Target(dir string, opts Options) (string, error) {
	opts = opts.withDefaults()
	pkg, err := Scan(dir, opts.Suffix)
	if err != nil {
		return "", err
	}
	return filepath.Join(pkg.Dir, pkg.Name+opts.Suffix), nil
}
