package gen

import (
	"go/format"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuitheme/tuitheme/constant"
	"github.com/tuitheme/tuitheme/filesystem"
)

// exampleDir holds a package whose generated file is committed.
const exampleDir = "../internal/example"

// assertGoldenGo compares generated Go code with the committed file at path
// once both are gofmt'ed. Setting UPDATE_GOLDEN rewrites the file instead.
func assertGoldenGo(t *testing.T, path string, got []byte) {
	t.Helper()

	got, err := format.Source(got)
	require.NoError(t, err, "generated code does not format")

	if os.Getenv("UPDATE_GOLDEN") != "" {
		require.NoError(t, os.WriteFile(path, got, 0o644))
		return
	}

	want, err := os.ReadFile(path)
	require.NoError(t, err, "missing golden file %s, run with UPDATE_GOLDEN=1", path)
	want, err = format.Source(want)
	require.NoError(t, err, "golden file %s does not format", path)

	require.Equal(t, string(want), string(got), "generated code drifted from %s", path)
}

func TestGoldenExample(t *testing.T) {
	filesystem.SetOsFs()
	t.Cleanup(filesystem.SetMemMapFs)

	pkg, err := Scan(exampleDir, constant.GeneratedSuffix)
	require.NoError(t, err)
	require.Equal(t, "example", pkg.Name)

	file, err := Generate(pkg, Options{Version: constant.Version})
	require.NoError(t, err)
	require.Equal(t, filepath.Join(exampleDir, "example"+constant.GeneratedSuffix), file.Path)

	src, err := Render(file)
	require.NoError(t, err)
	assertGoldenGo(t, file.Path, src)
}
