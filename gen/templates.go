package gen

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
)

const (
	headerT    = "header"
	decoderT   = "decoder"
	builderT   = "builder"
	accessorsT = "accessors"
)

//go:embed templates/*.go.tpl
var templateFS embed.FS

type templates struct {
	FS fs.FS
}

var genTemplates = &templates{FS: templateFS}

// Read returns the template with the given name.
func (tr *templates) Read(name string) string {
	content, err := fs.ReadFile(tr.FS, path.Join("templates", name+".go.tpl"))
	if err != nil {
		panic(fmt.Sprintf("failed to load template %s: %v", name, err))
	}
	return string(content)
}
