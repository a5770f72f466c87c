package gen

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/fatih/structtag"
	"github.com/spf13/afero"
	"github.com/tuitheme/tuitheme/constant"
	"github.com/tuitheme/tuitheme/filesystem"
	"github.com/tuitheme/tuitheme/internal/tag"
	"github.com/tuitheme/tuitheme/log"
)

// Import paths recognised in scanned field types.
const (
	StylePath    = "github.com/tuitheme/tuitheme/style"
	ColorPath    = "github.com/tuitheme/tuitheme/color"
	LipglossPath = "github.com/charmbracelet/lipgloss"
)

var versionElem = regexp.MustCompile(`^v[0-9]+$`)

type declared struct {
	spec    *ast.TypeSpec
	st      *ast.StructType
	dirs    Directives
	imports map[string]string
}

// Scan parses the Go files of dir and collects the structs carrying
// //themegen: directives. Test files and files ending in suffix are
// skipped.
func Scan(dir, suffix string) (*Package, error) {
	entries, err := afero.ReadDir(filesystem.API(), dir)
	if err != nil {
		return nil, err
	}

	var (
		fset  = token.NewFileSet()
		pkg   = &Package{Dir: dir, structs: make(map[string]*Struct), imports: make(map[string]string)}
		decls []*declared
	)

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() ||
			!strings.HasSuffix(name, ".go") ||
			strings.HasSuffix(name, "_test.go") ||
			(suffix != "" && strings.HasSuffix(name, suffix)) {
			continue
		}

		filename := filepath.Join(dir, name)
		src, err := afero.ReadFile(filesystem.API(), filename)
		if err != nil {
			return nil, err
		}

		file, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
		if err != nil {
			return nil, err
		}

		switch {
		case pkg.Name == "":
			pkg.Name = file.Name.Name
		case pkg.Name != file.Name.Name:
			return nil, errorAt(fset.Position(file.Name.Pos()), "found packages %s and %s in %s", pkg.Name, file.Name.Name, dir)
		}

		imports := importsOf(file)
		for q, p := range imports {
			if _, ok := pkg.imports[q]; !ok {
				pkg.imports[q] = p
			}
		}

		found, err := declarations(fset, file, imports)
		if err != nil {
			return nil, err
		}
		decls = append(decls, found...)
	}

	if pkg.Name == "" {
		return nil, errorAt(token.Position{}, "no Go files in %s", dir)
	}

	for _, d := range decls {
		pkg.structs[d.spec.Name.Name] = &Struct{Name: d.spec.Name.Name, Pos: fset.Position(d.spec.Pos())}
	}
	for _, d := range decls {
		s := pkg.structs[d.spec.Name.Name]
		if s.Fields, err = pkg.fields(fset, d.st, d.imports); err != nil {
			return nil, err
		}
	}

	for _, d := range decls {
		if !d.dirs.Any() {
			continue
		}
		th := &Theme{Struct: pkg.structs[d.spec.Name.Name], Directives: d.dirs}
		for _, f := range th.Fields {
			if f.Theme.Kind != tag.Styles {
				continue
			}
			if f.Group, err = pkg.group(f, map[string]bool{th.Name: true}); err != nil {
				return nil, err
			}
		}
		pkg.Themes = append(pkg.Themes, th)
	}

	log.With(log.Fields{"dir": dir, "themes": len(pkg.Themes)}).Debugf("scanned package %s", pkg.Name)
	return pkg, nil
}

func importsOf(file *ast.File) map[string]string {
	out := make(map[string]string, len(file.Imports))
	for _, imp := range file.Imports {
		p, err := strconv.Unquote(imp.Path.Value)
		if err != nil {
			continue
		}
		q := qualifier(p)
		if imp.Name != nil {
			if imp.Name.Name == "_" || imp.Name.Name == "." {
				continue
			}
			q = imp.Name.Name
		}
		out[q] = p
	}
	return out
}

// qualifier guesses the package name of an unnamed import from its path.
func qualifier(p string) string {
	elems := strings.Split(p, "/")
	q := elems[len(elems)-1]
	if versionElem.MatchString(q) && len(elems) > 1 {
		q = elems[len(elems)-2]
	}
	q = strings.TrimPrefix(q, "go-")
	q = strings.TrimSuffix(q, "-go")
	if i := strings.IndexByte(q, '.'); i > 0 {
		q = q[:i]
	}
	return q
}

func declarations(fset *token.FileSet, file *ast.File, imports map[string]string) ([]*declared, error) {
	var out []*declared
	for _, decl := range file.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}

		for _, spec := range gd.Specs {
			ts := spec.(*ast.TypeSpec)
			doc := ts.Doc
			if doc == nil && len(gd.Specs) == 1 {
				doc = gd.Doc
			}

			pos := fset.Position(ts.Pos())
			dirs, err := parseDirectives(doc, pos)
			if err != nil {
				return nil, err
			}

			st, isStruct := ts.Type.(*ast.StructType)
			if !isStruct {
				if dirs.Any() {
					return nil, errorAt(pos, "%s is not a struct", ts.Name.Name)
				}
				continue
			}
			if ts.TypeParams != nil {
				if dirs.Any() {
					return nil, errorAt(pos, "generic struct %s is not supported", ts.Name.Name)
				}
				continue
			}

			out = append(out, &declared{spec: ts, st: st, dirs: dirs, imports: imports})
		}
	}
	return out, nil
}

func parseDirectives(doc *ast.CommentGroup, pos token.Position) (Directives, error) {
	var d Directives
	if doc == nil {
		return d, nil
	}

	for _, c := range doc.List {
		rest, ok := strings.CutPrefix(c.Text, constant.DirectivePrefix)
		if !ok {
			continue
		}

		name, args, _ := strings.Cut(strings.TrimSpace(rest), " ")
		switch name {
		case "decoder":
			d.Decoder = true
		case "accessors":
			d.Accessors = true
		case "builder":
			ctx, err := tag.ParseContext(args)
			if err != nil {
				return d, errorAt(pos, "%v", err)
			}
			d.Builder, d.Context = true, ctx
		default:
			return d, errorAt(pos, "unknown directive %q, supported: decoder, builder or accessors", name)
		}
	}
	return d, nil
}

func (p *Package) fields(fset *token.FileSet, st *ast.StructType, imports map[string]string) ([]*Field, error) {
	var out []*Field
	for _, af := range st.Fields.List {
		pos := fset.Position(af.Pos())
		if len(af.Names) == 0 {
			return nil, errorAt(pos, "embedded field %s is not supported, give it a name", types.ExprString(af.Type))
		}

		tags, err := parseTags(af.Tag)
		if err != nil {
			return nil, errorAt(pos, "%v", err)
		}

		for _, ident := range af.Names {
			if !ident.IsExported() {
				continue
			}

			f := &Field{
				Name: ident.Name,
				Type: types.ExprString(af.Type),
				Pos:  pos,
				Key:  tag.KeyOf(ident.Name, value(tags, tag.TOMLName)),
			}

			if f.Theme, err = tag.ParseTheme(value(tags, tag.ThemeName)); err != nil {
				return nil, errorAt(pos, "%s: %v", f.Name, err)
			}
			if raw, ok := lookup(tags, tag.StyleName); ok {
				spec, err := tag.ParseStyle(raw)
				if err != nil {
					return nil, errorAt(pos, "%s: %v", f.Name, err)
				}
				f.Style = &spec
			}
			if f.Builder, err = tag.ParseBuilder(value(tags, tag.BuilderName)); err != nil {
				return nil, errorAt(pos, "%s: %v", f.Name, err)
			}

			p.classify(f, af.Type, imports)
			if err := f.check(); err != nil {
				return nil, err
			}
			out = append(out, f)
		}
	}
	return out, nil
}

func parseTags(lit *ast.BasicLit) (*structtag.Tags, error) {
	if lit == nil {
		return &structtag.Tags{}, nil
	}
	raw, err := strconv.Unquote(lit.Value)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(raw) == "" {
		return &structtag.Tags{}, nil
	}
	return structtag.Parse(raw)
}

func lookup(tags *structtag.Tags, key string) (string, bool) {
	t, err := tags.Get(key)
	if err != nil {
		return "", false
	}
	return t.Value(), true
}

func value(tags *structtag.Tags, key string) string {
	v, _ := lookup(tags, key)
	return v
}

func (p *Package) classify(f *Field, expr ast.Expr, imports map[string]string) {
	ast.Inspect(expr, func(n ast.Node) bool {
		if sel, ok := n.(*ast.SelectorExpr); ok {
			if x, ok := sel.X.(*ast.Ident); ok {
				f.quals = append(f.quals, x.Name)
			}
		}
		return true
	})

	selector := func(e ast.Expr) (string, string, bool) {
		sel, ok := e.(*ast.SelectorExpr)
		if !ok {
			return "", "", false
		}
		x, ok := sel.X.(*ast.Ident)
		if !ok {
			return "", "", false
		}
		return imports[x.Name], sel.Sel.Name, true
	}

	switch e := expr.(type) {
	case *ast.StarExpr:
		if pkgPath, name, ok := selector(e.X); ok && pkgPath == StylePath && name == "Style" {
			f.StyleType = StylePointer
		}
		if id, ok := e.X.(*ast.Ident); ok && p.structs[id.Name] != nil {
			f.Local, f.Pointer = id.Name, true
		}
	case *ast.SelectorExpr:
		pkgPath, name, _ := selector(e)
		switch {
		case pkgPath == StylePath && name == "Style":
			f.StyleType = StyleValue
		case pkgPath == StylePath && name == "Proxy":
			f.StyleType = StyleProxy
		case pkgPath == LipglossPath && name == "Style":
			f.StyleType = LipglossStyle
		case pkgPath == ColorPath && name == "Palette":
			f.ColorsType = PaletteMap
		case pkgPath == ColorPath && name == "Color":
			f.IsColor = true
		}
	case *ast.Ident:
		if p.structs[e.Name] != nil {
			f.Local = e.Name
		}
	case *ast.MapType:
		if k, ok := e.Key.(*ast.Ident); !ok || k.Name != "string" {
			return
		}
		if v, ok := e.Value.(*ast.Ident); ok && v.Name == "string" {
			f.ColorsType = StringMap
		}
		if pkgPath, name, ok := selector(e.Value); ok && pkgPath == ColorPath && name == "Color" {
			f.ColorsType = ColorMap
		}
	}
}

func (f *Field) check() error {
	switch f.Theme.Kind {
	case tag.Style:
		if f.StyleType == NotStyle {
			return errorAt(f.Pos, "%s: unsupported style type %s", f.Name, f.Type)
		}
	case tag.Colors:
		if f.ColorsType == NotColors {
			return errorAt(f.Pos, "%s: colors field must be color.Palette, map[string]string or map[string]color.Color, got %s", f.Name, f.Type)
		}
	case tag.Styles:
		if f.Local == "" {
			return errorAt(f.Pos, "%s: styles field must be a struct declared in this package, got %s", f.Name, f.Type)
		}
	}
	if f.Style != nil && (f.StyleType == NotStyle || f.StyleType == StyleProxy) {
		return errorAt(f.Pos, "%s: style tag on unsupported type %s", f.Name, f.Type)
	}
	return nil
}

// group resolves the sub-fields a styles field reads.
func (p *Package) group(f *Field, seen map[string]bool) ([]*Field, error) {
	if seen[f.Local] {
		return nil, errorAt(f.Pos, "%s: recursive styles group %s", f.Name, f.Local)
	}
	seen[f.Local] = true
	defer delete(seen, f.Local)

	var out []*Field
	for _, sub := range p.structs[f.Local].Fields {
		if sub.Theme.Kind == tag.Skip || !f.Theme.Includes(sub.Name, sub.Key) {
			continue
		}

		cp := *sub
		if cp.Theme.Kind == tag.Styles {
			group, err := p.group(&cp, seen)
			if err != nil {
				return nil, err
			}
			cp.Group = group
		}
		out = append(out, &cp)
	}

	for _, name := range f.Theme.Only {
		if !containsField(out, name) {
			return nil, errorAt(f.Pos, "%s: %s has no field %s", f.Name, f.Local, name)
		}
	}
	return out, nil
}

func containsField(fields []*Field, name string) bool {
	for _, f := range fields {
		if tag.Matches(name, f.Name, f.Key) {
			return true
		}
	}
	return false
}
