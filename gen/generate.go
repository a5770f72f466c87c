// Package gen writes typed theme code for structs annotated with
// //themegen: directives:
//
//	//themegen:decoder
//	//themegen:accessors
//	type Theme struct {
//		Base   style.Proxy       `theme:"style"`
//		Colors map[string]string `theme:"colors"`
//	}
//
//	//themegen:builder context=Colors
//	type Styles struct {
//		Title style.Style `style:"fg=primary,bold"`
//	}
//
// The generated file holds UnmarshalTheme, Build, <Field>Style and
// ValidateTheme methods that need no reflection at run time.
package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"path/filepath"
	"slices"
	"strings"

	"github.com/samber/lo"
	"github.com/tuitheme/tuitheme/constant"
	"github.com/tuitheme/tuitheme/internal/tag"
	"github.com/tuitheme/tuitheme/style"
	"goa.design/goa/v3/codegen"
)

// ErrNoThemes is returned when a package declares no annotated struct.
var ErrNoThemes = errors.New("themegen: no annotated structs found")

// Options tune the generated file.
type Options struct {
	// Suffix of the generated file name, appended to the package name.
	Suffix string
	// PaletteKey is the document table holding the palette.
	PaletteKey string
	// Command is named in the generated header.
	Command string
	// Version of the generator, stamped into the header.
	Version string
	// Force overwrites files stamped by a newer generator.
	Force bool
}

func (o Options) withDefaults() Options {
	if o.Suffix == "" {
		o.Suffix = constant.GeneratedSuffix
	}
	if o.PaletteKey == "" {
		o.PaletteKey = constant.PaletteKey
	}
	if o.Command == "" {
		o.Command = constant.App + " generate"
	}
	if o.Version == "" {
		o.Version = constant.Version
	}
	return o
}

type generator struct {
	pkg     *Package
	opts    Options
	imports map[string]*codegen.ImportSpec
}

// Generate builds the file of generated code for pkg.
func Generate(pkg *Package, opts Options) (*codegen.File, error) {
	if len(pkg.Themes) == 0 {
		return nil, ErrNoThemes
	}

	g := &generator{pkg: pkg, opts: opts.withDefaults(), imports: make(map[string]*codegen.ImportSpec)}

	var sections []*codegen.SectionTemplate
	for _, th := range pkg.Themes {
		if th.Decoder {
			data, err := g.decoder(th)
			if err != nil {
				return nil, err
			}
			sections = append(sections, &codegen.SectionTemplate{
				Name:   "decoder-" + th.Name,
				Source: genTemplates.Read(decoderT),
				Data:   data,
			})
		}
		if th.Builder {
			data, err := g.builder(th)
			if err != nil {
				return nil, err
			}
			sections = append(sections, &codegen.SectionTemplate{
				Name:   "builder-" + th.Name,
				Source: genTemplates.Read(builderT),
				Data:   data,
			})
		}
		if th.Accessors {
			sections = append(sections, &codegen.SectionTemplate{
				Name:   "accessors-" + th.Name,
				Source: genTemplates.Read(accessorsT),
				Data:   g.accessors(th),
			})
		}
	}

	header := &codegen.SectionTemplate{
		Name:   "source-header",
		Source: genTemplates.Read(headerT),
		Data: map[string]any{
			"Command": g.opts.Command,
			"Stamp":   stampPrefix + g.opts.Version,
			"Package": pkg.Name,
			"Imports": g.sortedImports(),
		},
	}

	return &codegen.File{
		Path:             filepath.Join(pkg.Dir, pkg.Name+g.opts.Suffix),
		SectionTemplates: append([]*codegen.SectionTemplate{header}, sections...),
	}, nil
}

// Render executes the sections of f and formats the result.
func Render(f *codegen.File) ([]byte, error) {
	var buf bytes.Buffer
	for _, s := range f.SectionTemplates {
		if err := s.Write(&buf); err != nil {
			return nil, fmt.Errorf("themegen: render section %s: %w", s.Name, err)
		}
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return buf.Bytes(), fmt.Errorf("themegen: format %s: %w", f.Path, err)
	}
	return src, nil
}

func (g *generator) use(name, path string) {
	spec := &codegen.ImportSpec{Path: path}
	if name != "" && name != filepath.Base(path) {
		spec.Name = name
	}
	g.imports[path] = spec
}

func (g *generator) useQuals(f *Field) error {
	for _, q := range f.quals {
		path, ok := g.pkg.imports[q]
		if !ok {
			return errorAt(f.Pos, "%s: cannot resolve package %s", f.Name, q)
		}
		g.use(q, path)
	}
	return nil
}

func (g *generator) sortedImports() []*codegen.ImportSpec {
	specs := lo.Values(g.imports)
	slices.SortFunc(specs, func(a, b *codegen.ImportSpec) int {
		return strings.Compare(a.Path, b.Path)
	})
	return specs
}

type (
	decoderData struct {
		Name         string
		Proxy        string
		PaletteKey   string
		PaletteField string
		UsesPalette  bool
		Proxies      []*proxyData
		Assign       []*assignData
		Colors       *colorsData
	}

	proxyData struct {
		Name   string
		Of     string
		Fields []*proxyField
	}

	proxyField struct {
		Name string
		Type string
		Key  string
	}

	assignData struct {
		Kind      string
		StyleType string
		Source    string
		Target    string
		Pointer   bool
		Elem      string
		Fields    []*assignData
	}

	colorsData struct {
		Name string
		Type string
	}
)

const paletteField = "ThemePalette"

func (g *generator) decoder(th *Theme) (*decoderData, error) {
	g.use("", "fmt")
	g.use("toml", "github.com/pelletier/go-toml/v2")

	data := &decoderData{
		Name:         th.Name,
		Proxy:        codegen.Goify(th.Name, false) + "Proxy",
		PaletteKey:   g.opts.PaletteKey,
		PaletteField: paletteField,
	}

	root := &proxyData{
		Name:   data.Proxy,
		Of:     th.Name,
		Fields: []*proxyField{{Name: paletteField, Type: "map[string]string", Key: g.opts.PaletteKey}},
	}
	data.Proxies = append(data.Proxies, root)

	assign, err := g.proxyFields(th.Fields, root, data, "p", "t")
	if err != nil {
		return nil, err
	}
	data.Assign = assign

	if f := th.Palette(); f != nil {
		data.Colors = &colorsData{Name: f.Name}
		switch f.ColorsType {
		case PaletteMap:
			data.Colors.Type = "palette"
			data.UsesPalette = true
		case StringMap:
			data.Colors.Type = "strings"
		case ColorMap:
			data.Colors.Type = "colors"
			data.UsesPalette = true
		}
	}
	if data.UsesPalette {
		g.use("", ColorPath)
	}
	return data, nil
}

func (g *generator) proxyFields(fields []*Field, proxy *proxyData, data *decoderData, source, target string) ([]*assignData, error) {
	var out []*assignData
	for _, f := range fields {
		a := &assignData{Source: source + "." + f.Name, Target: target + "." + f.Name}

		switch {
		case f.Theme.Kind == tag.Skip || f.Theme.Kind == tag.Colors:
			continue
		case f.Theme.Kind == tag.Styles:
			sub := &proxyData{Name: strings.TrimSuffix(proxy.Name, "Proxy") + f.Name + "Proxy", Of: f.Local}
			data.Proxies = append(data.Proxies, sub)
			proxy.Fields = append(proxy.Fields, &proxyField{Name: f.Name, Type: "*" + sub.Name, Key: f.Key})

			inner, err := g.proxyFields(f.Group, sub, data, a.Source, a.Target)
			if err != nil {
				return nil, err
			}
			a.Kind, a.Pointer, a.Elem, a.Fields = "styles", f.Pointer, f.Local, inner
		case f.Theme.Kind == tag.Style || f.StyleType != NotStyle:
			g.use("", StylePath)
			proxy.Fields = append(proxy.Fields, &proxyField{Name: f.Name, Type: "*style.Proxy", Key: f.Key})
			a.Kind, a.StyleType = "style", styleTypeName(f.StyleType)
			if f.StyleType != StyleProxy {
				data.UsesPalette = true
			}
		default:
			if err := g.useQuals(f); err != nil {
				return nil, err
			}
			proxy.Fields = append(proxy.Fields, &proxyField{Name: f.Name, Type: "*" + f.Type, Key: f.Key})
			a.Kind = "plain"
		}
		out = append(out, a)
	}
	return out, nil
}

func styleTypeName(t StyleType) string {
	switch t {
	case StylePointer:
		return "pointer"
	case StyleProxy:
		return "proxy"
	case LipglossStyle:
		return "lipgloss"
	default:
		return "value"
	}
}

type builderData struct {
	Name       string
	Context    string
	Statements []string
}

func (g *generator) builder(th *Theme) (*builderData, error) {
	data := &builderData{Name: th.Name, Context: th.Context}
	if q, _, ok := strings.Cut(th.Context, "."); ok {
		path, found := g.pkg.imports[q]
		if !found {
			return nil, errorAt(th.Pos, "%s: cannot resolve package of context %s", th.Name, th.Context)
		}
		g.use(q, path)
	}

	for _, f := range th.Fields {
		stmts, err := g.buildField(th, f)
		if err != nil {
			return nil, err
		}
		data.Statements = append(data.Statements, stmts...)
	}
	return data, nil
}

func (g *generator) buildField(th *Theme, f *Field) ([]string, error) {
	target := "t." + f.Name

	if f.Style != nil {
		g.use("", StylePath)
		expr := "style.New()"
		colors := []struct {
			method string
			path   tag.Path
		}{{"Fg", f.Style.Fg}, {"Bg", f.Style.Bg}}
		for _, c := range colors {
			if c.path == nil {
				continue
			}
			ref, err := g.contextRef(th, f, c.path)
			if err != nil {
				return nil, err
			}
			g.use("", ColorPath)
			expr += fmt.Sprintf(".%s(color.Of(%s))", c.method, ref)
		}
		for _, m := range style.Modifiers() {
			if f.Style.Modifiers.Has(m) {
				expr += "." + codegen.Goify(m.String(), true) + "()"
			}
		}

		switch f.StyleType {
		case StylePointer:
			return []string{"{", "s := " + expr, target + " = &s", "}"}, nil
		case LipglossStyle:
			return []string{target + " = " + expr + ".Lipgloss()"}, nil
		default:
			return []string{target + " = " + expr}, nil
		}
	}

	switch f.Builder.Kind {
	case tag.Value:
		ref, err := g.contextRef(th, f, f.Builder.Path)
		if err != nil {
			return nil, err
		}
		if f.IsColor {
			g.use("", ColorPath)
			return []string{target + " = color.Of(" + ref + ")"}, nil
		}
		return []string{target + " = " + ref}, nil
	case tag.Child:
		child, ok := g.pkg.Theme(f.Local)
		if !ok || !child.Builder {
			return nil, errorAt(f.Pos, "%s: child %s has no builder directive", f.Name, f.Type)
		}
		if child.Context != th.Context {
			return nil, errorAt(f.Pos, "%s: child %s is built from %s, not %s", f.Name, f.Type, child.Context, th.Context)
		}
		if g.leadsTo(child, th, true, map[*Theme]bool{}) {
			return nil, errorAt(f.Pos, "%s: child %s leads back to %s", f.Name, f.Type, th.Name)
		}
		return g.buildChild(f, target), nil
	case tag.Untagged:
		if child, ok := g.childOf(th, f); ok {
			// a pointer that can lead back here stays nil
			if f.Pointer && g.leadsTo(child, th, false, map[*Theme]bool{}) {
				return []string{target + " = nil"}, nil
			}
			return g.buildChild(f, target), nil
		}
	}

	if err := g.useQuals(f); err != nil {
		return nil, err
	}
	return []string{target + " = *new(" + f.Type + ")"}, nil
}

// childOf returns the theme an untagged field of th is built as.
func (g *generator) childOf(th *Theme, f *Field) (*Theme, bool) {
	child, ok := g.pkg.Theme(f.Local)
	if !ok || !child.Builder || child.Context != th.Context {
		return nil, false
	}
	return child, true
}

// leadsTo reports whether building from reaches to. With kept set, untagged
// pointer children, the ones cut to break cycles, are not followed.
func (g *generator) leadsTo(from, to *Theme, kept bool, seen map[*Theme]bool) bool {
	if from == to {
		return true
	}
	if seen[from] {
		return false
	}
	seen[from] = true

	for _, f := range from.Fields {
		if f.Style != nil {
			continue
		}
		var (
			child *Theme
			ok    bool
		)
		switch f.Builder.Kind {
		case tag.Child:
			child, ok = g.pkg.Theme(f.Local)
		case tag.Untagged:
			child, ok = g.childOf(from, f)
			ok = ok && !(kept && f.Pointer)
		}
		if ok && child.Builder && g.leadsTo(child, to, kept, seen) {
			return true
		}
	}
	return false
}

func (g *generator) buildChild(f *Field, target string) []string {
	if f.Pointer {
		return []string{target + " = new(" + f.Local + ")", target + ".Build(ctx)"}
	}
	return []string{target + ".Build(ctx)"}
}

// contextRef turns a metadata path into a selector on ctx, using the real
// field names when the context struct is declared in the package.
func (g *generator) contextRef(th *Theme, f *Field, p tag.Path) (string, error) {
	parts := []string{"ctx"}
	local := th.Context
	for _, seg := range p {
		s, ok := g.pkg.structs[local]
		if !ok {
			parts = append(parts, codegen.Goify(seg, true))
			local = ""
			continue
		}

		field, found := lo.Find(s.Fields, func(cf *Field) bool {
			return tag.Matches(seg, cf.Name, cf.Key)
		})
		if !found {
			return "", errorAt(f.Pos, "%s: context %s has no field %s", f.Name, local, seg)
		}
		parts = append(parts, field.Name)
		local = field.Local
	}
	return strings.Join(parts, "."), nil
}

type (
	accessorsData struct {
		Name      string
		Palette   string
		Accessors []*accessorData
		Validate  []string
	}

	accessorData struct {
		Method string
		Path   string
		Panics bool
		Body   []string
	}
)

func (g *generator) accessors(th *Theme) *accessorsData {
	g.use("", LipglossPath)

	data := &accessorsData{Name: th.Name, Palette: "color.Palette(nil)"}
	if f := th.Palette(); f != nil {
		switch f.ColorsType {
		case PaletteMap:
			data.Palette = "t." + f.Name
		case StringMap:
			data.Palette = "color.Palette(t." + f.Name + ")"
		case ColorMap:
			data.Palette = "color.PaletteOf(t." + f.Name + ")"
		}
	}

	g.accessorFields(data, th.Fields, "", "t", "", nil)
	if len(data.Validate) > 0 {
		g.use("", "errors")
	}
	return data
}

func (g *generator) accessorFields(data *accessorsData, fields []*Field, method, target, path string, guards []string) {
	for _, f := range fields {
		m := method + f.Name
		t := target + "." + f.Name
		p := f.Key
		if path != "" {
			p = path + "." + f.Key
		}

		if f.Theme.Kind == tag.Styles {
			inner := guards
			if f.Pointer {
				inner = append(slices.Clone(guards), t)
			}
			g.accessorFields(data, f.Group, m, t, p, inner)
			continue
		}
		if f.StyleType == NotStyle || f.Theme.Kind == tag.Skip {
			continue
		}

		a := &accessorData{Method: m + "Style", Path: p}
		for _, guard := range guards {
			a.Body = append(a.Body, "if "+guard+" == nil {", "return lipgloss.NewStyle()", "}")
		}

		switch f.StyleType {
		case StyleValue:
			a.Body = append(a.Body, "return "+t+".Lipgloss()")
		case StylePointer:
			a.Body = append(a.Body, "if "+t+" == nil {", "return lipgloss.NewStyle()", "}", "return "+t+".Lipgloss()")
		case LipglossStyle:
			a.Body = append(a.Body, "return "+t)
		case StyleProxy:
			g.use("", "fmt")
			if strings.HasPrefix(data.Palette, "color.") {
				g.use("", ColorPath)
			}
			a.Panics = true
			a.Body = append(a.Body,
				"s, err := "+t+".Resolve("+data.Palette+")",
				"if err != nil {",
				fmt.Sprintf("panic(fmt.Sprintf(%q, err))", "theme: "+p+": %v"),
				"}",
				"return s.Lipgloss()",
			)

			check := []string{
				"if _, err := " + t + ".Resolve(palette); err != nil {",
				fmt.Sprintf("errs = append(errs, fmt.Errorf(%q, err))", p+": %w"),
				"}",
			}
			if len(guards) > 0 {
				cond := strings.Join(lo.Map(guards, func(gd string, _ int) string { return gd + " != nil" }), " && ")
				check = append(append([]string{"if " + cond + " {"}, check...), "}")
			}
			data.Validate = append(data.Validate, check...)
		}
		data.Accessors = append(data.Accessors, a)
	}
}
