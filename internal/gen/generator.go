package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
	"text/template"

	"go.uber.org/zap"

	"sizecast/matrix"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName is the name of the generated package.
	PackageName string
	// Source names the table in the generated header.
	Source string
	// FilePrefix starts every generated file name.
	FilePrefix string
	// DebugDir receives unformatted output when formatting fails (optional).
	DebugDir string
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		PackageName: "sizecast",
		Source:      "matrix/matrix.yaml",
		FilePrefix:  "zcast_",
	}
}

// Generator renders the per-width conversion files from a capability table.
type Generator struct {
	config GeneratorConfig
	log    *zap.Logger
}

// Option customizes a Generator.
type Option func(*Generator)

// WithLogger sets the logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(g *Generator) {
		g.log = log
	}
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig, opts ...Option) *Generator {
	g := &Generator{config: config, log: zap.NewNop()}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "zcast_ptr64.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate renders one file per table entry plus the file that rejects
// unsupported targets.
func (g *Generator) Generate(t *matrix.Table) ([]GeneratedFile, error) {
	if len(t.Entries) == 0 {
		return nil, fmt.Errorf("table has no entries")
	}

	var files []GeneratedFile

	for _, e := range t.Entries {
		data := g.widthData(e)

		file, err := g.render(widthTemplate, data.Filename, data)
		if err != nil {
			return nil, fmt.Errorf("generating ptr%d: %w", e.Width, err)
		}

		g.log.Debug("generated width file",
			zap.String("file", file.Filename),
			zap.Int("width", int(e.Width)),
			zap.Int("conversions", len(data.Methods)+len(data.Funcs)))

		files = append(files, *file)
	}

	data := unsupportedData{
		Header:   g.header(),
		Build:    t.Unsupported().String(),
		Package:  g.config.PackageName,
		Filename: g.config.FilePrefix + "unsupported.go",
	}

	file, err := g.render(unsupportedTemplate, data.Filename, data)
	if err != nil {
		return nil, fmt.Errorf("generating unsupported target file: %w", err)
	}

	files = append(files, *file)

	g.log.Info("generated conversion files", zap.Int("files", len(files)))

	return files, nil
}

func (g *Generator) header() string {
	return fmt.Sprintf("// Code generated by sizecast-gen from %s. DO NOT EDIT.", g.config.Source)
}

func (g *Generator) render(tmpl *template.Template, filename string, data any) (*GeneratedFile, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		if g.config.DebugDir != "" {
			_ = writeDebugUnformatted(g.config.DebugDir, filename, buf.Bytes())
		}

		return &GeneratedFile{
			Filename: filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w", err)
	}

	return &GeneratedFile{
		Filename: filename,
		Content:  formatted,
	}, nil
}

func (g *Generator) widthData(e matrix.Entry) widthData {
	data := widthData{
		Header:   g.header(),
		Build:    e.Build.String(),
		Package:  g.config.PackageName,
		Filename: fmt.Sprintf("%sptr%d.go", g.config.FilePrefix, e.Width),
		Width:    int(e.Width),
		Asserts: []assertion{
			{"unsafe.Sizeof(uint(0)) * 8", "PointerWidth"},
			{"unsafe.Sizeof(int(0)) * 8", "PointerWidth"},
			{"unsafe.Sizeof(uintptr(0)) * 8", "PointerWidth"},
		},
	}

	for _, k := range matrix.Kinds() {
		if k.Bits() != int(e.Width) {
			continue
		}

		size := "uint"
		if k.IsSigned() {
			size = "int"
		}

		data.Asserts = append(data.Asserts, assertion{
			fmt.Sprintf("unsafe.Sizeof(%s(0))", k.GoName()),
			fmt.Sprintf("unsafe.Sizeof(%s(0))", size),
		})
	}

	for _, k := range matrix.Kinds() {
		caps := e.Caps[k]
		for _, c := range matrix.Capabilities() {
			if !caps.Has(c) {
				continue
			}

			data.Methods = append(data.Methods, method(k, c))
			if k.Builtin() != "" {
				data.Funcs = append(data.Funcs, builtinFunc(k, c))
			}
		}
	}

	return data
}

// method renders the capability method of kind k.
func method(k matrix.Kind, c matrix.Capability) conversion {
	name := k.GoName()

	switch c {
	default:
		panic("not a single capability: " + c.String())
	case matrix.CapIntoSize:
		return conversion{
			Doc:  "IntoSize returns v as a uint.",
			Recv: "(v " + name + ") ",
			Sig:  "IntoSize() uint",
			Body: "uint(v)",
		}
	case matrix.CapIntoSignedSize:
		return conversion{
			Doc:  "IntoSignedSize returns v as an int.",
			Recv: "(v " + name + ") ",
			Sig:  "IntoSignedSize() int",
			Body: "int(v)",
		}
	case matrix.CapFromSize:
		body := name + "(u)"
		if k.Bits() > 64 {
			body = name + "{Lo: uint64(u)}"
		}

		return conversion{
			Doc:  "FromSize returns u as " + article(name) + ".",
			Recv: "(" + name + ") ",
			Sig:  "FromSize(u uint) " + name,
			Body: body,
		}
	case matrix.CapFromSignedSize:
		body := name + "(i)"
		if k.Bits() > 64 {
			body = name + "From64(int64(i))"
		}

		return conversion{
			Doc:  "FromSignedSize returns i as " + article(name) + ".",
			Recv: "(" + name + ") ",
			Sig:  "FromSignedSize(i int) " + name,
			Body: body,
		}
	}
}

// builtinFunc renders the shortcut working on the predeclared type of k.
func builtinFunc(k matrix.Kind, c matrix.Capability) conversion {
	typ := k.Builtin()
	title := strings.ToUpper(typ[:1]) + typ[1:]

	switch c {
	default:
		panic("not a single capability: " + c.String())
	case matrix.CapIntoSize:
		return conversion{
			Doc:  title + "ToSize returns v as a uint.",
			Sig:  title + "ToSize(v " + typ + ") uint",
			Body: "uint(v)",
		}
	case matrix.CapIntoSignedSize:
		return conversion{
			Doc:  title + "ToSignedSize returns v as an int.",
			Sig:  title + "ToSignedSize(v " + typ + ") int",
			Body: "int(v)",
		}
	case matrix.CapFromSize:
		return conversion{
			Doc:  "SizeTo" + title + " returns u as " + article(typ) + ".",
			Sig:  "SizeTo" + title + "(u uint) " + typ,
			Body: typ + "(u)",
		}
	case matrix.CapFromSignedSize:
		return conversion{
			Doc:  "SignedSizeTo" + title + " returns i as " + article(typ) + ".",
			Sig:  "SignedSizeTo" + title + "(i int) " + typ,
			Body: typ + "(i)",
		}
	}
}

func article(name string) string {
	if strings.HasPrefix(strings.ToLower(name), "i") {
		return "an " + name
	}

	return "a " + name
}
