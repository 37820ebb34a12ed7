package typecheck

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/constant"
	"go/parser"
	"go/types"
	"os"
	"strings"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedTypesSizes |
	packages.NeedImports |
	packages.NeedDeps

// Target is a build target.
type Target struct {
	GOOS   string
	GOARCH string
	Tags   []string
}

// TargetFor picks a GOOS able to build arch.
func TargetFor(arch string) Target {
	goos := "linux"
	if arch == "wasm" {
		goos = "js"
	}

	return Target{GOOS: goos, GOARCH: arch}
}

func (t Target) String() string {
	s := t.GOOS + "/" + t.GOARCH
	if len(t.Tags) > 0 {
		s += "+" + strings.Join(t.Tags, ",")
	}

	return s
}

// KnownArch reports whether the gc toolchain has sizes for arch.
func KnownArch(arch string) bool {
	return types.SizesFor("gc", arch) != nil
}

// Package is a package loaded for one target.
type Package struct {
	Target Target
	Pkg    *packages.Package
}

// Load loads the package in dir as it compiles for target.
func Load(ctx context.Context, dir string, target Target) (*Package, error) {
	cfg := &packages.Config{
		Context: ctx,
		Mode:    LoadMode,
		Dir:     dir,
		Env: append(os.Environ(),
			"GOOS="+target.GOOS,
			"GOARCH="+target.GOARCH,
			"CGO_ENABLED=0",
		),
	}

	if len(target.Tags) > 0 {
		cfg.BuildFlags = []string{"-tags=" + strings.Join(target.Tags, ",")}
	}

	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to load package for %s: %w", target, err)
	}

	if len(pkgs) != 1 {
		return nil, fmt.Errorf("expected one package in %s, got %d", dir, len(pkgs))
	}

	return &Package{Target: target, Pkg: pkgs[0]}, nil
}

// Err joins the package's load and type errors.
func (p *Package) Err() error {
	var errs []error
	for _, e := range p.Pkg.Errors {
		errs = append(errs, e)
	}

	return errors.Join(errs...)
}

// PointerWidth reads the PointerWidth constant of the loaded package.
func (p *Package) PointerWidth() (int64, error) {
	if p.Pkg.Types == nil {
		return 0, fmt.Errorf("no type information for %s", p.Pkg.PkgPath)
	}

	c, ok := p.Pkg.Types.Scope().Lookup("PointerWidth").(*types.Const)
	if !ok {
		return 0, fmt.Errorf("%s declares no PointerWidth constant for %s", p.Pkg.PkgPath, p.Target)
	}

	v, exact := constant.Int64Val(c.Val())
	if !exact {
		return 0, fmt.Errorf("PointerWidth %s is not an int64", c.Val())
	}

	return v, nil
}

// CheckSnippet type-checks a client file importing the loaded package under
// the package's own target sizes.
func (p *Package) CheckSnippet(src string) error {
	file, err := parser.ParseFile(p.Pkg.Fset, "snippet.go", src, 0)
	if err != nil {
		return fmt.Errorf("parsing snippet: %w", err)
	}

	return p.check("snippet", []*ast.File{file}, p.Pkg.TypesSizes)
}

// Recheck type-checks the package's own files again with sizes, as if the
// files selected for this target were compiled for another one.
func (p *Package) Recheck(sizes types.Sizes) error {
	return p.check(p.Pkg.PkgPath, p.Pkg.Syntax, sizes)
}

func (p *Package) check(path string, files []*ast.File, sizes types.Sizes) error {
	var errs []error

	conf := types.Config{
		Importer: importerFunc(p.importPackage),
		Sizes:    sizes,
		Error:    func(err error) { errs = append(errs, err) },
	}

	_, _ = conf.Check(path, p.Pkg.Fset, files, nil)

	return errors.Join(errs...)
}

func (p *Package) importPackage(path string) (*types.Package, error) {
	if path == p.Pkg.PkgPath {
		return p.Pkg.Types, nil
	}

	if found := findImport(p.Pkg, path, map[string]bool{}); found != nil {
		return found, nil
	}

	return nil, fmt.Errorf("package %q is not a dependency of %s", path, p.Pkg.PkgPath)
}

func findImport(pkg *packages.Package, path string, seen map[string]bool) *types.Package {
	if seen[pkg.PkgPath] {
		return nil
	}

	seen[pkg.PkgPath] = true

	if imp, ok := pkg.Imports[path]; ok && imp.Types != nil {
		return imp.Types
	}

	for _, imp := range pkg.Imports {
		if found := findImport(imp, path, seen); found != nil {
			return found
		}
	}

	return nil
}

type importerFunc func(path string) (*types.Package, error)

func (f importerFunc) Import(path string) (*types.Package, error) {
	return f(path)
}
