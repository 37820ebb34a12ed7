package matrix

import (
	_ "embed"
	"fmt"
	"go/build/constraint"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

//go:embed matrix.yaml
var defaultTable []byte

// File is the YAML form of the capability table.
type File struct {
	Version string      `yaml:"version"`
	Widths  []WidthSpec `yaml:"widths"`
}

// WidthSpec lists the kinds granted each capability under one pointer width.
type WidthSpec struct {
	Bits           int      `yaml:"bits"`
	Build          string   `yaml:"build"`
	IntoSize       []string `yaml:"into_size,omitempty"`
	IntoSignedSize []string `yaml:"into_signed_size,omitempty"`
	FromSize       []string `yaml:"from_size,omitempty"`
	FromSignedSize []string `yaml:"from_signed_size,omitempty"`
}

func (s *WidthSpec) lists() map[Capability][]string {
	return map[Capability][]string{
		CapIntoSize:       s.IntoSize,
		CapIntoSignedSize: s.IntoSignedSize,
		CapFromSize:       s.FromSize,
		CapFromSignedSize: s.FromSignedSize,
	}
}

// Table is a validated capability table.
type Table struct {
	Entries []Entry
}

// Entry is the capability assignment selected for one pointer width.
type Entry struct {
	Width Width
	// Build selects the targets compiled with this entry.
	Build constraint.Expr
	Caps  Assignment
}

// LoadFile loads and parses a YAML table from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read table %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse table YAML: %w", err)
	}

	if f.Version == "" {
		f.Version = "1"
	}

	return &f, nil
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// Resolve validates f and converts it into a Table. Warnings do not fail.
func Resolve(f *File) (*Table, error) {
	diags := Validate(f)
	if err := diags.Error(); err != nil {
		return nil, fmt.Errorf("invalid table: %w", err)
	}

	t := &Table{}
	for i := range f.Widths {
		spec := &f.Widths[i]

		expr, err := constraint.Parse("//go:build " + spec.Build)
		if err != nil {
			return nil, fmt.Errorf("width %d: %w", spec.Bits, err)
		}

		caps := Assignment{}
		for c, names := range spec.lists() {
			for _, name := range names {
				k, _ := ParseKind(name)
				caps[k] |= c
			}
		}

		t.Entries = append(t.Entries, Entry{Width: Width(spec.Bits), Build: expr, Caps: caps})
	}

	slices.SortFunc(t.Entries, func(a, b Entry) int { return int(a.Width) - int(b.Width) })

	return t, nil
}

// Default returns the table embedded in the package.
func Default() *Table {
	f, err := Parse(defaultTable)
	if err != nil {
		panic(err)
	}

	t, err := Resolve(f)
	if err != nil {
		panic(err)
	}

	return t
}

// Entry returns the entry for width w.
func (t *Table) Entry(w Width) (Entry, bool) {
	for _, e := range t.Entries {
		if e.Width == w {
			return e, true
		}
	}

	return Entry{}, false
}

// Unsupported is the constraint matching targets no entry selects.
func (t *Table) Unsupported() constraint.Expr {
	var res constraint.Expr
	for _, e := range t.Entries {
		var not constraint.Expr = &constraint.NotExpr{X: e.Build}
		if res == nil {
			res = not
			continue
		}

		res = &constraint.AndExpr{X: res, Y: not}
	}

	return res
}

// Select returns the entries whose constraint holds for the given tags.
func (t *Table) Select(tags ...string) []Entry {
	set := map[string]bool{}
	for _, tag := range tags {
		set[tag] = true
	}

	var res []Entry
	for _, e := range t.Entries {
		if e.Build.Eval(func(tag string) bool { return set[tag] }) {
			res = append(res, e)
		}
	}

	return res
}

// Tags returns every tag mentioned by the entries' constraints, sorted.
func (t *Table) Tags() []string {
	set := map[string]struct{}{}
	for _, e := range t.Entries {
		collectTags(e.Build, set)
	}

	res := make([]string, 0, len(set))
	for tag := range set {
		res = append(res, tag)
	}

	slices.Sort(res)

	return res
}

func collectTags(x constraint.Expr, set map[string]struct{}) {
	switch x := x.(type) {
	case *constraint.TagExpr:
		set[x.Tag] = struct{}{}
	case *constraint.NotExpr:
		collectTags(x.X, set)
	case *constraint.AndExpr:
		collectTags(x.X, set)
		collectTags(x.Y, set)
	case *constraint.OrExpr:
		collectTags(x.X, set)
		collectTags(x.Y, set)
	}
}
