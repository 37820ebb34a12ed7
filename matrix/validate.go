package matrix

import (
	"fmt"
	"go/build/constraint"
	"slices"
	"strings"

	"sizecast/internal/diagnostic"
	"sizecast/internal/match"
)

// Diagnostic codes reported by Validate.
const (
	CodeVersion      = "unsupported-version"
	CodeWidth        = "unsupported-width"
	CodeDuplicate    = "duplicate-width"
	CodeMissingWidth = "missing-width"
	CodeConstraint   = "bad-constraint"
	CodeOverlap      = "overlapping-constraint"
	CodeUnknownKind  = "unknown-kind"
	CodeRepeatedKind = "repeated-kind"
	CodeLossyGrant   = "lossy-grant"
	CodeMissingGrant = "missing-grant"
)

// Validate checks f against the lossless rule and the build constraint
// invariants. Granting a lossy conversion is an error; leaving a lossless one
// out is only a warning.
func Validate(f *File) *diagnostic.Diagnostics {
	diags := &diagnostic.Diagnostics{}

	if f.Version != "1" {
		diags.AddError(CodeVersion, fmt.Sprintf("table version %q is not supported", f.Version), 0, "")
	}

	seen := map[Width]bool{}
	var exprs []widthExpr

	for i := range f.Widths {
		spec := &f.Widths[i]
		w := Width(spec.Bits)

		if !w.Valid() {
			diags.AddError(CodeWidth, fmt.Sprintf("pointer width %d is not one of 16, 32, 64", spec.Bits), spec.Bits, "")
			continue
		}

		if seen[w] {
			diags.AddError(CodeDuplicate, "pointer width is listed more than once", spec.Bits, "")
			continue
		}

		seen[w] = true

		expr, err := constraint.Parse("//go:build " + spec.Build)
		if err != nil {
			diags.AddError(CodeConstraint, err.Error(), spec.Bits, spec.Build)
		} else {
			exprs = append(exprs, widthExpr{w, expr})
		}

		validateGrants(diags, spec, w)
	}

	for _, w := range Widths() {
		if !seen[w] {
			diags.AddWarning(CodeMissingWidth, "no entry for this pointer width", int(w), "")
		}
	}

	validateOverlap(diags, exprs)

	return diags
}

func validateGrants(diags *diagnostic.Diagnostics, spec *WidthSpec, w Width) {
	granted := Assignment{}

	for _, c := range Capabilities() {
		for _, name := range spec.lists()[c] {
			k, ok := ParseKind(name)
			if !ok {
				diags.AddErrorWithSuggestions(CodeUnknownKind, fmt.Sprintf("%s lists unknown kind %q", c, name),
					spec.Bits, name, match.Closest(name, kindNames(), 1))
				continue
			}

			if granted[k].Has(c) {
				diags.AddError(CodeRepeatedKind, fmt.Sprintf("%s lists the kind twice", c), spec.Bits, k.GoName())
				continue
			}

			granted[k] |= c

			if !Lossless(k, c, w) {
				diags.AddError(CodeLossyGrant,
					fmt.Sprintf("%s is not lossless for a %d-bit kind", c, k.Bits()), spec.Bits, k.GoName())
			}
		}
	}

	for k, want := range Derive(w) {
		for _, c := range Capabilities() {
			if want.Has(c) && !granted[k].Has(c) {
				diags.AddWarning(CodeMissingGrant, fmt.Sprintf("lossless %s is not granted", c), spec.Bits, k.GoName())
			}
		}
	}
}

func kindNames() []string {
	var res []string
	for _, k := range Kinds() {
		res = append(res, strings.ToLower(k.GoName()))
	}

	return res
}

type widthExpr struct {
	width Width
	expr  constraint.Expr
}

// validateOverlap evaluates every constraint against plausible targets and
// reports tag sets that select more than one width. A target sets at most one
// GOARCH tag plus up to two other tags.
func validateOverlap(diags *diagnostic.Diagnostics, exprs []widthExpr) {
	set := map[string]struct{}{}
	for _, e := range exprs {
		collectTags(e.expr, set)
	}

	var archs, others []string
	for tag := range set {
		if IsArch(tag) {
			archs = append(archs, tag)
		} else {
			others = append(others, tag)
		}
	}

	slices.Sort(archs)
	slices.Sort(others)

	extras := [][]string{nil}
	for i, a := range others {
		extras = append(extras, []string{a})

		for _, b := range others[i+1:] {
			extras = append(extras, []string{a, b})
		}
	}

	reported := map[[2]Width]bool{}

	check := func(on map[string]bool) {
		var hits []Width
		for _, e := range exprs {
			if e.expr.Eval(func(tag string) bool { return on[tag] }) {
				hits = append(hits, e.width)
			}
		}

		for i := 0; i < len(hits); i++ {
			for j := i + 1; j < len(hits); j++ {
				key := [2]Width{min(hits[i], hits[j]), max(hits[i], hits[j])}
				if reported[key] {
					continue
				}

				reported[key] = true
				diags.AddError(CodeOverlap,
					fmt.Sprintf("constraints for %d and %d bits select the same target", key[0], key[1]),
					int(key[0]), fmt.Sprint(keys(on)))
			}
		}
	}

	for _, arch := range append([]string{""}, archs...) {
		for _, extra := range extras {
			on := map[string]bool{}
			if arch != "" {
				on[arch] = true
			}

			for _, tag := range extra {
				on[tag] = true
			}

			check(on)
		}
	}
}

func keys(m map[string]bool) []string {
	res := make([]string, 0, len(m))
	for k := range m {
		res = append(res, k)
	}

	slices.Sort(res)

	return res
}
