// Package gen provides deterministic Go code generation for the size
// conversion files.
//
// Generation approach uses text/template + go/format. For every pointer
// width in the capability table it emits one file guarded by the width's
// build constraint, holding:
//   - the PointerWidth constant
//   - compile-time assertions that the size types have that width
//   - capability methods on the fixed-width types
//   - shortcut functions on the predeclared integer types
//
// A last file, guarded by the negation of all width constraints, stops the
// build on any other target.
package gen
