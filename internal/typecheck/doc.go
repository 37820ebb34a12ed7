// Package typecheck verifies the conversion package the way the compiler
// would see it on other targets.
//
// It uses golang.org/x/tools/go/packages to load the package for a chosen
// GOOS/GOARCH, then go/types to
//   - check client snippets against it (a missing capability must be a
//     type error, never a runtime one)
//   - re-check its files under another target's sizes (the width
//     assertions must reject a mismatched target)
package typecheck
