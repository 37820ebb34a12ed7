// Package matrix is the declarative conversion capability table.
//
// For every supported pointer width it records which fixed-width integer
// kinds may be converted into or out of the size types without loss. The
// table lives in matrix.yaml, is checked against the lossless rule by
// Validate and drives the code generator in internal/gen.
package matrix
