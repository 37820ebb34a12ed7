// Package diagnostic provides structured warnings and errors for the
// capability table.
//
// Key capabilities:
//   - Lossy grants (a conversion that can truncate on the width)
//   - Missing grants (a lossless conversion the table leaves out)
//   - Malformed or overlapping build constraints
package diagnostic
