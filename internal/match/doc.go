// Package match provides edit-distance helpers used to suggest the intended
// name when a table entry is misspelled.
package match
