package match

import (
	"slices"
	"strings"
)

// Levenshtein computes the edit distance between two strings: the minimum
// number of single-byte insertions, deletions or substitutions turning a
// into b.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	// Keep a the shorter string so the rows stay small.
	if len(a) > len(b) {
		a, b = b, a
	}

	if len(a) == 0 {
		return len(b)
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}

			curr[i] = min(
				prev[i]+1,      // deletion
				curr[i-1]+1,    // insertion
				prev[i-1]+cost, // substitution
			)
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}

// Closest returns the candidates within maxDist edits of name, nearest
// first. Comparison ignores case; ties keep candidate order.
func Closest(name string, candidates []string, maxDist int) []string {
	type scored struct {
		name string
		dist int
	}

	var hits []scored
	for _, c := range candidates {
		d := Levenshtein(strings.ToLower(name), strings.ToLower(c))
		if d <= maxDist {
			hits = append(hits, scored{c, d})
		}
	}

	slices.SortStableFunc(hits, func(a, b scored) int { return a.dist - b.dist })

	res := make([]string, 0, len(hits))
	for _, h := range hits {
		res = append(res, h.name)
	}

	return res
}
