// Fichier: address/sort.go

package address

import "sort"

// Less reports whether a must sort before b.
type Less func(a, b Address) bool

// ReverseLexicographic orders addresses token by token, the larger token first.
// Tokens are compared as integers, so 10 sorts before 9.
func ReverseLexicographic(a, b Address) bool {
	for i := 0; i < TokenCount; i++ {
		if a[i] != b[i] {
			return a[i] > b[i]
		}
	}
	// Equal addresses keep their input order.
	return false
}

// SortBy sorts the pool in place with a stable sort.
func SortBy(p Pool, less Less) {
	sort.SliceStable(p, func(i, j int) bool {
		return less(p[i], p[j])
	})
}

// ReverseLexicographicSort sorts the pool in place in reverse lexicographic order.
func ReverseLexicographicSort(p Pool) {
	SortBy(p, ReverseLexicographic)
}
