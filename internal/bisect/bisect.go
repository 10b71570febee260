// Package bisect implements binary search over sorted slices with a
// caller-supplied ordering.
package bisect

import "sort"

// Left returns the leftmost position at which e could be inserted into s
// while keeping s sorted under less. If e is already present, the returned
// position is before any existing equal elements.
func Left[E any](s []E, e E, less func(a, b E) bool) int {
	return sort.Search(len(s), func(i int) bool { return !less(s[i], e) })
}

// Right returns the rightmost position at which e could be inserted into s
// while keeping s sorted under less. If e is already present, the returned
// position is after any existing equal elements.
func Right[E any](s []E, e E, less func(a, b E) bool) int {
	return sort.Search(len(s), func(i int) bool { return less(e, s[i]) })
}
