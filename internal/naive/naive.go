// Package naive is the brute-force reference for the window package.
//
// It materializes every candidate window and checks it for duplicates by linear
// containment, which costs O(n·S). It exists only to cross-check results and
// timings of the rolling matcher and is not part of the public API.
package naive

import "slices"

// Index returns the start of the first window of size consecutive symbols that are
// pairwise distinct, or -1 if there is none.
func Index[T comparable](syms []T, size int) int {
	return IndexFunc(syms, size, func(s T) T { return s })
}

// IndexFunc is like Index but compares key(s) instead of the symbols themselves.
// Pass an encoder's Encode method as key to reproduce its aliasing.
func IndexFunc[T any, K comparable](syms []T, size int, key func(T) K) int {
	if size <= 0 || len(syms) < size {
		return -1
	}

	for i := 0; i+size <= len(syms); i++ {
		if distinct(syms[i:i+size], key) {
			return i
		}
	}

	return -1
}

// distinct collects the window into a fresh buffer and stops at the first duplicate.
func distinct[T any, K comparable](window []T, key func(T) K) bool {
	seen := make([]K, 0, len(window))
	for _, s := range window {
		k := key(s)
		if slices.Contains(seen, k) {
			return false
		}
		seen = append(seen, k)
	}

	return true
}
