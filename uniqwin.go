// Package uniqwin finds the first window of distinct symbols in a sequence.
//
// A window qualifies when its S consecutive symbols are pairwise distinct after
// encoding. Every symbol is encoded as a one-hot bit mask, the masks of the current
// window are XOR-ed into a single rolling mask, and the window is distinct exactly
// when the rolling mask has S bits set. Sliding the window costs two XORs and one
// popcount, regardless of S.
//
// # Encoders
//
// Two encoders are built in:
//
//   - symbol.Alpha32: 32-bit masks, letters fold case ('a' and 'A' collide)
//   - symbol.Alnum64: 64-bit masks, 26 + 26 letters and 10 digits are distinct,
//     every other symbol shares the sentinel bit 63
//
// Symbols outside an encoder's collision-free domain alias each other, so two of
// them in one window count as a duplicate. symbol.Audit reports such aliases.
//
// # Basic Usage
//
// Case-insensitive search over letters:
//
//	import "github.com/arloliu/uniqwin"
//
//	idx := uniqwin.IndexFold("mjqjpqmgbljsphdztnvjfqwrcgsmlb", 14) // 5
//
// Case-sensitive search over letters and digits:
//
//	idx := uniqwin.Index("aAbc", 3) // 0
//
// Scanning a compressed stream without loading it into memory:
//
//	m, err := uniqwin.NewMatcher64(14, window.WithCompression(format.CompressionZstd))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	idx, err := m.IndexReader(file)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the window and symbol
// packages for the two built-in encoders. For custom encoders or other input
// shapes (bytes, runes, iterators), use the window package directly.
package uniqwin

import (
	"github.com/arloliu/uniqwin/symbol"
	"github.com/arloliu/uniqwin/window"
)

// IndexFold returns the rune index of the first window of size consecutive runes of s
// that are distinct ignoring letter case, or -1 if there is none.
//
// It uses symbol.Alpha32, so size must be between 1 and 32.
//
// Panics if size is outside [1, 32].
//
// Example:
//
//	uniqwin.IndexFold("abcd", 3) // 0
//	uniqwin.IndexFold("aAbc", 3) // 1
func IndexFold(s string, size int) int {
	return window.Index[uint32](s, size, symbol.Alpha32{})
}

// Index returns the rune index of the first window of size consecutive runes of s
// that are distinct, or -1 if there is none.
//
// It uses symbol.Alnum64: letters are case-sensitive, digits are distinct and every
// other symbol shares one code. size must be between 1 and 64.
//
// Panics if size is outside [1, 64].
func Index(s string, size int) int {
	return window.Index[uint64](s, size, symbol.Alnum64{})
}

// NewMatcher32 creates a reusable case-insensitive Matcher using symbol.Alpha32.
//
// Parameters:
//   - size: Window length, between 1 and 32
//   - opts: Optional settings (see window.Option)
//
// Returns:
//   - *window.Matcher[uint32]: The matcher
//   - error: An error if size or an option is invalid
func NewMatcher32(size int, opts ...window.Option) (*window.Matcher[uint32], error) {
	return window.New[uint32](size, symbol.Alpha32{}, opts...)
}

// NewMatcher64 creates a reusable case-sensitive Matcher using symbol.Alnum64.
//
// Parameters:
//   - size: Window length, between 1 and 64
//   - opts: Optional settings (see window.Option)
//
// Returns:
//   - *window.Matcher[uint64]: The matcher
//   - error: An error if size or an option is invalid
func NewMatcher64(size int, opts ...window.Option) (*window.Matcher[uint64], error) {
	return window.New[uint64](size, symbol.Alnum64{}, opts...)
}
