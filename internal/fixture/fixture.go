// Package fixture builds deterministic inputs for tests, benchmarks and demos.
//
// Generated text is seeded from the xxHash64 of the fixture name, so a name always
// yields the same text on every platform and Go release (math/rand/v2 PCG is stable).
package fixture

import (
	"math/rand/v2"
	"strings"

	"github.com/cespare/xxhash/v2"
)

const (
	// Regression is a short input whose first distinct window of 14 starts at 5
	// and of 4 starts at 3.
	Regression = "mjqjpqmgbljsphdztnvjfqwrcgsmlb"

	// Thirteen letters: no window of 14 or more can be all distinct.
	NoMatchAlphabet = "abcdefghijklm"

	// MatchTail is appended to no-match text to place a qualifying window of 14
	// ("nopqrstuvxyzab") at the very end.
	MatchTail = "nopqrstuvxyzabcde"

	Lower    = "abcdefghijklmnopqrstuvwxyz"
	Alnum    = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	Extended = Alnum + "!?-_ .,é世"
)

// Seed returns the PRNG seed derived from a fixture name.
func Seed(name string) uint64 {
	return xxhash.Sum64String(name)
}

// Rand returns a PRNG seeded from name.
func Rand(name string) *rand.Rand {
	seed := Seed(name)
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Random returns n symbols drawn uniformly from alphabet, seeded from name.
// Returns an empty string if alphabet is empty.
func Random(name string, n int, alphabet string) string {
	syms := []rune(alphabet)
	if len(syms) == 0 || n <= 0 {
		return ""
	}

	rng := Rand(name)

	var sb strings.Builder
	sb.Grow(n)
	for range n {
		sb.WriteRune(syms[rng.IntN(len(syms))])
	}

	return sb.String()
}

// NoMatch returns n symbols over NoMatchAlphabet. It has no distinct window of 14.
func NoMatch(name string, n int) string {
	return Random(name, n, NoMatchAlphabet)
}

// MatchAtEnd returns NoMatch(name, n) followed by MatchTail, so the first distinct
// window of 14 starts no earlier than n-13 and no later than n.
func MatchAtEnd(name string, n int) string {
	return NoMatch(name, n) + MatchTail
}

// Distinct returns the first n symbols of alphabet repeated cyclically. Every window
// no wider than the alphabet is distinct, so the first window always matches.
func Distinct(n int, alphabet string) string {
	syms := []rune(alphabet)
	if len(syms) == 0 || n <= 0 {
		return ""
	}

	out := make([]rune, n)
	for i := range out {
		out[i] = syms[i%len(syms)]
	}

	return string(out)
}
