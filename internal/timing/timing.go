// Package timing measures the wall time of repeated calls.
//
// It backs the speed comparison between the rolling matcher and the naive
// reference. Results are wall-clock means and are only meaningful as ratios.
package timing

import (
	"fmt"
	"time"
)

// Loops calls fn n times and returns the mean wall time per call.
// Returns 0 if n is not positive.
func Loops(n int, fn func()) time.Duration {
	if n <= 0 {
		return 0
	}

	start := time.Now()
	for range n {
		fn()
	}

	return time.Since(start) / time.Duration(n)
}

// Result holds the mean per-call time of two competing functions.
type Result struct {
	Fast time.Duration
	Slow time.Duration
}

// Speedup returns Slow / Fast. Returns 0 if Fast was not measurable.
func (r Result) Speedup() float64 {
	if r.Fast <= 0 {
		return 0
	}

	return float64(r.Slow) / float64(r.Fast)
}

func (r Result) String() string {
	return fmt.Sprintf("fast=%s slow=%s speedup=%.2fx", r.Fast, r.Slow, r.Speedup())
}

// Compare times fast and slow for n calls each, interleaving a warm-up call first.
func Compare(n int, fast, slow func()) Result {
	fast()
	slow()

	return Result{
		Fast: Loops(n, fast),
		Slow: Loops(n, slow),
	}
}

// BestOf runs Compare trials times and keeps the lowest mean of each side, which
// filters out scheduler and GC noise.
func BestOf(trials, n int, fast, slow func()) Result {
	var best Result
	for i := range trials {
		r := Compare(n, fast, slow)
		if i == 0 || r.Fast < best.Fast {
			best.Fast = r.Fast
		}
		if i == 0 || r.Slow < best.Slow {
			best.Slow = r.Slow
		}
	}

	return best
}
