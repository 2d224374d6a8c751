package collision

import (
	"fmt"
	"slices"

	"github.com/arloliu/uniqwin/errs"
)

// Collision lists the distinct symbols that were assigned the same code.
type Collision struct {
	Code    uint64 // The shared one-hot code
	Symbols []rune // Distinct symbols sharing Code, in first-seen order
}

// Tracker tracks symbol codes and detects when distinct symbols share a bit.
// It maintains a map of code-to-symbols and an ordered list of codes so that
// reports come out in the order the codes were first seen.
type Tracker struct {
	owners       map[uint64][]rune // Code → distinct symbols
	codes        []uint64          // Codes in first-seen order
	symbols      int               // Number of distinct symbols tracked
	hasCollision bool              // Whether two distinct symbols share a code
}

// NewTracker creates a new collision tracker.
func NewTracker() *Tracker {
	return &Tracker{
		owners: make(map[uint64][]rune),
		codes:  make([]uint64, 0),
	}
}

// Track records that sym is encoded as code.
//
// Tracking the same symbol again is a no-op. A second, different symbol with the
// same code is not an error: it sets the collision flag and is kept for reporting.
//
// Returns errs.ErrNotOneHot if code does not have exactly one bit set. Such a code
// is not tracked.
func (t *Tracker) Track(sym rune, code uint64) error {
	if code == 0 || code&(code-1) != 0 {
		return fmt.Errorf("symbol %q has code %#x: %w", sym, code, errs.ErrNotOneHot)
	}

	existing, seen := t.owners[code]
	if !seen {
		t.codes = append(t.codes, code)
	}

	if slices.Contains(existing, sym) {
		return nil
	}

	if len(existing) > 0 {
		t.hasCollision = true
	}

	t.owners[code] = append(existing, sym)
	t.symbols++

	return nil
}

// HasCollision returns true if two distinct symbols share a code.
func (t *Tracker) HasCollision() bool {
	return t.hasCollision
}

// Symbols returns the distinct symbols tracked for code, in first-seen order.
func (t *Tracker) Symbols(code uint64) []rune {
	return t.owners[code]
}

// Collisions returns every code owned by more than one symbol, ordered by the
// first time each code was seen.
func (t *Tracker) Collisions() []Collision {
	if !t.hasCollision {
		return nil
	}

	var out []Collision
	for _, code := range t.codes {
		if syms := t.owners[code]; len(syms) > 1 {
			out = append(out, Collision{Code: code, Symbols: slices.Clone(syms)})
		}
	}

	return out
}

// Count returns the number of distinct symbols tracked.
func (t *Tracker) Count() int {
	return t.symbols
}

// Codes returns the number of distinct codes tracked.
func (t *Tracker) Codes() int {
	return len(t.codes)
}

// Reset clears all tracked symbols and collision state.
func (t *Tracker) Reset() {
	// Clear maps but preserve capacity to avoid allocations
	for k := range t.owners {
		delete(t.owners, k)
	}
	t.codes = t.codes[:0]
	t.symbols = 0
	t.hasCollision = false
}
