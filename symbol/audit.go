package symbol

import (
	"iter"

	"github.com/segmentio/asm/ascii"

	"github.com/arloliu/uniqwin/internal/collision"
)

// Alias is a set of distinct symbols that an encoder maps to the same bit.
type Alias[M Mask] struct {
	Code    M
	Symbols []rune
}

// Report summarizes how an encoder treats a sample of symbols.
type Report[M Mask] struct {
	// Symbols is the number of distinct symbols seen.
	Symbols int
	// Bits is the number of distinct bits those symbols occupy.
	Bits int
	// Aliases lists every bit shared by more than one symbol, in first-seen order.
	Aliases []Alias[M]
	// Invalid lists symbols whose code did not have exactly one bit set.
	Invalid []rune
}

// CollisionFree reports whether every symbol got its own bit and every code was one-hot.
func (r Report[M]) CollisionFree() bool {
	return len(r.Aliases) == 0 && len(r.Invalid) == 0
}

// Audit encodes each symbol of the sample with enc and reports aliasing and codes
// that break the one-hot precondition.
//
// Use it to check a new Encoder before handing it to the window package, or to see
// whether a real input will hit the collision bucket of a built-in encoder.
//
// Example:
//
//	rep := symbol.Audit[uint32](symbol.Alpha32{}, maps.Keys(charset))
//	if !rep.CollisionFree() {
//	    // 'a' and 'A' (and friends) will be treated as duplicates
//	}
func Audit[M Mask](enc Encoder[M], symbols iter.Seq[rune]) Report[M] {
	tracker := collision.NewTracker()

	var rep Report[M]
	for r := range symbols {
		if err := tracker.Track(r, uint64(enc.Encode(r))); err != nil {
			rep.Invalid = append(rep.Invalid, r)
		}
	}

	rep.Symbols = tracker.Count()
	rep.Bits = tracker.Codes()
	for _, c := range tracker.Collisions() {
		rep.Aliases = append(rep.Aliases, Alias[M]{Code: M(c.Code), Symbols: c.Symbols})
	}

	return rep
}

// InDomain32 reports whether every symbol of s is an ASCII letter, the domain in which
// Alpha32 is collision-free up to letter case.
func InDomain32(s string) bool {
	if !ascii.ValidString(s) {
		return false
	}

	for i := 0; i < len(s); i++ {
		if !isLetter(s[i]) {
			return false
		}
	}

	return true
}

// InDomain64 reports whether every symbol of s is an ASCII letter or digit, the domain
// in which Alnum64 is collision-free.
func InDomain64(s string) bool {
	if !ascii.ValidString(s) {
		return false
	}

	for i := 0; i < len(s); i++ {
		if c := s[i]; !isLetter(c) && (c < '0' || c > '9') {
			return false
		}
	}

	return true
}

func isLetter(c byte) bool {
	c |= 0x20
	return c >= 'a' && c <= 'z'
}
