package symbol

import "math/bits"

// Sentinel64 is the bit Alnum64 assigns to every symbol outside A-Z, a-z and 0-9.
const Sentinel64 uint64 = 1 << 63

// Symbol is one element of a scanned sequence.
type Symbol = rune

// Mask is the set of unsigned integer types a window mask can be stored in.
type Mask interface {
	~uint32 | ~uint64
}

// Encoder converts one symbol into a mask of type M.
//
// Every call must return a value with exactly one bit set. Two distinct symbols may
// share a bit when the alphabet is wider than M, but a code with several bits set
// breaks the population-count test in the window package and is never allowed.
type Encoder[M Mask] interface {
	Encode(r rune) M
}

// Alpha32 encodes case-insensitive ASCII letters into a uint32.
//
// 'a' and 'A' map to bit 0, 'z' and 'Z' map to bit 25. Callers that need
// case-sensitive matching must use Alnum64.
type Alpha32 struct{}

var _ Encoder[uint32] = Alpha32{}

// Encode implements Encoder.
func (Alpha32) Encode(r rune) uint32 {
	return Encode32(r)
}

// Alnum64 encodes case-sensitive ASCII letters and digits into a uint64.
//
// Layout:
//   - 'A'-'Z': bits 0-25
//   - 'a'-'z': bits 26-51
//   - '0'-'9': bits 52-61
//   - anything else: Sentinel64 (bit 63)
type Alnum64 struct{}

var _ Encoder[uint64] = Alnum64{}

// Encode implements Encoder.
func (Alnum64) Encode(r rune) uint64 {
	return Encode64(r)
}

// Encode32 returns the Alpha32 code of r.
//
// For a letter the bit index is (codepoint mod 32) - 1. Symbols whose low five bits
// are zero ('@', '`') wrap to bit 31; other non-letters land on whatever bit their low
// five bits select. The result always has exactly one bit set.
func Encode32(r rune) uint32 {
	return 1 << ((uint32(r) - 1) & 31) //nolint:gosec
}

// Encode64 returns the Alnum64 code of r.
func Encode64(r rune) uint64 {
	switch {
	case r >= 'A' && r <= 'Z':
		return 1 << uint(r-'A')
	case r >= 'a' && r <= 'z':
		return 1 << uint(r-'a'+26)
	case r >= '0' && r <= '9':
		return 1 << uint(r-'0'+52)
	default:
		return Sentinel64
	}
}

// Width returns the number of bits in M.
func Width[M Mask]() int {
	var m M
	return bits.OnesCount64(uint64(^m))
}

// PopCount returns the number of set bits in m.
func PopCount[M Mask](m M) int {
	return bits.OnesCount64(uint64(m))
}

// IsOneHot reports whether exactly one bit of m is set.
func IsOneHot[M Mask](m M) bool {
	return m != 0 && m&(m-1) == 0
}
