package window

import (
	"iter"

	"github.com/segmentio/asm/ascii"

	"github.com/arloliu/uniqwin/symbol"
)

// Index returns the rune index of the first window of size consecutive runes of s that
// enc maps to pairwise distinct bits, or -1 if there is none.
//
// ASCII strings are scanned byte by byte with two cursors. Other strings are decoded
// rune by rune and scanned in a single pass; invalid UTF-8 bytes become U+FFFD.
//
// Panics if enc is nil or size is outside [1, bit width of M].
//
// Example:
//
//	window.Index[uint32]("abcd", 3, symbol.Alpha32{}) // 0
//	window.Index[uint32]("ab", 3, symbol.Alpha32{})   // -1
func Index[M symbol.Mask](s string, size int, enc symbol.Encoder[M]) int {
	mustCheck(size, enc)

	return indexString(s, size, enc, 0)
}

// IndexBytes is like Index but treats every byte of b as one symbol.
func IndexBytes[M symbol.Mask](b []byte, size int, enc symbol.Encoder[M]) int {
	mustCheck(size, enc)

	return scanBytes(b, size, enc)
}

// IndexRunes is like Index for a slice of runes.
func IndexRunes[M symbol.Mask](r []rune, size int, enc symbol.Encoder[M]) int {
	mustCheck(size, enc)

	return scanRunes(r, size, enc)
}

// IndexSeq is like Index for a sequence that can only be iterated once.
//
// seq is consumed up to and including the last symbol of the first qualifying
// window and is then abandoned; memory use is O(size).
func IndexSeq[M symbol.Mask](seq iter.Seq[rune], size int, enc symbol.Encoder[M]) int {
	mustCheck(size, enc)

	return scanSeq(seq, size, enc, 0)
}

func indexString[M symbol.Mask](s string, size int, enc symbol.Encoder[M], limit int) int {
	if ascii.ValidString(s) {
		if limit > 0 && limit < len(s) {
			s = s[:limit]
		}

		return scanBytes(s, size, enc)
	}

	return scanSeq(runes(s), size, enc, limit)
}
