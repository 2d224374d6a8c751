package window

import (
	"fmt"
	"iter"

	"github.com/arloliu/uniqwin/errs"
	"github.com/arloliu/uniqwin/internal/ring"
	"github.com/arloliu/uniqwin/symbol"
)

func checkSize[M symbol.Mask](size int) error {
	if size <= 0 {
		return fmt.Errorf("window size %d: %w", size, errs.ErrInvalidWindowSize)
	}
	if width := symbol.Width[M](); size > width {
		return fmt.Errorf("window size %d over %d-bit mask: %w", size, width, errs.ErrWindowExceedsMask)
	}

	return nil
}

func mustCheck[M symbol.Mask](size int, enc symbol.Encoder[M]) {
	if enc == nil {
		panic(fmt.Errorf("window: %w", errs.ErrNilEncoder))
	}
	if err := checkSize[M](size); err != nil {
		panic(fmt.Errorf("window: %w", err))
	}
}

// scanBytes treats every byte of s as one symbol and slides two cursors over it.
func scanBytes[M symbol.Mask, S ~string | ~[]byte](s S, size int, enc symbol.Encoder[M]) int {
	if len(s) < size {
		return -1
	}

	var mask M
	for i := 0; i < size; i++ {
		mask ^= enc.Encode(rune(s[i]))
	}

	for i := 0; ; i++ {
		if symbol.PopCount(mask) == size {
			return i
		}

		j := i + size
		if j == len(s) {
			return -1
		}
		mask ^= enc.Encode(rune(s[i])) ^ enc.Encode(rune(s[j]))
	}
}

func scanRunes[M symbol.Mask](s []rune, size int, enc symbol.Encoder[M]) int {
	if len(s) < size {
		return -1
	}

	var mask M
	for _, r := range s[:size] {
		mask ^= enc.Encode(r)
	}

	for i := 0; ; i++ {
		if symbol.PopCount(mask) == size {
			return i
		}

		j := i + size
		if j == len(s) {
			return -1
		}
		mask ^= enc.Encode(s[i]) ^ enc.Encode(s[j])
	}
}

// roller is the single-pass form of the scan: it is fed one mask at a time and keeps
// the last size masks in a ring so the leaving mask is known without re-reading input.
type roller[M symbol.Mask] struct {
	ring *ring.Ring[M]
	mask M
	size int
	fed  int
}

func newRoller[M symbol.Mask](size int) *roller[M] {
	return &roller[M]{ring: ring.New[M](size), size: size}
}

// feed adds the mask of the next symbol and reports whether the window ending at that
// symbol is all distinct. The window is tested as soon as its last symbol arrives, so
// a stream is never read past the answer.
func (r *roller[M]) feed(m M) bool {
	if r.fed < r.size {
		r.ring.Push(m)
		r.mask ^= m
	} else {
		r.mask ^= r.ring.Swap(m) ^ m
	}
	r.fed++

	return r.fed >= r.size && symbol.PopCount(r.mask) == r.size
}

// start returns the index of the first symbol of the current window.
func (r *roller[M]) start() int {
	return r.fed - r.size
}

func (r *roller[M]) release() {
	r.ring.Release()
}

// scanSeq consumes at most limit symbols of seq (all of them if limit is 0).
func scanSeq[M symbol.Mask](seq iter.Seq[rune], size int, enc symbol.Encoder[M], limit int) int {
	roll := newRoller[M](size)
	defer roll.release()

	n := 0
	for sym := range seq {
		n++
		if roll.feed(enc.Encode(sym)) {
			return roll.start()
		}
		if limit > 0 && n == limit {
			break
		}
	}

	return -1
}

func runes(s string) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, r := range s {
			if !yield(r) {
				return
			}
		}
	}
}
