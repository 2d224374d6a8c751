// Package ring provides the fixed-size sliding buffer of masks used by single-pass scans.
package ring

import (
	"github.com/arloliu/uniqwin/internal/pool"
	"github.com/arloliu/uniqwin/symbol"
)

// Ring holds the masks of the last Cap() symbols, oldest first.
//
// A Ring is filled with Push until it is full and then advanced with Swap, which
// evicts the oldest mask. The backing array comes from a pool; call Release when
// the Ring is no longer needed.
type Ring[M symbol.Mask] struct {
	buf     []uint64
	head    int // Slot of the oldest mask once full, next write slot while filling
	n       int
	release func()
}

// New returns an empty Ring with room for size masks.
func New[M symbol.Mask](size int) *Ring[M] {
	buf, release := pool.GetMaskSlice(size)

	return &Ring[M]{buf: buf, release: release}
}

// Push appends m while the ring is filling.
// Panics if the ring is already full.
func (r *Ring[M]) Push(m M) {
	if r.n == len(r.buf) {
		panic("ring: Push on full ring")
	}

	r.buf[r.n] = uint64(m)
	r.n++
}

// Swap replaces the oldest mask with m and returns the evicted mask.
// Panics if the ring is not full.
func (r *Ring[M]) Swap(m M) M {
	if r.n != len(r.buf) {
		panic("ring: Swap on partially filled ring")
	}

	old := r.buf[r.head]
	r.buf[r.head] = uint64(m)
	r.head++
	if r.head == len(r.buf) {
		r.head = 0
	}

	return M(old)
}

// Oldest returns the mask that the next Swap will evict.
func (r *Ring[M]) Oldest() M {
	return M(r.buf[r.head])
}

// Len returns the number of masks stored.
func (r *Ring[M]) Len() int { return r.n }

// Cap returns the number of masks the ring can hold.
func (r *Ring[M]) Cap() int { return len(r.buf) }

// Full reports whether the ring holds Cap() masks.
func (r *Ring[M]) Full() bool { return r.n == len(r.buf) }

// Reset empties the ring without releasing its storage.
func (r *Ring[M]) Reset() {
	clear(r.buf)
	r.head = 0
	r.n = 0
}

// Release returns the backing array to the pool. The Ring must not be used afterwards.
func (r *Ring[M]) Release() {
	if r.release != nil {
		r.release()
		r.release = nil
	}
	r.buf = nil
	r.n = 0
	r.head = 0
}
