package pool

import "sync"

// maskSlicePool holds the backing arrays of ring buffers used by stream scans.
// Masks of every width are stored widened to uint64; the conversion is lossless.
var maskSlicePool = sync.Pool{
	New: func() any { return &[]uint64{} },
}

// GetMaskSlice retrieves and resizes a mask slice from the pool.
//
// The returned slice has length size and is zeroed. If the pooled slice has
// insufficient capacity, a new slice is allocated. The caller must call the
// returned cleanup function to return the slice to the pool.
//
// Example:
//
//	masks, cleanup := pool.GetMaskSlice(14)
//	defer cleanup()
func GetMaskSlice(size int) ([]uint64, func()) {
	ptr, _ := maskSlicePool.Get().(*[]uint64)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]uint64, size)
	} else {
		slice = slice[:size]
		clear(slice)
	}
	*ptr = slice

	return slice, func() { maskSlicePool.Put(ptr) }
}
