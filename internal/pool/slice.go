package pool

import "sync"

var uint16SlicePool = sync.Pool{
	New: func() any { return &[]uint16{} },
}

// GetUint16Slice returns a pooled []uint16 of exactly size elements and a
// cleanup function that returns it to the pool. The contents are not zeroed.
//
// Example:
//
//	patterns, cleanup := pool.GetUint16Slice(n)
//	defer cleanup()
func GetUint16Slice(size int) ([]uint16, func()) {
	ptr, _ := uint16SlicePool.Get().(*[]uint16)
	if cap(*ptr) < size {
		*ptr = make([]uint16, size)
	} else {
		*ptr = (*ptr)[:size]
	}

	return *ptr, func() { uint16SlicePool.Put(ptr) }
}
