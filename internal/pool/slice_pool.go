// Package pool provides pooled scratch slices.
package pool

import "sync"

var float64SlicePool = sync.Pool{
	New: func() any { return &[]float64{} },
}

// GetFloat64Slice retrieves and resizes a float64 slice from the pool.
//
// The returned slice has the exact length specified by size; its contents
// are not cleared. The caller must call the returned cleanup function to
// return the slice to the pool and must not use the slice afterwards.
//
// Parameters:
//   - size: The desired length of the slice
//
// Returns:
//   - []float64: A slice with length equal to size
//   - func(): Cleanup function, typically deferred
//
// Example:
//
//	density, cleanup := pool.GetFloat64Slice(100)
//	defer cleanup()
func GetFloat64Slice(size int) ([]float64, func()) {
	ptr, _ := float64SlicePool.Get().(*[]float64)

	slice := *ptr
	if cap(slice) < size {
		slice = make([]float64, size)
	}
	slice = slice[:size]
	*ptr = slice

	return slice, func() { float64SlicePool.Put(ptr) }
}
