// Package vec implements a generic, contiguous, growable vector with
// pluggable memory allocation.
//
// # Overview
//
// A Vector owns a single contiguous block of element slots and tracks how
// many of them hold live elements. All storage is obtained through the
// Allocator capability set, so the storage strategy can vary independently
// of the container logic:
//
//   - HeapAllocator hands out GC-owned storage from make (the default)
//   - ArenaAllocator bumps slots out of large typed chunks, with O(1)
//     bulk cleanup via Reset
//
// # Basic Usage
//
//	v := vec.New[int]()
//	defer v.Release()
//
//	_ = v.Push(1)
//	_ = v.Push(2)
//	_ = v.Push(3)
//
//	for it := v.Begin(); it != v.End(); it = it.Next() {
//		fmt.Println(it.Value())
//	}
//
//	// Or allocate from an arena
//	a := vec.NewArenaAllocator[int](1024)
//	defer a.Release()
//	w := vec.NewIn[int](a)
//
// # Growth
//
// When a push finds the vector full, capacity grows by a factor of 3/2
// (minimum step of one slot). Growth is a single reallocation event: new
// storage is requested from the allocator, every live element is
// constructed into it in order, and only then is the old storage destroyed
// and released. If any transfer fails, the elements already placed in the
// new storage are destroyed, the new storage is released, and the error is
// returned with the vector exactly as it was before the call.
//
// # Iterators
//
// Begin/End return mutable cursors and ConstBegin/ConstEnd read-only ones.
// Cursors are cheap values supporting random-access traversal (Next, Prev,
// Add, Sub, Distance) and compare equal across the two flavors through the
// widening Const conversion. A cursor is valid only until the vector
// reallocates or is released. Values and All expose the same traversal as
// range-over-func sequences.
//
// # Thread Safety
//
// A Vector has exactly one owner and is not safe for concurrent mutation.
// Concurrent reads are fine while no mutation occurs; anything more needs
// external synchronization.
//
// # Errors
//
// All failures surface synchronously as error returns: ErrIndexOutOfRange
// from the checked accessors, ErrNegativeCount for negative sizes, and
// ErrAllocLimit (or whatever the allocator reports) when storage cannot be
// obtained. A failed growth never leaves partial effects behind.
package vec
