package vec

import (
	"fmt"
	"math"
	"unsafe"
)

// Allocator is the capability set a storage strategy must provide to back a
// Vector. Any conforming type can be substituted without container changes.
//
// Allocate returns storage for exactly n elements (len == n) or an error;
// a zero-slot request yields the empty sentinel (nil) with no error.
// Deallocate releases storage previously obtained for len(buf) elements and
// may be a no-op (the empty sentinel always is). Construct initializes one
// element in place, propagating any failure from the element's own
// initialization; Destroy finalizes one element without releasing its slot.
// MaxSlots reports the theoretical maximum element count given the size
// type and address space.
type Allocator[T any] interface {
	Allocate(n int) ([]T, error)
	Deallocate(buf []T)
	Construct(dst *T, src T) error
	Destroy(dst *T)
	MaxSlots() int
}

// Propagation controls whether a container adopts the other side's
// allocator during copy-assignment, move-assignment, and swap. The zero
// value (never propagate) is the default for allocators that do not opt in.
type Propagation struct {
	OnCopyAssign bool
	OnMoveAssign bool
	OnSwap       bool
}

// PropagationPolicy is implemented by allocators that want non-default
// propagation behavior. It is consulted once per assignment or swap.
type PropagationPolicy interface {
	Propagation() Propagation
}

// CopySelector lets a stateful allocator substitute a different allocator
// for copies of its container. Without it, Clone reuses the source's
// allocator value.
type CopySelector[T any] interface {
	SelectForCopy() Allocator[T]
}

// Equaler is implemented by stateful allocators to report whether another
// allocator can release storage this one allocated. Stateless allocators
// are presumed always equal to their own kind.
type Equaler interface {
	EqualTo(other any) bool
}

// HeapAllocator is the default storage strategy: GC-owned slots from make.
// It is stateless, its Construct cannot fail, and Deallocate is a no-op
// (the collector reclaims abandoned storage).
type HeapAllocator[T any] struct{}

// Allocate returns a fresh zeroed block of exactly n slots.
func (HeapAllocator[T]) Allocate(n int) ([]T, error) {
	switch {
	case n < 0:
		return nil, fmt.Errorf("%w: %d slots", ErrNegativeCount, n)
	case n == 0:
		return nil, nil
	case n > maxSlots[T]():
		return nil, fmt.Errorf("%w: %d slots", ErrAllocLimit, n)
	}
	return make([]T, n), nil
}

// Deallocate is a no-op; released blocks are left to the garbage collector.
func (HeapAllocator[T]) Deallocate([]T) {}

// Construct copies src into the slot. It never fails.
func (HeapAllocator[T]) Construct(dst *T, src T) error {
	*dst = src
	return nil
}

// Destroy zeroes the slot so references held by the element are dropped.
func (HeapAllocator[T]) Destroy(dst *T) {
	var zero T
	*dst = zero
}

// MaxSlots reports the address-space bound on element count.
func (HeapAllocator[T]) MaxSlots() int {
	return maxSlots[T]()
}

func maxSlots[T any]() int {
	var zero T
	size := unsafe.Sizeof(zero)
	if size == 0 {
		return math.MaxInt
	}
	return math.MaxInt / int(size)
}

// propagationOf evaluates an allocator's policy flags once per operation.
func propagationOf[T any](a Allocator[T]) Propagation {
	if p, ok := a.(PropagationPolicy); ok {
		return p.Propagation()
	}
	return Propagation{}
}

// allocatorForCopy picks the allocator a clone is built with.
func allocatorForCopy[T any](a Allocator[T]) Allocator[T] {
	if s, ok := a.(CopySelector[T]); ok {
		return s.SelectForCopy()
	}
	return a
}

// allocatorsEqual reports whether storage is interchangeable between two
// allocators. Allocator types must be comparable or implement Equaler.
func allocatorsEqual[T any](a, b Allocator[T]) bool {
	if e, ok := a.(Equaler); ok {
		return e.EqualTo(b)
	}
	if e, ok := b.(Equaler); ok {
		return e.EqualTo(a)
	}
	if _, ok := a.(HeapAllocator[T]); ok {
		_, other := b.(HeapAllocator[T])
		return other
	}
	return a == b
}
