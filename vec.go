package vec

import (
	"fmt"
	"iter"
)

// Capacity grows by growthNum/growthDen on each reallocation, with a
// minimum step of one slot. This is the single policy constant; call sites
// go through nextCapacity and never inline the factor.
const (
	growthNum = 3
	growthDen = 2
)

// nextCapacity returns the capacity a full vector grows to.
func nextCapacity(cur int) int {
	if cur == 0 {
		return 1
	}
	next := cur * growthNum / growthDen
	if next <= cur {
		next = cur + 1
	}
	return next
}

// Vector is a contiguous growable sequence of T backed by an Allocator.
// Slots [0, Len) always hold live elements; slots [Len, Cap) are allocated
// but unconstructed. The vector is the sole owner of its storage block.
// Not goroutine-safe.
type Vector[T any] struct {
	slots    []T // allocated storage; len(slots) == Cap, nil when Cap == 0
	n        int // live elements
	alloc    Allocator[T]
	reallocs int
}

// New creates an empty vector backed by the heap allocator.
func New[T any]() *Vector[T] {
	return NewIn[T](HeapAllocator[T]{})
}

// NewIn creates an empty vector backed by the given allocator. A nil
// allocator falls back to the heap allocator.
func NewIn[T any](a Allocator[T]) *Vector[T] {
	if a == nil {
		a = HeapAllocator[T]{}
	}
	return &Vector[T]{alloc: a}
}

// NewLen creates a vector of n zero-value elements with capacity n.
func NewLen[T any](n int) (*Vector[T], error) {
	return NewLenIn[T](HeapAllocator[T]{}, n)
}

// NewLenIn is NewLen with an explicit allocator.
func NewLenIn[T any](a Allocator[T], n int) (*Vector[T], error) {
	var zero T
	return NewFillIn(a, n, zero)
}

// NewFill creates a vector of n copies of value with capacity n.
func NewFill[T any](n int, value T) (*Vector[T], error) {
	return NewFillIn(HeapAllocator[T]{}, n, value)
}

// NewFillIn is NewFill with an explicit allocator. On a mid-construction
// failure the already-constructed elements are destroyed and the storage
// released before the error is returned.
func NewFillIn[T any](a Allocator[T], n int, value T) (*Vector[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: length %d", ErrNegativeCount, n)
	}
	v := NewIn(a)
	if n == 0 {
		return v, nil
	}
	slots, err := v.alloc.Allocate(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		if err := v.alloc.Construct(&slots[i], value); err != nil {
			for j := 0; j < i; j++ {
				v.alloc.Destroy(&slots[j])
			}
			v.alloc.Deallocate(slots)
			return nil, err
		}
	}
	v.slots, v.n = slots, n
	return v, nil
}

// FromSlice creates a vector holding a copy of src. The element count is
// known up front, so storage is allocated exactly once.
func FromSlice[T any](src []T) (*Vector[T], error) {
	return FromSliceIn(HeapAllocator[T]{}, src)
}

// FromSliceIn is FromSlice with an explicit allocator.
func FromSliceIn[T any](a Allocator[T], src []T) (*Vector[T], error) {
	v := NewIn(a)
	if len(src) == 0 {
		return v, nil
	}
	slots, err := v.alloc.Allocate(len(src))
	if err != nil {
		return nil, err
	}
	for i := range src {
		if err := v.alloc.Construct(&slots[i], src[i]); err != nil {
			for j := 0; j < i; j++ {
				v.alloc.Destroy(&slots[j])
			}
			v.alloc.Deallocate(slots)
			return nil, err
		}
	}
	v.slots, v.n = slots, len(src)
	return v, nil
}

// FromSeq creates a vector from a forward-only sequence. The count is not
// known in advance, so storage grows incrementally as elements arrive.
func FromSeq[T any](seq iter.Seq[T]) (*Vector[T], error) {
	return FromSeqIn(HeapAllocator[T]{}, seq)
}

// FromSeqIn is FromSeq with an explicit allocator.
func FromSeqIn[T any](a Allocator[T], seq iter.Seq[T]) (*Vector[T], error) {
	v := NewIn(a)
	for x := range seq {
		if err := v.Push(x); err != nil {
			v.Release()
			return nil, err
		}
	}
	return v, nil
}

// Of creates a vector from a literal element list.
func Of[T any](xs ...T) (*Vector[T], error) {
	return FromSlice(xs)
}

// Clone returns an independent copy with capacity equal to length. The
// copy's allocator is chosen by the source allocator's CopySelector hook
// when present, otherwise the source allocator is reused.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	return cloneIn(allocatorForCopy(v.alloc), v)
}

// cloneIn builds an independent copy of src with storage owned by a.
func cloneIn[T any](a Allocator[T], src *Vector[T]) (*Vector[T], error) {
	out := NewIn(a)
	if src.n == 0 {
		return out, nil
	}
	slots, err := out.alloc.Allocate(src.n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < src.n; i++ {
		if err := out.alloc.Construct(&slots[i], src.slots[i]); err != nil {
			for j := 0; j < i; j++ {
				out.alloc.Destroy(&slots[j])
			}
			out.alloc.Deallocate(slots)
			return nil, err
		}
	}
	out.slots, out.n = slots, src.n
	return out, nil
}

// Move transfers storage, length, capacity, and allocator to a new vector
// in constant time. The receiver is left valid and empty (Len 0, Cap 0, no
// storage) and can be reused.
func (v *Vector[T]) Move() *Vector[T] {
	out := &Vector[T]{slots: v.slots, n: v.n, alloc: v.alloc, reallocs: v.reallocs}
	v.slots = nil
	v.n = 0
	v.reallocs = 0
	return out
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int { return v.n }

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int { return len(v.slots) }

// Empty reports whether the vector holds no elements.
func (v *Vector[T]) Empty() bool { return v.n == 0 }

// MaxLen returns the allocator's theoretical maximum element count.
func (v *Vector[T]) MaxLen() int { return v.alloc.MaxSlots() }

// Get returns the element at index i without bounds checking against
// anything but the live range; an index outside [0, Len) is a contract
// violation and panics.
func (v *Vector[T]) Get(i int) T {
	return v.slots[:v.n][i]
}

// Set overwrites the element at index i. Same contract as Get.
func (v *Vector[T]) Set(i int, x T) {
	v.slots[:v.n][i] = x
}

// RefAt returns a pointer to the element at index i. Same contract as Get;
// the pointer is invalidated by any reallocation.
func (v *Vector[T]) RefAt(i int) *T {
	return &v.slots[:v.n][i]
}

// At is the checked accessor: it returns ErrIndexOutOfRange when i is
// outside [0, Len).
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.n {
		var zero T
		return zero, fmt.Errorf("%w: index %d with len %d", ErrIndexOutOfRange, i, v.n)
	}
	return v.slots[i], nil
}

// SetAt is the checked mutator counterpart of At.
func (v *Vector[T]) SetAt(i int, x T) error {
	if i < 0 || i >= v.n {
		return fmt.Errorf("%w: index %d with len %d", ErrIndexOutOfRange, i, v.n)
	}
	v.slots[i] = x
	return nil
}

// Front returns the first element. Calling it on an empty vector is a
// contract violation and panics.
func (v *Vector[T]) Front() T { return v.Get(0) }

// Back returns the last element. Same contract as Front.
func (v *Vector[T]) Back() T { return v.Get(v.n - 1) }

// Data returns the live contiguous storage [0, Len). The slice aliases the
// vector's block and is invalidated by any reallocation; its capacity is
// clipped so appends to it cannot reach the unconstructed tail.
func (v *Vector[T]) Data() []T {
	return v.slots[:v.n:v.n]
}

// Reserve grows storage to at least target slots, preserving all elements.
// It is a no-op when target does not exceed the current capacity.
func (v *Vector[T]) Reserve(target int) error {
	if target < 0 {
		return fmt.Errorf("%w: capacity %d", ErrNegativeCount, target)
	}
	if target <= len(v.slots) {
		return nil
	}
	return v.relocate(target)
}

// ShrinkToFit reallocates storage down to exactly Len slots, releasing the
// block entirely when the vector is empty.
func (v *Vector[T]) ShrinkToFit() error {
	if len(v.slots) <= v.n {
		return nil
	}
	if v.n == 0 {
		v.alloc.Deallocate(v.slots)
		v.slots = nil
		return nil
	}
	return v.relocate(v.n)
}

// Push appends a copy of x, growing capacity per the growth policy when
// full. The length grows only after the element is constructed.
func (v *Vector[T]) Push(x T) error {
	if err := v.ensureSpace(); err != nil {
		return err
	}
	if err := v.alloc.Construct(&v.slots[v.n], x); err != nil {
		return err
	}
	v.n++
	return nil
}

// Append pushes each element in turn. On failure the elements appended
// before the failing one remain, matching repeated Push.
func (v *Vector[T]) Append(xs ...T) error {
	if need := v.n + len(xs); need > len(v.slots) {
		newCap := nextCapacity(len(v.slots))
		if newCap < need {
			newCap = need
		}
		if err := v.relocate(newCap); err != nil {
			return err
		}
	}
	for i := range xs {
		if err := v.alloc.Construct(&v.slots[v.n], xs[i]); err != nil {
			return err
		}
		v.n++
	}
	return nil
}

// Emplace constructs the new trailing element directly in its slot. The
// constructor receives a pointer to the (zeroed) slot; if it fails, the
// slot is destroyed and the length is unchanged.
func (v *Vector[T]) Emplace(construct func(*T) error) error {
	if err := v.ensureSpace(); err != nil {
		return err
	}
	slot := &v.slots[v.n]
	if err := construct(slot); err != nil {
		v.alloc.Destroy(slot)
		return err
	}
	v.n++
	return nil
}

// Pop destroys and removes the last element. It is a no-op on an empty
// vector.
func (v *Vector[T]) Pop() {
	if v.n == 0 {
		return
	}
	v.n--
	v.alloc.Destroy(&v.slots[v.n])
}

// Resize grows or shrinks the vector to n elements, zero-constructing any
// new trailing elements.
func (v *Vector[T]) Resize(n int) error {
	var zero T
	return v.ResizeFill(n, zero)
}

// ResizeFill grows or shrinks the vector to n elements. Shrinking destroys
// trailing elements and keeps capacity; growing reserves exactly n slots
// when needed, then constructs copies of value.
func (v *Vector[T]) ResizeFill(n int, value T) error {
	switch {
	case n < 0:
		return fmt.Errorf("%w: length %d", ErrNegativeCount, n)
	case n < v.n:
		for i := n; i < v.n; i++ {
			v.alloc.Destroy(&v.slots[i])
		}
		v.n = n
	case n > v.n:
		if n > len(v.slots) {
			if err := v.relocate(n); err != nil {
				return err
			}
		}
		for v.n < n {
			if err := v.alloc.Construct(&v.slots[v.n], value); err != nil {
				return err
			}
			v.n++
		}
	}
	return nil
}

// Clear destroys all elements and sets the length to zero, retaining
// capacity.
func (v *Vector[T]) Clear() {
	for i := 0; i < v.n; i++ {
		v.alloc.Destroy(&v.slots[i])
	}
	v.n = 0
}

// Release destroys all elements and returns the storage block to the
// allocator, leaving the vector empty and reusable. With the heap
// allocator this is optional; with arena-backed vectors it mirrors the
// arena's own defer-Release discipline.
func (v *Vector[T]) Release() {
	v.Clear()
	if v.slots != nil {
		v.alloc.Deallocate(v.slots)
		v.slots = nil
	}
}

// Replace is copy-assignment: it rebuilds the receiver as a copy of src.
// The copy is taken first, so a failure (including one during element
// construction) leaves the receiver unmodified. Self-replacement is safe.
//
// When src's policy propagates on copy, the receiver adopts the allocator
// the copy was built with (src's, via its CopySelector hook when present);
// otherwise the copy is built with the receiver's own allocator. Either
// way the receiver's storage stays owned by the allocator it ends up
// holding.
func (v *Vector[T]) Replace(src *Vector[T]) error {
	a := v.alloc
	if propagationOf(src.alloc).OnCopyAssign {
		a = allocatorForCopy(src.alloc)
	}
	tmp, err := cloneIn(a, src)
	if err != nil {
		return err
	}
	v.swapState(tmp)
	tmp.Release()
	return nil
}

// ReplaceMove is move-assignment: the receiver takes over src's elements
// and src is left empty. Storage is adopted directly when the policy
// propagates on move or the allocators are interchangeable; otherwise the
// elements are transferred one by one through the receiver's allocator.
func (v *Vector[T]) ReplaceMove(src *Vector[T]) error {
	if v == src {
		return nil
	}
	prop := propagationOf(src.alloc)
	if prop.OnMoveAssign || allocatorsEqual(v.alloc, src.alloc) {
		tmp := src.Move()
		v.swapState(tmp)
		tmp.Release()
		return nil
	}

	// Unequal, non-propagating allocators: the storage cannot change
	// hands, so rebuild through the receiver's allocator.
	tmp := NewIn(v.alloc)
	if src.n > 0 {
		if err := tmp.Reserve(src.n); err != nil {
			return err
		}
		for i := 0; i < src.n; i++ {
			if err := tmp.Push(src.slots[i]); err != nil {
				tmp.Release()
				return err
			}
		}
	}
	v.swapState(tmp)
	tmp.Release()
	src.Release()
	return nil
}

// Swap exchanges the two vectors' internal state in constant time.
// Allocators are exchanged only when either side's policy propagates on
// swap; otherwise the allocators must be interchangeable.
func Swap[T any](a, b *Vector[T]) {
	swapAlloc := propagationOf(a.alloc).OnSwap || propagationOf(b.alloc).OnSwap
	a.slots, b.slots = b.slots, a.slots
	a.n, b.n = b.n, a.n
	a.reallocs, b.reallocs = b.reallocs, a.reallocs
	if swapAlloc {
		a.alloc, b.alloc = b.alloc, a.alloc
	}
}

// Equal reports whether two vectors have the same length and element-wise
// equal contents in order.
func Equal[T comparable](a, b *Vector[T]) bool {
	if a.n != b.n {
		return false
	}
	for i := 0; i < a.n; i++ {
		if a.slots[i] != b.slots[i] {
			return false
		}
	}
	return true
}

// EqualFunc is Equal with a caller-supplied element comparison.
func EqualFunc[T any](a, b *Vector[T], eq func(T, T) bool) bool {
	if a.n != b.n {
		return false
	}
	for i := 0; i < a.n; i++ {
		if !eq(a.slots[i], b.slots[i]) {
			return false
		}
	}
	return true
}

// ensureSpace makes room for one more element.
func (v *Vector[T]) ensureSpace() error {
	if v.n < len(v.slots) {
		return nil
	}
	return v.relocate(nextCapacity(len(v.slots)))
}

// relocate moves the vector into a fresh block of newCap slots. Every live
// element is constructed into the new block in order; only when all of
// them are in place is the old block destroyed, released, and replaced.
// On any transfer failure the constructed prefix of the new block is
// destroyed, the block released, and the error returned with the vector
// exactly as it was before the call (the strong guarantee every growth
// path relies on).
func (v *Vector[T]) relocate(newCap int) error {
	next, err := v.alloc.Allocate(newCap)
	if err != nil {
		return err
	}
	moved := 0
	for i := 0; i < v.n; i++ {
		if err := v.alloc.Construct(&next[i], v.slots[i]); err != nil {
			for j := 0; j < moved; j++ {
				v.alloc.Destroy(&next[j])
			}
			v.alloc.Deallocate(next)
			return err
		}
		moved++
	}
	for i := 0; i < v.n; i++ {
		v.alloc.Destroy(&v.slots[i])
	}
	v.alloc.Deallocate(v.slots)
	v.slots = next
	v.reallocs++
	return nil
}

// swapState exchanges all container state, allocator included.
func (v *Vector[T]) swapState(o *Vector[T]) {
	v.slots, o.slots = o.slots, v.slots
	v.n, o.n = o.n, v.n
	v.alloc, o.alloc = o.alloc, v.alloc
	v.reallocs, o.reallocs = o.reallocs, v.reallocs
}
