package vec

import (
	"iter"
	"unsafe"
)

// Iterator is a mutable random-access cursor over a vector's contiguous
// storage. It is a cheap value: a base pointer into the block plus an
// element offset, so same-flavor cursors compare with ==. A cursor owns
// nothing and is invalidated by any operation that reallocates or releases
// the originating vector.
type Iterator[T any] struct {
	base *T
	off  int
}

// ConstIterator is the read-only flavor of Iterator. It is constructible
// from an Iterator via Const (the widening conversion); the reverse
// conversion does not exist.
type ConstIterator[T any] struct {
	base *T
	off  int
}

// Begin returns a cursor to the first element. On an empty vector it
// equals End.
func (v *Vector[T]) Begin() Iterator[T] {
	return Iterator[T]{base: v.base()}
}

// End returns a cursor one past the last element. It must not be
// dereferenced.
func (v *Vector[T]) End() Iterator[T] {
	return Iterator[T]{base: v.base(), off: v.n}
}

// ConstBegin returns a read-only cursor to the first element.
func (v *Vector[T]) ConstBegin() ConstIterator[T] {
	return v.Begin().Const()
}

// ConstEnd returns a read-only cursor one past the last element,
// symmetric with End.
func (v *Vector[T]) ConstEnd() ConstIterator[T] {
	return v.End().Const()
}

func (v *Vector[T]) base() *T {
	if len(v.slots) == 0 {
		return nil
	}
	return &v.slots[0]
}

// at resolves a cursor position. Dereferencing is legal only for offsets
// inside the live range; this is the one place cursor pointer arithmetic
// happens.
func at[T any](base *T, off int) *T {
	return (*T)(unsafe.Add(unsafe.Pointer(base), uintptr(off)*unsafe.Sizeof(*base)))
}

// Value returns the element under the cursor.
func (it Iterator[T]) Value() T { return *at(it.base, it.off) }

// Ref returns a pointer to the element under the cursor.
func (it Iterator[T]) Ref() *T { return at(it.base, it.off) }

// Set overwrites the element under the cursor.
func (it Iterator[T]) Set(x T) { *at(it.base, it.off) = x }

// Next returns the cursor advanced by one element.
func (it Iterator[T]) Next() Iterator[T] { it.off++; return it }

// Prev returns the cursor moved back by one element.
func (it Iterator[T]) Prev() Iterator[T] { it.off--; return it }

// Add returns the cursor offset forward by n elements (backward when n is
// negative).
func (it Iterator[T]) Add(n int) Iterator[T] { it.off += n; return it }

// Sub returns the cursor offset backward by n elements.
func (it Iterator[T]) Sub(n int) Iterator[T] { it.off -= n; return it }

// Distance returns the number of elements from 'from' up to this cursor.
// Both cursors must originate from the same vector storage.
func (it Iterator[T]) Distance(from Iterator[T]) int { return it.off - from.off }

// Const widens the cursor to its read-only flavor.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{base: it.base, off: it.off}
}

// EqualConst reports whether a mutable and a read-only cursor address the
// same position. This is the single cross-flavor comparison; both
// directions route through it.
func (it Iterator[T]) EqualConst(o ConstIterator[T]) bool {
	return it.Const() == o
}

// Value returns the element under the cursor.
func (it ConstIterator[T]) Value() T { return *at(it.base, it.off) }

// Next returns the cursor advanced by one element.
func (it ConstIterator[T]) Next() ConstIterator[T] { it.off++; return it }

// Prev returns the cursor moved back by one element.
func (it ConstIterator[T]) Prev() ConstIterator[T] { it.off--; return it }

// Add returns the cursor offset forward by n elements.
func (it ConstIterator[T]) Add(n int) ConstIterator[T] { it.off += n; return it }

// Sub returns the cursor offset backward by n elements.
func (it ConstIterator[T]) Sub(n int) ConstIterator[T] { it.off -= n; return it }

// Distance returns the number of elements from 'from' up to this cursor.
func (it ConstIterator[T]) Distance(from ConstIterator[T]) int { return it.off - from.off }

// EqualIter reports whether a read-only and a mutable cursor address the
// same position.
func (it ConstIterator[T]) EqualIter(o Iterator[T]) bool {
	return o.EqualConst(it)
}

// Values returns a front-to-back range-over-func view of the elements.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.n; i++ {
			if !yield(v.slots[i]) {
				return
			}
		}
	}
}

// All returns an index/element range-over-func view of the elements.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.n; i++ {
			if !yield(i, v.slots[i]) {
				return
			}
		}
	}
}
