package vec

import "fmt"

// DefaultChunkSlots is the default per-chunk slot count for new arena
// allocators.
const DefaultChunkSlots = 1024

// chunk is a single typed block within an arena allocator.
type chunk[T any] struct {
	buf []T // backing slots
	off int // bump offset within buf
}

// ArenaAllocator bump-allocates vector storage out of large typed chunks.
// Deallocate is a no-op; storage is reclaimed in bulk with Reset or
// Release. Chunks are ordinary []T blocks, so elements holding pointers
// stay visible to the garbage collector. Not goroutine-safe.
type ArenaAllocator[T any] struct {
	chunks     []chunk[T]
	chunkSlots int
	current    *chunk[T]
}

// NewArenaAllocator creates an arena allocator with the given per-chunk
// slot count. If chunkSlots <= 0, DefaultChunkSlots is used.
func NewArenaAllocator[T any](chunkSlots int) *ArenaAllocator[T] {
	if chunkSlots <= 0 {
		chunkSlots = DefaultChunkSlots
	}
	a := &ArenaAllocator[T]{chunkSlots: chunkSlots}
	a.grow(chunkSlots)
	return a
}

// Allocate returns a contiguous block of exactly n slots from the current
// chunk, starting a new chunk when the current one cannot hold the block.
func (a *ArenaAllocator[T]) Allocate(n int) ([]T, error) {
	switch {
	case n < 0:
		return nil, fmt.Errorf("%w: %d slots", ErrNegativeCount, n)
	case n == 0:
		return nil, nil
	case n > maxSlots[T]():
		return nil, fmt.Errorf("%w: %d slots", ErrAllocLimit, n)
	}

	// Fast path: use the cached current chunk.
	if c := a.current; c != nil && c.off+n <= len(c.buf) {
		s := c.buf[c.off : c.off+n : c.off+n]
		c.off += n
		return s, nil
	}
	return a.allocateSlow(n)
}

// allocateSlow handles allocation when the fast path fails.
func (a *ArenaAllocator[T]) allocateSlow(n int) ([]T, error) {
	a.panicIfReleased()
	a.grow(n)
	c := a.current
	c.off = n
	return c.buf[:n:n], nil
}

// Deallocate is a no-op: arena storage is reclaimed only by Reset or
// Release.
func (a *ArenaAllocator[T]) Deallocate([]T) {}

// Construct copies src into the slot. It never fails.
func (a *ArenaAllocator[T]) Construct(dst *T, src T) error {
	*dst = src
	return nil
}

// Destroy zeroes the slot so references held by the element are dropped.
func (a *ArenaAllocator[T]) Destroy(dst *T) {
	var zero T
	*dst = zero
}

// MaxSlots reports the address-space bound on element count.
func (a *ArenaAllocator[T]) MaxSlots() int {
	return maxSlots[T]()
}

// Reset rewinds all bump offsets but keeps the chunks for reuse. Every
// block handed out earlier becomes invalid. Retained slots are cleared so
// stale elements do not pin heap objects.
func (a *ArenaAllocator[T]) Reset() {
	a.panicIfReleased()
	for i := range a.chunks {
		c := &a.chunks[i]
		clear(c.buf[:c.off])
		c.off = 0
	}
	a.current = &a.chunks[0]
}

// Release drops all chunks and makes the allocator unusable. Any
// subsequent allocation panics.
func (a *ArenaAllocator[T]) Release() {
	a.chunks = nil
	a.current = nil
}

// grow appends a new chunk of at least min slots.
func (a *ArenaAllocator[T]) grow(min int) {
	size := a.chunkSlots
	if min > size {
		size = min
	}
	a.chunks = append(a.chunks, chunk[T]{buf: make([]T, size)})
	a.current = &a.chunks[len(a.chunks)-1]
}

func (a *ArenaAllocator[T]) panicIfReleased() {
	if a.chunks == nil {
		panic("vec: arena allocator used after Release")
	}
}
