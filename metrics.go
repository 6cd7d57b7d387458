package vec

// VectorStats is a snapshot of a vector's storage statistics.
type VectorStats struct {
	Len         int     // Live elements
	Cap         int     // Allocated slots
	Reallocs    int     // Reallocation events since construction
	Utilization float64 // Ratio of live elements to slots (0.0-1.0)
}

// Utilization returns the ratio of live elements to allocated slots.
// Returns 0.0 when no storage is allocated.
func (v *Vector[T]) Utilization() float64 {
	if len(v.slots) == 0 {
		return 0
	}
	return float64(v.n) / float64(len(v.slots))
}

// Reallocs returns the number of reallocation events the vector has
// performed. Move carries the count to the adopting vector.
func (v *Vector[T]) Reallocs() int {
	return v.reallocs
}

// Stats returns a snapshot of vector statistics.
func (v *Vector[T]) Stats() VectorStats {
	return VectorStats{
		Len:         v.n,
		Cap:         len(v.slots),
		Reallocs:    v.reallocs,
		Utilization: v.Utilization(),
	}
}

// Arena allocator metrics

// SlotsInUse returns the total number of slots currently handed out by the
// arena, internal waste from abandoned blocks included.
func (a *ArenaAllocator[T]) SlotsInUse() int {
	if a.chunks == nil {
		return 0
	}
	sum := 0
	for i := range a.chunks {
		sum += a.chunks[i].off
	}
	return sum
}

// NumChunks returns the number of chunks currently allocated by the arena.
func (a *ArenaAllocator[T]) NumChunks() int {
	if a.chunks == nil {
		return 0
	}
	return len(a.chunks)
}

// CapSlots returns the total slot capacity of all chunks in the arena.
func (a *ArenaAllocator[T]) CapSlots() int {
	if a.chunks == nil {
		return 0
	}
	sum := 0
	for i := range a.chunks {
		sum += len(a.chunks[i].buf)
	}
	return sum
}

// Utilization returns the ratio of slots in use to total capacity
// (0.0 to 1.0). Returns 0.0 if the arena has no capacity.
func (a *ArenaAllocator[T]) Utilization() float64 {
	capacity := a.CapSlots()
	if capacity == 0 {
		return 0
	}
	return float64(a.SlotsInUse()) / float64(capacity)
}

// ChunkSlots returns the default chunk size, in slots, used by this arena.
func (a *ArenaAllocator[T]) ChunkSlots() int {
	return a.chunkSlots
}

// Metrics returns a snapshot of arena statistics.
func (a *ArenaAllocator[T]) Metrics() ArenaMetrics {
	return ArenaMetrics{
		SlotsInUse:  a.SlotsInUse(),
		CapSlots:    a.CapSlots(),
		NumChunks:   a.NumChunks(),
		ChunkSlots:  a.ChunkSlots(),
		Utilization: a.Utilization(),
	}
}

// ArenaMetrics contains statistical information about an arena allocator.
type ArenaMetrics struct {
	SlotsInUse  int     // Slots currently handed out
	CapSlots    int     // Total capacity in slots
	NumChunks   int     // Number of chunks
	ChunkSlots  int     // Default chunk size in slots
	Utilization float64 // Ratio of used to total capacity (0.0-1.0)
}
