package vec

import "testing"

func TestVectorStats(t *testing.T) {
	v := New[int]()

	// Initial state
	s := v.Stats()
	if s.Len != 0 || s.Cap != 0 || s.Reallocs != 0 || s.Utilization != 0 {
		t.Errorf("initial Stats = %+v, want zeros", s)
	}

	// Three pushes from empty reallocate three times (caps 1, 2, 3).
	for i := 1; i <= 3; i++ {
		if err := v.Push(i); err != nil {
			t.Fatalf("Push error = %v", err)
		}
	}
	s = v.Stats()
	if s.Len != 3 || s.Cap != 3 || s.Reallocs != 3 {
		t.Errorf("Stats = %+v, want Len 3 Cap 3 Reallocs 3", s)
	}
	if s.Utilization != 1.0 {
		t.Errorf("Utilization = %f, want 1.0", s.Utilization)
	}

	// Reserve adds one more reallocation and drops utilization.
	if err := v.Reserve(12); err != nil {
		t.Fatalf("Reserve error = %v", err)
	}
	s = v.Stats()
	if s.Reallocs != 4 {
		t.Errorf("Reallocs = %d, want 4", s.Reallocs)
	}
	if s.Utilization != 0.25 {
		t.Errorf("Utilization = %f, want 0.25", s.Utilization)
	}

	if s.Len != v.Len() || s.Cap != v.Cap() || s.Utilization != v.Utilization() || s.Reallocs != v.Reallocs() {
		t.Error("Stats snapshot disagrees with individual accessors")
	}
}

func TestVectorStatsAfterMove(t *testing.T) {
	v := New[int]()
	for i := 0; i < 3; i++ {
		if err := v.Push(i); err != nil {
			t.Fatalf("Push error = %v", err)
		}
	}

	w := v.Move()
	if w.Reallocs() != 3 {
		t.Errorf("adopter Reallocs = %d, want 3", w.Reallocs())
	}
	if v.Reallocs() != 0 {
		t.Errorf("donor Reallocs = %d, want 0", v.Reallocs())
	}
}

func TestArenaAllocatorMetrics(t *testing.T) {
	a := NewArenaAllocator[int](16)

	// Initial state
	if a.SlotsInUse() != 0 {
		t.Errorf("initial SlotsInUse = %d, want 0", a.SlotsInUse())
	}
	if a.NumChunks() != 1 {
		t.Errorf("initial NumChunks = %d, want 1", a.NumChunks())
	}
	if a.CapSlots() != 16 {
		t.Errorf("initial CapSlots = %d, want 16", a.CapSlots())
	}
	if a.ChunkSlots() != 16 {
		t.Errorf("ChunkSlots = %d, want 16", a.ChunkSlots())
	}
	if a.Utilization() != 0 {
		t.Errorf("initial Utilization = %f, want 0", a.Utilization())
	}

	if _, err := a.Allocate(4); err != nil {
		t.Fatalf("Allocate error = %v", err)
	}
	if a.SlotsInUse() != 4 {
		t.Errorf("SlotsInUse = %d, want 4", a.SlotsInUse())
	}
	if u := a.Utilization(); u != 0.25 {
		t.Errorf("Utilization = %f, want 0.25", u)
	}

	// Force chunk growth
	if _, err := a.Allocate(32); err != nil {
		t.Fatalf("Allocate error = %v", err)
	}
	if a.NumChunks() != 2 {
		t.Errorf("NumChunks after growth = %d, want 2", a.NumChunks())
	}
	if a.CapSlots() != 16+32 {
		t.Errorf("CapSlots after growth = %d, want 48", a.CapSlots())
	}

	// Snapshot agrees with the individual accessors.
	m := a.Metrics()
	if m.SlotsInUse != a.SlotsInUse() || m.CapSlots != a.CapSlots() ||
		m.NumChunks != a.NumChunks() || m.ChunkSlots != a.ChunkSlots() ||
		m.Utilization != a.Utilization() {
		t.Errorf("Metrics snapshot %+v disagrees with accessors", m)
	}
}

func TestArenaAllocatorMetricsAfterRelease(t *testing.T) {
	a := NewArenaAllocator[int](16)
	if _, err := a.Allocate(4); err != nil {
		t.Fatalf("Allocate error = %v", err)
	}

	a.Release()

	if a.SlotsInUse() != 0 {
		t.Errorf("SlotsInUse after Release = %d, want 0", a.SlotsInUse())
	}
	if a.NumChunks() != 0 {
		t.Errorf("NumChunks after Release = %d, want 0", a.NumChunks())
	}
	if a.CapSlots() != 0 {
		t.Errorf("CapSlots after Release = %d, want 0", a.CapSlots())
	}
	if a.Utilization() != 0 {
		t.Errorf("Utilization after Release = %f, want 0", a.Utilization())
	}
}
