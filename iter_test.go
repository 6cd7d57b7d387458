package vec

import (
	"slices"
	"testing"
)

func TestIteratorTraversal(t *testing.T) {
	v, _ := Of(10, 20, 30, 40)

	var got []int
	for it := v.Begin(); it != v.End(); it = it.Next() {
		got = append(got, it.Value())
	}
	if !slices.Equal(got, []int{10, 20, 30, 40}) {
		t.Errorf("forward traversal = %v", got)
	}

	got = got[:0]
	for it := v.End(); it != v.Begin(); {
		it = it.Prev()
		got = append(got, it.Value())
	}
	if !slices.Equal(got, []int{40, 30, 20, 10}) {
		t.Errorf("backward traversal = %v", got)
	}
}

func TestIteratorEmptyVector(t *testing.T) {
	v := New[int]()
	if v.Begin() != v.End() {
		t.Error("empty vector: Begin != End")
	}
	if v.ConstBegin() != v.ConstEnd() {
		t.Error("empty vector: ConstBegin != ConstEnd")
	}
}

func TestIteratorRandomAccess(t *testing.T) {
	v, _ := Of(0, 1, 2, 3, 4, 5)

	it := v.Begin().Add(4)
	if it.Value() != 4 {
		t.Errorf("Begin.Add(4).Value = %d, want 4", it.Value())
	}
	if back := it.Sub(3); back.Value() != 1 {
		t.Errorf("Sub(3).Value = %d, want 1", back.Value())
	}
	if neg := it.Add(-2); neg.Value() != 2 {
		t.Errorf("Add(-2).Value = %d, want 2", neg.Value())
	}

	if d := v.End().Distance(v.Begin()); d != v.Len() {
		t.Errorf("End.Distance(Begin) = %d, want %d", d, v.Len())
	}
	if d := it.Distance(v.End()); d != -2 {
		t.Errorf("Distance(End) = %d, want -2", d)
	}
}

func TestIteratorMutation(t *testing.T) {
	v, _ := Of(1, 2, 3)

	it := v.Begin().Next()
	it.Set(20)
	if v.Get(1) != 20 {
		t.Errorf("Set through iterator: Get(1) = %d", v.Get(1))
	}

	*it.Ref() = 21
	if v.Get(1) != 21 {
		t.Errorf("write through Ref: Get(1) = %d", v.Get(1))
	}
}

func TestIteratorCrossFlavorEquality(t *testing.T) {
	v, _ := Of(1, 2, 3)

	// Widening conversion preserves position.
	m := v.Begin().Next()
	c := m.Const()
	if c.Value() != m.Value() {
		t.Errorf("converted cursor reads %d, want %d", c.Value(), m.Value())
	}

	// Cross-flavor comparison, both directions.
	if !m.EqualConst(c) {
		t.Error("mutable != converted const at same position")
	}
	if !c.EqualIter(m) {
		t.Error("const != mutable at same position")
	}
	if m.Next().EqualConst(c) {
		t.Error("cursors at different positions compared equal")
	}

	// Read-only end is one past the last element, same as the mutable end.
	if !v.End().EqualConst(v.ConstEnd()) {
		t.Error("ConstEnd does not match End")
	}
	if v.ConstBegin() == v.ConstEnd() {
		t.Error("ConstBegin equals ConstEnd on a non-empty vector")
	}
}

func TestIteratorConstTraversal(t *testing.T) {
	v, _ := Of(7, 8, 9)

	var got []int
	for it := v.ConstBegin(); it != v.ConstEnd(); it = it.Next() {
		got = append(got, it.Value())
	}
	if !slices.Equal(got, []int{7, 8, 9}) {
		t.Errorf("const traversal = %v", got)
	}
	if d := v.ConstEnd().Distance(v.ConstBegin()); d != 3 {
		t.Errorf("const Distance = %d, want 3", d)
	}
}

func TestIteratorInvalidatedByReallocation(t *testing.T) {
	v, _ := Of(1)
	before := v.Begin()

	// Force a reallocation; the block moves, so stale cursors no longer
	// compare equal to fresh ones.
	if err := v.Reserve(64); err != nil {
		t.Fatalf("Reserve error = %v", err)
	}
	if before == v.Begin() {
		t.Error("cursor survived a reallocation")
	}
}

func TestValuesAndAll(t *testing.T) {
	v, _ := Of(10, 20, 30)

	if got := slices.Collect(v.Values()); !slices.Equal(got, []int{10, 20, 30}) {
		t.Errorf("Values = %v", got)
	}

	var idx []int
	var vals []int
	for i, x := range v.All() {
		idx = append(idx, i)
		vals = append(vals, x)
	}
	if !slices.Equal(idx, []int{0, 1, 2}) || !slices.Equal(vals, []int{10, 20, 30}) {
		t.Errorf("All = %v %v", idx, vals)
	}

	// Early break is honored.
	count := 0
	for range v.Values() {
		count++
		break
	}
	if count != 1 {
		t.Errorf("early break yielded %d elements", count)
	}
}

func TestRoundTripThroughSeq(t *testing.T) {
	src, _ := Of(1, 2, 3, 4)
	dst, err := FromSeq(src.Values())
	if err != nil {
		t.Fatalf("FromSeq error = %v", err)
	}
	if !Equal(src, dst) {
		t.Errorf("round trip: %v vs %v", src.Data(), dst.Data())
	}
}
