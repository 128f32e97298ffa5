package faststorage

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestConfigValidate(t *testing.T) {
	_, err := New(Config[int]{InlineCapacity: -1})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for negative capacity, got %v", err)
	}
	s, err := New(Config[int]{InlineCapacity: 0})
	if err != nil || s == nil {
		t.Fatalf("expected zero capacity to be valid, got %v", err)
	}
}

func TestAllInPlace(t *testing.T) {
	a, err := New(Config[int]{InlineCapacity: 3})
	if err != nil {
		t.Fatalf("unexpected New error: %v", err)
	}
	if a.Len() != 0 {
		t.Fatalf("expected empty storage, len = %d", a.Len())
	}
	b := Of(3, 1)
	if b.Len() != 1 || b.Get(0) != 1 {
		t.Fatalf("unexpected single-element storage: len=%d", b.Len())
	}
	c := Of(3, 1, 2, 3)
	if c.Len() != 3 {
		t.Fatalf("unexpected len: %d", c.Len())
	}
	for i := 0; i < 3; i++ {
		if c.Get(i) != i+1 {
			t.Fatalf("c[%d] = %d, want %d", i, c.Get(i), i+1)
		}
	}
}

func TestMixedRegions(t *testing.T) {
	for _, inlineCap := range []int{1, 2, 3} {
		a := Of(inlineCap, 1, 2, 3, 4)
		if a.Len() != 4 {
			t.Fatalf("N=%d: len = %d, want 4", inlineCap, a.Len())
		}
		for i := 0; i < 4; i++ {
			if a.Get(i) != i+1 {
				t.Fatalf("N=%d: a[%d] = %d, want %d", inlineCap, i, a.Get(i), i+1)
			}
		}
	}
}

func TestZeroCapacityDegeneration(t *testing.T) {
	a := Of(0, 1, 2, 3, 4)
	if a.Len() != 4 {
		t.Fatalf("len = %d, want 4", a.Len())
	}
	for i := 0; i < 4; i++ {
		if a.Get(i) != i+1 {
			t.Fatalf("a[%d] = %d, want %d", i, a.Get(i), i+1)
		}
	}
}

func TestPushAcrossBoundary(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	a, _ := New(Config[int]{InlineCapacity: 2})
	for i := 1; i <= 4; i++ {
		a.Push(i)
		if a.Len() != i {
			t.Fatalf("len after %d pushes = %d", i, a.Len())
		}
	}
	for i := 0; i < 4; i++ {
		if a.Get(i) != i+1 {
			t.Fatalf("a[%d] = %d, want %d", i, a.Get(i), i+1)
		}
	}
}

func TestEmplace(t *testing.T) {
	type entry struct {
		value float64
		flag  bool
	}
	a, _ := New(Config[entry]{InlineCapacity: 2})
	for i, flag := range []bool{false, true, true, false} {
		v := float64(i + 1)
		a.Emplace(func(e *entry) {
			e.value = v
			e.flag = flag
		})
	}
	if a.Len() != 4 {
		t.Fatalf("len = %d, want 4", a.Len())
	}
	want := []entry{{1, false}, {2, true}, {3, true}, {4, false}}
	for i, w := range want {
		if a.Get(i) != w {
			t.Fatalf("a[%d] = %+v, want %+v", i, a.Get(i), w)
		}
	}
}

func TestPop(t *testing.T) {
	a := Of(2, 1, 2, 3, 4)
	for want := 3; want >= 0; want-- {
		a.Pop()
		if a.Len() != want {
			t.Fatalf("len = %d, want %d", a.Len(), want)
		}
		for i := 0; i < want; i++ {
			if a.Get(i) != i+1 {
				t.Fatalf("a[%d] = %d, want %d", i, a.Get(i), i+1)
			}
		}
	}
	a.Pop() // pop on empty storage must be a safe no-op
	if a.Len() != 0 {
		t.Fatalf("len after popping empty storage = %d", a.Len())
	}
}

func TestErase(t *testing.T) {
	a := Of(2, 1, 2, 3, 4)

	if !a.Erase(2) {
		t.Fatalf("erase(2) failed")
	}
	assertElements(t, a, 1, 2, 4)

	if !a.Erase(0) {
		t.Fatalf("erase(0) failed")
	}
	assertElements(t, a, 2, 4)

	if !a.Erase(1) {
		t.Fatalf("erase(1) failed")
	}
	assertElements(t, a, 2)

	if !a.Erase(0) {
		t.Fatalf("erase(0) failed")
	}
	assertElements(t, a)

	if a.Erase(0) {
		t.Fatalf("erase on empty storage must report false")
	}
	if a.Erase(-1) {
		t.Fatalf("erase with negative index must report false")
	}
}

func TestEraseBoundaryCrossing(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	a := Of(2, 1, 2, 3, 4)
	if !a.Erase(0) {
		t.Fatalf("erase(0) failed")
	}
	// the first overflow element must have crossed into the last inline slot
	assertElements(t, a, 2, 3, 4)
}

func assertElements[T comparable](t *testing.T, s *Storage[T], want ...T) {
	t.Helper()
	if s.Len() != len(want) {
		t.Fatalf("len = %d, want %d", s.Len(), len(want))
	}
	for i, w := range want {
		if s.Get(i) != w {
			t.Fatalf("storage[%d] = %v, want %v", i, s.Get(i), w)
		}
	}
}

// dropRecorder captures the identifiers of dropped elements in firing order.
type dropRecorder struct {
	order []int
}

func (r *dropRecorder) hook() func(int) {
	return func(id int) {
		r.order = append(r.order, id)
	}
}

func (r *dropRecorder) expect(t *testing.T, want ...int) {
	t.Helper()
	if len(r.order) != len(want) {
		t.Fatalf("drop count = %d (%v), want %d (%v)", len(r.order), r.order, len(want), want)
	}
	for i, w := range want {
		if r.order[i] != w {
			t.Fatalf("drop order = %v, want %v", r.order, want)
		}
	}
}

func TestDropOrderOnPop(t *testing.T) {
	rec := &dropRecorder{}
	a, _ := New(Config[int]{InlineCapacity: 2, Drop: rec.hook()})
	a.Push(1)
	a.Push(2)
	a.Push(3)
	a.Pop()
	a.Pop()
	a.Pop()
	rec.expect(t, 3, 2, 1)
}

func TestDropOrderOnErase(t *testing.T) {
	rec := &dropRecorder{}
	a, _ := New(Config[int]{InlineCapacity: 2, Drop: rec.hook()})
	a.Push(1)
	a.Push(2)
	a.Push(3)
	a.Erase(0)
	a.Erase(0)
	a.Erase(0)
	// the second drop fires when the boundary-crossing move retires the
	// overflow-side instance of element 3
	rec.expect(t, 1, 3, 2, 3)
}

func TestDropOrderOnClear(t *testing.T) {
	rec := &dropRecorder{}
	a, _ := New(Config[int]{InlineCapacity: 2, Drop: rec.hook()})
	a.Push(1)
	a.Push(2)
	a.Push(3)
	a.Clear()
	// overflow elements first, then inline elements in index order
	rec.expect(t, 3, 1, 2)
	if a.Len() != 0 {
		t.Fatalf("len after clear = %d", a.Len())
	}
}

func TestDropOrderOnClearAllInline(t *testing.T) {
	rec := &dropRecorder{}
	a, _ := New(Config[int]{InlineCapacity: 5, Drop: rec.hook()})
	a.Push(1)
	a.Push(2)
	a.Push(3)
	a.Clear()
	rec.expect(t, 1, 2, 3)
}

func TestDropCountOnClearZeroCapacity(t *testing.T) {
	rec := &dropRecorder{}
	a, _ := New(Config[int]{InlineCapacity: 0, Drop: rec.hook()})
	a.Push(1)
	a.Push(2)
	a.Push(3)
	a.Clear()
	// one drop per pushed element, in storage order
	rec.expect(t, 1, 2, 3)
	if a.Len() != 0 {
		t.Fatalf("len after clear = %d", a.Len())
	}
}

func TestClearAllowsReuse(t *testing.T) {
	a := Of(2, 1, 2, 3, 4)
	a.Clear()
	if a.Len() != 0 {
		t.Fatalf("len after clear = %d", a.Len())
	}
	a.Push(7)
	a.Push(8)
	a.Push(9)
	assertElements(t, a, 7, 8, 9)
}

func TestAt(t *testing.T) {
	a := Of(2, 2, 4, 1, 3, 4)
	want := []int{2, 4, 1, 3, 4}
	for i, w := range want {
		v, err := a.At(i)
		if err != nil {
			t.Fatalf("unexpected At(%d) error: %v", i, err)
		}
		if v != w {
			t.Fatalf("At(%d) = %d, want %d", i, v, w)
		}
	}
	for _, i := range []int{5, 6, -1, -1100} {
		if _, err := a.At(i); !errors.Is(err, ErrIndexOutOfBounds) {
			t.Fatalf("At(%d): expected ErrIndexOutOfBounds, got %v", i, err)
		}
	}
}

func TestAtOnEmptyStorage(t *testing.T) {
	for _, inlineCap := range []int{0, 2} {
		a, _ := New(Config[int]{InlineCapacity: inlineCap})
		if _, err := a.At(0); !errors.Is(err, ErrStorageEmpty) {
			t.Fatalf("N=%d: expected ErrStorageEmpty, got %v", inlineCap, err)
		}
	}
}

func TestCloneIndependence(t *testing.T) {
	a := Of(2, 1, 2, 3, 4)
	b := a.Clone()
	for i := 0; i < 4; i++ {
		b.Set(i, 1)
	}
	assertElements(t, a, 1, 2, 3, 4)
	assertElements(t, b, 1, 1, 1, 1)
	b.Push(5)
	b.Erase(0)
	assertElements(t, a, 1, 2, 3, 4)
}

func TestAssign(t *testing.T) {
	rec := &dropRecorder{}
	a, _ := New(Config[int]{InlineCapacity: 2, Drop: rec.hook()})
	a.Push(9)
	a.Push(8)
	a.Push(7)
	b := Of(2, 1, 2, 3, 4)
	a.Assign(b)
	// assignment tears down the destination with clear semantics first
	rec.expect(t, 7, 9, 8)
	assertElements(t, a, 1, 2, 3, 4)
	// deep copy: mutating the source must not show through
	b.Set(0, 42)
	assertElements(t, a, 1, 2, 3, 4)
}

func TestAssignSelf(t *testing.T) {
	rec := &dropRecorder{}
	a, _ := New(Config[int]{InlineCapacity: 2, Drop: rec.hook()})
	a.Push(1)
	a.Push(2)
	a.Push(3)
	a.Assign(a)
	rec.expect(t)
	assertElements(t, a, 1, 2, 3)
}

func TestOrderPreservation(t *testing.T) {
	a, _ := New(Config[int]{InlineCapacity: 3})
	for i := 1; i <= 8; i++ {
		a.Push(i)
	}
	a.Erase(4) // 5 leaves
	a.Pop()    // 8 leaves
	a.Erase(0) // 1 leaves
	assertElements(t, a, 2, 3, 4, 6, 7)
}

func TestVeryLargeContainer(t *testing.T) {
	a, _ := New(Config[int]{InlineCapacity: 500})
	for i := 0; i < 100000; i++ {
		a.Push(i)
	}
	if a.Len() != 100000 {
		t.Fatalf("len = %d, want 100000", a.Len())
	}
	for i := 0; i < 100000; i++ {
		if a.Get(i) != i {
			t.Fatalf("a[%d] = %d", i, a.Get(i))
		}
	}
}

func TestRandomAccessSweep(t *testing.T) {
	for size := 0; size < 1000; size++ {
		a, _ := New(Config[int]{InlineCapacity: 500})
		for i := 0; i < size; i++ {
			a.Push(i)
		}
		for i := 0; i < size; i++ {
			if a.Get(i) != i {
				t.Fatalf("size %d: a[%d] = %d", size, i, a.Get(i))
			}
		}
	}
}

func TestInlineFootprint(t *testing.T) {
	type big struct {
		value int
		blob  [1000]byte
	}
	a, _ := New(Config[big]{InlineCapacity: 100})
	var probe big
	if a.InlineFootprint() < uintptr(100*len(probe.blob)) {
		t.Fatalf("inline footprint %d smaller than payload", a.InlineFootprint())
	}
}
