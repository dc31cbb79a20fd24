package tricache

import (
	"slices"
	"testing"
)

func TestNewWindowNormalizes(t *testing.T) {
	cc := newTestCache(t, nil)
	w := NewWindow(cc, 0, -4)
	if w.Length() != 1 || w.Offset() != 1 || w.Cursor() != 1 {
		t.Fatalf("got length=%d offset=%d cursor=%d", w.Length(), w.Offset(), w.Cursor())
	}
	if cc.Len() != 1 {
		t.Fatalf("window should grow the cache to 1 term, Len=%d", cc.Len())
	}
}

func TestNewWindowNilCacheUsesDefault(t *testing.T) {
	w := NewWindow(nil, 2, 2)
	if w.Cache() != Default() {
		t.Fatalf("nil cache should bind to Default()")
	}
}

func TestWindowIteratesRange(t *testing.T) {
	cc := newTestCache(t, nil)
	w := NewWindow(cc, 20, 12)
	if cc.Len() != 31 {
		t.Fatalf("window (20, 12) should cover 31 terms, Len=%d", cc.Len())
	}

	var got []int
	for it, end := w.Begin(), w.End(); !it.Equal(end); {
		v, err := it.Value()
		if err != nil {
			t.Fatalf("Value at %d: %v", it.Index(), err)
		}
		got = append(got, v)
		if err := it.Next(); err != nil {
			t.Fatalf("Next: %v", err)
		}
	}
	want := cc.Terms()[11:31]
	if !slices.Equal(got, want) {
		t.Fatalf("got %v\nwant %v", got, want)
	}
	if !slices.Equal(slices.Collect(w.All()), want) {
		t.Fatalf("All disagrees with Begin/End")
	}
}

func TestSumViaCursor(t *testing.T) {
	cc := newTestCache(t, nil)
	w := NewWindow(cc, 4, 1)
	if got := Sum(&w); got != 20 {
		t.Fatalf("Sum=%d want 20", got)
	}
	// exhausted after the sum
	if _, ok := w.Next(); ok {
		t.Fatalf("cursor should be exhausted")
	}
}

func TestSumEmptyWindow(t *testing.T) {
	cc := newTestCache(t, nil)
	w := NewWindow(cc, 3, 2)
	w.SetLength(0)
	if got := Sum(&w); got != 0 {
		t.Fatalf("Sum=%d want 0", got)
	}
	if w.Cursor() != 2 {
		t.Fatalf("empty sum must not touch the cursor, got %d", w.Cursor())
	}
}

func TestNextStaysExhaustedUntilReset(t *testing.T) {
	cc := newTestCache(t, nil)
	w := NewWindow(cc, 2, 3)

	var got []int
	for v, ok := w.Next(); ok; v, ok = w.Next() {
		got = append(got, v)
	}
	if !slices.Equal(got, []int{6, 10}) {
		t.Fatalf("got %v want [6 10]", got)
	}
	for i := 0; i < 3; i++ {
		if _, ok := w.Next(); ok || w.Cursor() != 0 {
			t.Fatalf("Next after exhaustion: ok=%v cursor=%d", ok, w.Cursor())
		}
	}

	w.Rewind()
	if v, ok := w.Next(); !ok || v != 6 {
		t.Fatalf("after Rewind got %d,%v want 6,true", v, ok)
	}
}

func TestResetCursorStartsAtSequenceStart(t *testing.T) {
	cc := newTestCache(t, nil)
	w := NewWindow(cc, 2, 3)

	w.ResetCursor()
	var legacy []int
	for v, ok := w.Next(); ok; v, ok = w.Next() {
		legacy = append(legacy, v)
	}
	if !slices.Equal(legacy, []int{1, 3, 6, 10}) {
		t.Fatalf("ResetCursor walk = %v want [1 3 6 10]", legacy)
	}

	w.Rewind()
	var window []int
	for v, ok := w.Next(); ok; v, ok = w.Next() {
		window = append(window, v)
	}
	if !slices.Equal(window, []int{6, 10}) {
		t.Fatalf("Rewind walk = %v want [6 10]", window)
	}
}

func TestCopyKeepsCursorAssignResetsIt(t *testing.T) {
	cc := newTestCache(t, nil)
	src := NewWindow(cc, 5, 4)
	src.Next()
	src.Next()

	cp := src
	if cp.Cursor() != src.Cursor() || cp.Cursor() != 6 {
		t.Fatalf("copy cursor=%d src cursor=%d", cp.Cursor(), src.Cursor())
	}

	var dst Window
	dst.Assign(src)
	if dst.Cursor() != 1 || dst.Length() != 5 || dst.Offset() != 4 || dst.Cache() != cc {
		t.Fatalf("Assign: %+v", dst)
	}

	// copies are independent
	cp.Next()
	if src.Cursor() != 6 {
		t.Fatalf("stepping a copy moved the source cursor to %d", src.Cursor())
	}
}

func TestSettersDeferGrowth(t *testing.T) {
	cc := newTestCache(t, nil)
	w := NewWindow(cc, 2, 1)
	w.SetOffset(10)
	w.SetLength(3)
	if cc.Len() != 2 {
		t.Fatalf("setters must not grow the cache, Len=%d", cc.Len())
	}
	if w.Cursor() != 1 {
		t.Fatalf("setters must not move the cursor, got %d", w.Cursor())
	}

	w.Rewind()
	v, ok := w.Next()
	if !ok || v != 55 {
		t.Fatalf("got %d,%v want 55,true", v, ok)
	}
	if cc.Len() != 10 {
		t.Fatalf("Next should grow just enough, Len=%d", cc.Len())
	}
}

func TestSettersClamp(t *testing.T) {
	cc := newTestCache(t, nil)
	w := NewWindow(cc, 2, 2)
	w.SetLength(-3)
	w.SetOffset(0)
	if w.Length() != 0 || w.Offset() != 1 {
		t.Fatalf("got length=%d offset=%d", w.Length(), w.Offset())
	}
	if w.Begin() != w.End() {
		t.Fatalf("zero-length window must have Begin == End")
	}
}

func TestNextPastBoundExhausts(t *testing.T) {
	cc := newTestCache(t, func(o *Options) { o.CapacityBound = 8 })
	w := NewWindow(cc, 4, 7) // reaches position 10, construction growth rejected
	if cc.Len() != 0 {
		t.Fatalf("growth past the bound must be rejected, Len=%d", cc.Len())
	}

	var got []int
	for v, ok := w.Next(); ok; v, ok = w.Next() {
		got = append(got, v)
	}
	if !slices.Equal(got, []int{28, 36}) {
		t.Fatalf("got %v want [28 36]", got)
	}
	if w.Cursor() != 0 {
		t.Fatalf("cursor=%d want 0", w.Cursor())
	}
}

func TestAllStopsAtBound(t *testing.T) {
	cc := newTestCache(t, func(o *Options) { o.CapacityBound = 8 })
	w := NewWindow(cc, 5, 6)
	if got := slices.Collect(w.All()); !slices.Equal(got, []int{21, 28, 36}) {
		t.Fatalf("got %v want [21 28 36]", got)
	}
}

func TestElemIsAbsolute(t *testing.T) {
	cc := newTestCache(t, nil)
	w := NewWindow(cc, 2, 5)
	if got := w.Elem(3); got != 6 {
		t.Fatalf("Elem(3)=%d want 6", got)
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("Elem past the materialized length must panic")
		}
	}()
	_ = w.Elem(7)
}
