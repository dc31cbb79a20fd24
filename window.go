package tricache

import "iter"

// Window is a view of length terms starting at 1-based position offset.
// It owns no terms; reads go through its Cache, which grows on demand.
//
// A Window is a value. Copying it with = keeps the copy's cursor, while Assign
// resets the cursor to 1. A single Window must not be stepped from several
// goroutines at once.
type Window struct {
	src    *Cache
	length int
	offset int
	cursor int // next 1-based position for Next; 0 = exhausted
}

// NewWindow returns a window over c (Default() if c is nil). Non-positive
// length and offset are normalized to 1. The cache is grown to cover the window;
// a window reaching past the capacity bound is still returned, but reads beyond
// the bound fail.
func NewWindow(c *Cache, length, offset int) Window {
	if c == nil {
		c = Default()
	}
	w := Window{src: c, length: max(length, 1), offset: max(offset, 1)}
	w.cursor = w.offset
	_ = c.EnsureLength(w.offset + w.length - 1) // logged by the cache
	return w
}

func (w Window) Length() int   { return w.length }
func (w Window) Offset() int   { return w.offset }
func (w Window) Cursor() int   { return w.cursor }
func (w Window) Cache() *Cache { return w.src }

// SetLength changes the length without growing the cache or moving the cursor.
// Negative lengths are stored as 0 (an empty window).
func (w *Window) SetLength(n int) { w.length = max(n, 0) }

// SetOffset changes the offset without growing the cache or moving the cursor.
// Non-positive offsets are stored as 1.
func (w *Window) SetOffset(n int) { w.offset = max(n, 1) }

// Elem returns the term at 1-based position pos of the whole sequence (not
// relative to the window). pos must already be materialized.
func (w Window) Elem(pos int) int { return w.src.Term(pos - 1) }

// Next returns the term at the cursor and advances it. It returns false once
// the cursor passes the end of the window, and keeps returning false until
// ResetCursor or Rewind.
func (w *Window) Next() (int, bool) {
	if w.cursor == 0 {
		return 0, false
	}
	if w.cursor < w.offset+w.length {
		// setters defer growth to here
		if w.cursor > w.src.Len() {
			if err := w.src.EnsureLength(w.cursor); err != nil {
				w.cursor = 0
				return 0, false
			}
		}
		v := w.src.Term(w.cursor - 1)
		w.cursor++
		return v, true
	}
	w.cursor = 0
	return 0, false
}

// ResetCursor moves the cursor to position 1 of the sequence, not to the start
// of the window. Kept for compatibility; use Rewind to restart the window.
func (w *Window) ResetCursor() { w.cursor = 1 }

// Rewind moves the cursor to the first position of the window.
func (w *Window) Rewind() { w.cursor = w.offset }

// Assign copies src's cache, length and offset into w and resets the cursor to 1.
func (w *Window) Assign(src Window) {
	w.src = src.src
	w.length = src.length
	w.offset = src.offset
	w.cursor = 1
}

// Begin returns an iterator at the first term of the window.
func (w Window) Begin() Iterator { return Iterator{src: w.src, index: w.offset - 1} }

// End returns the iterator one past the last term of the window.
func (w Window) End() Iterator { return Iterator{src: w.src, index: w.offset + w.length - 1} }

// All yields the window's terms from Begin to End. It stops early if the
// window reaches past the capacity bound.
func (w Window) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for it, end := w.Begin(), w.End(); !it.Equal(end); {
			v, err := it.Value()
			if err != nil || !yield(v) {
				return
			}
			if it.Next() != nil {
				return
			}
		}
	}
}

// Sum adds the terms w.Next yields after ResetCursor. An empty window sums to
// 0 and its cursor is left alone.
func Sum(w *Window) int {
	if w.Length() == 0 {
		return 0
	}
	sum := 0
	w.ResetCursor()
	for v, ok := w.Next(); ok; v, ok = w.Next() {
		sum += v
	}
	return sum
}
