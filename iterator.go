package tricache

// Iterator is a checked cursor over an absolute 0-based term index.
// Two iterators are equal when their indices are equal.
//
// Moving or reading grows the source as needed. Moving past the capacity bound
// returns ErrIteratorOverflow, which callers must treat as the end of the
// representable sequence.
type Iterator struct {
	src   TermSource
	index int
}

// NewIterator returns an iterator at index over src.
func NewIterator(src TermSource, index int) Iterator {
	return Iterator{src: src, index: index}
}

func (it Iterator) Index() int { return it.index }

func (it Iterator) Equal(o Iterator) bool { return it.index == o.index }

// Value returns the term at the iterator's index.
func (it Iterator) Value() (int, error) {
	if err := it.check(); err != nil {
		return 0, err
	}
	// index == bound is a valid end position but holds no term
	if it.index >= it.src.Len() {
		return 0, ErrIteratorOverflow
	}
	return it.src.Term(it.index), nil
}

// Next advances the iterator (pre-increment).
func (it *Iterator) Next() error {
	it.index++
	return it.check()
}

// PostNext advances the iterator and returns its previous position (post-increment).
func (it *Iterator) PostNext() (Iterator, error) {
	prev := *it
	err := it.Next()
	return prev, err
}

type overflowReporter interface {
	reportOverflow(index int)
}

func (it Iterator) check() error {
	bound := it.src.Bound()
	if it.index > bound {
		if r, ok := it.src.(overflowReporter); ok {
			r.reportOverflow(it.index)
		}
		return ErrIteratorOverflow
	}
	if it.index >= it.src.Len() {
		_ = it.src.EnsureLength(min(it.index+1, bound))
	}
	return nil
}
