package schemagen

import "iter"

// Iter is a lazy, finite sequence over a slice of stored values. It reads
// the slice captured at construction; each accessor call returns a fresh
// Iter starting at the first element.
type Iter[T any] struct {
	items []T
	pos   int
}

// NewIter returns a sequence over items.
func NewIter[T any](items []T) *Iter[T] {
	return &Iter[T]{items: items}
}

// Next returns the next element and true, or the zero value and false when
// the sequence is exhausted.
func (it *Iter[T]) Next() (T, bool) {
	if it.pos >= len(it.items) {
		var zero T
		return zero, false
	}
	v := it.items[it.pos]
	it.pos++
	return v, true
}

// Len returns the number of remaining elements.
func (it *Iter[T]) Len() int {
	return len(it.items) - it.pos
}

// All returns the remaining elements as a range-over-func sequence,
// advancing the iterator as they are consumed.
func (it *Iter[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Collect drains the iterator into a slice.
func (it *Iter[T]) Collect() []T {
	out := make([]T, 0, it.Len())
	for v := range it.All() {
		out = append(out, v)
	}
	return out
}
