// SPDX-License-Identifier: MIT

// Package matrix - range algorithms over [first, last).
//
// These helpers are written purely against the iterator algebra (Add, Diff,
// Index, Ref), so they behave exactly as the same algorithm over a slice
// holding the matrix elements in that traversal order.

package matrix

import (
	"cmp"
	"iter"
	"sort"
)

// Find returns the first iterator in [first, last) whose element equals v, or last.
func Find[T comparable, O Traversal](first, last Iterator[T, O], v T) Iterator[T, O] {
	return FindFunc(first, last, func(x T) bool { return x == v })
}

// FindFunc returns the first iterator in [first, last) satisfying pred, or last.
func FindFunc[T any, O Traversal](first, last Iterator[T, O], pred func(T) bool) Iterator[T, O] {
	for it := first; it.Less(last); it.Inc() {
		if pred(it.Value()) {
			return it
		}
	}

	return last
}

// Count returns how many elements of [first, last) equal v.
func Count[T comparable, O Traversal](first, last Iterator[T, O], v T) int {
	return CountFunc(first, last, func(x T) bool { return x == v })
}

// CountFunc returns how many elements of [first, last) satisfy pred.
func CountFunc[T any, O Traversal](first, last Iterator[T, O], pred func(T) bool) int {
	n := 0
	for it := first; it.Less(last); it.Inc() {
		if pred(it.Value()) {
			n++
		}
	}

	return n
}

// Collect copies [first, last) into a new slice.
func Collect[T any, O Traversal](first, last Iterator[T, O]) []T {
	out := make([]T, 0, max(last.Diff(first), 0))
	for it := first; it.Less(last); it.Inc() {
		out = append(out, it.Value())
	}

	return out
}

// Fill writes v into every cell of [first, last).
func Fill[T any, O Traversal](first, last Iterator[T, O], v T) {
	for it := first; it.Less(last); it.Inc() {
		it.Set(v)
	}
}

// Values returns a range-over-func sequence of [first, last).
func Values[T any, O Traversal](first, last Iterator[T, O]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := first; it.Less(last); it.Inc() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// All returns the elements in Z (row-major) order as (row, col) -> value pairs.
func (m *Matrix[T]) All() iter.Seq2[[2]int, T] {
	return func(yield func([2]int, T) bool) {
		for r := 0; r < m.row.size; r++ {
			for c, v := range m.liveRow(r) {
				if !yield([2]int{r, c}, v) {
					return
				}
			}
		}
	}
}

// rangeSorter adapts [first, first+n) to sort.Interface via random access.
type rangeSorter[T any, O Traversal] struct {
	first Iterator[T, O]
	n     int
	cmp   func(a, b T) int
}

func (s rangeSorter[T, O]) Len() int { return s.n }

func (s rangeSorter[T, O]) Less(i, j int) bool {
	return s.cmp(s.first.Index(i), s.first.Index(j)) < 0
}

func (s rangeSorter[T, O]) Swap(i, j int) {
	a, b := s.first.Add(i).Ref(), s.first.Add(j).Ref()
	*a, *b = *b, *a
}

// SortRange sorts [first, last) ascending in the iterator's order.
func SortRange[T cmp.Ordered, O Traversal](first, last Iterator[T, O]) {
	SortRangeFunc(first, last, cmp.Compare[T])
}

// SortRangeFunc sorts [first, last) with cmp (negative when a < b).
func SortRangeFunc[T any, O Traversal](first, last Iterator[T, O], cmp func(a, b T) int) {
	n := last.Diff(first)
	if n <= 1 {
		return
	}
	sort.Sort(rangeSorter[T, O]{first: first, n: n, cmp: cmp})
}
