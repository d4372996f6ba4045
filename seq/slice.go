package seq

import "slices"

// Slice returns the elements with positions in [start, end).
//
// With non-negative bounds the result is lazy and stops pulling from s once
// the element at end-1 has been yielded, so it is safe on infinite
// sequences. A negative bound counts from the end of the sequence; s is then
// materialized immediately and the result is backed by the collected slice.
func (s *Seq[T]) Slice(start, end int) *Seq[T] {
	if start < 0 || end < 0 {
		items := s.ToSlice()
		from, to := relativeIndex(start, len(items)), relativeIndex(end, len(items))
		if from >= to {
			return Empty[T]()
		}
		return FromSlice(items[from:to])
	}
	return From(func(yield func(T) bool) {
		if start >= end {
			return
		}
		i := 0
		for v := range s.All() {
			if i >= start && !yield(v) {
				return
			}
			i++
			if i >= end {
				return
			}
		}
	})
}

// SliceFrom returns the elements from position start on. It is shorthand for
// Slice(start, NoEnd).
func (s *Seq[T]) SliceFrom(start int) *Seq[T] {
	return s.Slice(start, NoEnd)
}

// Fill replaces the elements with positions in [start, end) by value.
//
// With non-negative bounds the replacement happens lazily while mapping.
// A negative bound counts from the end of the sequence; s is then
// materialized immediately.
func (s *Seq[T]) Fill(value T, start, end int) *Seq[T] {
	if start < 0 || end < 0 {
		items := s.ToSlice()
		from, to := relativeIndex(start, len(items)), relativeIndex(end, len(items))
		for i := from; i < to; i++ {
			items[i] = value
		}
		return FromSlice(items)
	}
	return Map(s, func(v T, i int) T {
		if i >= start && i < end {
			return value
		}
		return v
	})
}

// FillAll replaces every element by value.
func (s *Seq[T]) FillAll(value T) *Seq[T] {
	return s.Fill(value, 0, NoEnd)
}

// Concat returns s followed by each of items.
func (s *Seq[T]) Concat(items ...Source[T]) *Seq[T] {
	sources := make([]Source[T], 0, len(items)+1)
	sources = append(sources, s)
	sources = append(sources, items...)
	return From(flattenAll(slices.Values(sources)))
}

// ConcatAny returns s followed by each of items. Items exposing the
// iteration capability are spliced in one level deep; anything else is
// appended as a single element.
func ConcatAny[T any](s *Seq[T], items ...any) *Seq[any] {
	all := make([]any, 0, len(items)+1)
	all = append(all, s)
	all = append(all, items...)
	return FromSlice(all).Flat(1)
}

// relativeIndex resolves k against a sequence of length n the way array
// slicing does: negative values count from the end and the result is
// clamped to [0, n].
func relativeIndex(k, n int) int {
	if k < 0 {
		return max(n+k, 0)
	}
	return min(k, n)
}
