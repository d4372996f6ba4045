package seq

import "iter"

// Mapper transforms an element and its position into a new value.
type Mapper[T, U any] func(value T, index int) U

// Predicate reports whether an element at the given position matches.
type Predicate[T any] func(value T, index int) bool

// Map returns a Seq that yields fn(value, index) for every element of s.
// fn is called only as elements are pulled; the index restarts at 0 on every
// traversal.
func Map[T, U any](s *Seq[T], fn Mapper[T, U]) *Seq[U] {
	return From(mapAll(s.All(), fn))
}

// Map is the same-type form of the package-level Map, for chaining.
func (s *Seq[T]) Map(fn Mapper[T, T]) *Seq[T] {
	return Map(s, fn)
}

// Flatten splices every inner sequence of s into a single sequence.
// nil inner sequences are skipped.
func Flatten[T any](s *Seq[Source[T]]) *Seq[T] {
	return From(flattenAll(s.All()))
}

// FlatMap maps every element to a sequence and splices the results,
// equivalent to Flatten(Map(s, fn)).
func FlatMap[T, U any](s *Seq[T], fn Mapper[T, Source[U]]) *Seq[U] {
	return From(flattenAll(mapAll(s.All(), fn)))
}

// FlatMap is the same-type form of the package-level FlatMap.
func (s *Seq[T]) FlatMap(fn Mapper[T, Source[T]]) *Seq[T] {
	return FlatMap(s, fn)
}

// Flat flattens nested elements up to depth levels, depth first and left to
// right. An element is nested when it is non-nil and exposes the iteration
// capability (see New); strings and typed nil values such as a nil *Seq are
// never descended into. A depth of 0 or
// less returns the elements unchanged, Infinite flattens completely.
func (s *Seq[T]) Flat(depth int) *Seq[any] {
	return From(func(yield func(any) bool) {
		flatten(s.Elements(), depth, yield)
	})
}

// Methods of Seq[T] must not instantiate Seq[Source[T]] or Seq[Entry[T]],
// even indirectly (instantiation cycle). They go through the iterator-level
// primitives below instead.

// mapAll is the lazy core of Map.
func mapAll[T, U any](all iter.Seq[T], fn Mapper[T, U]) iter.Seq[U] {
	return func(yield func(U) bool) {
		i := 0
		for v := range all {
			if !yield(fn(v, i)) {
				return
			}
			i++
		}
	}
}

// flattenAll splices one level of typed sources.
func flattenAll[T any](all iter.Seq[Source[T]]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for inner := range all {
			if inner == nil {
				continue
			}
			for v := range inner.All() {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// flatten yields the elements of all, descending depth levels. It returns
// false once yield has asked to stop.
func flatten(all iter.Seq[any], depth int, yield func(any) bool) bool {
	for v := range all {
		if depth > 0 {
			if inner, ok := elementsOf(v); ok {
				if !flatten(inner, depth-1, yield) {
					return false
				}
				continue
			}
		}
		if !yield(v) {
			return false
		}
	}
	return true
}
