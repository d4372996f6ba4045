// Package seq provides Seq, a lazy, chainable wrapper over any finite or
// infinite sequence of values.
//
// A Seq mirrors the familiar array API (Map, Filter, Flat, Slice, Reduce,
// IndexOf, Join, ...) but evaluates it lazily: non-terminal operations return
// a new Seq that pulls from its predecessor only when traversed, so pipelines
// over infinite sources terminate as long as something downstream stops
// pulling (Slice with non-negative bounds, Find, Includes, Every, Some).
//
// Operations that need random access, reverse order or the full length
// (Join, ReduceRight, LastIndexOf, and Slice, Fill or IndexOf with negative
// arguments) materialize the sequence into a slice first and therefore never
// return on infinite sources.
//
// Everything runs synchronously on the caller's goroutine. Panics raised by
// user callbacks are not recovered.
//
// NOTE: this package should have no dependencies outside the standard
// library.
package seq

import (
	"iter"
	"math"
)

// Version is the version of the sequence API this package implements.
const Version = "0.1.1"

// NoEnd is the default upper bound for Slice and Fill.
const NoEnd = math.MaxInt

// Infinite flattens every level when passed to Flat.
const Infinite = math.MaxInt

// Source is the typed iteration contract: All starts a fresh traversal.
// Whether a second traversal observes the same elements is up to the
// implementation.
type Source[T any] interface {
	All() iter.Seq[T]
}

// Iterable is the untyped iteration capability. Flat descends into nested
// elements that expose it.
type Iterable interface {
	Elements() iter.Seq[any]
}

// Seq is a lazy sequence of T. The zero value is an empty sequence.
//
// A Seq owns only the reference to its source; it never caches elements.
// Each traversal re-invokes the source, so a Seq built over a one-shot
// iterator is itself one-shot.
type Seq[T any] struct {
	all iter.Seq[T]
}

// Entry pairs an element with its position in the traversal.
type Entry[T any] struct {
	Index int
	Value T
}

// From wraps an iterator. The resulting Seq is restartable exactly when it is.
func From[T any](all iter.Seq[T]) *Seq[T] {
	return &Seq[T]{all: all}
}

// Wrap returns src as a Seq. A *Seq[T] is returned unchanged.
func Wrap[T any](src Source[T]) *Seq[T] {
	if s, ok := src.(*Seq[T]); ok {
		return s
	}
	return From(src.All())
}

// New normalizes src into a Seq of untyped elements:
//
//   - a non-negative integer N yields 0, 1, ..., N-1;
//   - a *Seq[any] is returned unchanged;
//   - an Iterable, a Source of any element type, a range function
//     func(func(X) bool) such as iter.Seq[X], or any slice or array is
//     wrapped.
//
// Anything else, including negative counts, strings, nil and typed nil
// values, fails with an error matching ErrInvalidArgument.
func New(src any) (*Seq[any], error) {
	if n, ok := asCount(src); ok {
		if n < 0 {
			return nil, newArgumentError("New", "argument is neither a count nor an iterable")
		}
		return Map(Count(n), func(v int, _ int) any { return v }), nil
	}
	if s, ok := src.(*Seq[any]); ok {
		return s, nil
	}
	if all, ok := elementsOf(src); ok {
		return From(all), nil
	}
	return nil, newArgumentError("New", "argument is neither a count nor an iterable")
}

// All returns the iterator over the sequence, starting a new traversal each
// time it is ranged over.
func (s *Seq[T]) All() iter.Seq[T] {
	if s == nil || s.all == nil {
		return func(func(T) bool) {}
	}
	return s.all
}

// Elements returns the sequence with its elements boxed as any.
func (s *Seq[T]) Elements() iter.Seq[any] {
	return func(yield func(any) bool) {
		for v := range s.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Values returns a new Seq over the same source.
func (s *Seq[T]) Values() *Seq[T] {
	return From(s.All())
}

// Enumerate returns the iterator over positions and elements.
func (s *Seq[T]) Enumerate() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for v := range s.All() {
			if !yield(i, v) {
				return
			}
			i++
		}
	}
}

// Entries returns a Seq of index/value pairs.
func Entries[T any](s *Seq[T]) *Seq[Entry[T]] {
	return Map(s, func(v T, i int) Entry[T] { return Entry[T]{Index: i, Value: v} })
}

// Keys returns a Seq of element positions.
func (s *Seq[T]) Keys() *Seq[int] {
	return Map(s, func(_ T, i int) int { return i })
}

func asCount(src any) (int, bool) {
	switch n := src.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		if n > math.MaxInt {
			return math.MaxInt, true
		}
		return int(n), true
	case uint:
		return clampUint(uint64(n)), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return clampUint(uint64(n)), true
	case uint64:
		return clampUint(n), true
	default:
		return 0, false
	}
}

func clampUint(n uint64) int {
	if n > math.MaxInt {
		return math.MaxInt
	}
	return int(n)
}
