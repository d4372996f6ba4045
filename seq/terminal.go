package seq

import (
	"fmt"
	"slices"
	"strings"
)

// Terminal operations consume the sequence and produce a final result.
// The ones that need the length, random access or reverse order collect the
// whole sequence into a slice first and never return on infinite input.

// DefaultSeparator is the conventional separator for Join.
const DefaultSeparator = ","

// ToSlice collects every element into a new slice, in traversal order.
func (s *Seq[T]) ToSlice() []T {
	return slices.Collect(s.All())
}

// Collect collects every element of src into a new slice.
func Collect[T any](src Source[T]) []T {
	return Wrap(src).ToSlice()
}

// IndexOf returns the position of the first element equal to v, or -1.
// It stops pulling as soon as v is found.
func IndexOf[T comparable](s *Seq[T], v T) int {
	return IndexOfFrom(s, v, 0)
}

// IndexOfFrom is IndexOf starting at position from. A non-negative from
// keeps the search lazy; a negative from counts from the end and
// materializes s.
func IndexOfFrom[T comparable](s *Seq[T], v T, from int) int {
	if from < 0 {
		items := s.ToSlice()
		for i := relativeIndex(from, len(items)); i < len(items); i++ {
			if items[i] == v {
				return i
			}
		}
		return -1
	}
	return s.FindIndex(func(x T, i int) bool { return i >= from && x == v })
}

// Includes reports whether some element equals v.
func Includes[T comparable](s *Seq[T], v T) bool {
	return IndexOf(s, v) >= 0
}

// IncludesFrom reports whether some element at or after from equals v.
func IncludesFrom[T comparable](s *Seq[T], v T, from int) bool {
	return IndexOfFrom(s, v, from) >= 0
}

// LastIndexOf returns the position of the last element equal to v, or -1.
func LastIndexOf[T comparable](s *Seq[T], v T) int {
	return LastIndexOfFrom(s, v, NoEnd)
}

// LastIndexOfFrom searches backward for v starting at position from.
// A negative from counts from the end.
func LastIndexOfFrom[T comparable](s *Seq[T], v T, from int) int {
	items := s.ToSlice()
	k := min(from, len(items)-1)
	if from < 0 {
		k = len(items) + from
	}
	for ; k >= 0; k-- {
		if items[k] == v {
			return k
		}
	}
	return -1
}

// Join renders every element with fmt.Sprint and concatenates them with sep
// in between. nil elements, including typed nil pointers, slices, maps and
// funcs, render as the empty string.
func (s *Seq[T]) Join(sep string) string {
	items := s.ToSlice()
	var sb strings.Builder
	for i, v := range items {
		if i > 0 {
			sb.WriteString(sep)
		}
		if !isNil(v) {
			sb.WriteString(fmt.Sprint(v))
		}
	}
	return sb.String()
}

// String joins the elements without a separator. Formatting a Seq with the
// fmt verbs therefore traverses it.
func (s *Seq[T]) String() string {
	return s.Join("")
}

// Reduce folds the sequence from the left using the first element as the
// initial accumulator; fn is called from position 1 on. It fails with
// ErrInvalidArgument when the sequence is empty.
func (s *Seq[T]) Reduce(fn func(acc, value T, index int) T) (T, error) {
	var (
		acc    T
		seeded bool
	)
	for i, v := range s.Enumerate() {
		if !seeded {
			acc, seeded = v, true
			continue
		}
		acc = fn(acc, v, i)
	}
	if !seeded {
		return acc, errEmptyReduce("Reduce")
	}
	return acc, nil
}

// Reduce folds s from the left starting from initial, in a single pass.
func Reduce[T, A any](s *Seq[T], fn func(acc A, value T, index int) A, initial A) A {
	acc := initial
	for i, v := range s.Enumerate() {
		acc = fn(acc, v, i)
	}
	return acc
}

// ReduceRight folds the sequence from the right using the last element as the
// initial accumulator. It materializes s and fails with ErrInvalidArgument
// when the sequence is empty.
func (s *Seq[T]) ReduceRight(fn func(acc, value T, index int) T) (T, error) {
	items := s.ToSlice()
	if len(items) == 0 {
		var zero T
		return zero, errEmptyReduce("ReduceRight")
	}
	acc := items[len(items)-1]
	for i := len(items) - 2; i >= 0; i-- {
		acc = fn(acc, items[i], i)
	}
	return acc, nil
}

// ReduceRight folds s from the right starting from initial. It materializes s.
func ReduceRight[T, A any](s *Seq[T], fn func(acc A, value T, index int) A, initial A) A {
	items := s.ToSlice()
	acc := initial
	for i := len(items) - 1; i >= 0; i-- {
		acc = fn(acc, items[i], i)
	}
	return acc
}
