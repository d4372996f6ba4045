package seq

import "slices"

// FromSlice creates a restartable Seq over the elements of items.
// The slice is not copied; later writes to it are visible to new traversals.
func FromSlice[T any](items []T) *Seq[T] {
	return From(slices.Values(items))
}

// Of creates a restartable Seq over the given values.
func Of[T any](values ...T) *Seq[T] {
	return FromSlice(values)
}

// Empty creates a Seq that yields nothing.
func Empty[T any]() *Seq[T] {
	return From(func(func(T) bool) {})
}

// Count creates a Seq over 0, 1, ..., n-1. A non-positive n yields nothing.
func Count(n int) *Seq[int] {
	return Range(0, n)
}

// Range creates a Seq of integers from start (inclusive) to end (exclusive).
// If start >= end the sequence is empty.
func Range(start, end int) *Seq[int] {
	return From(func(yield func(int) bool) {
		for i := start; i < end; i++ {
			if !yield(i) {
				return
			}
		}
	})
}

// Naturals creates the infinite sequence 0, 1, 2, ...
func Naturals() *Seq[int] {
	return Iterate(0, func(n int) int { return n + 1 })
}

// Iterate creates the infinite sequence seed, fn(seed), fn(fn(seed)), ...
func Iterate[T any](seed T, fn func(T) T) *Seq[T] {
	return From(func(yield func(T) bool) {
		for v := seed; ; v = fn(v) {
			if !yield(v) {
				return
			}
		}
	})
}

// Repeat creates a Seq that yields value n times.
// If n is negative, the sequence repeats indefinitely.
func Repeat[T any](value T, n int) *Seq[T] {
	return From(func(yield func(T) bool) {
		for count := 0; n < 0 || count < n; count++ {
			if !yield(value) {
				return
			}
		}
	})
}

// Generate creates a Seq that pulls values from fn until it returns false.
// fn carries its own state, so the sequence is one-shot unless fn resets itself.
func Generate[T any](fn func() (T, bool)) *Seq[T] {
	return From(func(yield func(T) bool) {
		for {
			v, ok := fn()
			if !ok || !yield(v) {
				return
			}
		}
	})
}
