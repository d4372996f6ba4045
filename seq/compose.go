package seq

// Operator turns one Seq into another of the same element type.
type Operator[T any] func(*Seq[T]) *Seq[T]

// Pipe applies ops to s from left to right and returns the final Seq.
func Pipe[T any](s *Seq[T], ops ...Operator[T]) *Seq[T] {
	for _, op := range ops {
		s = op(s)
	}
	return s
}

// Chain composes ops into a single Operator applied from left to right.
// With no ops it returns the identity.
func Chain[T any](ops ...Operator[T]) Operator[T] {
	return func(s *Seq[T]) *Seq[T] {
		return Pipe(s, ops...)
	}
}

// Mapping lifts a Mapper into an Operator.
func Mapping[T any](fn Mapper[T, T]) Operator[T] {
	return func(s *Seq[T]) *Seq[T] { return s.Map(fn) }
}

// Filtering lifts a Predicate into an Operator.
func Filtering[T any](pred Predicate[T]) Operator[T] {
	return func(s *Seq[T]) *Seq[T] { return s.Filter(pred) }
}

// Slicing returns an Operator that applies Slice(start, end).
func Slicing[T any](start, end int) Operator[T] {
	return func(s *Seq[T]) *Seq[T] { return s.Slice(start, end) }
}
