package seq

// Filter returns the elements for which pred reports true, in order.
func (s *Seq[T]) Filter(pred Predicate[T]) *Seq[T] {
	return s.FlatMap(func(v T, i int) Source[T] {
		if pred(v, i) {
			return Of(v)
		}
		return Empty[T]()
	})
}

// Every reports whether pred holds for every element. It stops at the first
// element for which it does not. An empty sequence yields true.
func (s *Seq[T]) Every(pred Predicate[T]) bool {
	return !Includes(Map(s, Mapper[T, bool](pred)), false)
}

// Some reports whether pred holds for at least one element. It stops at the
// first element for which it does. An empty sequence yields false.
func (s *Seq[T]) Some(pred Predicate[T]) bool {
	return Includes(Map(s, Mapper[T, bool](pred)), true)
}

// ForEach calls fn for every element, in order.
func (s *Seq[T]) ForEach(fn func(value T, index int)) {
	visited := Map(s, func(v T, i int) bool {
		fn(v, i)
		return false
	})
	IndexOf(visited, true)
}

// Find returns the first element matching pred. ok is false when no element
// matches.
func (s *Seq[T]) Find(pred Predicate[T]) (value T, ok bool) {
	for i, v := range s.Enumerate() {
		if pred(v, i) {
			return v, true
		}
	}
	return value, false
}

// FindIndex returns the position of the first element matching pred, or -1.
func (s *Seq[T]) FindIndex(pred Predicate[T]) int {
	for i, v := range s.Enumerate() {
		if pred(v, i) {
			return i
		}
	}
	return -1
}
