package seq

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the only error kind raised by this package. It is
// returned by New for inputs that are neither a count nor an iterable, and by
// Reduce and ReduceRight on an empty sequence without an initial value.
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError describes which operation rejected its input and why.
// It matches ErrInvalidArgument under errors.Is.
type ArgumentError struct {
	Op     string
	Reason string
}

func newArgumentError(op, reason string) *ArgumentError {
	return &ArgumentError{Op: op, Reason: reason}
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("seq: %s: %s", e.Op, e.Reason)
}

// Unwrap returns ErrInvalidArgument.
func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// errEmptyReduce is returned when folding an empty sequence with no seed.
func errEmptyReduce(op string) error {
	return newArgumentError(op, "reduce of empty sequence with no initial value")
}
