// Package observe provides observers for seq traversals: logging, counting,
// per-traversal metrics and OpenTelemetry instruments.
//
// Every observer is expressed as a seq.Hooks value and attached with
// seq.Observe:
//
//	hooks, counter := observe.WithCounter[int]()
//	s := seq.Observe(seq.Naturals(), hooks).Slice(0, 10)
//	s.ToSlice()
//	counter.Values() // 10
package observe

import (
	"sync/atomic"

	"github.com/lguimbarda/min-seq/seq"
)

// Logger is a function type for logging messages, compatible with log.Printf
// and testing.T.Logf.
type Logger func(format string, args ...any)

// WithLogging returns hooks that log every traversal event of a Seq[T].
func WithLogging[T any](logger Logger) seq.Hooks[T] {
	return seq.Hooks[T]{
		OnStart: func() {
			logger("traversal started")
		},
		OnValue: func(v T) {
			logger("value: %v", v)
		},
		OnComplete: func(n int) {
			logger("traversal completed after %d values", n)
		},
		OnStop: func(n int) {
			logger("traversal stopped after %d values", n)
		},
	}
}

// Counter counts traversals and values. It may be read from any goroutine.
type Counter struct {
	traversals atomic.Int64
	values     atomic.Int64
	stops      atomic.Int64
}

// Traversals returns the number of traversals started.
func (c *Counter) Traversals() int64 { return c.traversals.Load() }

// Values returns the number of values pulled across all traversals.
func (c *Counter) Values() int64 { return c.values.Load() }

// Stops returns the number of traversals the consumer ended early.
func (c *Counter) Stops() int64 { return c.stops.Load() }

// WithCounter returns counting hooks for Seq[T] and the counter they update.
func WithCounter[T any]() (seq.Hooks[T], *Counter) {
	counter := &Counter{}
	hooks := seq.Hooks[T]{
		OnStart: func() { counter.traversals.Add(1) },
		OnValue: func(T) { counter.values.Add(1) },
		OnStop:  func(int) { counter.stops.Add(1) },
	}
	return hooks, counter
}

// WithValueHook returns hooks that call fn for every value pulled.
func WithValueHook[T any](fn func(T)) seq.Hooks[T] {
	return seq.Hooks[T]{OnValue: fn}
}
