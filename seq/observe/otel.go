package observe

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/lguimbarda/min-seq/seq"
)

// Instruments records seq traversals through OpenTelemetry.
//
// It creates three instruments:
//   - <prefix>.elements: Int64Counter of values pulled
//   - <prefix>.traversals: Int64Counter of traversals started
//   - <prefix>.traversal.length: Int64Histogram of values per traversal,
//     with a "stopped" attribute telling early stops from exhaustion
type Instruments struct {
	elements   metric.Int64Counter
	traversals metric.Int64Counter
	length     metric.Int64Histogram
	attrs      attribute.Set
	exhausted  attribute.Set
	stopped    attribute.Set
}

// NewInstruments creates the instruments on meter.
func NewInstruments(meter metric.Meter, opts ...Option) (*Instruments, error) {
	cfg := applyOptions(opts...)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	elements, err := meter.Int64Counter(cfg.Prefix+".elements",
		metric.WithDescription("number of values pulled from sequences"),
		metric.WithUnit("{value}"))
	if err != nil {
		return nil, fmt.Errorf("observe: create elements counter: %w", err)
	}
	traversals, err := meter.Int64Counter(cfg.Prefix+".traversals",
		metric.WithDescription("number of sequence traversals started"),
		metric.WithUnit("{traversal}"))
	if err != nil {
		return nil, fmt.Errorf("observe: create traversals counter: %w", err)
	}
	length, err := meter.Int64Histogram(cfg.Prefix+".traversal.length",
		metric.WithDescription("number of values pulled per traversal"),
		metric.WithUnit("{value}"))
	if err != nil {
		return nil, fmt.Errorf("observe: create traversal length histogram: %w", err)
	}

	return &Instruments{
		elements:   elements,
		traversals: traversals,
		length:     length,
		attrs:      attribute.NewSet(cfg.Attributes...),
		exhausted:  withStopped(cfg.Attributes, false),
		stopped:    withStopped(cfg.Attributes, true),
	}, nil
}

// Instrument returns hooks for Seq[T] that record into ins. Measurements are
// made against ctx.
func Instrument[T any](ctx context.Context, ins *Instruments) seq.Hooks[T] {
	set := metric.WithAttributeSet(ins.attrs)
	exhausted := metric.WithAttributeSet(ins.exhausted)
	stopped := metric.WithAttributeSet(ins.stopped)
	return seq.Hooks[T]{
		OnStart:    func() { ins.traversals.Add(ctx, 1, set) },
		OnValue:    func(T) { ins.elements.Add(ctx, 1, set) },
		OnComplete: func(n int) { ins.length.Record(ctx, int64(n), exhausted) },
		OnStop:     func(n int) { ins.length.Record(ctx, int64(n), stopped) },
	}
}

func withStopped(attrs []attribute.KeyValue, stopped bool) attribute.Set {
	kvs := make([]attribute.KeyValue, 0, len(attrs)+1)
	kvs = append(kvs, attrs...)
	kvs = append(kvs, attribute.Bool("stopped", stopped))
	return attribute.NewSet(kvs...)
}
