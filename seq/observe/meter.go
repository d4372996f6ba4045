package observe

import (
	"time"

	"github.com/lguimbarda/min-seq/seq"
)

// TraversalMetrics holds statistics about one traversal of a Seq.
type TraversalMetrics struct {
	Values  int64
	Stopped bool // the consumer ended the traversal before the source was exhausted

	// Timing
	StartTime     time.Time
	EndTime       time.Time
	FirstItemTime time.Time
	LastItemTime  time.Time

	// Throughput
	ItemsPerSecond float64

	// Latency between consecutive values
	MinLatency time.Duration
	MaxLatency time.Duration
	AvgLatency time.Duration
}

// traversal is the in-flight state of one measured traversal.
type traversal struct {
	metrics      TraversalMetrics
	totalLatency time.Duration
}

func (tr *traversal) observe(now time.Time) {
	m := &tr.metrics
	m.Values++
	if m.Values == 1 {
		m.FirstItemTime = now
	} else {
		latency := now.Sub(m.LastItemTime)
		m.MinLatency = min(m.MinLatency, latency)
		m.MaxLatency = max(m.MaxLatency, latency)
		tr.totalLatency += latency
	}
	m.LastItemTime = now
}

func (tr *traversal) finish(stopped bool) TraversalMetrics {
	m := tr.metrics
	m.EndTime = time.Now()
	m.Stopped = stopped
	if m.Values > 0 {
		if d := m.EndTime.Sub(m.StartTime).Seconds(); d > 0 {
			m.ItemsPerSecond = float64(m.Values) / d
		}
	}
	if m.Values > 1 {
		m.AvgLatency = tr.totalLatency / time.Duration(m.Values-1)
	} else {
		m.MinLatency = 0
	}
	return m
}

// Meter returns hooks that measure every traversal and hand the result to
// onComplete when the traversal ends, whether exhausted or stopped.
//
// Each traversal is measured on its own, including traversals of the same
// Seq started from inside another one (a predicate that searches the
// sequence it filters). Values are attributed to the most recently started
// traversal that has not ended yet.
func Meter[T any](onComplete func(TraversalMetrics)) seq.Hooks[T] {
	var active []*traversal

	end := func(stopped bool) {
		if len(active) == 0 {
			return
		}
		tr := active[len(active)-1]
		active = active[:len(active)-1]
		if onComplete != nil {
			onComplete(tr.finish(stopped))
		}
	}

	return seq.Hooks[T]{
		OnStart: func() {
			active = append(active, &traversal{metrics: TraversalMetrics{
				StartTime:  time.Now(),
				MinLatency: time.Duration(1<<63 - 1),
			}})
		},
		OnValue: func(T) {
			if len(active) > 0 {
				active[len(active)-1].observe(time.Now())
			}
		},
		OnComplete: func(int) { end(false) },
		OnStop:     func(int) { end(true) },
	}
}
