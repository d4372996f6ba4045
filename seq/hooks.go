package seq

// Hooks holds typed observation callbacks for the traversals of a Seq.
// All fields are optional; nil means no observation for that event.
// Hooks run synchronously inside the traversal, so they should be fast.
type Hooks[T any] struct {
	OnStart    func()    // Traversal begins
	OnValue    func(T)   // Element pulled from the source
	OnComplete func(int) // Source exhausted, with the number of elements seen
	OnStop     func(int) // Consumer stopped early, with the number of elements seen
}

// Observe returns a Seq that yields the elements of s unchanged and invokes
// hooks on every traversal. Multiple hook sets are invoked in the order
// given. Nothing is invoked until the result is traversed.
func Observe[T any](s *Seq[T], hooks ...Hooks[T]) *Seq[T] {
	inv := newHookInvoker(hooks)
	if inv.empty() {
		return s
	}
	return From(func(yield func(T) bool) {
		inv.invokeStart()
		n := 0
		for v := range s.All() {
			n++
			inv.invokeValue(v)
			if !yield(v) {
				inv.invokeStop(n)
				return
			}
		}
		inv.invokeComplete(n)
	})
}

// hookInvoker caches which hook kinds are present so a traversal does not
// walk every hook set for events nobody observes.
type hookInvoker[T any] struct {
	hookSets    []Hooks[T]
	hasStart    bool
	hasValue    bool
	hasComplete bool
	hasStop     bool
}

func newHookInvoker[T any](hooks []Hooks[T]) *hookInvoker[T] {
	inv := &hookInvoker[T]{hookSets: hooks}
	for _, h := range hooks {
		inv.hasStart = inv.hasStart || h.OnStart != nil
		inv.hasValue = inv.hasValue || h.OnValue != nil
		inv.hasComplete = inv.hasComplete || h.OnComplete != nil
		inv.hasStop = inv.hasStop || h.OnStop != nil
	}
	return inv
}

func (h *hookInvoker[T]) empty() bool {
	return !h.hasStart && !h.hasValue && !h.hasComplete && !h.hasStop
}

func (h *hookInvoker[T]) invokeStart() {
	if !h.hasStart {
		return
	}
	for _, hooks := range h.hookSets {
		if hooks.OnStart != nil {
			hooks.OnStart()
		}
	}
}

func (h *hookInvoker[T]) invokeValue(v T) {
	if !h.hasValue {
		return
	}
	for _, hooks := range h.hookSets {
		if hooks.OnValue != nil {
			hooks.OnValue(v)
		}
	}
}

func (h *hookInvoker[T]) invokeComplete(n int) {
	if !h.hasComplete {
		return
	}
	for _, hooks := range h.hookSets {
		if hooks.OnComplete != nil {
			hooks.OnComplete(n)
		}
	}
}

func (h *hookInvoker[T]) invokeStop(n int) {
	if !h.hasStop {
		return
	}
	for _, hooks := range h.hookSets {
		if hooks.OnStop != nil {
			hooks.OnStop(n)
		}
	}
}
