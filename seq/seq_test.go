package seq_test

import (
	"errors"
	"iter"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lguimbarda/min-seq/seq"
)

func assertSlice[T any](t *testing.T, want, got []T) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

// pullCounter returns the infinite sequence 0, 1, 2, ... and a pointer to the
// number of elements pulled from it so far.
func pullCounter() (*seq.Seq[int], *int) {
	pulled := 0
	return seq.From(func(yield func(int) bool) {
		for i := 0; ; i++ {
			pulled++
			if !yield(i) {
				return
			}
		}
	}), &pulled
}

type listSource []int

func (l listSource) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, v := range l {
			if !yield(v) {
				return
			}
		}
	}
}

// pairSource is a non-slice Source.
type pairSource struct{ first, second int }

func (p pairSource) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		_ = yield(p.first) && yield(p.second)
	}
}

// badSource has an All method of the wrong shape.
type badSource struct{}

func (badSource) All() []int { return []int{1} }

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  []any
	}{
		{"count", 3, []any{0, 1, 2}},
		{"zero count", 0, []any{}},
		{"unsigned count", uint8(2), []any{0, 1}},
		{"slice of any", []any{"a", 1}, []any{"a", 1}},
		{"typed slice", []int{4, 5}, []any{4, 5}},
		{"array", [2]string{"x", "y"}, []any{"x", "y"}},
		{"typed seq", seq.Of(7, 8), []any{7, 8}},
		{"iterator", iter.Seq[any](func(yield func(any) bool) { yield(true) }), []any{true}},
		{"struct source", pairSource{1, 2}, []any{1, 2}},
		{"pointer source", &pairSource{3, 4}, []any{3, 4}},
		{"typed iterator", slices.Values([]string{"a", "b"}), []any{"a", "b"}},
		{"range func", func(yield func(float64) bool) { yield(1.5) }, []any{1.5}},
		{"slice source", listSource{5, 6}, []any{5, 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := seq.New(tt.input)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			assertSlice(t, tt.want, s.ToSlice())
		})
	}
}

func TestNew_InvalidArgument(t *testing.T) {
	tests := []struct {
		name  string
		input any
	}{
		{"nil", nil},
		{"negative count", -1},
		{"float", 4.2},
		{"string", "abc"},
		{"struct", struct{}{}},
		{"map", map[string]int{"a": 1}},
		{"nil pointer", (*seq.Seq[int])(nil)},
		{"nil slice", []int(nil)},
		{"nil iterator", iter.Seq[int](nil)},
		{"func with result", func(func(int) bool) int { return 0 }},
		{"All without range func", badSource{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := seq.New(tt.input)
			if !errors.Is(err, seq.ErrInvalidArgument) {
				t.Fatalf("New() error = %v, want ErrInvalidArgument", err)
			}
			if s != nil {
				t.Errorf("New() returned a sequence alongside the error")
			}
			var argErr *seq.ArgumentError
			if !errors.As(err, &argErr) || argErr.Op != "New" {
				t.Errorf("New() error = %#v, want *ArgumentError for New", err)
			}
		})
	}
}

func TestNew_Idempotent(t *testing.T) {
	s, err := seq.New([]any{1, 2})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	again, err := seq.New(s)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if again != s {
		t.Errorf("New(s) wrapped a sequence twice")
	}
}

func TestWrap(t *testing.T) {
	s := seq.Of(1, 2, 3)
	if seq.Wrap[int](s) != s {
		t.Errorf("Wrap(s) wrapped a sequence twice")
	}

	wrapped := seq.Wrap[int](listSource{3, 4})
	assertSlice(t, []int{3, 4}, wrapped.ToSlice())
	assertSlice(t, []int{3, 4}, seq.Collect[int](listSource{3, 4}))
}

func TestZeroValue(t *testing.T) {
	var s seq.Seq[int]
	assertSlice(t, nil, s.ToSlice())
	if got := s.Join(","); got != "" {
		t.Errorf("Join() = %q, want empty", got)
	}
	var nilSeq *seq.Seq[int]
	if n := len(nilSeq.ToSlice()); n != 0 {
		t.Errorf("nil Seq yielded %d values", n)
	}
}

func TestRestartableAndOneShot(t *testing.T) {
	counted := seq.Count(3)
	assertSlice(t, []int{0, 1, 2}, counted.ToSlice())
	assertSlice(t, []int{0, 1, 2}, counted.ToSlice())

	n := 0
	generated := seq.Generate(func() (int, bool) {
		n++
		return n, n <= 3
	})
	assertSlice(t, []int{1, 2, 3}, generated.ToSlice())
	assertSlice(t, nil, generated.ToSlice())
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		s    *seq.Seq[int]
		want []int
	}{
		{"of", seq.Of(1, 2), []int{1, 2}},
		{"empty", seq.Empty[int](), nil},
		{"count", seq.Count(4), []int{0, 1, 2, 3}},
		{"negative count", seq.Count(-2), nil},
		{"range", seq.Range(2, 5), []int{2, 3, 4}},
		{"empty range", seq.Range(5, 2), nil},
		{"repeat", seq.Repeat(7, 3), []int{7, 7, 7}},
		{"infinite repeat", seq.Repeat(1, -1).Slice(0, 2), []int{1, 1}},
		{"naturals", seq.Naturals().Slice(0, 4), []int{0, 1, 2, 3}},
		{"iterate", seq.Iterate(1, func(n int) int { return n * 2 }).Slice(0, 5), []int{1, 2, 4, 8, 16}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertSlice(t, tt.want, tt.s.ToSlice())
		})
	}
}

func TestValuesEntriesKeys(t *testing.T) {
	s := seq.Of("a", "b", "c")

	assertSlice(t, []string{"a", "b", "c"}, s.Values().ToSlice())
	assertSlice(t, []int{0, 1, 2}, s.Keys().ToSlice())
	assertSlice(t, []seq.Entry[string]{
		{Index: 0, Value: "a"},
		{Index: 1, Value: "b"},
		{Index: 2, Value: "c"},
	}, seq.Entries(s).ToSlice())

	// Indices restart on every traversal.
	keys := s.Keys()
	assertSlice(t, []int{0, 1, 2}, keys.ToSlice())
	assertSlice(t, []int{0, 1, 2}, keys.ToSlice())
}

func TestAll_RangeOverFunc(t *testing.T) {
	var got []int
	for v := range seq.Naturals().All() {
		if v == 3 {
			break
		}
		got = append(got, v)
	}
	assertSlice(t, []int{0, 1, 2}, got)
}

func TestComposition(t *testing.T) {
	evens := seq.Filtering(func(v, _ int) bool { return v%2 == 0 })
	tenfold := seq.Mapping(func(v, _ int) int { return v * 10 })

	got := seq.Pipe(seq.Naturals(), evens, tenfold, seq.Slicing[int](0, 3)).ToSlice()
	assertSlice(t, []int{0, 20, 40}, got)

	chained := seq.Chain(evens, tenfold)
	assertSlice(t, []int{20, 40}, chained(seq.Of(1, 2, 3, 4)).ToSlice())

	s := seq.Of(1)
	if seq.Chain[int]()(s) != s {
		t.Errorf("empty Chain is not the identity")
	}
}
