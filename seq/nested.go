package seq

import (
	"iter"
	"reflect"
)

var boolType = reflect.TypeFor[bool]()

// elementsOf reports whether v exposes the iteration capability and, if so,
// returns an untyped iterator over its elements.
//
// Qualifying values are Iterable values, any Source (a type with an
// All method returning a range function), range functions
// func(func(X) bool) of any element type X, and every slice or array kind.
// Strings never do: they are treated as scalars. So are nil and typed nil
// values (nil pointers, slices, funcs and so on).
func elementsOf(v any) (iter.Seq[any], bool) {
	if v == nil || isNil(v) {
		return nil, false
	}
	switch x := v.(type) {
	case string:
		return nil, false
	case Iterable:
		return x.Elements(), true
	case iter.Seq[any]:
		return x, true
	case func(func(any) bool):
		return x, true
	case []any:
		return func(yield func(any) bool) {
			for _, e := range x {
				if !yield(e) {
					return
				}
			}
		}, true
	}

	rv := reflect.ValueOf(v)
	if all := rv.MethodByName("All"); all.IsValid() {
		if t := all.Type(); t.NumIn() == 0 && t.NumOut() == 1 && isRangeFunc(t.Out(0)) {
			return func(yield func(any) bool) {
				fn := all.Call(nil)[0]
				if !fn.IsNil() {
					callRangeFunc(fn, yield)
				}
			}, true
		}
	}

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return func(yield func(any) bool) {
			for i := 0; i < rv.Len(); i++ {
				if !yield(rv.Index(i).Interface()) {
					return
				}
			}
		}, true
	case reflect.Func:
		if isRangeFunc(rv.Type()) {
			return func(yield func(any) bool) { callRangeFunc(rv, yield) }, true
		}
	}
	return nil, false
}

// isRangeFunc reports whether t has the shape func(func(X) bool).
func isRangeFunc(t reflect.Type) bool {
	if t.Kind() != reflect.Func || t.NumIn() != 1 || t.NumOut() != 0 {
		return false
	}
	y := t.In(0)
	return y.Kind() == reflect.Func && y.NumIn() == 1 && y.NumOut() == 1 && y.Out(0) == boolType
}

// callRangeFunc runs the range function fn, boxing every value it yields.
func callRangeFunc(fn reflect.Value, yield func(any) bool) {
	y := reflect.MakeFunc(fn.Type().In(0), func(args []reflect.Value) []reflect.Value {
		return []reflect.Value{reflect.ValueOf(yield(args[0].Interface()))}
	})
	fn.Call([]reflect.Value{y})
}

// isNil reports whether v is nil or holds a nil pointer, slice, map, func,
// channel or unsafe pointer.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
