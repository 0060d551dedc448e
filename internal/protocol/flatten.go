package protocol

import (
	"iter"
	"reflect"
)

// Sequence is implemented by composite values that expand into several
// positional arguments, such as vec3.Vec3.
type Sequence interface {
	Components() []any
}

// Flatten returns a depth-first, left-to-right traversal of args in which
// every nested slice, array or Sequence is expanded in place. Strings and
// byte slices are atoms and are never split into characters.
//
// The returned sequence is lazy and may be ranged over any number of times.
func Flatten(args ...any) iter.Seq[any] {
	return func(yield func(any) bool) {
		walk(args, yield)
	}
}

// FlattenAll collects Flatten(args...) into a slice.
func FlattenAll(args ...any) []any {
	var out []any
	for v := range Flatten(args...) {
		out = append(out, v)
	}
	return out
}

func walk(values []any, yield func(any) bool) bool {
	for _, v := range values {
		if !walkOne(v, yield) {
			return false
		}
	}
	return true
}

func walkOne(v any, yield func(any) bool) bool {
	// A nil *Vec3 satisfies Sequence through its value method; it is an
	// absent value, not an empty sequence.
	if isNilPointer(v) {
		return yield(v)
	}
	switch t := v.(type) {
	case nil, string, []byte:
		return yield(v)
	case []any:
		return walk(t, yield)
	case Sequence:
		return walk(t.Components(), yield)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			return yield(v)
		}
		for i := 0; i < rv.Len(); i++ {
			if !walkOne(rv.Index(i).Interface(), yield) {
				return false
			}
		}
		return true
	}
	return yield(v)
}
