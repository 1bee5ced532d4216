package arbor

import (
	"reflect"
	"slices"
)

// Equaler is implemented by payload types that can decide their own equality
// logic, overriding the potentially expensive default comparison with
// [reflect.DeepEqual].
type Equaler[T any] interface {
	Equal(other T) bool
}

// Equal reports whether two trees hold the same structure and the same
// payloads: equal length, and for every index the same parent link, the same
// child list and an equal payload. Payloads compare via Equaler[T] when T
// implements it, and reflect.DeepEqual otherwise.
func (t *Tree[T]) Equal(o *Tree[T]) bool {
	if t == o {
		return true
	}
	if t == nil || o == nil {
		return false
	}
	if len(t.nodes) != len(o.nodes) {
		return false
	}
	for i := range t.nodes {
		a, b := &t.nodes[i], &o.nodes[i]
		if a.parent != b.parent {
			return false
		}
		if !slices.Equal(a.children, b.children) {
			return false
		}
		if !equalValue(a.data, b.data) {
			return false
		}
	}
	return true
}

func equalValue[T any](a, b T) bool {
	if e, ok := any(a).(Equaler[T]); ok {
		return e.Equal(b)
	}
	return reflect.DeepEqual(a, b)
}
