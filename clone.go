package arbor

import "slices"

// Cloner is implemented by payload types that need deep copies when the tree
// is cloned. When T implements Cloner[T], Clone uses it for every payload;
// otherwise payloads are copied by assignment.
type Cloner[T any] interface {
	Clone() T
}

// Clone returns a structurally independent copy of the tree: the arena and
// every child list are copied, so structural mutation of either tree is
// invisible to the other. Payloads are copied by assignment unless T
// implements Cloner[T].
func (t *Tree[T]) Clone() *Tree[T] {
	if t == nil {
		return nil
	}
	out := &Tree[T]{nodes: make([]node[T], len(t.nodes))}
	for i := range t.nodes {
		n := &t.nodes[i]
		out.nodes[i] = node[T]{
			data:     cloneValue(n.data),
			children: slices.Clone(n.children),
			parent:   n.parent,
		}
	}
	return out
}

func cloneValue[T any](v T) T {
	// you can't assert directly on a type parameter
	if c, ok := any(v).(Cloner[T]); ok {
		return c.Clone()
	}
	return v
}
