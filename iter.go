package arbor

import "iter"

// All returns an iterator over (index, payload) pairs in increasing index
// order, which is creation order, independent of the parent/child structure.
// Each call constructs a fresh iterator reflecting the arena at that moment.
// The yielded pointers allow in-place payload mutation; the usual
// single-writer discipline applies.
func (t *Tree[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := range t.nodes {
			if !yield(i, &t.nodes[i].data) {
				return
			}
		}
	}
}

// Roots returns an iterator over the indices of parentless nodes in
// increasing order. A tree built exclusively with AddChild under a single
// AddNode yields exactly one root, 0; arenas holding several disconnected
// roots yield each of them.
func (t *Tree[T]) Roots() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := range t.nodes {
			if t.nodes[i].parent != NoParent {
				continue
			}
			if !yield(i) {
				return
			}
		}
	}
}
