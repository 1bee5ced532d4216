package arbor

import (
	"fmt"
	"io"
	"strings"
)

// debug utilities

// String renders the tree for debugging: one line per node in depth first
// order, indented two spaces per level, as "[index] payload". Roots render
// at depth zero in index order, so disconnected roots all appear. The output
// is a diagnostic aid, not a serialization format.
func (t *Tree[T]) String() string {
	var sb strings.Builder
	// strings.Builder writes cannot fail.
	_ = t.Fprint(&sb)
	return sb.String()
}

// Fprint writes the String rendering to w, returning the first write error.
func (t *Tree[T]) Fprint(w io.Writer) error {
	type frame struct {
		index int
		depth int
	}

	var roots []int
	for i := range t.nodes {
		if t.nodes[i].parent == NoParent {
			roots = append(roots, i)
		}
	}

	// Push in reverse so the LIFO stack renders in index/child order.
	var stack []frame
	for k := len(roots) - 1; k >= 0; k-- {
		stack = append(stack, frame{index: roots[k]})
	}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := &t.nodes[f.index]
		if _, err := fmt.Fprintf(w, "%s[%d] %v\n", strings.Repeat("  ", f.depth), f.index, n.data); err != nil {
			return err
		}
		for k := len(n.children) - 1; k >= 0; k-- {
			stack = append(stack, frame{index: n.children[k], depth: f.depth + 1})
		}
	}
	return nil
}
