package arbor

// WalkFunc is the callback signature used by Walk. index and value identify
// the node being visited; state is the caller's threaded state, handed
// unchanged to every invocation. Pass a pointer (or other reference type) as
// the state when the callbacks need to accumulate into it.
type WalkFunc[T, S any] func(index int, value *T, state S)

// walkFrame is one entry of the explicit traversal stack. expanded marks a
// node whose children have already been pushed, ie a node that is waiting
// for its after callback.
type walkFrame struct {
	index    int
	expanded bool
}

// Walk visits every node reachable from index 0 in depth first order,
// driving two callbacks: before fires when a node is first reached, ahead of
// any of its descendants, and after fires once the node's entire subtree has
// been completed. For every node the callback order is
//
//	before(node) .. before/after of the whole subtree .. after(node)
//
// with siblings taken in child list order, each sibling's subtree finishing
// before the next sibling begins. Walk on an empty tree is a no-op.
//
// The stack is explicit rather than the call stack, so the depth of the tree
// is not limited by goroutine stack growth.
//
// The tree is structurally frozen for the duration: callbacks must not call
// AddNode, AddChild or Clear on t. Mutating the payload through value is
// permitted. Child links pointing outside the arena fault per the hot path
// access contract.
func Walk[T, S any](t *Tree[T], before, after WalkFunc[T, S], state S) {
	if len(t.nodes) == 0 {
		return
	}

	stack := []walkFrame{{index: 0}}

	for len(stack) > 0 {
		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := &t.nodes[frame.index]

		if frame.expanded {
			// The whole subtree below this node has been processed.
			after(frame.index, &n.data, state)
			continue
		}

		before(frame.index, &n.data, state)

		// Revisit this node for the after callback once the children are
		// done.
		stack = append(stack, walkFrame{index: frame.index, expanded: true})

		// Push children in reverse so the stack pops them in child list
		// order.
		for k := len(n.children) - 1; k >= 0; k-- {
			stack = append(stack, walkFrame{index: n.children[k]})
		}
	}
}
