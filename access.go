package arbor

// NoParent is the parent link of a node created with AddNode. It compares
// less than every valid index.
const NoParent = -1

// Get returns a pointer to the payload at index i, or (nil, false) when i is
// out of range. The pointer remains valid until the next structural mutation
// of the tree (see the package notes on arena growth).
func (t *Tree[T]) Get(i int) (*T, bool) {
	if i < 0 || i >= len(t.nodes) {
		return nil, false
	}
	return &t.nodes[i].data, true
}

// MustGet returns a pointer to the payload at index i without a bounds
// check of its own. Use it only with an index already known to be valid, or
// the call panics. This is the hot path tier of Get.
func (t *Tree[T]) MustGet(i int) *T {
	return &t.nodes[i].data
}

// Parent returns the parent index of node i, or NoParent when i was created
// as a root. i must be a valid index or Parent panics.
func (t *Tree[T]) Parent(i int) int {
	return t.nodes[i].parent
}

// Children returns node i's child indices in the order AddChild created
// them. The slice is a view into the arena: it must not be modified, and it
// is only current until the next structural mutation, after which callers
// re-fetch. i must be a valid index or Children panics.
func (t *Tree[T]) Children(i int) []int {
	return t.nodes[i].children
}
