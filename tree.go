package arbor

// node is a single arena slot: the caller's payload plus the index linkage.
// Nodes are only ever created, never moved or destroyed individually, so the
// links can be plain ints into the owning arena.
type node[T any] struct {
	data     T
	children []int
	parent   int
}

// Tree is an arena of nodes addressed by creation order. The zero value is an
// empty tree ready for use. Any concurrent use involving mutation MUST be
// externally synchronized; concurrent readers are safe.
type Tree[T any] struct {
	nodes []node[T]
}

// New returns an empty tree. It is provided for symmetry with the rest of the
// forestrie containers; &Tree[T]{} and var t Tree[T] are equivalent.
func New[T any]() *Tree[T] {
	return &Tree[T]{}
}

// AddNode appends a node with no parent and no children and returns its
// index. The returned index equals the count of nodes created before it.
// AddNode never fails.
func (t *Tree[T]) AddNode(data T) int {
	i := len(t.nodes)
	t.nodes = append(t.nodes, node[T]{data: data, parent: NoParent})
	return i
}

// AddChild appends a node holding data as the last child of parent and
// returns the new node's index. The child's parent link and its entry in the
// parent's child list are established together and never change afterwards.
//
// parent must be an index previously returned by AddNode or AddChild;
// AddChild panics otherwise.
func (t *Tree[T]) AddChild(parent int, data T) int {
	if parent < 0 || parent >= len(t.nodes) {
		panic("arbor: AddChild: parent index out of range")
	}
	i := t.AddNode(data)
	t.nodes[parent].children = append(t.nodes[parent].children, i)
	t.nodes[i].parent = parent
	return i
}

// AddChildToRoot is shorthand for AddChild(0, data). The tree must already
// contain a node at index 0; AddChildToRoot panics on an empty tree.
func (t *Tree[T]) AddChildToRoot(data T) int {
	if len(t.nodes) == 0 {
		panic("arbor: AddChildToRoot: tree has no root")
	}
	return t.AddChild(0, data)
}

// Len returns the number of nodes in the arena.
func (t *Tree[T]) Len() int {
	return len(t.nodes)
}

// IsEmpty reports whether the arena holds no nodes.
func (t *Tree[T]) IsEmpty() bool {
	return len(t.nodes) == 0
}

// Clear discards every node at once, invalidating all previously issued
// indices. The backing storage is released so payloads become collectable;
// subsequent AddNode calls restart index assignment at 0.
func (t *Tree[T]) Clear() {
	t.nodes = nil
}
