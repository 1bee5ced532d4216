package arbor

/*

# Arena tree primitives for Forestrie (append-only, index addressed)

This package provides a generic tree container backed by a single growable
arena. Nodes are addressed by their integer position in the arena rather than
by pointers, so the usual parent <-> child reference cycles never arise and a
node's identity is stable for the life of the tree.

It follows the same style as `go-merklelog/mmr` and `go-merklelog/urkle`:

- small, composable operations
- index arithmetic instead of pointer graphs
- a burden of knowledge on the caller for hot paths

## Storage model

All nodes live in one ordered slice. A node's index is assigned at creation,
equals the count of nodes created before it, and is never reused or
invalidated until Clear discards the whole arena. Structure is insert only:
AddChild records the child in the parent's ordered child list and sets the
child's parent link in the same step, and no operation ever moves, removes or
reparents a node afterwards. Child order is AddChild call order and traversal
order is derived from it.

Nodes created with AddNode have no parent. A tree may therefore hold several
disconnected roots; by convention index 0 is "the" root, and AddChildToRoot
and Walk assume it.

## Access tiers

Get is the checked tier: it reports whether the index resolves and never
panics. MustGet, Parent and Children are the hot path tier: an out of range
index is a caller contract violation and panics. The same contract applies to
the parent argument of AddChild. There are no error returns anywhere in the
container; the only failure surface is programmer error.

Payload access is by pointer into the arena. A later AddNode or AddChild may
grow the arena and relocate it, so payload pointers must not be retained
across structural mutation.

## Traversal

Walk performs an iterative depth first traversal from index 0 driving a pair
of callbacks, one before a node's children are expanded and one after its
entire subtree has completed, threading a caller supplied state value through
every invocation. The stack is explicit, so arbitrarily deep trees cannot
exhaust goroutine stack via recursion. The tree must not be structurally
mutated while a Walk is in progress.

## Iteration

All ranges over the arena in index order, which is creation order, not
structure order. Roots ranges over the parentless nodes. Both are
range-over-func iterators and may be abandoned early.

The data parallel variant of All lives in the parallel subpackage so that
consumers of the sequential container do not link a concurrency dependency.

*/
