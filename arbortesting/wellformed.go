package arbortesting

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/forestrie/go-arbor"
)

// RequireWellFormed fails the test unless tree satisfies the structural
// invariants every tree built through the public api maintains:
//
//	1. a parent index is NoParent or refers to an earlier node
//	2. parent and child links agree, with no duplicate child entries
//	3. a node is parentless exactly when no node lists it as a child
func RequireWellFormed[T any](t *testing.T, tree *arbor.Tree[T]) {
	t.Helper()

	n := tree.Len()
	childOf := make(map[int]int, n)

	for i := 0; i < n; i++ {
		p := tree.Parent(i)
		if p == arbor.NoParent {
			continue
		}
		require.GreaterOrEqual(t, p, 0, "node %d: negative parent", i)
		require.Less(t, p, i, "node %d: parent %d not created earlier", i, p)
		childOf[i] = p
	}

	listed := make(map[int]int, n)
	for i := 0; i < n; i++ {
		seen := make(map[int]bool)
		for _, c := range tree.Children(i) {
			require.False(t, seen[c], "node %d: child %d listed twice", i, c)
			seen[c] = true
			require.Equal(t, i, tree.Parent(c), "node %d: child %d claims parent %d", i, c, tree.Parent(c))
			listed[c] = i
		}
	}

	for i := 0; i < n; i++ {
		p, hasParent := childOf[i]
		lp, isListed := listed[i]
		require.Equal(t, hasParent, isListed, "node %d: parent link and child listing disagree", i)
		if hasParent {
			require.Equal(t, p, lp, "node %d: listed under %d but parent is %d", i, lp, p)
		}
	}
}
