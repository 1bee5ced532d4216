package arbortesting

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/forestrie/go-arbor"
)

// Leaf is the canned payload for generated trees: a uuid identity plus a
// human readable name, enough to make payload mix-ups visible in failures.
type Leaf struct {
	ID   uuid.UUID
	Name string
}

func (l Leaf) String() string {
	return l.Name
}

// Generator produces pseudo random trees for tests. We seed the RNG from the
// provided value; it is normal to force it to some fixed value so that the
// generated trees are the same from run to run.
type Generator struct {
	rng *rand.Rand
}

func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Leaf returns a payload whose ID is drawn from the generator's RNG, so a
// fixed seed reproduces the same identities.
func (g *Generator) Leaf(name string) Leaf {
	return Leaf{ID: uuid.Must(uuid.NewRandomFromReader(g.rng)), Name: name}
}

// Grow appends n nodes to tree, each attached to a uniformly chosen existing
// node, creating a root first when the tree is empty. It returns the created
// indices in creation order.
func (g *Generator) Grow(tree *arbor.Tree[Leaf], n int) []int {
	idx := make([]int, 0, n)
	for k := 0; k < n; k++ {
		if tree.IsEmpty() {
			idx = append(idx, tree.AddNode(g.Leaf("root")))
			continue
		}
		parent := g.rng.Intn(tree.Len())
		idx = append(idx, tree.AddChild(parent, g.Leaf(fmt.Sprintf("n%04d", tree.Len()))))
	}
	return idx
}

// GrowChain appends n nodes forming a single descending chain, creating a
// root first when the tree is empty. Deep chains exercise traversal depth
// without exercising branching.
func (g *Generator) GrowChain(tree *arbor.Tree[Leaf], n int) []int {
	idx := make([]int, 0, n)
	for k := 0; k < n; k++ {
		if tree.IsEmpty() {
			idx = append(idx, tree.AddNode(g.Leaf("root")))
			continue
		}
		idx = append(idx, tree.AddChild(tree.Len()-1, g.Leaf(fmt.Sprintf("n%04d", tree.Len()))))
	}
	return idx
}
