package parallel

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/forestrie/go-arbor"
)

// ForEach invokes fn once for every node index of t, fanning the index space
// out across workers goroutines, each owning one contiguous range. It is the
// throughput counterpart of Tree.All: same pairs, no ordering guarantee
// across workers. fn must be safe for concurrent invocation on distinct
// indices.
//
// workers <= 0 selects runtime.GOMAXPROCS(0); a workers value beyond the
// node count is clamped to it. An empty tree is a no-op.
//
// A non-nil error from fn stops that worker's remaining range; the other
// workers complete theirs. ForEach returns after all workers finish, with
// the first error observed, or nil.
func ForEach[T any](t *arbor.Tree[T], workers int, fn func(index int, value *T) error) error {
	n := t.Len()
	if n == 0 {
		return nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}

	// Split [0, n) into `workers` contiguous ranges whose sizes differ by at
	// most one: the first n%workers ranges carry the remainder.
	size := n / workers
	rem := n % workers

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		lo := w*size + min(w, rem)
		hi := lo + size
		if w < rem {
			hi++
		}
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := fn(i, t.MustGet(i)); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}
