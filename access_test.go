package arbor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	tree := newTestTree()

	type args struct {
		i int
	}
	tests := []struct {
		name   string
		args   args
		want   string
		wantOk bool
	}{
		//	          [0] root
		//	         /        \
		//	   [1] child1   [2] child2
		//	        |
		//	   [3] grandchild
		{"root", args{0}, "root", true},
		{"first child", args{1}, "child1", true},
		{"second child", args{2}, "child2", true},
		{"grandchild", args{3}, "grandchild", true},
		{"negative", args{-1}, "", false},
		{"one past the end", args{4}, "", false},
		{"far past the end", args{1000}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tree.Get(tt.args.i)
			if ok != tt.wantOk {
				t.Errorf("Get() ok = %v, want %v", ok, tt.wantOk)
			}
			if !tt.wantOk {
				if got != nil {
					t.Errorf("Get() = %v, want nil on out of range", got)
				}
				return
			}
			if *got != tt.want {
				t.Errorf("Get() = %v, want %v", *got, tt.want)
			}
		})
	}
}

func TestParent(t *testing.T) {
	tree := newTestTree()

	type args struct {
		i int
	}
	tests := []struct {
		name string
		args args
		want int
	}{
		{"root has no parent", args{0}, NoParent},
		{"child1", args{1}, 0},
		{"child2", args{2}, 0},
		{"grandchild", args{3}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tree.Parent(tt.args.i); got != tt.want {
				t.Errorf("Parent() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHotPathAccessorsPanicOutOfRange(t *testing.T) {
	tree := newTestTree()

	// The hot path tier does no checking of its own; an invalid index
	// faults on the arena bounds.
	for _, i := range []int{-1, 4, 1000} {
		require.Panics(t, func() { tree.MustGet(i) })
		require.Panics(t, func() { tree.Parent(i) })
		require.Panics(t, func() { tree.Children(i) })
	}
}

func TestMustGetAfterSuccessfulGet(t *testing.T) {
	tree := newTestTree()

	for i := 0; i < tree.Len(); i++ {
		checked, ok := tree.Get(i)
		require.True(t, ok)
		require.Same(t, checked, tree.MustGet(i))
	}
}

func TestPayloadMutationThroughPointer(t *testing.T) {
	tree := newTestTree()

	v, ok := tree.Get(2)
	require.True(t, ok)
	*v = "renamed"

	require.Equal(t, "renamed", *tree.MustGet(2))
}

func TestChildrenIsViewedLive(t *testing.T) {
	tree := newTestTree()

	before := tree.Children(0)
	require.Equal(t, []int{1, 2}, before)

	tree.AddChild(0, "child3")

	// Callers re-fetch after mutation; the new entry is visible then.
	after := tree.Children(0)
	require.Equal(t, []int{1, 2, 4}, after)
}

func TestChildrenOfLeafIsEmpty(t *testing.T) {
	tree := newTestTree()
	require.Empty(t, tree.Children(3))
}
