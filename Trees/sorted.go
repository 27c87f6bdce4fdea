package Trees

import (
	"github.com/google/btree"
	"golang.org/x/exp/constraints"
)

// Sorted returns the values of u in ascending order. The NTree places values by
// insertion, not by order, so they are collected into a B-tree first.
// Time: O(n log n)
func Sorted[T constraints.Ordered](u *NTree[T]) []T {
	idx := btree.NewG[T](8, func(a, b T) bool { return a < b })
	u.LevelOrder(func(n *Node[T]) bool {
		idx.ReplaceOrInsert(n.v)
		return true
	})
	vs := make([]T, 0, idx.Len())
	idx.Ascend(func(v T) bool {
		vs = append(vs, v)
		return true
	})
	return vs
}
