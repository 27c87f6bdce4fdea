package Trees

import "slices"

// Delete v from the tree.
//   - A leaf is removed from its parent.
//   - A node with one child is replaced by that child, whose subtree moves one level up.
//     This also applies to the root.
//   - A node with more children takes the value of its leftmost child, which takes the
//     value of its own leftmost child, and so on until a leaf is reached. That leaf is
//     removed. The shape changes by exactly one leaf.
//
// Fails with ErrEmptyTree if the tree is empty and ErrValueNotFound if v isn't in the
// tree. The tree isn't modified on failure.
// Time: O(n)
func (u *NTree[T]) Delete(v T) error {
	if u.root == nil {
		return &TreeError{Kind: EmptyTree}
	} else if u.root.v == v {
		u.deleteRoot()
	} else if p, i := u.FindParent(v, u.root); p == nil {
		return newError(ValueNotFound, v)
	} else {
		u.deleteChild(p, i)
	}
	u.size--
	u.refreshHeight()
	return nil
}

func (u *NTree[T]) deleteRoot() {
	switch len(u.root.children) {
	case 0:
		u.root = nil
	case 1:
		u.root = u.root.children[0]
		u.root.lift()
	default:
		pullUp(u.root)
	}
}

// deleteChild removes p.children[i].
func (u *NTree[T]) deleteChild(p *Node[T], i int) {
	switch c := p.children[i]; len(c.children) {
	case 0:
		p.children = slices.Delete(p.children, i, i+1)
	case 1:
		p.children[i] = c.children[0]
		p.children[i].lift()
	default:
		pullUp(c)
	}
}

// pullUp overwrites the value of cur with its leftmost child's, then descends to that
// child and repeats. The leaf the cascade stops at is detached from its parent.
// cur must have children.
func pullUp[T comparable](cur *Node[T]) {
	var parent *Node[T]
	for len(cur.children) > 0 {
		parent, cur = cur, cur.children[0]
		parent.v = cur.v
	}
	parent.children = slices.Delete(parent.children, 0, 1)
}

// refreshHeight recomputes the height from the deepest node.
func (u *NTree[T]) refreshHeight() {
	u.height = 0
	u.LevelOrder(func(n *Node[T]) bool {
		u.height = n.level //level order ends on the deepest level.
		return true
	})
}
