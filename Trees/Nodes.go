package Trees

import "fmt"

// Node in the NTree. The zero value is meaningless; nodes are created by
// NTree insertions only. A node owns its children, there is no pointer
// back to the parent.
type Node[T comparable] struct {
	v        T
	level    uint
	children []*Node[T]
}

// Value held by the node.
func (u *Node[T]) Value() T {
	return u.v
}

// Level is the number of edges between the node and the root.
func (u *Node[T]) Level() uint {
	return u.level
}

// Degree is the number of children.
func (u *Node[T]) Degree() int {
	return len(u.children)
}

// Child at index i in insertion order, nil if i is out of range.
func (u *Node[T]) Child(i int) *Node[T] {
	if i < 0 || i >= len(u.children) {
		return nil
	}
	return u.children[i]
}

// Leaf returns whether the node has no children.
func (u *Node[T]) Leaf() bool {
	return len(u.children) == 0
}

func (u *Node[T]) addChild(v T) *Node[T] {
	c := &Node[T]{v: v, level: u.level + 1}
	u.children = append(u.children, c)
	return c
}

// lift moves the subtree rooting at u one level up.
// Time: O(size of subtree); Space: O(width of subtree)
func (u *Node[T]) lift() {
	st := []*Node[T]{u}
	for len(st) > 0 {
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		cur.level--
		st = append(st, cur.children...)
	}
}

func (u *Node[T]) String() string {
	return fmt.Sprint(u.v)
}
