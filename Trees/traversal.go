package Trees

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/g-m-twostay/narytree/Queues"
)

// preOrder walks the subtree rooting at from, parents before children, siblings left
// to right, until f returns false.
func preOrder[T comparable](from *Node[T], f func(*Node[T]) bool) {
	if from == nil {
		return
	}
	st := arraystack.New()
	for st.Push(from); !st.Empty(); {
		top, _ := st.Pop()
		cur := top.(*Node[T])
		if !f(cur) {
			return
		}
		for i := len(cur.children) - 1; i >= 0; i-- {
			st.Push(cur.children[i])
		}
	}
}

// postOrder walks the subtree rooting at from, children before parents, siblings left
// to right, until f returns false.
func postOrder[T comparable](from *Node[T], f func(*Node[T]) bool) {
	if from == nil {
		return
	}
	type frame struct {
		n    *Node[T]
		next int //index of the next child to descend into.
	}
	st := arraystack.New()
	for st.Push(&frame{n: from}); !st.Empty(); {
		top, _ := st.Peek()
		fr := top.(*frame)
		if fr.next < len(fr.n.children) {
			fr.next++
			st.Push(&frame{n: fr.n.children[fr.next-1]})
		} else {
			st.Pop()
			if !f(fr.n) {
				return
			}
		}
	}
}

// PreOrder calls f on every node, parents first, until f returns false.
// The tree must not be modified during the traversal.
// Time: O(n); Space: O(height*order)
func (u *NTree[T]) PreOrder(f func(*Node[T]) bool) {
	preOrder(u.root, f)
}

// PostOrder calls f on every node, children first, until f returns false.
// The tree must not be modified during the traversal.
// Time: O(n); Space: O(height)
func (u *NTree[T]) PostOrder(f func(*Node[T]) bool) {
	postOrder(u.root, f)
}

// LevelOrder calls f on every node, level by level and left to right inside a level,
// until f returns false.
// The tree must not be modified during the traversal.
// Time: O(n); Space: O(width)
func (u *NTree[T]) LevelOrder(f func(*Node[T]) bool) {
	if u.root == nil {
		return
	}
	q := Queues.MakeArrayQueue[*Node[T]](u.order)
	for q.Push(u.root); !q.Empty(); {
		cur, _ := q.Pop()
		if !f(cur) {
			return
		}
		for _, c := range cur.children {
			q.Push(c)
		}
	}
}

// Values in level order.
func (u *NTree[T]) Values() []T {
	vs := make([]T, 0, u.size)
	u.LevelOrder(func(n *Node[T]) bool {
		vs = append(vs, n.v)
		return true
	})
	return vs
}

// Edges returns one Edge per parent-child link, in the level order of the children.
// Together with Values it describes the whole tree.
func (u *NTree[T]) Edges() []Edge[T] {
	var es []Edge[T]
	if u.size > 1 {
		es = make([]Edge[T], 0, u.size-1)
	}
	u.LevelOrder(func(n *Node[T]) bool {
		for _, c := range n.children {
			es = append(es, Edge[T]{n.v, c.v})
		}
		return true
	})
	return es
}
