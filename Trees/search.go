package Trees

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/g-m-twostay/narytree/Queues"
)

// BreadthFirstSearch returns the node holding v, nil if there's none.
// Nodes are visited level by level, left to right.
// Time: O(n); Space: O(width)
func (u *NTree[T]) BreadthFirstSearch(v T) (found *Node[T]) {
	u.LevelOrder(func(n *Node[T]) bool {
		if n.v == v {
			found = n
			return false
		}
		return true
	})
	return
}

// DepthFirstSearch returns the node holding v in the subtree rooting at from, nil if
// there's none or from is nil. Nodes are visited in pre-order.
// Time: O(n); Space: O(height*order)
func (u *NTree[T]) DepthFirstSearch(v T, from *Node[T]) (found *Node[T]) {
	preOrder(from, func(n *Node[T]) bool {
		if n.v == v {
			found = n
			return false
		}
		return true
	})
	return
}

// FindParent returns the parent of the node holding v and the index of that node
// among the parent's children. The search covers the subtree rooting at from, in
// pre-order. Returns (nil, -1) if v isn't found or is held by from itself.
// Time: O(n); Space: O(height*order)
func (u *NTree[T]) FindParent(v T, from *Node[T]) (*Node[T], int) {
	if from == nil {
		return nil, -1
	}
	type slot struct {
		p *Node[T]
		i int
	}
	st := arraystack.New()
	pushChildren := func(p *Node[T]) {
		for i := len(p.children) - 1; i >= 0; i-- {
			st.Push(slot{p, i})
		}
	}
	for pushChildren(from); !st.Empty(); {
		top, _ := st.Pop()
		s := top.(slot)
		if c := s.p.children[s.i]; c.v == v {
			return s.p, s.i
		} else {
			pushChildren(c)
		}
	}
	return nil, -1
}

// Has element v.
// Time: O(n)
func (u *NTree[T]) Has(v T) bool {
	return u.BreadthFirstSearch(v) != nil
}

// firstAvailableParent is the first node in level order with less than order children.
// The tree mustn't be empty.
func (u *NTree[T]) firstAvailableParent() *Node[T] {
	q := Queues.MakeArrayQueue[*Node[T]](u.order)
	for q.Push(u.root); !q.Empty(); {
		cur, _ := q.Pop()
		if uint(len(cur.children)) < u.order {
			return cur
		}
		for _, c := range cur.children {
			q.Push(c)
		}
	}
	return nil
}
