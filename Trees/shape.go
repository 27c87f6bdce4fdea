package Trees

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/g-m-twostay/narytree/Queues"
)

// IsComplete returns whether every level above the last is full and the nodes on the
// last level are packed to the left. The empty tree is complete.
// Only nodes above the last level are visited: a node with less than Order() children
// is allowed only one level above the last, and once such a node is seen no node after
// it in level order may have children.
// Time: O(n); Space: O(width)
func (u *NTree[T]) IsComplete() bool {
	if u.root == nil {
		return true
	}
	q := Queues.MakeArrayQueue[*Node[T]](u.order)
	allFull := true //whether every node visited so far had order children.
	for q.Push(u.root); !q.Empty() && q.Peek().level < u.height; {
		cur, _ := q.Pop()
		if allFull {
			if uint(len(cur.children)) < u.order {
				if cur.level+1 == u.height {
					allFull = false
				} else {
					return false
				}
			}
			for _, c := range cur.children {
				q.Push(c)
			}
		} else if len(cur.children) > 0 {
			return false
		}
	}
	return true
}

// IsPerfect returns whether every node above the last level has Order() children.
// The empty tree is perfect.
// Time: O(n); Space: O(width)
func (u *NTree[T]) IsPerfect() bool {
	if u.root == nil {
		return true
	}
	q := Queues.MakeArrayQueue[*Node[T]](u.order)
	for q.Push(u.root); !q.Empty() && q.Peek().level < u.height; {
		cur, _ := q.Pop()
		if uint(len(cur.children)) != u.order {
			return false
		}
		for _, c := range cur.children {
			q.Push(c)
		}
	}
	return true
}

// IsFull returns whether every node in the subtree rooting at n has either 0 or Order()
// children. A nil subtree is full.
// Time: O(n); Space: O(height*order)
func (u *NTree[T]) IsFull(n *Node[T]) bool {
	if n == nil {
		return true
	}
	st := arraystack.New()
	for st.Push(n); !st.Empty(); {
		top, _ := st.Pop()
		cur := top.(*Node[T])
		if d := uint(len(cur.children)); d != 0 && d != u.order {
			return false
		}
		for _, c := range cur.children {
			st.Push(c)
		}
	}
	return true
}

// Full is IsFull(Root()).
func (u *NTree[T]) Full() bool {
	return u.IsFull(u.root)
}

// IsBalanced returns the number of levels in the subtree rooting at n and whether that
// subtree is balanced. Each of the Order() child slots of a node counts as a subtree, a
// missing child being an empty subtree with 0 levels. A node is balanced if all its
// slots are balanced and their level counts differ by at most 1.
// A nil subtree has 0 levels and is balanced. The level count returned together with
// false is only a lower bound, as the check stops at the first imbalance.
// Recursive.
// Time: O(n)
func (u *NTree[T]) IsBalanced(n *Node[T]) (uint, bool) {
	if n == nil {
		return 0, true
	}
	var hi, lo uint
	for i := uint(0); i < u.order; i++ {
		var levels uint
		if i < uint(len(n.children)) {
			l, balanced := u.IsBalanced(n.children[i])
			if !balanced {
				return max(hi, l) + 1, false
			}
			levels = l
		}
		if i == 0 {
			hi, lo = levels, levels
		} else {
			hi, lo = max(hi, levels), min(lo, levels)
		}
		if hi-lo > 1 {
			return hi + 1, false
		}
	}
	return hi + 1, true
}

// Balanced is the second result of IsBalanced(Root()).
func (u *NTree[T]) Balanced() bool {
	_, b := u.IsBalanced(u.root)
	return b
}
