package Trees

var _ Tree[int] = (*NTree[int])(nil)

// NTree is an N-ary tree holding unique values of type T. Every node has at
// most order children and children keep their insertion order. Nodes don't
// point to their parents, so operations that need a parent search for it
// from the root.
// Values are compared with ==, so a value that isn't equal to itself, like a
// float NaN, is never found: it can be inserted more than once and can't be
// deleted.
// NTree isn't safe for concurrent use, see syncTree.SyncTree for a guarded
// version.
type NTree[T comparable] struct {
	root   *Node[T]
	order  uint
	height uint //greatest level in the tree, kept exact after every mutation.
	size   uint
}

// New empty NTree whose nodes have at most order children. Fails with
// ErrInvalidOrder if order<2.
func New[T comparable](order uint) (*NTree[T], error) {
	if order < 2 {
		return nil, newError(InvalidOrder, order)
	}
	return &NTree[T]{order: order}, nil
}

// Order of the tree.
func (u *NTree[T]) Order() uint {
	return u.order
}

// Height of the tree, 0 for both the empty tree and a single root.
// Time: O(1)
func (u *NTree[T]) Height() uint {
	return u.height
}

// Len is the same as Height.
func (u *NTree[T]) Len() uint {
	return u.height
}

// Size of the tree.
// Time: O(1)
func (u *NTree[T]) Size() uint {
	return u.size
}

// Root of the tree, nil if the tree is empty.
func (u *NTree[T]) Root() *Node[T] {
	return u.root
}

func (u *NTree[T]) Empty() bool {
	return u.root == nil
}

// Clear the tree. The order is kept.
func (u *NTree[T]) Clear() {
	u.root, u.height, u.size = nil, 0, 0
}

// Insert v into the tree. The first value becomes the root. Later values are
// appended to the first available parent: the shallowest, leftmost node that
// has less than Order() children, so repeated calls fill the tree level by level.
// Fails with ErrDuplicateValue if v is already in the tree.
// Time: O(n)
func (u *NTree[T]) Insert(v T) error {
	if u.root == nil {
		u.plant(v)
		return nil
	} else if u.BreadthFirstSearch(v) != nil {
		return newError(DuplicateValue, v)
	}
	u.attach(u.firstAvailableParent(), v)
	return nil
}

// InsertUnder appends v as the last child of the node holding parent. If the tree
// is empty, v becomes the root and parent is ignored.
// Fails with ErrDuplicateValue if v is already in the tree, ErrParentNotFound if
// parent isn't, and ErrCapacityExceeded if parent already has Order() children.
// Time: O(n)
func (u *NTree[T]) InsertUnder(v, parent T) error {
	if u.root == nil {
		u.plant(v)
		return nil
	} else if u.BreadthFirstSearch(v) != nil {
		return newError(DuplicateValue, v)
	}
	p := u.DepthFirstSearch(parent, u.root)
	if p == nil {
		return newParentError(ParentNotFound, v, parent)
	} else if uint(len(p.children)) >= u.order {
		return newParentError(CapacityExceeded, v, parent)
	}
	u.attach(p, v)
	return nil
}

func (u *NTree[T]) plant(v T) {
	u.root, u.height, u.size = &Node[T]{v: v}, 0, 1
}

func (u *NTree[T]) attach(p *Node[T], v T) {
	c := p.addChild(v)
	u.height = max(u.height, c.level)
	u.size++
}

// Corrupt returns whether the tree has corrupt structures: a level that isn't
// its parent's level+1, a node with more than Order() children, a repeated value,
// or a cached height or size that doesn't match the nodes.
// Time: O(n)
func (u *NTree[T]) Corrupt() bool {
	if u.root == nil {
		return u.height != 0 || u.size != 0
	} else if u.root.level != 0 {
		return true
	}
	seen := make(map[T]struct{}, u.size)
	var h uint
	corrupt := false
	u.LevelOrder(func(n *Node[T]) bool {
		if _, in := seen[n.v]; in || uint(len(n.children)) > u.order {
			corrupt = true
			return false
		}
		seen[n.v] = struct{}{}
		h = max(h, n.level)
		for _, c := range n.children {
			if c.level != n.level+1 {
				corrupt = true
				return false
			}
		}
		return true
	})
	return corrupt || h != u.height || uint(len(seen)) != u.size
}
