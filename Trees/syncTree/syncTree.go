package syncTree

import (
	"github.com/alphadose/haxmap"
	"github.com/g-m-twostay/narytree/Trees"
	"github.com/puzpuzpuz/xsync/v3"
	"golang.org/x/exp/constraints"
)

// Key is the set of value types a SyncTree can index without locking.
type Key interface {
	constraints.Integer | constraints.Float | ~string
}

var _ Trees.Tree[int] = (*SyncTree[int])(nil)

// SyncTree guards a Trees.NTree with a single reader biased lock, so it can be
// shared between goroutines. Every method is atomic with respect to the others.
// Nodes never leave the lock; use View to work with them.
// Has doesn't take the lock: values are mirrored in a concurrent hash map that
// is updated while the writer still holds the lock.
type SyncTree[T Key] struct {
	mu    *xsync.RBMutex
	tree  *Trees.NTree[T]
	index *haxmap.Map[T, struct{}]
}

// New empty SyncTree. Fails like Trees.New.
func New[T Key](order uint) (*SyncTree[T], error) {
	t, e := Trees.New[T](order)
	if e != nil {
		return nil, e
	}
	return &SyncTree[T]{mu: xsync.NewRBMutex(), tree: t, index: haxmap.New[T, struct{}]()}, nil
}

func (u *SyncTree[T]) Insert(v T) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if e := u.tree.Insert(v); e != nil {
		return e
	}
	u.index.Set(v, struct{}{})
	return nil
}

func (u *SyncTree[T]) InsertUnder(v, parent T) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if e := u.tree.InsertUnder(v, parent); e != nil {
		return e
	}
	u.index.Set(v, struct{}{})
	return nil
}

func (u *SyncTree[T]) Delete(v T) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if e := u.tree.Delete(v); e != nil {
		return e
	}
	u.index.Del(v)
	return nil
}

// Has v. Lock free.
// Time: O(1)
func (u *SyncTree[T]) Has(v T) bool {
	_, in := u.index.Get(v)
	return in
}

// View calls f with the underlying tree under the read lock. f mustn't modify the tree
// or keep any node after it returns.
func (u *SyncTree[T]) View(f func(*Trees.NTree[T])) {
	t := u.mu.RLock()
	defer u.mu.RUnlock(t)
	f(u.tree)
}

func (u *SyncTree[T]) Size() (sz uint) {
	u.View(func(t *Trees.NTree[T]) { sz = t.Size() })
	return
}

func (u *SyncTree[T]) Height() (h uint) {
	u.View(func(t *Trees.NTree[T]) { h = t.Height() })
	return
}

// Order never changes, so it needs no lock.
func (u *SyncTree[T]) Order() uint {
	return u.tree.Order()
}

func (u *SyncTree[T]) IsComplete() (b bool) {
	u.View(func(t *Trees.NTree[T]) { b = t.IsComplete() })
	return
}

func (u *SyncTree[T]) IsPerfect() (b bool) {
	u.View(func(t *Trees.NTree[T]) { b = t.IsPerfect() })
	return
}

func (u *SyncTree[T]) Full() (b bool) {
	u.View(func(t *Trees.NTree[T]) { b = t.Full() })
	return
}

func (u *SyncTree[T]) Balanced() (b bool) {
	u.View(func(t *Trees.NTree[T]) { b = t.Balanced() })
	return
}

func (u *SyncTree[T]) Values() (vs []T) {
	u.View(func(t *Trees.NTree[T]) { vs = t.Values() })
	return
}

func (u *SyncTree[T]) Edges() (es []Trees.Edge[T]) {
	u.View(func(t *Trees.NTree[T]) { es = t.Edges() })
	return
}

// Sorted values, see Trees.Sorted.
func (u *SyncTree[T]) Sorted() (vs []T) {
	u.View(func(t *Trees.NTree[T]) { vs = Trees.Sorted(t) })
	return
}
