package Trees

// Tree represents an N-ary tree whose nodes hold unique values. Every node
// has at most Order() children. Receivers returning an error report one of
// the kinds in TreeError and leave the tree unchanged.
// If an implementation didn't specify anything special, then the implemented
// receivers follows the behaviors defined here. Methods implemented recursively
// should be noted, otherwise functions are implemented iteratively.
type Tree[T comparable] interface {
	//Insert v under the shallowest, leftmost node that still has room.
	//The first value inserted into an empty tree becomes the root.
	Insert(v T) error
	//InsertUnder appends v as the last child of the node holding parent.
	InsertUnder(v, parent T) error
	//Delete v from the Tree. See NTree.Delete for how the remaining nodes
	//are rearranged.
	Delete(v T) error
	//Has element v.
	Has(v T) bool
	//Size of the tree, the number of nodes.
	Size() uint
	//Height is the greatest level among the nodes, 0 for an empty tree.
	Height() uint
	//Order is the maximum number of children of one node.
	Order() uint
	//IsComplete returns whether every level except the last is full and
	//the last one is filled from the left.
	IsComplete() bool
	//IsPerfect returns whether every internal node has Order() children and
	//all leaves share one level.
	IsPerfect() bool
	//Full returns whether every node has either 0 or Order() children.
	Full() bool
	//Balanced returns whether sibling subtree heights differ by at most 1
	//everywhere in the tree.
	Balanced() bool
	//Values in level order.
	Values() []T
	//Edges in level order.
	Edges() []Edge[T]
}

// Edge links the value of a parent to the value of one of its children.
type Edge[T comparable] struct {
	Parent, Child T
}
