package Trees

import "fmt"

// Kind of a TreeError.
type Kind byte

const (
	InvalidOrder Kind = iota + 1
	DuplicateValue
	ParentNotFound
	CapacityExceeded
	EmptyTree
	ValueNotFound
)

func (k Kind) String() string {
	switch k {
	case InvalidOrder:
		return "invalid order"
	case DuplicateValue:
		return "duplicate value"
	case ParentNotFound:
		return "parent not found"
	case CapacityExceeded:
		return "capacity exceeded"
	case EmptyTree:
		return "empty tree"
	case ValueNotFound:
		return "value not found"
	}
	return fmt.Sprintf("Kind(%d)", byte(k))
}

// TreeError is returned by every failing NTree operation. Value and Parent are the
// operands of the failed call, formatted with fmt; they are empty when unused.
// errors.Is matches a TreeError against the sentinel of the same Kind.
type TreeError struct {
	Kind          Kind
	Value, Parent string
}

var (
	ErrInvalidOrder     = &TreeError{Kind: InvalidOrder}
	ErrDuplicateValue   = &TreeError{Kind: DuplicateValue}
	ErrParentNotFound   = &TreeError{Kind: ParentNotFound}
	ErrCapacityExceeded = &TreeError{Kind: CapacityExceeded}
	ErrEmptyTree        = &TreeError{Kind: EmptyTree}
	ErrValueNotFound    = &TreeError{Kind: ValueNotFound}
)

func (e *TreeError) Error() string {
	switch e.Kind {
	case InvalidOrder:
		return fmt.Sprintf("order of a tree must have a value of at least 2, got %s", e.Value)
	case DuplicateValue:
		return fmt.Sprintf("cannot insert %s: node already exists in the tree", e.Value)
	case ParentNotFound:
		return fmt.Sprintf("cannot insert new node %s: parent node with the value of %s does not exist in the tree", e.Value, e.Parent)
	case CapacityExceeded:
		return fmt.Sprintf("cannot insert new node %s: reached maximum amount of children for parent %s", e.Value, e.Parent)
	case EmptyTree:
		return "cannot delete node: tree is empty"
	case ValueNotFound:
		return fmt.Sprintf("cannot delete node: %s does not exist in the tree", e.Value)
	}
	return e.Kind.String()
}

// Is reports whether target is a *TreeError of the same Kind.
func (e *TreeError) Is(target error) bool {
	t, ok := target.(*TreeError)
	return ok && t.Kind == e.Kind
}

func newError[T comparable](k Kind, v T) *TreeError {
	return &TreeError{Kind: k, Value: fmt.Sprint(v)}
}

func newParentError[T comparable](k Kind, v, parent T) *TreeError {
	return &TreeError{Kind: k, Value: fmt.Sprint(v), Parent: fmt.Sprint(parent)}
}
