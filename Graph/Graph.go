// Package Graph describes trees in the Graphviz DOT language. It only reads the
// enumeration a tree exposes (values and level order edges) and never changes it.
package Graph

import (
	"fmt"
	"os"
	"strings"

	"github.com/emicklei/dot"
	"github.com/g-m-twostay/narytree/Trees"
)

// Source is what a tree has to expose to be drawn. Trees.NTree and
// syncTree.SyncTree both satisfy it.
type Source[T comparable] interface {
	Order() uint
	Values() []T
	Edges() []Trees.Edge[T]
}

// Render src as a directed graph in DOT. Each value becomes a node labelled
// fmt.Sprint(value), each edge points from parent to child, in level order.
// Node IDs are level order positions, so values that print alike stay apart.
// An empty tree renders as "".
func Render[T comparable](src Source[T]) string {
	vs := src.Values()
	if len(vs) == 0 {
		return ""
	}
	g := dot.NewGraph(dot.Directed)
	g.Attr("comment", Name(src))
	nodes := make(map[T]dot.Node, len(vs))
	for i, v := range vs {
		nodes[v] = g.Node(fmt.Sprintf("n%d", i)).Label(fmt.Sprint(v))
	}
	for _, e := range src.Edges() {
		g.Edge(nodes[e.Parent], nodes[e.Child])
	}
	return g.String()
}

// Name of the graph of src, "<order>-ary tree".
func Name[T comparable](src Source[T]) string {
	return fmt.Sprintf("%d-ary tree", src.Order())
}

// WriteFile writes Render(src) to path, creating or truncating it.
func WriteFile[T comparable](src Source[T], path string) error {
	if e := os.WriteFile(path, []byte(Render(src)), 0o644); e != nil {
		return fmt.Errorf("writing graph of %s: %w", Name(src), e)
	}
	return nil
}

// Outline lists the values of tree in pre-order, one per line, indented by level.
func Outline[T comparable](tree *Trees.NTree[T], indent string) string {
	var sb strings.Builder
	tree.PreOrder(func(n *Trees.Node[T]) bool {
		for range n.Level() {
			sb.WriteString(indent)
		}
		fmt.Fprintln(&sb, n.Value())
		return true
	})
	return sb.String()
}
