package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/g-m-twostay/narytree/Graph"
	"github.com/g-m-twostay/narytree/Trees"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#78a9ff"))
	keyStyle   = lipgloss.NewStyle().Width(10).Foreground(lipgloss.Color("#8d8d8d"))
	yesStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#3ddbd9"))
	noStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#da1e28"))
)

func yesNo(b bool) string {
	if b {
		return yesStyle.Render("yes")
	}
	return noStyle.Render("no")
}

func walk(f func(func(*Trees.Node[string]) bool)) string {
	var vs []string
	f(func(n *Trees.Node[string]) bool {
		vs = append(vs, n.Value())
		return true
	})
	return strings.Join(vs, " ")
}

// report describes tree: counters, shape predicates, traversals and an outline.
func report(tree *Trees.NTree[string]) string {
	levels, balanced := tree.IsBalanced(tree.Root())
	rows := [][2]string{
		{"order", fmt.Sprint(tree.Order())},
		{"size", fmt.Sprint(tree.Size())},
		{"height", fmt.Sprint(tree.Height())},
		{"levels", fmt.Sprint(levels)},
		{"complete", yesNo(tree.IsComplete())},
		{"perfect", yesNo(tree.IsPerfect())},
		{"full", yesNo(tree.Full())},
		{"balanced", yesNo(balanced)},
		{"pre", walk(tree.PreOrder)},
		{"post", walk(tree.PostOrder)},
		{"level", walk(tree.LevelOrder)},
		{"sorted", strings.Join(Trees.Sorted(tree), " ")},
	}
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(Graph.Name[string](tree)))
	sb.WriteByte('\n')
	for _, r := range rows {
		sb.WriteString(keyStyle.Render(r[0]))
		sb.WriteString(r[1])
		sb.WriteByte('\n')
	}
	if !tree.Empty() {
		sb.WriteByte('\n')
		sb.WriteString(Graph.Outline(tree, "  "))
	}
	return sb.String()
}
