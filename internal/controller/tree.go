package controller

import (
	m "mcyview.dev/pkg/mcyview/internal/model"
)

// treeRow is a visible node of a projection at a given depth.
type treeRow struct {
	index int
	depth int
	node  m.Node
}

// flatten lists the visible rows of a projection in display order. Children
// are listed only for expanded nodes; a nil expanded map expands everything.
// Hidden nodes and their subtrees are skipped.
func flatten(nav Navigator, view m.View, expanded map[int]bool) []treeRow {
	var rows []treeRow

	var walk func(idx, depth int)

	walk = func(idx, depth int) {
		node, ok := nav.Node(view, idx)
		if !ok || node.Hidden {
			return
		}

		rows = append(rows, treeRow{index: idx, depth: depth, node: node})

		if expanded != nil && !expanded[idx] {
			return
		}

		for _, child := range node.Children {
			walk(child, depth+1)
		}
	}

	for _, root := range nav.Roots(view) {
		walk(root, 0)
	}

	return rows
}

// ancestors returns the parents of idx, nearest first.
func ancestors(nav Navigator, view m.View, idx int) []int {
	var result []int

	node, ok := nav.Node(view, idx)
	for ok && node.Parent != m.NoNode {
		result = append(result, node.Parent)
		node, ok = nav.Node(view, node.Parent)
	}

	return result
}
