package domain

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"mcyview.dev/pkg/mcyview/internal/adapter"
	m "mcyview.dev/pkg/mcyview/internal/model"
)

// Tree is one projection of the database as an arena of nodes.
type Tree struct {
	View  m.View
	Nodes []m.Node
	Roots []int
}

func (t *Tree) add(parent int, node m.Node) int {
	node.Parent = parent
	idx := len(t.Nodes)
	t.Nodes = append(t.Nodes, node)

	if parent == m.NoNode {
		t.Roots = append(t.Roots, idx)
	} else {
		t.Nodes[parent].Children = append(t.Nodes[parent].Children, idx)
	}

	return idx
}

// Node returns the node at idx.
func (t *Tree) Node(idx int) (m.Node, bool) {
	if idx < 0 || idx >= len(t.Nodes) {
		return m.Node{}, false
	}

	return t.Nodes[idx], true
}

func (t *Tree) parent(idx int) (m.Node, bool) {
	return t.Node(t.Nodes[idx].Parent)
}

// Forest holds the three projections: by source, by mutation and by tag.
type Forest struct {
	trees [3]*Tree
}

// BuildForest reads the store and builds every projection.
//
//	Sources:   file -> line -> mutation
//	Mutations: mutation -> source
//	Tags:      tag -> mutation -> source
func BuildForest(store adapter.MutationStore) (*Forest, error) {
	f := &Forest{}
	for _, v := range m.Views {
		f.trees[v] = &Tree{View: v}
	}

	if err := f.buildSources(store); err != nil {
		return nil, err
	}

	if err := f.buildMutations(store); err != nil {
		return nil, err
	}

	if err := f.buildTags(store); err != nil {
		return nil, err
	}

	return f, nil
}

func (f *Forest) buildSources(store adapter.MutationStore) error {
	t := f.trees[m.ViewSources]

	files, err := store.ListSources()
	if err != nil {
		return fmt.Errorf("build source view: %w", err)
	}

	for _, file := range files {
		fileNode := t.add(m.NoNode, m.Node{Kind: m.KindFile, Label: file, Value: file})

		lines, err := store.SourceLines(file)
		if err != nil {
			return fmt.Errorf("build source view for %s: %w", file, err)
		}

		for _, spec := range lines {
			src := m.NewSrcTag(file, spec)
			lineNode := t.add(fileNode, m.Node{Kind: m.KindLine, Label: spec, Value: string(src)})

			ids, err := store.MutationsForSource(src)
			if err != nil {
				return fmt.Errorf("build source view for %s: %w", src, err)
			}

			for _, id := range ids {
				t.add(lineNode, m.Node{Kind: m.KindMutation, Label: id.String(), Mutation: id})
			}
		}
	}

	return nil
}

func (f *Forest) buildMutations(store adapter.MutationStore) error {
	t := f.trees[m.ViewMutations]

	ids, err := store.MutationIDs()
	if err != nil {
		return fmt.Errorf("build mutation view: %w", err)
	}

	for _, id := range ids {
		if err := addMutation(t, store, m.NoNode, id); err != nil {
			return err
		}
	}

	return nil
}

func (f *Forest) buildTags(store adapter.MutationStore) error {
	t := f.trees[m.ViewTags]

	tags, err := store.UniqueTags(false)
	if err != nil {
		return fmt.Errorf("build tag view: %w", err)
	}

	for _, tag := range tags {
		tagNode := t.add(m.NoNode, m.Node{Kind: m.KindTag, Label: tag, Value: tag})

		ids, err := store.MutationsForTag(tag)
		if err != nil {
			return fmt.Errorf("build tag view for %q: %w", tag, err)
		}

		for _, id := range ids {
			if err := addMutation(t, store, tagNode, id); err != nil {
				return err
			}
		}
	}

	return nil
}

func addMutation(t *Tree, store adapter.MutationStore, parent int, id m.MutationID) error {
	node := t.add(parent, m.Node{Kind: m.KindMutation, Label: id.String(), Mutation: id})

	srcs, err := store.SourcesForMutation(id)
	if err != nil {
		return fmt.Errorf("sources of mutation %d: %w", id, err)
	}

	for _, src := range srcs {
		t.add(node, m.Node{Kind: m.KindSource, Label: string(src), Value: string(src), Mutation: id})
	}

	return nil
}

// Tree returns the projection for v, or nil for an unknown view.
func (f *Forest) Tree(v m.View) *Tree {
	if !v.Valid() {
		return nil
	}

	return f.trees[v]
}

// Node returns the node ref points at.
func (f *Forest) Node(ref m.NodeRef) (m.Node, bool) {
	t := f.Tree(ref.View)
	if t == nil {
		return m.Node{}, false
	}

	return t.Node(ref.Node)
}

// Resolve maps a node to the (source, mutation) pair it stands for. NoNode
// resolves to the empty selection.
func (f *Forest) Resolve(ref m.NodeRef) (m.Selection, error) {
	t := f.Tree(ref.View)
	if t == nil {
		return m.Selection{}, fmt.Errorf("%w: unknown view %d", ErrProtocolViolation, ref.View)
	}

	if ref.Node == m.NoNode {
		return m.Selection{}, nil
	}

	node, ok := t.Node(ref.Node)
	if !ok {
		return m.Selection{}, fmt.Errorf("%w: no node %d in %s view", ErrProtocolViolation, ref.Node, ref.View)
	}

	switch node.Kind {
	case m.KindFile:
		return m.Selection{File: node.Value}, nil
	case m.KindLine:
		return sourceSelection(m.SrcTag(node.Value), 0, false), nil
	case m.KindSource:
		return sourceSelection(m.SrcTag(node.Value), node.Mutation, true), nil
	case m.KindMutation:
		// A mutation leaf of the source view inherits its line.
		if parent, ok := t.parent(ref.Node); ok && parent.Kind == m.KindLine {
			return sourceSelection(m.SrcTag(parent.Value), node.Mutation, true), nil
		}

		return m.Selection{Mutation: node.Mutation, HasMutation: true}, nil
	default:
		// Tag nodes stand for no single mutation.
		return m.Selection{}, nil
	}
}

func sourceSelection(src m.SrcTag, id m.MutationID, hasMutation bool) m.Selection {
	sel := m.Selection{Source: src, Mutation: id, HasMutation: hasMutation}

	loc, err := m.ParseSrcTag(src)
	if err != nil {
		slog.Warn("Selected source reference is malformed", "srctag", src, "error", err)
		return sel
	}

	sel.File = loc.File

	return sel
}

// FindSource locates the line node of src in the source view. A line node
// whose srctag is src followed by a column range also matches.
func (f *Forest) FindSource(src m.SrcTag) (m.NodeRef, bool) {
	t := f.trees[m.ViewSources]
	prefix := string(src) + "."

	for i, n := range t.Nodes {
		if n.Kind == m.KindLine && (n.Value == string(src) || strings.HasPrefix(n.Value, prefix)) {
			return m.NodeRef{View: m.ViewSources, Node: i}, true
		}
	}

	return m.NodeRef{}, false
}

// FindLine locates the first line node of file whose leading line is line.
func (f *Forest) FindLine(file string, line int) (m.NodeRef, bool) {
	return f.FindSource(m.NewSrcTag(file, strconv.Itoa(line)))
}

// FindMutation locates the root node of a mutation in the mutation view.
func (f *Forest) FindMutation(id m.MutationID) (m.NodeRef, bool) {
	t := f.trees[m.ViewMutations]

	for _, i := range t.Roots {
		if t.Nodes[i].Mutation == id {
			return m.NodeRef{View: m.ViewMutations, Node: i}, true
		}
	}

	return m.NodeRef{}, false
}

// FindMutationLeaf locates a mutation under the line node of src in the
// source view.
func (f *Forest) FindMutationLeaf(src m.SrcTag, id m.MutationID) (m.NodeRef, bool) {
	line, ok := f.FindSource(src)
	if !ok {
		return m.NodeRef{}, false
	}

	t := f.trees[m.ViewSources]
	for _, c := range t.Nodes[line.Node].Children {
		if t.Nodes[c].Mutation == id {
			return m.NodeRef{View: m.ViewSources, Node: c}, true
		}
	}

	return m.NodeRef{}, false
}

// ApplyFilter shows or hides every mutation node of every projection and
// returns how many mutation nodes are hidden.
func (f *Forest) ApplyFilter(v Visibility) int {
	hidden := 0

	for _, t := range f.trees {
		for i := range t.Nodes {
			n := &t.Nodes[i]
			if n.Kind != m.KindMutation {
				continue
			}

			n.Hidden = !v.Visible(n.Mutation)
			if n.Hidden {
				hidden++
			}
		}
	}

	return hidden
}

// Reveal shows the node at ref and every ancestor of it, so that a node the
// tag filter hid can still be made current.
func (f *Forest) Reveal(ref m.NodeRef) {
	t := f.Tree(ref.View)
	if t == nil {
		return
	}

	for idx := ref.Node; idx >= 0 && idx < len(t.Nodes); idx = t.Nodes[idx].Parent {
		t.Nodes[idx].Hidden = false
	}
}

// Visible reports whether a node and all its ancestors are shown.
func (t *Tree) Visible(idx int) bool {
	for idx != m.NoNode {
		n, ok := t.Node(idx)
		if !ok || n.Hidden {
			return false
		}

		idx = n.Parent
	}

	return true
}
