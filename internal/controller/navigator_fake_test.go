package controller

import (
	m "mcyview.dev/pkg/mcyview/internal/model"
)

// fakeNavigator serves fixed projections and records the events it receives.
type fakeNavigator struct {
	trees   map[m.View][]m.Node
	tags    []string
	sources map[string]m.AnnotatedSource
	respond func(event m.Inbound) ([]m.Outbound, error)

	events      []m.Inbound
	sourceCalls int
}

// newFakeNavigator builds the top.v scenario:
//
//	Sources:   top.v -> 5 -> 1, 2 ; 9 -> 3
//	Mutations: 1 -> top.v:5
//	Tags:      COVERED -> 1
func newFakeNavigator() *fakeNavigator {
	return &fakeNavigator{
		trees: map[m.View][]m.Node{
			m.ViewSources: {
				{Kind: m.KindFile, Label: "top.v", Value: "top.v", Parent: m.NoNode, Children: []int{1, 4}},
				{Kind: m.KindLine, Label: "5", Value: "top.v:5", Parent: 0, Children: []int{2, 3}},
				{Kind: m.KindMutation, Label: "1", Mutation: 1, Parent: 1},
				{Kind: m.KindMutation, Label: "2", Mutation: 2, Parent: 1},
				{Kind: m.KindLine, Label: "9", Value: "top.v:9", Parent: 0, Children: []int{5}},
				{Kind: m.KindMutation, Label: "3", Mutation: 3, Parent: 4},
			},
			m.ViewMutations: {
				{Kind: m.KindMutation, Label: "1", Mutation: 1, Parent: m.NoNode, Children: []int{1}},
				{Kind: m.KindSource, Label: "top.v:5", Value: "top.v:5", Mutation: 1, Parent: 0},
			},
			m.ViewTags: {
				{Kind: m.KindTag, Label: m.TagCovered, Value: m.TagCovered, Parent: m.NoNode, Children: []int{1}},
				{Kind: m.KindMutation, Label: "1", Mutation: 1, Parent: 0},
			},
		},
		tags: []string{m.AllTags, m.TagCovered, m.NoTags},
		sources: map[string]m.AnnotatedSource{
			"top.v": {File: "top.v", Lines: []m.SourceLine{
				{Number: 1, Text: "module top;"},
				{Number: 2, Text: "assign a = b;", Margin: "1"},
				{Number: 3, Text: "assign c = d;", Margin: "-1", Attention: true},
				{Number: 4, Text: "endmodule"},
			}},
		},
	}
}

func (f *fakeNavigator) Dispatch(event m.Inbound) ([]m.Outbound, error) {
	f.events = append(f.events, event)

	if f.respond != nil {
		return f.respond(event)
	}

	return []m.Outbound{m.HistoryButtons{}}, nil
}

func (f *fakeNavigator) Roots(view m.View) []int {
	var roots []int

	for i, n := range f.trees[view] {
		if n.Parent == m.NoNode {
			roots = append(roots, i)
		}
	}

	return roots
}

func (f *fakeNavigator) Node(view m.View, idx int) (m.Node, bool) {
	nodes := f.trees[view]
	if idx < 0 || idx >= len(nodes) {
		return m.Node{}, false
	}

	return nodes[idx], true
}

func (f *fakeNavigator) Tags() []string {
	return f.tags
}

func (f *fakeNavigator) Source(file string) (m.AnnotatedSource, error) {
	f.sourceCalls++

	source, ok := f.sources[file]
	if !ok {
		return m.AnnotatedSource{}, errNoSuchFile
	}

	return source, nil
}

func (f *fakeNavigator) hide(view m.View, idx int) {
	f.trees[view][idx].Hidden = true
}
