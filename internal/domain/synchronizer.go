package domain

import (
	"fmt"
	"log/slog"

	"mcyview.dev/pkg/mcyview/internal/adapter"
	m "mcyview.dev/pkg/mcyview/internal/model"
)

// Synchronizer keeps the three projections, the property panel and the code
// viewer in step. Each inbound event is handled by Dispatch, which returns the
// outbound events for the presentation layer in order.
type Synchronizer struct {
	store   adapter.MutationStore
	forest  *Forest
	history *History
	filter  TagFilter

	current [3]int
	active  m.View
	tag     string
}

// NewSynchronizer wires a Synchronizer over a built forest. Nothing is
// selected initially and the filter shows all tags.
func NewSynchronizer(store adapter.MutationStore, forest *Forest, history *History) *Synchronizer {
	s := &Synchronizer{
		store:   store,
		forest:  forest,
		history: history,
		filter:  NewTagFilter(store),
		active:  m.ViewSources,
		tag:     m.AllTags,
	}

	for i := range s.current {
		s.current[i] = m.NoNode
	}

	return s
}

// Dispatch handles one inbound event. The returned events always end with
// the history button state, also when err is not nil.
func (s *Synchronizer) Dispatch(event m.Inbound) ([]m.Outbound, error) {
	var (
		out []m.Outbound
		err error
	)

	switch ev := event.(type) {
	case m.SelectionChanged:
		out, err = s.selectNode(m.NodeRef(ev))
	case m.NodeActivated:
		out, err = s.activate(m.NodeRef(ev))
	case m.TagFilterChanged:
		out, err = s.changeFilter(ev.Tag)
	case m.HistoryNav:
		out, err = s.navigate(ev.Direction)
	case m.ViewChanged:
		out, err = s.changeView(ev.View)
	case m.LineClicked:
		out, err = s.clickLine(ev.File, ev.Line)
	case m.PropertyActivated:
		out, err = s.activateProperty(ev.Option)
	default:
		err = s.history.violation("unsupported event %T", event)
	}

	if err != nil {
		slog.Debug("Event not handled", "event", fmt.Sprintf("%T", event), "error", err)
	}

	return append(out, s.history.Buttons()), err
}

// Forest exposes the projections for rendering.
func (s *Synchronizer) Forest() *Forest {
	return s.forest
}

// History exposes the navigation history.
func (s *Synchronizer) History() *History {
	return s.history
}

// Current returns the selected node of a view.
func (s *Synchronizer) Current(v m.View) int {
	if !v.Valid() {
		return m.NoNode
	}

	return s.current[v]
}

// Active returns the view shown last.
func (s *Synchronizer) Active() m.View {
	return s.active
}

// Filter returns the active tag filter.
func (s *Synchronizer) Filter() string {
	return s.tag
}

// selectNode is the single selection path. User selections and history
// replays both go through it; a replay is absorbed by History.Record.
func (s *Synchronizer) selectNode(ref m.NodeRef) ([]m.Outbound, error) {
	sel, err := s.forest.Resolve(ref)
	if err != nil {
		return nil, s.history.fail(err)
	}

	s.active = ref.View
	s.current[ref.View] = ref.Node

	if ref.Node != m.NoNode {
		s.history.Record(ref)
	}

	if sel.Empty() {
		return []m.Outbound{m.ClearProperties{}, m.UnselectLine{}}, nil
	}

	rec, err := s.record(sel)
	if err != nil {
		return []m.Outbound{m.ClearProperties{}}, err
	}

	out := []m.Outbound{m.ShowProperties{Record: rec}}
	if sel.File == "" {
		return append(out, m.UnselectLine{}), nil
	}

	return append(out, m.SelectLine{File: sel.File, LineSpec: sel.LineSpec()}), nil
}

func (s *Synchronizer) record(sel m.Selection) (m.PropertyRecord, error) {
	rec := m.PropertyRecord{
		File:        sel.File,
		Source:      sel.Source,
		Mutation:    sel.Mutation,
		HasMutation: sel.HasMutation,
	}

	if !sel.HasMutation {
		return rec, nil
	}

	var err error

	if rec.Options, err = s.store.MutationOptions(sel.Mutation); err != nil {
		return rec, fmt.Errorf("properties of mutation %d: %w", sel.Mutation, err)
	}

	if rec.Tags, err = s.store.MutationTags(sel.Mutation); err != nil {
		return rec, fmt.Errorf("properties of mutation %d: %w", sel.Mutation, err)
	}

	if rec.Results, err = s.store.MutationResults(sel.Mutation); err != nil {
		return rec, fmt.Errorf("properties of mutation %d: %w", sel.Mutation, err)
	}

	rec.Description = Describe(rec.Options)

	return rec, nil
}

func (s *Synchronizer) jump(ref m.NodeRef) ([]m.Outbound, error) {
	s.forest.Reveal(ref)

	out, err := s.selectNode(ref)

	return append([]m.Outbound{m.ShowNode{Ref: ref}}, out...), err
}

func (s *Synchronizer) activate(ref m.NodeRef) ([]m.Outbound, error) {
	node, ok := s.forest.Node(ref)
	if !ok {
		return nil, s.history.violation("activate missing node %d in %s view", ref.Node, ref.View)
	}

	var (
		target m.NodeRef
		found  bool
	)

	switch {
	case node.Kind == m.KindSource:
		target, found = s.forest.FindSource(m.SrcTag(node.Value))
	case node.Kind == m.KindMutation && ref.View != m.ViewMutations:
		target, found = s.forest.FindMutation(node.Mutation)
	default:
		return nil, nil
	}

	if !found {
		slog.Debug("Jump target not found", "view", ref.View, "node", ref.Node)
		return nil, nil
	}

	return s.jump(target)
}

func (s *Synchronizer) changeFilter(tag string) ([]m.Outbound, error) {
	v, err := s.filter.Visibility(tag)
	if err != nil {
		return nil, err
	}

	s.tag = v.Tag
	hidden := s.forest.ApplyFilter(v)

	return []m.Outbound{m.FilterApplied{Tag: v.Tag, Hidden: hidden}}, nil
}

func (s *Synchronizer) navigate(dir m.Direction) ([]m.Outbound, error) {
	var (
		entry HistoryEntry
		err   error
	)

	switch dir {
	case m.NavFirst:
		entry, err = s.history.First()
	case m.NavPrev:
		entry, err = s.history.Prev()
	case m.NavNext:
		entry, err = s.history.Next()
	case m.NavLast:
		entry, err = s.history.Last()
	case m.NavClear:
		s.clearHistory()
		return nil, nil
	default:
		return nil, s.history.violation("unknown direction %d", dir)
	}

	if err != nil {
		return nil, err
	}

	return s.jump(entry)
}

func (s *Synchronizer) clearHistory() {
	current := HistoryEntry{View: s.active, Node: s.current[s.active]}
	if current.Node == m.NoNode {
		s.history.Clear(nil)
		return
	}

	s.history.Clear(&current)
}

func (s *Synchronizer) changeView(v m.View) ([]m.Outbound, error) {
	if !v.Valid() {
		return nil, s.history.violation("unknown view %d", v)
	}

	return s.selectNode(m.NodeRef{View: v, Node: s.current[v]})
}

func (s *Synchronizer) clickLine(file string, line int) ([]m.Outbound, error) {
	ref, ok := s.forest.FindLine(file, line)
	if !ok {
		return nil, nil
	}

	return s.jump(ref)
}

func (s *Synchronizer) activateProperty(opt m.Option) ([]m.Outbound, error) {
	if opt.Type != m.OptionSource {
		return nil, nil
	}

	ref, ok := s.forest.FindSource(m.SrcTag(opt.Value))
	if !ok {
		return nil, nil
	}

	return s.jump(ref)
}
