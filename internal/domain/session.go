package domain

import (
	"fmt"

	"mcyview.dev/pkg/mcyview/internal/adapter"
	m "mcyview.dev/pkg/mcyview/internal/model"
)

// Session is a browsing session over one database. It satisfies
// controller.Navigator.
type Session struct {
	*Synchronizer
	store     adapter.MutationStore
	fs        adapter.SourceFSAdapter
	sourceDir m.Path
	tags      []string
}

// NewSession builds the projections of store and a fresh history.
func NewSession(store adapter.MutationStore, fs adapter.SourceFSAdapter, sourceDir m.Path, strict bool) (*Session, error) {
	forest, err := BuildForest(store)
	if err != nil {
		return nil, fmt.Errorf("browse: %w", err)
	}

	tags, err := store.UniqueTags(true)
	if err != nil {
		return nil, fmt.Errorf("browse: %w", err)
	}

	return &Session{
		Synchronizer: NewSynchronizer(store, forest, NewHistory(strict)),
		store:        store,
		fs:           fs,
		sourceDir:    sourceDir,
		tags:         tags,
	}, nil
}

// Roots returns the root nodes of a projection.
func (s *Session) Roots(view m.View) []int {
	t := s.Forest().Tree(view)
	if t == nil {
		return nil
	}

	return t.Roots
}

// Node returns a node of a projection.
func (s *Session) Node(view m.View, idx int) (m.Node, bool) {
	return s.Forest().Node(m.NodeRef{View: view, Node: idx})
}

// Tags lists the tag filter choices, "All tags" first and "No tags" last.
func (s *Session) Tags() []string {
	return s.tags
}

// Source reads a file and its coverage margin.
func (s *Session) Source(file string) (m.AnnotatedSource, error) {
	return annotate(s.store, s.fs, s.sourceDir, file)
}
