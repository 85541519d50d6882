package domain

import (
	"fmt"
	"log/slog"

	"mcyview.dev/pkg/mcyview/internal/adapter"
	m "mcyview.dev/pkg/mcyview/internal/model"
)

// Visibility is the mutation visibility predicate for one tag filter.
type Visibility struct {
	Tag string
	all bool
	ids map[m.MutationID]struct{}
}

// Visible reports whether a mutation passes the filter.
func (v Visibility) Visible(id m.MutationID) bool {
	if v.all {
		return true
	}

	_, ok := v.ids[id]

	return ok
}

// ShowAll is the filter of the "All tags" pseudo-tag.
func ShowAll() Visibility {
	return Visibility{Tag: m.AllTags, all: true}
}

// TagFilter computes visibility for a selected tag token.
type TagFilter interface {
	Visibility(tag string) (Visibility, error)
}

type tagFilter struct {
	store adapter.MutationStore
}

// NewTagFilter constructs a TagFilter over store.
func NewTagFilter(store adapter.MutationStore) TagFilter {
	return &tagFilter{store: store}
}

// Visibility returns the predicate for tag. An empty tag means "All tags".
func (f *tagFilter) Visibility(tag string) (Visibility, error) {
	if tag == "" || tag == m.AllTags {
		return ShowAll(), nil
	}

	// MutationsForTag delegates "No tags" to the anti-join.
	ids, err := f.store.MutationsForTag(tag)
	if err != nil {
		slog.Error("Failed to load mutations for tag", "tag", tag, "error", err)
		return Visibility{}, fmt.Errorf("mutations for tag %q: %w", tag, err)
	}

	v := Visibility{Tag: tag, ids: make(map[m.MutationID]struct{}, len(ids))}
	for _, id := range ids {
		v.ids[id] = struct{}{}
	}

	return v, nil
}
