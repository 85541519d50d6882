// Package adapter contains storage and filesystem adapters for mcyview.
package adapter

import (
	"errors"

	m "mcyview.dev/pkg/mcyview/internal/model"
)

var (
	// ErrNotFound is returned when a single-row query matches nothing.
	ErrNotFound = errors.New("not found")
	// ErrStoreUnavailable is returned when the database cannot be opened.
	ErrStoreUnavailable = errors.New("mutation database unavailable")
)

// MutationStore is the read-only query layer over a mutation cover database.
//
// Collection queries return an empty slice, not an error, for names and ids
// that do not exist; errors are reserved for driver failures. FileContent is
// the only query that reports ErrNotFound.
//
//nolint:interfacebloat // One method per query keeps call sites typed.
type MutationStore interface {
	// ListFiles returns file names in insertion order.
	ListFiles() ([]string, error)
	// FileContent returns the stored text of a file.
	FileContent(filename string) (string, error)
	// ListSources returns the distinct file names referenced by srctags.
	ListSources() ([]string, error)
	// SourceLines returns the line specs of a file ordered by line number.
	SourceLines(filename string) ([]string, error)
	// SourceTagsForFile returns every srctag under a file, from both the
	// sources table and mutation options.
	SourceTagsForFile(filename string) ([]m.SrcTag, error)
	// TagCountsForFile tallies the tags of mutations per srctag of a file.
	TagCountsForFile(filename string) ([]m.SourceTagCount, error)

	MutationIDs() ([]m.MutationID, error)
	MutationCount() (int, error)
	MutationsForSource(src m.SrcTag) ([]m.MutationID, error)
	SourcesForMutation(id m.MutationID) ([]m.SrcTag, error)
	MutationOptions(id m.MutationID) ([]m.Option, error)
	MutationResults(id m.MutationID) ([]m.TestResult, error)
	MutationTags(id m.MutationID) ([]string, error)

	// UniqueTags lists distinct tags, framed by the pseudo-tags.
	UniqueTags(includeAll bool) ([]string, error)
	MutationsWithNoTags() ([]m.MutationID, error)
	MutationsForTag(tag string) ([]m.MutationID, error)

	ResultCounts() ([]m.ResultCount, error)
	TagCounts() ([]m.TagCount, error)
	TagTally() (m.TagTally, error)

	Close() error
}

// StoreOpener opens a MutationStore for a database file.
type StoreOpener interface {
	Open(path m.Path) (MutationStore, error)
}
