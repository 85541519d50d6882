package domain

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"mcyview.dev/pkg/mcyview/internal/adapter"
	controllermocks "mcyview.dev/pkg/mcyview/internal/controller/mocks"
	m "mcyview.dev/pkg/mcyview/internal/model"
	"mcyview.dev/pkg/mcyview/internal/testutil"
)

func newTestWorkflow(t *testing.T) (Workflow, *controllermocks.MockUI, StoreArgs) {
	t.Helper()

	db := testutil.NewMutationDB(t).TopV()
	ui := controllermocks.NewMockUI(t)
	wf := NewWorkflow(adapter.NewLocalSourceFSAdapter(), adapter.NewStoreOpener(), ui)

	return wf, ui, StoreArgs{Database: db.Path()}
}

func TestWorkflow_Status(t *testing.T) {
	wf, ui, args := newTestWorkflow(t)

	ui.On("DisplaySummary", mock.Anything, m.Summary{
		Database:  args.Database,
		Mutations: 3,
		Untagged:  1,
		Results: []m.ResultCount{
			{Test: "eq", Result: "PASS", Count: 1},
			{Test: "sim", Result: "FAIL", Count: 1},
			{Test: "sim", Result: "PASS", Count: 1},
		},
		Tags: []m.TagCount{
			{Tag: m.TagCovered, Count: 1},
			{Tag: m.TagUncovered, Count: 1},
		},
		Tally: m.TagTally{Covered: 1, Uncovered: 1, Tagged: 2},
	}).Return(nil).Once()

	require.NoError(t, wf.Status(context.Background(), args))
}

func TestWorkflow_StatusFindsDatabaseInProject(t *testing.T) {
	project := t.TempDir()
	dir := filepath.Join(project, "database")
	require.NoError(t, os.Mkdir(dir, 0o755))

	db := testutil.NewMutationDB(t).TopV()
	content, err := os.ReadFile(string(db.Path()))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "db.sqlite3"), content, 0o600))

	ui := controllermocks.NewMockUI(t)
	wf := NewWorkflow(adapter.NewLocalSourceFSAdapter(), adapter.NewStoreOpener(), ui)

	ui.On("DisplaySummary", mock.Anything, mock.MatchedBy(func(s m.Summary) bool {
		return s.Database == m.Path(filepath.Join(dir, "db.sqlite3")) && s.Mutations == 3
	})).Return(nil).Once()

	require.NoError(t, wf.Status(context.Background(), StoreArgs{Database: m.Path(project)}))
}

func TestWorkflow_MissingDatabase(t *testing.T) {
	ui := controllermocks.NewMockUI(t)
	wf := NewWorkflow(adapter.NewLocalSourceFSAdapter(), adapter.NewStoreOpener(), ui)

	err := wf.Status(context.Background(), StoreArgs{Database: m.Path(t.TempDir())})
	require.ErrorIs(t, err, adapter.ErrStoreUnavailable)

	err = wf.Tags(context.Background(), StoreArgs{Database: m.Path(filepath.Join(t.TempDir(), "nope.sqlite3"))})
	require.ErrorIs(t, err, adapter.ErrStoreUnavailable)
}

func TestWorkflow_Tags(t *testing.T) {
	wf, ui, args := newTestWorkflow(t)

	ui.On("DisplayTags", mock.Anything, []m.TagCount{
		{Tag: m.TagCovered, Count: 1},
		{Tag: m.TagUncovered, Count: 1},
	}).Return(nil).Once()

	require.NoError(t, wf.Tags(context.Background(), args))
}

func TestWorkflow_Coverage(t *testing.T) {
	wf, ui, args := newTestWorkflow(t)

	var got []m.FileCoverage

	ui.On("DisplayCoverage", mock.Anything, mock.Anything).
		Run(func(a mock.Arguments) { got = a.Get(1).([]m.FileCoverage) }).
		Return(nil).Once()

	require.NoError(t, wf.Coverage(context.Background(), CoverageArgs{StoreArgs: args, Parallel: 2}))

	require.Len(t, got, 1)
	assert.Equal(t, "top.v", got[0].File)
	assert.Equal(t, map[int]m.LineCoverage{5: {Covered: 1}, 9: {Uncovered: 1}}, got[0].Lines)
}

func TestWorkflow_CoverageOfNamedFiles(t *testing.T) {
	wf, ui, args := newTestWorkflow(t)

	ui.On("DisplayCoverage", mock.Anything, mock.MatchedBy(func(files []m.FileCoverage) bool {
		return len(files) == 2 && files[0].File == "other.v" && files[1].File == "top.v"
	})).Return(nil).Once()

	require.NoError(t, wf.Coverage(context.Background(), CoverageArgs{StoreArgs: args, Files: []string{"other.v", "top.v"}}))
}

func TestWorkflow_Show(t *testing.T) {
	t.Run("mutation", func(t *testing.T) {
		wf, ui, args := newTestWorkflow(t)

		ui.On("DisplayProperties", mock.Anything, mock.MatchedBy(func(r m.PropertyRecord) bool {
			return r.Mutation == 3 && r.HasMutation && r.Source == "" &&
				r.Description == "In module top, cell $and$2:\nIf bit 2 of port A is 1, invert bit 3."
		})).Return(nil).Once()

		require.NoError(t, wf.Show(context.Background(), ShowArgs{StoreArgs: args, Mutation: 3, HasMutation: true}))
	})

	t.Run("source", func(t *testing.T) {
		wf, ui, args := newTestWorkflow(t)

		ui.On("DisplayProperties", mock.Anything,
			m.PropertyRecord{File: "top.v", Source: "top.v:9"},
		).Return(nil).Once()

		require.NoError(t, wf.Show(context.Background(), ShowArgs{StoreArgs: args, Source: "top.v:9"}))
	})

	t.Run("unknown mutation", func(t *testing.T) {
		wf, _, args := newTestWorkflow(t)

		err := wf.Show(context.Background(), ShowArgs{StoreArgs: args, Mutation: 99, HasMutation: true})
		require.ErrorIs(t, err, adapter.ErrNotFound)
	})

	t.Run("unknown source", func(t *testing.T) {
		wf, _, args := newTestWorkflow(t)

		err := wf.Show(context.Background(), ShowArgs{StoreArgs: args, Source: "top.v:6"})
		require.ErrorIs(t, err, adapter.ErrNotFound)
	})
}

func TestWorkflow_Source(t *testing.T) {
	t.Run("from database", func(t *testing.T) {
		wf, ui, args := newTestWorkflow(t)

		var got m.AnnotatedSource

		ui.On("DisplaySource", mock.Anything, mock.Anything).
			Run(func(a mock.Arguments) { got = a.Get(1).(m.AnnotatedSource) }).
			Return(nil).Once()

		require.NoError(t, wf.Source(context.Background(), SourceArgs{StoreArgs: args, File: "top.v"}))

		require.Len(t, got.Lines, 10)
		assert.Equal(t, m.SourceLine{Number: 5, Text: "assign a = b;", Margin: "1"}, got.Lines[4])
		assert.Equal(t, m.SourceLine{Number: 9, Text: "assign c = d;", Margin: "-1", Attention: true}, got.Lines[8])
		assert.Empty(t, got.Lines[0].Margin)
	})

	t.Run("from source directory", func(t *testing.T) {
		wf, ui, args := newTestWorkflow(t)

		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "top.v"), []byte("// edited\n"), 0o600))
		args.SourceDir = m.Path(dir)

		ui.On("DisplaySource", mock.Anything, mock.MatchedBy(func(s m.AnnotatedSource) bool {
			return len(s.Lines) == 1 && s.Lines[0].Text == "// edited"
		})).Return(nil).Once()

		require.NoError(t, wf.Source(context.Background(), SourceArgs{StoreArgs: args, File: "top.v"}))
	})

	t.Run("file not in database", func(t *testing.T) {
		wf, _, args := newTestWorkflow(t)

		err := wf.Source(context.Background(), SourceArgs{StoreArgs: args, File: "nope.v"})
		require.ErrorIs(t, err, ErrFileNotInDatabase)
		require.ErrorIs(t, err, adapter.ErrNotFound)
	})
}

func TestWorkflow_Browse(t *testing.T) {
	wf, ui, args := newTestWorkflow(t)

	ui.On("Browse", mock.Anything, mock.MatchedBy(func(s *Session) bool {
		return len(s.Roots(m.ViewMutations)) == 3 &&
			assert.ObjectsAreEqual([]string{m.AllTags, m.TagCovered, m.TagUncovered, m.NoTags}, s.Tags())
	})).Return(nil).Once()

	require.NoError(t, wf.Browse(context.Background(), BrowseArgs{StoreArgs: args}))
}

func TestWorkflow_UIErrorIsReturned(t *testing.T) {
	wf, ui, args := newTestWorkflow(t)
	boom := errors.New("boom")

	ui.On("DisplayTags", mock.Anything, mock.Anything).Return(boom).Once()

	require.ErrorIs(t, wf.Tags(context.Background(), args), boom)
}

type fakeAggregator struct {
	fail string
}

func (f fakeAggregator) Coverage(filename string) (m.FileCoverage, error) {
	if filename == f.fail {
		return m.FileCoverage{}, errors.New("broken")
	}

	return m.FileCoverage{File: filename}, nil
}

func TestCoverFiles(t *testing.T) {
	files := []string{"a.v", "b.v", "c.v", "d.v"}

	for _, parallel := range []uint{0, 1, 3} {
		got, err := coverFiles(context.Background(), fakeAggregator{}, files, parallel)
		require.NoError(t, err)
		require.Len(t, got, len(files))

		for i, f := range files {
			assert.Equal(t, f, got[i].File)
		}
	}

	_, err := coverFiles(context.Background(), fakeAggregator{fail: "c.v"}, files, 2)
	require.ErrorContains(t, err, "c.v")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = coverFiles(ctx, fakeAggregator{}, files, 1)
	require.ErrorIs(t, err, context.Canceled)
}
