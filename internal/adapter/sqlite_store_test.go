package adapter

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "mcyview.dev/pkg/mcyview/internal/model"
	"mcyview.dev/pkg/mcyview/internal/testutil"
)

func openStore(t *testing.T, db *testutil.MutationDB) *SQLiteStore {
	t.Helper()

	store, err := OpenSQLiteStore(db.Path())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func TestOpenSQLiteStore_Unavailable(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) m.Path
	}{
		{
			name: "missing file",
			setup: func(t *testing.T) m.Path {
				return m.Path(filepath.Join(t.TempDir(), "nope.sqlite3"))
			},
		},
		{
			name: "directory",
			setup: func(t *testing.T) m.Path {
				return m.Path(t.TempDir())
			},
		},
		{
			name: "not a database",
			setup: func(t *testing.T) m.Path {
				path := filepath.Join(t.TempDir(), "garbage.sqlite3")
				require.NoError(t, os.WriteFile(path, []byte("definitely not sqlite, just some text to fill a page"), 0o644))

				return m.Path(path)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := OpenSQLiteStore(tt.setup(t))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrStoreUnavailable), "got %v", err)
		})
	}
}

func TestSQLiteStore_Files(t *testing.T) {
	db := testutil.NewMutationDB(t).
		File("z.v", "module z;\n").
		File("a.v", "").
		File("b.v", "module b;\n")
	store := openStore(t, db)

	files, err := store.ListFiles()
	require.NoError(t, err)
	assert.Equal(t, []string{"z.v", "a.v", "b.v"}, files, "insertion order")

	content, err := store.FileContent("z.v")
	require.NoError(t, err)
	assert.Equal(t, "module z;\n", content)

	content, err = store.FileContent("a.v")
	require.NoError(t, err)
	assert.Equal(t, "", content, "empty file is not missing")

	_, err = store.FileContent("missing.v")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteStore_FileContentIsParameterBound(t *testing.T) {
	db := testutil.NewMutationDB(t).
		File("it's.v", "quoted").
		File("other.v", "other")
	store := openStore(t, db)

	content, err := store.FileContent("it's.v")
	require.NoError(t, err)
	assert.Equal(t, "quoted", content)

	_, err = store.FileContent("x' OR '1'='1")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteStore_SourcesAndLines(t *testing.T) {
	db := testutil.NewMutationDB(t).
		Source("rtl/b.v:10", "rtl/b.v:2", "rtl/b.v:2.5-2.9", "a.v:1", "rtl/b.v:abc", "broken").
		Source("c:/work/d.v:7")
	store := openStore(t, db)

	sources, err := store.ListSources()
	require.NoError(t, err)
	assert.Equal(t, []string{"a.v", "c:/work/d.v", "rtl/b.v"}, sources)

	lines, err := store.SourceLines("rtl/b.v")
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "2.5-2.9", "10", "abc"}, lines, "numeric order, unknown last")

	lines, err = store.SourceLines("c:/work/d.v")
	require.NoError(t, err)
	assert.Equal(t, []string{"7"}, lines)

	lines, err = store.SourceLines("nope.v")
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestSQLiteStore_ListSourcesMatchesSourceLines(t *testing.T) {
	db := testutil.NewMutationDB(t).
		File("top.v", "").
		File("unused.v", "").
		Source("top.v:1", "sub.v:4")
	store := openStore(t, db)

	files, err := store.ListFiles()
	require.NoError(t, err)

	sources, err := store.ListSources()
	require.NoError(t, err)

	for _, f := range append(files, sources...) {
		lines, err := store.SourceLines(f)
		require.NoError(t, err)
		assert.Equal(t, len(lines) > 0, contains(sources, f), "file %s", f)
	}
}

func TestSQLiteStore_MutationRelations(t *testing.T) {
	db := testutil.NewMutationDB(t).TopV().
		Mutation(4, testutil.Src("top.v:5"), testutil.Src("top.v:9"), testutil.Src("top.v:5"))
	store := openStore(t, db)

	ids, err := store.MutationIDs()
	require.NoError(t, err)
	assert.Equal(t, []m.MutationID{1, 2, 3, 4}, ids)

	count, err := store.MutationCount()
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	forLine5, err := store.MutationsForSource("top.v:5")
	require.NoError(t, err)
	assert.Equal(t, []m.MutationID{1, 2, 4}, forLine5)

	srcs, err := store.SourcesForMutation(4)
	require.NoError(t, err)
	assert.Equal(t, []m.SrcTag{"top.v:5", "top.v:9"}, srcs)

	// Dangling references are empty, not errors.
	srcs, err = store.SourcesForMutation(99)
	require.NoError(t, err)
	assert.Empty(t, srcs)

	none, err := store.MutationsForSource("nope.v:1")
	require.NoError(t, err)
	assert.Empty(t, none)

	// m in mutationsForSource(s) <=> s in sourcesForMutation(m)
	for _, id := range ids {
		srcs, err := store.SourcesForMutation(id)
		require.NoError(t, err)

		for _, src := range srcs {
			back, err := store.MutationsForSource(src)
			require.NoError(t, err)
			assert.Contains(t, back, id)
		}
	}

	for _, src := range []m.SrcTag{"top.v:5", "top.v:9"} {
		muts, err := store.MutationsForSource(src)
		require.NoError(t, err)

		for _, id := range muts {
			srcs, err := store.SourcesForMutation(id)
			require.NoError(t, err)
			assert.Contains(t, srcs, src)
		}
	}
}

func TestSQLiteStore_OptionsResultsTags(t *testing.T) {
	db := testutil.NewMutationDB(t).TopV().Tag(3, "PROBE", m.TagUncovered)
	store := openStore(t, db)

	options, err := store.MutationOptions(3)
	require.NoError(t, err)
	assert.Equal(t, []m.Option{
		{Type: "mode", Value: "cnot1"},
		{Type: "module", Value: "top"},
		{Type: "cell", Value: "$and$2"},
		{Type: "port", Value: "A"},
		{Type: "portbit", Value: "2"},
		{Type: "ctrlbit", Value: "3"},
		{Type: "src", Value: "top.v:9"},
	}, options)

	results, err := store.MutationResults(3)
	require.NoError(t, err)
	assert.Equal(t, []m.TestResult{{Test: "sim", Result: "PASS"}, {Test: "eq", Result: "PASS"}}, results)

	tags, err := store.MutationTags(3)
	require.NoError(t, err)
	assert.Equal(t, []string{m.TagUncovered, "PROBE"}, tags)

	empty, err := store.MutationResults(2)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestSQLiteStore_Tags(t *testing.T) {
	db := testutil.NewMutationDB(t).TopV().Tag(1, "PROBE")
	store := openStore(t, db)

	tags, err := store.UniqueTags(false)
	require.NoError(t, err)
	assert.Equal(t, []string{m.TagCovered, "PROBE", m.TagUncovered, m.NoTags}, tags)

	tags, err = store.UniqueTags(true)
	require.NoError(t, err)
	require.NotEmpty(t, tags)
	assert.Equal(t, m.AllTags, tags[0])
	assert.Equal(t, m.NoTags, tags[len(tags)-1])

	noTags, err := store.MutationsWithNoTags()
	require.NoError(t, err)
	assert.Equal(t, []m.MutationID{2}, noTags)

	viaTag, err := store.MutationsForTag(m.NoTags)
	require.NoError(t, err)
	assert.Equal(t, noTags, viaTag)

	covered, err := store.MutationsForTag(m.TagCovered)
	require.NoError(t, err)
	assert.Equal(t, []m.MutationID{1}, covered)

	all, err := store.MutationsForTag(m.AllTags)
	require.NoError(t, err)
	assert.Equal(t, []m.MutationID{1, 2, 3}, all)

	unknown, err := store.MutationsForTag("' OR 1=1 --")
	require.NoError(t, err)
	assert.Empty(t, unknown)
}

func TestSQLiteStore_EmptyDatabaseStillListsNoTags(t *testing.T) {
	store := openStore(t, testutil.NewMutationDB(t))

	tags, err := store.UniqueTags(true)
	require.NoError(t, err)
	assert.Equal(t, []string{m.AllTags, m.NoTags}, tags)
}

func TestSQLiteStore_FileCoverageQueries(t *testing.T) {
	db := testutil.NewMutationDB(t).TopV().
		Source("top.v:12").
		Mutation(4, testutil.Src("top.v:9.2-9.7")).
		Tag(4, m.TagCovered, m.TagNOC).
		Mutation(5, testutil.Src("top.vx:1")).
		Tag(5, m.TagCovered)
	store := openStore(t, db)

	tags, err := store.SourceTagsForFile("top.v")
	require.NoError(t, err)
	assert.Equal(t, []m.SrcTag{"top.v:5", "top.v:9", "top.v:9.2-9.7", "top.v:12"}, tags)

	counts, err := store.TagCountsForFile("top.v")
	require.NoError(t, err)
	assert.Equal(t, []m.SourceTagCount{
		{SrcTag: "top.v:5", Covered: 1, Tagged: 1},
		{SrcTag: "top.v:9", Uncovered: 1, Tagged: 1},
		{SrcTag: "top.v:9.2-9.7", Covered: 1, NOC: 1, Tagged: 2},
	}, counts)
}

func TestSQLiteStore_RepeatedRowsCountMutationsOnce(t *testing.T) {
	db := testutil.NewMutationDB(t).
		Source("top.v:5").
		Mutation(1, testutil.Src("top.v:5"), testutil.Src("top.v:5")).
		Tag(1, m.TagCovered).
		Mutation(2, testutil.Src("top.v:5")).
		Tag(2, m.TagUncovered, m.TagUncovered)
	store := openStore(t, db)

	counts, err := store.TagCountsForFile("top.v")
	require.NoError(t, err)
	assert.Equal(t, []m.SourceTagCount{
		{SrcTag: "top.v:5", Covered: 1, Uncovered: 1, Tagged: 2},
	}, counts)

	tally, err := store.TagTally()
	require.NoError(t, err)
	assert.Equal(t, m.TagTally{Covered: 1, Uncovered: 1, Tagged: 2}, tally)
}

func TestOpenSQLiteStore_EscapesPath(t *testing.T) {
	src := testutil.NewMutationDB(t).TopV()

	data, err := os.ReadFile(string(src.Path()))
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "odd?name#with%chars")
	require.NoError(t, os.Mkdir(dir, 0o755))

	path := filepath.Join(dir, "db.sqlite3")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	store, err := OpenSQLiteStore(m.Path(path))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	count, err := store.MutationCount()
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestReadOnlyDSN(t *testing.T) {
	dsn := readOnlyDSN(m.Path("/work/a?b#c/db.sqlite3"))

	assert.Equal(t, "file:///work/a%3Fb%23c/db.sqlite3?mode=ro", dsn)
}

func TestSQLiteStore_Summaries(t *testing.T) {
	db := testutil.NewMutationDB(t).TopV().Tag(2, m.TagNOC)
	store := openStore(t, db)

	results, err := store.ResultCounts()
	require.NoError(t, err)
	assert.Equal(t, []m.ResultCount{
		{Test: "eq", Result: "PASS", Count: 1},
		{Test: "sim", Result: "FAIL", Count: 1},
		{Test: "sim", Result: "PASS", Count: 1},
	}, results)

	tags, err := store.TagCounts()
	require.NoError(t, err)
	assert.Equal(t, []m.TagCount{
		{Tag: m.TagCovered, Count: 1},
		{Tag: m.TagNOC, Count: 1},
		{Tag: m.TagUncovered, Count: 1},
	}, tags)

	tally, err := store.TagTally()
	require.NoError(t, err)
	assert.Equal(t, m.TagTally{Covered: 1, Uncovered: 1, NOC: 1, Tagged: 3}, tally)
}

func TestSortLineSpecs(t *testing.T) {
	specs := []string{"10", "x", "2", "2.1-2.3", "1"}
	SortLineSpecs(specs)
	assert.Equal(t, []string{"1", "2", "2.1-2.3", "10", "x"}, specs)
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}

	return false
}
