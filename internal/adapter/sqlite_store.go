package adapter

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"sort"

	"github.com/jmoiron/sqlx"
	m "mcyview.dev/pkg/mcyview/internal/model"

	// Registers the pure Go "sqlite" driver.
	_ "modernc.org/sqlite"
)

const sqliteDriver = "sqlite"

// SQLiteStore implements MutationStore over the db.sqlite3 file written by a
// mutation cover run. The database is opened read-only.
type SQLiteStore struct {
	db   *sqlx.DB
	path m.Path
}

type sqliteOpener struct{}

// NewStoreOpener returns a StoreOpener backed by SQLite.
func NewStoreOpener() StoreOpener {
	return sqliteOpener{}
}

func (sqliteOpener) Open(path m.Path) (MutationStore, error) {
	return OpenSQLiteStore(path)
}

// OpenSQLiteStore opens the database at path read-only and checks that it
// looks like a mutation cover database.
func OpenSQLiteStore(path m.Path) (*SQLiteStore, error) {
	info, err := os.Stat(string(path))
	if err != nil {
		slog.Error("Database file not accessible", "path", path, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrStoreUnavailable, path)
	}

	db, err := sqlx.Open(sqliteDriver, readOnlyDSN(path))
	if err != nil {
		slog.Error("Failed to open database", "path", path, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	// A file that is not a database, or lacks the mutations table, fails here.
	var probe int
	if err := db.Get(&probe, "SELECT COUNT(*) FROM mutations"); err != nil {
		_ = db.Close()

		slog.Error("Database is not a mutation cover database", "path", path, "error", err)

		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	slog.Debug("opened mutation database", "path", path, "mutations", probe)

	return &SQLiteStore{db: db, path: path}, nil
}

// readOnlyDSN builds a read-only SQLite URI for path. The path is escaped, so
// "?", "#" and "%" in directory names stay part of the file name.
func readOnlyDSN(path m.Path) string {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		abs = string(path)
	}

	dsn := url.URL{Scheme: "file", Path: filepath.ToSlash(abs), RawQuery: "mode=ro"}

	return dsn.String()
}

// Path returns the database file the store reads.
func (s *SQLiteStore) Path() m.Path {
	return s.path
}

// Close releases the underlying connection pool.
func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}

	return s.db.Close()
}

// ListFiles implements MutationStore.
func (s *SQLiteStore) ListFiles() ([]string, error) {
	return s.selectStrings("list files", "SELECT COALESCE(filename, '') FROM files ORDER BY rowid")
}

// FileContent implements MutationStore.
func (s *SQLiteStore) FileContent(filename string) (string, error) {
	var data sql.NullString

	err := s.db.Get(&data, "SELECT data FROM files WHERE filename = ? LIMIT 1", filename)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("file %q: %w", filename, ErrNotFound)
	}

	if err != nil {
		slog.Error("Failed to read file content", "filename", filename, "error", err)
		return "", fmt.Errorf("file content %q: %w", filename, err)
	}

	return data.String, nil
}

// ListSources implements MutationStore.
func (s *SQLiteStore) ListSources() ([]string, error) {
	tags, err := s.srcTags("list sources", "SELECT DISTINCT COALESCE(srctag, '') FROM sources")
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	files := []string{}

	for _, loc := range parseLocations(tags) {
		if _, ok := seen[loc.File]; ok {
			continue
		}

		seen[loc.File] = struct{}{}
		files = append(files, loc.File)
	}

	sort.Strings(files)

	return files, nil
}

// SourceLines implements MutationStore.
func (s *SQLiteStore) SourceLines(filename string) ([]string, error) {
	prefix := filename + ":"

	tags, err := s.srcTags("source lines",
		"SELECT DISTINCT COALESCE(srctag, '') FROM sources WHERE substr(srctag, 1, length(?)) = ?",
		prefix, prefix,
	)
	if err != nil {
		return nil, err
	}

	lines := []string{}

	for _, loc := range parseLocations(tags) {
		if loc.File == filename {
			lines = append(lines, loc.LineSpec)
		}
	}

	SortLineSpecs(lines)

	return lines, nil
}

// SourceTagsForFile implements MutationStore.
func (s *SQLiteStore) SourceTagsForFile(filename string) ([]m.SrcTag, error) {
	prefix := filename + ":"

	tags, err := s.srcTags("source tags for file", `
		SELECT COALESCE(srctag, '') FROM sources
		    WHERE substr(srctag, 1, length(?)) = ?
		UNION
		SELECT COALESCE(opt_value, '') FROM options
		    WHERE opt_type = ? AND substr(opt_value, 1, length(?)) = ?`,
		prefix, prefix, m.OptionSource, prefix, prefix,
	)
	if err != nil {
		return nil, err
	}

	result := []m.SrcTag{}

	for _, loc := range parseLocations(tags) {
		if loc.File == filename {
			result = append(result, loc.Tag())
		}
	}

	sortSrcTags(result)

	return result, nil
}

// TagCountsForFile implements MutationStore.
func (s *SQLiteStore) TagCountsForFile(filename string) ([]m.SourceTagCount, error) {
	prefix := filename + ":"
	counts := []m.SourceTagCount{}

	err := s.db.Select(&counts, `
		SELECT srctag,
		       COUNT(CASE WHEN tag = ? THEN 1 END) AS covered,
		       COUNT(CASE WHEN tag = ? THEN 1 END) AS uncovered,
		       COUNT(CASE WHEN tag = ? THEN 1 END) AS noc,
		       COUNT(*) AS tagged
		    FROM (
		        SELECT DISTINCT options.opt_value AS srctag, options.mutation_id, tags.tag
		            FROM options
		            JOIN tags ON (options.mutation_id = tags.mutation_id)
		            WHERE options.opt_type = ?
		                AND substr(options.opt_value, 1, length(?)) = ?
		    )
		    GROUP BY srctag
		    ORDER BY srctag`,
		m.TagCovered, m.TagUncovered, m.TagNOC, m.OptionSource, prefix, prefix,
	)
	if err != nil {
		slog.Error("Failed to count tags for file", "filename", filename, "error", err)
		return nil, fmt.Errorf("tag counts for %q: %w", filename, err)
	}

	// The prefix match also accepts "<filename>:x.v:3"; keep exact files only.
	filtered := counts[:0]

	for _, c := range counts {
		loc, err := m.ParseSrcTag(c.SrcTag)
		if err != nil {
			slog.Warn("Skipping malformed source reference", "srctag", c.SrcTag, "error", err)
			continue
		}

		if loc.File == filename {
			filtered = append(filtered, c)
		}
	}

	return filtered, nil
}

// MutationIDs implements MutationStore.
func (s *SQLiteStore) MutationIDs() ([]m.MutationID, error) {
	return s.ids("mutation ids", "SELECT mutation_id FROM mutations ORDER BY mutation_id")
}

// MutationCount implements MutationStore.
func (s *SQLiteStore) MutationCount() (int, error) {
	var count int
	if err := s.db.Get(&count, "SELECT COUNT(*) FROM mutations"); err != nil {
		slog.Error("Failed to count mutations", "error", err)
		return 0, fmt.Errorf("count mutations: %w", err)
	}

	return count, nil
}

// MutationsForSource implements MutationStore.
func (s *SQLiteStore) MutationsForSource(src m.SrcTag) ([]m.MutationID, error) {
	return s.ids("mutations for source",
		"SELECT DISTINCT mutation_id FROM options WHERE opt_type = ? AND opt_value = ? ORDER BY mutation_id",
		m.OptionSource, string(src),
	)
}

// SourcesForMutation implements MutationStore.
func (s *SQLiteStore) SourcesForMutation(id m.MutationID) ([]m.SrcTag, error) {
	tags, err := s.srcTags("sources for mutation",
		"SELECT COALESCE(opt_value, '') FROM options WHERE opt_type = ? AND mutation_id = ? ORDER BY rowid",
		m.OptionSource, int64(id),
	)
	if err != nil {
		return nil, err
	}

	return dedupe(tags), nil
}

// MutationOptions implements MutationStore.
func (s *SQLiteStore) MutationOptions(id m.MutationID) ([]m.Option, error) {
	options := []m.Option{}

	err := s.db.Select(&options,
		`SELECT COALESCE(opt_type, '') AS opt_type, COALESCE(opt_value, '') AS opt_value
		    FROM options WHERE mutation_id = ? ORDER BY rowid`,
		int64(id),
	)
	if err != nil {
		slog.Error("Failed to read mutation options", "mutation", id, "error", err)
		return nil, fmt.Errorf("options for mutation %d: %w", id, err)
	}

	return options, nil
}

// MutationResults implements MutationStore.
func (s *SQLiteStore) MutationResults(id m.MutationID) ([]m.TestResult, error) {
	results := []m.TestResult{}

	err := s.db.Select(&results,
		`SELECT COALESCE(test, '') AS test, COALESCE(result, '') AS result
		    FROM results WHERE mutation_id = ? ORDER BY rowid`,
		int64(id),
	)
	if err != nil {
		slog.Error("Failed to read mutation results", "mutation", id, "error", err)
		return nil, fmt.Errorf("results for mutation %d: %w", id, err)
	}

	return results, nil
}

// MutationTags implements MutationStore.
func (s *SQLiteStore) MutationTags(id m.MutationID) ([]string, error) {
	tags, err := s.selectStrings("mutation tags",
		"SELECT COALESCE(tag, '') FROM tags WHERE mutation_id = ? ORDER BY rowid",
		int64(id),
	)
	if err != nil {
		return nil, err
	}

	return dedupe(tags), nil
}

// UniqueTags implements MutationStore.
func (s *SQLiteStore) UniqueTags(includeAll bool) ([]string, error) {
	tags, err := s.selectStrings("unique tags", "SELECT tag FROM tags WHERE tag IS NOT NULL GROUP BY tag ORDER BY tag")
	if err != nil {
		return nil, err
	}

	result := make([]string, 0, len(tags)+2)
	if includeAll {
		result = append(result, m.AllTags)
	}

	for _, tag := range tags {
		if m.IsPseudoTag(tag) {
			continue
		}

		result = append(result, tag)
	}

	return append(result, m.NoTags), nil
}

// MutationsWithNoTags implements MutationStore.
func (s *SQLiteStore) MutationsWithNoTags() ([]m.MutationID, error) {
	return s.ids("mutations with no tags", `
		SELECT mutation_id FROM mutations
		    WHERE mutation_id NOT IN (SELECT mutation_id FROM tags WHERE mutation_id IS NOT NULL)
		    ORDER BY mutation_id`)
}

// MutationsForTag implements MutationStore.
func (s *SQLiteStore) MutationsForTag(tag string) ([]m.MutationID, error) {
	switch tag {
	case m.NoTags:
		return s.MutationsWithNoTags()
	case m.AllTags:
		return s.MutationIDs()
	}

	return s.ids("mutations for tag",
		"SELECT DISTINCT mutation_id FROM tags WHERE tag = ? ORDER BY mutation_id",
		tag,
	)
}

// ResultCounts implements MutationStore.
func (s *SQLiteStore) ResultCounts() ([]m.ResultCount, error) {
	counts := []m.ResultCount{}

	err := s.db.Select(&counts, `
		SELECT COALESCE(test, '') AS test, COALESCE(result, '') AS result, COUNT(*) AS cnt
		    FROM results GROUP BY test, result ORDER BY test, result`)
	if err != nil {
		slog.Error("Failed to count results", "error", err)
		return nil, fmt.Errorf("result counts: %w", err)
	}

	return counts, nil
}

// TagCounts implements MutationStore.
func (s *SQLiteStore) TagCounts() ([]m.TagCount, error) {
	counts := []m.TagCount{}

	err := s.db.Select(&counts, `
		SELECT tag, COUNT(DISTINCT mutation_id) AS cnt
		    FROM tags WHERE tag IS NOT NULL GROUP BY tag ORDER BY tag`)
	if err != nil {
		slog.Error("Failed to count tags", "error", err)
		return nil, fmt.Errorf("tag counts: %w", err)
	}

	return counts, nil
}

// TagTally implements MutationStore.
func (s *SQLiteStore) TagTally() (m.TagTally, error) {
	var tally m.TagTally

	err := s.db.Get(&tally, `
		SELECT COUNT(CASE WHEN tag = ? THEN 1 END) AS covered,
		       COUNT(CASE WHEN tag = ? THEN 1 END) AS uncovered,
		       COUNT(CASE WHEN tag = ? THEN 1 END) AS noc,
		       COUNT(*) AS tagged
		    FROM (SELECT DISTINCT mutation_id, tag FROM tags)`,
		m.TagCovered, m.TagUncovered, m.TagNOC,
	)
	if err != nil {
		slog.Error("Failed to tally tags", "error", err)
		return m.TagTally{}, fmt.Errorf("tag tally: %w", err)
	}

	return tally, nil
}

func (s *SQLiteStore) selectStrings(what, query string, args ...any) ([]string, error) {
	values := []string{}
	if err := s.db.Select(&values, query, args...); err != nil {
		slog.Error("Query failed", "query", what, "error", err)
		return nil, fmt.Errorf("%s: %w", what, err)
	}

	return values, nil
}

func (s *SQLiteStore) srcTags(what, query string, args ...any) ([]m.SrcTag, error) {
	values, err := s.selectStrings(what, query, args...)
	if err != nil {
		return nil, err
	}

	tags := make([]m.SrcTag, 0, len(values))
	for _, v := range values {
		tags = append(tags, m.SrcTag(v))
	}

	return tags, nil
}

func (s *SQLiteStore) ids(what, query string, args ...any) ([]m.MutationID, error) {
	ids := []m.MutationID{}
	if err := s.db.Select(&ids, query, args...); err != nil {
		slog.Error("Query failed", "query", what, "error", err)
		return nil, fmt.Errorf("%s: %w", what, err)
	}

	return ids, nil
}

// parseLocations parses srctags, logging and dropping the malformed ones.
func parseLocations(tags []m.SrcTag) []m.Location {
	locations := make([]m.Location, 0, len(tags))

	for _, tag := range tags {
		loc, err := m.ParseSrcTag(tag)
		if err != nil {
			slog.Warn("Skipping malformed source reference", "srctag", tag, "error", err)
			continue
		}

		locations = append(locations, loc)
	}

	return locations
}

func dedupe[T comparable](values []T) []T {
	seen := make(map[T]struct{}, len(values))
	result := make([]T, 0, len(values))

	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}

		seen[v] = struct{}{}
		result = append(result, v)
	}

	return result
}

// SortLineSpecs orders line specs numerically by leading line ("2" before
// "10"), then textually. Specs without a line number go last.
func SortLineSpecs(specs []string) {
	sort.SliceStable(specs, func(i, j int) bool {
		return lessLineSpec(specs[i], specs[j])
	})
}

func lessLineSpec(a, b string) bool {
	la, errA := m.LineNumber(a)
	lb, errB := m.LineNumber(b)

	switch {
	case errA != nil && errB != nil:
		return a < b
	case errA != nil:
		return false
	case errB != nil:
		return true
	case la != lb:
		return la < lb
	default:
		return a < b
	}
}

func sortSrcTags(tags []m.SrcTag) {
	sort.SliceStable(tags, func(i, j int) bool {
		a, _ := m.ParseSrcTag(tags[i])
		b, _ := m.ParseSrcTag(tags[j])

		if a.File != b.File {
			return a.File < b.File
		}

		return lessLineSpec(a.LineSpec, b.LineSpec)
	})
}
