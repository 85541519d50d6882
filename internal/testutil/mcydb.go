// Package testutil builds mutation cover databases for tests across the
// codebase. Databases are real SQLite files written through the same driver
// the store reads them with.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	m "mcyview.dev/pkg/mcyview/internal/model"

	// Registers the "sqlite" driver.
	_ "modernc.org/sqlite"
)

// Schema is the layout written by a mutation cover run.
const Schema = `
	CREATE TABLE files (filename TEXT, data TEXT);
	CREATE TABLE sources (srctag TEXT);
	CREATE TABLE mutations (mutation_id INTEGER PRIMARY KEY, mutation TEXT);
	CREATE TABLE options (mutation_id INTEGER, opt_type TEXT, opt_value TEXT);
	CREATE TABLE results (mutation_id INTEGER, test TEXT, result TEXT);
	CREATE TABLE tags (mutation_id INTEGER, tag TEXT);
	CREATE TABLE queue (mutation_id INTEGER, test TEXT, running BOOL);
`

// MutationDB is a writable fixture database.
type MutationDB struct {
	t    testing.TB
	db   *sqlx.DB
	path string
}

// NewMutationDB creates an empty database with the mutation cover schema in a
// temporary directory. It is closed when the test ends.
func NewMutationDB(t testing.TB) *MutationDB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "db.sqlite3")

	db, err := sqlx.Open("sqlite", path)
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(Schema)
	require.NoError(t, err)

	return &MutationDB{t: t, db: db, path: path}
}

// Path returns the database file.
func (d *MutationDB) Path() m.Path {
	return m.Path(d.path)
}

// Exec runs a raw statement, for fixtures the builder methods do not cover.
func (d *MutationDB) Exec(query string, args ...any) *MutationDB {
	d.t.Helper()

	_, err := d.db.Exec(query, args...)
	require.NoError(d.t, err)

	return d
}

// File stores a design file.
func (d *MutationDB) File(filename, data string) *MutationDB {
	d.t.Helper()
	return d.Exec("INSERT INTO files (filename, data) VALUES (?, ?)", filename, data)
}

// Source registers srctags in the sources table.
func (d *MutationDB) Source(tags ...m.SrcTag) *MutationDB {
	d.t.Helper()

	for _, tag := range tags {
		d.Exec("INSERT INTO sources (srctag) VALUES (?)", string(tag))
	}

	return d
}

// Mutation inserts a mutation with its options, in order.
func (d *MutationDB) Mutation(id m.MutationID, options ...m.Option) *MutationDB {
	d.t.Helper()
	d.Exec("INSERT INTO mutations (mutation_id, mutation) VALUES (?, ?)", int64(id), "")

	for _, opt := range options {
		d.Exec("INSERT INTO options (mutation_id, opt_type, opt_value) VALUES (?, ?, ?)", int64(id), opt.Type, opt.Value)
	}

	return d
}

// Tag attaches tags to a mutation.
func (d *MutationDB) Tag(id m.MutationID, tags ...string) *MutationDB {
	d.t.Helper()

	for _, tag := range tags {
		d.Exec("INSERT INTO tags (mutation_id, tag) VALUES (?, ?)", int64(id), tag)
	}

	return d
}

// Result records a test outcome for a mutation.
func (d *MutationDB) Result(id m.MutationID, test, result string) *MutationDB {
	d.t.Helper()
	return d.Exec("INSERT INTO results (mutation_id, test, result) VALUES (?, ?, ?)", int64(id), test, result)
}

// Src is a shorthand for a src option.
func Src(tag m.SrcTag) m.Option {
	return m.Option{Type: m.OptionSource, Value: string(tag)}
}

// Opt is a shorthand for a descriptive option.
func Opt(typ, value string) m.Option {
	return m.Option{Type: typ, Value: value}
}

// TopV fills the database with the two-line scenario used throughout the
// tests: top.v lines 5 and 9, mutation 1 COVERED on line 5, mutation 2
// untagged on line 5 and mutation 3 UNCOVERED on line 9.
func (d *MutationDB) TopV() *MutationDB {
	d.t.Helper()

	return d.
		File("top.v", "module top;\n\n\n\nassign a = b;\n\n\n\nassign c = d;\nendmodule\n").
		Source("top.v:5", "top.v:9").
		Mutation(1,
			Opt(m.OptionMode, m.ModeInv), Opt(m.OptionModule, "top"), Opt(m.OptionCell, "$add$1"),
			Opt(m.OptionPort, "Y"), Opt(m.OptionPortBit, "0"), Src("top.v:5")).
		Mutation(2,
			Opt(m.OptionMode, m.ModeConst0), Opt(m.OptionModule, "top"), Opt(m.OptionCell, "$add$1"),
			Opt(m.OptionPort, "Y"), Opt(m.OptionPortBit, "1"), Src("top.v:5")).
		Mutation(3,
			Opt(m.OptionMode, m.ModeCnot1), Opt(m.OptionModule, "top"), Opt(m.OptionCell, "$and$2"),
			Opt(m.OptionPort, "A"), Opt(m.OptionPortBit, "2"), Opt(m.OptionCtrlBit, "3"), Src("top.v:9")).
		Tag(1, m.TagCovered).
		Tag(3, m.TagUncovered).
		Result(1, "sim", "FAIL").
		Result(3, "sim", "PASS").
		Result(3, "eq", "PASS")
}
