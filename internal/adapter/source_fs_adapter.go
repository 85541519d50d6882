package adapter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	m "mcyview.dev/pkg/mcyview/internal/model"
)

const (
	databaseDirName  = "database"
	databaseFileName = "db.sqlite3"
)

// SourceFSAdapter abstracts the filesystem access the workflow needs: locating
// the database of a project and reading design sources from a checkout instead
// of the copies stored in the database.
type SourceFSAdapter interface {
	// ResolveDatabase turns a project directory or a database file into the
	// path of the database file.
	ResolveDatabase(location m.Path) (m.Path, error)

	// ReadSource loads filename relative to dir.
	ReadSource(dir m.Path, filename string) (string, error)

	// FileInfo returns metadata for a path.
	FileInfo(path m.Path) (os.FileInfo, error)

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// LocalSourceFSAdapter implements SourceFSAdapter on the local disk.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// ResolveDatabase accepts either a database file or a project directory
// containing database/db.sqlite3.
func (a *LocalSourceFSAdapter) ResolveDatabase(location m.Path) (m.Path, error) {
	if location == "" {
		location = "."
	}

	info, err := a.FileInfo(location)
	if err != nil {
		return "", fmt.Errorf("%w: location %s does not exist", ErrStoreUnavailable, location)
	}

	if !info.IsDir() {
		return location, nil
	}

	dir := a.JoinPath(string(location), databaseDirName)
	if _, err := a.FileInfo(dir); err != nil {
		return "", fmt.Errorf("%w: database directory %s does not exist", ErrStoreUnavailable, dir)
	}

	path := a.JoinPath(string(dir), databaseFileName)
	if _, err := a.FileInfo(path); err != nil {
		return "", fmt.Errorf("%w: database file %s does not exist", ErrStoreUnavailable, path)
	}

	return path, nil
}

// ReadSource reads a design source from a source directory. A missing file is
// reported as ErrNotFound.
func (a *LocalSourceFSAdapter) ReadSource(dir m.Path, filename string) (string, error) {
	path := a.JoinPath(string(dir), filename)

	content, err := os.ReadFile(string(path))
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("source %s: %w", path, ErrNotFound)
	}

	if err != nil {
		return "", fmt.Errorf("read source %s: %w", path, err)
	}

	return string(content), nil
}

// FileInfo returns metadata for a path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// JoinPath joins path elements into a single path.
func (a *LocalSourceFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
