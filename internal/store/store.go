// Package store implements the SQLite-backed tag store: locating the store
// file, managing its schema, and reading and writing file-tag associations.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"
)

// MemoryStore is the filename sentinel for a private in-memory store.
const MemoryStore = ":memory:"

// Options control how Open resolves and opens a store.
type Options struct {
	// Filename is the store file name, e.g. ".ftagdb". The MemoryStore
	// sentinel opens a private in-memory store instead.
	Filename string

	// Dir, when set, is the directory holding the store file. No ascent
	// search is performed and the directory must already exist.
	Dir string

	// StartDir is where the ascent search begins. Empty means the current
	// working directory.
	StartDir string

	// ShowHidden includes dot-prefixed paths and tag names in query results.
	ShowHidden bool
}

// Store is an open handle to a tag store. A process holds at most one open
// handle at a time; Close releases the slot. Store is not safe for
// concurrent use.
type Store struct {
	db         *sql.DB
	path       string
	showHidden bool
	stmts      map[string]*sql.Stmt
	closed     bool
}

// One handle per process. openPath is empty when no handle is open.
var (
	openMu   sync.Mutex
	openPath string
)

func acquireOpenSlot(path string) error {
	openMu.Lock()
	defer openMu.Unlock()
	if openPath != "" {
		return fmt.Errorf("%w: %s", ErrAlreadyOpen, openPath)
	}
	openPath = path
	return nil
}

func releaseOpenSlot() {
	openMu.Lock()
	defer openMu.Unlock()
	openPath = ""
}

// Open resolves the store location and returns an open handle, creating the
// store file and its schema on first use.
//
// Resolution order: the MemoryStore sentinel gives a private in-memory
// store; an explicit Dir is used as-is; otherwise the search walks up from
// StartDir and falls back to creating the store in StartDir when no
// ancestor has one.
func Open(opts Options) (*Store, error) {
	if opts.Filename == "" {
		return nil, ErrEmptyFilename
	}

	path, err := resolvePath(opts)
	if err != nil {
		return nil, err
	}

	if err := acquireOpenSlot(path); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		releaseOpenSlot()
		return nil, fmt.Errorf("%w: opening %s: %v", ErrStoreUnavailable, path, err)
	}
	db.SetMaxOpenConns(1) // SQLite doesn't support concurrent writes

	if err := createSchema(db); err != nil {
		db.Close()
		releaseOpenSlot()
		return nil, fmt.Errorf("%w: creating schema in %s: %v", ErrStoreUnavailable, path, err)
	}

	return &Store{
		db:         db,
		path:       path,
		showHidden: opts.ShowHidden,
		stmts:      make(map[string]*sql.Stmt),
	}, nil
}

// resolvePath turns Options into the concrete location of the store file.
func resolvePath(opts Options) (string, error) {
	if opts.Filename == MemoryStore {
		return MemoryStore, nil
	}

	if opts.Dir != "" {
		info, err := os.Stat(opts.Dir)
		if err != nil || !info.IsDir() {
			return "", fmt.Errorf("%w: no such directory: %s", ErrStoreUnavailable, opts.Dir)
		}
		return filepath.Join(opts.Dir, opts.Filename), nil
	}

	start := opts.StartDir
	if start == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getting current directory: %w", err)
		}
		start = cwd
	}

	dir, found, err := Locate(start, opts.Filename)
	if err != nil {
		return "", err
	}
	if !found {
		// First use: the store is created in the starting directory.
		abs, err := filepath.Abs(start)
		if err != nil {
			return "", fmt.Errorf("resolving path: %w", err)
		}
		dir = abs
	}
	return filepath.Join(dir, opts.Filename), nil
}

// createSchema creates the tables and indexes if they don't exist, as one
// all-or-nothing transaction.
func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS files (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			path TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS tags (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL
		);

		-- One row per file-tag association
		CREATE TABLE IF NOT EXISTS file_tags (
			file_id INTEGER NOT NULL REFERENCES files(id),
			tag_id INTEGER NOT NULL REFERENCES tags(id)
		);

		CREATE UNIQUE INDEX IF NOT EXISTS idx_files_path ON files(path);
		CREATE UNIQUE INDEX IF NOT EXISTS idx_tags_name ON tags(name);
		CREATE UNIQUE INDEX IF NOT EXISTS idx_file_tags_pair ON file_tags(file_id, tag_id);
		CREATE INDEX IF NOT EXISTS idx_file_tags_tag ON file_tags(tag_id);
	`

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(schema); err != nil {
		return err
	}
	return tx.Commit()
}

// Close releases the handle's prepared statements, its connection, and the
// process-wide open slot. It is safe to call more than once.
func (s *Store) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	for _, prepared := range s.stmts {
		prepared.Close()
	}
	s.stmts = nil

	err := s.db.Close()
	releaseOpenSlot()
	return err
}

// Path returns the resolved location of the store file.
func (s *Store) Path() string {
	return s.path
}

// SetShowHidden changes whether later queries include dot-prefixed values.
func (s *Store) SetShowHidden(show bool) {
	s.showHidden = show
}

// stmt returns a prepared statement for query, preparing and caching it on
// first use. Cached statements live until Close.
func (s *Store) stmt(query string) (*sql.Stmt, error) {
	if prepared, ok := s.stmts[query]; ok {
		return prepared, nil
	}
	prepared, err := s.db.Prepare(query)
	if err != nil {
		return nil, fmt.Errorf("preparing statement: %w", err)
	}
	s.stmts[query] = prepared
	return prepared, nil
}
