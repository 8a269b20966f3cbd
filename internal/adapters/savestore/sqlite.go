package savestore

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/modkit/internal/core/domain"
	"go.trai.ch/modkit/internal/json"
	"go.trai.ch/zerr"
	_ "modernc.org/sqlite" // registers the sqlite driver
)

const schema = `CREATE TABLE IF NOT EXISTS saves (
	package  TEXT PRIMARY KEY,
	checksum TEXT NOT NULL,
	saved_at INTEGER NOT NULL,
	document BLOB NOT NULL
)`

// SQLiteStore keeps saves in a single SQLite table.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens or creates the database at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, zerr.New("database path is required")
	}
	path = filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, zerr.Wrap(err, "failed to create save directory")
	}

	db, err := sql.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to open save database")
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, zerr.With(zerr.Wrap(err, "failed to ping save database"), "path", path)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, zerr.Wrap(err, "failed to create saves table")
	}
	return &SQLiteStore{db: db}, nil
}

// Get retrieves the save of packageName. It returns nil, nil when there is none.
func (s *SQLiteStore) Get(packageName string) (*domain.SaveFile, error) {
	var data []byte
	err := s.db.QueryRow(`SELECT document FROM saves WHERE package = ?`, packageName).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read save"), "package", packageName)
	}
	return decode(data)
}

// Put stores save unless the stored save already has the same content.
func (s *SQLiteStore) Put(save domain.SaveFile) (bool, error) {
	save, err := prepare(save)
	if err != nil {
		return false, err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return false, zerr.Wrap(err, "failed to begin transaction")
	}
	defer func() { _ = tx.Rollback() }()

	var existing string
	err = tx.QueryRow(`SELECT checksum FROM saves WHERE package = ?`, save.Package).Scan(&existing)
	switch {
	case err == nil && existing == save.Checksum:
		return false, nil
	case err != nil && !errors.Is(err, sql.ErrNoRows):
		return false, zerr.With(zerr.Wrap(err, "failed to read save checksum"), "package", save.Package)
	}

	data, err := json.Marshal(save)
	if err != nil {
		return false, zerr.Wrap(err, "failed to encode save")
	}
	_, err = tx.Exec(
		`INSERT INTO saves (package, checksum, saved_at, document) VALUES (?, ?, ?, ?)
		 ON CONFLICT(package) DO UPDATE SET
		   checksum = excluded.checksum,
		   saved_at = excluded.saved_at,
		   document = excluded.document`,
		save.Package,
		save.Checksum,
		save.SavedAt.UnixMilli(),
		data,
	)
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to write save"), "package", save.Package)
	}
	if err := tx.Commit(); err != nil {
		return false, zerr.Wrap(err, "failed to commit save")
	}
	return true, nil
}

// List returns the names of all saved packages, sorted.
func (s *SQLiteStore) List() ([]string, error) {
	rows, err := s.db.Query(`SELECT package FROM saves ORDER BY package`)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to list saves")
	}
	defer func() { _ = rows.Close() }()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, zerr.Wrap(err, "failed to scan save")
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, zerr.Wrap(err, "failed to list saves")
	}
	return names, nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
