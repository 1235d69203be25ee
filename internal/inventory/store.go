// Package inventory is the persistence gateway for the registry. It owns
// the SQLite schema and performs all SQL-level CRUD with relation loading;
// no other package talks to storage.
//
// Storage is backed by a SQLite database at ~/.config/serverbook/serverbook.db
// (or the platform-equivalent path returned by os.UserConfigDir).
//
// Referential policy, applied uniformly: deleting a provider or person sets
// the referencing servers' foreign key to NULL; deleting a server cascades
// to its cost snapshots. The explicit snapshot delete remains available
// regardless.
package inventory

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"serverbook/internal/domain"
)

const (
	appDir = "serverbook"
	dbFile = "serverbook.db"
)

// pathOverride, when non-empty, replaces the default database path.
// Intended for testing. Use SetPath / ResetPath to manage.
var pathOverride string

// SetPath overrides the database path. Intended for testing.
func SetPath(p string) { pathOverride = p }

// ResetPath clears the path override. Intended for testing.
func ResetPath() { pathOverride = "" }

// DefaultPath returns the default database path.
func DefaultPath() (string, error) {
	if pathOverride != "" {
		return pathOverride, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("inventory: unable to determine config directory: %w", err)
	}
	return filepath.Join(base, appDir, dbFile), nil
}

// Store performs CRUD against the inventory database.
type Store struct {
	db *sql.DB
}

// Open creates or opens the inventory store at the default path.
func Open() (*Store, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return OpenAt(path)
}

// OpenAt creates or opens a SQLite database at the given path.
// The parent directory is created if it does not exist.
func OpenAt(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("inventory: failed to create directory %s: %w", dir, err)
	}

	// foreign_keys is a per-connection pragma; setting it in the DSN makes
	// every pooled connection enforce referential integrity.
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("inventory: failed to open database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases database resources.
func (s *Store) Close() error {
	return s.db.Close()
}

// now returns the timestamp written to created_at/updated_at columns.
func now() time.Time {
	return time.Now().UTC()
}

// fmtTime and parseTime convert between time.Time and the TEXT column
// representation. RFC3339Nano in UTC sorts lexicographically.
func fmtTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

// storeErr wraps a SQL error, classifying foreign key failures as
// domain.ErrConstraint. Everything else propagates unmodified; the store
// never retries, since creates are not idempotent.
func storeErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if strings.Contains(err.Error(), "FOREIGN KEY constraint failed") {
		return fmt.Errorf("inventory: %s: %w", op, domain.ErrConstraint)
	}
	return fmt.Errorf("inventory: %s: %w", op, err)
}
