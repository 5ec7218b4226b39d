package storage

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"

	"github.com/liangshaojie/portfolio/prefs"
)

const queryTimeout = 5 * time.Second

const schema = `
CREATE TABLE IF NOT EXISTS preferences (
	owner      TEXT NOT NULL,
	key        TEXT NOT NULL,
	value      TEXT NOT NULL,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	PRIMARY KEY (owner, key)
)`

// Open opens the SQLite database at path, creating its directory and the
// preferences table as needed. ":memory:" opens a private in-memory database.
func Open(path string) (*sql.DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, errors.Wrap(err, "creating db directory")
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "opening database")
	}
	if path == ":memory:" {
		// every pooled connection would otherwise get its own empty database
		db.SetMaxOpenConns(1)
	}

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "setting WAL mode")
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "creating preferences table")
	}
	return db, nil
}

// PreferenceStore implements prefs.Store for one visitor on top of SQLite.
type PreferenceStore struct {
	db    *sql.DB
	owner string
}

// NewPreferenceStore returns a store scoped to owner, normally a visitor id.
func NewPreferenceStore(db *sql.DB, owner string) *PreferenceStore {
	return &PreferenceStore{db: db, owner: owner}
}

func (s *PreferenceStore) Get(key string) (string, error) {
	if !prefs.ValidKey(key) {
		return "", errors.Wrap(prefs.ErrUnknownKey, key)
	}
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM preferences WHERE owner = ? AND key = ?`,
		s.owner, key,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return "", prefs.ErrNotFound
	}
	if err != nil {
		return "", errors.Wrapf(err, "reading preference %s", key)
	}
	return value, nil
}

func (s *PreferenceStore) Set(key, value string) error {
	if !prefs.ValidKey(key) {
		return errors.Wrap(prefs.ErrUnknownKey, key)
	}
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO preferences (owner, key, value, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (owner, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		s.owner, key, value, time.Now().UTC(),
	)
	return errors.Wrapf(err, "writing preference %s", key)
}

// Prune deletes preferences not written since before the cutoff and reports
// how many rows went.
func Prune(ctx context.Context, db *sql.DB, olderThan time.Duration) (int64, error) {
	result, err := db.ExecContext(ctx,
		`DELETE FROM preferences WHERE updated_at < ?`,
		time.Now().UTC().Add(-olderThan),
	)
	if err != nil {
		return 0, errors.Wrap(err, "pruning preferences")
	}
	n, _ := result.RowsAffected()
	return n, nil
}
