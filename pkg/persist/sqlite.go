package persist

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	pkgdb "github.com/unowned-ai/confide/pkg/db"
)

const (
	getValueStatement = `
	SELECT value FROM kv WHERE key = ?
	`

	putValueStatement = `
	INSERT INTO kv (key, value) VALUES (?, ?)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = unixepoch()
	`
)

// SQLite stores the diary document in the kv table of a SQLite database.
type SQLite struct {
	db   *sql.DB
	path string
}

// OpenSQLite opens (and if needed initializes) the database at path.
func OpenSQLite(path string, wal bool, syncMode string, logger zerolog.Logger) (*SQLite, error) {
	conn, err := pkgdb.OpenDBConnection(path, wal, syncMode)
	if err != nil {
		return nil, err
	}
	if err := pkgdb.UpgradeDB(conn, path, pkgdb.TargetSchemaVersion, logger); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize/upgrade database schema for '%s': %w", path, err)
	}
	return &SQLite{db: conn, path: path}, nil
}

// NewSQLite wraps an already initialized connection.
func NewSQLite(conn *sql.DB) *SQLite {
	return &SQLite{db: conn}
}

func (s *SQLite) Load(ctx context.Context) (Snapshot, bool, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, getValueStatement, StorageKey).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Snapshot{}, false, nil
		}
		return Snapshot{}, false, err
	}
	snap, err := Decode(data)
	if err != nil {
		return Snapshot{}, false, err
	}
	return snap, true, nil
}

func (s *SQLite) Save(ctx context.Context, snap Snapshot) error {
	data, err := Encode(snap)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, putValueStatement, StorageKey, data)
	return err
}

// DB returns the underlying connection.
func (s *SQLite) DB() *sql.DB {
	return s.db
}

// Close checkpoints the WAL and closes the connection.
func (s *SQLite) Close() error {
	if s.db == nil {
		return nil
	}
	// TRUNCATE waits for writers and folds the WAL back into the main file.
	_, _ = s.db.Exec("PRAGMA wal_checkpoint(TRUNCATE);")
	return s.db.Close()
}
