package persist

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Kind selects a Store backend.
type Kind string

const (
	KindSQLite Kind = "sqlite"
	KindDiskv  Kind = "diskv"
	KindMemory Kind = "memory"
)

// Options configures Open.
type Options struct {
	Kind Kind
	// DataDir holds confide.db for sqlite and the document directory for diskv.
	DataDir  string
	WAL      bool
	SyncMode string
	Logger   zerolog.Logger
}

// SQLitePath returns the database file used by the sqlite backend.
func (o Options) SQLitePath() string {
	return filepath.Join(o.DataDir, "confide.db")
}

// Open returns the backend selected by opts.Kind.
func Open(opts Options) (Store, error) {
	switch opts.Kind {
	case KindSQLite, "":
		return OpenSQLite(opts.SQLitePath(), opts.WAL, opts.SyncMode, opts.Logger)
	case KindDiskv:
		return OpenDiskv(filepath.Join(opts.DataDir, "diary"))
	case KindMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("persist: unknown store kind %q", opts.Kind)
	}
}
