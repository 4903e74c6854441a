package db

import (
	"database/sql"
	"fmt"
	"net/url"
	"strings"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// validSyncModes lists the allowed values for the synchronous pragma.
var validSyncModes = map[string]bool{
	"OFF":    true,
	"NORMAL": true,
	"FULL":   true,
	"EXTRA":  true,
}

// ValidSyncMode reports whether mode is an accepted synchronous pragma value.
func ValidSyncMode(mode string) bool {
	return mode == "" || validSyncModes[strings.ToUpper(mode)]
}

// OpenDBConnection opens the SQLite database at baseDSN.
// enableWAL sets journal_mode=WAL; syncPragma sets the synchronous pragma
// (OFF, NORMAL, FULL, EXTRA). An empty syncPragma keeps the SQLite default.
func OpenDBConnection(baseDSN string, enableWAL bool, syncPragma string) (*sql.DB, error) {
	params := url.Values{}

	if enableWAL {
		params.Add("_journal_mode", "WAL")
	}

	if syncPragma != "" {
		ucSyncPragma := strings.ToUpper(syncPragma)
		if !validSyncModes[ucSyncPragma] {
			return nil, fmt.Errorf("invalid sync pragma value: %s. Must be one of OFF, NORMAL, FULL, EXTRA", syncPragma)
		}
		params.Add("_synchronous", ucSyncPragma)
	}

	dsn := baseDSN
	if len(params) > 0 {
		sep := "?"
		if strings.Contains(baseDSN, "?") {
			sep = "&"
		}
		dsn += sep + params.Encode()
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database with DSN '%s': %w", dsn, err)
	}

	// A single connection keeps ":memory:" databases from splitting into one per connection.
	conn.SetMaxOpenConns(1)

	if err = conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database with DSN '%s': %w", dsn, err)
	}

	return conn, nil
}
