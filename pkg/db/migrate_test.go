package db

import (
	"database/sql"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func openMemoryDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDBConnection(":memory:", true, "NORMAL")
	if err != nil {
		t.Fatalf("OpenDBConnection failed for in-memory DB: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// checkTableExists verifies that tableName is present in sqlite_master.
func checkTableExists(t *testing.T, db *sql.DB, tableName string) {
	t.Helper()
	var name string
	err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?;", tableName).Scan(&name)
	if err != nil {
		if err == sql.ErrNoRows {
			t.Errorf("Table '%s' does not exist, but it should.", tableName)
			return
		}
		t.Fatalf("Error checking if table '%s' exists: %v", tableName, err)
	}
}

func TestOpenDBConnection_InvalidSync(t *testing.T) {
	if _, err := OpenDBConnection(":memory:", false, "sometimes"); err == nil {
		t.Fatalf("Expected an error for an invalid sync pragma")
	}
	if ValidSyncMode("sometimes") {
		t.Errorf("ValidSyncMode accepted an invalid value")
	}
	if !ValidSyncMode("normal") || !ValidSyncMode("") {
		t.Errorf("ValidSyncMode rejected a valid value")
	}
}

func TestUpgradeDB_NewDatabase(t *testing.T) {
	db := openMemoryDB(t)

	if err := UpgradeDB(db, ":memory:", TargetSchemaVersion, zerolog.Nop()); err != nil {
		t.Fatalf("UpgradeDB failed on a new in-memory database: %v", err)
	}

	for _, tableName := range []string{"confide_versions", "kv"} {
		checkTableExists(t, db, tableName)
	}

	version, err := GetComponentSchemaVersion(db, StoreComponent)
	if err != nil {
		t.Fatalf("GetComponentSchemaVersion failed after UpgradeDB: %v", err)
	}
	if version != TargetSchemaVersion {
		t.Errorf("Expected component '%s' to be at version %d, but got %d", StoreComponent, TargetSchemaVersion, version)
	}
}

func TestUpgradeDB_AlreadyUpToDate(t *testing.T) {
	db := openMemoryDB(t)

	if err := InitializeSchema(db, TargetSchemaVersion); err != nil {
		t.Fatalf("InitializeSchema failed: %v", err)
	}
	if err := UpgradeDB(db, ":memory:", TargetSchemaVersion, zerolog.Nop()); err != nil {
		t.Fatalf("UpgradeDB failed on an up-to-date database: %v", err)
	}

	version, err := GetComponentSchemaVersion(db, StoreComponent)
	if err != nil {
		t.Fatalf("GetComponentSchemaVersion failed: %v", err)
	}
	if version != TargetSchemaVersion {
		t.Errorf("Expected version %d, got %d", TargetSchemaVersion, version)
	}
}

func TestUpgradeDB_VersionMismatch(t *testing.T) {
	cases := []struct {
		name      string
		dbVersion int64
		appTarget int64
		relation  string
	}{
		{"older database", 1, 2, "older"},
		{"newer database", 2, 1, "newer"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			db := openMemoryDB(t)
			if err := InitializeSchema(db, tc.dbVersion); err != nil {
				t.Fatalf("InitializeSchema to version %d failed: %v", tc.dbVersion, err)
			}

			err := UpgradeDB(db, ":memory:", tc.appTarget, zerolog.Nop())
			if err == nil {
				t.Fatalf("UpgradeDB should have failed")
			}
			expected := fmt.Sprintf("component %s in database ':memory:' has schema version %d, which is %s than application's target schema version %d", StoreComponent, tc.dbVersion, tc.relation, tc.appTarget)
			if !strings.Contains(err.Error(), expected) {
				t.Errorf("UpgradeDB error message mismatch.\nExpected to contain: %s\nGot: %s", expected, err.Error())
			}

			current, err := GetComponentSchemaVersion(db, StoreComponent)
			if err != nil {
				t.Fatalf("GetComponentSchemaVersion failed: %v", err)
			}
			if current != tc.dbVersion {
				t.Errorf("Schema version changed from %d to %d after a failed upgrade", tc.dbVersion, current)
			}
		})
	}
}

func TestGetComponentSchemaVersion_NoTable(t *testing.T) {
	db := openMemoryDB(t)
	version, err := GetComponentSchemaVersion(db, StoreComponent)
	if err != nil {
		t.Fatalf("Expected no error on an empty database, got %v", err)
	}
	if version != 0 {
		t.Errorf("Expected version 0, got %d", version)
	}
}
