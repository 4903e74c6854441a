package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

const (
	// TargetSchemaVersion is the highest schema version this build understands.
	TargetSchemaVersion int64 = 1
	// StoreComponent names the key/value store component in confide_versions.
	StoreComponent = "kvstore"
)

// GetComponentSchemaVersion returns the recorded schema version for componentName.
// A missing row or a missing versions table both mean version 0.
func GetComponentSchemaVersion(db *sql.DB, componentName string) (int64, error) {
	row := db.QueryRow(`SELECT version FROM confide_versions WHERE component = ?;`, componentName)

	var version int64
	err := row.Scan(&version)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		if strings.Contains(err.Error(), "no such table") {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to scan version for component '%s': %w", componentName, err)
	}
	return version, nil
}

// InitializeSchema creates all tables and records schemaVersionToSet for the store component.
func InitializeSchema(db *sql.DB, schemaVersionToSet int64) error {
	if _, err := db.Exec(SchemaV1); err != nil {
		return fmt.Errorf("failed to execute schema v1 SQL: %w", err)
	}

	insertVersionSQL := `
INSERT INTO confide_versions (component, version) VALUES (?, ?)
ON CONFLICT(component) DO UPDATE SET version = excluded.version, created_at = unixepoch();`

	if _, err := db.Exec(insertVersionSQL, StoreComponent, schemaVersionToSet); err != nil {
		return fmt.Errorf("failed to insert/update version for component %s to %d: %w", StoreComponent, schemaVersionToSet, err)
	}
	return nil
}

// UpgradeDB brings the store component of db up to appTargetSchemaVersion.
// dbIdentifier is only used in log lines and errors.
func UpgradeDB(db *sql.DB, dbIdentifier string, appTargetSchemaVersion int64, logger zerolog.Logger) error {
	current, err := GetComponentSchemaVersion(db, StoreComponent)
	if err != nil {
		return err
	}

	switch {
	case current == 0:
		logger.Info().Str("db", dbIdentifier).Int64("version", appTargetSchemaVersion).Msg("initializing schema")
		if err := InitializeSchema(db, appTargetSchemaVersion); err != nil {
			return fmt.Errorf("failed to initialize component %s in database '%s': %w", StoreComponent, dbIdentifier, err)
		}
		return nil
	case current == appTargetSchemaVersion:
		logger.Debug().Str("db", dbIdentifier).Int64("version", current).Msg("schema up to date")
		return nil
	case current < appTargetSchemaVersion:
		return fmt.Errorf("component %s in database '%s' has schema version %d, which is older than application's target schema version %d. Automatic migration from this older version is not yet supported", StoreComponent, dbIdentifier, current, appTargetSchemaVersion)
	default:
		return fmt.Errorf("component %s in database '%s' has schema version %d, which is newer than application's target schema version %d. Please upgrade the application", StoreComponent, dbIdentifier, current, appTargetSchemaVersion)
	}
}
