package db

const (
	// SchemaV1 holds the version table and the key/value table the diary snapshot lives in.
	SchemaV1 = `
CREATE TABLE IF NOT EXISTS confide_versions (
    component TEXT PRIMARY KEY,
    version INTEGER NOT NULL,
    created_at REAL DEFAULT (unixepoch())
);

CREATE TABLE IF NOT EXISTS kv (
    key VARCHAR(256) PRIMARY KEY,
    value BLOB NOT NULL,
    updated_at REAL DEFAULT (unixepoch())
);
`
)
