package internal

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const createKVTableSQL = `
CREATE TABLE IF NOT EXISTS radiaKV (
	key TEXT PRIMARY KEY,
	value TEXT
)`

// OpenDatabase opens (creating if needed) the SQLite key-value database
// backing session persistence.
func OpenDatabase(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, &StorageError{Path: path, Op: "open", Err: err}
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, &StorageError{Path: path, Op: "open", Err: err}
	}

	if _, err := db.Exec(createKVTableSQL); err != nil {
		db.Close()
		return nil, &StorageError{Path: path, Op: "open", Err: fmt.Errorf("create table: %w", err)}
	}

	return db, nil
}

// GetValue reads one key from radiaKV. A missing key returns ok=false
// with no error.
func GetValue(db *sql.DB, key string) (string, bool, error) {
	var value sql.NullString
	err := db.QueryRow("SELECT value FROM radiaKV WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("query failed: %w", err)
	}
	if !value.Valid {
		return "", false, nil
	}
	return value.String, true, nil
}

// SetValue upserts one key in radiaKV.
func SetValue(db *sql.DB, key, value string) error {
	_, err := db.Exec(
		"INSERT INTO radiaKV (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value,
	)
	if err != nil {
		return fmt.Errorf("upsert failed: %w", err)
	}
	return nil
}
