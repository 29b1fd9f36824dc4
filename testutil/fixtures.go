package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

// CreateKVFixture creates a SQLite database with the radiaKV table and the
// given key-value rows.
func CreateKVFixture(t *testing.T, dbPath string, rows map[string]string) {
	t.Helper()

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer func() { _ = db.Close() }()

	createTableSQL := `
	CREATE TABLE IF NOT EXISTS radiaKV (
		key TEXT PRIMARY KEY,
		value TEXT
	)`
	if _, err := db.Exec(createTableSQL); err != nil {
		t.Fatalf("Failed to create table: %v", err)
	}

	for key, value := range rows {
		if _, err := db.Exec("INSERT INTO radiaKV (key, value) VALUES (?, ?)", key, value); err != nil {
			t.Fatalf("Failed to insert %s: %v", key, err)
		}
	}
}
