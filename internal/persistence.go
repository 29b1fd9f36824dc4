package internal

import (
	"database/sql"
	"encoding/json"
)

// Storage keys in radiaKV.
const (
	sessionListKey   = "radia.sessions"
	activeSessionKey = "radia.activeSession"
)

// KVStore mirrors the session collection to the SQLite key-value table:
// one key holds the full session list as JSON, a second holds the active
// session id as a plain string.
type KVStore struct {
	db   *sql.DB
	path string
}

// NewKVStore creates a KVStore over an open database.
func NewKVStore(db *sql.DB, path string) *KVStore {
	return &KVStore{db: db, path: path}
}

// Persist writes the session list and active id. Implements Persister.
func (kv *KVStore) Persist(sessions []*Session, activeID string) error {
	data, err := json.Marshal(sessions)
	if err != nil {
		return &StorageError{Path: kv.path, Op: "write", Err: err}
	}
	if err := SetValue(kv.db, sessionListKey, string(data)); err != nil {
		return &StorageError{Path: kv.path, Op: "write", Err: err}
	}
	if err := SetValue(kv.db, activeSessionKey, activeID); err != nil {
		return &StorageError{Path: kv.path, Op: "write", Err: err}
	}
	return nil
}

// Load restores the session collection. The decode is total: a missing
// key, unparsable JSON, or an empty list all degrade to a single fresh
// session rather than an error. A stale active id is left for the store
// to resolve.
func (kv *KVStore) Load() ([]*Session, string) {
	sessions := kv.loadSessions()

	activeID, ok, err := GetValue(kv.db, activeSessionKey)
	if err != nil {
		LogDebug("failed to read active session id: %v", err)
	}
	if !ok {
		activeID = ""
	}

	return sessions, activeID
}

func (kv *KVStore) loadSessions() []*Session {
	raw, ok, err := GetValue(kv.db, sessionListKey)
	if err != nil {
		LogWarn("failed to read stored sessions, starting fresh: %v", err)
		return []*Session{NewSession()}
	}
	if !ok {
		return []*Session{NewSession()}
	}

	var sessions []*Session
	if err := json.Unmarshal([]byte(raw), &sessions); err != nil {
		LogWarn("stored sessions unparsable, starting fresh: %v", err)
		return []*Session{NewSession()}
	}
	if len(sessions) == 0 {
		return []*Session{NewSession()}
	}

	for _, sess := range sessions {
		if sess.Messages == nil {
			sess.Messages = []Message{}
		}
	}
	return sessions
}
