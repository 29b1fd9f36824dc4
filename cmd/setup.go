package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/benboone2/Radia-AI-chat-UI/internal"
)

// openStore loads configuration, opens the session database, and restores
// the session store. The returned cleanup closes the database.
func openStore() (*internal.Store, *internal.Config, func(), error) {
	path := configPath
	if path == "" {
		path = internal.DefaultConfigPath()
	}
	cfg := internal.LoadConfig(path)
	if dataPath != "" {
		cfg.DataPath = dataPath
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DataPath), 0755); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := internal.OpenDatabase(cfg.DataPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to open session database: %w", err)
	}
	cleanup := func() {
		if err := db.Close(); err != nil {
			internal.LogWarn("failed to close database: %v", err)
		}
	}

	kv := internal.NewKVStore(db, cfg.DataPath)
	sessions, activeID := kv.Load()
	store := internal.NewStore(sessions, activeID, kv)

	return store, cfg, cleanup, nil
}
