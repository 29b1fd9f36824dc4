package internal

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EndpointEnvVar supplies the answer-service address. It overrides the
// config file; when neither is set, sending is disabled.
const EndpointEnvVar = "RADIA_ENDPOINT"

// Config holds client configuration.
type Config struct {
	// Endpoint is the answer-service URL. Empty disables sending.
	Endpoint string `yaml:"endpoint,omitempty"`
	// DataPath is the SQLite database location for session persistence.
	DataPath string `yaml:"data_path,omitempty"`
}

// DefaultConfigPath returns ~/.radia/config.yaml, or "" when the home
// directory is unknown.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".radia", "config.yaml")
}

// DefaultDataPath returns ~/.radia/radia.db, or a relative fallback when
// the home directory is unknown.
func DefaultDataPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "radia.db"
	}
	return filepath.Join(home, ".radia", "radia.db")
}

// LoadConfig reads configuration from the given yaml file and applies the
// environment override. Loading is total: a missing or unparsable file
// degrades to defaults, so a broken config never blocks the client.
func LoadConfig(path string) *Config {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			LogDebug("no config file at %s: %v", path, err)
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			LogWarn("config file %s unparsable, using defaults: %v", path, err)
			cfg = &Config{}
		}
	}

	if endpoint := os.Getenv(EndpointEnvVar); endpoint != "" {
		cfg.Endpoint = endpoint
	}
	if cfg.DataPath == "" {
		cfg.DataPath = DefaultDataPath()
	}

	return cfg
}
