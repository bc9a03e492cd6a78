package cli

import (
	"os"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// Config - File-Based Settings
// =============================================================================

// Config holds settings read from ~/.config/brepgraph/config.toml. All fields
// are optional; missing values fall back to built-in defaults or CLI flags.
type Config struct {
	Cache  CacheConfig  `toml:"cache"`
	Server ServerConfig `toml:"server"`
}

// CacheConfig controls the conversion cache backend.
type CacheConfig struct {
	// Disabled turns caching off entirely.
	Disabled bool `toml:"disabled"`
	// Dir overrides the default file cache directory.
	Dir string `toml:"dir"`
	// RedisURL switches the serve command to a Redis cache
	// (e.g. "redis://localhost:6379/0").
	RedisURL string `toml:"redis_url"`
}

// ServerConfig controls the serve command.
type ServerConfig struct {
	// Addr is the listen address (default ":8080").
	Addr string `toml:"addr"`
	// MongoURI switches graph storage from in-memory to MongoDB
	// (e.g. "mongodb://localhost:27017").
	MongoURI string `toml:"mongo_uri"`
	// MongoDatabase names the database holding stored graphs
	// (default "brepgraph").
	MongoDatabase string `toml:"mongo_database"`
}

// DefaultConfig returns the built-in settings used when no config file exists.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Addr:          ":8080",
			MongoDatabase: appName,
		},
	}
}

// LoadConfig reads the config file at path and applies defaults for any
// unset fields.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Server.MongoDatabase == "" {
		cfg.Server.MongoDatabase = appName
	}
	return cfg, nil
}

// LoadConfigOrDefault reads the user's config file, falling back to defaults
// when the file is missing or malformed.
func LoadConfigOrDefault() Config {
	path, err := configPath()
	if err != nil {
		return DefaultConfig()
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return DefaultConfig()
	}
	return cfg
}
