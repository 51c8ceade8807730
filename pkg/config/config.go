/*
Package config manages TOML configuration for vaguetrie's compiler and
search front-ends.

InitConfig handles automatic config file creation and loading with fallback
to defaults. LoadConfig and SaveConfig provide direct file system access for
runtime changes.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure
type Config struct {
	Compiler CompilerConfig `toml:"compiler"`
	Search   SearchConfig   `toml:"search"`
	IPC      IPCConfig      `toml:"ipc"`
}

// CompilerConfig has options for the dictionary compiler.
type CompilerConfig struct {
	// MaxWordCountValidation rejects plaintext dictionaries that look
	// corrupt (an implausible number of lines) before spending time on them.
	MaxWordCountValidation int `toml:"max_word_count_validation"`
	// RangeNodeMinSpan is the minimum number of lexicographically
	// contiguous characters the node-shape heuristic will fold into a
	// single range node; below this a range header can't pay for itself.
	RangeNodeMinSpan int `toml:"range_node_min_span"`
}

// SearchConfig has options for the query engine.
type SearchConfig struct {
	// DefaultMaxDistance is used by front-ends that accept an optional
	// distance argument.
	DefaultMaxDistance int `toml:"default_max_distance"`
	// MaxAllowedDistance bounds the distance a query may request, so a
	// pathological "approx 9999 x" query can't force an unbounded walk.
	MaxAllowedDistance int `toml:"max_allowed_distance"`
	// ResultCacheSize is the number of distinct (word, distance) queries
	// memoized by the result cache. Zero disables the cache.
	ResultCacheSize int `toml:"result_cache_size"`
}

// IPCConfig controls the optional MessagePack IPC front-end.
type IPCConfig struct {
	Enabled bool `toml:"enabled"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Compiler: CompilerConfig{
			MaxWordCountValidation: 5_000_000,
			RangeNodeMinSpan:       2,
		},
		Search: SearchConfig{
			DefaultMaxDistance: 2,
			MaxAllowedDistance: 8,
			ResultCacheSize:    512,
		},
		IPC: IPCConfig{
			Enabled: false,
		},
	}
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, err
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := SaveConfig(cfg, configPath); err != nil {
			return nil, err
		}
		log.Debugf("Created default config file at: ( %s )", configPath)
		return cfg, nil
	}
	cfg, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config, using defaults: %v", err)
		return DefaultConfig(), nil
	}
	return cfg, nil
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(configPath, &cfg); err != nil {
		log.Errorf("Failed to decode config file: %v", err)
		return nil, err
	}
	return &cfg, nil
}

// SaveConfig saves into a TOML file
func SaveConfig(cfg *Config, configPath string) error {
	file, err := os.Create(configPath)
	if err != nil {
		log.Errorf("Failed to create config file: %v", err)
		return err
	}
	defer file.Close()
	encoder := toml.NewEncoder(file)
	return encoder.Encode(cfg)
}

// Update changes the config values and saves to file
func (c *Config) Update(configPath string, maxDistance, resultCacheSize *int, ipcEnabled *bool) error {
	if maxDistance != nil {
		c.Search.MaxAllowedDistance = *maxDistance
	}
	if resultCacheSize != nil {
		c.Search.ResultCacheSize = *resultCacheSize
	}
	if ipcEnabled != nil {
		c.IPC.Enabled = *ipcEnabled
	}
	return SaveConfig(c, configPath)
}
