package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// LoadConfig loads configuration with priority: CLI flags > Environment > Config file > Defaults
//
// fs must have been populated by RegisterFlags and parsed. A nil fs skips the
// flag layer. The result is not validated: the input may still be supplied
// as a positional argument, so callers run Validate once it is final.
func LoadConfig(fs *pflag.FlagSet) (*Config, error) {
	// 1. Start with defaults
	cfg := DefaultConfig()

	// 2. Explicit -config flag, otherwise standard locations
	configPath := ""
	if fs != nil && fs.Changed(FlagConfig) {
		var err error
		if configPath, err = fs.GetString(FlagConfig); err != nil {
			return nil, err
		}
	}
	if configPath == "" {
		configPath = FindConfigFile()
	}

	// Load config file if found
	if configPath != "" {
		fileCfg, err := LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		// Merge file config (overwrites defaults)
		cfg = fileCfg
	}

	// 3. Environment
	if err := cfg.MergeFromEnv(); err != nil {
		return nil, err
	}

	// 4. Merge CLI flags (highest priority, overwrites everything)
	if fs != nil {
		if err := cfg.MergeFromFlags(fs); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}
