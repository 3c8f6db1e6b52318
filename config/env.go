package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// MergeFromEnv overrides config values with FRAMEGRAB_* environment variables.
// Unset variables leave the current value untouched.
func (c *Config) MergeFromEnv() error {
	return c.mergeFromEnv(nil)
}

func (c *Config) mergeFromEnv(environment map[string]string) error {
	opts := env.Options{Prefix: EnvPrefix}
	if environment != nil {
		opts.Environment = environment
	}
	if err := env.ParseWithOptions(c, opts); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}
	return nil
}
