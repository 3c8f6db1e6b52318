package config

import (
	"fmt"
	"math"
	"strings"
)

// ConfigError reports a missing or invalid configuration value.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// ValidationError collects every ConfigError found by Validate.
type ValidationError struct {
	Errors []*ConfigError
}

func (e *ValidationError) Error() string {
	problems := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		problems[i] = err.Error()
	}
	return fmt.Sprintf("configuration validation failed:\n  - %s", strings.Join(problems, "\n  - "))
}

// Unwrap exposes the individual errors to errors.As.
func (e *ValidationError) Unwrap() []error {
	errs := make([]error, len(e.Errors))
	for i, err := range e.Errors {
		errs[i] = err
	}
	return errs
}

// Validate checks if the configuration is valid.
//
// The input must be set but is not required to exist; inspection reports
// unreadable files. Offsets are checked when they are resolved.
func (c *Config) Validate() error {
	errors := c.captureProblems()

	if strings.TrimSpace(c.FFmpegBinary) == "" {
		errors = append(errors, &ConfigError{Field: "ffmpeg_binary", Reason: "ffmpeg binary is required"})
	}

	if strings.TrimSpace(c.FFprobeBinary) == "" {
		errors = append(errors, &ConfigError{Field: "ffprobe_binary", Reason: "ffprobe binary is required"})
	}

	if c.Timeout < 0 {
		errors = append(errors, &ConfigError{Field: "timeout", Reason: "timeout cannot be negative (use 0 for none)"})
	}

	if !IsValidLogLevel(c.LogLevel) {
		errors = append(errors, &ConfigError{
			Field:  "log_level",
			Reason: fmt.Sprintf("invalid log level '%s', must be one of: %s", c.LogLevel, strings.Join(LogLevelValues(), ", ")),
		})
	}

	if len(errors) > 0 {
		return &ValidationError{Errors: errors}
	}

	return nil
}

// ValidateCapture checks only the fields a single capture depends on: input,
// interval and limit. An empty ffmpeg binary is allowed and means "ffmpeg".
func (c *Config) ValidateCapture() error {
	if errors := c.captureProblems(); len(errors) > 0 {
		return &ValidationError{Errors: errors}
	}
	return nil
}

func (c *Config) captureProblems() []*ConfigError {
	var errors []*ConfigError

	// Required fields
	if strings.TrimSpace(c.Input) == "" {
		errors = append(errors, &ConfigError{Field: "input", Reason: "input file is required"})
	}

	if c.Interval < 0 || math.IsNaN(c.Interval) || math.IsInf(c.Interval, 0) {
		errors = append(errors, &ConfigError{Field: "interval", Reason: "interval must be a positive number of seconds"})
	}

	if c.Limit < 0 {
		errors = append(errors, &ConfigError{Field: "limit", Reason: "limit cannot be negative (use 0 for no limit)"})
	}

	return errors
}
