package config

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Input != "" {
		t.Errorf("Expected empty input, got %s", cfg.Input)
	}
	if cfg.FFmpegBinary != "ffmpeg" {
		t.Errorf("Expected ffmpeg binary 'ffmpeg', got %s", cfg.FFmpegBinary)
	}
	if cfg.FFprobeBinary != "ffprobe" {
		t.Errorf("Expected ffprobe binary 'ffprobe', got %s", cfg.FFprobeBinary)
	}
	if cfg.Interval != 0 || cfg.HasInterval() {
		t.Errorf("Expected no interval, got %v", cfg.Interval)
	}
	if cfg.StrictMode {
		t.Error("Expected strict mode to be false")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Expected log level 'info', got %s", cfg.LogLevel)
	}
	if cfg.Timeout != 0 {
		t.Errorf("Expected no timeout, got %s", cfg.Timeout)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		config      func() *Config
		expectError bool
		field       string
		errorText   string
	}{
		{
			name: "valid config",
			config: func() *Config {
				cfg := DefaultConfig()
				cfg.Input = "input.mp4"
				return cfg
			},
		},
		{
			name: "valid multi-frame config",
			config: func() *Config {
				cfg := DefaultConfig()
				cfg.Input = "input.mp4"
				cfg.Interval = 5
				cfg.Limit = 10
				cfg.Timeout = time.Minute
				return cfg
			},
		},
		{
			name: "missing input",
			config: func() *Config {
				return DefaultConfig()
			},
			expectError: true,
			field:       "input",
			errorText:   "input file is required",
		},
		{
			name: "whitespace input",
			config: func() *Config {
				cfg := DefaultConfig()
				cfg.Input = "   "
				return cfg
			},
			expectError: true,
			field:       "input",
			errorText:   "input file is required",
		},
		{
			name: "negative interval",
			config: func() *Config {
				cfg := DefaultConfig()
				cfg.Input = "input.mp4"
				cfg.Interval = -1
				return cfg
			},
			expectError: true,
			field:       "interval",
			errorText:   "interval must be a positive number",
		},
		{
			name: "NaN interval",
			config: func() *Config {
				cfg := DefaultConfig()
				cfg.Input = "input.mp4"
				cfg.Interval = math.NaN()
				return cfg
			},
			expectError: true,
			field:       "interval",
		},
		{
			name: "negative limit",
			config: func() *Config {
				cfg := DefaultConfig()
				cfg.Input = "input.mp4"
				cfg.Limit = -3
				return cfg
			},
			expectError: true,
			field:       "limit",
			errorText:   "limit cannot be negative",
		},
		{
			name: "empty ffmpeg binary",
			config: func() *Config {
				cfg := DefaultConfig()
				cfg.Input = "input.mp4"
				cfg.FFmpegBinary = ""
				return cfg
			},
			expectError: true,
			field:       "ffmpeg_binary",
		},
		{
			name: "negative timeout",
			config: func() *Config {
				cfg := DefaultConfig()
				cfg.Input = "input.mp4"
				cfg.Timeout = -time.Second
				return cfg
			},
			expectError: true,
			field:       "timeout",
		},
		{
			name: "invalid log level",
			config: func() *Config {
				cfg := DefaultConfig()
				cfg.Input = "input.mp4"
				cfg.LogLevel = "loud"
				return cfg
			},
			expectError: true,
			field:       "log_level",
			errorText:   "invalid log level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config().Validate()

			if !tt.expectError {
				if err != nil {
					t.Errorf("Unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Expected error but got none")
			}

			var cerr *ConfigError
			if !errors.As(err, &cerr) {
				t.Fatalf("Expected *ConfigError, got %T", err)
			}
			if cerr.Field != tt.field {
				t.Errorf("Expected field '%s', got '%s'", tt.field, cerr.Field)
			}
			if tt.errorText != "" && !strings.Contains(err.Error(), tt.errorText) {
				t.Errorf("Expected error containing '%s', got: %v", tt.errorText, err)
			}
		})
	}
}

func TestValidate_CollectsAllProblems(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Limit = -1
	cfg.LogLevel = "nope"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Expected error but got none")
	}

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Expected *ValidationError, got %T", err)
	}
	if len(verr.Errors) != 3 {
		t.Errorf("Expected 3 problems, got %d: %v", len(verr.Errors), err)
	}
	if !strings.HasPrefix(err.Error(), "configuration validation failed:") {
		t.Errorf("Unexpected error format: %v", err)
	}
}

func TestValidateCapture(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		expectError bool
		field       string
	}{
		{"Only input set", Config{Input: "input.mp4"}, false, ""},
		{"Empty binaries and log level are allowed", Config{Input: "input.mp4", Interval: 5, Limit: 2}, false, ""},
		{"Missing input", Config{}, true, "input"},
		{"Negative interval", Config{Input: "input.mp4", Interval: -1}, true, "interval"},
		{"Negative limit", Config{Input: "input.mp4", Limit: -3}, true, "limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.ValidateCapture()

			if !tt.expectError {
				if err != nil {
					t.Errorf("Unexpected error: %v", err)
				}
				return
			}

			var cerr *ConfigError
			if !errors.As(err, &cerr) {
				t.Fatalf("Expected *ConfigError, got %T (%v)", err, err)
			}
			if cerr.Field != tt.field {
				t.Errorf("Expected field %s, got %s", tt.field, cerr.Field)
			}
		})
	}
}

func TestCopy(t *testing.T) {
	original := DefaultConfig()
	original.Input = "a.mp4"

	copied := original.Copy()
	copied.Input = "b.mp4"

	if original.Input != "a.mp4" {
		t.Errorf("Copy modified original: %s", original.Input)
	}
}

func TestIsValidLogLevel(t *testing.T) {
	for _, level := range LogLevelValues() {
		if !IsValidLogLevel(level) {
			t.Errorf("Expected %s to be valid", level)
		}
	}
	for _, level := range []string{"", "trace", "INFO"} {
		if IsValidLogLevel(level) {
			t.Errorf("Expected %q to be invalid", level)
		}
	}
}
