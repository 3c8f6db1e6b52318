package config

import "time"

// EnvPrefix prefixes every environment variable read by MergeFromEnv.
const EnvPrefix = "FRAMEGRAB_"

// Config holds all frame capture options
type Config struct {
	// Required fields
	Input string `yaml:"input" env:"INPUT"`

	// Naming and timing
	Output   string  `yaml:"output" env:"OUTPUT"`     // path or pattern, may contain %d
	Offset   string  `yaml:"offset" env:"OFFSET"`     // timecode spec, e.g. "37", "250f", "10%"
	Interval float64 `yaml:"interval" env:"INTERVAL"` // seconds between captures, 0 = single capture

	// Limit is the maximum number of frames. It is parsed and validated but
	// not applied to the ffmpeg invocation.
	Limit int `yaml:"limit" env:"LIMIT"`

	// Tools
	FFmpegBinary  string `yaml:"ffmpeg_binary" env:"FFMPEG_BINARY"`
	FFprobeBinary string `yaml:"ffprobe_binary" env:"FFPROBE_BINARY"`

	// Behavioral flags
	StrictMode bool          `yaml:"strict_mode" env:"STRICT_MODE"` // Fail when ffmpeg exits non-zero
	Timeout    time.Duration `yaml:"timeout" env:"TIMEOUT"`         // 0 = wait for ffmpeg indefinitely
	LogLevel   string        `yaml:"log_level" env:"LOG_LEVEL"`     // debug, info, warn, error
	Verbose    bool          `yaml:"verbose" env:"VERBOSE"`         // Human-readable debug logs
	DryRun     bool          `yaml:"dry_run" env:"DRY_RUN"`         // Print the command without running it
}

// DefaultConfig returns configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		// Required - must be provided by user
		Input: "",

		// Single capture at the start of the file, named after the input
		Output:   "",
		Offset:   "",
		Interval: 0,
		Limit:    0,

		FFmpegBinary:  "ffmpeg",
		FFprobeBinary: "ffprobe",

		// Tool failures are logged, not returned
		StrictMode: false,
		Timeout:    0,
		LogLevel:   "info",
		Verbose:    false,
		DryRun:     false,
	}
}

// Copy creates a copy of the config
func (c *Config) Copy() *Config {
	copy := *c
	return &copy
}

// HasInterval reports whether a multi-frame capture was requested.
func (c *Config) HasInterval() bool {
	return c.Interval > 0
}

// LogLevelValues returns valid log level values
func LogLevelValues() []string {
	return []string{"debug", "info", "warn", "error"}
}

// IsValidLogLevel checks if level is valid
func IsValidLogLevel(level string) bool {
	for _, valid := range LogLevelValues() {
		if level == valid {
			return true
		}
	}
	return false
}
