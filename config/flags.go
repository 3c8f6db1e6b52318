package config

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"
)

// Flag names shared by RegisterFlags and MergeFromFlags.
const (
	FlagConfig        = "config"
	FlagInput         = "input"
	FlagOutput        = "output"
	FlagOffset        = "offset"
	FlagInterval      = "interval"
	FlagLimit         = "limit"
	FlagFFmpegBinary  = "ffmpeg-binary"
	FlagFFprobeBinary = "ffprobe-binary"
	FlagStrict        = "strict"
	FlagNoStrict      = "no-strict"
	FlagTimeout       = "timeout"
	FlagLogLevel      = "log-level"
	FlagVerbose       = "verbose"
	FlagDryRun        = "dry-run"
)

// RegisterFlags defines every configuration flag on fs. Defaults shown in help
// come from DefaultConfig; only flags the user sets override other layers.
func RegisterFlags(fs *pflag.FlagSet) {
	d := DefaultConfig()

	// Config file override (handled by LoadConfig before merging flags)
	fs.String(FlagConfig, "", "Path to config file (default: search standard locations)")

	fs.StringP(FlagInput, "i", d.Input, "Input video file path")
	fs.StringP(FlagOutput, "o", d.Output, "Output file or pattern, %d is replaced by the frame index (default: <input>-<offset>.jpg)")
	fs.String(FlagOffset, d.Offset, "Start offset: seconds (37, 12.5s), frames (250f) or percent of duration (10%)")
	fs.Float64(FlagInterval, d.Interval, "Seconds between captures (enables multi-frame naming)")
	fs.Int(FlagLimit, d.Limit, "Maximum number of frames (accepted but not applied)")

	fs.String(FlagFFmpegBinary, d.FFmpegBinary, "ffmpeg executable")
	fs.String(FlagFFprobeBinary, d.FFprobeBinary, "ffprobe executable")

	fs.Bool(FlagStrict, false, "Fail when ffmpeg exits with an error")
	fs.Bool(FlagNoStrict, false, "Ignore ffmpeg exit status (default)")
	fs.Duration(FlagTimeout, d.Timeout, "Kill ffmpeg after this long, e.g. 30s (0 = no limit)")
	fs.String(FlagLogLevel, d.LogLevel, "Log level: debug, info, warn, error")
	fs.BoolP(FlagVerbose, "v", d.Verbose, "Enable human-readable verbose logging")
	fs.Bool(FlagDryRun, d.DryRun, "Print the ffmpeg command without running it")
}

// MergeFromFlags overrides config values with flags that were explicitly set
func (c *Config) MergeFromFlags(fs *pflag.FlagSet) error {
	var err error
	changed := func(name string) bool {
		return err == nil && fs.Changed(name)
	}

	if changed(FlagInput) {
		c.Input, err = fs.GetString(FlagInput)
	}
	if changed(FlagOutput) {
		c.Output, err = fs.GetString(FlagOutput)
	}
	if changed(FlagOffset) {
		c.Offset, err = fs.GetString(FlagOffset)
	}
	if changed(FlagInterval) {
		c.Interval, err = fs.GetFloat64(FlagInterval)
		if err == nil && c.Interval <= 0 {
			err = fmt.Errorf("--%s must be positive, got %v", FlagInterval, c.Interval)
		}
	}
	if changed(FlagLimit) {
		c.Limit, err = fs.GetInt(FlagLimit)
	}

	if changed(FlagFFmpegBinary) {
		c.FFmpegBinary, err = fs.GetString(FlagFFmpegBinary)
	}
	if changed(FlagFFprobeBinary) {
		c.FFprobeBinary, err = fs.GetString(FlagFFprobeBinary)
	}

	// Behavioral flags
	if changed(FlagStrict) {
		c.StrictMode, err = fs.GetBool(FlagStrict)
	}
	if changed(FlagNoStrict) {
		var noStrict bool
		if noStrict, err = fs.GetBool(FlagNoStrict); err == nil && noStrict {
			c.StrictMode = false
		}
	}
	if changed(FlagTimeout) {
		c.Timeout, err = fs.GetDuration(FlagTimeout)
	}
	if changed(FlagLogLevel) {
		c.LogLevel, err = fs.GetString(FlagLogLevel)
	}
	if changed(FlagVerbose) {
		c.Verbose, err = fs.GetBool(FlagVerbose)
	}
	if changed(FlagDryRun) {
		c.DryRun, err = fs.GetBool(FlagDryRun)
	}

	return err
}

// PrintConfig prints the effective configuration
func (c *Config) PrintConfig(w io.Writer) {
	fmt.Fprintln(w, "═══════════════════════════════════════════════════════════")
	fmt.Fprintln(w, "                 Effective Configuration                  ")
	fmt.Fprintln(w, "═══════════════════════════════════════════════════════════")
	fmt.Fprintf(w, "Input:          %s\n", c.Input)
	fmt.Fprintf(w, "Output:         %s\n", orDefault(c.Output, "(derived from input)"))
	fmt.Fprintf(w, "Offset:         %s\n", orDefault(c.Offset, "0"))
	if c.HasInterval() {
		fmt.Fprintf(w, "Interval:       %v seconds\n", c.Interval)
	}
	if c.Limit > 0 {
		fmt.Fprintf(w, "Limit:          %d (not applied)\n", c.Limit)
	}

	fmt.Fprintln(w, "\nTools:")
	fmt.Fprintf(w, "  ffmpeg:       %s\n", c.FFmpegBinary)
	fmt.Fprintf(w, "  ffprobe:      %s\n", c.FFprobeBinary)

	fmt.Fprintln(w, "\nBehavioral Flags:")
	fmt.Fprintf(w, "  Strict Mode:   %v\n", c.StrictMode)
	if c.Timeout > 0 {
		fmt.Fprintf(w, "  Timeout:       %s\n", c.Timeout)
	}
	fmt.Fprintf(w, "  Log Level:     %s\n", c.LogLevel)
	fmt.Fprintf(w, "  Verbose:       %v\n", c.Verbose)
	fmt.Fprintf(w, "  Dry Run:       %v\n", c.DryRun)
	fmt.Fprintln(w, "═══════════════════════════════════════════════════════════")
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
