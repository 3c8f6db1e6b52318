package capture

import (
	"fmt"

	"framegrab/command"
	"framegrab/config"
	"framegrab/internal/timecode"
)

// ConfigError reports a missing or invalid configuration value. New returns
// it before any inspection or tool invocation happens.
type ConfigError = config.ConfigError

// ParameterError reports a malformed offset or one that cannot be converted,
// such as a frame offset on media without a known frame rate.
type ParameterError = timecode.ParameterError

// ExecutionError reports that ffmpeg could not be started or exited with an
// error. It is only returned in strict mode; otherwise the failure is logged
// and whatever files exist are returned.
type ExecutionError struct {
	Binary string
	Args   []string
	Output []byte
	Err    error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("ffmpeg failed: %v (command: %s)", e.Err, command.CommandLine(e.Binary, e.Args))
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}
