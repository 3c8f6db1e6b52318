package ffprobe

import (
	"framegrab/command"
)

// ProbeCommand is the ffprobe invocation that dumps streams and format as
// JSON to stdout.
type ProbeCommand struct {
	binary    string
	inputPath string
}

// NewProbeCommand creates a probe for inputPath. An empty binary means
// DefaultBinary.
func NewProbeCommand(binary, inputPath string) *ProbeCommand {
	if binary == "" {
		binary = DefaultBinary
	}
	return &ProbeCommand{binary: binary, inputPath: inputPath}
}

// BuildArgs returns the ffprobe arguments.
//
// -v quiet: suppress verbose output
// -print_format json: output in JSON format
// -show_streams: include stream information
// -show_format: include format information
func (p *ProbeCommand) BuildArgs() []string {
	return []string{
		"-v", "quiet",
		"-print_format", "json",
		"-show_streams",
		"-show_format",
		p.inputPath,
	}
}

// Binary returns the ffprobe executable.
func (p *ProbeCommand) Binary() string {
	return p.binary
}

// DryRun returns the command that would be executed without running it
func (p *ProbeCommand) DryRun() (string, error) {
	return command.CommandLine(p.binary, p.BuildArgs()), nil
}

// GetTaskType returns the task type identifier
func (p *ProbeCommand) GetTaskType() command.TaskType {
	return command.TaskTypeProbe
}

// GetInputPath returns the probed file path
func (p *ProbeCommand) GetInputPath() string {
	return p.inputPath
}

// GetOutputPath returns "" since the result goes to stdout.
func (p *ProbeCommand) GetOutputPath() string {
	return ""
}
