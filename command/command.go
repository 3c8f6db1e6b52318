// Package command provides the core Command interface and the process-execution
// facility used to run FFmpeg and FFprobe.
//
// Builders produce explicit argument vectors; nothing is ever passed through a
// shell, so paths containing spaces or quotes need no escaping.
package command

import (
	"context"
	"os/exec"
	"strconv"
	"strings"
)

// TaskType represents the type of tool invocation.
type TaskType string

const (
	TaskTypeScreenshot TaskType = "screenshot" // Still frame extraction with ffmpeg
	TaskTypeProbe      TaskType = "probe"      // Metadata inspection with ffprobe
)

// Command represents an external tool invocation that can be built, executed,
// or previewed.
//
// Example usage:
//
//	cmd := screenshot.NewScreenshotBuilder("input.mp4", "input-2.jpg").
//		SetOffset(2)
//
//	// Preview the command
//	line, _ := cmd.DryRun()
//
//	// Execute the command
//	output, err := command.Execute(ctx, command.ExecRunner{}, cmd)
type Command interface {
	// Binary returns the executable name or path, e.g. "ffmpeg".
	Binary() string

	// BuildArgs constructs and returns the command arguments as a slice.
	// The returned slice is suitable for exec.Command(Binary(), args...).
	//
	// Example return value:
	//   ["-i", "input.mp4", "-ss", "2", "-vframes", "1", "-vcodec", "mjpeg", "-y", "-f", "image2", "out.jpg"]
	BuildArgs() []string

	// DryRun returns the command as a string without executing it.
	// Useful for debugging, logging, or generating scripts.
	DryRun() (string, error)

	// GetTaskType returns the type of task (screenshot, probe).
	GetTaskType() TaskType

	// GetInputPath returns the primary input file path for this command.
	GetInputPath() string

	// GetOutputPath returns the output file path or pattern for this command.
	GetOutputPath() string
}

// Runner executes a binary with an argument vector and returns its combined
// stdout and stderr. Implementations block until the process exits.
type Runner interface {
	Run(ctx context.Context, binary string, args ...string) ([]byte, error)
}

// RunnerFunc adapts a function to the Runner interface.
type RunnerFunc func(ctx context.Context, binary string, args ...string) ([]byte, error)

// Run calls f(ctx, binary, args...).
func (f RunnerFunc) Run(ctx context.Context, binary string, args ...string) ([]byte, error) {
	return f(ctx, binary, args...)
}

// ExecRunner runs processes with os/exec. Cancelling ctx kills the process;
// no timeout is applied otherwise.
type ExecRunner struct{}

// Run executes binary and captures combined output.
func (ExecRunner) Run(ctx context.Context, binary string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, binary, args...)
	return cmd.CombinedOutput()
}

// Execute runs cmd through runner.
func Execute(ctx context.Context, runner Runner, cmd Command) ([]byte, error) {
	return runner.Run(ctx, cmd.Binary(), cmd.BuildArgs()...)
}

// CommandLine renders binary and args as a single printable line. Arguments
// containing whitespace or quotes are quoted; the result is for display only.
func CommandLine(binary string, args []string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, quoteArg(binary))
	for _, arg := range args {
		parts = append(parts, quoteArg(arg))
	}
	return strings.Join(parts, " ")
}

func quoteArg(arg string) string {
	if arg == "" || strings.ContainsAny(arg, " \t\n\"'") {
		return strconv.Quote(arg)
	}
	return arg
}
