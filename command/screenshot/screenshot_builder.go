package screenshot

import (
	"framegrab/command"
	"framegrab/internal/timeutil"
)

// DefaultBinary is the ffmpeg executable used when none is configured.
const DefaultBinary = "ffmpeg"

// ScreenshotBuilder builds the ffmpeg invocation that grabs a still frame.
//
// The flag order is fixed:
//
//	<binary> -i <input> -ss <offset> -vframes 1 -vcodec mjpeg -y -f image2 [-s <size>] <output>
//
// The output may contain a printf-style index placeholder (e.g. "%d"), which
// the image2 muxer expands into sequential file names.
type ScreenshotBuilder struct {
	binary     string
	inputPath  string
	outputPath string
	offset     float64
	size       string
}

// NewScreenshotBuilder creates a builder grabbing from offset 0.
func NewScreenshotBuilder(inputPath, outputPath string) *ScreenshotBuilder {
	return &ScreenshotBuilder{
		binary:     DefaultBinary,
		inputPath:  inputPath,
		outputPath: outputPath,
	}
}

// SetBinary overrides the ffmpeg executable. Empty keeps the current one.
func (s *ScreenshotBuilder) SetBinary(binary string) *ScreenshotBuilder {
	if binary != "" {
		s.binary = binary
	}
	return s
}

// SetOffset sets the seek position in seconds.
func (s *ScreenshotBuilder) SetOffset(seconds float64) *ScreenshotBuilder {
	s.offset = seconds
	return s
}

// SetSize sets the output frame size (e.g. "640x360"). Empty keeps the
// source resolution and emits no flag.
func (s *ScreenshotBuilder) SetSize(size string) *ScreenshotBuilder {
	s.size = size
	return s
}

// Offset returns the seek position in seconds.
func (s *ScreenshotBuilder) Offset() float64 {
	return s.offset
}

// BuildArgs constructs the ffmpeg arguments for the screenshot.
func (s *ScreenshotBuilder) BuildArgs() []string {
	// -ss follows -i, so ffmpeg decodes up to the offset before grabbing.
	// Moving it ahead of -i seeks faster but some legacy codecs then return
	// a blank or gray frame.
	args := []string{
		"-i", s.inputPath,
		"-ss", timeutil.FormatOffset(s.offset),
		"-vframes", "1",
		"-vcodec", "mjpeg",
		"-y",
		"-f", "image2",
	}

	if s.size != "" {
		args = append(args, "-s", s.size)
	}

	args = append(args, s.outputPath)

	return args
}

// Binary returns the ffmpeg executable.
func (s *ScreenshotBuilder) Binary() string {
	return s.binary
}

// DryRun returns the command that would be executed without running it
func (s *ScreenshotBuilder) DryRun() (string, error) {
	return command.CommandLine(s.binary, s.BuildArgs()), nil
}

// GetTaskType returns the task type identifier
func (s *ScreenshotBuilder) GetTaskType() command.TaskType {
	return command.TaskTypeScreenshot
}

// GetInputPath returns the input file path
func (s *ScreenshotBuilder) GetInputPath() string {
	return s.inputPath
}

// GetOutputPath returns the output file path or pattern
func (s *ScreenshotBuilder) GetOutputPath() string {
	return s.outputPath
}
