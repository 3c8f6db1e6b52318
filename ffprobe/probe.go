// Package ffprobe provides utilities for extracting metadata from media files
// using the ffprobe command-line tool.
package ffprobe

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"framegrab/command"
	"framegrab/internal/timecode"
)

// DefaultBinary is the ffprobe executable used when none is configured.
const DefaultBinary = "ffprobe"

// Stream represents a media stream (audio, video, subtitle, etc.)
type Stream struct {
	Index         int    `json:"index"`
	CodecName     string `json:"codec_name"`
	CodecType     string `json:"codec_type"`
	CodecLongName string `json:"codec_long_name"`
	Width         int    `json:"width,omitempty"`
	Height        int    `json:"height,omitempty"`
	AvgFrameRate  string `json:"avg_frame_rate,omitempty"`
	RFrameRate    string `json:"r_frame_rate,omitempty"`
	NbFrames      string `json:"nb_frames,omitempty"`
	Duration      string `json:"duration,omitempty"`
}

// Format represents the container format information.
type Format struct {
	Filename       string `json:"filename"`
	FormatName     string `json:"format_name"`
	FormatLongName string `json:"format_long_name"`
	Duration       string `json:"duration"`
	Size           string `json:"size"`
	BitRate        string `json:"bit_rate"`
}

// ProbeResult holds the metadata extracted from a media file.
type ProbeResult struct {
	Streams []Stream `json:"streams"`
	Format  Format   `json:"format"`
}

// ProbeError reports that a media file could not be inspected. It wraps the
// underlying process, decoding or metadata error.
type ProbeError struct {
	Path string
	Err  error
}

func (e *ProbeError) Error() string {
	return fmt.Sprintf("media inspection failed for %s: %v", e.Path, e.Err)
}

func (e *ProbeError) Unwrap() error {
	return e.Err
}

// GetDuration returns the duration of the media file in seconds.
//
// The container duration is preferred; the first video stream's duration is
// used when the container does not report one.
func (pr *ProbeResult) GetDuration() (float64, error) {
	raw := pr.Format.Duration
	if raw == "" {
		if video, ok := pr.PrimaryVideoStream(); ok {
			raw = video.Duration
		}
	}
	if raw == "" {
		return 0, fmt.Errorf("duration not available in format metadata")
	}

	duration, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse duration '%s': %w", raw, err)
	}
	if duration < 0 {
		return 0, fmt.Errorf("negative duration '%s'", raw)
	}

	return duration, nil
}

// GetFrameRate returns the frame rate of the primary video stream.
//
// avg_frame_rate is preferred and r_frame_rate is the fallback. Streams that
// report "0/0" for both yield 0 without error.
func (pr *ProbeResult) GetFrameRate() (float64, error) {
	video, ok := pr.PrimaryVideoStream()
	if !ok {
		return 0, fmt.Errorf("no video stream found")
	}

	for _, raw := range []string{video.AvgFrameRate, video.RFrameRate} {
		if raw == "" {
			continue
		}
		fps, err := ParseFrameRate(raw)
		if err != nil {
			return 0, err
		}
		if fps > 0 {
			return fps, nil
		}
	}

	return 0, nil
}

// GetVideoStreams returns all video streams from the media file.
func (pr *ProbeResult) GetVideoStreams() []Stream {
	var videoStreams []Stream
	for _, stream := range pr.Streams {
		if stream.CodecType == "video" {
			videoStreams = append(videoStreams, stream)
		}
	}
	return videoStreams
}

// PrimaryVideoStream returns the first video stream.
func (pr *ProbeResult) PrimaryVideoStream() (Stream, bool) {
	streams := pr.GetVideoStreams()
	if len(streams) == 0 {
		return Stream{}, false
	}
	return streams[0], true
}

// ParseFrameRate parses ffprobe rationals such as "30000/1001" or "25/1".
// Plain decimals are accepted too. A zero denominator yields 0.
func ParseFrameRate(raw string) (float64, error) {
	num, den, found := strings.Cut(strings.TrimSpace(raw), "/")

	n, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse frame rate '%s': %w", raw, err)
	}
	if !found {
		return n, nil
	}

	d, err := strconv.ParseFloat(den, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse frame rate '%s': %w", raw, err)
	}
	if d == 0 {
		return 0, nil
	}

	return n / d, nil
}

// MediaInfo is the duration and frame rate of an inspected file.
type MediaInfo struct {
	durationMs int64
	fps        float64
}

// NewMediaInfo creates a MediaInfo from known values.
func NewMediaInfo(durationMs int64, fps float64) *MediaInfo {
	return &MediaInfo{durationMs: durationMs, fps: fps}
}

// DurationMs returns the duration in whole milliseconds.
func (m *MediaInfo) DurationMs() int64 { return m.durationMs }

// FPS returns the frame rate, 0 when unknown.
func (m *MediaInfo) FPS() float64 { return m.fps }

// Option configures a Prober.
type Option func(*Prober)

// WithRunner overrides the process runner.
func WithRunner(runner command.Runner) Option {
	return func(p *Prober) {
		p.runner = runner
	}
}

// Prober runs ffprobe against media files.
type Prober struct {
	binary string
	runner command.Runner
}

// NewProber creates a Prober. An empty binary means DefaultBinary.
func NewProber(binary string, opts ...Option) *Prober {
	if binary == "" {
		binary = DefaultBinary
	}
	p := &Prober{
		binary: binary,
		runner: command.ExecRunner{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Command returns the ffprobe invocation for sourcePath.
func (p *Prober) Command(sourcePath string) *ProbeCommand {
	return NewProbeCommand(p.binary, sourcePath)
}

// Probe analyzes a media file and extracts its metadata using ffprobe.
//
// Example:
//
//	result, err := ffprobe.NewProber("").Probe(ctx, "/path/to/video.mp4")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	duration, _ := result.GetDuration()
//	fmt.Printf("Duration: %.2f seconds\n", duration)
func (p *Prober) Probe(ctx context.Context, sourcePath string) (*ProbeResult, error) {
	if sourcePath == "" {
		return nil, &ProbeError{Path: sourcePath, Err: fmt.Errorf("source path cannot be empty")}
	}

	output, err := command.Execute(ctx, p.runner, p.Command(sourcePath))
	if err != nil {
		return nil, &ProbeError{Path: sourcePath, Err: fmt.Errorf("ffprobe failed: %w (output: %s)", err, string(output))}
	}

	var result ProbeResult
	if err := json.Unmarshal(output, &result); err != nil {
		return nil, &ProbeError{Path: sourcePath, Err: fmt.Errorf("failed to parse ffprobe JSON output: %w", err)}
	}

	return &result, nil
}

// Inspect probes sourcePath and reduces the result to duration and frame rate.
func (p *Prober) Inspect(ctx context.Context, sourcePath string) (timecode.MediaInfo, error) {
	result, err := p.Probe(ctx, sourcePath)
	if err != nil {
		return nil, err
	}

	info, err := result.MediaInfo()
	if err != nil {
		return nil, &ProbeError{Path: sourcePath, Err: err}
	}

	return info, nil
}

// MediaInfo derives duration (truncated to whole milliseconds) and frame rate.
func (pr *ProbeResult) MediaInfo() (*MediaInfo, error) {
	duration, err := pr.GetDuration()
	if err != nil {
		return nil, err
	}

	fps, err := pr.GetFrameRate()
	if err != nil {
		return nil, err
	}

	return NewMediaInfo(int64(duration*1000), fps), nil
}
