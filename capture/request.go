// Package capture grabs still frames from a video with ffmpeg.
//
// A Request moves through three states: constructed (config validated, media
// inspected), resolved (offset, rate, output and command derived) and
// executed (ffmpeg run, output files collected). Nothing is shared between
// requests, so independent requests may run concurrently as long as their
// output paths differ.
//
//	req, err := capture.New(ctx, cfg, ffprobe.NewProber(cfg.FFprobeBinary),
//		capture.WithLogger(logger))
//	if err != nil {
//	    return err
//	}
//	files, err := req.Capture(ctx)
package capture

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"framegrab/command"
	"framegrab/command/screenshot"
	"framegrab/config"
	"framegrab/ffmpeg"
	"framegrab/internal/timecode"
	"framegrab/internal/timeutil"

	"go.uber.org/zap"
)

// SingleCaptureRate is the rate reported when no interval was requested.
const SingleCaptureRate = 1.0

// MediaInfo is the duration and frame rate of the input.
type MediaInfo = timecode.MediaInfo

// Inspector reports duration and frame rate for a media file.
type Inspector interface {
	Inspect(ctx context.Context, path string) (MediaInfo, error)
}

// ResolvedCapture is everything derived from the config before ffmpeg runs.
type ResolvedCapture struct {
	Offset      float64 // seconds
	Rate        float64 // captures per second, SingleCaptureRate without an interval
	Output      string  // path or pattern passed to ffmpeg
	Command     *screenshot.ScreenshotBuilder
	CommandLine string
}

// Option configures a Request.
type Option func(*Request)

// WithRunner overrides the process runner used to execute ffmpeg.
func WithRunner(runner command.Runner) Option {
	return func(r *Request) {
		r.runner = runner
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Request) {
		r.logger = logger
	}
}

// Request is a single frame capture invocation.
type Request struct {
	cfg    config.Config
	input  string // absolute
	media  MediaInfo
	runner command.Runner
	logger *zap.Logger
}

// New validates cfg and inspects the input. Configuration problems are
// reported as ConfigError before the inspector is called; inspector errors
// are returned unchanged. Only the capture fields are checked: an empty
// FFmpegBinary means "ffmpeg", and FFprobeBinary and LogLevel are ignored
// since the inspector and logger are injected.
func New(ctx context.Context, cfg *config.Config, inspector Inspector, opts ...Option) (*Request, error) {
	if cfg == nil {
		return nil, &ConfigError{Field: "input", Reason: "input file is required"}
	}
	if err := cfg.ValidateCapture(); err != nil {
		return nil, err
	}
	if inspector == nil {
		return nil, &ConfigError{Field: "inspector", Reason: "a media inspector is required"}
	}

	input, err := filepath.Abs(cfg.Input)
	if err != nil {
		return nil, &ConfigError{Field: "input", Reason: fmt.Sprintf("cannot resolve path: %v", err)}
	}

	r := &Request{
		cfg:    *cfg.Copy(),
		input:  input,
		runner: command.ExecRunner{},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}

	media, err := inspector.Inspect(ctx, input)
	if err != nil {
		return nil, err
	}
	if media == nil {
		return nil, &ConfigError{Field: "inspector", Reason: fmt.Sprintf("no media information returned for %s", input)}
	}
	r.media = media

	r.logger.Debug("media inspected",
		zap.String("input", input),
		zap.Int64("duration_ms", media.DurationMs()),
		zap.Float64("fps", media.FPS()),
	)

	return r, nil
}

// Input returns the absolute input path.
func (r *Request) Input() string {
	return r.input
}

// Media returns the inspected duration and frame rate.
func (r *Request) Media() MediaInfo {
	return r.media
}

// ResolveOffset converts a timecode spec to seconds for this input. Offsets
// past the end of the media resolve to the offset of "99%".
func (r *Request) ResolveOffset(spec string) (float64, error) {
	return timecode.Resolve(spec, r.media)
}

// Offset resolves the configured offset, 0 when none was set.
func (r *Request) Offset() (float64, error) {
	if strings.TrimSpace(r.cfg.Offset) == "" {
		return 0, nil
	}
	return r.ResolveOffset(r.cfg.Offset)
}

// Rate returns captures per second: 1/interval, or SingleCaptureRate.
func (r *Request) Rate() float64 {
	if r.cfg.HasInterval() {
		return 1 / r.cfg.Interval
	}
	return SingleCaptureRate
}

// ResolveOutput returns the configured output verbatim, or derives one next
// to the input: "<name>-%d.jpg" with an interval, "<name>-<offset>.jpg"
// otherwise, with the offset rendered exactly as it is passed to -ss.
func (r *Request) ResolveOutput(offset float64) string {
	if r.cfg.Output != "" {
		return r.cfg.Output
	}
	if r.cfg.HasInterval() {
		return derivedOutput(r.input, IndexPlaceholder)
	}
	return derivedOutput(r.input, timeutil.FormatOffset(offset))
}

// Resolve derives the offset, rate, output and ffmpeg command.
func (r *Request) Resolve() (*ResolvedCapture, error) {
	offset, err := r.Offset()
	if err != nil {
		return nil, err
	}

	output := r.ResolveOutput(offset)

	builder := screenshot.NewScreenshotBuilder(r.input, output).
		SetBinary(r.cfg.FFmpegBinary).
		SetOffset(offset)

	line, err := builder.DryRun()
	if err != nil {
		return nil, err
	}

	return &ResolvedCapture{
		Offset:      offset,
		Rate:        r.Rate(),
		Output:      output,
		Command:     builder,
		CommandLine: line,
	}, nil
}

// DryRun resolves the request and returns the ffmpeg command line without
// running it.
func (r *Request) DryRun() (string, error) {
	resolved, err := r.Resolve()
	if err != nil {
		return "", err
	}
	return resolved.CommandLine, nil
}

// Capture runs ffmpeg and returns the files matching the output pattern.
//
// The call blocks until ffmpeg exits; only ctx bounds it. Unless strict mode
// is enabled an ffmpeg failure is logged and the matching files (possibly
// none) are still returned. Files are not checked for validity.
//
// If ctx is cancelled or times out while ffmpeg runs, Capture returns an
// error wrapping ctx.Err() and does not collect files, since a killed ffmpeg
// may leave a partial image behind.
func (r *Request) Capture(ctx context.Context) ([]string, error) {
	resolved, err := r.Resolve()
	if err != nil {
		return nil, err
	}

	if r.cfg.Limit > 0 {
		// TODO: distribute Limit frames evenly over the duration instead of ignoring it.
		r.logger.Warn("frame limit is not applied", zap.Int("limit", r.cfg.Limit))
	}

	cmd := resolved.Command

	if r.cfg.Output != "" && r.cfg.HasInterval() && !HasIndexPlaceholder(r.cfg.Output) {
		r.logger.Warn("output has no index placeholder, frames will overwrite each other",
			zap.String("output", r.cfg.Output), zap.Float64("interval", r.cfg.Interval))
	}

	r.logger.Info("running ffmpeg",
		zap.String("task", string(cmd.GetTaskType())),
		zap.String("input", cmd.GetInputPath()),
		zap.Float64("offset", resolved.Offset),
		zap.String("offset_timecode", timeutil.FormatSeconds(resolved.Offset)),
		zap.Float64("rate", resolved.Rate),
		zap.String("pattern", cmd.GetOutputPath()),
		zap.String("command", resolved.CommandLine),
	)

	output, runErr := command.Execute(ctx, r.runner, cmd)

	fields := []zap.Field{zap.ByteString("output", output)}
	if stats, ok := ffmpeg.ParseStats(output); ok {
		fields = append(fields,
			zap.Int64("frames", stats.Frame),
			zap.Float64("fps", stats.FPS),
			zap.String("size", stats.Size),
			zap.String("time", stats.Time),
			zap.String("bitrate", stats.Bitrate),
			zap.Float64("speed", stats.Speed),
		)
	}
	r.logger.Debug("ffmpeg finished", fields...)

	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, fmt.Errorf("capture cancelled: %w", ctxErr)
	}

	if runErr != nil {
		if r.cfg.StrictMode {
			return nil, &ExecutionError{
				Binary: cmd.Binary(),
				Args:   cmd.BuildArgs(),
				Output: output,
				Err:    runErr,
			}
		}
		r.logger.Warn("ffmpeg reported an error, collecting output anyway", zap.Error(runErr))
	}

	pattern := cmd.GetOutputPath()
	files, err := collectOutputs(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to match output pattern %s: %w", pattern, err)
	}

	r.logger.Info("capture finished", zap.String("pattern", pattern), zap.Int("files", len(files)))

	return files, nil
}
