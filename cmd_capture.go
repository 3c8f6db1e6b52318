package main

import (
	"context"
	"fmt"

	"framegrab/capture"
	"framegrab/config"
	"framegrab/ffprobe"
	"framegrab/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newInspector is replaced in tests.
var newInspector = func(binary string) capture.Inspector {
	return ffprobe.NewProber(binary)
}

func newCaptureCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "capture [input...]",
		Short: "Capture frames from one or more videos",
		Long: `Capture runs ffmpeg once per input and prints the files it produced.

Without --output the image is written next to the input as
<name>-<offset>.jpg, or <name>-%d.jpg when --interval is set.`,
		RunE: runCaptureCommand,
	}
	config.RegisterFlags(cmd.Flags())
	return cmd
}

func runCaptureCommand(cmd *cobra.Command, args []string) error {
	// CLI flags > environment > config file > defaults
	cfg, err := config.LoadConfig(cmd.Flags())
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	inputs := args
	if len(inputs) == 0 {
		inputs = []string{cfg.Input}
	}
	if len(inputs) > 1 && cfg.Output != "" {
		return fmt.Errorf("--%s cannot be combined with multiple inputs", config.FlagOutput)
	}

	// Tool binaries, timeout and log level only matter to the CLI, so they
	// are checked here rather than by capture.New.
	configs := make([]*config.Config, len(inputs))
	for i, input := range inputs {
		configs[i] = cfg.Copy()
		configs[i].Input = input
		if err := configs[i].Validate(); err != nil {
			return err
		}
	}

	logger, err := logging.New(cfg.LogLevel, cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := cmd.Context()
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	inspector := newInspector(cfg.FFprobeBinary)

	for _, inputCfg := range configs {
		req, err := capture.New(ctx, inputCfg, inspector, capture.WithLogger(logger))
		if err != nil {
			return err
		}

		if cfg.DryRun {
			line, err := req.DryRun()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
			continue
		}

		files, err := req.Capture(ctx)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			logger.Warn("no frames were written", zap.String("input", req.Input()))
		}
		for _, file := range files {
			fmt.Fprintln(cmd.OutOrStdout(), file)
		}
	}

	return nil
}
