package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	// Ctrl+C and SIGTERM cancel the running ffmpeg/ffprobe process
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) || ctx.Err() != nil {
			fmt.Fprintln(os.Stderr, "\n⚠️  Capture cancelled by user")
			stop()
			os.Exit(130) // Standard exit code for SIGINT
		}
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "framegrab",
		Short: "Capture still frames from video files with ffmpeg",
		Long: `framegrab grabs JPEG screenshots from a video at a given offset.

Offsets are seconds (37, 12.5s), frames (250f) or a percentage of the
duration (10%). Offsets past the end of the video land at 99%.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newCaptureCmd())
	root.AddCommand(newProbeCmd())
	root.AddCommand(newConfigCmd())

	return root
}
