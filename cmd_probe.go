package main

import (
	"fmt"

	"framegrab/config"
	"framegrab/internal/timeutil"

	"github.com/spf13/cobra"
)

func newProbeCmd() *cobra.Command {
	var binary string

	cmd := &cobra.Command{
		Use:   "probe <file>",
		Short: "Show the duration and frame rate used to resolve offsets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := newInspector(binary).Inspect(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			seconds := float64(info.DurationMs()) / 1000
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "File:       %s\n", args[0])
			fmt.Fprintf(out, "Duration:   %s (%d ms)\n", timeutil.FormatSeconds(seconds), info.DurationMs())
			if info.FPS() > 0 {
				fmt.Fprintf(out, "Frame rate: %.3f fps\n", info.FPS())
			} else {
				fmt.Fprintln(out, "Frame rate: unknown (frame offsets unavailable)")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&binary, config.FlagFFprobeBinary, config.DefaultConfig().FFprobeBinary, "ffprobe executable")

	return cmd
}
