package main

import (
	"fmt"

	"framegrab/config"

	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	var savePath string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Config resolves defaults, the config file, FRAMEGRAB_* environment
variables and flags, then prints the result. With --save the result is
written as YAML.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(cmd.Flags())
			if err != nil {
				return fmt.Errorf("configuration error: %w", err)
			}

			cfg.PrintConfig(cmd.OutOrStdout())

			if savePath != "" {
				if err := config.SaveConfigFile(cfg, savePath); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "\n✓ Configuration saved to %s\n", savePath)
			}
			return nil
		},
	}
	config.RegisterFlags(cmd.Flags())
	cmd.Flags().StringVar(&savePath, "save", "", "Write the effective configuration to this YAML file")

	return cmd
}
