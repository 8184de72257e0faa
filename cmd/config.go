package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/trackdown/internal/config"
	"github.com/zjrosen/trackdown/internal/paths"
)

var configInit bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved configuration",
	RunE:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&configInit, "init", false, "write a commented default config file")
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	path, err := paths.UserConfigPath()
	if err != nil {
		return err
	}

	if configInit {
		if err := config.WriteDefaultConfig(path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote default config to %s\n", path)
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Config file: %s\n", path)
	fmt.Fprintf(cmd.OutOrStdout(), "User:        %s\n", cfg.Identity().User())
	if cfg.Dir != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Project dir: %s\n", cfg.Dir)
	}
	return nil
}
