package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/trackdown/internal/config"
	"github.com/zjrosen/trackdown/internal/log"
	"github.com/zjrosen/trackdown/internal/paths"
	"github.com/zjrosen/trackdown/internal/tracker/application"
	"github.com/zjrosen/trackdown/internal/tracker/infrastructure"
)

var (
	cfg     config.Config
	dirFlag string
)

var rootCmd = &cobra.Command{
	Use:   "trackdown",
	Short: "Distributed, file-based issue tracker",
	Long: `Trackdown keeps a project's bug and feature backlog in a directory of
plain YAML files next to the code it tracks. No server, no daemon: the
issue database lives in version control and merges like source code.

Issues move through unstarted, in progress, paused and closed; releases
collect issues and can only ship once everything assigned to them is
closed. Every state change is recorded in an append-only changelog
attributed to the configured user.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&dirFlag, "dir", "",
		"project or tracker directory (default: walk upward for a .trackdown directory)")
}

// initConfig resolves configuration: code defaults, then the user config
// file, then TRACKDOWN_* environment variables.
func initConfig() {
	v := viper.New()
	defaults := config.Defaults()
	v.SetDefault("user.name", defaults.User.Name)
	v.SetDefault("user.email", defaults.User.Email)
	v.SetDefault("dir", "")

	if path, err := paths.UserConfigPath(); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err == nil {
			log.Debug(log.CatConfig, "Loaded config file", "path", path)
		} else {
			log.Debug(log.CatConfig, "No config file", "path", path)
		}
	}

	v.SetEnvPrefix("TRACKDOWN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.Unmarshal(&cfg); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to parse configuration", err)
		cfg = defaults
	}
}

// trackerDir resolves the tracker directory for this invocation: the
// --dir flag wins, then the configured dir, then upward discovery from
// the working directory.
func trackerDir() (string, error) {
	if dirFlag != "" {
		return paths.ResolveTrackerDir(dirFlag), nil
	}
	if cfg.Dir != "" {
		return paths.ResolveTrackerDir(cfg.Dir), nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolving working directory: %w", err)
	}
	return paths.FindTrackerDir(cwd)
}

// openService wires the YAML store and configured identity into an
// application service for the enclosing project.
func openService() (*application.Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	dir, err := trackerDir()
	if err != nil {
		return nil, err
	}
	store := infrastructure.NewYAMLStore(dir)
	return application.NewService(store, cfg.Identity()), nil
}
