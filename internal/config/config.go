// Package config provides configuration types and defaults for trackdown.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	domain "github.com/zjrosen/trackdown/internal/tracker/domain"
)

// UserConfig identifies the person recorded as the actor on logged
// changes.
type UserConfig struct {
	Name  string `mapstructure:"name"`
	Email string `mapstructure:"email"`
}

// Config holds all configuration options for trackdown.
type Config struct {
	User UserConfig `mapstructure:"user"`

	// Dir overrides tracker-directory discovery when set.
	Dir string `mapstructure:"dir"`
}

// Defaults returns a Config with the user identity guessed from the host
// environment: the login name, and login@hostname for the email. Both are
// meant to be overridden in the config file.
func Defaults() Config {
	login := os.Getenv("USER")
	if login == "" {
		login = "anonymous"
	}
	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "localhost"
	}
	return Config{
		User: UserConfig{
			Name:  login,
			Email: login + "@" + host,
		},
	}
}

// Validate checks the configuration for errors.
func (c Config) Validate() error {
	if strings.TrimSpace(c.User.Name) == "" {
		return fmt.Errorf("user.name is required")
	}
	if strings.TrimSpace(c.User.Email) == "" {
		return fmt.Errorf("user.email is required")
	}
	return nil
}

// Identity maps the configured user onto the domain identity used as the
// actor for logged actions.
func (c Config) Identity() domain.Config {
	return domain.Config{Name: c.User.Name, Email: c.User.Email}
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	defaults := Defaults()
	return `# Trackdown Configuration

# Identity recorded on issue and release changelogs.
user:
  name: ` + defaults.User.Name + `
  email: ` + defaults.User.Email + `

# Project directory override (default: walk upward from the working
# directory looking for a .trackdown directory)
# dir: /path/to/project
`
}

// WriteDefaultConfig creates a config file at the given path with default
// settings and comments. Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
