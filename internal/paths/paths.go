// Package paths resolves trackdown's filesystem locations: the tracker
// directory of the enclosing project and the user's config file.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// TrackerDirName is the directory that marks a project root.
const TrackerDirName = ".trackdown"

// ResolveTrackerDir normalizes an explicitly supplied project or tracker
// directory to the tracker directory path. A path already ending in
// TrackerDirName is kept; anything else has TrackerDirName appended.
func ResolveTrackerDir(dir string) string {
	cleaned := filepath.Clean(dir)
	if filepath.Base(cleaned) == TrackerDirName {
		return cleaned
	}
	if cleaned == "." {
		return TrackerDirName
	}
	return filepath.Join(cleaned, TrackerDirName)
}

// FindTrackerDir walks upward from start looking for the nearest
// TrackerDirName directory and returns its path. It fails when no
// enclosing project exists.
func FindTrackerDir(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, TrackerDirName)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no %s directory found in %s or any parent", TrackerDirName, start)
		}
		dir = parent
	}
}

// UserConfigPath returns the location of the user's config file,
// ~/.config/trackdown/config.yaml.
func UserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".config", "trackdown", "config.yaml"), nil
}
