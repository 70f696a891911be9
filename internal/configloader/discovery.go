// Package configloader resolves the mdimg configuration from standard
// locations: XDG user config and project-level files discovered by upward
// search, with an explicit --config path taking precedence.
package configloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// ConfigPaths represents discovered configuration file paths.
// Missing files are empty strings, not errors.
type ConfigPaths struct {
	// User is the user-level config (e.g. ~/.config/mdimg/config.yml).
	User string

	// Project is the project-level config found by upward search.
	Project string

	// Explicit is the path from the --config flag.
	Explicit string
}

// projectConfigFiles are the project config names searched for, in order of
// preference.
//
//nolint:gochecknoglobals // Read-only lookup table.
var projectConfigFiles = []string{
	".mdimg.yml",
	".mdimg.yaml",
	"mdimg.yml",
	"mdimg.yaml",
}

// userConfigFiles are the file names tried inside the user config directory.
//
//nolint:gochecknoglobals // Read-only lookup table.
var userConfigFiles = []string{"config.yml", "config.yaml"}

// vcsRootMarkers stop the upward project search.
//
//nolint:gochecknoglobals // Read-only lookup table.
var vcsRootMarkers = []string{".git", ".hg", ".svn"}

// DiscoverPaths finds configuration files in standard locations.
func DiscoverPaths(ctx context.Context, workDir string) (*ConfigPaths, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("discover config: %w", ctx.Err())
	default:
	}

	paths := &ConfigPaths{
		User: findUserConfig(),
	}

	project, err := findProjectConfig(workDir)
	if err != nil {
		return nil, err
	}
	paths.Project = project

	return paths, nil
}

// findUserConfig looks for $XDG_CONFIG_HOME/mdimg/config.{yml,yaml}.
func findUserConfig() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}

	for _, name := range userConfigFiles {
		candidate := filepath.Join(configDir, "mdimg", name)
		if fileExists(candidate) {
			return candidate
		}
	}
	return ""
}

// findProjectConfig searches upward from workDir for a project config,
// stopping at a VCS root or the filesystem root.
func findProjectConfig(workDir string) (string, error) {
	dir, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", workDir, err)
	}

	for {
		for _, name := range projectConfigFiles {
			candidate := filepath.Join(dir, name)
			if fileExists(candidate) {
				return candidate, nil
			}
		}

		if isVCSRoot(dir) {
			return "", nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func isVCSRoot(dir string) bool {
	for _, marker := range vcsRootMarkers {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			return true
		}
	}
	return false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
