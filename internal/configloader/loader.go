package configloader

import (
	"context"
	"fmt"
	"os"

	"github.com/yaklabco/mdimg/pkg/config"
)

// LoadOptions controls configuration loading.
type LoadOptions struct {
	// WorkingDir is the directory the project config search starts from.
	// Empty means the process working directory.
	WorkingDir string

	// ExplicitPath is the --config flag value. When set, the project
	// config search is skipped.
	ExplicitPath string
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the merged configuration. CLI flags are overlaid by the
	// caller afterwards; they always win.
	Config *config.Config

	// Paths holds the discovered config file locations.
	Paths *ConfigPaths

	// LoadedFrom lists the files actually loaded, lowest precedence
	// first.
	LoadedFrom []string
}

// Load resolves the configuration by merging, lowest to highest precedence:
// defaults, user config, then the project or explicit config.
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, err
	}
	paths.Explicit = opts.ExplicitPath

	result := &LoadResult{
		Config: config.NewConfig(),
		Paths:  paths,
	}

	if paths.User != "" {
		if err := applyFile(result, paths.User); err != nil {
			return nil, fmt.Errorf("load user config: %w", err)
		}
	}

	projectPath := paths.Project
	if opts.ExplicitPath != "" {
		projectPath = opts.ExplicitPath
	}
	if projectPath != "" {
		if err := applyFile(result, projectPath); err != nil {
			return nil, fmt.Errorf("load project config: %w", err)
		}
	}

	return result, nil
}

// applyFile parses one config file and overlays it onto the result.
func applyFile(result *LoadResult, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	fc, err := config.ParseFile(data)
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	fc.ApplyTo(result.Config)
	result.LoadedFrom = append(result.LoadedFrom, path)
	return nil
}
