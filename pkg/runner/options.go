// Package runner provides multi-document orchestration: discovery of
// markdown files and a worker pool that feeds them through the optimize
// pipeline.
package runner

import "github.com/yaklabco/mdimg/pkg/config"

// Options controls a multi-document run.
type Options struct {
	// Paths are the user-specified files or directories to process.
	// Empty defaults to the current working directory.
	Paths []string

	// WorkingDir resolves relative Paths. Empty means the process
	// working directory.
	WorkingDir string

	// Extensions is the set of file extensions (lowercase, leading dot)
	// treated as markdown documents.
	Extensions []string

	// ExcludeGlobs are glob patterns used to skip files or directories.
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs is the maximum number of concurrent workers.
	// Zero or negative means one worker per CPU.
	Jobs int

	// Config is the resolved configuration for this run.
	Config *config.Config
}

// DefaultExtensions returns the default markdown file extensions.
func DefaultExtensions() []string {
	return []string{".md", ".markdown", ".mdx"}
}

func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
