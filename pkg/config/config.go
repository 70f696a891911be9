// Package config defines core configuration types for mdimg.
// These are pure data structures; loading and merging live in
// internal/configloader.
package config

import "github.com/yaklabco/mdimg/pkg/imgref"

// BackupsConfig controls backup behavior when rewriting files.
type BackupsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Mode    string `yaml:"mode"` // "sidecar" or "none"
}

// CompressionConfig controls the external-compressor orchestration.
type CompressionConfig struct {
	// Quality is the target quality (1-100) passed to the external tools.
	Quality int `yaml:"quality"`

	// GenerateWebP produces .webp siblings for compressed images.
	GenerateWebP bool `yaml:"generate_webp"`
}

// OutputFormat specifies the output format for run results.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// Config is the root configuration for mdimg.
type Config struct {
	// LazyLoading inserts loading="lazy" attributes on rewritten images.
	LazyLoading bool `yaml:"lazy_loading"`

	// OptimizeAltText cleans up alt text on rewritten markdown images.
	OptimizeAltText bool `yaml:"optimize_alt_text"`

	// WebP rewrites markdown asset images into <picture> blocks with a
	// WebP fallback source.
	WebP bool `yaml:"webp"`

	// Dimensions emits width/height attributes read from local image
	// headers. Off by default since it touches image files on disk.
	Dimensions bool `yaml:"dimensions"`

	// Ignore contains glob patterns for files and directories to skip.
	Ignore []string `yaml:"ignore"`

	// Backups configures sidecar backups for rewritten documents.
	Backups BackupsConfig `yaml:"backups"`

	// Compression configures the external image compressors.
	Compression CompressionConfig `yaml:"compression"`

	// CLI-level options, not persisted to config files.

	// DryRun previews rewrites without writing files.
	DryRun bool `yaml:"-"`

	// Check reports whether rewrites are needed without writing, for CI.
	Check bool `yaml:"-"`

	// Format specifies the output format.
	Format OutputFormat `yaml:"-"`

	// Jobs is the number of parallel workers (0 = auto).
	Jobs int `yaml:"-"`

	// NoBackups disables backup creation regardless of Backups.Enabled.
	NoBackups bool `yaml:"-"`
}

// NewConfig returns a Config with defaults: all rewrite rules enabled except
// dimension attribution, sidecar backups on, quality 85.
func NewConfig() *Config {
	return &Config{
		LazyLoading:     true,
		OptimizeAltText: true,
		WebP:            true,
		Dimensions:      false,
		Backups: BackupsConfig{
			Enabled: true,
			Mode:    "sidecar",
		},
		Compression: CompressionConfig{
			Quality:      85,
			GenerateWebP: true,
		},
		Format: FormatText,
	}
}

// RewriteOptions maps the config onto the rewrite engine's option set.
func (c *Config) RewriteOptions() imgref.Options {
	return imgref.Options{
		LazyLoading:     c.LazyLoading,
		OptimizeAltText: c.OptimizeAltText,
		WebP:            c.WebP,
		Dimensions:      c.Dimensions,
	}
}

// BackupsEnabled resolves the effective backup setting, honoring the
// CLI-level override.
func (c *Config) BackupsEnabled() bool {
	if c.NoBackups {
		return false
	}
	return c.Backups.Enabled
}
