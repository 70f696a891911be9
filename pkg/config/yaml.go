package config

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// FileConfig mirrors Config with pointer fields so that a config file can set
// any subset of options. Nil fields leave the target untouched during merge.
type FileConfig struct {
	LazyLoading     *bool    `yaml:"lazy_loading"`
	OptimizeAltText *bool    `yaml:"optimize_alt_text"`
	WebP            *bool    `yaml:"webp"`
	Dimensions      *bool    `yaml:"dimensions"`
	Ignore          []string `yaml:"ignore"`

	Backups *struct {
		Enabled *bool   `yaml:"enabled"`
		Mode    *string `yaml:"mode"`
	} `yaml:"backups"`

	Compression *struct {
		Quality      *int  `yaml:"quality"`
		GenerateWebP *bool `yaml:"generate_webp"`
	} `yaml:"compression"`
}

// ParseFile parses a YAML configuration file body.
func ParseFile(data []byte) (*FileConfig, error) {
	fc := &FileConfig{}
	if err := yaml.Unmarshal(data, fc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return fc, nil
}

// ApplyTo overlays the file configuration onto cfg. Only explicitly set
// fields are applied; ignore patterns are appended, not replaced.
func (fc *FileConfig) ApplyTo(cfg *Config) {
	if fc == nil || cfg == nil {
		return
	}

	if fc.LazyLoading != nil {
		cfg.LazyLoading = *fc.LazyLoading
	}
	if fc.OptimizeAltText != nil {
		cfg.OptimizeAltText = *fc.OptimizeAltText
	}
	if fc.WebP != nil {
		cfg.WebP = *fc.WebP
	}
	if fc.Dimensions != nil {
		cfg.Dimensions = *fc.Dimensions
	}
	if len(fc.Ignore) > 0 {
		cfg.Ignore = append(cfg.Ignore, fc.Ignore...)
	}

	if fc.Backups != nil {
		if fc.Backups.Enabled != nil {
			cfg.Backups.Enabled = *fc.Backups.Enabled
		}
		if fc.Backups.Mode != nil {
			cfg.Backups.Mode = *fc.Backups.Mode
		}
	}

	if fc.Compression != nil {
		if fc.Compression.Quality != nil {
			cfg.Compression.Quality = *fc.Compression.Quality
		}
		if fc.Compression.GenerateWebP != nil {
			cfg.Compression.GenerateWebP = *fc.Compression.GenerateWebP
		}
	}
}

// ToYAML serializes the configuration to YAML.
func (c *Config) ToYAML() ([]byte, error) {
	if c == nil {
		return nil, nil
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}

	return buf.Bytes(), nil
}
