package config

// minimalTemplate is the config written by `mdimg init`.
const minimalTemplate = `# mdimg configuration
# See https://github.com/yaklabco/mdimg for all options.

# Rewrite rules.
lazy_loading: true
optimize_alt_text: true
webp: true
dimensions: false

# Glob patterns to skip.
ignore:
  - "node_modules/**"
  - "vendor/**"

# Sidecar backups (<file>.mdimg.bak) before rewriting.
backups:
  enabled: true
  mode: sidecar

# External compressor settings for "mdimg compress".
compression:
  quality: 85
  generate_webp: true
`

// GenerateTemplate returns the starter configuration file content.
func GenerateTemplate() []byte {
	return []byte(minimalTemplate)
}
