// Package cli provides the Cobra command structure for mdimg.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/mdimg/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root mdimg command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "mdimg",
		Short: "Optimize image references in Markdown documentation",
		Long: `mdimg maintains the images of a Markdown documentation tree.

It rewrites image references for lazy loading, WebP fallback, and responsive
styling, and drives external compressors (pngquant, jpegoptim, cwebp) to
shrink the image files themselves. Rewrites are safe by default: dry-run
mode, sidecar backups, and atomic writes.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Subcommands.
	rootCmd.AddCommand(newOptimizeCommand())
	rootCmd.AddCommand(newCompressCommand())
	rootCmd.AddCommand(newReportCommand())
	rootCmd.AddCommand(newRestoreCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
