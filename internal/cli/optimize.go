package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdimg/internal/configloader"
	"github.com/yaklabco/mdimg/internal/logging"
	"github.com/yaklabco/mdimg/pkg/config"
	"github.com/yaklabco/mdimg/pkg/optimize"
	"github.com/yaklabco/mdimg/pkg/reporter"
	"github.com/yaklabco/mdimg/pkg/runner"
)

// ErrChangesNeeded is returned by check mode when documents still need
// optimization. It drives the exit code without producing an error log.
var ErrChangesNeeded = errors.New("documents need optimization")

// ErrFilesFailed is returned when some files could not be processed.
var ErrFilesFailed = errors.New("some files failed to process")

type optimizeFlags struct {
	dryRun     bool
	check      bool
	noBackups  bool
	noLazy     bool
	noAltText  bool
	noWebP     bool
	dimensions bool
	ignore     []string
	jobs       int
	format     string
	verbose    bool
}

func newOptimizeCommand() *cobra.Command {
	flags := &optimizeFlags{}

	cmd := &cobra.Command{
		Use:   "optimize [paths...]",
		Short: "Rewrite image references in Markdown files",
		Long:  optimizeLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOptimize(cmd, args, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "show rewrites as diffs without applying them")
	cmd.Flags().BoolVar(&flags.check, "check", false, "exit non-zero if any document needs optimization")
	cmd.Flags().BoolVar(&flags.noBackups, "no-backups", false, "disable backup creation")
	cmd.Flags().BoolVar(&flags.noLazy, "no-lazy-loading", false, "do not insert loading=\"lazy\" attributes")
	cmd.Flags().BoolVar(&flags.noAltText, "no-alt-text", false, "do not optimize alt text")
	cmd.Flags().BoolVar(&flags.noWebP, "no-webp", false, "do not rewrite asset images to <picture> WebP blocks")
	cmd.Flags().BoolVar(&flags.dimensions, "dimensions", false, "emit width/height read from local image files")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "also list unchanged files")

	return cmd
}

const optimizeLongDescription = `Rewrite image references in Markdown files.

Markdown images under an assets/ directory become <picture> blocks with a
WebP source and the original image as fallback. Raw <img> tags gain lazy
loading and a responsive inline style. References inside code blocks are
never touched, and documents can opt out with "optimize_images: false" in
their frontmatter.

By default, rewrites all .md, .markdown, and .mdx files in the current
directory and subdirectories, creating a sidecar backup per modified file.

Examples:
  mdimg optimize                  # Optimize current directory
  mdimg optimize docs/            # Optimize docs directory
  mdimg optimize --dry-run        # Preview rewrites as diffs
  mdimg optimize --check          # CI mode: fail if rewrites are needed
  mdimg optimize --format json    # Machine-readable results`

func runOptimize(cmd *cobra.Command, args []string, flags *optimizeFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.FromContext(ctx)

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	cfg, err := loadConfig(ctx, cmd, workDir)
	if err != nil {
		return err
	}

	// CLI flags win over config files.
	applyOptimizeFlags(cmd, cfg, flags)

	logger.Debug("configuration resolved",
		logging.FieldDryRun, cfg.DryRun,
		logging.FieldCheck, cfg.Check,
		logging.FieldJobs, cfg.Jobs,
	)

	pipeline := optimize.NewPipeline(optimize.NewEngine())
	optimizeRunner := runner.New(pipeline)

	runOpts := runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		Extensions:   runner.DefaultExtensions(),
		ExcludeGlobs: cfg.Ignore,
		Jobs:         cfg.Jobs,
		Config:       cfg,
	}

	logger.Debug("starting optimize run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
	)

	result, err := optimizeRunner.Run(ctx, runOpts)
	if err != nil {
		return errors.Join(errors.New("optimize run failed"), err)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	rep, err := reporter.New(reporter.Options{
		Writer:     cmd.OutOrStdout(),
		Format:     cfg.Format,
		Color:      colorMode,
		WorkingDir: workDir,
		Verbose:    flags.verbose,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	switch ExitCodeFromResult(result, cfg.Check) {
	case ExitFilesFailed:
		return ErrFilesFailed
	case ExitChangesNeeded:
		return ErrChangesNeeded
	default:
		return nil
	}
}

// loadConfig resolves the configuration honoring the --config flag.
func loadConfig(ctx context.Context, cmd *cobra.Command, workDir string) (*config.Config, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
	})
	if err != nil {
		return nil, errors.Join(errors.New("failed to load configuration"), err)
	}

	if len(loadResult.LoadedFrom) > 0 {
		logging.Default().Debug("loaded configuration from",
			logging.FieldFiles, loadResult.LoadedFrom)
	}

	return loadResult.Config, nil
}

// applyOptimizeFlags overlays explicitly set CLI flags onto cfg.
func applyOptimizeFlags(cmd *cobra.Command, cfg *config.Config, flags *optimizeFlags) {
	cfg.DryRun = flags.dryRun
	cfg.Check = flags.check
	cfg.Format = config.OutputFormat(flags.format)

	if flags.noBackups {
		cfg.NoBackups = true
	}
	if flags.noLazy {
		cfg.LazyLoading = false
	}
	if flags.noAltText {
		cfg.OptimizeAltText = false
	}
	if flags.noWebP {
		cfg.WebP = false
	}
	if cmd.Flags().Changed("dimensions") {
		cfg.Dimensions = flags.dimensions
	}
	if cmd.Flags().Changed("jobs") {
		cfg.Jobs = flags.jobs
	}
	cfg.Ignore = append(cfg.Ignore, flags.ignore...)
}
