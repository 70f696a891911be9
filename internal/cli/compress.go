package cli

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdimg/internal/logging"
	"github.com/yaklabco/mdimg/pkg/compressor"
)

type compressFlags struct {
	quality int
	noWebP  bool
	dryRun  bool
	jobs    int
}

func newCompressCommand() *cobra.Command {
	flags := &compressFlags{}

	cmd := &cobra.Command{
		Use:   "compress [paths...]",
		Short: "Compress image files with external tools",
		Long: `Compress PNG and JPEG files in place using pngquant and jpegoptim, and
generate .webp siblings with cwebp. Tools missing from PATH are skipped per
file with a warning.

Examples:
  mdimg compress assets/          # Compress all images under assets/
  mdimg compress --quality 70     # More aggressive compression
  mdimg compress --dry-run        # Show the commands without running them`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompress(cmd, args, flags)
		},
	}

	cmd.Flags().IntVar(&flags.quality, "quality", 0, "target quality 1-100 (default from config)")
	cmd.Flags().BoolVar(&flags.noWebP, "no-webp", false, "do not generate .webp siblings")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "print commands without executing them")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 4, "number of parallel compressions")

	return cmd
}

func runCompress(cmd *cobra.Command, args []string, flags *compressFlags) error {
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

	quality := cfg.Compression.Quality
	if cmd.Flags().Changed("quality") {
		quality = flags.quality
	}

	generateWebP := cfg.Compression.GenerateWebP
	if flags.noWebP {
		generateWebP = false
	}

	roots := args
	if len(roots) == 0 {
		roots = []string{workDir}
	}

	images, err := compressor.DiscoverImages(ctx, roots)
	if err != nil {
		return fmt.Errorf("discover images: %w", err)
	}

	if len(images) == 0 {
		logger.Info("no images found")
		return nil
	}

	comp := compressor.New(compressor.Options{
		Quality:      quality,
		GenerateWebP: generateWebP,
		DryRun:       flags.dryRun,
	})

	logger.Info("compressing images",
		logging.FieldFiles, len(images),
		logging.FieldQuality, quality,
	)

	jobs := flags.jobs
	if jobs <= 0 {
		jobs = 1
	}
	if jobs > len(images) {
		jobs = len(images)
	}

	workCh := make(chan string)
	resultCh := make(chan compressor.Result)

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range workCh {
				result, err := comp.CompressFile(ctx, path)
				if err != nil {
					logger.Error("compression failed",
						logging.FieldImage, path,
						logging.FieldError, err,
					)
					continue
				}
				select {
				case <-ctx.Done():
					return
				case resultCh <- result:
				}
			}
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range images {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	var compressed int
	var saved int64
	for result := range resultCh {
		switch {
		case result.Skipped:
			logger.Warn("skipped",
				logging.FieldImage, result.Path,
				"reason", result.SkipReason,
			)
		case flags.dryRun:
			for _, command := range result.Commands {
				fmt.Fprintln(cmd.OutOrStdout(), command)
			}
		default:
			compressed++
			saved += result.Saved()
			logger.Debug("compressed",
				logging.FieldImage, result.Path,
				logging.FieldTool, result.Tool,
				logging.FieldBytesSaved, result.Saved(),
			)
		}
	}

	if !flags.dryRun {
		logger.Info("compression complete",
			logging.FieldFilesProcessed, compressed,
			logging.FieldBytesSaved, saved,
		)
	}

	return ctx.Err()
}
