package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdimg/internal/logging"
	"github.com/yaklabco/mdimg/pkg/fsutil"
	"github.com/yaklabco/mdimg/pkg/runner"
)

type restoreFlags struct {
	keep bool
}

func newRestoreCommand() *cobra.Command {
	flags := &restoreFlags{}

	cmd := &cobra.Command{
		Use:   "restore [paths...]",
		Short: "Restore Markdown files from sidecar backups",
		Long: `Restore documents from the .mdimg.bak backups created by optimize.
Backups are removed after a successful restore unless --keep is given.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRestore(cmd, args, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.keep, "keep", false, "keep backup files after restoring")

	return cmd
}

func runRestore(cmd *cobra.Command, args []string, flags *restoreFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.FromContext(ctx)

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	files, err := runner.Discover(ctx, runner.Options{
		Paths:      args,
		WorkingDir: workDir,
		Extensions: runner.DefaultExtensions(),
	})
	if err != nil {
		return fmt.Errorf("discover files: %w", err)
	}

	restored := 0
	for _, path := range files {
		ok, err := fsutil.RestoreBackup(ctx, path, fsutil.BackupModeSidecar)
		if err != nil {
			logger.Error("restore failed", logging.FieldPath, path, logging.FieldError, err)
			continue
		}
		if !ok {
			continue
		}

		restored++
		logger.Info("restored", logging.FieldPath, path)

		if !flags.keep {
			if _, err := fsutil.RemoveBackup(path, fsutil.BackupModeSidecar); err != nil {
				logger.Warn("could not remove backup", logging.FieldPath, path, logging.FieldError, err)
			}
		}
	}

	if restored == 0 {
		logger.Info("no backups found")
	} else {
		logger.Info("restore complete", logging.FieldFilesProcessed, restored)
	}

	return nil
}
