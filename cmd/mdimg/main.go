// Package main is the entry point for the mdimg CLI.
package main

import (
	"context"
	"errors"
	"os"

	"github.com/yaklabco/mdimg/internal/cli"
	"github.com/yaklabco/mdimg/internal/logging"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)
	ctx := logging.WithLogger(context.Background(), logging.Default())

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		switch {
		case errors.Is(err, cli.ErrChangesNeeded):
			return cli.ExitChangesNeeded
		case errors.Is(err, cli.ErrFilesFailed):
			return cli.ExitFilesFailed
		default:
			logger := logging.Default()
			logger.Error("command failed", logging.FieldError, err)
			return cli.ExitInternalError
		}
	}

	return cli.ExitSuccess
}
