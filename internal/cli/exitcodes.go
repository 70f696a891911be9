package cli

import "github.com/yaklabco/mdimg/pkg/runner"

// Exit codes for mdimg.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitChangesNeeded indicates check mode found unoptimized references.
	ExitChangesNeeded = 1

	// ExitFilesFailed indicates some files could not be processed.
	ExitFilesFailed = 2

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70
)

// ExitCodeFromResult determines the exit code for an optimize run.
func ExitCodeFromResult(result *runner.Result, check bool) int {
	if result == nil {
		return ExitSuccess
	}

	if result.HasErrors() {
		return ExitFilesFailed
	}

	if check && result.HasPendingChanges() {
		return ExitChangesNeeded
	}

	return ExitSuccess
}
