package runner

import "github.com/yaklabco/mdimg/pkg/optimize"

// FileOutcome pairs a processed path with its pipeline result or error.
type FileOutcome struct {
	// Path is the file that was processed.
	Path string

	// Result is the pipeline result, nil when Error is set.
	Result *optimize.PipelineResult

	// Error is set when the file could not be processed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files successfully processed.
	FilesProcessed int

	// FilesSkipped counts files left alone (opt-out, concurrent change).
	FilesSkipped int

	// FilesErrored counts files that failed to process.
	FilesErrored int

	// FilesModified counts files written to disk.
	FilesModified int

	// FilesWithImages counts documents containing at least one
	// rewritable image reference.
	FilesWithImages int

	// ChangesPending counts documents that need rewriting but were not
	// written (dry-run or check mode).
	ChangesPending int

	// ReferencesFound is the total number of image references scanned.
	ReferencesFound int

	// ReferencesOptimized is the total number of references rewritten.
	ReferencesOptimized int

	// BackupsCreated counts sidecar backups written.
	BackupsCreated int
}

// Result is the overall outcome of a run.
type Result struct {
	// Files holds per-file outcomes in deterministic (path) order.
	Files []FileOutcome

	// Stats holds the aggregate counters for the run.
	Stats Stats
}

// HasErrors reports whether any file failed to process.
func (r *Result) HasErrors() bool {
	return r != nil && r.Stats.FilesErrored > 0
}

// HasPendingChanges reports whether any document still needs rewriting.
// Used by check mode to drive the exit code.
func (r *Result) HasPendingChanges() bool {
	return r != nil && r.Stats.ChangesPending > 0
}

// accumulate folds one file outcome into the aggregate result.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	pr := outcome.Result
	if pr == nil {
		return
	}

	r.Stats.FilesProcessed++

	if pr.Skipped {
		r.Stats.FilesSkipped++
	}
	if pr.Written {
		r.Stats.FilesModified++
	}
	if pr.BackupCreated {
		r.Stats.BackupsCreated++
	}

	doc := pr.Document
	if doc == nil {
		return
	}

	r.Stats.ReferencesFound += doc.References
	r.Stats.ReferencesOptimized += doc.Optimized
	if doc.References > 0 {
		r.Stats.FilesWithImages++
	}
	if doc.Changed && !pr.Written && !pr.Skipped {
		r.Stats.ChangesPending++
	}
}
