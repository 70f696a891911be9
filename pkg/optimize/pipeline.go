package optimize

import (
	"context"
	"fmt"

	"github.com/yaklabco/mdimg/pkg/config"
	"github.com/yaklabco/mdimg/pkg/edit"
	"github.com/yaklabco/mdimg/pkg/fsutil"
)

// PipelineOptions controls how processed documents reach disk.
type PipelineOptions struct {
	// DryRun generates diffs instead of writing files.
	DryRun bool

	// Check records that changes are needed without writing, for CI.
	Check bool

	// Backup configures sidecar backups before writing.
	Backup fsutil.BackupConfig
}

// PipelineOptionsFromConfig maps the resolved configuration onto pipeline
// options.
func PipelineOptionsFromConfig(cfg *config.Config) PipelineOptions {
	return PipelineOptions{
		DryRun: cfg.DryRun,
		Check:  cfg.Check,
		Backup: fsutil.BackupConfig{
			Enabled: cfg.BackupsEnabled(),
			Mode:    fsutil.BackupMode(cfg.Backups.Mode),
		},
	}
}

// PipelineResult is the outcome of running one file through the pipeline.
type PipelineResult struct {
	// Document is the in-memory processing result. Nil only on error.
	Document *DocumentResult

	// Path is the processed file path.
	Path string

	// OriginalInfo is the file snapshot taken before processing.
	OriginalInfo *fsutil.FileInfo

	// Diff is the unified diff in dry-run mode, nil otherwise.
	Diff *edit.Diff

	// Skipped is true when the file was left alone; SkipReason says why.
	Skipped    bool
	SkipReason string

	// BackupCreated is true when a sidecar backup was written.
	BackupCreated bool

	// Written is true when the rewritten document reached disk.
	Written bool
}

// Summary returns a short human-readable state for reporting.
func (pr *PipelineResult) Summary() string {
	switch {
	case pr.Skipped:
		return "skipped: " + pr.SkipReason
	case pr.Written && pr.BackupCreated:
		return "optimized (backup created)"
	case pr.Written:
		return "optimized"
	case pr.Document != nil && pr.Document.Changed:
		return "changes pending"
	default:
		return "ok"
	}
}

// Pipeline runs documents through the engine and writes results safely.
type Pipeline struct {
	Engine *Engine
}

// NewPipeline creates a pipeline around the given engine.
func NewPipeline(engine *Engine) *Pipeline {
	return &Pipeline{Engine: engine}
}

// ProcessFile reads path, rewrites its image references, and, unless running
// in dry-run or check mode, writes the result back atomically. Before
// writing it verifies the file was not modified externally and creates a
// sidecar backup when configured.
func (p *Pipeline) ProcessFile(
	ctx context.Context,
	path string,
	cfg *config.Config,
	opts PipelineOptions,
) (*PipelineResult, error) {
	result := &PipelineResult{Path: path}

	content, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, err
	}
	result.OriginalInfo = info

	doc, err := p.Engine.ProcessDocument(ctx, path, content, cfg)
	if err != nil {
		return nil, fmt.Errorf("process %s: %w", path, err)
	}
	result.Document = doc

	if doc.OptedOut {
		result.Skipped = true
		result.SkipReason = "opted out via frontmatter"
		return result, nil
	}

	if !doc.Changed {
		return result, nil
	}

	if opts.DryRun {
		result.Diff = edit.GenerateDiff(path, string(content), doc.Content)
		return result, nil
	}

	if opts.Check {
		return result, nil
	}

	modified, err := fsutil.CheckModified(ctx, info)
	if err != nil {
		return nil, fmt.Errorf("check modified: %w", err)
	}
	if modified {
		result.Skipped = true
		result.SkipReason = "file modified during processing"
		return result, nil
	}

	created, err := fsutil.CreateBackup(ctx, path, opts.Backup)
	if err != nil {
		return nil, fmt.Errorf("create backup: %w", err)
	}
	result.BackupCreated = created

	if err := fsutil.WriteAtomic(ctx, path, []byte(doc.Content), info.Mode); err != nil {
		return nil, fmt.Errorf("write %s: %w", path, err)
	}
	result.Written = true

	return result, nil
}
