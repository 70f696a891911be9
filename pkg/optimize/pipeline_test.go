package optimize_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yaklabco/mdimg/pkg/config"
	"github.com/yaklabco/mdimg/pkg/fsutil"
	"github.com/yaklabco/mdimg/pkg/optimize"
)

func newPipeline() *optimize.Pipeline {
	return optimize.NewPipeline(optimize.NewEngine())
}

func writeDoc(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func defaultOpts() optimize.PipelineOptions {
	return optimize.PipelineOptionsFromConfig(config.NewConfig())
}

func TestProcessFile_WritesAndBacksUp(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeDoc(t, dir, "doc.md", "![x](./assets/x.png)\n")

	result, err := newPipeline().ProcessFile(context.Background(), path, config.NewConfig(), defaultOpts())
	if err != nil {
		t.Fatalf("ProcessFile() error = %v", err)
	}

	if !result.Written {
		t.Error("Written = false, want true")
	}
	if !result.BackupCreated {
		t.Error("BackupCreated = false, want true")
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.Contains(string(got), `srcset="./assets/x.webp"`) {
		t.Errorf("file on disk not rewritten:\n%s", got)
	}

	backup, err := os.ReadFile(path + fsutil.BackupSuffix)
	if err != nil {
		t.Fatalf("read backup: %v", err)
	}
	if string(backup) != "![x](./assets/x.png)\n" {
		t.Errorf("backup = %q, want original content", backup)
	}
}

func TestProcessFile_UnchangedDocumentNotWritten(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeDoc(t, dir, "doc.md", "no images here\n")

	result, err := newPipeline().ProcessFile(context.Background(), path, config.NewConfig(), defaultOpts())
	if err != nil {
		t.Fatalf("ProcessFile() error = %v", err)
	}

	if result.Written {
		t.Error("Written = true for unchanged document")
	}
	if fsutil.BackupExists(path, fsutil.BackupModeSidecar) {
		t.Error("backup created for unchanged document")
	}
}

func TestProcessFile_DryRun(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	original := "![x](./assets/x.png)\n"
	path := writeDoc(t, dir, "doc.md", original)

	opts := defaultOpts()
	opts.DryRun = true

	result, err := newPipeline().ProcessFile(context.Background(), path, config.NewConfig(), opts)
	if err != nil {
		t.Fatalf("ProcessFile() error = %v", err)
	}

	if result.Written {
		t.Error("Written = true in dry-run mode")
	}
	if result.Diff == nil {
		t.Fatal("Diff = nil, want a diff in dry-run mode")
	}
	if result.Diff.Additions == 0 {
		t.Error("Diff.Additions = 0, want > 0")
	}

	got, _ := os.ReadFile(path)
	if string(got) != original {
		t.Errorf("dry run modified the file: %q", got)
	}
}

func TestProcessFile_CheckMode(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	original := "![x](./assets/x.png)\n"
	path := writeDoc(t, dir, "doc.md", original)

	opts := defaultOpts()
	opts.Check = true

	result, err := newPipeline().ProcessFile(context.Background(), path, config.NewConfig(), opts)
	if err != nil {
		t.Fatalf("ProcessFile() error = %v", err)
	}

	if result.Written {
		t.Error("Written = true in check mode")
	}
	if result.Diff != nil {
		t.Error("Diff != nil in check mode")
	}
	if !result.Document.Changed {
		t.Error("Document.Changed = false, want true")
	}

	got, _ := os.ReadFile(path)
	if string(got) != original {
		t.Errorf("check mode modified the file: %q", got)
	}
}

func TestProcessFile_OptedOut(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	doc := "---\noptimize_images: false\n---\n\n![x](./assets/x.png)\n"
	path := writeDoc(t, dir, "doc.md", doc)

	result, err := newPipeline().ProcessFile(context.Background(), path, config.NewConfig(), defaultOpts())
	if err != nil {
		t.Fatalf("ProcessFile() error = %v", err)
	}

	if !result.Skipped {
		t.Error("Skipped = false, want true")
	}
	if result.SkipReason == "" {
		t.Error("SkipReason is empty")
	}
	if result.Written {
		t.Error("Written = true for opted-out document")
	}
}

func TestProcessFile_BackupsDisabled(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeDoc(t, dir, "doc.md", "![x](./assets/x.png)\n")

	cfg := config.NewConfig()
	cfg.NoBackups = true

	result, err := newPipeline().ProcessFile(context.Background(), path, cfg,
		optimize.PipelineOptionsFromConfig(cfg))
	if err != nil {
		t.Fatalf("ProcessFile() error = %v", err)
	}

	if !result.Written {
		t.Error("Written = false, want true")
	}
	if result.BackupCreated {
		t.Error("BackupCreated = true with backups disabled")
	}
	if fsutil.BackupExists(path, fsutil.BackupModeSidecar) {
		t.Error("backup file exists with backups disabled")
	}
}

func TestProcessFile_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := newPipeline().ProcessFile(context.Background(),
		filepath.Join(t.TempDir(), "ghost.md"), config.NewConfig(), defaultOpts())
	if err == nil {
		t.Error("ProcessFile() error = nil, want read error")
	}
}

func TestPipelineResult_Summary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		result optimize.PipelineResult
		want   string
	}{
		{
			name:   "skipped",
			result: optimize.PipelineResult{Skipped: true, SkipReason: "opted out via frontmatter"},
			want:   "skipped: opted out via frontmatter",
		},
		{
			name:   "written with backup",
			result: optimize.PipelineResult{Written: true, BackupCreated: true},
			want:   "optimized (backup created)",
		},
		{
			name:   "written without backup",
			result: optimize.PipelineResult{Written: true},
			want:   "optimized",
		},
		{
			name: "pending",
			result: optimize.PipelineResult{
				Document: &optimize.DocumentResult{Changed: true},
			},
			want: "changes pending",
		},
		{
			name:   "clean",
			result: optimize.PipelineResult{Document: &optimize.DocumentResult{}},
			want:   "ok",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.result.Summary(); got != tt.want {
				t.Errorf("Summary() = %q, want %q", got, tt.want)
			}
		})
	}
}
