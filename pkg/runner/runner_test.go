package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yaklabco/mdimg/pkg/config"
	"github.com/yaklabco/mdimg/pkg/optimize"
	"github.com/yaklabco/mdimg/pkg/runner"
)

func newRunner() *runner.Runner {
	return runner.New(optimize.NewPipeline(optimize.NewEngine()))
}

func TestRun_ProcessesFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	mkTree(t, dir, map[string]string{
		"a.md": "![x](./assets/x.png)\n",
		"b.md": "plain prose\n",
		"c.md": "![y](images/y.png)\n",
	})

	cfg := config.NewConfig()
	result, err := newRunner().Run(context.Background(), runner.Options{
		Paths:      []string{dir},
		WorkingDir: dir,
		Config:     cfg,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.Stats.FilesDiscovered != 3 {
		t.Errorf("FilesDiscovered = %d, want 3", result.Stats.FilesDiscovered)
	}
	if result.Stats.FilesProcessed != 3 {
		t.Errorf("FilesProcessed = %d, want 3", result.Stats.FilesProcessed)
	}
	if result.Stats.FilesModified != 1 {
		t.Errorf("FilesModified = %d, want 1", result.Stats.FilesModified)
	}
	if result.Stats.FilesWithImages != 2 {
		t.Errorf("FilesWithImages = %d, want 2", result.Stats.FilesWithImages)
	}
	if result.Stats.ReferencesOptimized != 1 {
		t.Errorf("ReferencesOptimized = %d, want 1", result.Stats.ReferencesOptimized)
	}
	if result.HasErrors() {
		t.Error("HasErrors() = true, want false")
	}

	got, err := os.ReadFile(filepath.Join(dir, "a.md"))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.Contains(string(got), `srcset="./assets/x.webp"`) {
		t.Errorf("a.md not rewritten:\n%s", got)
	}
}

func TestRun_DeterministicOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	files := map[string]string{}
	for _, name := range []string{"e.md", "a.md", "c.md", "b.md", "d.md"} {
		files[name] = "![x](./assets/x.png)\n"
	}
	mkTree(t, dir, files)

	cfg := config.NewConfig()
	cfg.DryRun = true

	result, err := newRunner().Run(context.Background(), runner.Options{
		Paths:      []string{dir},
		WorkingDir: dir,
		Config:     cfg,
		Jobs:       4,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(result.Files) != 5 {
		t.Fatalf("Files = %d, want 5", len(result.Files))
	}
	for i := 1; i < len(result.Files); i++ {
		if result.Files[i].Path < result.Files[i-1].Path {
			t.Errorf("outcomes not in path order: %v then %v",
				result.Files[i-1].Path, result.Files[i].Path)
		}
	}
}

func TestRun_CheckModeCountsPendingChanges(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	original := "![x](./assets/x.png)\n"
	mkTree(t, dir, map[string]string{"a.md": original})

	cfg := config.NewConfig()
	cfg.Check = true

	result, err := newRunner().Run(context.Background(), runner.Options{
		Paths:      []string{dir},
		WorkingDir: dir,
		Config:     cfg,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if !result.HasPendingChanges() {
		t.Error("HasPendingChanges() = false, want true")
	}
	if result.Stats.FilesModified != 0 {
		t.Errorf("FilesModified = %d, want 0 in check mode", result.Stats.FilesModified)
	}

	got, _ := os.ReadFile(filepath.Join(dir, "a.md"))
	if string(got) != original {
		t.Errorf("check mode modified a file: %q", got)
	}
}

func TestRun_EmptyDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	result, err := newRunner().Run(context.Background(), runner.Options{
		Paths:      []string{dir},
		WorkingDir: dir,
		Config:     config.NewConfig(),
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if result.Stats.FilesDiscovered != 0 || len(result.Files) != 0 {
		t.Errorf("expected empty result, got %+v", result.Stats)
	}
}

func TestRun_SkippedOptOutCounted(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	mkTree(t, dir, map[string]string{
		"opted-out.md": "---\noptimize_images: false\n---\n\n![x](./assets/x.png)\n",
	})

	result, err := newRunner().Run(context.Background(), runner.Options{
		Paths:      []string{dir},
		WorkingDir: dir,
		Config:     config.NewConfig(),
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.Stats.FilesSkipped != 1 {
		t.Errorf("FilesSkipped = %d, want 1", result.Stats.FilesSkipped)
	}
	if result.Stats.FilesModified != 0 {
		t.Errorf("FilesModified = %d, want 0", result.Stats.FilesModified)
	}
}

func TestResult_Predicates(t *testing.T) {
	t.Parallel()

	var nilResult *runner.Result
	if nilResult.HasErrors() {
		t.Error("nil Result.HasErrors() = true")
	}
	if nilResult.HasPendingChanges() {
		t.Error("nil Result.HasPendingChanges() = true")
	}

	errored := &runner.Result{Stats: runner.Stats{FilesErrored: 2}}
	if !errored.HasErrors() {
		t.Error("HasErrors() = false with errored files")
	}

	pending := &runner.Result{Stats: runner.Stats{ChangesPending: 1}}
	if !pending.HasPendingChanges() {
		t.Error("HasPendingChanges() = false with pending changes")
	}
}
