package compressor_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/yaklabco/mdimg/pkg/compressor"
)

func mkFiles(t *testing.T, root string, names ...string) {
	t.Helper()

	for _, name := range names {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
}

func TestDiscoverImages(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	mkFiles(t, dir,
		"assets/a.png",
		"assets/b.jpg",
		"assets/c.jpeg",
		"assets/c.webp",
		"assets/d.gif",
		"docs/img/e.PNG",
		".cache/f.png",
		"readme.md",
	)

	images, err := compressor.DiscoverImages(context.Background(), []string{dir})
	if err != nil {
		t.Fatalf("DiscoverImages() error = %v", err)
	}

	want := map[string]bool{"a.png": true, "b.jpg": true, "c.jpeg": true, "e.PNG": true}
	if len(images) != len(want) {
		t.Fatalf("DiscoverImages() = %v, want %d images", images, len(want))
	}
	for _, img := range images {
		if !want[filepath.Base(img)] {
			t.Errorf("unexpected image %q", img)
		}
	}

	for i := 1; i < len(images); i++ {
		if images[i] < images[i-1] {
			t.Errorf("images not sorted: %v", images)
		}
	}
}

func TestDiscoverImages_ExplicitFileAndDedup(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	mkFiles(t, dir, "a.png")
	path := filepath.Join(dir, "a.png")

	images, err := compressor.DiscoverImages(context.Background(), []string{path, dir})
	if err != nil {
		t.Fatalf("DiscoverImages() error = %v", err)
	}
	if len(images) != 1 {
		t.Errorf("DiscoverImages() = %v, want deduplicated single entry", images)
	}
}

func TestDiscoverImages_MissingRoot(t *testing.T) {
	t.Parallel()

	_, err := compressor.DiscoverImages(context.Background(),
		[]string{filepath.Join(t.TempDir(), "ghost")})
	if err == nil {
		t.Error("DiscoverImages() error = nil, want stat error")
	}
}
