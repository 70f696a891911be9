package compressor

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ImageExtensions are the raster formats the compressors handle.
func ImageExtensions() []string {
	return []string{".png", ".jpg", ".jpeg"}
}

// DiscoverImages walks the given roots and returns the compressible image
// files, sorted. Hidden directories are skipped; generated .webp siblings
// are never candidates.
func DiscoverImages(ctx context.Context, roots []string) ([]string, error) {
	extensions := ImageExtensions()

	seen := make(map[string]struct{})
	var images []string

	for _, root := range roots {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("image discovery cancelled: %w", ctx.Err())
		default:
		}

		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", root, err)
		}

		if !info.IsDir() {
			if hasExtension(root, extensions) {
				if _, ok := seen[root]; !ok {
					seen[root] = struct{}{}
					images = append(images, root)
				}
			}
			continue
		}

		err = filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			if walkErr != nil {
				if os.IsPermission(walkErr) {
					return nil
				}
				return walkErr
			}

			if entry.IsDir() {
				if path != root && strings.HasPrefix(entry.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}

			if hasExtension(path, extensions) {
				if _, ok := seen[path]; !ok {
					seen[path] = struct{}{}
					images = append(images, path)
				}
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", root, err)
		}
	}

	sort.Strings(images)
	return images, nil
}

func hasExtension(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}
	return false
}
