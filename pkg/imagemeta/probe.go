// Package imagemeta reads pixel dimensions from image file headers.
// Only the header is decoded, never the full image.
package imagemeta

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	// Header decoders for the formats the optimizer encounters.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// Dimensions is the pixel size of an image.
type Dimensions struct {
	Width  int
	Height int
}

// Probe reads the dimensions of the image file at path.
func Probe(path string) (Dimensions, error) {
	f, err := os.Open(path)
	if err != nil {
		return Dimensions{}, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return Dimensions{}, fmt.Errorf("decode image header %s: %w", path, err)
	}

	return Dimensions{Width: cfg.Width, Height: cfg.Height}, nil
}

// DirProber resolves document-relative image paths against a base directory
// and probes their dimensions. It implements imgref.DimensionProber.
type DirProber struct {
	// Dir is the directory of the document being processed.
	Dir string
}

// Probe resolves src against the prober's directory and reads the image
// header. Remote URLs, absolute site paths, and unreadable or undecodable
// files report ok=false.
func (p *DirProber) Probe(src string) (width, height int, ok bool) {
	if p == nil || src == "" || !isLocalRelative(src) {
		return 0, 0, false
	}

	dims, err := Probe(filepath.Join(p.Dir, filepath.FromSlash(src)))
	if err != nil {
		return 0, 0, false
	}
	return dims.Width, dims.Height, true
}

// isLocalRelative reports whether src is a relative filesystem path rather
// than a URL or site-absolute path.
func isLocalRelative(src string) bool {
	if strings.Contains(src, "://") || strings.HasPrefix(src, "//") {
		return false
	}
	return !strings.HasPrefix(src, "/")
}
