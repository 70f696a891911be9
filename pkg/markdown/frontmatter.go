package markdown

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"
)

// DocumentMeta is the YAML frontmatter recognized by the optimizer.
// Unknown keys are ignored; documents without frontmatter yield the zero
// value.
type DocumentMeta struct {
	// Title is the document title, surfaced in reports.
	Title string `yaml:"title"`

	// OptimizeImages lets a document opt out of image optimization.
	// Absent means opted in.
	OptimizeImages *bool `yaml:"optimize_images"`
}

// OptedOut reports whether the document declared optimize_images: false.
func (m DocumentMeta) OptedOut() bool {
	return m.OptimizeImages != nil && !*m.OptimizeImages
}

// ParseMeta extracts frontmatter metadata from source. The document body is
// not returned: the rewrite engine always operates on the full original
// bytes, frontmatter included, so spans stay aligned.
func ParseMeta(source []byte) (DocumentMeta, error) {
	var meta DocumentMeta
	if _, err := frontmatter.Parse(bytes.NewReader(source), &meta); err != nil {
		return DocumentMeta{}, fmt.Errorf("parse frontmatter: %w", err)
	}
	return meta, nil
}
