// Package imgref implements the image-reference rewrite engine: scanning
// documents for markdown and HTML image references, rewriting them for lazy
// loading, WebP fallback, and responsive styling, and splicing the results
// back into the document.
package imgref

// Kind identifies the syntax of an image reference.
type Kind int

const (
	// KindMarkdown is a markdown-syntax reference: ![alt](path).
	KindMarkdown Kind = iota

	// KindHTML is a raw <img> tag with a src attribute.
	KindHTML
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindMarkdown:
		return "markdown"
	case KindHTML:
		return "html"
	default:
		return "unknown"
	}
}

// Reference is one detected image occurrence in a document.
type Reference struct {
	// Kind is the reference syntax.
	Kind Kind

	// FullText is the exact matched substring. It reproduces
	// doc[Offset : Offset+len(FullText)] byte for byte at scan time and
	// anchors the replacement span during reassembly.
	FullText string

	// AltText is the bracketed alt text for markdown references.
	// HTML references carry no separately parsed alt text.
	AltText string

	// SourcePath is the referenced image path or URL, exactly as written.
	SourcePath string

	// Offset is the zero-based byte offset of FullText in the document.
	Offset int
}

// End returns the exclusive end offset of the reference span.
func (r Reference) End() int {
	return r.Offset + len(r.FullText)
}
