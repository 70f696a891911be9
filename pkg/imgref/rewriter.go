package imgref

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ResponsiveStyle is the inline style applied to rewritten images.
const ResponsiveStyle = "max-width: 100%; height: auto;"

// assetSegment marks a path as belonging to the local asset tree.
const assetSegment = "assets/"

// Options controls which rewrite rules the Rewriter applies.
// The zero value disables everything; use DefaultOptions for the defaults.
type Options struct {
	// LazyLoading inserts loading="lazy" on rewritten images.
	LazyLoading bool

	// OptimizeAltText cleans up alt text (prefix/extension stripping,
	// capitalization) on markdown asset rewrites.
	OptimizeAltText bool

	// WebP enables the <picture> WebP-fallback rewrite for markdown
	// asset references. When false, markdown references pass through.
	WebP bool

	// Dimensions emits width/height attributes when the true pixel size
	// of a local image can be determined via the configured prober.
	Dimensions bool
}

// DefaultOptions returns the default rewrite options. Dimension attribution
// is off by default because it requires resolving image files on disk.
func DefaultOptions() Options {
	return Options{
		LazyLoading:     true,
		OptimizeAltText: true,
		WebP:            true,
		Dimensions:      false,
	}
}

// DimensionProber resolves an image source path (as written in the document)
// to its true pixel dimensions. Implementations return ok=false for remote
// URLs, unresolvable paths, and undecodable files.
type DimensionProber interface {
	Probe(src string) (width, height int, ok bool)
}

// Rewriter decides the replacement text for scanned references.
// Rewriting is a total function: malformed input is passed through unchanged.
type Rewriter struct {
	opts   Options
	prober DimensionProber
}

// NewRewriter creates a Rewriter with the given options.
// The prober may be nil, which disables dimension attribution.
func NewRewriter(opts Options, prober DimensionProber) *Rewriter {
	return &Rewriter{opts: opts, prober: prober}
}

// Rewrite returns the replacement text for ref. A result equal to
// ref.FullText means no change.
func (rw *Rewriter) Rewrite(ref Reference) string {
	switch ref.Kind {
	case KindMarkdown:
		return rw.rewriteMarkdown(ref)
	case KindHTML:
		return rw.rewriteHTML(ref)
	default:
		return ref.FullText
	}
}

// webpExtPattern matches a trailing raster-image extension eligible for a
// WebP sibling.
var webpExtPattern = regexp.MustCompile(`(?i)\.(png|jpe?g)$`)

// IsAssetPath reports whether path references the local asset tree.
// Remote and non-asset paths are never rewritten.
func IsAssetPath(path string) bool {
	return strings.Contains(path, assetSegment)
}

// WebPSibling returns path with a trailing .png/.jpg/.jpeg extension replaced
// by .webp. Paths without such an extension are returned unchanged.
func WebPSibling(path string) string {
	return webpExtPattern.ReplaceAllString(path, ".webp")
}

// rewriteMarkdown applies the markdown-syntax rule: asset references become a
// <picture> block with a WebP source and the original image as fallback.
// The WebP sibling is assumed to exist; no filesystem check is made.
func (rw *Rewriter) rewriteMarkdown(ref Reference) string {
	if !rw.opts.WebP || !IsAssetPath(ref.SourcePath) {
		return ref.FullText
	}

	alt := ref.AltText
	if rw.opts.OptimizeAltText {
		alt = OptimizeAltText(alt)
	}

	var b strings.Builder
	b.WriteString("<picture>\n")
	fmt.Fprintf(&b, "  <source srcset=%q type=\"image/webp\">\n", WebPSibling(ref.SourcePath))
	fmt.Fprintf(&b, "  <img src=%q alt=%q", ref.SourcePath, alt)
	if w, h, ok := rw.probe(ref.SourcePath); ok {
		fmt.Fprintf(&b, " width=\"%d\" height=\"%d\"", w, h)
	}
	if rw.opts.LazyLoading {
		b.WriteString(` loading="lazy"`)
	}
	fmt.Fprintf(&b, " style=%q>\n", ResponsiveStyle)
	b.WriteString("</picture>")
	return b.String()
}

// rewriteHTML applies the HTML-syntax rule: independent insertion of a lazy
// loading attribute and a responsive inline style. Source paths are never
// substituted for HTML references.
func (rw *Rewriter) rewriteHTML(ref Reference) string {
	tag := ref.FullText
	lower := strings.ToLower(tag)

	// Fully optimized tags are left alone.
	if strings.Contains(lower, "loading=") &&
		(strings.Contains(lower, "<picture") || strings.Contains(lower, "srcset=")) {
		return tag
	}

	out := tag
	if rw.opts.LazyLoading && !strings.Contains(lower, "loading=") {
		out = insertAfterOpenToken(out, ` loading="lazy"`)
	}
	if !strings.Contains(lower, "style=") && !strings.Contains(lower, "max-width") {
		out = insertAfterOpenToken(out, fmt.Sprintf(" style=%q", ResponsiveStyle))
	}
	if !strings.Contains(lower, "width=") && !strings.Contains(lower, "height=") {
		if w, h, ok := rw.probe(ref.SourcePath); ok {
			out = insertAfterOpenToken(out, fmt.Sprintf(" width=\"%d\" height=\"%d\"", w, h))
		}
	}
	return out
}

func (rw *Rewriter) probe(src string) (int, int, bool) {
	if !rw.opts.Dimensions || rw.prober == nil || src == "" {
		return 0, 0, false
	}
	return rw.prober.Probe(src)
}

// openTokenLen is the length of the "<img" opening token.
const openTokenLen = len("<img")

// insertAfterOpenToken splices text immediately after the tag's opening
// token. The scanner guarantees the tag starts with "<img" (any case).
func insertAfterOpenToken(tag, text string) string {
	if len(tag) < openTokenLen {
		return tag
	}
	return tag[:openTokenLen] + text + tag[openTokenLen:]
}

// altPrefixPattern matches noise prefixes such as "A screenshot of the ".
// Leading and trailing articles are optional.
var altPrefixPattern = regexp.MustCompile(
	`(?i)^(?:(?:a|an|the)\s+)?(?:image|picture|photo|screenshot)\s+(?:of|showing)\s+(?:(?:a|an|the)\s+)?`)

// altExtPattern matches a trailing image-file extension in alt text.
var altExtPattern = regexp.MustCompile(`(?i)\.(png|jpe?g|gif)$`)

// OptimizeAltText cleans a markdown alt text for use as an accessible
// description: noise prefixes and file extensions are stripped, whitespace is
// trimmed, and the first rune is capitalized. Empty input stays empty.
func OptimizeAltText(alt string) string {
	s := altPrefixPattern.ReplaceAllString(alt, "")
	s = altExtPattern.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
