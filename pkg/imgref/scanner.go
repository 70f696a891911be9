package imgref

import "regexp"

// markdownImagePattern matches ![alt](path). Alt text may not contain "]",
// the path may not contain ")"; both may be empty.
var markdownImagePattern = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]*)\)`)

// htmlImagePattern matches a complete <img ...> tag, case-insensitively,
// with attributes in any order.
var htmlImagePattern = regexp.MustCompile(`(?i)<img\b[^>]*>`)

// srcAttrPattern extracts the src attribute value from an <img> tag.
// Double-quoted, single-quoted, and unquoted values are supported.
var srcAttrPattern = regexp.MustCompile(`(?i)\bsrc\s*=\s*(?:"([^"]*)"|'([^']*)'|([^\s"'>]+))`)

// Scan finds every image reference in doc. Markdown references are emitted
// first, then HTML references, each group in left-to-right document order.
// The two passes are independent and scan the full document; the combined
// sequence is not globally sorted by offset.
func Scan(doc string) []Reference {
	var refs []Reference

	for _, m := range markdownImagePattern.FindAllStringSubmatchIndex(doc, -1) {
		refs = append(refs, Reference{
			Kind:       KindMarkdown,
			FullText:   doc[m[0]:m[1]],
			AltText:    doc[m[2]:m[3]],
			SourcePath: doc[m[4]:m[5]],
			Offset:     m[0],
		})
	}

	for _, m := range htmlImagePattern.FindAllStringIndex(doc, -1) {
		tag := doc[m[0]:m[1]]
		refs = append(refs, Reference{
			Kind:       KindHTML,
			FullText:   tag,
			SourcePath: extractSrc(tag),
			Offset:     m[0],
		})
	}

	return refs
}

// extractSrc returns the src attribute value of an <img> tag, or "" when the
// tag carries no src attribute.
func extractSrc(tag string) string {
	m := srcAttrPattern.FindStringSubmatch(tag)
	if m == nil {
		return ""
	}
	for _, group := range m[1:] {
		if group != "" {
			return group
		}
	}
	return ""
}
