// Package markdown provides the markdown-aware supporting analysis for the
// rewrite engine: byte ranges that must never be rewritten (code blocks and
// code spans) and document frontmatter handling.
package markdown

import (
	"sort"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Range is a half-open byte range [Start, End) in the source document.
type Range struct {
	Start int
	End   int
}

// Contains reports whether offset falls inside the range.
func (r Range) Contains(offset int) bool {
	return offset >= r.Start && offset < r.End
}

// ProtectedRanges parses source and returns the byte ranges of fenced code
// blocks, indented code blocks, and inline code spans, sorted by start
// offset. Image syntax inside these ranges is literal text, not a reference,
// so the scanner's matches there must be discarded.
func ProtectedRanges(source []byte) []Range {
	parser := goldmark.New().Parser()
	root := parser.Parse(text.NewReader(source))

	var ranges []Range

	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n.Kind() {
		case ast.KindFencedCodeBlock, ast.KindCodeBlock:
			if r, ok := blockRange(n); ok {
				ranges = append(ranges, r)
			}
			return ast.WalkSkipChildren, nil
		case ast.KindCodeSpan:
			if r, ok := spanRange(n); ok {
				ranges = append(ranges, r)
			}
			return ast.WalkSkipChildren, nil
		}

		return ast.WalkContinue, nil
	})

	sort.Slice(ranges, func(i, j int) bool { return ranges[i].Start < ranges[j].Start })
	return ranges
}

// Protected reports whether offset falls inside any of the sorted ranges.
func Protected(ranges []Range, offset int) bool {
	idx := sort.Search(len(ranges), func(i int) bool { return ranges[i].End > offset })
	return idx < len(ranges) && ranges[idx].Contains(offset)
}

// blockRange computes the byte range covering a code block's content lines.
func blockRange(n ast.Node) (Range, bool) {
	lines := n.Lines()
	if lines == nil || lines.Len() == 0 {
		return Range{}, false
	}
	first := lines.At(0)
	last := lines.At(lines.Len() - 1)
	return Range{Start: first.Start, End: last.Stop}, true
}

// spanRange computes the byte range covering a code span's text segments.
func spanRange(n ast.Node) (Range, bool) {
	start, end := -1, -1
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		t, ok := c.(*ast.Text)
		if !ok {
			continue
		}
		seg := t.Segment
		if start < 0 || seg.Start < start {
			start = seg.Start
		}
		if seg.Stop > end {
			end = seg.Stop
		}
	}
	if start < 0 || end <= start {
		return Range{}, false
	}
	return Range{Start: start, End: end}, true
}
