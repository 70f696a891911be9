package edit

import (
	"fmt"
	"strings"
)

// contextLines is the number of unchanged lines shown around a change.
const contextLines = 3

// Diff is a unified diff between original and modified content.
type Diff struct {
	// Path is the file path used in the diff header.
	Path string

	// Hunks contains the changed regions.
	Hunks []Hunk

	// Additions and Deletions count changed lines.
	Additions int
	Deletions int
}

// Hunk is one changed region with surrounding context.
type Hunk struct {
	OriginalStart int
	OriginalCount int
	ModifiedStart int
	ModifiedCount int
	Lines         []Line
}

// LineKind classifies a diff line.
type LineKind int

const (
	LineContext LineKind = iota
	LineAdd
	LineRemove
)

// Line is a single diff line without its prefix character.
type Line struct {
	Kind    LineKind
	Content string
}

// GenerateDiff computes a unified diff between original and modified.
// It returns nil when the contents are identical.
//
// The diff is computed by trimming the common line prefix and suffix and
// emitting the remainder as a single hunk. Image-reference rewrites are
// localized, so this produces the same output as a full LCS diff in practice
// while staying linear.
func GenerateDiff(path, original, modified string) *Diff {
	if original == modified {
		return nil
	}

	origLines := splitLines(original)
	modLines := splitLines(modified)

	// Common prefix.
	prefix := 0
	for prefix < len(origLines) && prefix < len(modLines) && origLines[prefix] == modLines[prefix] {
		prefix++
	}

	// Common suffix, not overlapping the prefix.
	suffix := 0
	for suffix < len(origLines)-prefix && suffix < len(modLines)-prefix &&
		origLines[len(origLines)-1-suffix] == modLines[len(modLines)-1-suffix] {
		suffix++
	}

	removed := origLines[prefix : len(origLines)-suffix]
	added := modLines[prefix : len(modLines)-suffix]

	// Context boundaries.
	ctxStart := prefix - contextLines
	if ctxStart < 0 {
		ctxStart = 0
	}

	var lines []Line
	for _, l := range origLines[ctxStart:prefix] {
		lines = append(lines, Line{Kind: LineContext, Content: l})
	}
	for _, l := range removed {
		lines = append(lines, Line{Kind: LineRemove, Content: l})
	}
	for _, l := range added {
		lines = append(lines, Line{Kind: LineAdd, Content: l})
	}

	trail := len(origLines) - suffix
	trailEnd := trail + contextLines
	if trailEnd > len(origLines) {
		trailEnd = len(origLines)
	}
	for _, l := range origLines[trail:trailEnd] {
		lines = append(lines, Line{Kind: LineContext, Content: l})
	}

	hunk := Hunk{
		OriginalStart: ctxStart + 1,
		OriginalCount: (prefix - ctxStart) + len(removed) + (trailEnd - trail),
		ModifiedStart: ctxStart + 1,
		ModifiedCount: (prefix - ctxStart) + len(added) + (trailEnd - trail),
		Lines:         lines,
	}

	return &Diff{
		Path:      path,
		Hunks:     []Hunk{hunk},
		Additions: len(added),
		Deletions: len(removed),
	}
}

// Format renders the diff in unified format.
func (d *Diff) Format() string {
	if d == nil {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "--- a/%s\n", d.Path)
	fmt.Fprintf(&b, "+++ b/%s\n", d.Path)

	for _, h := range d.Hunks {
		fmt.Fprintf(&b, "@@ -%d,%d +%d,%d @@\n",
			h.OriginalStart, h.OriginalCount, h.ModifiedStart, h.ModifiedCount)
		for _, l := range h.Lines {
			switch l.Kind {
			case LineAdd:
				b.WriteString("+")
			case LineRemove:
				b.WriteString("-")
			default:
				b.WriteString(" ")
			}
			b.WriteString(l.Content)
			b.WriteString("\n")
		}
	}

	return b.String()
}

// splitLines splits content into lines without trailing newlines.
// An empty string yields no lines.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	content = strings.TrimSuffix(content, "\n")
	return strings.Split(content, "\n")
}
