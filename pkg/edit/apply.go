package edit

import "strings"

// Apply splices a sorted, non-overlapping slice of edits into content.
// Use Prepare to establish those preconditions.
func Apply(content string, edits []TextEdit) string {
	if len(edits) == 0 {
		return content
	}

	delta := 0
	for _, e := range edits {
		delta += e.Delta()
	}

	var out strings.Builder
	out.Grow(len(content) + delta)

	cursor := 0
	for _, e := range edits {
		out.WriteString(content[cursor:e.Start])
		out.WriteString(e.NewText)
		cursor = e.End
	}
	out.WriteString(content[cursor:])

	return out.String()
}
