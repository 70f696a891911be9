// Package edit provides text-replacement primitives for document rewriting:
// offset-ranged edits, validation, ordering, overlap resolution, and splicing.
package edit

// TextEdit replaces the byte range [Start, End) with NewText.
type TextEdit struct {
	// Start is the byte offset where the edit begins (inclusive).
	Start int

	// End is the byte offset where the edit ends (exclusive).
	End int

	// NewText is the replacement text.
	NewText string
}

// Len returns the length of the replaced span.
func (e TextEdit) Len() int {
	return e.End - e.Start
}

// Delta returns the length change the edit introduces.
func (e TextEdit) Delta() int {
	return len(e.NewText) - e.Len()
}
