package imgref

import "github.com/yaklabco/mdimg/pkg/edit"

// Assemble splices rewrite results back into the original document and
// returns the new document plus the number of references that changed.
//
// results[i] is the replacement for refs[i]; a result equal to the
// reference's FullText is a no-op and is not counted. Pairs are re-sorted by
// original offset before splicing, so the scan-pass order of refs (markdown
// first, then HTML) does not have to match document order. Overlapping spans
// can only arise from pathological input; when they do, the earlier span wins
// and the later pair is dropped from both the splice and the count.
func Assemble(doc string, refs []Reference, results []string) (string, int) {
	if len(refs) == 0 {
		return doc, 0
	}

	edits := make([]edit.TextEdit, 0, len(refs))
	for i, ref := range refs {
		if i >= len(results) || results[i] == ref.FullText {
			continue
		}
		edits = append(edits, edit.TextEdit{
			Start:   ref.Offset,
			End:     ref.End(),
			NewText: results[i],
		})
	}

	prepared, err := edit.Prepare(edits, len(doc))
	if err != nil {
		// A reference whose span does not lie inside the document violates
		// the scan-time invariant; treat the whole batch as a no-op.
		return doc, 0
	}

	return edit.Apply(doc, prepared), len(prepared)
}
