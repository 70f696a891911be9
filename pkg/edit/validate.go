package edit

import (
	"fmt"
	"sort"
)

// ValidationError describes an edit with an invalid range.
type ValidationError struct {
	Edit    TextEdit
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid edit [%d:%d]: %s", e.Edit.Start, e.Edit.End, e.Message)
}

// Validate checks that every edit has a valid range for content of the given
// length. It returns the first invalid edit encountered, or nil.
func Validate(edits []TextEdit, contentLen int) error {
	for _, e := range edits {
		if e.Start < 0 {
			return &ValidationError{Edit: e, Message: "start offset is negative"}
		}
		if e.End < e.Start {
			return &ValidationError{Edit: e, Message: "end offset is before start offset"}
		}
		if e.End > contentLen {
			return &ValidationError{
				Edit:    e,
				Message: fmt.Sprintf("end offset %d exceeds content length %d", e.End, contentLen),
			}
		}
	}
	return nil
}

// Sort orders edits by start offset, then end offset. Splicing is only
// correct over edits in non-decreasing start order.
func Sort(edits []TextEdit) {
	sort.SliceStable(edits, func(i, j int) bool {
		if edits[i].Start != edits[j].Start {
			return edits[i].Start < edits[j].Start
		}
		return edits[i].End < edits[j].End
	})
}

// FilterOverlapping removes overlapping edits from a sorted slice using a
// greedy left-to-right policy: the earlier edit wins. It returns the accepted
// edits and the skipped ones.
func FilterOverlapping(edits []TextEdit) (accepted, skipped []TextEdit) {
	if len(edits) == 0 {
		return nil, nil
	}

	accepted = make([]TextEdit, 0, len(edits))
	accepted = append(accepted, edits[0])
	lastEnd := edits[0].End

	for _, e := range edits[1:] {
		if e.Start >= lastEnd {
			accepted = append(accepted, e)
			lastEnd = e.End
			continue
		}
		skipped = append(skipped, e)
	}

	return accepted, skipped
}

// Prepare validates, sorts, and resolves overlaps in one step. The input
// slice is not modified. Overlapping edits are dropped, earlier span wins.
func Prepare(edits []TextEdit, contentLen int) ([]TextEdit, error) {
	if len(edits) == 0 {
		return nil, nil
	}

	if err := Validate(edits, contentLen); err != nil {
		return nil, err
	}

	sorted := make([]TextEdit, len(edits))
	copy(sorted, edits)
	Sort(sorted)

	accepted, _ := FilterOverlapping(sorted)
	return accepted, nil
}
