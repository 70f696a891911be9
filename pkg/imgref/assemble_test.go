package imgref_test

import (
	"strings"
	"testing"

	"github.com/yaklabco/mdimg/pkg/imgref"
)

func TestAssemble_NoReferences(t *testing.T) {
	t.Parallel()

	doc := "plain prose with no images\n"

	got, count := imgref.Assemble(doc, nil, nil)
	if got != doc {
		t.Errorf("Assemble() = %q, want unchanged document", got)
	}
	if count != 0 {
		t.Errorf("count = %d, want 0", count)
	}
}

func TestAssemble_RoundTripIdentity(t *testing.T) {
	t.Parallel()

	doc := "before\n![a](one.png)\nmiddle <img src=\"two.png\"> after\n![b](assets/x.png)\n"
	refs := imgref.Scan(doc)

	// Feeding back every reference unchanged must reproduce the document.
	results := make([]string, len(refs))
	for i, ref := range refs {
		results[i] = ref.FullText
	}

	got, count := imgref.Assemble(doc, refs, results)
	if got != doc {
		t.Errorf("Assemble() = %q, want original document %q", got, doc)
	}
	if count != 0 {
		t.Errorf("count = %d, want 0", count)
	}
}

func TestAssemble_CountsOnlyChangedReferences(t *testing.T) {
	t.Parallel()

	doc := "![remote](https://example.com/a.png)\n" +
		"![local](images/b.png)\n" +
		"![asset](./assets/c.png)\n"
	refs := imgref.Scan(doc)
	if len(refs) != 3 {
		t.Fatalf("Scan() returned %d references, want 3", len(refs))
	}

	rw := imgref.NewRewriter(imgref.DefaultOptions(), nil)
	results := make([]string, len(refs))
	for i, ref := range refs {
		results[i] = rw.Rewrite(ref)
	}

	got, count := imgref.Assemble(doc, refs, results)
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
	if !strings.Contains(got, "![remote](https://example.com/a.png)") {
		t.Errorf("remote reference must survive unchanged:\n%s", got)
	}
	if !strings.Contains(got, "![local](images/b.png)") {
		t.Errorf("non-asset reference must survive unchanged:\n%s", got)
	}
	if !strings.Contains(got, `srcset="./assets/c.webp"`) {
		t.Errorf("asset reference must be rewritten:\n%s", got)
	}
}

func TestAssemble_OutOfOrderReferences(t *testing.T) {
	t.Parallel()

	// Scan emits markdown references before HTML references, so the
	// HTML tag at offset 0 arrives last. Assemble must splice by
	// document offset regardless.
	doc := `<img src="first.png"> and ![second](./assets/second.png)`
	refs := imgref.Scan(doc)
	if len(refs) != 2 {
		t.Fatalf("Scan() returned %d references, want 2", len(refs))
	}
	if refs[0].Offset < refs[1].Offset {
		t.Fatalf("test assumes scan order differs from document order")
	}

	results := []string{"![second](REPLACED-MD)", `<img src="REPLACED-HTML">`}

	got, count := imgref.Assemble(doc, refs, results)
	want := `<img src="REPLACED-HTML"> and ![second](REPLACED-MD)`
	if got != want {
		t.Errorf("Assemble() = %q, want %q", got, want)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
}

func TestAssemble_SurroundingTextPreserved(t *testing.T) {
	t.Parallel()

	doc := "# Title\n\nSome prose.\n\n![x](./assets/x.png)\n\nMore prose.\n"
	refs := imgref.Scan(doc)
	if len(refs) != 1 {
		t.Fatalf("Scan() returned %d references, want 1", len(refs))
	}

	got, count := imgref.Assemble(doc, refs, []string{"REPLACEMENT"})
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
	want := "# Title\n\nSome prose.\n\nREPLACEMENT\n\nMore prose.\n"
	if got != want {
		t.Errorf("Assemble() = %q, want %q", got, want)
	}
}
