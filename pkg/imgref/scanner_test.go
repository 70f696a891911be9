package imgref_test

import (
	"testing"

	"github.com/yaklabco/mdimg/pkg/imgref"
)

func TestScan_Markdown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		doc      string
		wantAlt  string
		wantPath string
	}{
		{
			name:     "simple reference",
			doc:      "![diagram](./assets/diagram.png)",
			wantAlt:  "diagram",
			wantPath: "./assets/diagram.png",
		},
		{
			name:     "empty alt text",
			doc:      "![](images/photo.jpg)",
			wantAlt:  "",
			wantPath: "images/photo.jpg",
		},
		{
			name:     "empty path",
			doc:      "![placeholder]()",
			wantAlt:  "placeholder",
			wantPath: "",
		},
		{
			name:     "remote url",
			doc:      "![logo](https://example.com/logo.png)",
			wantAlt:  "logo",
			wantPath: "https://example.com/logo.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			refs := imgref.Scan(tt.doc)
			if len(refs) != 1 {
				t.Fatalf("Scan() returned %d references, want 1", len(refs))
			}

			ref := refs[0]
			if ref.Kind != imgref.KindMarkdown {
				t.Errorf("Kind = %v, want KindMarkdown", ref.Kind)
			}
			if ref.AltText != tt.wantAlt {
				t.Errorf("AltText = %q, want %q", ref.AltText, tt.wantAlt)
			}
			if ref.SourcePath != tt.wantPath {
				t.Errorf("SourcePath = %q, want %q", ref.SourcePath, tt.wantPath)
			}
		})
	}
}

func TestScan_HTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		doc      string
		wantPath string
	}{
		{
			name:     "double quoted src",
			doc:      `<img src="x.png">`,
			wantPath: "x.png",
		},
		{
			name:     "single quoted src",
			doc:      `<img src='y.jpg' alt="y">`,
			wantPath: "y.jpg",
		},
		{
			name:     "unquoted src",
			doc:      `<img src=z.gif>`,
			wantPath: "z.gif",
		},
		{
			name:     "uppercase tag and attribute",
			doc:      `<IMG SRC="caps.png">`,
			wantPath: "caps.png",
		},
		{
			name:     "attributes in any order",
			doc:      `<img class="wide" src="late.png" id="hero">`,
			wantPath: "late.png",
		},
		{
			name:     "no src attribute",
			doc:      `<img alt="broken">`,
			wantPath: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			refs := imgref.Scan(tt.doc)
			if len(refs) != 1 {
				t.Fatalf("Scan() returned %d references, want 1", len(refs))
			}

			ref := refs[0]
			if ref.Kind != imgref.KindHTML {
				t.Errorf("Kind = %v, want KindHTML", ref.Kind)
			}
			if ref.FullText != tt.doc {
				t.Errorf("FullText = %q, want %q", ref.FullText, tt.doc)
			}
			if ref.SourcePath != tt.wantPath {
				t.Errorf("SourcePath = %q, want %q", ref.SourcePath, tt.wantPath)
			}
		})
	}
}

func TestScan_Ordering(t *testing.T) {
	t.Parallel()

	// HTML tag appears before the markdown reference in document order,
	// but the markdown pass runs first.
	doc := `<img src="first.png"> then ![second](second.png)`

	refs := imgref.Scan(doc)
	if len(refs) != 2 {
		t.Fatalf("Scan() returned %d references, want 2", len(refs))
	}

	if refs[0].Kind != imgref.KindMarkdown {
		t.Errorf("first reference Kind = %v, want KindMarkdown", refs[0].Kind)
	}
	if refs[1].Kind != imgref.KindHTML {
		t.Errorf("second reference Kind = %v, want KindHTML", refs[1].Kind)
	}
	if refs[1].Offset != 0 {
		t.Errorf("html reference Offset = %d, want 0", refs[1].Offset)
	}
}

func TestScan_OffsetInvariant(t *testing.T) {
	t.Parallel()

	doc := "intro\n![a](one.png)\nmiddle\n<img src=\"two.png\">\n![b](assets/three.jpg)\n"

	refs := imgref.Scan(doc)
	if len(refs) != 3 {
		t.Fatalf("Scan() returned %d references, want 3", len(refs))
	}

	for _, ref := range refs {
		span := doc[ref.Offset:ref.End()]
		if span != ref.FullText {
			t.Errorf("span [%d:%d] = %q, want FullText %q",
				ref.Offset, ref.End(), span, ref.FullText)
		}
	}
}

func TestScan_NoReferences(t *testing.T) {
	t.Parallel()

	refs := imgref.Scan("plain text, [a link](somewhere), and nothing else")
	if len(refs) != 0 {
		t.Errorf("Scan() returned %d references, want 0", len(refs))
	}
}
