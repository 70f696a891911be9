package markdown_test

import (
	"testing"

	"github.com/yaklabco/mdimg/pkg/markdown"
)

func TestParseMeta(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		source    string
		wantTitle string
		wantOut   bool
		wantErr   bool
	}{
		{
			name:      "title and opt-out",
			source:    "---\ntitle: Install Guide\noptimize_images: false\n---\n\nbody\n",
			wantTitle: "Install Guide",
			wantOut:   true,
		},
		{
			name:      "explicit opt-in",
			source:    "---\ntitle: API\noptimize_images: true\n---\n\nbody\n",
			wantTitle: "API",
			wantOut:   false,
		},
		{
			name:      "absent key means opted in",
			source:    "---\ntitle: Notes\n---\n\nbody\n",
			wantTitle: "Notes",
			wantOut:   false,
		},
		{
			name:    "no frontmatter",
			source:  "# Heading\n\nbody\n",
			wantOut: false,
		},
		{
			name:    "unknown keys ignored",
			source:  "---\nauthor: someone\ntags: [a, b]\n---\n\nbody\n",
			wantOut: false,
		},
		{
			name:    "malformed yaml",
			source:  "---\ntitle: [unclosed\n---\n\nbody\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			meta, err := markdown.ParseMeta([]byte(tt.source))
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMeta() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}

			if meta.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", meta.Title, tt.wantTitle)
			}
			if meta.OptedOut() != tt.wantOut {
				t.Errorf("OptedOut() = %v, want %v", meta.OptedOut(), tt.wantOut)
			}
		})
	}
}
