// Package reporter renders runner results as text or JSON.
package reporter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/yaklabco/mdimg/internal/ui/pretty"
	"github.com/yaklabco/mdimg/pkg/config"
	"github.com/yaklabco/mdimg/pkg/runner"
)

// Options configures a Reporter.
type Options struct {
	// Writer receives the report.
	Writer io.Writer

	// Format selects the output format.
	Format config.OutputFormat

	// Color is the color mode: "auto", "always", or "never".
	Color string

	// WorkingDir is used to relativize paths for display.
	WorkingDir string

	// Verbose also lists files that needed no changes.
	Verbose bool
}

// Reporter writes run results in the configured format.
type Reporter struct {
	opts   Options
	styles *pretty.Styles
}

// New creates a Reporter.
func New(opts Options) (*Reporter, error) {
	switch opts.Format {
	case config.FormatText, config.FormatJSON, "":
	default:
		return nil, fmt.Errorf("unknown output format %q", opts.Format)
	}
	if opts.Format == "" {
		opts.Format = config.FormatText
	}

	return &Reporter{
		opts:   opts,
		styles: pretty.NewStyles(pretty.ColorEnabled(opts.Color, opts.Writer)),
	}, nil
}

// Report renders result to the configured writer.
func (r *Reporter) Report(ctx context.Context, result *runner.Result) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("report: %w", ctx.Err())
	default:
	}

	if r.opts.Format == config.FormatJSON {
		return r.reportJSON(result)
	}
	return r.reportText(result)
}

func (r *Reporter) reportText(result *runner.Result) error {
	w := r.opts.Writer

	for _, outcome := range result.Files {
		path := r.displayPath(outcome.Path)

		if outcome.Error != nil {
			line := r.styles.Failure.Render("error") + " " +
				r.styles.FilePath.Render(path) + ": " + outcome.Error.Error() + "\n"
			if _, err := io.WriteString(w, line); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
			continue
		}

		pr := outcome.Result
		if pr == nil {
			continue
		}

		interesting := pr.Written || pr.Skipped ||
			(pr.Document != nil && pr.Document.Changed)
		if !interesting && !r.opts.Verbose {
			continue
		}

		optimized := 0
		if pr.Document != nil {
			optimized = pr.Document.Optimized
		}
		if _, err := io.WriteString(w, r.styles.FormatFileLine(path, pr.Summary(), optimized)); err != nil {
			return fmt.Errorf("write report: %w", err)
		}

		if pr.Diff != nil {
			if _, err := io.WriteString(w, r.styles.FormatDiff(pr.Diff)); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
		}
	}

	if _, err := io.WriteString(w, r.styles.FormatSummaryOneLine(result.Stats)); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}

// jsonReport is the JSON output shape.
type jsonReport struct {
	Files []jsonFile   `json:"files"`
	Stats runner.Stats `json:"stats"`
}

type jsonFile struct {
	Path       string `json:"path"`
	References int    `json:"references,omitempty"`
	Optimized  int    `json:"optimized,omitempty"`
	Written    bool   `json:"written,omitempty"`
	Skipped    bool   `json:"skipped,omitempty"`
	SkipReason string `json:"skip_reason,omitempty"`
	Error      string `json:"error,omitempty"`
}

func (r *Reporter) reportJSON(result *runner.Result) error {
	report := jsonReport{
		Files: make([]jsonFile, 0, len(result.Files)),
		Stats: result.Stats,
	}

	for _, outcome := range result.Files {
		file := jsonFile{Path: r.displayPath(outcome.Path)}
		if outcome.Error != nil {
			file.Error = outcome.Error.Error()
		} else if pr := outcome.Result; pr != nil {
			file.Written = pr.Written
			file.Skipped = pr.Skipped
			file.SkipReason = pr.SkipReason
			if pr.Document != nil {
				file.References = pr.Document.References
				file.Optimized = pr.Document.Optimized
			}
		}
		report.Files = append(report.Files, file)
	}

	encoder := json.NewEncoder(r.opts.Writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	return nil
}

// displayPath relativizes path against the working directory when possible.
func (r *Reporter) displayPath(path string) string {
	if r.opts.WorkingDir == "" {
		return path
	}
	rel, err := filepath.Rel(r.opts.WorkingDir, path)
	if err != nil || len(rel) >= len(path) {
		return path
	}
	return rel
}
