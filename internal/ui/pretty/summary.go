package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/mdimg/pkg/edit"
	"github.com/yaklabco/mdimg/pkg/runner"
)

const (
	wordFile  = "file"
	wordFiles = "files"
)

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "7 references optimized in 3 files (2 backups created)".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.ReferencesOptimized == 0 && stats.ChangesPending == 0 {
		msg := s.Success.Render("Nothing to optimize") +
			s.Dim.Render(fmt.Sprintf(" (%d files checked)", stats.FilesProcessed))
		return msg + "\n"
	}

	var parts []string

	refWord := "references"
	if stats.ReferencesOptimized == 1 {
		refWord = "reference"
	}

	if stats.ChangesPending > 0 {
		fileWord := plural(stats.ChangesPending, wordFile, wordFiles)
		parts = append(parts, s.Warning.Render(
			fmt.Sprintf("%d %s need optimization", stats.ChangesPending, fileWord)))
	} else {
		fileWord := plural(stats.FilesModified, wordFile, wordFiles)
		parts = append(parts, s.Success.Render(
			fmt.Sprintf("%d %s optimized in %d %s",
				stats.ReferencesOptimized, refWord, stats.FilesModified, fileWord)))
	}

	if stats.BackupsCreated > 0 {
		parts = append(parts, s.Dim.Render(
			fmt.Sprintf("(%d backups created)", stats.BackupsCreated)))
	}

	if stats.FilesSkipped > 0 {
		parts = append(parts, s.Dim.Render(
			fmt.Sprintf("%d skipped", stats.FilesSkipped)))
	}

	if stats.FilesErrored > 0 {
		parts = append(parts, s.Failure.Render(
			fmt.Sprintf("%d errors", stats.FilesErrored)))
	}

	return strings.Join(parts, " ") + "\n"
}

// FormatFileLine formats a single per-file result line.
func (s *Styles) FormatFileLine(path, summary string, optimized int) string {
	line := s.FilePath.Render(path) + ": " + summary
	if optimized > 0 {
		refWord := plural(optimized, "reference", "references")
		line += s.Dim.Render(fmt.Sprintf(" (%d %s)", optimized, refWord))
	}
	return line + "\n"
}

// FormatDiff renders a unified diff with per-line coloring.
func (s *Styles) FormatDiff(d *edit.Diff) string {
	if d == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(s.DiffHeader.Render(fmt.Sprintf("--- a/%s", d.Path)) + "\n")
	b.WriteString(s.DiffHeader.Render(fmt.Sprintf("+++ b/%s", d.Path)) + "\n")

	for _, h := range d.Hunks {
		b.WriteString(s.DiffHunk.Render(fmt.Sprintf("@@ -%d,%d +%d,%d @@",
			h.OriginalStart, h.OriginalCount, h.ModifiedStart, h.ModifiedCount)) + "\n")
		for _, l := range h.Lines {
			switch l.Kind {
			case edit.LineAdd:
				b.WriteString(s.DiffAdd.Render("+"+l.Content) + "\n")
			case edit.LineRemove:
				b.WriteString(s.DiffRemove.Render("-"+l.Content) + "\n")
			default:
				b.WriteString(" " + l.Content + "\n")
			}
		}
	}

	return b.String()
}

func plural(n int, singular, pluralWord string) string {
	if n == 1 {
		return singular
	}
	return pluralWord
}
