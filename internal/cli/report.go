package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdimg/internal/ui/pretty"
	"github.com/yaklabco/mdimg/pkg/compressor"
	"github.com/yaklabco/mdimg/pkg/imagemeta"
)

const kilobyte = 1024

type reportFlags struct {
	minSizeKB int
}

func newReportCommand() *cobra.Command {
	flags := &reportFlags{}

	cmd := &cobra.Command{
		Use:   "report [paths...]",
		Short: "Report on image assets and compression opportunities",
		Long: `Scan image files and report their size, pixel dimensions, and whether a
.webp sibling exists. Images above the size threshold without a WebP sibling
are flagged as compression candidates.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, args, flags)
		},
	}

	cmd.Flags().IntVar(&flags.minSizeKB, "min-size", 100,
		"size threshold in KB for flagging compression candidates")

	return cmd
}

func runReport(cmd *cobra.Command, args []string, flags *reportFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	roots := args
	if len(roots) == 0 {
		roots = []string{workDir}
	}

	images, err := compressor.DiscoverImages(ctx, roots)
	if err != nil {
		return fmt.Errorf("discover images: %w", err)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	styles := pretty.NewStyles(pretty.ColorEnabled(colorMode, cmd.OutOrStdout()))
	out := cmd.OutOrStdout()

	var totalBytes int64
	var candidates int

	for _, path := range images {
		stat, err := os.Stat(path)
		if err != nil {
			continue
		}
		totalBytes += stat.Size()

		display := path
		if rel, relErr := filepath.Rel(workDir, path); relErr == nil && len(rel) < len(path) {
			display = rel
		}

		var details []string
		if dims, err := imagemeta.Probe(path); err == nil {
			details = append(details, fmt.Sprintf("%dx%d", dims.Width, dims.Height))
		}
		details = append(details, fmt.Sprintf("%d KB", stat.Size()/kilobyte))

		webpSibling := strings.TrimSuffix(path, filepath.Ext(path)) + ".webp"
		hasWebP := fileExists(webpSibling)
		if hasWebP {
			details = append(details, "webp")
		}

		line := styles.FilePath.Render(display) + "  " + styles.Dim.Render(strings.Join(details, ", "))

		if stat.Size() >= int64(flags.minSizeKB)*kilobyte && !hasWebP {
			candidates++
			line += "  " + styles.Warning.Render("compress candidate")
		}

		fmt.Fprintln(out, line)
	}

	width := pretty.TerminalWidth(cmd.OutOrStdout(), 0)
	fmt.Fprintln(out, styles.Dim.Render(strings.Repeat("-", width)))

	fmt.Fprintf(out, "%s %d images, %d KB total",
		styles.SummaryTitle.Render("Total:"), len(images), totalBytes/kilobyte)
	if candidates > 0 {
		fmt.Fprintf(out, ", %s",
			styles.Warning.Render(fmt.Sprintf("%d compression candidates (run mdimg compress)", candidates)))
	}
	fmt.Fprintln(out)

	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
