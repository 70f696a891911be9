// Package compressor orchestrates external image compression tools.
// No image decoding happens in-process: pngquant, jpegoptim, and cwebp do
// the actual work, and absent tools degrade to per-file skips.
package compressor

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
)

// Tool names as found on PATH.
const (
	ToolPNGQuant  = "pngquant"
	ToolJpegoptim = "jpegoptim"
	ToolCWebP     = "cwebp"
)

// Options controls external compression runs.
type Options struct {
	// Quality is the target quality (1-100).
	Quality int

	// GenerateWebP also produces a .webp sibling via cwebp.
	GenerateWebP bool

	// DryRun reports the commands without executing them.
	DryRun bool
}

// Result describes the compression outcome for one image.
type Result struct {
	// Path is the image file.
	Path string

	// Tool is the compressor used, empty when skipped.
	Tool string

	// OriginalSize and CompressedSize are file sizes in bytes.
	OriginalSize   int64
	CompressedSize int64

	// WebPPath is the generated sibling, empty when none was produced.
	WebPPath string

	// Commands lists the invocations, for dry-run display.
	Commands []string

	// Skipped is true when no tool ran; SkipReason says why.
	Skipped    bool
	SkipReason string
}

// Saved returns the byte reduction achieved for this image.
func (r Result) Saved() int64 {
	if r.CompressedSize <= 0 || r.CompressedSize >= r.OriginalSize {
		return 0
	}
	return r.OriginalSize - r.CompressedSize
}

// Compressor shells out to the image tools. Tool lookups are cached, so a
// single Compressor can be shared across workers.
type Compressor struct {
	opts Options

	// run executes a prepared command. Overridable in tests.
	run func(cmd *exec.Cmd) error

	mu    sync.Mutex
	tools map[string]bool
}

// New creates a Compressor with the given options.
func New(opts Options) *Compressor {
	if opts.Quality <= 0 || opts.Quality > 100 {
		opts.Quality = 85
	}
	return &Compressor{
		opts:  opts,
		run:   func(cmd *exec.Cmd) error { return cmd.Run() },
		tools: make(map[string]bool),
	}
}

// Available reports whether the named tool is on PATH. Results are cached
// for the lifetime of the Compressor.
func (c *Compressor) Available(tool string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ok, cached := c.tools[tool]; cached {
		return ok
	}
	_, err := exec.LookPath(tool)
	c.tools[tool] = err == nil
	return err == nil
}

// CommandFor returns the tool name and arguments used to compress path in
// place. The second return is false for unsupported extensions.
func (c *Compressor) CommandFor(path string) (string, []string, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		quality := fmt.Sprintf("--quality=%d-%d", maxInt(c.opts.Quality-20, 1), c.opts.Quality)
		return ToolPNGQuant, []string{quality, "--skip-if-larger", "--force", "--ext", ".png", path}, true
	case ".jpg", ".jpeg":
		return ToolJpegoptim, []string{fmt.Sprintf("--max=%d", c.opts.Quality), "--strip-all", "--quiet", path}, true
	default:
		return "", nil, false
	}
}

// WebPCommandFor returns the cwebp invocation producing the .webp sibling
// for path.
func (c *Compressor) WebPCommandFor(path string) (string, []string, string) {
	sibling := strings.TrimSuffix(path, filepath.Ext(path)) + ".webp"
	args := []string{"-quiet", "-q", fmt.Sprintf("%d", c.opts.Quality), path, "-o", sibling}
	return ToolCWebP, args, sibling
}

// CompressFile compresses one image in place and optionally generates its
// WebP sibling. Missing tools and unsupported extensions produce a skipped
// result, never an error; errors are reserved for I/O and tool failures.
func (c *Compressor) CompressFile(ctx context.Context, path string) (Result, error) {
	result := Result{Path: path}

	stat, err := os.Stat(path)
	if err != nil {
		return result, fmt.Errorf("stat %s: %w", path, err)
	}
	result.OriginalSize = stat.Size()
	result.CompressedSize = stat.Size()

	tool, args, ok := c.CommandFor(path)
	if !ok {
		result.Skipped = true
		result.SkipReason = "unsupported image type"
		return result, nil
	}

	if !c.Available(tool) {
		result.Skipped = true
		result.SkipReason = tool + " not found on PATH"
		return result, nil
	}

	result.Tool = tool
	result.Commands = append(result.Commands, commandLine(tool, args))

	if !c.opts.DryRun {
		if err := c.execute(ctx, tool, args); err != nil {
			return result, fmt.Errorf("%s %s: %w", tool, path, err)
		}
		if stat, err := os.Stat(path); err == nil {
			result.CompressedSize = stat.Size()
		}
	}

	if c.opts.GenerateWebP && c.Available(ToolCWebP) {
		webpTool, webpArgs, sibling := c.WebPCommandFor(path)
		result.Commands = append(result.Commands, commandLine(webpTool, webpArgs))
		if !c.opts.DryRun {
			if err := c.execute(ctx, webpTool, webpArgs); err != nil {
				return result, fmt.Errorf("%s %s: %w", webpTool, path, err)
			}
		}
		result.WebPPath = sibling
	}

	return result, nil
}

func (c *Compressor) execute(ctx context.Context, tool string, args []string) error {
	cmd := exec.CommandContext(ctx, tool, args...)
	cmd.Stdout = nil
	cmd.Stderr = nil
	return c.run(cmd)
}

func commandLine(tool string, args []string) string {
	return tool + " " + strings.Join(args, " ")
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
