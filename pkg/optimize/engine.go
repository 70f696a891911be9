// Package optimize ties the rewrite engine to documents on disk: per-document
// processing and the safety pipeline that writes results back.
package optimize

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/yaklabco/mdimg/pkg/config"
	"github.com/yaklabco/mdimg/pkg/imagemeta"
	"github.com/yaklabco/mdimg/pkg/imgref"
	"github.com/yaklabco/mdimg/pkg/markdown"
)

// DocumentResult is the outcome of processing one document in memory.
type DocumentResult struct {
	// Title is the document title from frontmatter, if any.
	Title string

	// References is the number of image references found outside
	// protected ranges.
	References int

	// Optimized is the number of references whose text changed.
	Optimized int

	// Content is the reassembled document.
	Content string

	// Changed reports whether Content differs from the input.
	Changed bool

	// OptedOut is true when the document disabled optimization in its
	// frontmatter; no scan is performed in that case.
	OptedOut bool
}

// Engine processes one document at a time. It is stateless and safe for
// concurrent use; each call operates only on its arguments.
type Engine struct{}

// NewEngine creates a document engine.
func NewEngine() *Engine {
	return &Engine{}
}

// ProcessDocument scans content for image references, rewrites them per cfg,
// and reassembles the document. The path is used only to resolve relative
// image paths for dimension probing and never read from disk here.
//
// References inside code fences and code spans are literal text and are left
// untouched. Documents with optimize_images: false frontmatter pass through
// unchanged.
func (e *Engine) ProcessDocument(
	ctx context.Context,
	path string,
	content []byte,
	cfg *config.Config,
) (*DocumentResult, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("process document: %w", ctx.Err())
	default:
	}

	doc := string(content)
	result := &DocumentResult{Content: doc}

	// Frontmatter is advisory: a malformed block never aborts processing.
	meta, err := markdown.ParseMeta(content)
	if err == nil {
		result.Title = meta.Title
		if meta.OptedOut() {
			result.OptedOut = true
			return result, nil
		}
	}

	refs := imgref.Scan(doc)
	if len(refs) == 0 {
		return result, nil
	}

	protected := markdown.ProtectedRanges(content)
	refs = dropProtected(refs, protected)
	result.References = len(refs)
	if len(refs) == 0 {
		return result, nil
	}

	var prober imgref.DimensionProber
	if cfg.Dimensions {
		prober = &imagemeta.DirProber{Dir: filepath.Dir(path)}
	}

	rewriter := imgref.NewRewriter(cfg.RewriteOptions(), prober)
	results := make([]string, len(refs))
	for i, ref := range refs {
		results[i] = rewriter.Rewrite(ref)
	}

	newDoc, optimized := imgref.Assemble(doc, refs, results)
	result.Content = newDoc
	result.Optimized = optimized
	result.Changed = newDoc != doc

	return result, nil
}

// dropProtected removes references whose span starts inside a protected
// range.
func dropProtected(refs []imgref.Reference, ranges []markdown.Range) []imgref.Reference {
	if len(ranges) == 0 {
		return refs
	}
	kept := refs[:0]
	for _, ref := range refs {
		if !markdown.Protected(ranges, ref.Offset) {
			kept = append(kept, ref)
		}
	}
	return kept
}
