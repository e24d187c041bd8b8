package runner

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/yaklabco/triviakit/pkg/fix"
	"github.com/yaklabco/triviakit/pkg/fsutil"
	"github.com/yaklabco/triviakit/pkg/langdetect"
	"github.com/yaklabco/triviakit/pkg/mdfence"
	"github.com/yaklabco/triviakit/pkg/parser/csharp"
	"github.com/yaklabco/triviakit/pkg/syntax"
)

// ErrTransform wraps errors returned by a Transform.
var ErrTransform = errors.New("transform failed")

// FileKind says how a file is rewritten.
type FileKind string

const (
	KindSource   FileKind = "source"
	KindMarkdown FileKind = "markdown"
)

// FileResult is the outcome of processing one file.
type FileResult struct {
	Path string
	Kind FileKind

	// Edits turn the original content into Modified.
	Edits []fix.TextEdit

	// Modified is the rewritten content, nil if nothing changed.
	Modified []byte

	// Diff is set when diffs were requested and the file changed.
	Diff *fix.Diff

	// Blocks and BlocksSkipped count selected Markdown code blocks and
	// those left alone because they sit inside a container.
	Blocks        int
	BlocksSkipped int

	Skipped    bool
	SkipReason string

	Written bool
}

// Changed returns true if the transform changed the file.
func (r *FileResult) Changed() bool {
	return r != nil && len(r.Edits) > 0
}

// ProcessFile reads path, applies opts.Transform, and writes the result back
// when opts.Write is set. A file modified on disk while it was processed is
// reported as skipped rather than overwritten.
func ProcessFile(ctx context.Context, path string, opts Options) (*FileResult, error) {
	if opts.Transform == nil {
		return nil, fmt.Errorf("%w: nil transform", syntax.ErrInvalidArgument)
	}

	content, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, err
	}

	result := &FileResult{Path: path, Kind: kindOf(path)}

	rel := displayPath(path, opts.WorkingDir)
	vendorPath := rel
	if filepath.IsAbs(vendorPath) {
		// Vendor patterns are relative to the project; outside it only the name counts.
		vendorPath = filepath.Base(path)
	}
	if langdetect.ShouldSkip(vendorPath, content) {
		result.Skipped = true
		result.SkipReason = "generated or vendored"
		return result, nil
	}

	switch result.Kind {
	case KindMarkdown:
		cfg := opts.config()
		rewritten, err := mdfence.Rewrite(ctx, content, mdfence.CSharp(cfg.Markdown.Languages), textTransform(opts.Transform))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		result.Edits = rewritten.Edits
		result.Blocks = rewritten.Selected
		result.BlocksSkipped = rewritten.Skipped
	default:
		root := csharp.Parse(string(content))
		out, err := opts.Transform(root)
		if err != nil {
			return nil, fmt.Errorf("%s: %w: %w", path, ErrTransform, err)
		}
		if edit, ok := fix.FromTrees(root, out); ok {
			result.Edits = []fix.TextEdit{edit}
		}
	}

	if !result.Changed() {
		return result, nil
	}

	result.Modified, err = fix.Apply(content, result.Edits)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if opts.Diff {
		result.Diff = fix.GenerateDiff(rel, content, result.Modified)
	}

	if !opts.Write {
		return result, nil
	}

	err = fsutil.WriteBack(ctx, info, result.Modified, opts.backups())
	switch {
	case errors.Is(err, fsutil.ErrModified):
		result.Skipped = true
		result.SkipReason = "file modified during processing"
		return result, nil
	case err != nil:
		return nil, err
	}
	result.Written = true
	return result, nil
}

// textTransform adapts a tree transform to Markdown block content.
func textTransform(transform Transform) mdfence.Transform {
	return func(content string) (string, error) {
		out, err := transform(csharp.Parse(content))
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrTransform, err)
		}
		return out.FullString(), nil
	}
}

func kindOf(path string) FileKind {
	ext := filepath.Ext(path)
	if slices.ContainsFunc(MarkdownExtensions(), func(e string) bool { return strings.EqualFold(e, ext) }) {
		return KindMarkdown
	}
	return KindSource
}

// displayPath makes path relative to workDir when it lies below it.
func displayPath(path, workDir string) string {
	base, err := resolveWorkDir(workDir)
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(base, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return filepath.ToSlash(rel)
}
