// Package mdfence finds fenced code blocks in Markdown and rewrites the C#
// ones in place, leaving every byte outside the selected blocks untouched.
package mdfence

import (
	"context"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/triviakit/pkg/fix"
	"github.com/yaklabco/triviakit/pkg/langdetect"
	"github.com/yaklabco/triviakit/pkg/syntax"
)

// Block is a fenced code block.
type Block struct {
	// Info is the fence info string, e.g. "csharp title=a.cs".
	Info string

	// Span covers the block's content lines, fences excluded.
	Span syntax.Span

	// Content is the source text of Span.
	Content string

	// Contiguous is false when the block sits inside a container such as a
	// blockquote, so its content lines are interleaved with container
	// markers. Such blocks are reported but never rewritten.
	Contiguous bool
}

// Selector decides whether a block is rewritten.
type Selector func(b Block) bool

// Transform rewrites a block's content.
type Transform func(content string) (string, error)

// Find returns the fenced code blocks of a Markdown document in order.
func Find(source []byte) []Block {
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(source))

	var blocks []Block
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		fenced, ok := n.(*ast.FencedCodeBlock)
		if !ok || !entering {
			return ast.WalkContinue, nil
		}
		blocks = append(blocks, blockOf(fenced, source))
		return ast.WalkSkipChildren, nil
	})
	return blocks
}

func blockOf(fenced *ast.FencedCodeBlock, source []byte) Block {
	block := Block{Contiguous: !nested(fenced)}
	if fenced.Info != nil {
		block.Info = strings.TrimSpace(string(fenced.Info.Value(source)))
	}

	lines := fenced.Lines()
	if lines.Len() == 0 {
		return block
	}

	start, end := lines.At(0).Start, lines.At(0).Stop
	var sb strings.Builder
	for i := range lines.Len() {
		segment := lines.At(i)
		if (i > 0 && segment.Start != end) || segment.Padding > 0 {
			block.Contiguous = false
		}
		sb.Write(segment.Value(source))
		end = segment.Stop
	}

	block.Span = syntax.FromBounds(start, end)
	block.Content = sb.String()
	return block
}

// nested returns true if n sits inside a container block such as a
// blockquote or list item.
func nested(n ast.Node) bool {
	for p := n.Parent(); p != nil; p = p.Parent() {
		if p.Kind() != ast.KindDocument {
			return true
		}
	}
	return false
}

// CSharp selects blocks whose fence language is one of languages or a C#
// alias known to go-enry. Unlabelled fences are selected when their content
// looks like C#.
func CSharp(languages []string) Selector {
	return func(b Block) bool {
		lang := langdetect.FenceLanguage(b.Info)
		if lang == "" {
			return langdetect.IsCSharp([]byte(b.Content))
		}
		for _, want := range languages {
			if strings.EqualFold(want, lang) {
				return true
			}
		}
		return langdetect.IsCSharpAlias(lang)
	}
}

// Result summarises a rewrite.
type Result struct {
	// Edits apply to the Markdown source and are sorted.
	Edits []fix.TextEdit

	// Selected counts the blocks the selector accepted.
	Selected int

	// Skipped counts selected blocks that could not be rewritten in place.
	Skipped int
}

// Rewrite applies transform to every selected block and returns the edits
// that carry the changes into source.
func Rewrite(ctx context.Context, source []byte, selectBlock Selector, transform Transform) (Result, error) {
	var result Result
	builder := fix.NewEditBuilder()

	for _, block := range Find(source) {
		if err := ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("rewrite fences: %w", err)
		}
		if !selectBlock(block) {
			continue
		}
		result.Selected++
		if !block.Contiguous {
			result.Skipped++
			continue
		}

		rewritten, err := transform(block.Content)
		if err != nil {
			return Result{}, fmt.Errorf("rewrite block at offset %d: %w", block.Span.Start, err)
		}
		builder.Add(fix.FromRewrite(block.Content, rewritten).Shift(block.Span.Start))
	}

	result.Edits = builder.Edits
	return result, nil
}
