// Package textbuild reconstructs source text from pieces of a syntax tree.
package textbuild

import (
	"fmt"
	"strings"

	"github.com/yaklabco/triviakit/pkg/syntax"
)

// Spanned is anything with a position in the tree: syntax.Node, syntax.Token,
// or syntax.Trivia read from a token.
type Spanned interface {
	FullSpan() syntax.Span
}

// Element is a Spanned value that also has a span without trivia.
type Element interface {
	Spanned
	Span() syntax.Span
}

// Builder accumulates slices of a root's text. The root's full text and span
// are captured once by New; appends slice that text by offset, so unchanged
// regions are reproduced byte for byte.
type Builder struct {
	root     syntax.Node
	fullSpan syntax.Span
	text     string
	sb       strings.Builder
}

// New returns a Builder over root.
func New(root syntax.Node) (*Builder, error) {
	if root.IsZero() {
		return nil, fmt.Errorf("%w: root node is absent", syntax.ErrInvalidArgument)
	}
	return &Builder{
		root:     root,
		fullSpan: root.FullSpan(),
		text:     root.FullString(),
	}, nil
}

// Root returns the node the builder slices from.
func (b *Builder) Root() syntax.Node {
	return b.root
}

// AppendSpan appends the text of e without its leading and trailing trivia.
func (b *Builder) AppendSpan(e Element) error {
	if err := b.check(e); err != nil {
		return err
	}
	return b.AppendTextSpan(e.Span())
}

// AppendFullSpan appends the text of e including its trivia.
func (b *Builder) AppendFullSpan(e Spanned) error {
	if err := b.check(e); err != nil {
		return err
	}
	return b.AppendTextSpan(e.FullSpan())
}

// AppendLeadingTrivia appends the trivia before e.
func (b *Builder) AppendLeadingTrivia(e Element) error {
	if err := b.check(e); err != nil {
		return err
	}
	return b.AppendTextSpan(syntax.FromBounds(e.FullSpan().Start, e.Span().Start))
}

// AppendTrailingTrivia appends the trivia after e.
func (b *Builder) AppendTrailingTrivia(e Element) error {
	if err := b.check(e); err != nil {
		return err
	}
	return b.AppendTextSpan(syntax.FromBounds(e.Span().End(), e.FullSpan().End()))
}

// AppendLeadingTriviaAndSpan appends e with its leading trivia but without
// its trailing trivia.
func (b *Builder) AppendLeadingTriviaAndSpan(e Element) error {
	if err := b.check(e); err != nil {
		return err
	}
	return b.AppendTextSpan(syntax.FromBounds(e.FullSpan().Start, e.Span().End()))
}

// AppendSpanAndTrailingTrivia appends e with its trailing trivia but without
// its leading trivia.
func (b *Builder) AppendSpanAndTrailingTrivia(e Element) error {
	if err := b.check(e); err != nil {
		return err
	}
	return b.AppendTextSpan(syntax.FromBounds(e.Span().Start, e.FullSpan().End()))
}

// AppendTextSpan appends the root text covered by span. The span must lie
// within the root's full span.
func (b *Builder) AppendTextSpan(span syntax.Span) error {
	if !b.fullSpan.Contains(span) {
		return fmt.Errorf("%w: span %s is outside the builder's root %s", syntax.ErrInvalidArgument, span, b.fullSpan)
	}
	start := span.Start - b.fullSpan.Start
	b.sb.WriteString(b.text[start : start+span.Length])
	return nil
}

// AppendString appends s verbatim.
func (b *Builder) AppendString(s string) {
	b.sb.WriteString(s)
}

// String returns the accumulated text.
func (b *Builder) String() string {
	return b.sb.String()
}

// Len returns the number of accumulated bytes.
func (b *Builder) Len() int {
	return b.sb.Len()
}

// Reset discards the accumulated text. The root is kept.
func (b *Builder) Reset() {
	b.sb.Reset()
}

func (b *Builder) check(e Spanned) error {
	if e == nil {
		return fmt.Errorf("%w: argument is nil", syntax.ErrInvalidArgument)
	}
	if !b.fullSpan.Contains(e.FullSpan()) {
		return fmt.Errorf("%w: argument is not a descendant of the builder's root", syntax.ErrInvalidArgument)
	}
	return nil
}
