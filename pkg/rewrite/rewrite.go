// Package rewrite removes and replaces trivia inside a span of a syntax tree.
//
// Every function returns a new tree and leaves its input untouched. Trivia
// are never deleted from a token: a removed trivia becomes empty whitespace,
// so token and trivia counts are stable and a second pass is a no-op.
// Subtrees that contain no affected trivia are shared with the input.
//
// Only trivia whose span lies entirely inside the target span are touched.
package rewrite

import (
	"fmt"

	"github.com/yaklabco/triviakit/pkg/syntax"
)

// Rewrite replaces every trivia inside span for which shouldRemove returns
// true with empty whitespace.
//
// When a removed single-line comment occupied a line of its own, the line
// break that ended it is removed too, together with the comment's
// indentation, so no blank line is left behind. A comment that follows code
// on the same line, or that sits on the first line of the tree, keeps its
// line break.
func Rewrite(root syntax.Node, span syntax.Span, shouldRemove func(syntax.Trivia) bool) (syntax.Node, error) {
	if err := check(root); err != nil {
		return root, err
	}
	if shouldRemove == nil {
		return root, fmt.Errorf("%w: nil trivia predicate", syntax.ErrInvalidArgument)
	}

	return run(root, rule{
		span: span,
		replace: func(t syntax.Trivia) (syntax.Trivia, bool) {
			if !shouldRemove(t) {
				return syntax.Trivia{}, false
			}
			return syntax.EmptyWhitespace(), true
		},
		collapseCommentLines: true,
	}), nil
}

// ReplaceTrivia substitutes trivia inside span. replace returns the new
// trivia and true, or false to keep the original. No line breaks are
// removed implicitly.
func ReplaceTrivia(
	root syntax.Node,
	span syntax.Span,
	replace func(syntax.Trivia) (syntax.Trivia, bool),
) (syntax.Node, error) {
	if err := check(root); err != nil {
		return root, err
	}
	if replace == nil {
		return root, fmt.Errorf("%w: nil trivia replacer", syntax.ErrInvalidArgument)
	}

	return run(root, rule{span: span, replace: replace}), nil
}

// RemoveTrivia removes the comments selected by opts from the whole tree.
func RemoveTrivia(root syntax.Node, opts RemoveOptions) (syntax.Node, error) {
	return RemoveTriviaIn(root, opts, root.FullSpan())
}

// RemoveTriviaIn removes the comments selected by opts inside span.
func RemoveTriviaIn(root syntax.Node, opts RemoveOptions, span syntax.Span) (syntax.Node, error) {
	return Rewrite(root, span, func(t syntax.Trivia) bool {
		return opts.Matches(t.Kind)
	})
}

// RemoveAllTrivia removes every trivia inside span: whitespace, line breaks,
// comments, and directives.
func RemoveAllTrivia(root syntax.Node, span syntax.Span) (syntax.Node, error) {
	return Rewrite(root, span, func(syntax.Trivia) bool { return true })
}

// RemoveWhitespace removes all whitespace and line breaks from the tree.
func RemoveWhitespace(root syntax.Node) (syntax.Node, error) {
	return RemoveWhitespaceIn(root, root.FullSpan())
}

// RemoveWhitespaceIn removes whitespace and line breaks inside span.
func RemoveWhitespaceIn(root syntax.Node, span syntax.Span) (syntax.Node, error) {
	return ReplaceWhitespaceIn(root, syntax.EmptyWhitespace(), span)
}

// ReplaceWhitespace replaces each whitespace and line-break trivia in the tree
// with replacement.
func ReplaceWhitespace(root syntax.Node, replacement syntax.Trivia) (syntax.Node, error) {
	return ReplaceWhitespaceIn(root, replacement, root.FullSpan())
}

// ReplaceWhitespaceIn replaces each whitespace and line-break trivia inside
// span with replacement.
func ReplaceWhitespaceIn(root syntax.Node, replacement syntax.Trivia, span syntax.Span) (syntax.Node, error) {
	return ReplaceTrivia(root, span, func(t syntax.Trivia) (syntax.Trivia, bool) {
		if !t.Kind.IsWhitespaceOrEndOfLine() {
			return syntax.Trivia{}, false
		}
		return replacement, true
	})
}

func check(root syntax.Node) error {
	if root.IsZero() {
		return fmt.Errorf("%w: root node is absent", syntax.ErrInvalidArgument)
	}
	return nil
}
