package rewrite

import (
	"github.com/yaklabco/triviakit/pkg/syntax"
)

// RemoveLeadingDocComment strips the block of single-line documentation
// comments ("///" lines) that directly precedes node, along with the line
// breaks and indentation that follow it. Whatever comes before the block,
// typically the indentation of its first line, is kept, so the node takes the
// block's place. A node without such a block is returned unchanged.
func RemoveLeadingDocComment(node syntax.Node) (syntax.Node, error) {
	if err := check(node); err != nil {
		return node, err
	}

	leading := node.LeadingTrivia()

	last := len(leading) - 1
	for last >= 0 && leading[last].Kind.IsWhitespaceOrEndOfLine() {
		last--
	}
	if last < 0 || leading[last].Kind != syntax.TriviaSingleLineDocComment {
		return node, nil
	}

	// Extend the block upward while the previous line is also a doc comment.
	first := last
	for {
		prev := first - 1
		if prev >= 0 && leading[prev].Kind == syntax.TriviaWhitespace {
			prev--
		}
		if prev < 0 || leading[prev].Kind != syntax.TriviaEndOfLine {
			break
		}
		prev--
		if prev < 0 || leading[prev].Kind != syntax.TriviaSingleLineDocComment {
			break
		}
		first = prev
	}

	return node.WithLeadingTrivia(leading[:first]...), nil
}
