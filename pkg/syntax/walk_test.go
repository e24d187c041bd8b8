package syntax_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/triviakit/pkg/parser/csharp"
	"github.com/yaklabco/triviakit/pkg/syntax"
)

func TestWalk_PreOrderAndStop(t *testing.T) {
	t.Parallel()

	root := csharp.Parse("f(a)")

	var kinds []syntax.Kind
	err := syntax.Walk(root, func(e syntax.Element) error {
		kinds = append(kinds, e.Kind())
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []syntax.Kind{
		syntax.KindCompilationUnit,
		syntax.KindIdentifier,
		syntax.KindArgumentList,
		syntax.KindOpenParen,
		syntax.KindListElement,
		syntax.KindIdentifier,
		syntax.KindCloseParen,
		syntax.KindEndOfFile,
	}, kinds)

	errBoom := errors.New("boom")
	visited := 0
	err = syntax.Walk(root, func(syntax.Element) error {
		visited++
		if visited == 3 {
			return errBoom
		}
		return nil
	})
	require.ErrorIs(t, err, errBoom)
	assert.Equal(t, 3, visited)
}

func TestFindToken(t *testing.T) {
	t.Parallel()

	src := "a  (b) // c\n"
	root := csharp.Parse(src)

	tests := []struct {
		offset int
		want   string
	}{
		{0, "a"},
		{2, "a"},
		{3, "("},
		{4, "b"},
		{8, ")"},
		{len(src), ""},
	}

	for _, testCase := range tests {
		tok, ok := syntax.FindToken(root, testCase.offset)
		require.True(t, ok, "offset %d", testCase.offset)
		assert.Equal(t, testCase.want, tok.Text(), "offset %d", testCase.offset)
	}

	_, ok := syntax.FindToken(root, len(src)+1)
	assert.False(t, ok)
}

func TestFindInnermost(t *testing.T) {
	t.Parallel()

	root := csharp.Parse("f(g(1, 2), 3)")

	inner, ok := syntax.FindInnermost(root, syntax.NewSpan(5, 1), func(n syntax.Node) bool {
		return n.Kind().IsList()
	})
	require.True(t, ok)
	assert.Equal(t, "(1, 2)", inner.String())

	outer, ok := syntax.FindInnermost(root, syntax.NewSpan(11, 1), func(n syntax.Node) bool {
		return n.Kind().IsList()
	})
	require.True(t, ok)
	assert.Equal(t, "(g(1, 2), 3)", outer.String())

	_, ok = syntax.FindInnermost(root, syntax.NewSpan(0, 1), func(n syntax.Node) bool {
		return n.Kind().IsList()
	})
	assert.False(t, ok)
}

func TestReplaceNode(t *testing.T) {
	t.Parallel()

	root := csharp.Parse("f(a); g(b);")
	lists := syntax.FindAll(root, func(e syntax.Element) bool { return e.Kind().IsList() })
	require.Len(t, lists, 2)

	replacement := csharp.Parse("(x, y)").ChildNodes()[0]
	updated := syntax.ReplaceNode(root, lists[1].(syntax.Node), replacement)
	assert.Equal(t, "f(a); g(x, y);", updated.FullString())

	same := syntax.ReplaceNode(root, root, replacement)
	assert.Equal(t, "(x, y)", same.FullString())
}

func TestDescendantTrivia(t *testing.T) {
	t.Parallel()

	root := csharp.Parse("a; // x\n/* y */ b;")
	var texts []string
	for _, tr := range syntax.DescendantTrivia(root) {
		texts = append(texts, tr.Text)
	}
	assert.Equal(t, []string{" ", "// x", "\n", "/* y */", " "}, texts)
}

func TestDetermineEndOfLine(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "\r\n", syntax.DetermineEndOfLine(csharp.Parse("a;\r\nb;\n"), syntax.Trivia{}).Text)
	assert.Equal(t, "\n", syntax.DetermineEndOfLine(csharp.Parse("a;"), syntax.Trivia{}).Text)
	assert.Equal(t, "\r", syntax.DetermineEndOfLine(csharp.Parse("a;"), syntax.EndOfLine("\r")).Text)
}

func TestIsExteriorTriviaEmptyOrWhitespace(t *testing.T) {
	t.Parallel()

	plain := csharp.Parse("  a; \n")
	commented := csharp.Parse("// c\na;")

	assert.True(t, syntax.IsExteriorTriviaEmptyOrWhitespace(plain))
	assert.False(t, syntax.IsExteriorTriviaEmptyOrWhitespace(commented))
}
