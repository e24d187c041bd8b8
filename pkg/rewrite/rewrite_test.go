package rewrite_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/triviakit/pkg/parser/csharp"
	"github.com/yaklabco/triviakit/pkg/rewrite"
	"github.com/yaklabco/triviakit/pkg/syntax"
)

func TestRemoveTrivia(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		opts rewrite.RemoveOptions
		want string
	}{
		{
			name: "trailing comment keeps line break",
			src:  "int x = 1; // comment\nint y = 2;",
			opts: rewrite.All,
			want: "int x = 1; \nint y = 2;",
		},
		{
			name: "own-line comment takes its line",
			src:  "a;\n    // c\n    b;",
			opts: rewrite.All,
			want: "a;\n    b;",
		},
		{
			name: "consecutive own-line comments",
			src:  "a;\n// one\n// two\nb;",
			opts: rewrite.All,
			want: "a;\nb;",
		},
		{
			name: "comment on first line keeps line break",
			src:  "// c\nint x;",
			opts: rewrite.All,
			want: "\nint x;",
		},
		{
			name: "documentation only",
			src:  "x;\n/// doc\n// plain\nvoid M();",
			opts: rewrite.Documentation,
			want: "x;\n// plain\nvoid M();",
		},
		{
			name: "all except documentation",
			src:  "x;\n/// doc\n// plain\nvoid M();",
			opts: rewrite.AllExceptDocumentation,
			want: "x;\n/// doc\nvoid M();",
		},
		{
			name: "multi-line only",
			src:  "a /* b */ c // d\n",
			opts: rewrite.MultiLine,
			want: "a  c // d\n",
		},
		{
			name: "multi-line doc comment",
			src:  "/** doc */ void M();",
			opts: rewrite.MultiLineDocumentation,
			want: " void M();",
		},
		{
			name: "own-line block comment keeps its line break",
			src:  "a;\n/* c */\nb;",
			opts: rewrite.All,
			want: "a;\n\nb;",
		},
		{
			name: "directives are not comments",
			src:  "#if DEBUG\nx; // c\n#endif\n",
			opts: rewrite.All,
			want: "#if DEBUG\nx; \n#endif\n",
		},
		{
			name: "crlf",
			src:  "a;\r\n  // c\r\n  b;\r\n",
			opts: rewrite.SingleLine,
			want: "a;\r\n  b;\r\n",
		},
		{
			name: "none",
			src:  "a; // c\n",
			opts: rewrite.None,
			want: "a; // c\n",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			root := csharp.Parse(testCase.src)
			got, err := rewrite.RemoveTrivia(root, testCase.opts)
			require.NoError(t, err)
			assert.Equal(t, testCase.want, got.FullString())
			assert.Equal(t, testCase.src, root.FullString(), "input tree must not change")
		})
	}
}

func TestRemoveTriviaIn_Containment(t *testing.T) {
	t.Parallel()

	src := "f(/* a */ x, /* b */ y)"
	root := csharp.Parse(src)

	got, err := rewrite.RemoveTriviaIn(root, rewrite.All, syntax.FromBounds(0, 10))
	require.NoError(t, err)
	assert.Equal(t, "f( x, /* b */ y)", got.FullString())

	// A span that only partially covers a comment removes nothing.
	got, err = rewrite.RemoveTriviaIn(root, rewrite.All, syntax.FromBounds(0, 5))
	require.NoError(t, err)
	assert.Equal(t, src, got.FullString())
	assert.True(t, syntax.Same(root, got))
}

func TestRemoveTriviaIn_TriviaOutsideSpanUnchanged(t *testing.T) {
	t.Parallel()

	src := "a; // one\n// two\nb; /* three */ c; // four\n"
	root := csharp.Parse(src)
	original := syntax.DescendantTrivia(root)

	for start := 0; start <= len(src); start += 3 {
		for end := start; end <= len(src); end += 5 {
			span := syntax.FromBounds(start, end)
			got, err := rewrite.RemoveTriviaIn(root, rewrite.All, span)
			require.NoError(t, err)

			rewritten := syntax.DescendantTrivia(got)
			require.Len(t, rewritten, len(original))
			for i, tr := range original {
				if !span.Contains(tr.Span) {
					assert.Equal(t, tr.Text, rewritten[i].Text, "span %s trivia %d", span, i)
				}
			}
		}
	}
}

func TestRemoveTrivia_Idempotent(t *testing.T) {
	t.Parallel()

	sources := []string{
		"int x = 1; // comment\nint y = 2;",
		"a;\n    // c\n    b;",
		"/// doc\nvoid M() { /* x */ }\n",
		"f(a, // first\n  b);\n",
	}

	for _, src := range sources {
		once, err := rewrite.RemoveTrivia(csharp.Parse(src), rewrite.All)
		require.NoError(t, err)
		twice, err := rewrite.RemoveTrivia(once, rewrite.All)
		require.NoError(t, err)

		assert.Equal(t, once.FullString(), twice.FullString())
		assert.True(t, syntax.Same(once, twice), "second pass should share the whole tree for %q", src)
	}
}

func TestRemoveTrivia_RoundTripWhenNothingMatches(t *testing.T) {
	t.Parallel()

	root := csharp.Parse("int x = 1;\nint y = 2;\n")
	got, err := rewrite.RemoveTrivia(root, rewrite.All)
	require.NoError(t, err)
	assert.True(t, syntax.Same(root, got))
	assert.Equal(t, root.FullString(), got.FullString())
}

func TestRemoveTrivia_SharesUntouchedSubtrees(t *testing.T) {
	t.Parallel()

	root := csharp.Parse("f(a /* x */); g(b);")
	got, err := rewrite.RemoveTrivia(root, rewrite.All)
	require.NoError(t, err)
	assert.Equal(t, "f(a ); g(b);", got.FullString())

	isList := func(e syntax.Element) bool { return e.Kind().IsList() }
	before := syntax.FindAll(root, isList)
	after := syntax.FindAll(got, isList)
	require.Len(t, after, 2)
	assert.False(t, syntax.Same(before[0], after[0]))
	assert.True(t, syntax.Same(before[1], after[1]))
}

func TestRemoveTrivia_Subtree(t *testing.T) {
	t.Parallel()

	root := csharp.Parse("x; f(a /* x */, b);")
	list := syntax.FindAll(root, func(e syntax.Element) bool { return e.Kind().IsList() })[0].(syntax.Node)

	got, err := rewrite.RemoveTrivia(list, rewrite.All)
	require.NoError(t, err)
	assert.Equal(t, "(a , b)", got.FullString())
	assert.Equal(t, list.FullSpan().Start, got.FullSpan().Start)
}

func TestRewrite_InvalidArguments(t *testing.T) {
	t.Parallel()

	_, err := rewrite.Rewrite(syntax.Node{}, syntax.NewSpan(0, 1), func(syntax.Trivia) bool { return true })
	require.ErrorIs(t, err, syntax.ErrInvalidArgument)

	_, err = rewrite.Rewrite(csharp.Parse("a"), syntax.NewSpan(0, 1), nil)
	require.ErrorIs(t, err, syntax.ErrInvalidArgument)

	_, err = rewrite.RemoveWhitespace(syntax.Node{})
	require.ErrorIs(t, err, syntax.ErrInvalidArgument)
}

func TestRewrite_SpanOutsideTree(t *testing.T) {
	t.Parallel()

	root := csharp.Parse("a; // c\n")
	got, err := rewrite.RemoveTriviaIn(root, rewrite.All, syntax.NewSpan(100, 5))
	require.NoError(t, err)
	assert.True(t, syntax.Same(root, got))
}

func TestRewrite_CustomPredicate(t *testing.T) {
	t.Parallel()

	root := csharp.Parse("a; // TODO: x\nb; // keep\n")
	got, err := rewrite.Rewrite(root, root.FullSpan(), func(tr syntax.Trivia) bool {
		return strings.Contains(tr.Text, "TODO")
	})
	require.NoError(t, err)
	assert.Equal(t, "a; \nb; // keep\n", got.FullString())
}

func TestRemoveAllTrivia(t *testing.T) {
	t.Parallel()

	root := csharp.Parse("a /*x*/\n  b")
	got, err := rewrite.RemoveAllTrivia(root, root.FullSpan())
	require.NoError(t, err)
	assert.Equal(t, "ab", got.FullString())
}

func TestRemoveWhitespace(t *testing.T) {
	t.Parallel()

	root := csharp.Parse("f( a , b ) // c\n")
	got, err := rewrite.RemoveWhitespace(root)
	require.NoError(t, err)
	assert.Equal(t, "f(a,b)// c", got.FullString())

	got, err = rewrite.RemoveWhitespaceIn(root, syntax.FromBounds(0, 5))
	require.NoError(t, err)
	assert.Equal(t, "f(a, b ) // c\n", got.FullString())
}

func TestReplaceWhitespace(t *testing.T) {
	t.Parallel()

	root := csharp.Parse("a\t\tb\n")
	got, err := rewrite.ReplaceWhitespace(root, syntax.Whitespace(" "))
	require.NoError(t, err)
	assert.Equal(t, "a b ", got.FullString())

	again, err := rewrite.ReplaceWhitespace(got, syntax.Whitespace(" "))
	require.NoError(t, err)
	assert.True(t, syntax.Same(got, again))
}

func TestReplaceTrivia(t *testing.T) {
	t.Parallel()

	root := csharp.Parse("a; // old\n")
	got, err := rewrite.ReplaceTrivia(root, root.FullSpan(), func(tr syntax.Trivia) (syntax.Trivia, bool) {
		if tr.Kind != syntax.TriviaSingleLineComment {
			return syntax.Trivia{}, false
		}
		return syntax.NewTrivia("// new"), true
	})
	require.NoError(t, err)
	assert.Equal(t, "a; // new\n", got.FullString())

	_, err = rewrite.ReplaceTrivia(root, root.FullSpan(), nil)
	require.ErrorIs(t, err, syntax.ErrInvalidArgument)
}

func TestRemoveTrivia_Concurrent(t *testing.T) {
	t.Parallel()

	root := csharp.Parse("a;\n    // c\n    b; /* d */ c;\n")
	want := "a;\n    b;  c;\n"

	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got, err := rewrite.RemoveTrivia(root, rewrite.All)
			if err == nil {
				results[i] = got.FullString()
			}
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}
