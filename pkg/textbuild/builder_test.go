package textbuild_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/triviakit/pkg/parser/csharp"
	"github.com/yaklabco/triviakit/pkg/syntax"
	"github.com/yaklabco/triviakit/pkg/textbuild"
)

const source = "x; f(\n  /* a */ first, second // b\n);\n"

func setup(t *testing.T) (syntax.Node, syntax.SeparatedList) {
	t.Helper()

	root := csharp.Parse(source)
	found := syntax.FindFirst(root, func(e syntax.Element) bool { return e.Kind().IsList() })
	require.NotNil(t, found)
	list, ok := syntax.AsSeparatedList(found.(syntax.Node))
	require.True(t, ok)
	return root, list
}

func TestBuilder_Appends(t *testing.T) {
	t.Parallel()

	root, list := setup(t)
	first := list.Element(0)
	second := list.Element(1)

	tests := []struct {
		name   string
		append func(b *textbuild.Builder) error
		want   string
	}{
		{"span", func(b *textbuild.Builder) error { return b.AppendSpan(first) }, "first"},
		{"full span", func(b *textbuild.Builder) error { return b.AppendFullSpan(first) }, "  /* a */ first"},
		{"leading trivia", func(b *textbuild.Builder) error { return b.AppendLeadingTrivia(first) }, "  /* a */ "},
		{"trailing trivia", func(b *textbuild.Builder) error { return b.AppendTrailingTrivia(second) }, " // b\n"},
		{"leading and span", func(b *textbuild.Builder) error { return b.AppendLeadingTriviaAndSpan(first) }, "  /* a */ first"},
		{"span and trailing", func(b *textbuild.Builder) error { return b.AppendSpanAndTrailingTrivia(second) }, "second // b\n"},
		{"text span", func(b *textbuild.Builder) error { return b.AppendTextSpan(syntax.NewSpan(0, 2)) }, "x;"},
		{"whole root", func(b *textbuild.Builder) error { return b.AppendFullSpan(root) }, source},
		{"list", func(b *textbuild.Builder) error { return b.AppendSpan(list.Node()) }, "(\n  /* a */ first, second // b\n)"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			builder, err := textbuild.New(root)
			require.NoError(t, err)
			require.NoError(t, testCase.append(builder))
			assert.Equal(t, testCase.want, builder.String())
			assert.Equal(t, len(testCase.want), builder.Len())
		})
	}
}

func TestBuilder_Trivia(t *testing.T) {
	t.Parallel()

	root, list := setup(t)
	leading := list.Element(0).LeadingTrivia()
	require.Len(t, leading, 3)

	builder, err := textbuild.New(root)
	require.NoError(t, err)
	require.NoError(t, builder.AppendFullSpan(leading[1]))
	builder.AppendString("!")
	assert.Equal(t, "/* a */!", builder.String())

	builder.Reset()
	assert.Equal(t, 0, builder.Len())
	assert.Empty(t, builder.String())
}

func TestBuilder_RejectsOutsideArguments(t *testing.T) {
	t.Parallel()

	root, list := setup(t)

	// A builder rooted at the list must refuse the rest of the tree.
	builder, err := textbuild.New(list.Node())
	require.NoError(t, err)

	outside := root.Tokens()[0] // "x"
	require.ErrorIs(t, builder.AppendSpan(outside), syntax.ErrInvalidArgument)
	require.ErrorIs(t, builder.AppendFullSpan(root), syntax.ErrInvalidArgument)
	require.ErrorIs(t, builder.AppendTextSpan(syntax.NewSpan(0, 1)), syntax.ErrInvalidArgument)
	assert.Equal(t, 0, builder.Len())

	require.NoError(t, builder.AppendSpan(list.Element(1)))
	assert.Equal(t, "second", builder.String())

	builder.AppendString(" unchecked")
	assert.Equal(t, "second unchecked", builder.String())
}

func TestNew_ZeroRoot(t *testing.T) {
	t.Parallel()

	_, err := textbuild.New(syntax.Node{})
	require.ErrorIs(t, err, syntax.ErrInvalidArgument)
}

func TestBuilder_ReassemblesTokens(t *testing.T) {
	t.Parallel()

	root := csharp.Parse(source)
	builder, err := textbuild.New(root)
	require.NoError(t, err)

	for _, tok := range root.Tokens() {
		require.NoError(t, builder.AppendFullSpan(tok))
	}
	assert.Equal(t, source, builder.String())
}
