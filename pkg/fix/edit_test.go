package fix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/triviakit/pkg/fix"
	"github.com/yaklabco/triviakit/pkg/parser/csharp"
	"github.com/yaklabco/triviakit/pkg/rewrite"
)

func TestFromRewrite(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		oldText string
		newText string
		want    fix.TextEdit
	}{
		{
			name:    "identical",
			oldText: "abc",
			newText: "abc",
			want:    fix.TextEdit{StartOffset: 3, EndOffset: 3},
		},
		{
			name:    "middle deletion",
			oldText: "int x; // c\n",
			newText: "int x; \n",
			want:    fix.TextEdit{StartOffset: 7, EndOffset: 11},
		},
		{
			name:    "insertion",
			oldText: "a(1, , 3)",
			newText: "a(1, x, 3)",
			want:    fix.TextEdit{StartOffset: 5, EndOffset: 5, NewText: "x"},
		},
		{
			name:    "repeated characters",
			oldText: "aaa",
			newText: "aa",
			want:    fix.TextEdit{StartOffset: 2, EndOffset: 3},
		},
		{
			name:    "from empty",
			oldText: "",
			newText: "x",
			want:    fix.TextEdit{StartOffset: 0, EndOffset: 0, NewText: "x"},
		},
		{
			name:    "to empty",
			oldText: "xy",
			newText: "",
			want:    fix.TextEdit{StartOffset: 0, EndOffset: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			edit := fix.FromRewrite(tt.oldText, tt.newText)
			assert.Equal(t, tt.want, edit)

			out, err := fix.Apply([]byte(tt.oldText), []fix.TextEdit{edit})
			require.NoError(t, err)
			assert.Equal(t, tt.newText, string(out))
		})
	}
}

func TestFromTrees(t *testing.T) {
	t.Parallel()

	src := "int x = 1; // comment\nint y = 2;"
	root := csharp.Parse(src)

	stripped, err := rewrite.RemoveTrivia(root, rewrite.All)
	require.NoError(t, err)

	edit, changed := fix.FromTrees(root, stripped)
	require.True(t, changed)
	assert.Equal(t, fix.TextEdit{StartOffset: 11, EndOffset: 21}, edit)

	_, changed = fix.FromTrees(root, root)
	assert.False(t, changed)
}

func TestTextEditShift(t *testing.T) {
	t.Parallel()

	edit := fix.TextEdit{StartOffset: 2, EndOffset: 4, NewText: "z"}
	assert.Equal(t, fix.TextEdit{StartOffset: 12, EndOffset: 14, NewText: "z"}, edit.Shift(10))
	assert.False(t, edit.IsNoop())
	assert.True(t, fix.TextEdit{StartOffset: 3, EndOffset: 3}.IsNoop())
}

func TestEditBuilder(t *testing.T) {
	t.Parallel()

	builder := fix.NewEditBuilder()
	builder.ReplaceRange(0, 1, "A")
	builder.Add(fix.TextEdit{StartOffset: 2, EndOffset: 2})
	builder.Add(fix.TextEdit{StartOffset: 2, EndOffset: 3})
	assert.Equal(t, 2, builder.Len())

	out, err := fix.Apply([]byte("abc"), builder.Edits)
	require.NoError(t, err)
	assert.Equal(t, "Ab", string(out))
}
