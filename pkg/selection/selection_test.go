package selection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/triviakit/pkg/parser/csharp"
	"github.com/yaklabco/triviakit/pkg/selection"
	"github.com/yaklabco/triviakit/pkg/syntax"
	"github.com/yaklabco/triviakit/pkg/text"
)

func TestLines(t *testing.T) {
	t.Parallel()

	lines := text.BuildLines("aa\nbb\ncc")

	tests := []struct {
		name  string
		span  syntax.Span
		first int
		last  int
	}{
		{"one line content", syntax.FromBounds(0, 2), 0, 0},
		{"one line with break", syntax.FromBounds(0, 3), 0, 0},
		{"two lines", syntax.FromBounds(0, 5), 0, 1},
		{"last two lines", syntax.FromBounds(3, 8), 1, 2},
		{"all lines with break", syntax.FromBounds(0, 8), 0, 2},
		{"starts mid-line", syntax.FromBounds(1, 2), -1, -1},
		{"ends mid-line", syntax.FromBounds(0, 4), -1, -1},
		{"past the end", syntax.FromBounds(9, 10), -1, -1},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			sel := selection.Lines(lines, testCase.span)
			assert.Equal(t, testCase.first, sel.FirstIndex)
			assert.Equal(t, testCase.last, sel.LastIndex)
			assert.Equal(t, testCase.span, sel.OriginalSpan)

			if testCase.first < 0 {
				assert.False(t, sel.Any())
				assert.Equal(t, 0, sel.Count())
				assert.Empty(t, sel.Items())
				return
			}
			assert.True(t, sel.Any())
			assert.Equal(t, testCase.last-testCase.first+1, sel.Count())
			assert.Equal(t, lines[testCase.first], sel.First())
			assert.Equal(t, lines[testCase.last], sel.Last())
		})
	}
}

func TestLines_AlignedWithLineBoundaries(t *testing.T) {
	t.Parallel()

	src := "one\r\ntwo\n\nfour\rfive"
	lines := text.BuildLines(src)

	for start := 0; start <= len(src); start++ {
		for end := start; end <= len(src); end++ {
			sel := selection.Lines(lines, syntax.FromBounds(start, end))
			if !sel.Any() {
				continue
			}
			assert.Equal(t, start, sel.First().Start, "span [%d..%d)", start, end)
			last := sel.Last()
			assert.True(t, end == last.End || end == last.EndIncludingLineBreak, "span [%d..%d)", start, end)
		}
	}
}

func TestLinesInRange(t *testing.T) {
	t.Parallel()

	lines := text.BuildLines("aa\nbb\ncc")

	sel, err := selection.LinesInRange(lines, syntax.FromBounds(0, 5), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, sel.Count())

	sel, err = selection.LinesInRange(lines, syntax.FromBounds(0, 5), 1, 1)
	require.NoError(t, err)
	assert.False(t, sel.Any())

	sel, err = selection.LinesInRange(lines, syntax.NewSpan(0, 0), 1, 3)
	require.NoError(t, err)
	assert.False(t, sel.Any())

	_, err = selection.LinesInRange(lines, syntax.FromBounds(0, 5), 0, 2)
	require.ErrorIs(t, err, syntax.ErrInvalidArgument)

	_, err = selection.LinesInRange(lines, syntax.FromBounds(0, 5), 3, 2)
	require.ErrorIs(t, err, syntax.ErrInvalidArgument)
}

func TestSelection_EmptyPanics(t *testing.T) {
	t.Parallel()

	sel := selection.Lines(text.BuildLines("abc"), syntax.FromBounds(1, 2))
	require.False(t, sel.Any())

	assert.Panics(t, func() { sel.First() })
	assert.Panics(t, func() { sel.Last() })
	assert.Panics(t, func() { sel.At(0) })

	visited := 0
	for range sel.All() {
		visited++
	}
	assert.Equal(t, 0, visited)
}

func TestSelection_All(t *testing.T) {
	t.Parallel()

	lines := text.BuildLines("a\nb\nc\nd")
	sel := selection.Lines(lines, syntax.FromBounds(2, 5))
	require.Equal(t, 2, sel.Count())

	var starts []int
	for i, line := range sel.All() {
		assert.Equal(t, sel.At(i), line)
		starts = append(starts, line.Start)
	}
	assert.Equal(t, []int{2, 4}, starts)
	assert.Len(t, sel.Items(), 2)
}

func TestElements(t *testing.T) {
	t.Parallel()

	root := csharp.Parse("f(a, b, c)")
	list, ok := syntax.AsSeparatedList(root.ChildNodes()[0])
	require.True(t, ok)

	tests := []struct {
		name  string
		span  syntax.Span
		first int
		last  int
	}{
		{"single element", syntax.FromBounds(2, 3), 0, 0},
		{"element and separator", syntax.FromBounds(2, 5), 0, 0},
		{"two elements", syntax.FromBounds(2, 6), 0, 1},
		{"last two", syntax.FromBounds(5, 9), 1, 2},
		{"starts at separator", syntax.FromBounds(3, 6), -1, -1},
		{"ends inside element", syntax.FromBounds(2, 2), -1, -1},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			sel := selection.Elements(list, testCase.span)
			assert.Equal(t, testCase.first, sel.FirstIndex)
			assert.Equal(t, testCase.last, sel.LastIndex)
		})
	}

	sel := selection.Elements(list, syntax.FromBounds(5, 9))
	assert.Equal(t, "b", sel.First().String())
	assert.Equal(t, "c", sel.Last().String())
}

func TestElementsInRange(t *testing.T) {
	t.Parallel()

	root := csharp.Parse("f(a, b, c)")
	list, ok := syntax.AsSeparatedList(root.ChildNodes()[0])
	require.True(t, ok)

	sel, err := selection.ElementsInRange(list, syntax.FromBounds(2, 3), 2, 3)
	require.NoError(t, err)
	assert.False(t, sel.Any())

	sel, err = selection.ElementsInRange(list, syntax.FromBounds(2, 9), 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, sel.Count())

	_, err = selection.ElementsInRange(list, syntax.FromBounds(2, 9), -1, 3)
	require.ErrorIs(t, err, syntax.ErrInvalidArgument)

	empty, ok := syntax.AsSeparatedList(csharp.Parse("f()").ChildNodes()[0])
	require.True(t, ok)
	assert.False(t, selection.Elements(empty, syntax.FromBounds(2, 2)).Any())
}
