package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/triviakit/pkg/syntax"
)

func TestSpanValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    syntax.Span
		str     string
		wantErr bool
	}{
		{input: "3:7", want: syntax.FromBounds(3, 7), str: "3:7"},
		{input: "3:", want: syntax.FromBounds(3, 20), str: "3:"},
		{input: ":7", want: syntax.FromBounds(0, 7), str: "0:7"},
		{input: "4:4", want: syntax.FromBounds(4, 4), str: "4:4"},
		{input: "7", wantErr: true},
		{input: "x:4", wantErr: true},
		{input: "1:y", wantErr: true},
		{input: "5:2", wantErr: true},
		{input: "-1:2", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			var v spanValue
			err := v.Set(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.False(t, v.set)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.resolve(20))
			assert.Equal(t, tt.str, v.String())
		})
	}
}

func TestSpanValueUnset(t *testing.T) {
	t.Parallel()

	var v spanValue
	assert.Empty(t, v.String())
	assert.Equal(t, "start:end", v.Type())
	assert.Equal(t, syntax.FromBounds(0, 12), v.resolve(12))
}

func TestSingle(t *testing.T) {
	t.Parallel()

	withSpan := &rewriteFlags{}
	require.NoError(t, withSpan.span.Set("0:1"))

	assert.True(t, single([]string{"-"}, &rewriteFlags{}))
	assert.True(t, single([]string{"a.cs"}, withSpan))
	assert.False(t, single([]string{"a.cs"}, &rewriteFlags{}))
	assert.False(t, single([]string{"README.md"}, withSpan))
	assert.False(t, single([]string{"a.cs", "b.cs"}, withSpan))
	assert.False(t, single(nil, withSpan))
	assert.False(t, single([]string{t.TempDir()}, withSpan))
}
