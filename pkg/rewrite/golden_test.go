package rewrite_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yaklabco/triviakit/internal/testutil"
	"github.com/yaklabco/triviakit/pkg/parser/csharp"
	"github.com/yaklabco/triviakit/pkg/rewrite"
)

func TestRemoveTrivia_Golden(t *testing.T) {
	t.Parallel()

	testutil.RunGoldenDir(t, "testdata", func(t *testing.T, header map[string]string, input string) string {
		t.Helper()

		opts, err := rewrite.ParseRemoveOptions(header["remove"])
		require.NoError(t, err)

		got, err := rewrite.RemoveTrivia(csharp.Parse(input), opts)
		require.NoError(t, err)
		return got.FullString()
	})
}
