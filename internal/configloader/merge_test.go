package configloader

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/triviakit/pkg/config"
)

func TestMerge(t *testing.T) {
	t.Parallel()

	disabled := false
	base := config.NewConfig()
	override := &config.Config{
		Comments:   "documentation",
		Extensions: []string{".cs"},
		Markdown:   config.MarkdownConfig{Enabled: &disabled},
		Diff:       true,
	}

	merged := merge(base, override)

	assert.Equal(t, "documentation", merged.Comments)
	assert.Equal(t, []string{".cs"}, merged.Extensions)
	assert.False(t, merged.MarkdownEnabled())
	assert.True(t, merged.Diff)
	assert.Equal(t, " ", merged.Whitespace.Replacement)
	assert.Equal(t, []string{"cs", "csharp", "c#"}, merged.Markdown.Languages)

	assert.True(t, base.MarkdownEnabled(), "base is not modified")
	assert.Equal(t, "all", base.Comments)

	override.Extensions[0] = ".csx"
	assert.Equal(t, ".cs", merged.Extensions[0], "slices are copied")
}

func TestMergeAll(t *testing.T) {
	t.Parallel()

	assert.Nil(t, MergeAll())

	merged := MergeAll(config.NewConfig(), &config.Config{Jobs: 2}, &config.Config{Jobs: 5}, nil)
	assert.Equal(t, 5, merged.Jobs)
}
