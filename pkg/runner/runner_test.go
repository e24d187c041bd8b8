package runner_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/triviakit/pkg/config"
	"github.com/yaklabco/triviakit/pkg/fsutil"
	"github.com/yaklabco/triviakit/pkg/rewrite"
	"github.com/yaklabco/triviakit/pkg/runner"
	"github.com/yaklabco/triviakit/pkg/syntax"
)

const (
	commented = "int x = 1; // comment\nint y = 2;\n"
	stripped  = "int x = 1; \nint y = 2;\n"
	clean     = "int z = 3;\n"
)

func stripComments(root syntax.Node) (syntax.Node, error) {
	return rewrite.RemoveTrivia(root, rewrite.All)
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(content)
}

func TestProcessFile_Source(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"a.cs": commented})
	path := filepath.Join(dir, "a.cs")

	res, err := runner.ProcessFile(context.Background(), path, runner.Options{
		WorkingDir: dir,
		Transform:  stripComments,
		Diff:       true,
	})
	require.NoError(t, err)

	assert.Equal(t, runner.KindSource, res.Kind)
	assert.True(t, res.Changed())
	assert.Equal(t, stripped, string(res.Modified))
	assert.False(t, res.Written)
	require.NotNil(t, res.Diff)
	assert.Equal(t, "a.cs", res.Diff.Path)
	assert.Equal(t, 1, res.Diff.Additions)
	assert.Equal(t, 1, res.Diff.Deletions)
	assert.Equal(t, commented, readFile(t, path), "dry run leaves the file alone")
}

func TestProcessFile_Write(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"a.cs": commented})
	path := filepath.Join(dir, "a.cs")

	cfg := config.NewConfig()
	cfg.Backups.Enabled = true

	res, err := runner.ProcessFile(context.Background(), path, runner.Options{
		WorkingDir: dir,
		Transform:  stripComments,
		Write:      true,
		Config:     cfg,
	})
	require.NoError(t, err)

	assert.True(t, res.Written)
	assert.Nil(t, res.Diff)
	assert.Equal(t, stripped, readFile(t, path))
	assert.Equal(t, commented, readFile(t, fsutil.BackupPath(path, fsutil.BackupModeSidecar)))
}

func TestProcessFile_Unchanged(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"a.cs": clean})

	res, err := runner.ProcessFile(context.Background(), filepath.Join(dir, "a.cs"), runner.Options{
		WorkingDir: dir,
		Transform:  stripComments,
		Write:      true,
		Diff:       true,
	})
	require.NoError(t, err)
	assert.False(t, res.Changed())
	assert.Nil(t, res.Modified)
	assert.Nil(t, res.Diff)
	assert.False(t, res.Written)
}

func TestProcessFile_Markdown(t *testing.T) {
	t.Parallel()

	doc := "# Title\n\n```csharp\n" + commented + "```\n\n> ```cs\n> int q; // quoted\n> ```\n"
	want := "# Title\n\n```csharp\n" + stripped + "```\n\n> ```cs\n> int q; // quoted\n> ```\n"

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"README.md": doc})
	path := filepath.Join(dir, "README.md")

	res, err := runner.ProcessFile(context.Background(), path, runner.Options{
		WorkingDir: dir,
		Transform:  stripComments,
		Write:      true,
	})
	require.NoError(t, err)

	assert.Equal(t, runner.KindMarkdown, res.Kind)
	assert.Equal(t, 2, res.Blocks)
	assert.Equal(t, 1, res.BlocksSkipped)
	assert.True(t, res.Written)
	assert.Equal(t, want, readFile(t, path))
}

func TestProcessFile_Vendored(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"vendor/Lib.cs": commented})

	res, err := runner.ProcessFile(context.Background(), filepath.Join(dir, "vendor", "Lib.cs"), runner.Options{
		WorkingDir: dir,
		Transform:  stripComments,
		Write:      true,
	})
	require.NoError(t, err)
	assert.True(t, res.Skipped)
	assert.False(t, res.Changed())
	assert.Equal(t, commented, readFile(t, filepath.Join(dir, "vendor", "Lib.cs")))
}

func TestProcessFile_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"a.cs": commented})
	path := filepath.Join(dir, "a.cs")

	_, err := runner.ProcessFile(context.Background(), path, runner.Options{})
	require.ErrorIs(t, err, syntax.ErrInvalidArgument)

	_, err = runner.ProcessFile(context.Background(), filepath.Join(dir, "missing.cs"), runner.Options{Transform: stripComments})
	require.ErrorIs(t, err, fsutil.ErrNotFound)

	boom := errors.New("boom")
	_, err = runner.ProcessFile(context.Background(), path, runner.Options{
		Transform: func(syntax.Node) (syntax.Node, error) { return syntax.Node{}, boom },
	})
	require.ErrorIs(t, err, runner.ErrTransform)
	require.ErrorIs(t, err, boom)
}

func TestRun(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"a.cs":        commented,
		"b.cs":        clean,
		"docs/c.md":   "```cs\n" + commented + "```\n",
		"vendor/d.cs": commented,
	})

	for _, jobs := range []int{0, 1, 3} {
		result, err := runner.Run(context.Background(), runner.Options{
			WorkingDir: dir,
			Jobs:       jobs,
			Diff:       true,
			Transform:  stripComments,
		})
		require.NoError(t, err)

		require.Len(t, result.Files, 4)
		assert.Equal(t, filepath.Join(dir, "a.cs"), result.Files[0].Path)
		assert.Equal(t, runner.Stats{
			FilesDiscovered: 4,
			FilesProcessed:  4,
			FilesSkipped:    1,
			FilesChanged:    2,
			Edits:           2,
			Additions:       2,
			Deletions:       2,
			BlocksRewritten: 1,
		}, result.Stats)
		assert.True(t, result.HasChanges())
		assert.False(t, result.HasErrors())
		assert.Len(t, result.Diffs(), 2)
	}
}

func TestRun_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"a.cs": commented, "b.cs": clean})

	_, err := runner.Run(context.Background(), runner.Options{WorkingDir: dir})
	require.Error(t, err)

	failing := func(root syntax.Node) (syntax.Node, error) {
		if root.FullString() == clean {
			return root, errors.New("boom")
		}
		return root, nil
	}
	result, err := runner.Run(context.Background(), runner.Options{WorkingDir: dir, Transform: failing})
	require.NoError(t, err)
	assert.True(t, result.HasErrors())
	assert.Equal(t, 1, result.Stats.FilesErrored)
	assert.Equal(t, 1, result.Stats.FilesProcessed)
	require.Error(t, result.Files[1].Error)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = runner.Run(ctx, runner.Options{WorkingDir: dir, Transform: stripComments})
	require.ErrorIs(t, err, context.Canceled)
}

func TestRun_Empty(t *testing.T) {
	t.Parallel()

	result, err := runner.Run(context.Background(), runner.Options{WorkingDir: t.TempDir(), Transform: stripComments})
	require.NoError(t, err)
	assert.Empty(t, result.Files)
	assert.False(t, result.HasChanges())
}
