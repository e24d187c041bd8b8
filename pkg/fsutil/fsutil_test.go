package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/triviakit/pkg/fsutil"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o640))
	return path
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir := t.TempDir()
	path := writeFile(t, dir, "a.cs", "int x; // c\n")

	content, info, err := fsutil.ReadFile(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, "int x; // c\n", string(content))
	assert.Equal(t, int64(len(content)), info.Size)
	assert.Equal(t, os.FileMode(0o640), info.Mode.Perm())

	_, _, err = fsutil.ReadFile(ctx, filepath.Join(dir, "missing.cs"))
	require.ErrorIs(t, err, fsutil.ErrNotFound)

	_, _, err = fsutil.ReadFile(ctx, dir)
	require.ErrorIs(t, err, fsutil.ErrIsDirectory)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, _, err = fsutil.ReadFile(cancelled, path)
	require.ErrorIs(t, err, context.Canceled)
}

func TestCheckModified(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir := t.TempDir()
	path := writeFile(t, dir, "a.cs", "one")

	_, info, err := fsutil.ReadFile(ctx, path)
	require.NoError(t, err)

	modified, err := fsutil.CheckModified(ctx, info)
	require.NoError(t, err)
	assert.False(t, modified)

	// Same size, same mod time, different bytes: only the hash notices.
	require.NoError(t, os.WriteFile(path, []byte("two"), 0o640))
	require.NoError(t, os.Chtimes(path, info.ModTime, info.ModTime))
	modified, err = fsutil.CheckModified(ctx, info)
	require.NoError(t, err)
	assert.True(t, modified)

	require.NoError(t, os.Remove(path))
	modified, err = fsutil.CheckModified(ctx, info)
	require.NoError(t, err)
	assert.True(t, modified)

	_, err = fsutil.CheckModified(ctx, nil)
	require.ErrorIs(t, err, fsutil.ErrNilFileInfo)
}

func TestWriteBack(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("writes and keeps mode", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, t.TempDir(), "a.cs", "int x; // c\n")
		_, info, err := fsutil.ReadFile(ctx, path)
		require.NoError(t, err)

		require.NoError(t, fsutil.WriteBack(ctx, info, []byte("int x; \n"), fsutil.BackupConfig{}))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "int x; \n", string(got))

		stat, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o640), stat.Mode().Perm())
		assert.NoFileExists(t, path+fsutil.BackupSuffix)
	})

	t.Run("refuses concurrent edit", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, t.TempDir(), "a.cs", "int x;")
		_, info, err := fsutil.ReadFile(ctx, path)
		require.NoError(t, err)

		require.NoError(t, os.WriteFile(path, []byte("int y; // edited elsewhere"), 0o640))
		later := time.Now().Add(time.Minute)
		require.NoError(t, os.Chtimes(path, later, later))

		err = fsutil.WriteBack(ctx, info, []byte("int x;"), fsutil.BackupConfig{})
		require.ErrorIs(t, err, fsutil.ErrModified)

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "int y; // edited elsewhere", string(got))
	})

	t.Run("backs up first", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, t.TempDir(), "a.cs", "original")
		_, info, err := fsutil.ReadFile(ctx, path)
		require.NoError(t, err)

		backups := fsutil.BackupConfig{Enabled: true, Mode: fsutil.BackupModeSidecar}
		require.NoError(t, fsutil.WriteBack(ctx, info, []byte("rewritten"), backups))

		backup, err := os.ReadFile(path + fsutil.BackupSuffix)
		require.NoError(t, err)
		assert.Equal(t, "original", string(backup))
	})
}
