package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/triviakit/pkg/fsutil"
)

func TestBackupPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a.cs.triviakit.bak", fsutil.BackupPath("a.cs", fsutil.BackupModeSidecar))
	assert.Equal(t, "a.cs.triviakit.bak", fsutil.BackupPath("a.cs", "unknown"))
	assert.Empty(t, fsutil.BackupPath("a.cs", fsutil.BackupModeNone))
}

func TestBackupLifecycle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "a.cs")
	require.NoError(t, os.WriteFile(path, []byte("first"), 0o644))
	cfg := fsutil.BackupConfig{Enabled: true, Mode: fsutil.BackupModeSidecar}

	created, err := fsutil.CreateBackup(ctx, path, cfg)
	require.NoError(t, err)
	assert.True(t, created)

	require.NoError(t, os.WriteFile(path, []byte("second"), 0o644))
	created, err = fsutil.CreateBackup(ctx, path, cfg)
	require.NoError(t, err)
	assert.False(t, created, "existing backup is kept")

	restored, err := fsutil.RestoreBackup(ctx, path, cfg.Mode)
	require.NoError(t, err)
	assert.True(t, restored)
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first", string(got))

	removed, err := fsutil.RemoveBackup(path, cfg.Mode)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = fsutil.RemoveBackup(path, cfg.Mode)
	require.NoError(t, err)
	assert.False(t, removed)

	restored, err = fsutil.RestoreBackup(ctx, path, cfg.Mode)
	require.NoError(t, err)
	assert.False(t, restored)
}

func TestCreateBackupDisabled(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "a.cs")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	for _, cfg := range []fsutil.BackupConfig{
		{Enabled: false, Mode: fsutil.BackupModeSidecar},
		{Enabled: true, Mode: fsutil.BackupModeNone},
	} {
		created, err := fsutil.CreateBackup(ctx, path, cfg)
		require.NoError(t, err)
		assert.False(t, created)
	}

	created, err := fsutil.CreateBackup(ctx, path+".missing", fsutil.BackupConfig{Enabled: true})
	require.NoError(t, err)
	assert.False(t, created)
}
