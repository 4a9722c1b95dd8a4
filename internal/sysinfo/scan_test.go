package sysinfo

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string, size int) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0o644))
}

func TestLargestFiles_TopNDescending(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), 10)
	writeFile(t, filepath.Join(root, "sub", "b.log"), 500)
	writeFile(t, filepath.Join(root, "c.dat"), 1)
	writeFile(t, filepath.Join(root, "sub", "deep", "d.bin"), 9999)
	writeFile(t, filepath.Join(root, "e.txt"), 42)

	p := NewSystemProvider()
	files, err := p.LargestFiles(context.Background(), root, 3)

	require.NoError(t, err)
	require.Len(t, files, 3)
	assert.Equal(t, int64(9999), files[0].Size)
	assert.Equal(t, int64(500), files[1].Size)
	assert.Equal(t, int64(42), files[2].Size)
	assert.Contains(t, files[0].Path, "d.bin")
}

func TestLargestFiles_SkipsUnreadableSubdir(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks are bypassed for root")
	}

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "visible.txt"), 100)
	locked := filepath.Join(root, "locked")
	writeFile(t, filepath.Join(locked, "hidden.txt"), 99999)
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	p := NewSystemProvider()
	files, err := p.LargestFiles(context.Background(), root, 3)

	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Contains(t, files[0].Path, "visible.txt")
}

func TestLargestFiles_IgnoresNonRegularFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "real.txt"), 10)
	require.NoError(t, os.Symlink(filepath.Join(root, "real.txt"), filepath.Join(root, "link.txt")))

	p := NewSystemProvider()
	files, err := p.LargestFiles(context.Background(), root, 5)

	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Contains(t, files[0].Path, "real.txt")
}

func TestLargestFiles_MissingRoot(t *testing.T) {
	p := NewSystemProvider()

	files, err := p.LargestFiles(context.Background(), filepath.Join(t.TempDir(), "does-not-exist"), 3)

	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestLargestFiles_CancelledContextAbortsWalk(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), 10)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewSystemProvider()
	files, err := p.LargestFiles(ctx, root, 3)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, files)
}

func TestLargestFiles_ZeroCount(t *testing.T) {
	p := NewSystemProvider()

	files, err := p.LargestFiles(context.Background(), t.TempDir(), 0)

	require.NoError(t, err)
	assert.Empty(t, files)
}
