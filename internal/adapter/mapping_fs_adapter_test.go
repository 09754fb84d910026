package adapter

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "nocturne.dev/pkg/nocturne/internal/model"
)

func TestLocalMappingFSAdapter_Walk(t *testing.T) {
	adapter := NewLocalMappingFSAdapter()

	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "b.mapping"), "CLASS b\n")
	writeTestFile(t, filepath.Join(root, "a", "child.mapping"), "CLASS c\n")

	var visited []string
	err := adapter.Walk(m.Path(root), func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !info.IsDir() {
			rel, relErr := filepath.Rel(root, path)
			require.NoError(t, relErr)
			visited = append(visited, filepath.ToSlash(rel))
		}

		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"a/child.mapping", "b.mapping"}, visited)
}

func TestLocalMappingFSAdapter_WalkMissingRoot(t *testing.T) {
	adapter := NewLocalMappingFSAdapter()

	err := adapter.Walk(m.Path(filepath.Join(t.TempDir(), "missing")), func(_ string, _ os.FileInfo, err error) error {
		return err
	})
	require.Error(t, err)
}

func TestLocalMappingFSAdapter_CreateAndOpen(t *testing.T) {
	adapter := NewLocalMappingFSAdapter()

	path := adapter.JoinPath(t.TempDir(), "deep", "nested", "out.mapping")

	w, err := adapter.Create(path)
	require.NoError(t, err)
	_, err = io.WriteString(w, "CLASS a\n")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r, err := adapter.Open(path)
	require.NoError(t, err)

	defer func() {
		_ = r.Close()
	}()

	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "CLASS a\n", string(data))

	info, err := adapter.FileInfo(path)
	require.NoError(t, err)
	assert.False(t, info.IsDir())
	assert.Equal(t, int64(8), info.Size())
}

func TestLocalMappingFSAdapter_MkdirAll(t *testing.T) {
	adapter := NewLocalMappingFSAdapter()

	dir := adapter.JoinPath(t.TempDir(), "x", "y")
	require.NoError(t, adapter.MkdirAll(dir))

	info, err := adapter.FileInfo(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
