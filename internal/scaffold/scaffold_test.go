package scaffold

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_CreatesFoldersAndReadmes(t *testing.T) {
	root := t.TempDir()

	created, err := Setup(root, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, created)

	for _, name := range []string{"Tip_001", "Tip_003", "Tip_005"} {
		data, err := os.ReadFile(filepath.Join(root, name, "README.md"))
		require.NoError(t, err)
		assert.Contains(t, string(data), "[Tip Title]")
	}

	data, err := os.ReadFile(filepath.Join(root, "Tip_002", "README.md"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Tip 2:")
}

func TestSetup_IsIdempotent(t *testing.T) {
	root := t.TempDir()

	_, err := Setup(root, 3)
	require.NoError(t, err)

	// Simulate an authored article.
	edited := filepath.Join(root, "Tip_002", "README.md")
	require.NoError(t, os.WriteFile(edited, []byte("# Tip 2: Transform.hasChanged\n"), 0o644))

	created, err := Setup(root, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, created)

	data, err := os.ReadFile(edited)
	require.NoError(t, err)
	assert.Equal(t, "# Tip 2: Transform.hasChanged\n", string(data))
}

func TestRename_MigratesDayFolders(t *testing.T) {
	root := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(root, "Day_001"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(root, "Day_001", "README.md"),
		[]byte("# Day 1: [Tip Title]\n"), 0o644))

	// Already-renamed and hand-edited folder stays untouched.
	require.NoError(t, os.MkdirAll(filepath.Join(root, "Tip_002"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(root, "Tip_002", "README.md"),
		[]byte("# Tip 2: EditorUtility.SetDirty\n"), 0o644))

	moved, err := Rename(root, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, moved)

	data, err := os.ReadFile(filepath.Join(root, "Tip_001", "README.md"))
	require.NoError(t, err)
	assert.Equal(t, "# Tip 1: [Tip Title]\n", string(data))

	_, err = os.Stat(filepath.Join(root, "Day_001"))
	assert.True(t, os.IsNotExist(err))
}

func TestRename_FolderWithoutReadme(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "Day_004"), 0o755))

	moved, err := Rename(root, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, moved)

	info, err := os.Stat(filepath.Join(root, "Tip_004"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
