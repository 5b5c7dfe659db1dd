package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/stones/internal/apperror"
)

func TestFileSave_SaveAndLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("Saved data is loaded back", func(t *testing.T) {
		// Given: a file repository in an empty directory
		repo := NewFileSaveRepository(t.TempDir())

		// When: data is saved and loaded under the same name
		require.NoError(t, repo.Save(ctx, "first.json", []byte(`{"a":1}`)))
		data, err := repo.Load(ctx, "first.json")

		// Then: the same bytes come back
		require.NoError(t, err)
		assert.Equal(t, []byte(`{"a":1}`), data)
	})

	t.Run("Saving again replaces the content", func(t *testing.T) {
		dir := t.TempDir()
		repo := NewFileSaveRepository(dir)

		// Given: an existing save
		require.NoError(t, repo.Save(ctx, "slot", []byte("old content that is longer")))

		// When: the same name is saved with new data
		require.NoError(t, repo.Save(ctx, "slot", []byte("new")))

		// Then: only the new content is visible and no temp files are left behind
		data, err := repo.Load(ctx, "slot")
		require.NoError(t, err)
		assert.Equal(t, []byte("new"), data)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "slot", entries[0].Name())
	})

	t.Run("Nested directories are created", func(t *testing.T) {
		dir := t.TempDir()
		repo := NewFileSaveRepository(filepath.Join(dir, "saves"))

		// When: a save is written into a directory that does not exist yet
		require.NoError(t, repo.Save(ctx, "deep/game.json", []byte("x")))

		// Then: the file is at the resolved path
		data, err := os.ReadFile(filepath.Join(dir, "saves", "deep", "game.json"))
		require.NoError(t, err)
		assert.Equal(t, []byte("x"), data)
	})

	t.Run("Absolute names ignore the save directory", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "abs.json")
		repo := NewFileSaveRepository(t.TempDir())

		// When: saving under an absolute path
		require.NoError(t, repo.Save(ctx, target, []byte("abs")))

		// Then: the file is written exactly there
		data, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Equal(t, []byte("abs"), data)
	})
}

func TestFileSave_LoadMissing(t *testing.T) {
	// Given: an empty save directory
	repo := NewFileSaveRepository(t.TempDir())

	// When: loading a name that was never saved
	data, err := repo.Load(context.Background(), "missing.json")

	// Then: ErrSaveNotFound is returned, which is a persistence error
	require.ErrorIs(t, err, apperror.ErrSaveNotFound)
	assert.ErrorIs(t, err, apperror.ErrPersistence)
	assert.Nil(t, data)
}

func TestFileSave_LoadDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "folder"), 0o755))

	repo := NewFileSaveRepository(dir)

	// When: the name points at a directory
	_, err := repo.Load(context.Background(), "folder")

	// Then: a persistence error is returned but not ErrSaveNotFound
	require.ErrorIs(t, err, apperror.ErrPersistence)
	assert.NotErrorIs(t, err, apperror.ErrSaveNotFound)
}
