package io

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/kasuboski/moviedb/pkg/io/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLocalFileSystem_ReadWrite(t *testing.T) {
	fs := &LocalFileSystem{}
	path := filepath.Join(t.TempDir(), "movies.json")

	err := fs.WriteFile(path, []byte("{}"), DefaultFileMode)
	require.NoError(t, err)

	b, err := fs.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(b))

	err = fs.WriteFile(path, []byte("[]"), DefaultFileMode)
	require.NoError(t, err)

	b, err = fs.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(b))
}

func TestFileExists(t *testing.T) {
	fs := &LocalFileSystem{}
	path := filepath.Join(t.TempDir(), "movies.csv")

	assert.False(t, FileExists(fs, path))
	require.NoError(t, fs.WriteFile(path, nil, DefaultFileMode))
	assert.True(t, FileExists(fs, path))
}

func TestEnsureFile(t *testing.T) {
	t.Run("creates missing file and parent directories", func(t *testing.T) {
		fs := &LocalFileSystem{}
		path := filepath.Join(t.TempDir(), "nested", "dir", "movies.json")

		created, err := EnsureFile(fs, path, []byte("{}"))
		require.NoError(t, err)
		assert.True(t, created)

		b, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "{}", string(b))
	})

	t.Run("leaves existing file alone", func(t *testing.T) {
		fs := &LocalFileSystem{}
		path := filepath.Join(t.TempDir(), "movies.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"a":1}`), DefaultFileMode))

		created, err := EnsureFile(fs, path, []byte("{}"))
		require.NoError(t, err)
		assert.False(t, created)

		b, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, `{"a":1}`, string(b))
	})

	t.Run("stat failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fio := mocks.NewMockFileIO(ctrl)
		fio.EXPECT().Stat("movies.json").Return(nil, os.ErrPermission)

		_, err := EnsureFile(fio, "movies.json", []byte("{}"))
		assert.ErrorIs(t, err, os.ErrPermission)
	})

	t.Run("write failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fio := mocks.NewMockFileIO(ctrl)
		writeErr := errors.New("disk full")
		fio.EXPECT().Stat("movies.json").Return(nil, os.ErrNotExist)
		fio.EXPECT().WriteFile("movies.json", []byte("{}"), DefaultFileMode).Return(writeErr)

		created, err := EnsureFile(fio, "movies.json", []byte("{}"))
		assert.ErrorIs(t, err, writeErr)
		assert.False(t, created)
	})
}
