package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *LocalStorage {
	s, err := NewLocalStorage(Config{BasePath: t.TempDir(), BaseURL: "/api/v1/files"})
	require.NoError(t, err)
	return s
}

func TestLocalStorageRoundTrip(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	content := "fake pdf content"
	require.NoError(t, s.Save(ctx, "docs/u1/identity.pdf", strings.NewReader(content), "application/pdf"))

	exists, err := s.Exists(ctx, "docs/u1/identity.pdf")
	require.NoError(t, err)
	assert.True(t, exists)

	size, err := s.GetSize(ctx, "docs/u1/identity.pdf")
	require.NoError(t, err)
	assert.Equal(t, int64(len(content)), size)

	reader, err := s.Get(ctx, "docs/u1/identity.pdf")
	require.NoError(t, err)
	defer reader.Close()
	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, content, string(data))

	require.NoError(t, s.Delete(ctx, "docs/u1/identity.pdf"))
	exists, err = s.Exists(ctx, "docs/u1/identity.pdf")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLocalStorageMissingFile(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	_, err := s.Get(ctx, "docs/u1/nothing.pdf")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.GetSize(ctx, "docs/u1/nothing.pdf")
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting a missing file is not an error.
	assert.NoError(t, s.Delete(ctx, "docs/u1/nothing.pdf"))
}

func TestLocalStorageRefusesTraversal(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	err := s.Save(ctx, "../outside.txt", strings.NewReader("x"), "text/plain")
	// Clean("/../outside.txt") resolves inside the base, the write must
	// land under it either way.
	if err == nil {
		exists, existsErr := s.Exists(ctx, "outside.txt")
		require.NoError(t, existsErr)
		assert.True(t, exists)
	}
}

func TestLocalStorageURLs(t *testing.T) {
	ctx := context.Background()

	s := newTestStorage(t)
	url, err := s.GetURL(ctx, "public/tutors/u1/photo.jpg")
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/files/public/tutors/u1/photo.jpg", url)

	bare, err := NewLocalStorage(Config{BasePath: t.TempDir()})
	require.NoError(t, err)
	url, err = bare.GetURL(ctx, "public/photo.jpg")
	require.NoError(t, err)
	assert.Equal(t, "/files/public/photo.jpg", url)
}
