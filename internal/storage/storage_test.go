package storage_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"namesapi/internal/storage"
	storeMocks "namesapi/internal/storage/mocks"
)

func TestEmbedded(t *testing.T) {
	ctx := context.Background()
	store := storage.NewEmbedded(fstest.MapFS{
		"index.html":   {Data: []byte("<!DOCTYPE html><title>x</title>")},
		"assets/.keep": {Data: nil},
	})

	t.Run("get existing", func(t *testing.T) {
		rc, info, err := store.Get(ctx, "index.html")
		require.NoError(t, err)
		defer rc.Close()

		b, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Contains(t, string(b), "<!DOCTYPE html>")
		assert.True(t, strings.HasPrefix(info.ContentType, "text/html"))
		assert.Equal(t, int64(len(b)), info.Size)
	})

	t.Run("missing key", func(t *testing.T) {
		_, _, err := store.Get(ctx, "missing.html")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("directory", func(t *testing.T) {
		_, _, err := store.Get(ctx, "assets")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("put is rejected", func(t *testing.T) {
		_, err := store.Put(ctx, "index.html", strings.NewReader("x"), storage.PutObjectOptions{})
		assert.ErrorIs(t, err, storage.ErrReadOnly)
	})
}

func TestEnsureObject(t *testing.T) {
	ctx := context.Background()
	src := storage.NewEmbedded(fstest.MapFS{
		"index.html": {Data: []byte("<html></html>")},
	})

	t.Run("already present", func(t *testing.T) {
		dst := new(storeMocks.MockStorage)
		dst.On("Get", ctx, "index.html").
			Return(io.NopCloser(strings.NewReader("existing")), storage.ObjectInfo{Key: "index.html"}, nil)

		copied, err := storage.EnsureObject(ctx, dst, src, "index.html")

		assert.NoError(t, err)
		assert.False(t, copied)
		dst.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("seeds missing object", func(t *testing.T) {
		dst := new(storeMocks.MockStorage)
		dst.On("Get", ctx, "index.html").Return(nil, storage.ObjectInfo{}, storage.ErrNotFound)
		dst.On("Put", ctx, "index.html", mock.Anything, mock.MatchedBy(func(opt storage.PutObjectOptions) bool {
			return opt.Size == int64(len("<html></html>")) && strings.HasPrefix(opt.ContentType, "text/html")
		})).Return(storage.ObjectInfo{Key: "index.html"}, nil)

		copied, err := storage.EnsureObject(ctx, dst, src, "index.html")

		assert.NoError(t, err)
		assert.True(t, copied)
		dst.AssertExpectations(t)
	})

	t.Run("destination error", func(t *testing.T) {
		dst := new(storeMocks.MockStorage)
		dst.On("Get", ctx, "index.html").Return(nil, storage.ObjectInfo{}, errors.New("access denied"))

		copied, err := storage.EnsureObject(ctx, dst, src, "index.html")

		assert.ErrorContains(t, err, "access denied")
		assert.False(t, copied)
	})

	t.Run("put error", func(t *testing.T) {
		dst := new(storeMocks.MockStorage)
		dst.On("Get", ctx, "index.html").Return(nil, storage.ObjectInfo{}, storage.ErrNotFound)
		dst.On("Put", ctx, "index.html", mock.Anything, mock.Anything).
			Return(storage.ObjectInfo{}, errors.New("quota exceeded"))

		copied, err := storage.EnsureObject(ctx, dst, src, "index.html")

		assert.ErrorContains(t, err, "seed index.html: quota exceeded")
		assert.False(t, copied)
	})
}
