package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"path"
)

// embeddedStorage serves objects from a read-only fs.FS such as an embed.FS.
type embeddedStorage struct {
	fsys fs.FS
}

// NewEmbedded wraps fsys as a read-only Storage.
func NewEmbedded(fsys fs.FS) Storage {
	return &embeddedStorage{fsys: fsys}
}

func (e *embeddedStorage) Put(context.Context, string, io.Reader, PutObjectOptions) (ObjectInfo, error) {
	return ObjectInfo{}, ErrReadOnly
}

func (e *embeddedStorage) Get(_ context.Context, key string) (io.ReadCloser, ObjectInfo, error) {
	f, err := e.fsys.Open(key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ObjectInfo{}, ErrNotFound
		}
		return nil, ObjectInfo{}, fmt.Errorf("open %s: %w", key, err)
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, ObjectInfo{}, fmt.Errorf("stat %s: %w", key, err)
	}
	if st.IsDir() {
		f.Close()
		return nil, ObjectInfo{}, ErrNotFound
	}

	ct := mime.TypeByExtension(path.Ext(key))
	if ct == "" {
		ct = "application/octet-stream"
	}
	return f, ObjectInfo{
		Key:          key,
		Size:         st.Size(),
		ContentType:  ct,
		LastModified: st.ModTime(),
	}, nil
}
