package storage

import (
	"context"
	"errors"
	"fmt"
)

// EnsureObject copies key from src to dst when dst does not have it yet.
// It reports whether a copy was made.
func EnsureObject(ctx context.Context, dst, src Storage, key string) (bool, error) {
	rc, _, err := dst.Get(ctx, key)
	if err == nil {
		rc.Close()
		return false, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return false, fmt.Errorf("check %s: %w", key, err)
	}

	body, info, err := src.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("read source %s: %w", key, err)
	}
	defer body.Close()

	if _, err := dst.Put(ctx, key, body, PutObjectOptions{
		Size:        info.Size,
		ContentType: info.ContentType,
	}); err != nil {
		return false, fmt.Errorf("seed %s: %w", key, err)
	}
	return true, nil
}
