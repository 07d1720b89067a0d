package storage

import (
	"context"
	"io"
)

// Storage is the object store deleted records are archived to.
type Storage interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) error
	Exists(ctx context.Context, key string) (bool, error)
}
