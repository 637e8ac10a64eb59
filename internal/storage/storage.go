package storage

import (
	"context"
	"errors"
	"io"
)

// ErrObjectNotFound is returned when a requested object does not exist.
var ErrObjectNotFound = errors.New("object not found")

// Service stores uploaded files in remote object storage. Objects are
// addressed by bucket and key only; the service keeps no other state.
type Service interface {
	SaveObject(ctx context.Context, bucket, key, contentType string, body io.Reader) error
	ReadObject(ctx context.Context, bucket, key string) ([]byte, string, error)
	DeleteObject(ctx context.Context, bucket, key string) error
}
