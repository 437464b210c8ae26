package pictures

import (
	"context"
	"io"
)

// BlobStore holds picture bytes under a flat name. Get and Delete return
// common.ErrorNotFound for unknown names.
type BlobStore interface {
	Put(ctx context.Context, name string, r io.Reader, size int64, contentType string) error
	Get(ctx context.Context, name string) (io.ReadCloser, error)
	Delete(ctx context.Context, name string) error
}
