package service

import (
	"context"
	"io"
)

// BlobStorage stores uploaded document files.
type BlobStorage interface {
	// Upload writes the object and returns the URL under which it can be fetched.
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)

	// Open returns a reader for the object. The caller closes it.
	Open(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes the object. Deleting a missing object is not an error.
	Delete(ctx context.Context, key string) error
}
