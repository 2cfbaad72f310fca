package storage

import (
	"context"
	"io"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
	"gocloud.dev/gcerrors"
)

// BucketStorage stores files in any gocloud bucket (mem://, file://, gs://, s3://).
type BucketStorage struct {
	bucket *blob.Bucket
	keys   keyBuilder
}

// NewBucketStorage opens the bucket addressed by bucketURL.
func NewBucketStorage(ctx context.Context, bucketURL string, keys keyBuilder) (*BucketStorage, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open bucket")
	}

	return &BucketStorage{bucket: bucket, keys: keys}, nil
}

// Upload streams body into the bucket.
func (s *BucketStorage) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	objectKey := s.keys.objectKey(key)

	w, err := s.bucket.NewWriter(ctx, objectKey, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrapf(err, "failed to open writer for %s", objectKey)
	}

	if _, err := io.Copy(w, body); err != nil {
		_ = w.Close()

		return "", errors.Wrapf(err, "failed to write %s", objectKey)
	}

	if err := w.Close(); err != nil {
		return "", errors.Wrapf(err, "failed to commit %s", objectKey)
	}

	return s.keys.fileURL(objectKey), nil
}

// Open returns a reader for the stored file.
func (s *BucketStorage) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	objectKey := s.keys.objectKey(key)

	r, err := s.bucket.NewReader(ctx, objectKey, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, errors.Wrap(ErrObjectNotFound, objectKey)
		}

		return nil, errors.Wrapf(err, "failed to open %s", objectKey)
	}

	return r, nil
}

// Delete removes the stored file. Missing files are ignored.
func (s *BucketStorage) Delete(ctx context.Context, key string) error {
	objectKey := s.keys.objectKey(key)

	if err := s.bucket.Delete(ctx, objectKey); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "failed to delete %s", objectKey)
	}

	return nil
}

// Close releases the bucket.
func (s *BucketStorage) Close() error {
	return errors.WithStack(s.bucket.Close())
}
