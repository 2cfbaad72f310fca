// Package storage keeps uploaded document files in a blob bucket.
package storage

import (
	"context"
	"log/slog"
	"net/url"
	"path"
	"strings"

	"marketplace/config"
	"marketplace/internal/domain/constants"
	"marketplace/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ErrObjectNotFound is returned by Open when the key does not exist.
var ErrObjectNotFound = errors.New("object not found")

// Params holds dependencies for BlobStorage, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewBlobStorage opens the configured bucket. Without configuration an in-memory
// bucket is used, which loses files on restart.
func NewBlobStorage(params Params) (service.BlobStorage, error) {
	cfg := params.Config.Storage
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Warn("Storage not configured, using in-memory bucket")
		cfg = &config.StorageConfig{Provider: constants.StorageProviderBlob, BucketURL: "mem://"}
	}

	keys := keyBuilder{prefix: cfg.KeyPrefix, publicBaseURL: cfg.PublicBaseURL}

	var store interface {
		service.BlobStorage
		Close() error
	}
	var err error

	switch cfg.Provider {
	case constants.StorageProviderBlob:
		if cfg.BucketURL == "" {
			return nil, errors.New("bucket URL is required for blob provider")
		}
		logger.Info("Using gocloud blob storage", slog.String("bucket_url", redactURL(cfg.BucketURL)))

		store, err = NewBucketStorage(params.Ctx, cfg.BucketURL, keys)
	case constants.StorageProviderS3:
		if cfg.S3.Bucket == "" {
			return nil, errors.New("bucket is required for s3 provider")
		}
		logger.Info("Using S3 storage",
			slog.String("bucket", cfg.S3.Bucket),
			slog.String("region", cfg.S3.Region),
		)

		store, err = NewS3Storage(params.Ctx, cfg.S3, keys)
	default:
		return nil, errors.Errorf("unknown storage provider: %s", cfg.Provider)
	}
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}

// keyBuilder maps document keys to object keys and public URLs.
type keyBuilder struct {
	prefix        string
	publicBaseURL string
}

func (k keyBuilder) objectKey(key string) string {
	if k.prefix == "" {
		return key
	}

	return path.Join(k.prefix, key)
}

func (k keyBuilder) fileURL(objectKey string) string {
	if k.publicBaseURL == "" {
		return objectKey
	}

	joined, err := url.JoinPath(k.publicBaseURL, objectKey)
	if err != nil {
		return strings.TrimSuffix(k.publicBaseURL, "/") + "/" + objectKey
	}

	return joined
}

func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	return u.Redacted()
}

// Module provides the storage FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewBlobStorage),
)
