package repository

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrProviderNotFound is returned when no non-deleted provider matches the lookup.
	ErrProviderNotFound = errors.New("provider not found")
	// ErrProviderAlreadyExists is returned when the user already owns a non-deleted provider.
	ErrProviderAlreadyExists = errors.New("provider already exists for user")
	// ErrConcurrencyConflict is returned when an update was based on a stale version.
	ErrConcurrencyConflict = errors.New("concurrency conflict")
)

// ProviderRepository loads and stores provider aggregates. Soft-deleted providers are
// invisible to the lookups.
type ProviderRepository interface {
	// GetByID returns the provider with the given id.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Provider, error)

	// GetByUserID returns the provider owned by the given user.
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.Provider, error)

	// Add persists a new provider aggregate with its documents and services.
	Add(ctx context.Context, provider *entity.Provider) error

	// Update persists the whole aggregate in one versioned write. On success the
	// provider's Version is advanced; a stale version yields ErrConcurrencyConflict.
	Update(ctx context.Context, provider *entity.Provider) error
}
