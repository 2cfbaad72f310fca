// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// ProviderUsecase defines the provider lifecycle commands and queries.
// Every command acts on behalf of an authenticated principal.
type ProviderUsecase interface {
	CreateProvider(ctx context.Context, principal entity.Principal, input *CreateProviderInput) (*entity.Provider, error)
	GetProvider(ctx context.Context, principal entity.Principal, providerID uuid.UUID) (*entity.Provider, error)
	GetProviderByUser(ctx context.Context, principal entity.Principal) (*entity.Provider, error)

	// Lifecycle transitions
	CompleteBasicInfo(ctx context.Context, principal entity.Principal, providerID uuid.UUID) (*entity.Provider, error)
	Activate(ctx context.Context, principal entity.Principal, providerID uuid.UUID) (*entity.Provider, error)
	Reject(ctx context.Context, principal entity.Principal, providerID uuid.UUID, reason string) (*entity.Provider, error)
	Suspend(ctx context.Context, principal entity.Principal, providerID uuid.UUID, reason string) (*entity.Provider, error)
	RequireBasicInfoCorrection(ctx context.Context, principal entity.Principal, providerID uuid.UUID, reason string) (*entity.Provider, error)
	Delete(ctx context.Context, principal entity.Principal, providerID uuid.UUID) error

	// Document references and offered services
	AddDocument(ctx context.Context, principal entity.Principal, input *AddProviderDocumentInput) (*entity.Provider, error)
	RemoveDocument(ctx context.Context, principal entity.Principal, providerID uuid.UUID, docType string) (*entity.Provider, error)
	SetPrimaryDocument(ctx context.Context, principal entity.Principal, providerID uuid.UUID, docType string) (*entity.Provider, error)
	AddService(ctx context.Context, principal entity.Principal, input *AddProviderServiceInput) (*entity.Provider, error)
	RemoveService(ctx context.Context, principal entity.Principal, providerID, serviceID uuid.UUID) (*entity.Provider, error)
}

// --- Input DTOs ---

// CreateProviderInput defines the data required to open a provider account.
type CreateProviderInput struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// AddProviderDocumentInput defines a document reference to attach to a provider.
type AddProviderDocumentInput struct {
	ProviderID uuid.UUID `json:"-"`
	Type       string    `json:"type"`
	Number     string    `json:"number"`
	IsPrimary  bool      `json:"is_primary"`
	Replace    bool      `json:"replace"`
}

// AddProviderServiceInput defines a service to add to a provider's offer.
type AddProviderServiceInput struct {
	ProviderID  uuid.UUID `json:"-"`
	ServiceID   uuid.UUID `json:"service_id"`
	ServiceName string    `json:"service_name"`
}
