package impl

import (
	"context"
	"strings"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
)

func (s *providerService) AddDocument(ctx context.Context, principal entity.Principal, input *usecase.AddProviderDocumentInput) (*entity.Provider, error) {
	docType, err := entity.ParseProviderDocumentType(input.Type)
	if err != nil {
		return nil, translateDomainError(err)
	}

	doc, err := entity.NewProviderDocument(docType, input.Number, input.IsPrimary)
	if err != nil {
		return nil, translateDomainError(err)
	}

	return s.mutate(ctx, principal, input.ProviderID, "add provider document", false, func(p *entity.Provider) error {
		return p.AddDocument(principal.UserID, doc, input.Replace)
	})
}

func (s *providerService) RemoveDocument(ctx context.Context, principal entity.Principal, providerID uuid.UUID, docType string) (*entity.Provider, error) {
	parsed, err := entity.ParseProviderDocumentType(docType)
	if err != nil {
		return nil, translateDomainError(err)
	}

	return s.mutate(ctx, principal, providerID, "remove provider document", false, func(p *entity.Provider) error {
		return p.RemoveDocument(principal.UserID, parsed)
	})
}

func (s *providerService) SetPrimaryDocument(ctx context.Context, principal entity.Principal, providerID uuid.UUID, docType string) (*entity.Provider, error) {
	parsed, err := entity.ParseProviderDocumentType(docType)
	if err != nil {
		return nil, translateDomainError(err)
	}

	return s.mutate(ctx, principal, providerID, "set primary document", false, func(p *entity.Provider) error {
		return p.SetPrimaryDocument(principal.UserID, parsed)
	})
}

func (s *providerService) AddService(ctx context.Context, principal entity.Principal, input *usecase.AddProviderServiceInput) (*entity.Provider, error) {
	if input.ServiceID == uuid.Nil {
		return nil, domainerrors.ErrValidationFailed.WithMessage("service id is required")
	}

	if strings.TrimSpace(input.ServiceName) == "" {
		return nil, domainerrors.ErrValidationFailed.WithMessage("service name is required")
	}

	return s.mutate(ctx, principal, input.ProviderID, "add provider service", false, func(p *entity.Provider) error {
		return p.AddService(principal.UserID, input.ServiceID, input.ServiceName)
	})
}

func (s *providerService) RemoveService(ctx context.Context, principal entity.Principal, providerID, serviceID uuid.UUID) (*entity.Provider, error) {
	return s.mutate(ctx, principal, providerID, "remove provider service", false, func(p *entity.Provider) error {
		return p.RemoveService(principal.UserID, serviceID)
	})
}
