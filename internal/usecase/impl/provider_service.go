package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type providerService struct {
	txManager    repository.TransactionManager
	providerRepo repository.ProviderRepository
	documentsAPI service.DocumentsModuleAPI
	notifier     service.ProviderNotifier
	metrics      service.OnboardingMetrics
	logger       *slog.Logger
}

// ProviderServiceParams holds dependencies for ProviderService, injected by Fx.
type ProviderServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ProviderRepo repository.ProviderRepository
	DocumentsAPI service.DocumentsModuleAPI
	Notifier     service.ProviderNotifier
	Metrics      service.OnboardingMetrics
	Logger       *slog.Logger
}

// NewProviderService is the constructor for providerService.
func NewProviderService(params ProviderServiceParams) usecase.ProviderUsecase {
	return &providerService{
		txManager:    params.TxManager,
		providerRepo: params.ProviderRepo,
		documentsAPI: params.DocumentsAPI,
		notifier:     params.Notifier,
		metrics:      params.Metrics,
		logger:       params.Logger,
	}
}

func (s *providerService) CreateProvider(ctx context.Context, principal entity.Principal, input *usecase.CreateProviderInput) (*entity.Provider, error) {
	provider, err := entity.NewProvider(principal.UserID, input.Name, entity.ProviderType(input.Type), time.Now().UTC())
	if err != nil {
		return nil, translateDomainError(err)
	}

	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		repo := factory.NewProviderRepository()

		existing, err := repo.GetByUserID(ctx, principal.UserID)
		if err != nil && !errors.Is(err, repository.ErrProviderNotFound) {
			return err
		}
		if existing != nil {
			return repository.ErrProviderAlreadyExists
		}

		return repo.Add(ctx, provider)
	})
	if err != nil {
		return nil, failure(ctx, s.logger, "create provider", err)
	}

	s.getLogger(ctx).Info("provider created",
		slog.String("provider_id", provider.ID.String()),
		slog.String("user_id", provider.UserID.String()),
	)

	return provider, nil
}

func (s *providerService) GetProvider(ctx context.Context, principal entity.Principal, providerID uuid.UUID) (*entity.Provider, error) {
	provider, err := s.providerRepo.GetByID(ctx, providerID)
	if err != nil {
		return nil, failure(ctx, s.logger, "get provider", err)
	}

	if !principal.CanActFor(provider.UserID) {
		return nil, domainerrors.ErrForbidden
	}

	return provider, nil
}

func (s *providerService) GetProviderByUser(ctx context.Context, principal entity.Principal) (*entity.Provider, error) {
	provider, err := s.providerRepo.GetByUserID(ctx, principal.UserID)
	if err != nil {
		return nil, failure(ctx, s.logger, "get provider", err)
	}

	return provider, nil
}

func (s *providerService) CompleteBasicInfo(ctx context.Context, principal entity.Principal, providerID uuid.UUID) (*entity.Provider, error) {
	return s.mutate(ctx, principal, providerID, "complete basic info", false, func(p *entity.Provider) error {
		return p.CompleteBasicInfo(principal.UserID)
	})
}

func (s *providerService) Reject(ctx context.Context, principal entity.Principal, providerID uuid.UUID, reason string) (*entity.Provider, error) {
	reason, err := entity.RequireReason(reason)
	if err != nil {
		return nil, translateDomainError(err)
	}

	provider, err := s.mutate(ctx, principal, providerID, "reject provider", true, func(p *entity.Provider) error {
		return p.Reject(principal.UserID, reason)
	})
	if err != nil {
		return nil, err
	}

	s.notify(ctx, provider, "Registration rejected", reason)

	return provider, nil
}

func (s *providerService) Suspend(ctx context.Context, principal entity.Principal, providerID uuid.UUID, reason string) (*entity.Provider, error) {
	reason, err := entity.RequireReason(reason)
	if err != nil {
		return nil, translateDomainError(err)
	}

	provider, err := s.mutate(ctx, principal, providerID, "suspend provider", true, func(p *entity.Provider) error {
		return p.Suspend(principal.UserID, reason)
	})
	if err != nil {
		return nil, err
	}

	s.notify(ctx, provider, "Account suspended", reason)

	return provider, nil
}

func (s *providerService) RequireBasicInfoCorrection(ctx context.Context, principal entity.Principal, providerID uuid.UUID, reason string) (*entity.Provider, error) {
	reason, err := entity.RequireReason(reason)
	if err != nil {
		return nil, translateDomainError(err)
	}

	provider, err := s.mutate(ctx, principal, providerID, "require basic info correction", true, func(p *entity.Provider) error {
		return p.RequireBasicInfoCorrection(principal.UserID, reason)
	})
	if err != nil {
		return nil, err
	}

	s.notify(ctx, provider, "Registration needs correction", reason)

	return provider, nil
}

func (s *providerService) Delete(ctx context.Context, principal entity.Principal, providerID uuid.UUID) error {
	_, err := s.mutate(ctx, principal, providerID, "delete provider", false, func(p *entity.Provider) error {
		return p.Delete(principal.UserID, time.Now().UTC())
	})

	return err
}

// mutate loads the provider, checks the principal may act on it, applies fn and
// persists the result in one versioned update.
func (s *providerService) mutate(
	ctx context.Context,
	principal entity.Principal,
	providerID uuid.UUID,
	op string,
	adminOnly bool,
	fn func(*entity.Provider) error,
) (*entity.Provider, error) {
	if adminOnly && !principal.IsAdmin() {
		return nil, domainerrors.ErrForbidden
	}

	provider, err := s.providerRepo.GetByID(ctx, providerID)
	if err != nil {
		return nil, failure(ctx, s.logger, op, err)
	}

	if !principal.CanActFor(provider.UserID) {
		return nil, domainerrors.ErrForbidden
	}

	if err := fn(provider); err != nil {
		return nil, translateDomainError(err)
	}

	if err := s.providerRepo.Update(ctx, provider); err != nil {
		return nil, failure(ctx, s.logger, op, err)
	}

	s.getLogger(ctx).Info("provider updated",
		slog.String("operation", op),
		slog.String("provider_id", provider.ID.String()),
		slog.String("status", string(provider.Status)),
		slog.Int64("version", provider.Version),
	)

	return provider, nil
}

// notify sends a status notification. Failures never reach the caller.
func (s *providerService) notify(ctx context.Context, provider *entity.Provider, title, body string) {
	err := s.notifier.NotifyStatusChange(ctx, &service.ProviderStatusNotification{
		ProviderID: provider.ID,
		Status:     provider.Status,
		Title:      title,
		Body:       body,
		Data: map[string]string{
			"provider_id": provider.ID.String(),
			"status":      string(provider.Status),
		},
	})
	if err != nil {
		s.getLogger(ctx).Warn("failed to send provider notification",
			slog.String("provider_id", provider.ID.String()),
			slog.Any("error", err),
		)
	}
}

func (s *providerService) getLogger(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}
