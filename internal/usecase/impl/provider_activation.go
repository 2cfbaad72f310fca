package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

const activationOutcomeActivated = "activated"

type documentCheckResult struct {
	ok  bool
	err error
}

// Activate runs the documents module checks and, when they all pass, moves the
// provider to Active.
func (s *providerService) Activate(ctx context.Context, principal entity.Principal, providerID uuid.UUID) (*entity.Provider, error) {
	if !principal.IsAdmin() {
		return nil, domainerrors.ErrForbidden
	}

	provider, err := s.providerRepo.GetByID(ctx, providerID)
	if err != nil {
		return nil, failure(ctx, s.logger, "activate provider", err)
	}

	// The documents module is only consulted for providers that could be activated
	if err := provider.CanActivate(); err != nil {
		err = translateDomainError(err)
		s.metrics.ObserveActivation(activationOutcome(err))

		return nil, err
	}

	if err := s.ensureDocumentsReady(ctx, provider.ID); err != nil {
		s.metrics.ObserveActivation(activationOutcome(err))
		s.getLogger(ctx).Info("provider activation refused",
			slog.String("provider_id", provider.ID.String()),
			slog.String("reason", err.Error()),
		)

		return nil, err
	}

	if err := provider.Activate(principal.UserID); err != nil {
		err = translateDomainError(err)
		s.metrics.ObserveActivation(activationOutcome(err))

		return nil, err
	}

	if err := s.providerRepo.Update(ctx, provider); err != nil {
		err = failure(ctx, s.logger, "activate provider", err)
		s.metrics.ObserveActivation(activationOutcome(err))

		return nil, err
	}

	s.metrics.ObserveActivation(activationOutcomeActivated)
	s.getLogger(ctx).Info("provider activated",
		slog.String("provider_id", provider.ID.String()),
		slog.Int64("version", provider.Version),
	)
	s.notify(ctx, provider, "Account activated", "Your provider account is now active.")

	return provider, nil
}

// ensureDocumentsReady issues all checks concurrently and ranks the results after
// the join, so the reported failure does not depend on which call returned first.
func (s *providerService) ensureDocumentsReady(ctx context.Context, providerID uuid.UUID) error {
	checks := service.DocumentChecks()
	results := make([]documentCheckResult, len(checks))

	var g errgroup.Group
	for i, check := range checks {
		g.Go(func() error {
			started := time.Now()
			ok, err := service.RunDocumentCheck(ctx, s.documentsAPI, check, providerID)
			results[i] = documentCheckResult{ok: ok, err: err}
			s.metrics.ObserveDocumentCheck(check, checkResultLabel(ok, err), started)

			return nil
		})
	}
	_ = g.Wait()

	for i, check := range checks {
		res := results[i]
		if res.err != nil {
			return domainerrors.ErrCrossModuleFailure.WithMessage("failed to validate documents: " + res.err.Error())
		}

		if res.ok != expectedCheckResult(check) {
			return guardError(check)
		}
	}

	return nil
}

// expectedCheckResult is the answer each check must give for activation to proceed.
func expectedCheckResult(check service.DocumentCheck) bool {
	return check == service.DocumentCheckRequired || check == service.DocumentCheckVerified
}

func guardError(check service.DocumentCheck) error {
	switch check {
	case service.DocumentCheckRequired:
		return domainerrors.ErrMissingRequiredDocuments
	case service.DocumentCheckVerified:
		return domainerrors.ErrDocumentsNotVerified
	case service.DocumentCheckPending:
		return domainerrors.ErrDocumentsPendingVerification
	default:
		return domainerrors.ErrDocumentsRejected
	}
}

func checkResultLabel(ok bool, err error) string {
	switch {
	case err != nil:
		return "error"
	case ok:
		return "true"
	default:
		return "false"
	}
}

func activationOutcome(err error) string {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return strings.ToLower(appErr.ErrorCode())
	}

	return "error"
}
