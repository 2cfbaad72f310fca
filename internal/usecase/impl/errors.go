package impl

import (
	"context"
	"log/slog"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"

	"github.com/pkg/errors"
)

// translateDomainError converts entity and repository sentinels into application errors.
// Errors it does not recognise are returned unchanged.
func translateDomainError(err error) error {
	if err == nil {
		return nil
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	switch {
	case errors.Is(err, entity.ErrInvalidTransition):
		return domainerrors.ErrInvalidStateTransition.WithMessage(err.Error())
	case errors.Is(err, entity.ErrReasonRequired):
		return domainerrors.ErrValidationFailed.WithMessage("reason is required")
	case errors.Is(err, entity.ErrInvalidInput):
		return domainerrors.ErrValidationFailed.WithMessage(err.Error())
	case errors.Is(err, entity.ErrInvalidDocumentNumber):
		return domainerrors.ErrInvalidDocumentNumber.WithMessage(err.Error())
	case errors.Is(err, entity.ErrDocumentTypeExists), errors.Is(err, entity.ErrServiceAlreadyOffered):
		return domainerrors.ErrConflict.WithMessage(err.Error())
	case errors.Is(err, entity.ErrProviderDocumentNotFound):
		return domainerrors.ErrProviderDocumentNotFound.WithMessage(err.Error())
	case errors.Is(err, entity.ErrProviderServiceNotFound):
		return domainerrors.ErrProviderServiceNotFound.WithMessage(err.Error())
	case errors.Is(err, entity.ErrProviderDeleted), errors.Is(err, repository.ErrProviderNotFound):
		return domainerrors.ErrProviderNotFound
	case errors.Is(err, repository.ErrProviderAlreadyExists):
		return domainerrors.ErrProviderAlreadyExists
	case errors.Is(err, repository.ErrDocumentNotFound):
		return domainerrors.ErrDocumentNotFound
	case errors.Is(err, repository.ErrConcurrencyConflict):
		return domainerrors.ErrConcurrencyConflict
	}

	return err
}

// failure translates err and hides anything unexpected behind a generic message.
// Unexpected errors, database execution failures included, are logged with the
// request-scoped logger.
func failure(ctx context.Context, logger *slog.Logger, op string, err error) error {
	translated := translateDomainError(err)

	var appErr domainerrors.AppError
	if errors.As(translated, &appErr) && !isDatabaseFailure(translated) {
		return translated
	}

	deliverycontext.GetLoggerOrDefault(ctx, logger).Error("unexpected error",
		slog.String("operation", op),
		slog.Any("error", err),
	)

	return domainerrors.ErrInternalError.WithMessage("failed to " + op)
}

func isDatabaseFailure(err error) bool {
	var dbErr *domainerrors.DatabaseExecuteError

	return errors.As(err, &dbErr)
}
