package impl

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestTranslateDomainError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"invalid transition", errors.Wrap(entity.ErrInvalidTransition, "cannot activate"), domainerrors.ErrInvalidStateTransition},
		{"reason required", entity.ErrReasonRequired, domainerrors.ErrValidationFailed},
		{"invalid input", errors.Wrap(entity.ErrInvalidInput, "name"), domainerrors.ErrValidationFailed},
		{"document number", errors.Wrap(entity.ErrInvalidDocumentNumber, "invalid CPF"), domainerrors.ErrInvalidDocumentNumber},
		{"duplicate document", errors.Wrap(entity.ErrDocumentTypeExists, "cpf"), domainerrors.ErrConflict},
		{"duplicate service", entity.ErrServiceAlreadyOffered, domainerrors.ErrConflict},
		{"missing reference", entity.ErrProviderDocumentNotFound, domainerrors.ErrProviderDocumentNotFound},
		{"missing service", entity.ErrProviderServiceNotFound, domainerrors.ErrProviderServiceNotFound},
		{"deleted provider", entity.ErrProviderDeleted, domainerrors.ErrProviderNotFound},
		{"provider not found", errors.Wrap(repository.ErrProviderNotFound, "id"), domainerrors.ErrProviderNotFound},
		{"provider exists", repository.ErrProviderAlreadyExists, domainerrors.ErrProviderAlreadyExists},
		{"document not found", repository.ErrDocumentNotFound, domainerrors.ErrDocumentNotFound},
		{"stale version", repository.ErrConcurrencyConflict, domainerrors.ErrConcurrencyConflict},
		{"already typed", domainerrors.ErrForbidden, domainerrors.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, translateDomainError(tt.err), tt.want)
		})
	}
}

func TestTranslateDomainError_KeepsEntityMessage(t *testing.T) {
	err := translateDomainError(errors.Wrap(entity.ErrInvalidTransition, "cannot suspend provider in status rejected"))

	assert.EqualError(t, err, "cannot suspend provider in status rejected: invalid state transition")
}

func TestFailure_HidesUnexpectedErrors(t *testing.T) {
	err := failure(context.Background(), testLogger(), "load provider", errors.New("pq: connection reset"))

	assert.ErrorIs(t, err, domainerrors.ErrInternalError)
	assert.EqualError(t, err, "failed to load provider")
	assert.Nil(t, translateDomainError(nil))
}

func TestFailure_LogsDatabaseFailures(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	dbErr := domainerrors.NewDatabaseExecuteError(errors.New("dial tcp 10.0.0.5:5432: connection refused"), "failed to update provider")

	err := failure(context.Background(), logger, "suspend provider", errors.Wrap(dbErr, "persist"))

	assert.ErrorIs(t, err, domainerrors.ErrInternalError)
	assert.EqualError(t, err, "failed to suspend provider")
	assert.Contains(t, buf.String(), "unexpected error")
	assert.Contains(t, buf.String(), "connection refused")
}

func TestFailure_KeepsTypedErrors(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	err := failure(context.Background(), logger, "activate provider", domainerrors.ErrCrossModuleFailure)

	assert.ErrorIs(t, err, domainerrors.ErrCrossModuleFailure)
	assert.Empty(t, buf.String())
}
