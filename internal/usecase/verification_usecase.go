package usecase

import (
	"context"

	"marketplace/internal/domain/service"

	"github.com/pkg/errors"
)

// ErrRetryableVerification marks a job failure that should be redelivered.
var ErrRetryableVerification = errors.New("verification should be retried")

// VerificationUsecase processes background verification jobs.
type VerificationUsecase interface {
	// ProcessVerificationJob verifies one document. It is idempotent: documents that are
	// no longer pending verification are skipped. Errors wrapping ErrRetryableVerification
	// ask the transport to redeliver the job.
	ProcessVerificationJob(ctx context.Context, job *service.VerificationJob) error
}
