package service

import (
	"context"
)

// VerificationJob asks the verification worker to process one document.
type VerificationJob struct {
	RequestID  string `json:"request_id,omitempty"` // For distributed tracing
	DocumentID string `json:"document_id"`
	ProviderID string `json:"provider_id"`
	Attempt    int    `json:"attempt"`
}

// VerificationJobQueue schedules document verification work for the background worker
type VerificationJobQueue interface {
	// EnqueueVerification publishes a job and returns once the queue accepted it
	EnqueueVerification(ctx context.Context, job *VerificationJob) error

	// Close releases any resources held by the queue
	Close() error
}
