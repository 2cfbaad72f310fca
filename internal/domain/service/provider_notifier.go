package service

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// ProviderStatusNotification describes a change the provider should hear about.
type ProviderStatusNotification struct {
	ProviderID uuid.UUID
	Status     entity.ProviderStatus
	Title      string
	Body       string
	Data       map[string]string
}

// ProviderNotifier pushes lifecycle notifications to a provider's devices
type ProviderNotifier interface {
	// NotifyStatusChange sends a notification about a provider or document state change
	NotifyStatusChange(ctx context.Context, notification *ProviderStatusNotification) error
}
