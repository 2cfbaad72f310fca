package context

import (
	"context"
	"log/slog"

	"marketplace/internal/domain/entity"
)

// WithPrincipal stores the authenticated caller and tags the request-scoped logger
// with its user ID, so every later log line of the request names the actor.
func WithPrincipal(ctx context.Context, principal entity.Principal, fallback *slog.Logger) context.Context {
	ctx = context.WithValue(ctx, keyPrincipal, principal)

	if logger := GetLoggerOrDefault(ctx, fallback); logger != nil {
		ctx = WithLogger(ctx, logger.With(slog.String("user_id", principal.UserID.String())))
	}

	return ctx
}

// GetPrincipal returns the principal stored by WithPrincipal.
func GetPrincipal(ctx context.Context) (entity.Principal, bool) {
	principal, ok := ctx.Value(keyPrincipal).(entity.Principal)

	return principal, ok
}

// PrincipalAttrs describes the principal for access logs. It is empty for anonymous requests.
func PrincipalAttrs(ctx context.Context) []slog.Attr {
	principal, ok := GetPrincipal(ctx)
	if !ok {
		return nil
	}

	return []slog.Attr{
		slog.String("user_id", principal.UserID.String()),
		slog.Any("roles", principal.Roles.ToStrings()),
	}
}
