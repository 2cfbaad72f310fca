package auth

import (
	"testing"
	"time"

	"marketplace/config"
	"marketplace/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func newTestJWTService(t *testing.T) service.TokenService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = testSecret
	cfg.Env.ServiceName = "marketplace"

	tokenService, err := NewJWTService(cfg)
	require.NoError(t, err)

	return tokenService
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	tokenService := newTestJWTService(t)
	userID := uuid.New()
	roles := []string{"provider", "admin"}

	token, err := tokenService.GenerateAccessToken(userID, roles)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := tokenService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, roles, claims.Roles)
	assert.Equal(t, "access", claims.Type)
	assert.Equal(t, "marketplace", claims.Issuer)
}

func TestJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_InvalidTokens(t *testing.T) {
	tokenService := newTestJWTService(t)
	userID := uuid.New()

	sign := func(t *testing.T, claims *service.Claims, secret string) string {
		t.Helper()
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		require.NoError(t, err)

		return token
	}

	future := jwt.NewNumericDate(time.Now().Add(time.Hour))
	past := jwt.NewNumericDate(time.Now().Add(-time.Hour))

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "clearly-not-a-jwt-token-format"},
		{name: "wrong secret", token: sign(t, &service.Claims{UserID: userID, Type: "access", RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: future}}, "other-secret")},
		{name: "expired", token: sign(t, &service.Claims{UserID: userID, Type: "access", RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: past}}, testSecret)},
		{name: "refresh type", token: sign(t, &service.Claims{UserID: userID, Type: "refresh", RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: future}}, testSecret)},
		{name: "no user", token: sign(t, &service.Claims{Type: "access", RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: future}}, testSecret)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := tokenService.ValidateToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}
