package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestService_CreateAndValidate(t *testing.T) {
	ctx := context.Background()
	service := NewService([]byte("test-secret"), time.Hour, slog.Default())

	token, err := service.Create(ctx, "user-1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := service.Validate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestService_Validate_Expired(t *testing.T) {
	ctx := context.Background()
	service := NewService([]byte("test-secret"), -time.Minute, slog.Default())

	token, err := service.Create(ctx, "user-1")
	require.NoError(t, err)

	_, err = service.Validate(ctx, token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestService_Validate_WrongSecret(t *testing.T) {
	ctx := context.Background()
	issuer := NewService([]byte("secret-a"), time.Hour, slog.Default())
	checker := NewService([]byte("secret-b"), time.Hour, slog.Default())

	token, err := issuer.Create(ctx, "user-1")
	require.NoError(t, err)

	_, err = checker.Validate(ctx, token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestService_Validate_Garbage(t *testing.T) {
	ctx := context.Background()
	service := NewService([]byte("test-secret"), time.Hour, slog.Default())

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "not a token", token: "not-a-token"},
		{name: "truncated", token: "eyJhbGciOiJIUzI1NiJ9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Validate(ctx, tt.token)
			assert.ErrorIs(t, err, ErrTokenInvalid)
		})
	}
}
