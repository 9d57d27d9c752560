package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"cloudvault/internal/domain/session"
)

type contextKey string

const userIDKey contextKey = "userID"

// Auth guards protected operations: it resolves the bearer token to an
// account id before any handler runs. Handlers never see a request
// without a verified identity in its context.
type Auth struct {
	session session.Servicer
	log     *slog.Logger
}

func New(session session.Servicer, log *slog.Logger) *Auth {
	return &Auth{
		session: session,
		log:     log.With("component", "auth_middleware"),
	}
}

func (a *Auth) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		header := ctx.Header("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			a.reject(ctx, "no token provided")
			return
		}

		userID, err := a.session.Validate(ctx.Context(), strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			switch {
			case errors.Is(err, session.ErrTokenExpired):
				a.reject(ctx, "token expired")
			default:
				a.reject(ctx, "invalid token")
			}
			return
		}

		next(huma.WithContext(ctx, WithUserID(ctx.Context(), userID)))
	}
}

func (a *Auth) reject(ctx huma.Context, message string) {
	a.log.Debug("request rejected", "path", ctx.URL().Path, "reason", message)
	ctx.SetStatus(http.StatusUnauthorized)
	ctx.SetHeader("Content-Type", "application/json")

	if err := json.NewEncoder(ctx.BodyWriter()).Encode(map[string]string{
		"error": message,
	}); err != nil {
		a.log.Error("failed to encode rejection", "error", err)
	}
}

func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserID returns the identity the middleware attached. Client-supplied
// ids are never consulted.
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok && userID != ""
}
