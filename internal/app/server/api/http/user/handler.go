package user

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"cloudvault/internal/app/server/api/http/middleware/auth"
	"cloudvault/internal/domain/session"
	"cloudvault/internal/domain/user"
)

type Handler struct {
	service    user.Servicer
	session    session.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
	protected  huma.Middlewares
}

func NewHandler(service user.Servicer, session session.Servicer, log *slog.Logger, public, protected huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		session:    session,
		log:        log,
		middleware: public,
		protected:  protected,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.registerOp(), h.register)
	huma.Register(api, h.loginOp(), h.login)
	huma.Register(api, h.phoneLoginOp(), h.phoneLogin)
	huma.Register(api, h.updateProfileOp(), h.updateProfile)
}

func (h *Handler) register(ctx context.Context, input *registerInput) (*registerOutput, error) {
	userID, err := h.service.Register(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrDuplicate):
			return nil, huma.Error409Conflict("User already registered. Please login.")
		case errors.Is(err, user.ErrInvalidInput):
			return nil, huma.Error400BadRequest(err.Error())
		default:
			h.log.Error("registration failed", "error", err)
			return nil, huma.Error500InternalServerError("Registration failed")
		}
	}

	return &registerOutput{
		Body: RegisterResponse{
			UserID:  userID,
			Message: "Registration successful",
			Success: true,
		},
	}, nil
}

func (h *Handler) login(ctx context.Context, input *loginInput) (*authOutput, error) {
	u, err := h.service.Authenticate(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidAuth) {
			return nil, huma.Error401Unauthorized("Invalid credentials")
		}
		h.log.Error("login failed", "error", err)
		return nil, huma.Error500InternalServerError("Login failed")
	}

	return h.issueToken(ctx, u)
}

func (h *Handler) phoneLogin(ctx context.Context, input *phoneLoginInput) (*authOutput, error) {
	u, err := h.service.AuthenticateByPhone(ctx, input.Body.IDToken, input.Body.PhoneNumber)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidToken):
			return nil, huma.Error401Unauthorized("Invalid token")
		case errors.Is(err, user.ErrInvalidInput):
			return nil, huma.Error400BadRequest("Missing required fields")
		default:
			h.log.Error("phone login failed", "error", err)
			return nil, huma.Error500InternalServerError("Phone authentication failed")
		}
	}

	return h.issueToken(ctx, u)
}

func (h *Handler) updateProfile(ctx context.Context, input *updateProfileInput) (*profileOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	u, err := h.service.UpdateProfile(ctx, userID, input.Body.DisplayName)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, huma.Error404NotFound("User not found")
		}
		h.log.Error("profile update failed", "user_id", userID, "error", err)
		return nil, huma.Error500InternalServerError("Profile update failed")
	}

	return &profileOutput{Body: ProfileResponse{User: u.Public()}}, nil
}

func (h *Handler) issueToken(ctx context.Context, u user.User) (*authOutput, error) {
	token, err := h.session.Create(ctx, u.ID)
	if err != nil {
		h.log.Error("failed to create session", "user_id", u.ID, "error", err)
		return nil, huma.Error500InternalServerError("Login failed")
	}

	return &authOutput{
		Body: AuthResponse{
			Token: token,
			User:  u.Public(),
		},
	}, nil
}
