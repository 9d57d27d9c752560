package user

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"cloudvault/internal/app/server/api/http/middleware/auth"
	"cloudvault/internal/domain/user"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func (m *MockUserService) Authenticate(ctx context.Context, email, password string) (user.User, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *MockUserService) AuthenticateByPhone(ctx context.Context, idToken, phoneNumber string) (user.User, error) {
	args := m.Called(ctx, idToken, phoneNumber)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *MockUserService) UpdateProfile(ctx context.Context, id, displayName string) (user.User, error) {
	args := m.Called(ctx, id, displayName)
	return args.Get(0).(user.User), args.Error(1)
}

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Create(ctx context.Context, userID string) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func (m *MockSessionService) Validate(ctx context.Context, token string) (string, error) {
	args := m.Called(ctx, token)
	return args.String(0), args.Error(1)
}

func newTestHandler(service *MockUserService, session *MockSessionService) *Handler {
	return NewHandler(service, session, slog.Default(), huma.Middlewares{}, huma.Middlewares{})
}

func assertStatus(t *testing.T, err error, status int) {
	t.Helper()
	var se huma.StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, status, se.GetStatus())
}

func TestHandler_register(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		service := new(MockUserService)
		service.On("Register", ctx, "user@example.com", "secret1").Return("user-1", nil)

		handler := newTestHandler(service, new(MockSessionService))
		out, err := handler.register(ctx, &registerInput{Body: RegisterRequest{
			Email:    "user@example.com",
			Password: "secret1",
		}})

		require.NoError(t, err)
		assert.Equal(t, "user-1", out.Body.UserID)
		assert.True(t, out.Body.Success)
		assert.Equal(t, "Registration successful", out.Body.Message)
	})

	t.Run("duplicate yields conflict", func(t *testing.T) {
		service := new(MockUserService)
		service.On("Register", ctx, "user@example.com", "secret1").Return("", user.ErrDuplicate)

		handler := newTestHandler(service, new(MockSessionService))
		_, err := handler.register(ctx, &registerInput{Body: RegisterRequest{
			Email:    "user@example.com",
			Password: "secret1",
		}})

		assertStatus(t, err, http.StatusConflict)
	})

	t.Run("invalid input yields bad request", func(t *testing.T) {
		service := new(MockUserService)
		service.On("Register", ctx, "user@example.com", "short").Return("", user.ErrInvalidInput)

		handler := newTestHandler(service, new(MockSessionService))
		_, err := handler.register(ctx, &registerInput{Body: RegisterRequest{
			Email:    "user@example.com",
			Password: "short",
		}})

		assertStatus(t, err, http.StatusBadRequest)
	})
}

func TestHandler_login(t *testing.T) {
	ctx := context.Background()

	t.Run("success issues a token", func(t *testing.T) {
		service := new(MockUserService)
		session := new(MockSessionService)
		service.On("Authenticate", ctx, "user@example.com", "secret1").
			Return(user.User{ID: "user-1", Email: "user@example.com"}, nil)
		session.On("Create", ctx, "user-1").Return("signed-token", nil)

		handler := newTestHandler(service, session)
		out, err := handler.login(ctx, &loginInput{Body: LoginRequest{
			Email:    "user@example.com",
			Password: "secret1",
		}})

		require.NoError(t, err)
		assert.Equal(t, "signed-token", out.Body.Token)
		assert.Equal(t, "user-1", out.Body.User.ID)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		service := new(MockUserService)
		service.On("Authenticate", ctx, "user@example.com", "wrong").
			Return(user.User{}, user.ErrInvalidAuth)

		handler := newTestHandler(service, new(MockSessionService))
		_, err := handler.login(ctx, &loginInput{Body: LoginRequest{
			Email:    "user@example.com",
			Password: "wrong",
		}})

		assertStatus(t, err, http.StatusUnauthorized)
	})
}

func TestHandler_phoneLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		service := new(MockUserService)
		session := new(MockSessionService)
		service.On("AuthenticateByPhone", ctx, "token", "+15551234567").
			Return(user.User{ID: "user-1", PhoneNumber: "+15551234567"}, nil)
		session.On("Create", ctx, "user-1").Return("signed-token", nil)

		handler := newTestHandler(service, session)
		out, err := handler.phoneLogin(ctx, &phoneLoginInput{Body: PhoneLoginRequest{
			IDToken:     "token",
			PhoneNumber: "+15551234567",
		}})

		require.NoError(t, err)
		assert.Equal(t, "signed-token", out.Body.Token)
		assert.Equal(t, "+15551234567", out.Body.User.PhoneNumber)
	})

	t.Run("rejected token", func(t *testing.T) {
		service := new(MockUserService)
		service.On("AuthenticateByPhone", ctx, "bad", "+15551234567").
			Return(user.User{}, user.ErrInvalidToken)

		handler := newTestHandler(service, new(MockSessionService))
		_, err := handler.phoneLogin(ctx, &phoneLoginInput{Body: PhoneLoginRequest{
			IDToken:     "bad",
			PhoneNumber: "+15551234567",
		}})

		assertStatus(t, err, http.StatusUnauthorized)
	})
}

func TestHandler_updateProfile(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		service := new(MockUserService)
		ctx := auth.WithUserID(context.Background(), "user-1")
		service.On("UpdateProfile", ctx, "user-1", "Alice").
			Return(user.User{ID: "user-1", DisplayName: "Alice"}, nil)

		handler := newTestHandler(service, new(MockSessionService))
		out, err := handler.updateProfile(ctx, &updateProfileInput{Body: UpdateProfileRequest{DisplayName: "Alice"}})

		require.NoError(t, err)
		assert.Equal(t, "Alice", out.Body.User.DisplayName)
	})

	t.Run("no identity in context", func(t *testing.T) {
		handler := newTestHandler(new(MockUserService), new(MockSessionService))
		_, err := handler.updateProfile(context.Background(), &updateProfileInput{Body: UpdateProfileRequest{DisplayName: "Alice"}})

		assertStatus(t, err, http.StatusUnauthorized)
	})
}

func TestHandler_register_InternalError(t *testing.T) {
	ctx := context.Background()
	service := new(MockUserService)
	service.On("Register", ctx, "user@example.com", "secret1").Return("", errors.New("db down"))

	handler := newTestHandler(service, new(MockSessionService))
	_, err := handler.register(ctx, &registerInput{Body: RegisterRequest{
		Email:    "user@example.com",
		Password: "secret1",
	}})

	assertStatus(t, err, http.StatusInternalServerError)
}
