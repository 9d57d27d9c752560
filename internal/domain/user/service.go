package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

// PhoneVerifier proves that an identity-provider token belongs to the
// given phone number. Implemented by infrastructure/identity.
type PhoneVerifier interface {
	VerifyPhoneToken(ctx context.Context, idToken, phoneNumber string) error
}

type Servicer interface {
	Register(ctx context.Context, email, password string) (string, error)
	Authenticate(ctx context.Context, email, password string) (User, error)
	AuthenticateByPhone(ctx context.Context, idToken, phoneNumber string) (User, error)
	UpdateProfile(ctx context.Context, id, displayName string) (User, error)
}

type Service struct {
	repo      Repository
	validator Validator
	verifier  PhoneVerifier
	log       *slog.Logger
}

func NewService(repo Repository, validator Validator, verifier PhoneVerifier, log *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		validator: validator,
		verifier:  verifier,
		log:       log.With("component", "user_service"),
	}
}

// Register creates an email/password account. The email is stored
// lowercased so lookups are case-insensitive.
func (s *Service) Register(ctx context.Context, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if err := s.validator.ValidateRegister(email, password); err != nil {
		s.log.Debug("registration validation failed", "email", email, "error", err)
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return "", ErrDuplicate
	} else if !errors.Is(err, ErrNotFound) {
		return "", fmt.Errorf("lookup user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	u := &User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		AuthProvider: ProviderEmail,
		CreatedAt:    now,
		LastLogin:    now,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return "", ErrDuplicate
		}
		s.log.Error("failed to create user", "email", email, "error", err)
		return "", fmt.Errorf("create user: %w", err)
	}

	s.log.Info("user registered", "user_id", u.ID)
	return u.ID, nil
}

// Authenticate checks an email/password pair. Unknown accounts and wrong
// passwords are indistinguishable to the caller.
func (s *Service) Authenticate(ctx context.Context, email, password string) (User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrInvalidAuth
		}
		return User{}, fmt.Errorf("lookup user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return User{}, ErrInvalidAuth
	}

	if err := s.repo.TouchLastLogin(ctx, u.ID); err != nil {
		s.log.Error("failed to touch last login", "user_id", u.ID, "error", err)
	}

	return u, nil
}

// AuthenticateByPhone verifies the provider-issued token and then finds
// or creates the account keyed by phone number.
func (s *Service) AuthenticateByPhone(ctx context.Context, idToken, phoneNumber string) (User, error) {
	if idToken == "" || phoneNumber == "" {
		return User{}, fmt.Errorf("%w: idToken and phoneNumber are required", ErrInvalidInput)
	}

	if err := s.verifier.VerifyPhoneToken(ctx, idToken, phoneNumber); err != nil {
		s.log.Debug("phone token rejected", "phone", phoneNumber, "error", err)
		return User{}, ErrInvalidToken
	}

	u, err := s.repo.FindByPhone(ctx, phoneNumber)
	switch {
	case err == nil:
		if err := s.repo.TouchLastLogin(ctx, u.ID); err != nil {
			s.log.Error("failed to touch last login", "user_id", u.ID, "error", err)
		}
		return u, nil
	case errors.Is(err, ErrNotFound):
		now := time.Now().UTC()
		u = User{
			ID:           uuid.NewString(),
			PhoneNumber:  phoneNumber,
			AuthProvider: ProviderPhone,
			CreatedAt:    now,
			LastLogin:    now,
		}
		if err := s.repo.Create(ctx, &u); err != nil {
			s.log.Error("failed to create phone user", "error", err)
			return User{}, fmt.Errorf("create user: %w", err)
		}
		s.log.Info("phone user created", "user_id", u.ID)
		return u, nil
	default:
		return User{}, fmt.Errorf("lookup user: %w", err)
	}
}

func (s *Service) UpdateProfile(ctx context.Context, id, displayName string) (User, error) {
	if err := s.repo.UpdateDisplayName(ctx, id, displayName); err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("update profile: %w", err)
	}
	return s.repo.FindByID(ctx, id)
}
