package session

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/exp/slog"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("invalid token")
)

type Servicer interface {
	Create(ctx context.Context, userID string) (string, error)
	Validate(ctx context.Context, token string) (string, error)
}

// Service issues and validates stateless signed tokens. Nothing is
// persisted server-side: the token carries the account id and expiry.
type Service struct {
	secret []byte
	ttl    time.Duration
	log    *slog.Logger
}

type claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
}

func NewService(secret []byte, ttl time.Duration, log *slog.Logger) *Service {
	return &Service{
		secret: secret,
		ttl:    ttl,
		log:    log.With("component", "session_service"),
	}
}

func (s *Service) Create(_ context.Context, userID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		UserID: userID,
	})

	return token.SignedString(s.secret)
}

// Validate returns the account id carried by the token. Expiry is
// reported distinctly from every other validation failure.
func (s *Service) Validate(_ context.Context, tokenString string) (string, error) {
	c := &claims{}

	token, err := jwt.ParseWithClaims(tokenString, c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenInvalid
	}

	if !token.Valid || c.UserID == "" {
		return "", ErrTokenInvalid
	}

	return c.UserID, nil
}
