package text

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

type Servicer interface {
	Create(ctx context.Context, userID, title, content string) (Text, error)
	List(ctx context.Context, userID string) (ListResponse, error)
	Update(ctx context.Context, userID, textID, title, content string) (Text, error)
	Delete(ctx context.Context, userID, textID string) error
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "text_service"),
	}
}

func (s *Service) Create(ctx context.Context, userID, title, content string) (Text, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return Text{}, ErrInvalidInput
	}

	now := time.Now().UTC()
	t := Text{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, &t); err != nil {
		s.log.Error("failed to create text", "user_id", userID, "error", err)
		return Text{}, fmt.Errorf("create text: %w", err)
	}

	return t, nil
}

func (s *Service) List(ctx context.Context, userID string) (ListResponse, error) {
	texts, err := s.repo.List(ctx, userID)
	if err != nil {
		s.log.Error("failed to list texts", "user_id", userID, "error", err)
		return ListResponse{}, fmt.Errorf("list texts: %w", err)
	}

	return ListResponse{Texts: texts, Total: len(texts)}, nil
}

func (s *Service) Update(ctx context.Context, userID, textID, title, content string) (Text, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return Text{}, ErrInvalidInput
	}

	t, err := s.repo.Get(ctx, userID, textID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Text{}, ErrNotFound
		}
		return Text{}, fmt.Errorf("get text: %w", err)
	}

	t.Title = title
	t.Content = content
	t.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, &t); err != nil {
		s.log.Error("failed to update text", "text_id", textID, "error", err)
		return Text{}, fmt.Errorf("update text: %w", err)
	}

	return t, nil
}

func (s *Service) Delete(ctx context.Context, userID, textID string) error {
	err := s.repo.Delete(ctx, userID, textID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		s.log.Error("failed to delete text", "text_id", textID, "error", err)
		return fmt.Errorf("delete text: %w", err)
	}
	return nil
}
