package note

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
	Create(ctx context.Context, userID, title, content string) (Note, error)
	List(ctx context.Context, userID string) (ListResponse, error)
	Update(ctx context.Context, userID, noteID, title, content string) (Note, error)
	Delete(ctx context.Context, userID, noteID string) error
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "note_service"),
	}
}

func (s *Service) Create(ctx context.Context, userID, title, content string) (Note, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return Note{}, ErrInvalidInput
	}

	now := time.Now().UTC()
	n := Note{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, &n); err != nil {
		s.log.Error("failed to create note", "user_id", userID, "error", err)
		return Note{}, fmt.Errorf("create note: %w", err)
	}

	return n, nil
}

func (s *Service) List(ctx context.Context, userID string) (ListResponse, error) {
	notes, err := s.repo.List(ctx, userID)
	if err != nil {
		s.log.Error("failed to list notes", "user_id", userID, "error", err)
		return ListResponse{}, fmt.Errorf("list notes: %w", err)
	}

	return ListResponse{Notes: notes, Total: len(notes)}, nil
}

func (s *Service) Update(ctx context.Context, userID, noteID, title, content string) (Note, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return Note{}, ErrInvalidInput
	}

	n, err := s.repo.Get(ctx, userID, noteID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Note{}, ErrNotFound
		}
		return Note{}, fmt.Errorf("get note: %w", err)
	}

	n.Title = title
	n.Content = content
	n.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, &n); err != nil {
		s.log.Error("failed to update note", "note_id", noteID, "error", err)
		return Note{}, fmt.Errorf("update note: %w", err)
	}

	return n, nil
}

func (s *Service) Delete(ctx context.Context, userID, noteID string) error {
	err := s.repo.Delete(ctx, userID, noteID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		s.log.Error("failed to delete note", "note_id", noteID, "error", err)
		return fmt.Errorf("delete note: %w", err)
	}
	return nil
}
