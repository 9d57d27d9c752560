package file

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

// MaxFileSize is the upload ceiling. A file of exactly this size is
// accepted, one byte more is rejected.
const MaxFileSize = 50 << 20

const publicPrefix = "/uploads/"

// blockedExtensions is an advisory, extension-based denylist. It is not
// a content check and a renamed executable will pass it.
var blockedExtensions = map[string]struct{}{
	".exe": {}, ".bat": {}, ".sh": {}, ".cmd": {},
	".com": {}, ".app": {}, ".msi": {}, ".dmg": {},
}

type Servicer interface {
	Upload(ctx context.Context, userID string, r io.Reader, originalName, declaredType string, size int64) (File, error)
	List(ctx context.Context, userID string) (ListResponse, error)
	Download(ctx context.Context, userID, fileID string) (File, io.ReadCloser, error)
	Delete(ctx context.Context, userID, fileID string) error
}

type Service struct {
	repo  Repository
	blobs BlobStore
	log   *slog.Logger
}

func NewService(repo Repository, blobs BlobStore, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		blobs: blobs,
		log:   log.With("component", "file_service"),
	}
}

// Upload persists blob and metadata together: the blob is written to a
// temporary name, the record is inserted, and only then is the blob
// published. Any failure rolls back whatever half already exists.
func (s *Service) Upload(ctx context.Context, userID string, r io.Reader, originalName, declaredType string, size int64) (File, error) {
	if originalName == "" {
		return File{}, fmt.Errorf("%w: no file uploaded", ErrInvalidInput)
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	if _, blocked := blockedExtensions[ext]; blocked {
		return File{}, ErrForbiddenType
	}

	if size > MaxFileSize {
		return File{}, ErrTooLarge
	}

	tmpName, written, err := s.blobs.WriteTemp(ctx, r, MaxFileSize)
	if err != nil {
		if errors.Is(err, ErrTooLarge) {
			return File{}, ErrTooLarge
		}
		s.log.Error("failed to write blob", "user_id", userID, "error", err)
		return File{}, fmt.Errorf("write blob: %w", err)
	}

	now := time.Now().UTC()
	storedName := fmt.Sprintf("file-%d-%s%s", now.UnixMilli(), uuid.NewString()[:8], ext)

	f := File{
		ID:           uuid.NewString(),
		UserID:       userID,
		FileName:     storedName,
		OriginalName: originalName,
		FileType:     resolveType(declaredType, originalName),
		FileSize:     written,
		FileUrl:      publicPrefix + storedName,
		UploadedAt:   now,
	}

	if err := s.repo.Create(ctx, &f); err != nil {
		s.blobs.DiscardTemp(tmpName)
		s.log.Error("failed to create file record", "user_id", userID, "error", err)
		return File{}, fmt.Errorf("create file record: %w", err)
	}

	if err := s.blobs.Publish(tmpName, storedName); err != nil {
		s.blobs.DiscardTemp(tmpName)
		if derr := s.repo.Delete(ctx, userID, f.ID); derr != nil {
			s.log.Error("failed to roll back file record", "file_id", f.ID, "error", derr)
		}
		s.log.Error("failed to publish blob", "file_id", f.ID, "error", err)
		return File{}, fmt.Errorf("publish blob: %w", err)
	}

	s.log.Info("file uploaded", "file_id", f.ID, "user_id", userID, "size", written)
	return f, nil
}

func (s *Service) List(ctx context.Context, userID string) (ListResponse, error) {
	files, err := s.repo.List(ctx, userID)
	if err != nil {
		s.log.Error("failed to list files", "user_id", userID, "error", err)
		return ListResponse{}, fmt.Errorf("list files: %w", err)
	}

	return ListResponse{Files: files, Total: len(files)}, nil
}

func (s *Service) Download(ctx context.Context, userID, fileID string) (File, io.ReadCloser, error) {
	f, err := s.repo.Get(ctx, userID, fileID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return File{}, nil, ErrNotFound
		}
		return File{}, nil, fmt.Errorf("get file: %w", err)
	}

	rc, err := s.blobs.Open(f.FileName)
	if err != nil {
		s.log.Error("blob missing for record", "file_id", fileID, "name", f.FileName, "error", err)
		return File{}, nil, ErrNotFound
	}

	return f, rc, nil
}

func (s *Service) Delete(ctx context.Context, userID, fileID string) error {
	f, err := s.repo.Get(ctx, userID, fileID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("get file: %w", err)
	}

	if err := s.repo.Delete(ctx, userID, fileID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		s.log.Error("failed to delete file record", "file_id", fileID, "error", err)
		return fmt.Errorf("delete file record: %w", err)
	}

	if err := s.blobs.Remove(f.FileName); err != nil {
		s.log.Error("failed to remove blob", "file_id", fileID, "name", f.FileName, "error", err)
	}

	s.log.Info("file deleted", "file_id", fileID, "user_id", userID)
	return nil
}

func resolveType(declared, originalName string) string {
	if declared != "" {
		return declared
	}
	if t := mime.TypeByExtension(filepath.Ext(originalName)); t != "" {
		return t
	}
	return "application/octet-stream"
}
