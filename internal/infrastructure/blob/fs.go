package blob

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cloudvault/internal/domain/file"
)

// FS stores blobs as plain files in a single directory. Uploads land in
// dot-prefixed temp files and are renamed into place on publish, so a
// reader never observes a partially written blob.
type FS struct {
	dir string
}

func NewFS(dir string) (*FS, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &FS{dir: dir}, nil
}

// Dir returns the directory blobs are published into, for static serving.
func (s *FS) Dir() string {
	return s.dir
}

func (s *FS) WriteTemp(ctx context.Context, r io.Reader, limit int64) (string, int64, error) {
	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return "", 0, fmt.Errorf("create temp blob: %w", err)
	}
	tmpName := filepath.Base(tmp.Name())

	discard := func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}

	if err := ctx.Err(); err != nil {
		discard()
		return "", 0, err
	}

	// Read one byte past the ceiling so an at-limit upload passes and
	// anything larger is detected without draining the whole stream.
	written, err := io.Copy(tmp, io.LimitReader(r, limit+1))
	if err != nil {
		discard()
		return "", 0, fmt.Errorf("write temp blob: %w", err)
	}
	if written > limit {
		discard()
		return "", 0, file.ErrTooLarge
	}

	if err := tmp.Sync(); err != nil {
		discard()
		return "", 0, fmt.Errorf("sync temp blob: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", 0, fmt.Errorf("close temp blob: %w", err)
	}

	return tmpName, written, nil
}

func (s *FS) Publish(tmpName, finalName string) error {
	if err := s.checkName(tmpName); err != nil {
		return err
	}
	if err := s.checkName(finalName); err != nil {
		return err
	}
	return os.Rename(filepath.Join(s.dir, tmpName), filepath.Join(s.dir, finalName))
}

func (s *FS) Open(name string) (io.ReadCloser, error) {
	if err := s.checkName(name); err != nil {
		return nil, err
	}
	return os.Open(filepath.Join(s.dir, name))
}

func (s *FS) Remove(name string) error {
	if err := s.checkName(name); err != nil {
		return err
	}
	err := os.Remove(filepath.Join(s.dir, name))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (s *FS) DiscardTemp(tmpName string) {
	if s.checkName(tmpName) != nil {
		return
	}
	_ = os.Remove(filepath.Join(s.dir, tmpName))
}

// checkName rejects anything that could escape the blob directory.
func (s *FS) checkName(name string) error {
	if name == "" || name != filepath.Base(name) || strings.ContainsAny(name, "/\\") {
		return fmt.Errorf("invalid blob name %q", name)
	}
	return nil
}
