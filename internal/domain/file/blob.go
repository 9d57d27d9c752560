package file

import (
	"context"
	"io"
)

// BlobStore persists raw upload content. Implementations must make
// Publish atomic with respect to readers: a blob is either absent or
// complete, never truncated.
type BlobStore interface {
	// WriteTemp drains r into a temporary, unpublished blob. It returns
	// ErrTooLarge when more than limit bytes arrive.
	WriteTemp(ctx context.Context, r io.Reader, limit int64) (tmpName string, size int64, err error)
	// Publish moves a temporary blob to its final name.
	Publish(tmpName, finalName string) error
	Open(name string) (io.ReadCloser, error)
	Remove(name string) error
	// DiscardTemp drops a temporary blob; failures are swallowed since
	// the upload is already being abandoned.
	DiscardTemp(tmpName string)
}
