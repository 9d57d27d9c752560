package file

import "context"

type Repository interface {
	Create(ctx context.Context, f *File) error
	List(ctx context.Context, userID string) ([]File, error)
	// Get must return ErrNotFound both for missing ids and for records
	// owned by someone else.
	Get(ctx context.Context, userID, fileID string) (File, error)
	Delete(ctx context.Context, userID, fileID string) error
	Stats(ctx context.Context, userID string) (count int64, totalBytes int64, err error)
}
