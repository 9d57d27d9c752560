package note

import "context"

type Repository interface {
	Create(ctx context.Context, n *Note) error
	List(ctx context.Context, userID string) ([]Note, error)
	Get(ctx context.Context, userID, noteID string) (Note, error)
	Update(ctx context.Context, n *Note) error
	Delete(ctx context.Context, userID, noteID string) error
	Count(ctx context.Context, userID string) (int64, error)
}
