package text

import "context"

type Repository interface {
	Create(ctx context.Context, t *Text) error
	List(ctx context.Context, userID string) ([]Text, error)
	Get(ctx context.Context, userID, textID string) (Text, error)
	Update(ctx context.Context, t *Text) error
	Delete(ctx context.Context, userID, textID string) error
	Count(ctx context.Context, userID string) (int64, error)
}
