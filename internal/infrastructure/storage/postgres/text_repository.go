package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"cloudvault/internal/domain/text"
)

type TextRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewTextRepository(pool *pgxpool.Pool, log *slog.Logger) *TextRepository {
	return &TextRepository{
		pool: pool,
		log:  log.With("component", "text_repository"),
	}
}

func (r *TextRepository) Create(ctx context.Context, t *text.Text) error {
	const query = `
		INSERT INTO texts (id, user_id, title, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, query, t.ID, t.UserID, t.Title, t.Content, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert text: %w", err)
	}
	return nil
}

func (r *TextRepository) List(ctx context.Context, userID string) ([]text.Text, error) {
	const query = `
		SELECT id, user_id, title, content, created_at, updated_at
		FROM texts
		WHERE user_id = $1
		ORDER BY updated_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list texts: %w", err)
	}
	defer rows.Close()

	var texts []text.Text
	for rows.Next() {
		var t text.Text
		if err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.Content, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan text: %w", err)
		}
		texts = append(texts, t)
	}
	return texts, rows.Err()
}

func (r *TextRepository) Get(ctx context.Context, userID, textID string) (text.Text, error) {
	const query = `
		SELECT id, user_id, title, content, created_at, updated_at
		FROM texts
		WHERE id = $1 AND user_id = $2`

	var t text.Text
	err := r.pool.QueryRow(ctx, query, textID, userID).Scan(
		&t.ID, &t.UserID, &t.Title, &t.Content, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return t, text.ErrNotFound
		}
		return t, fmt.Errorf("get text: %w", err)
	}
	return t, nil
}

func (r *TextRepository) Update(ctx context.Context, t *text.Text) error {
	result, err := r.pool.Exec(ctx,
		`UPDATE texts SET title = $1, content = $2, updated_at = $3 WHERE id = $4 AND user_id = $5`,
		t.Title, t.Content, t.UpdatedAt, t.ID, t.UserID)
	if err != nil {
		return fmt.Errorf("update text: %w", err)
	}
	if result.RowsAffected() == 0 {
		return text.ErrNotFound
	}
	return nil
}

func (r *TextRepository) Delete(ctx context.Context, userID, textID string) error {
	result, err := r.pool.Exec(ctx,
		`DELETE FROM texts WHERE id = $1 AND user_id = $2`, textID, userID)
	if err != nil {
		return fmt.Errorf("delete text: %w", err)
	}
	if result.RowsAffected() == 0 {
		return text.ErrNotFound
	}
	return nil
}

func (r *TextRepository) Count(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM texts WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count texts: %w", err)
	}
	return count, nil
}
