package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"cloudvault/internal/domain/note"
)

type NoteRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewNoteRepository(pool *pgxpool.Pool, log *slog.Logger) *NoteRepository {
	return &NoteRepository{
		pool: pool,
		log:  log.With("component", "note_repository"),
	}
}

func (r *NoteRepository) Create(ctx context.Context, n *note.Note) error {
	const query = `
		INSERT INTO notes (id, user_id, title, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, query, n.ID, n.UserID, n.Title, n.Content, n.CreatedAt, n.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert note: %w", err)
	}
	return nil
}

func (r *NoteRepository) List(ctx context.Context, userID string) ([]note.Note, error) {
	const query = `
		SELECT id, user_id, title, content, created_at, updated_at
		FROM notes
		WHERE user_id = $1
		ORDER BY updated_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	var notes []note.Note
	for rows.Next() {
		var n note.Note
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

func (r *NoteRepository) Get(ctx context.Context, userID, noteID string) (note.Note, error) {
	const query = `
		SELECT id, user_id, title, content, created_at, updated_at
		FROM notes
		WHERE id = $1 AND user_id = $2`

	var n note.Note
	err := r.pool.QueryRow(ctx, query, noteID, userID).Scan(
		&n.ID, &n.UserID, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return n, note.ErrNotFound
		}
		return n, fmt.Errorf("get note: %w", err)
	}
	return n, nil
}

func (r *NoteRepository) Update(ctx context.Context, n *note.Note) error {
	result, err := r.pool.Exec(ctx,
		`UPDATE notes SET title = $1, content = $2, updated_at = $3 WHERE id = $4 AND user_id = $5`,
		n.Title, n.Content, n.UpdatedAt, n.ID, n.UserID)
	if err != nil {
		return fmt.Errorf("update note: %w", err)
	}
	if result.RowsAffected() == 0 {
		return note.ErrNotFound
	}
	return nil
}

func (r *NoteRepository) Delete(ctx context.Context, userID, noteID string) error {
	result, err := r.pool.Exec(ctx,
		`DELETE FROM notes WHERE id = $1 AND user_id = $2`, noteID, userID)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	if result.RowsAffected() == 0 {
		return note.ErrNotFound
	}
	return nil
}

func (r *NoteRepository) Count(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM notes WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count notes: %w", err)
	}
	return count, nil
}
