package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"cloudvault/internal/domain/file"
	"cloudvault/internal/domain/stats"
)

type FileRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewFileRepository(pool *pgxpool.Pool, log *slog.Logger) *FileRepository {
	return &FileRepository{
		pool: pool,
		log:  log.With("component", "file_repository"),
	}
}

func (r *FileRepository) Create(ctx context.Context, f *file.File) error {
	const query = `
		INSERT INTO files (id, user_id, file_name, original_name, file_type, file_size, file_url, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.pool.Exec(ctx, query,
		f.ID, f.UserID, f.FileName, f.OriginalName, f.FileType, f.FileSize, f.FileUrl, f.UploadedAt)
	if err != nil {
		return fmt.Errorf("insert file: %w", err)
	}
	return nil
}

func (r *FileRepository) List(ctx context.Context, userID string) ([]file.File, error) {
	const query = `
		SELECT id, user_id, file_name, original_name, file_type, file_size, file_url, uploaded_at
		FROM files
		WHERE user_id = $1
		ORDER BY uploaded_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}
	defer rows.Close()

	var files []file.File
	for rows.Next() {
		var f file.File
		if err := rows.Scan(&f.ID, &f.UserID, &f.FileName, &f.OriginalName,
			&f.FileType, &f.FileSize, &f.FileUrl, &f.UploadedAt); err != nil {
			return nil, fmt.Errorf("scan file: %w", err)
		}
		files = append(files, f)
	}
	return files, rows.Err()
}

// Get filters by both id and owner, so a foreign record is
// indistinguishable from a missing one.
func (r *FileRepository) Get(ctx context.Context, userID, fileID string) (file.File, error) {
	const query = `
		SELECT id, user_id, file_name, original_name, file_type, file_size, file_url, uploaded_at
		FROM files
		WHERE id = $1 AND user_id = $2`

	var f file.File
	err := r.pool.QueryRow(ctx, query, fileID, userID).Scan(
		&f.ID, &f.UserID, &f.FileName, &f.OriginalName,
		&f.FileType, &f.FileSize, &f.FileUrl, &f.UploadedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return f, file.ErrNotFound
		}
		return f, fmt.Errorf("get file: %w", err)
	}
	return f, nil
}

func (r *FileRepository) Delete(ctx context.Context, userID, fileID string) error {
	result, err := r.pool.Exec(ctx,
		`DELETE FROM files WHERE id = $1 AND user_id = $2`, fileID, userID)
	if err != nil {
		return fmt.Errorf("delete file: %w", err)
	}
	if result.RowsAffected() == 0 {
		return file.ErrNotFound
	}
	return nil
}

func (r *FileRepository) Stats(ctx context.Context, userID string) (int64, int64, error) {
	var count, total int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*), COALESCE(SUM(file_size), 0) FROM files WHERE user_id = $1`,
		userID).Scan(&count, &total)
	if err != nil {
		return 0, 0, fmt.Errorf("file stats: %w", err)
	}
	return count, total, nil
}

// TypeStats groups the owner's files by declared MIME type.
func (r *FileRepository) TypeStats(ctx context.Context, userID string) ([]stats.TypeStat, error) {
	const query = `
		SELECT file_type, COUNT(*), COALESCE(SUM(file_size), 0)
		FROM files
		WHERE user_id = $1
		GROUP BY file_type`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("type stats: %w", err)
	}
	defer rows.Close()

	var result []stats.TypeStat
	for rows.Next() {
		var ts stats.TypeStat
		if err := rows.Scan(&ts.FileType, &ts.Count, &ts.Bytes); err != nil {
			return nil, fmt.Errorf("scan type stat: %w", err)
		}
		result = append(result, ts)
	}
	return result, rows.Err()
}

// UploadsSince counts uploads per day keyed by YYYY-MM-DD.
func (r *FileRepository) UploadsSince(ctx context.Context, userID string, since time.Time) (map[string]int64, error) {
	const query = `
		SELECT TO_CHAR(uploaded_at AT TIME ZONE 'UTC', 'YYYY-MM-DD'), COUNT(*)
		FROM files
		WHERE user_id = $1 AND uploaded_at >= $2
		GROUP BY 1`

	rows, err := r.pool.Query(ctx, query, userID, since)
	if err != nil {
		return nil, fmt.Errorf("uploads since: %w", err)
	}
	defer rows.Close()

	result := make(map[string]int64)
	for rows.Next() {
		var day string
		var count int64
		if err := rows.Scan(&day, &count); err != nil {
			return nil, fmt.Errorf("scan day count: %w", err)
		}
		result[day] = count
	}
	return result, rows.Err()
}
